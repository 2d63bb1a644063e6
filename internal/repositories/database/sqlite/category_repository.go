package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
	"github.com/SscSPs/finance_manager/internal/models"
	"github.com/SscSPs/finance_manager/internal/utils/mapping"
)

type SQLiteCategoryRepository struct {
	BaseRepository
}

func newSQLiteCategoryRepository(store *Store) portsrepo.CategoryRepositoryFacade {
	return &SQLiteCategoryRepository{
		BaseRepository: BaseRepository{Store: store},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*SQLiteCategoryRepository)(nil)

// ListCategories retrieves categories ordered by type and name.
func (r *SQLiteCategoryRepository) ListCategories(ctx context.Context, recordType domain.RecordType) ([]domain.Category, error) {
	query := `SELECT id, type, name FROM categories`
	var args []any
	if recordType != "" {
		query += ` WHERE type = ?`
		args = append(args, string(recordType))
	}
	query += ` ORDER BY type, name;`

	categories := []domain.Category{}
	err := r.Store.QueryRows(ctx, query, args, func(rows *sql.Rows) error {
		var m models.Category
		if err := rows.Scan(&m.ID, &m.Type, &m.Name); err != nil {
			return err
		}
		categories = append(categories, mapping.ToDomainCategory(m))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// SaveCategory inserts a category and commits it.
func (r *SQLiteCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	m := mapping.ToModelCategory(category)
	query := `INSERT INTO categories (type, name) VALUES (?, ?);`
	res, err := r.Store.ExecuteQuery(ctx, query, []any{m.Type, m.Name}, true)
	if err != nil {
		return nil, fmt.Errorf("failed to save category %s: %w", m.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read category id: %w", err)
	}
	category.ID = id
	return &category, nil
}
