package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
	"github.com/SscSPs/finance_manager/internal/models"
	"github.com/SscSPs/finance_manager/internal/utils/mapping"
	"github.com/SscSPs/finance_manager/internal/utils/pagination"
)

const stockColumns = `id, date, transaction_type, vendor_name, item_name, quantity, unit_price, total_price`

type SQLiteStockRepository struct {
	BaseRepository
}

// newSQLiteStockRepository creates a new repository for stock transactions.
func newSQLiteStockRepository(store *Store) portsrepo.StockRepositoryWithTx {
	return &SQLiteStockRepository{
		BaseRepository: BaseRepository{Store: store},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StockRepositoryWithTx = (*SQLiteStockRepository)(nil)

func scanStock(row rowScanner) (models.Stock, error) {
	var m models.Stock
	err := row.Scan(
		&m.ID,
		&m.Date,
		&m.TransactionType,
		&m.VendorName,
		&m.ItemName,
		&m.Quantity,
		&m.UnitPrice,
		&m.TotalPrice,
	)
	return m, err
}

// SaveStock inserts a stock transaction and returns it with its assigned id.
func (r *SQLiteStockRepository) SaveStock(ctx context.Context, txn domain.StockTransaction, commit bool) (*domain.StockTransaction, error) {
	m := mapping.ToModelStock(txn)
	query := `
		INSERT INTO stock (date, transaction_type, vendor_name, item_name, quantity, unit_price, total_price)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	res, err := r.Store.ExecuteQuery(ctx, query, []any{
		m.Date,
		m.TransactionType,
		m.VendorName,
		m.ItemName,
		m.Quantity,
		m.UnitPrice,
		m.TotalPrice,
	}, commit)
	if err != nil {
		return nil, fmt.Errorf("failed to save stock transaction for %s: %w", m.ItemName, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read stock transaction id: %w", err)
	}
	txn.ID = id
	return &txn, nil
}

// FindStockByID retrieves a stock transaction by id.
func (r *SQLiteStockRepository) FindStockByID(ctx context.Context, id int64) (*domain.StockTransaction, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE id = ?;`
	var found *domain.StockTransaction
	err := r.Store.QueryRows(ctx, query, []any{id}, func(rows *sql.Rows) error {
		m, err := scanStock(rows)
		if err != nil {
			return err
		}
		d := mapping.ToDomainStock(m)
		found = &d
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find stock transaction %d: %w", id, err)
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

// FindStockByIDs retrieves several stock transactions, keeping the order of ids.
// Any id without a row is ErrNotFound.
func (r *SQLiteStockRepository) FindStockByIDs(ctx context.Context, ids []int64) ([]domain.StockTransaction, error) {
	if len(ids) == 0 {
		return []domain.StockTransaction{}, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := `SELECT ` + stockColumns + ` FROM stock WHERE id IN (` + placeholders + `);`

	byID := make(map[int64]models.Stock, len(ids))
	err := r.Store.QueryRows(ctx, query, args, func(rows *sql.Rows) error {
		m, err := scanStock(rows)
		if err != nil {
			return err
		}
		byID[m.ID] = m
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find stock transactions: %w", err)
	}

	result := make([]domain.StockTransaction, 0, len(ids))
	for _, id := range ids {
		m, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("stock transaction %d: %w", id, apperrors.ErrNotFound)
		}
		result = append(result, mapping.ToDomainStock(m))
	}
	return result, nil
}

// ListStock retrieves a paginated list of stock transactions using token-based pagination.
func (r *SQLiteStockRepository) ListStock(ctx context.Context, filter domain.StockFilter, limit int, nextToken *string) ([]domain.StockTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// one extra row tells whether a next page exists
	fetchLimit := limit + 1

	var where []string
	var args []any
	if filter.TransactionType != "" {
		where = append(where, "transaction_type = ?")
		args = append(args, string(filter.TransactionType))
	}
	if filter.From != nil {
		where = append(where, "date >= ?")
		args = append(args, mapping.ToModelDate(*filter.From))
	}
	if filter.To != nil {
		where = append(where, "date <= ?")
		args = append(args, mapping.ToModelDate(*filter.To))
	}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewValidationError([]string{"invalid nextToken"})
		}
		where = append(where, "(date, id) < (?, ?)")
		args = append(args, mapping.ToModelDate(lastDate), lastID)
	}

	query := `SELECT ` + stockColumns + ` FROM stock`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date DESC, id DESC LIMIT ?;`
	args = append(args, fetchLimit)

	modelRows := make([]models.Stock, 0, fetchLimit)
	err := r.Store.QueryRows(ctx, query, args, func(rows *sql.Rows) error {
		m, err := scanStock(rows)
		if err != nil {
			return err
		}
		modelRows = append(modelRows, m)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list stock transactions: %w", err)
	}

	var nextTokenVal *string
	if len(modelRows) > limit {
		last := mapping.ToDomainStock(modelRows[limit-1])
		token := pagination.EncodeToken(last.Date, last.ID)
		nextTokenVal = &token
		modelRows = modelRows[:limit]
	}
	return mapping.ToDomainStockSlice(modelRows), nextTokenVal, nil
}

// ListAllStock retrieves every stock transaction ordered by id.
func (r *SQLiteStockRepository) ListAllStock(ctx context.Context) ([]domain.StockTransaction, error) {
	query := `SELECT ` + stockColumns + ` FROM stock ORDER BY id;`
	modelRows := []models.Stock{}
	err := r.Store.QueryRows(ctx, query, nil, func(rows *sql.Rows) error {
		m, err := scanStock(rows)
		if err != nil {
			return err
		}
		modelRows = append(modelRows, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list stock transactions: %w", err)
	}
	return mapping.ToDomainStockSlice(modelRows), nil
}

// RecalculateTotals rewrites drifted totals in a single committed statement.
func (r *SQLiteStockRepository) RecalculateTotals(ctx context.Context) (int64, error) {
	query := `
		UPDATE stock
		SET total_price = quantity * unit_price
		WHERE round(total_price, 2) != round(quantity * unit_price, 2);
	`
	res, err := r.Store.ExecuteQuery(ctx, query, nil, true)
	if err != nil {
		return 0, fmt.Errorf("failed to recalculate stock totals: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read recalculated row count: %w", err)
	}
	return n, nil
}
