package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
)

type SQLiteMaintenanceRepository struct {
	BaseRepository
}

func newSQLiteMaintenanceRepository(store *Store) portsrepo.MaintenanceRepository {
	return &SQLiteMaintenanceRepository{
		BaseRepository: BaseRepository{Store: store},
	}
}

var _ portsrepo.MaintenanceRepository = (*SQLiteMaintenanceRepository)(nil)

// IntegrityCheck runs PRAGMA integrity_check.
func (r *SQLiteMaintenanceRepository) IntegrityCheck(ctx context.Context) ([]string, error) {
	messages := []string{}
	err := r.Store.QueryRows(ctx, `PRAGMA integrity_check;`, nil, func(rows *sql.Rows) error {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return err
		}
		messages = append(messages, msg)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to run integrity check: %w", err)
	}
	return messages, nil
}

// ForeignKeyViolations runs PRAGMA foreign_key_check and counts its rows.
func (r *SQLiteMaintenanceRepository) ForeignKeyViolations(ctx context.Context) (int, error) {
	count := 0
	err := r.Store.QueryRows(ctx, `PRAGMA foreign_key_check;`, nil, func(*sql.Rows) error {
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to run foreign key check: %w", err)
	}
	return count, nil
}

// Backup snapshots the database through the store.
func (r *SQLiteMaintenanceRepository) Backup(ctx context.Context) (string, bool) {
	return r.Store.Backup(ctx)
}
