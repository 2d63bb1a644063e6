package sqlite

import "context"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Store *Store
}

// Commit makes pending session work durable
func (r *BaseRepository) Commit(ctx context.Context) error {
	return r.Store.Commit(ctx)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
