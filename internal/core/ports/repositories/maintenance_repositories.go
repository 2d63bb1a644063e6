package repositories

import "context"

// MaintenanceRepository exposes storage level health checks and snapshots.
type MaintenanceRepository interface {
	// IntegrityCheck returns the messages of PRAGMA integrity_check ("ok" when healthy).
	IntegrityCheck(ctx context.Context) ([]string, error)

	// ForeignKeyViolations counts the rows reported by PRAGMA foreign_key_check.
	ForeignKeyViolations(ctx context.Context) (int, error)

	// Backup writes a snapshot next to the database file.
	Backup(ctx context.Context) (path string, ok bool)
}
