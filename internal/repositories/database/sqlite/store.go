package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/repositories/database/sqlite/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// BackupTimeLayout names backup files, e.g. backup_20240301_153000.db.
const BackupTimeLayout = "20060102_150405"

// DBTX is the statement surface shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store owns the single connection to the finance database file.
// All access is serialised; a session transaction opened by a non-committing
// ExecuteQuery stays pending until a committing call, Commit or Close.
type Store struct {
	path   string
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	db      *sql.DB
	ownsDB  bool
	pending *sql.Tx
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for connection, initialization and query failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used to name backups.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithDB makes the store use an already opened handle instead of opening path.
// The handle is not closed by Close.
func WithDB(db *sql.DB) Option {
	return func(s *Store) {
		s.db = db
	}
}

// NewStore creates a store for the database file at path. No connection is
// made until the first operation.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) dsn() string {
	return filepath.Clean(s.path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// connect opens the handle on first use. Callers hold s.mu.
func (s *Store) connect(ctx context.Context) (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}
	if strings.TrimSpace(s.path) == "" {
		return nil, &apperrors.ConnectionError{Path: s.path, Err: errors.New("database path is required")}
	}

	db, err := sql.Open("sqlite", s.dsn())
	if err != nil {
		s.logger.Error("Database connection failed", slog.String("path", s.path), slog.String("error", err.Error()))
		return nil, &apperrors.ConnectionError{Path: s.path, Err: err}
	}
	// one connection: the session transaction and every read share it
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		s.logger.Error("Database connection failed", slog.String("path", s.path), slog.String("error", err.Error()))
		return nil, &apperrors.ConnectionError{Path: s.path, Err: err}
	}

	var fkEnabled int
	if err := db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fkEnabled); err != nil || fkEnabled != 1 {
		_ = db.Close()
		if err == nil {
			err = errors.New("foreign key enforcement could not be enabled")
		}
		s.logger.Error("Database connection failed", slog.String("path", s.path), slog.String("error", err.Error()))
		return nil, &apperrors.ConnectionError{Path: s.path, Err: err}
	}

	s.db = db
	s.ownsDB = true
	s.logger.Info("Database connection established", slog.String("path", s.path))
	return db, nil
}

// querier returns the pending session transaction if there is one, so reads
// see uncommitted work and never wait on the single connection.
func (s *Store) querier(ctx context.Context) (DBTX, error) {
	if s.pending != nil {
		return s.pending, nil
	}
	return s.connect(ctx)
}

// Initialize applies the embedded schema and seeds the settings row and the
// default categories. It is idempotent. Any failure is an InitializationError.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.connect(ctx)
	if err != nil {
		return &apperrors.InitializationError{Step: "connect", Err: err}
	}
	if s.pending != nil {
		return &apperrors.InitializationError{Step: "connect", Err: errors.New("uncommitted changes are pending")}
	}

	if err := s.migrate(db); err != nil {
		s.logger.Error("Database initialization failed", slog.String("error", err.Error()))
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("Database initialization failed", slog.String("error", err.Error()))
		return &apperrors.InitializationError{Step: "begin", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO settings (id) VALUES (?)", domain.SettingsID); err != nil {
		s.logger.Error("Database initialization failed", slog.String("error", err.Error()))
		return &apperrors.InitializationError{Step: "seed settings", Err: err}
	}
	for _, c := range domain.DefaultCategories {
		if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO categories (type, name) VALUES (?, ?)", string(c.Type), c.Name); err != nil {
			s.logger.Error("Database initialization failed", slog.String("error", err.Error()))
			return &apperrors.InitializationError{Step: "seed categories", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("Database initialization failed", slog.String("error", err.Error()))
		return &apperrors.InitializationError{Step: "commit", Err: err}
	}

	s.logger.Info("Database initialized successfully", slog.String("path", s.path))
	return nil
}

func (s *Store) migrate(db *sql.DB) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return &apperrors.InitializationError{Step: "load migrations", Err: err}
	}
	// the migrate driver closes the handle it wraps, so only the source is closed here
	defer func() { _ = src.Close() }()

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return &apperrors.InitializationError{Step: "migration driver", Err: err}
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return &apperrors.InitializationError{Step: "migration instance", Err: err}
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return &apperrors.InitializationError{Step: "apply migrations", Err: err}
	}
	if errors.Is(err, migrate.ErrNoChange) {
		s.logger.Debug("No new migrations to apply.")
	} else {
		s.logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// ExecuteQuery runs one parameterised statement. With commit set, the
// statement and any pending work are committed; otherwise the statement
// joins the pending session transaction.
func (s *Store) ExecuteQuery(ctx context.Context, query string, args []any, commit bool) (sql.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	if commit && s.pending == nil {
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, s.queryError(query, err)
		}
		return res, nil
	}

	if s.pending == nil {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return nil, s.queryError("BEGIN", err)
		}
		s.pending = tx
	}

	res, err := s.pending.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, s.queryError(query, err)
	}
	if commit {
		if err := s.commitPending(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Commit makes pending session work durable. It is a no-op without pending work.
func (s *Store) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitPending()
}

func (s *Store) commitPending() error {
	if s.pending == nil {
		return nil
	}
	tx := s.pending
	s.pending = nil
	if err := tx.Commit(); err != nil {
		return s.queryError("COMMIT", err)
	}
	return nil
}

// HasPending reports whether uncommitted session work exists.
func (s *Store) HasPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// QueryRows runs a read statement and hands every row to scan.
func (s *Store) QueryRows(ctx context.Context, query string, args []any, scan func(*sql.Rows) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.querier(ctx)
	if err != nil {
		return err
	}
	return s.queryRows(ctx, q, query, args, scan)
}

// QueryRow runs a single-row read statement and scans it into dest.
// A missing row is apperrors.ErrNotFound.
func (s *Store) QueryRow(ctx context.Context, query string, args []any, dest ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.querier(ctx)
	if err != nil {
		return err
	}
	return s.queryRow(ctx, q, query, args, dest...)
}

// WithTx runs fn atomically. Work already pending in the session is
// committed along with fn's statements; if fn fails only its own statements
// are rolled back.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.connect(ctx)
	if err != nil {
		return err
	}

	if s.pending != nil {
		scope := &Tx{store: s, q: s.pending}
		if _, err := s.pending.ExecContext(ctx, "SAVEPOINT with_tx"); err != nil {
			return s.queryError("SAVEPOINT with_tx", err)
		}
		if err := fn(scope); err != nil {
			_, _ = s.pending.ExecContext(ctx, "ROLLBACK TO with_tx")
			_, _ = s.pending.ExecContext(ctx, "RELEASE with_tx")
			return err
		}
		if _, err := s.pending.ExecContext(ctx, "RELEASE with_tx"); err != nil {
			return s.queryError("RELEASE with_tx", err)
		}
		return s.commitPending()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return s.queryError("BEGIN", err)
	}
	if err := fn(&Tx{store: s, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.Error("Rollback failed", slog.String("error", rbErr.Error()))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return s.queryError("COMMIT", err)
	}
	return nil
}

// Backup writes an online copy of the committed database next to the live
// file. Failures are logged and reported through ok; the session is unaffected.
func (s *Store) Backup(ctx context.Context) (path string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = filepath.Join(filepath.Dir(s.path), "backup_"+s.now().Format(BackupTimeLayout)+".db")

	db, err := s.connect(ctx)
	if err != nil {
		s.logger.Error("Backup failed", slog.String("path", path), slog.String("error", err.Error()))
		return path, false
	}
	if s.pending != nil {
		s.logger.Error("Backup failed", slog.String("path", path), slog.String("error", "uncommitted changes are pending"))
		return path, false
	}
	if err := s.vacuumInto(ctx, db, path); err != nil {
		s.logger.Error("Backup failed", slog.String("path", path), slog.String("error", err.Error()))
		return path, false
	}

	s.logger.Info("Database backup created", slog.String("path", path))
	return path, true
}

// vacuumInto snapshots the database into an empty temp file beside path and
// moves it into place, replacing an earlier backup taken in the same second.
func (s *Store) vacuumInto(ctx context.Context, db *sql.DB, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".backup-*.db")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if _, err := db.ExecContext(ctx, "VACUUM INTO ?", tmpName); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// Close discards pending session work and releases the connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		if err := s.pending.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.logger.Warn("Discarding pending changes failed", slog.String("error", err.Error()))
		}
		s.pending = nil
	}
	if s.db == nil {
		return nil
	}
	var err error
	if s.ownsDB {
		err = s.db.Close()
	}
	s.db = nil
	s.ownsDB = false
	s.logger.Info("Database connection closed", slog.String("path", s.path))
	return err
}

func (s *Store) queryRows(ctx context.Context, q DBTX, query string, args []any, scan func(*sql.Rows) error) error {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return s.queryError(query, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return s.queryError(query, err)
		}
	}
	if err := rows.Err(); err != nil {
		return s.queryError(query, err)
	}
	return nil
}

func (s *Store) queryRow(ctx context.Context, q DBTX, query string, args []any, dest ...any) error {
	if err := q.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return s.queryError(query, err)
	}
	return nil
}

// queryError logs a failed statement and classifies constraint violations.
func (s *Store) queryError(query string, err error) error {
	s.logger.Error("Query failed", slog.String("query", query), slog.String("error", err.Error()))
	if sentinel := classify(err); sentinel != nil {
		err = fmt.Errorf("%w: %w", sentinel, err)
	}
	return &apperrors.QueryError{Query: query, Err: err}
}

// classify maps engine constraint failures to the duplicate and validation sentinels.
func classify(err error) error {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return apperrors.ErrDuplicate
	case sqlite3lib.SQLITE_CONSTRAINT_CHECK, sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
		return apperrors.ErrValidation
	}
	if sqliteErr.Code()&0xff == sqlite3lib.SQLITE_CONSTRAINT {
		if strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicate
		}
		return apperrors.ErrValidation
	}
	return nil
}

// Tx is the statement scope handed to WithTx callbacks.
type Tx struct {
	store *Store
	q     DBTX
}

// Exec runs a write statement inside the transaction.
func (t *Tx) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := t.q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, t.store.queryError(query, err)
	}
	return res, nil
}

// QueryRow scans a single row read inside the transaction.
func (t *Tx) QueryRow(ctx context.Context, query string, args []any, dest ...any) error {
	return t.store.queryRow(ctx, t.q, query, args, dest...)
}

// QueryRows reads rows inside the transaction.
func (t *Tx) QueryRows(ctx context.Context, query string, args []any, scan func(*sql.Rows) error) error {
	return t.store.queryRows(ctx, t.q, query, args, scan)
}
