package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestStore(t *testing.T, path string, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithLogger(discardLogger())}, opts...)
	store := NewStore(path, opts...)
	require.NoError(t, store.Initialize(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	return openTestStore(t, filepath.Join(t.TempDir(), "finance.db"), opts...)
}

func sampleStock(item string) domain.StockTransaction {
	return domain.StockTransaction{
		Date:            time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TransactionType: domain.Purchase,
		VendorName:      "Acme",
		ItemName:        item,
		Quantity:        decimal.NewFromInt(3),
		UnitPrice:       decimal.NewFromInt(10),
	}.WithDerivedTotal()
}

func countRows(t *testing.T, store *Store, table string) int {
	t.Helper()
	var n int
	require.NoError(t, store.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table, nil, &n))
	return n
}

func schemaOf(t *testing.T, store *Store) []string {
	t.Helper()
	var schema []string
	err := store.QueryRows(context.Background(),
		"SELECT name FROM sqlite_master WHERE type IN ('table', 'index') ORDER BY name", nil,
		func(rows *sql.Rows) error {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			schema = append(schema, name)
			return nil
		})
	require.NoError(t, err)
	return schema
}

func TestInitialize_IsIdempotent(t *testing.T) {
	store := newTestStore(t)
	first := schemaOf(t, store)

	require.NoError(t, store.Initialize(context.Background()))

	assert.Equal(t, first, schemaOf(t, store))
	assert.Equal(t, len(domain.DefaultCategories), countRows(t, store, "categories"))
	assert.Equal(t, 1, countRows(t, store, "settings"))
	assert.Subset(t, first, []string{"stock", "financial_records", "categories", "settings"})
}

func TestInitialize_ConnectionFailure(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing", "dir", "finance.db"), WithLogger(discardLogger()))

	err := store.Initialize(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInitialization)
	assert.ErrorIs(t, err, apperrors.ErrConnection)
}

func TestConnect_EnablesForeignKeys(t *testing.T) {
	store := newTestStore(t)
	var enabled int
	require.NoError(t, store.QueryRow(context.Background(), "PRAGMA foreign_keys", nil, &enabled))
	assert.Equal(t, 1, enabled)
}

func TestSaveStock_DuplicateIsRejected(t *testing.T) {
	store := newTestStore(t)
	repo := newSQLiteStockRepository(store)
	ctx := context.Background()

	saved, err := repo.SaveStock(ctx, sampleStock("Widget"), true)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	_, err = repo.SaveStock(ctx, sampleStock("Widget"), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.ErrorIs(t, err, apperrors.ErrQuery)

	var qErr *apperrors.QueryError
	require.True(t, errors.As(err, &qErr))
	assert.Contains(t, qErr.Query, "INSERT INTO stock")
	assert.Equal(t, 1, countRows(t, store, "stock"))
}

func TestExecuteQuery_CheckConstraintIsValidation(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ExecuteQuery(context.Background(),
		"INSERT INTO stock (date, transaction_type, vendor_name, item_name, quantity, unit_price, total_price) VALUES (?, ?, ?, ?, ?, ?, ?)",
		[]any{"2024-03-01", "Purchase", "Acme", "Widget", -1, 10, 0}, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestExecuteQuery_PendingWorkIsDiscardedOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.db")
	ctx := context.Background()

	store := NewStore(path, WithLogger(discardLogger()))
	require.NoError(t, store.Initialize(ctx))
	repo := newSQLiteStockRepository(store)

	_, err := repo.SaveStock(ctx, sampleStock("Pending"), false)
	require.NoError(t, err)
	assert.True(t, store.HasPending())

	// reads share the session transaction
	all, err := repo.ListAllStock(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, store.Close())

	reopened := openTestStore(t, path)
	assert.Equal(t, 0, countRows(t, reopened, "stock"))
}

func TestExecuteQuery_CommitIncludesPendingWork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.db")
	ctx := context.Background()

	store := NewStore(path, WithLogger(discardLogger()))
	require.NoError(t, store.Initialize(ctx))
	repo := newSQLiteStockRepository(store)

	_, err := repo.SaveStock(ctx, sampleStock("First"), false)
	require.NoError(t, err)
	_, err = repo.SaveStock(ctx, sampleStock("Second"), true)
	require.NoError(t, err)
	assert.False(t, store.HasPending())
	require.NoError(t, store.Close())

	reopened := openTestStore(t, path)
	assert.Equal(t, 2, countRows(t, reopened, "stock"))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithTx(ctx, func(tx *Tx) error {
		if _, err := tx.Exec(ctx, "INSERT INTO categories (type, name) VALUES (?, ?)", "income", "Consulting"); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, len(domain.DefaultCategories), countRows(t, store, "categories"))
}

func TestWithTx_SavepointKeepsPendingWork(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := newSQLiteStockRepository(store)

	_, err := repo.SaveStock(ctx, sampleStock("Pending"), false)
	require.NoError(t, err)

	err = store.WithTx(ctx, func(tx *Tx) error {
		_, _ = tx.Exec(ctx, "INSERT INTO categories (type, name) VALUES (?, ?)", "income", "Consulting")
		return errors.New("abort")
	})
	require.Error(t, err)
	assert.True(t, store.HasPending())
	assert.Equal(t, 1, countRows(t, store, "stock"))
	assert.Equal(t, len(domain.DefaultCategories), countRows(t, store, "categories"))
}

func TestBackup_CopiesRows(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC) }
	store := newTestStore(t, WithClock(clock))
	ctx := context.Background()
	repo := newSQLiteStockRepository(store)
	for _, item := range []string{"Widget", "Gadget", "Gizmo"} {
		_, err := repo.SaveStock(ctx, sampleStock(item), true)
		require.NoError(t, err)
	}

	path, ok := store.Backup(ctx)

	require.True(t, ok)
	assert.Equal(t, filepath.Join(filepath.Dir(store.Path()), "backup_20240301_153000.db"), path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	backup := openTestStore(t, path)
	assert.Equal(t, 3, countRows(t, backup, "stock"))
	assert.Equal(t, countRows(t, store, "categories"), countRows(t, backup, "categories"))
}

func TestBackup_SameSecondReplacesSnapshot(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC) }
	store := newTestStore(t, WithClock(clock))
	ctx := context.Background()
	repo := newSQLiteStockRepository(store)

	first, ok := store.Backup(ctx)
	require.True(t, ok)

	_, err := repo.SaveStock(ctx, sampleStock("Widget"), true)
	require.NoError(t, err)
	second, ok := store.Backup(ctx)

	require.True(t, ok)
	assert.Equal(t, first, second)
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".backup-", "temp snapshot left behind")
	}

	backup := openTestStore(t, second)
	assert.Equal(t, 1, countRows(t, backup, "stock"))
}

func TestBackup_FailsWithPendingWork(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, err := newSQLiteStockRepository(store).SaveStock(ctx, sampleStock("Pending"), false)
	require.NoError(t, err)

	_, ok := store.Backup(ctx)

	assert.False(t, ok)
	assert.True(t, store.HasPending())
}

func TestExecuteQuery_LogsFailedStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var logs bytes.Buffer
	store := NewStore("finance.db", WithDB(db), WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))

	mock.ExpectExec("INSERT INTO financial_records").WillReturnError(errors.New("disk I/O error"))

	_, err = store.ExecuteQuery(context.Background(),
		"INSERT INTO financial_records (type, amount) VALUES (?, ?)", []any{"income", 10}, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrQuery)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, logs.String(), "Query failed")
	assert.Contains(t, logs.String(), "INSERT INTO financial_records")
	assert.Contains(t, logs.String(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRow_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore("finance.db", WithDB(db), WithLogger(discardLogger()))
	mock.ExpectQuery("SELECT company_name").WillReturnRows(sqlmock.NewRows([]string{"company_name"}))

	var name string
	err = store.QueryRow(context.Background(), "SELECT company_name FROM settings WHERE id = 1", nil, &name)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
