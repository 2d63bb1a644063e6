package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
	"github.com/SscSPs/finance_manager/internal/models"
	"github.com/SscSPs/finance_manager/internal/utils/mapping"
)

type SQLiteSettingsRepository struct {
	BaseRepository
}

func newSQLiteSettingsRepository(store *Store) portsrepo.SettingsRepositoryFacade {
	return &SQLiteSettingsRepository{
		BaseRepository: BaseRepository{Store: store},
	}
}

var _ portsrepo.SettingsRepositoryFacade = (*SQLiteSettingsRepository)(nil)

// GetSettings retrieves the singleton settings row.
func (r *SQLiteSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT id, company_name, logo_path, address, tax_rate, invoice_counter
		FROM settings
		WHERE id = ?;
	`
	var m models.Settings
	err := r.Store.QueryRow(ctx, query, []any{domain.SettingsID},
		&m.ID,
		&m.CompanyName,
		&m.LogoPath,
		&m.Address,
		&m.TaxRate,
		&m.InvoiceCounter,
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	d := mapping.ToDomainSettings(m)
	return &d, nil
}

// UpdateSettings upserts company identity and tax rate and commits them.
func (r *SQLiteSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	m := mapping.ToModelSettings(settings)
	query := `
		INSERT INTO settings (id, company_name, logo_path, address, tax_rate)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			company_name = excluded.company_name,
			logo_path = excluded.logo_path,
			address = excluded.address,
			tax_rate = excluded.tax_rate;
	`
	_, err := r.Store.ExecuteQuery(ctx, query, []any{
		m.ID,
		m.CompanyName,
		m.LogoPath,
		m.Address,
		m.TaxRate,
	}, true)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

// AllocateInvoiceNumber reads the counter and advances it atomically.
func (r *SQLiteSettingsRepository) AllocateInvoiceNumber(ctx context.Context) (int64, error) {
	var allocated int64
	err := r.Store.WithTx(ctx, func(tx *Tx) error {
		var counter sql.NullInt64
		if err := tx.QueryRow(ctx, `SELECT invoice_counter FROM settings WHERE id = ?;`, []any{domain.SettingsID}, &counter); err != nil {
			return err
		}
		allocated = counter.Int64
		if !counter.Valid || allocated < 1 {
			allocated = 1
		}
		_, err := tx.Exec(ctx, `UPDATE settings SET invoice_counter = ? WHERE id = ?;`, allocated+1, domain.SettingsID)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to allocate invoice number: %w", err)
	}
	return allocated, nil
}

// ReleaseInvoiceNumber moves the counter back to n when nothing was allocated after it.
func (r *SQLiteSettingsRepository) ReleaseInvoiceNumber(ctx context.Context, n int64) (bool, error) {
	res, err := r.Store.ExecuteQuery(ctx,
		`UPDATE settings SET invoice_counter = ? WHERE id = ? AND invoice_counter = ?;`,
		[]any{n, domain.SettingsID, n + 1}, true)
	if err != nil {
		return false, fmt.Errorf("failed to release invoice number: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to release invoice number: %w", err)
	}
	return affected == 1, nil
}
