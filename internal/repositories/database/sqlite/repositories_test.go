package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateInvoiceNumber_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.db")
	ctx := context.Background()

	store := NewStore(path, WithLogger(discardLogger()))
	require.NoError(t, store.Initialize(ctx))
	settings := newSQLiteSettingsRepository(store)

	first, err := settings.AllocateInvoiceNumber(ctx)
	require.NoError(t, err)
	second, err := settings.AllocateInvoiceNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	require.NoError(t, store.Close())

	reopened := openTestStore(t, path)
	third, err := newSQLiteSettingsRepository(reopened).AllocateInvoiceNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), third)

	current, err := newSQLiteSettingsRepository(reopened).GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), current.InvoiceCounter)
}

func TestReleaseInvoiceNumber_OnlyLatest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := newSQLiteSettingsRepository(store)

	first, err := repo.AllocateInvoiceNumber(ctx)
	require.NoError(t, err)
	released, err := repo.ReleaseInvoiceNumber(ctx, first)
	require.NoError(t, err)
	assert.True(t, released)

	again, err := repo.AllocateInvoiceNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again, "a released number is issued again")

	_, err = repo.AllocateInvoiceNumber(ctx)
	require.NoError(t, err)
	released, err = repo.ReleaseInvoiceNumber(ctx, again)
	require.NoError(t, err)
	assert.False(t, released, "a later allocation keeps the counter")

	current, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), current.InvoiceCounter)
}

func TestSettings_DefaultsAndUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := newSQLiteSettingsRepository(store)

	got, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "My Business", got.CompanyName)
	assert.Equal(t, "assets/logo.png", got.LogoPath)
	assert.True(t, got.TaxRate.IsZero())
	assert.Equal(t, int64(1), got.InvoiceCounter)

	_, err = repo.AllocateInvoiceNumber(ctx)
	require.NoError(t, err)

	err = repo.UpdateSettings(ctx, domain.Settings{
		CompanyName: "Corner Shop",
		Address:     "1 Main St",
		TaxRate:     decimal.RequireFromString("0.08"),
	})
	require.NoError(t, err)

	got, err = repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Corner Shop", got.CompanyName)
	assert.Equal(t, "1 Main St", got.Address)
	assert.True(t, decimal.RequireFromString("0.08").Equal(got.TaxRate))
	assert.Equal(t, int64(2), got.InvoiceCounter, "updating settings keeps the counter")

	err = repo.UpdateSettings(ctx, domain.Settings{CompanyName: "Corner Shop", TaxRate: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecords_ListPagesAndAmounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := newSQLiteFinancialRecordRepository(store)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, amount := range []string{"600", "400", "100", "300", "0.10"} {
		recordType := domain.Income
		if i >= 2 {
			recordType = domain.Expense
		}
		_, err := repo.SaveRecord(ctx, domain.FinancialRecord{
			Type:     recordType,
			Date:     base.AddDate(0, 0, i),
			Category: "Sales",
			Amount:   decimal.RequireFromString(amount),
		}, true)
		require.NoError(t, err)
	}

	page, token, err := repo.ListRecords(ctx, domain.RecordFilter{}, 2, nil)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotNil(t, token)
	assert.Equal(t, base.AddDate(0, 0, 4), page[0].Date, "newest first")

	rest, token, err := repo.ListRecords(ctx, domain.RecordFilter{}, 10, token)
	require.NoError(t, err)
	assert.Len(t, rest, 3)
	assert.Nil(t, token)

	_, _, err = repo.ListRecords(ctx, domain.RecordFilter{}, 10, ptr("garbage"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	income, err := repo.ListAmounts(ctx, domain.RecordFilter{Type: domain.Income})
	require.NoError(t, err)
	assert.Len(t, income, 2)

	from := base.AddDate(0, 0, 3)
	ranged, err := repo.ListAllRecords(ctx, domain.RecordFilter{Type: domain.Expense, From: &from})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
}

func TestRecords_SetVerified(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := newSQLiteFinancialRecordRepository(store)

	saved, err := repo.SaveRecord(ctx, domain.FinancialRecord{
		Type:     domain.Expense,
		Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Category: "Rent",
		Amount:   decimal.NewFromInt(1200),
	}, true)
	require.NoError(t, err)

	require.NoError(t, repo.SetVerified(ctx, saved.ID, true))
	found, err := repo.FindRecordByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, found.Verified)
	assert.Equal(t, "", found.Description)

	assert.ErrorIs(t, repo.SetVerified(ctx, 999, true), apperrors.ErrNotFound)
	_, err = repo.FindRecordByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStock_RecalculateTotals(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := newSQLiteStockRepository(store)

	_, err := repo.SaveStock(ctx, sampleStock("Correct"), true)
	require.NoError(t, err)
	drifted := sampleStock("Drifted")
	drifted.TotalPrice = decimal.NewFromInt(29)
	saved, err := repo.SaveStock(ctx, drifted, true)
	require.NoError(t, err)

	changed, err := repo.RecalculateTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	fixed, err := repo.FindStockByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(fixed.TotalPrice))

	changed, err = repo.RecalculateTotals(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestStock_FindByIDsKeepsOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := newSQLiteStockRepository(store)

	a, err := repo.SaveStock(ctx, sampleStock("A"), true)
	require.NoError(t, err)
	b, err := repo.SaveStock(ctx, sampleStock("B"), true)
	require.NoError(t, err)

	got, err := repo.FindStockByIDs(ctx, []int64{b.ID, a.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].ItemName)
	assert.Equal(t, "A", got[1].ItemName)

	_, err = repo.FindStockByIDs(ctx, []int64{a.ID, 404})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	sales, _, err := repo.ListStock(ctx, domain.StockFilter{TransactionType: domain.Sale}, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestCategories_SaveAndDuplicate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := newSQLiteCategoryRepository(store)

	income, err := repo.ListCategories(ctx, domain.Income)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sales", "Services"}, names(income))

	_, err = repo.SaveCategory(ctx, domain.Category{Type: domain.Expense, Name: "Utilities"})
	require.NoError(t, err)

	_, err = repo.SaveCategory(ctx, domain.Category{Type: domain.Expense, Name: "Rent"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	all, err := repo.ListCategories(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, len(domain.DefaultCategories)+1)
}

func TestMaintenance_ChecksHealthyDatabase(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := newSQLiteMaintenanceRepository(store)

	messages, err := repo.IntegrityCheck(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, messages)

	violations, err := repo.ForeignKeyViolations(ctx)
	require.NoError(t, err)
	assert.Zero(t, violations)
}

func names(categories []domain.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.Name
	}
	return out
}

func ptr(s string) *string { return &s }
