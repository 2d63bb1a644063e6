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
	"github.com/shopspring/decimal"
)

const recordColumns = `id, type, date, category, description, amount, verified`

type SQLiteFinancialRecordRepository struct {
	BaseRepository
}

// newSQLiteFinancialRecordRepository creates a new repository for ledger entries.
func newSQLiteFinancialRecordRepository(store *Store) portsrepo.FinancialRecordRepositoryWithTx {
	return &SQLiteFinancialRecordRepository{
		BaseRepository: BaseRepository{Store: store},
	}
}

var _ portsrepo.FinancialRecordRepositoryWithTx = (*SQLiteFinancialRecordRepository)(nil)

func scanRecord(row rowScanner) (models.FinancialRecord, error) {
	var m models.FinancialRecord
	err := row.Scan(
		&m.ID,
		&m.Type,
		&m.Date,
		&m.Category,
		&m.Description,
		&m.Amount,
		&m.Verified,
	)
	return m, err
}

// recordWhere builds the WHERE clause shared by listings and sums.
func recordWhere(filter domain.RecordFilter) ([]string, []any) {
	var where []string
	var args []any
	if filter.Type != "" {
		where = append(where, "type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.From != nil {
		where = append(where, "date >= ?")
		args = append(args, mapping.ToModelDate(*filter.From))
	}
	if filter.To != nil {
		where = append(where, "date <= ?")
		args = append(args, mapping.ToModelDate(*filter.To))
	}
	return where, args
}

func withWhere(query string, where []string) string {
	if len(where) == 0 {
		return query
	}
	return query + ` WHERE ` + strings.Join(where, " AND ")
}

// SaveRecord inserts a ledger entry and returns it with its assigned id.
func (r *SQLiteFinancialRecordRepository) SaveRecord(ctx context.Context, record domain.FinancialRecord, commit bool) (*domain.FinancialRecord, error) {
	m := mapping.ToModelFinancialRecord(record)
	query := `
		INSERT INTO financial_records (type, date, category, description, amount, verified)
		VALUES (?, ?, ?, ?, ?, ?);
	`
	res, err := r.Store.ExecuteQuery(ctx, query, []any{
		m.Type,
		m.Date,
		m.Category,
		m.Description,
		m.Amount,
		m.Verified,
	}, commit)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s record: %w", m.Type.String, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read record id: %w", err)
	}
	record.ID = id
	return &record, nil
}

// FindRecordByID retrieves a ledger entry by id.
func (r *SQLiteFinancialRecordRepository) FindRecordByID(ctx context.Context, id int64) (*domain.FinancialRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM financial_records WHERE id = ?;`
	var found *domain.FinancialRecord
	err := r.Store.QueryRows(ctx, query, []any{id}, func(rows *sql.Rows) error {
		m, err := scanRecord(rows)
		if err != nil {
			return err
		}
		d := mapping.ToDomainFinancialRecord(m)
		found = &d
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find record %d: %w", id, err)
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

// ListRecords retrieves a paginated list of ledger entries using token-based pagination.
func (r *SQLiteFinancialRecordRepository) ListRecords(ctx context.Context, filter domain.RecordFilter, limit int, nextToken *string) ([]domain.FinancialRecord, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	where, args := recordWhere(filter)
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewValidationError([]string{"invalid nextToken"})
		}
		where = append(where, "(date, id) < (?, ?)")
		args = append(args, mapping.ToModelDate(lastDate), lastID)
	}
	query := withWhere(`SELECT `+recordColumns+` FROM financial_records`, where) + ` ORDER BY date DESC, id DESC LIMIT ?;`
	args = append(args, fetchLimit)

	modelRows := make([]models.FinancialRecord, 0, fetchLimit)
	err := r.Store.QueryRows(ctx, query, args, func(rows *sql.Rows) error {
		m, err := scanRecord(rows)
		if err != nil {
			return err
		}
		modelRows = append(modelRows, m)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list records: %w", err)
	}

	var nextTokenVal *string
	if len(modelRows) > limit {
		last := mapping.ToDomainFinancialRecord(modelRows[limit-1])
		token := pagination.EncodeToken(last.Date, last.ID)
		nextTokenVal = &token
		modelRows = modelRows[:limit]
	}
	return mapping.ToDomainFinancialRecordSlice(modelRows), nextTokenVal, nil
}

// ListAllRecords retrieves every ledger entry matching filter ordered by id.
func (r *SQLiteFinancialRecordRepository) ListAllRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.FinancialRecord, error) {
	where, args := recordWhere(filter)
	query := withWhere(`SELECT `+recordColumns+` FROM financial_records`, where) + ` ORDER BY id;`

	modelRows := []models.FinancialRecord{}
	err := r.Store.QueryRows(ctx, query, args, func(rows *sql.Rows) error {
		m, err := scanRecord(rows)
		if err != nil {
			return err
		}
		modelRows = append(modelRows, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return mapping.ToDomainFinancialRecordSlice(modelRows), nil
}

// ListAmounts retrieves stored amounts so they can be summed without float accumulation.
func (r *SQLiteFinancialRecordRepository) ListAmounts(ctx context.Context, filter domain.RecordFilter) ([]decimal.Decimal, error) {
	where, args := recordWhere(filter)
	query := withWhere(`SELECT amount FROM financial_records`, where) + `;`

	amounts := []decimal.Decimal{}
	err := r.Store.QueryRows(ctx, query, args, func(rows *sql.Rows) error {
		var amount float64
		if err := rows.Scan(&amount); err != nil {
			return err
		}
		amounts = append(amounts, decimal.NewFromFloat(amount))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read record amounts: %w", err)
	}
	return amounts, nil
}

// SetVerified updates the verified flag and commits it.
func (r *SQLiteFinancialRecordRepository) SetVerified(ctx context.Context, id int64, verified bool) error {
	query := `UPDATE financial_records SET verified = ? WHERE id = ?;`
	res, err := r.Store.ExecuteQuery(ctx, query, []any{verified, id}, true)
	if err != nil {
		return fmt.Errorf("failed to update verified flag of record %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read updated row count: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
