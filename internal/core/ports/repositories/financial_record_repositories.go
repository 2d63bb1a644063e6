package repositories

import (
	"context"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FinancialRecordReader defines read operations for ledger entries
type FinancialRecordReader interface {
	// FindRecordByID retrieves one ledger entry.
	FindRecordByID(ctx context.Context, id int64) (*domain.FinancialRecord, error)

	// ListRecords retrieves a page of ledger entries, newest first.
	// It returns the records, a token for the next page, and an error.
	ListRecords(ctx context.Context, filter domain.RecordFilter, limit int, nextToken *string) ([]domain.FinancialRecord, *string, error)

	// ListAllRecords retrieves every ledger entry matching filter ordered by id.
	ListAllRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.FinancialRecord, error)

	// ListAmounts retrieves the stored amounts of every entry matching filter.
	ListAmounts(ctx context.Context, filter domain.RecordFilter) ([]decimal.Decimal, error)
}

// FinancialRecordWriter defines write operations for ledger entries
type FinancialRecordWriter interface {
	// SaveRecord inserts a ledger entry. With commit unset the insert joins
	// the pending session transaction.
	SaveRecord(ctx context.Context, record domain.FinancialRecord, commit bool) (*domain.FinancialRecord, error)

	// SetVerified updates the verified flag of one entry.
	SetVerified(ctx context.Context, id int64, verified bool) error
}

// FinancialRecordRepositoryFacade combines all ledger repository interfaces
type FinancialRecordRepositoryFacade interface {
	FinancialRecordReader
	FinancialRecordWriter
}

// FinancialRecordRepositoryWithTx extends FinancialRecordRepositoryFacade with session transaction control
type FinancialRecordRepositoryWithTx interface {
	FinancialRecordRepositoryFacade
	TransactionManager
}
