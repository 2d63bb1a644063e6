package services

import (
	"context"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/dto"
)

// LedgerReaderSvc defines read operations for income and expense entries
type LedgerReaderSvc interface {
	// GetRecord retrieves one ledger entry.
	GetRecord(ctx context.Context, id int64) (*domain.FinancialRecord, error)

	// ListRecords retrieves a page of ledger entries and the token of the next page.
	ListRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.FinancialRecord, *string, error)
}

// LedgerWriterSvc defines write operations for income and expense entries
type LedgerWriterSvc interface {
	// RecordEntry validates and persists a ledger entry.
	RecordEntry(ctx context.Context, req dto.CreateRecordRequest) (*domain.FinancialRecord, error)

	// MarkVerified sets the verified flag of an entry and returns the updated entry.
	MarkVerified(ctx context.Context, id int64, verified bool) (*domain.FinancialRecord, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
