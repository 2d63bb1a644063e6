package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/dto"
)

type ledgerService struct {
	BaseService
	recordRepo portsrepo.FinancialRecordRepositoryFacade
}

// NewLedgerService creates a service recording income and expense entries.
func NewLedgerService(recordRepo portsrepo.FinancialRecordRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{recordRepo: recordRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) RecordEntry(ctx context.Context, req dto.CreateRecordRequest) (*domain.FinancialRecord, error) {
	date, malformed := parseDate(req.Date)
	record := domain.FinancialRecord{
		Type:        domain.RecordType(strings.ToLower(strings.TrimSpace(req.Type))),
		Date:        date,
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		Verified:    req.Verified,
	}

	if messages := withDateMessage(record.Validate(), malformed); len(messages) > 0 {
		return nil, s.Rejected(ctx, "financial_record", messages)
	}

	saved, err := s.recordRepo.SaveRecord(ctx, record, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry",
			slog.String("type", string(record.Type)),
			slog.String("category", record.Category))
		return nil, fmt.Errorf("failed to record %s entry: %w", record.Type, err)
	}

	s.LogInfo(ctx, "Ledger entry recorded",
		slog.Int64("id", saved.ID),
		slog.String("type", string(saved.Type)),
		slog.String("amount", saved.Amount.String()))
	return saved, nil
}

func (s *ledgerService) GetRecord(ctx context.Context, id int64) (*domain.FinancialRecord, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get record %d: %w", id, err)
	}
	return record, nil
}

func (s *ledgerService) ListRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.FinancialRecord, *string, error) {
	from, to, err := parseRange(params.From, params.To)
	if err != nil {
		return nil, nil, err
	}
	filter := domain.RecordFilter{
		Type:     domain.RecordType(params.Type),
		Category: strings.TrimSpace(params.Category),
		From:     from,
		To:       to,
	}
	records, next, err := s.recordRepo.ListRecords(ctx, filter, params.Limit, tokenPtr(params.NextToken))
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries")
		return nil, nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, next, nil
}

func (s *ledgerService) MarkVerified(ctx context.Context, id int64, verified bool) (*domain.FinancialRecord, error) {
	if err := s.recordRepo.SetVerified(ctx, id, verified); err != nil {
		s.LogError(ctx, err, "Failed to update verified flag", slog.Int64("id", id))
		return nil, fmt.Errorf("failed to mark record %d: %w", id, err)
	}
	record, err := s.recordRepo.FindRecordByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload record %d: %w", id, err)
	}
	s.LogInfo(ctx, "Ledger entry verification updated", slog.Int64("id", id), slog.Bool("verified", verified))
	return record, nil
}
