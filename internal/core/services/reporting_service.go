package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	recordRepo portsrepo.FinancialRecordReader
}

// NewReportingService creates a reporting service over the persisted ledger.
func NewReportingService(recordRepo portsrepo.FinancialRecordReader) portssvc.ReportingService {
	return &reportingService{recordRepo: recordRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// ProfitAndLoss sums income and expense amounts on every call so the result
// always reflects what is stored.
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to *time.Time) (*domain.PAndLReport, error) {
	income, err := s.recordRepo.ListAmounts(ctx, domain.RecordFilter{Type: domain.Income, From: from, To: to})
	if err != nil {
		s.LogError(ctx, err, "Failed to read income amounts")
		return nil, fmt.Errorf("failed to compute profit and loss: %w", err)
	}
	expense, err := s.recordRepo.ListAmounts(ctx, domain.RecordFilter{Type: domain.Expense, From: from, To: to})
	if err != nil {
		s.LogError(ctx, err, "Failed to read expense amounts")
		return nil, fmt.Errorf("failed to compute profit and loss: %w", err)
	}

	report := accounting.BuildPAndL(accounting.SumAmounts(income), accounting.SumAmounts(expense))
	report.From = from
	report.To = to

	s.LogDebug(ctx, "Profit and loss computed",
		slog.String("net", report.NetProfit.String()),
		slog.String("status", string(report.Status())))
	return &report, nil
}
