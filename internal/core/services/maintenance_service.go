package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/utils/accounting"
)

type maintenanceService struct {
	BaseService
	maintenanceRepo portsrepo.MaintenanceRepository
	stockRepo       portsrepo.StockRepositoryFacade
	recordRepo      portsrepo.FinancialRecordReader
}

func NewMaintenanceService(
	maintenanceRepo portsrepo.MaintenanceRepository,
	stockRepo portsrepo.StockRepositoryFacade,
	recordRepo portsrepo.FinancialRecordReader,
) portssvc.MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		stockRepo:       stockRepo,
		recordRepo:      recordRepo,
	}
}

var _ portssvc.MaintenanceService = (*maintenanceService)(nil)

func (s *maintenanceService) Backup(ctx context.Context) (string, error) {
	path, ok := s.maintenanceRepo.Backup(ctx)
	if !ok {
		err := fmt.Errorf("%w: could not write %s", apperrors.ErrBackup, path)
		s.LogError(ctx, err, "Backup failed")
		return "", err
	}
	s.LogInfo(ctx, "Backup created", slog.String("path", path))
	return path, nil
}

func (s *maintenanceService) Verify(ctx context.Context) (*domain.VerificationReport, error) {
	report := &domain.VerificationReport{
		InvalidRows:     []domain.RowIssue{},
		TotalMismatches: []domain.StockTransaction{},
	}

	integrity, err := s.maintenanceRepo.IntegrityCheck(ctx)
	if err != nil {
		s.LogError(ctx, err, "Integrity check failed")
		return nil, fmt.Errorf("failed to verify data: %w", err)
	}
	report.IntegrityMessages = integrity

	violations, err := s.maintenanceRepo.ForeignKeyViolations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Foreign key check failed")
		return nil, fmt.Errorf("failed to verify data: %w", err)
	}
	report.ForeignKeyViolations = violations

	stock, err := s.stockRepo.ListAllStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to verify stock: %w", err)
	}
	for _, txn := range stock {
		if messages := txn.Validate(); len(messages) > 0 {
			report.InvalidRows = append(report.InvalidRows, domain.RowIssue{Table: "stock", ID: txn.ID, Messages: messages})
		}
		if accounting.TotalDrifted(txn) {
			report.TotalMismatches = append(report.TotalMismatches, txn)
		}
	}

	records, err := s.recordRepo.ListAllRecords(ctx, domain.RecordFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to verify records: %w", err)
	}
	for _, record := range records {
		if messages := record.Validate(); len(messages) > 0 {
			report.InvalidRows = append(report.InvalidRows, domain.RowIssue{Table: "financial_records", ID: record.ID, Messages: messages})
		}
	}

	s.LogInfo(ctx, "Data verification finished",
		slog.Bool("ok", report.OK()),
		slog.Int("invalid_rows", len(report.InvalidRows)),
		slog.Int("total_mismatches", len(report.TotalMismatches)))
	return report, nil
}

func (s *maintenanceService) RecalculateTotals(ctx context.Context) (int64, error) {
	updated, err := s.stockRepo.RecalculateTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to recalculate totals")
		return 0, fmt.Errorf("failed to recalculate totals: %w", err)
	}
	s.LogInfo(ctx, "Stock totals recalculated", slog.Int64("updated", updated))
	return updated, nil
}
