package services

import (
	"context"
	"time"

	"github.com/SscSPs/finance_manager/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// ProfitAndLoss aggregates the persisted ledger, optionally limited to a date range.
	ProfitAndLoss(ctx context.Context, from, to *time.Time) (*domain.PAndLReport, error)
}
