package services

import (
	"context"

	"github.com/SscSPs/finance_manager/internal/core/domain"
)

// MaintenanceService defines backup and data repair operations
type MaintenanceService interface {
	// Backup snapshots the database and returns the snapshot path.
	Backup(ctx context.Context) (string, error)

	// Verify checks storage integrity and re-validates every stored row.
	Verify(ctx context.Context) (*domain.VerificationReport, error)

	// RecalculateTotals fixes drifted stock totals and returns how many changed.
	RecalculateTotals(ctx context.Context) (int64, error)
}
