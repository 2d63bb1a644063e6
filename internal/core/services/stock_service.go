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

type stockService struct {
	BaseService
	stockRepo portsrepo.StockRepositoryFacade
}

// NewStockService creates a service recording stock purchases and sales.
func NewStockService(stockRepo portsrepo.StockRepositoryFacade) portssvc.StockSvcFacade {
	return &stockService{stockRepo: stockRepo}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

func (s *stockService) RecordStock(ctx context.Context, req dto.CreateStockRequest) (*domain.StockTransaction, error) {
	date, malformed := parseDate(req.Date)
	txn := domain.StockTransaction{
		Date:            date,
		TransactionType: domain.StockTransactionType(strings.TrimSpace(req.TransactionType)),
		VendorName:      strings.TrimSpace(req.VendorName),
		ItemName:        strings.TrimSpace(req.ItemName),
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
	}.WithDerivedTotal()

	if messages := withDateMessage(txn.Validate(), malformed); len(messages) > 0 {
		return nil, s.Rejected(ctx, "stock", messages)
	}

	saved, err := s.stockRepo.SaveStock(ctx, txn, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to save stock transaction",
			slog.String("vendor", txn.VendorName),
			slog.String("item", txn.ItemName))
		return nil, fmt.Errorf("failed to record stock transaction: %w", err)
	}

	s.LogInfo(ctx, "Stock transaction recorded",
		slog.Int64("id", saved.ID),
		slog.String("type", string(saved.TransactionType)),
		slog.String("total", saved.TotalPrice.String()))
	return saved, nil
}

func (s *stockService) GetStock(ctx context.Context, id int64) (*domain.StockTransaction, error) {
	txn, err := s.stockRepo.FindStockByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock transaction %d: %w", id, err)
	}
	return txn, nil
}

func (s *stockService) ListStock(ctx context.Context, params dto.ListStockParams) ([]domain.StockTransaction, *string, error) {
	from, to, err := parseRange(params.From, params.To)
	if err != nil {
		return nil, nil, err
	}
	filter := domain.StockFilter{
		TransactionType: domain.StockTransactionType(params.TransactionType),
		From:            from,
		To:              to,
	}
	txns, next, err := s.stockRepo.ListStock(ctx, filter, params.Limit, tokenPtr(params.NextToken))
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock transactions")
		return nil, nil, fmt.Errorf("failed to list stock transactions: %w", err)
	}
	return txns, next, nil
}
