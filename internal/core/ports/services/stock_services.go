package services

import (
	"context"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/dto"
)

// StockReaderSvc defines read operations for stock transactions
type StockReaderSvc interface {
	// GetStock retrieves one stock transaction.
	GetStock(ctx context.Context, id int64) (*domain.StockTransaction, error)

	// ListStock retrieves a page of stock transactions and the token of the next page.
	ListStock(ctx context.Context, params dto.ListStockParams) ([]domain.StockTransaction, *string, error)
}

// StockWriterSvc defines write operations for stock transactions
type StockWriterSvc interface {
	// RecordStock validates a purchase or sale, derives its total and persists it.
	RecordStock(ctx context.Context, req dto.CreateStockRequest) (*domain.StockTransaction, error)
}

// StockSvcFacade combines all stock-related service interfaces
type StockSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}
