package repositories

import (
	"context"

	"github.com/SscSPs/finance_manager/internal/core/domain"
)

// StockReader defines read operations for stock transactions
type StockReader interface {
	// FindStockByID retrieves one stock transaction.
	FindStockByID(ctx context.Context, id int64) (*domain.StockTransaction, error)

	// FindStockByIDs retrieves the given stock transactions in the order of ids.
	FindStockByIDs(ctx context.Context, ids []int64) ([]domain.StockTransaction, error)

	// ListStock retrieves a page of stock transactions, newest first.
	// It returns the rows, a token for the next page, and an error.
	ListStock(ctx context.Context, filter domain.StockFilter, limit int, nextToken *string) ([]domain.StockTransaction, *string, error)

	// ListAllStock retrieves every stock transaction ordered by id.
	ListAllStock(ctx context.Context) ([]domain.StockTransaction, error)
}

// StockWriter defines write operations for stock transactions
type StockWriter interface {
	// SaveStock inserts a stock transaction. With commit unset the insert
	// joins the pending session transaction.
	SaveStock(ctx context.Context, txn domain.StockTransaction, commit bool) (*domain.StockTransaction, error)

	// RecalculateTotals rewrites total_price for rows where it drifted from
	// quantity * unit_price and returns the number of rows changed.
	RecalculateTotals(ctx context.Context) (int64, error)
}

// StockRepositoryFacade combines all stock-related repository interfaces
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}

// StockRepositoryWithTx extends StockRepositoryFacade with session transaction control
type StockRepositoryWithTx interface {
	StockRepositoryFacade
	TransactionManager
}
