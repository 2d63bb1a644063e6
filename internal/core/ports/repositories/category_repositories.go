package repositories

import (
	"context"

	"github.com/SscSPs/finance_manager/internal/core/domain"
)

// CategoryReader defines read operations for categories
type CategoryReader interface {
	// ListCategories retrieves categories of one type, or all of them when recordType is empty.
	ListCategories(ctx context.Context, recordType domain.RecordType) ([]domain.Category, error)
}

// CategoryWriter defines write operations for categories
type CategoryWriter interface {
	// SaveCategory inserts a category. A (type, name) pair that exists is ErrDuplicate.
	SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
}

// CategoryRepositoryFacade combines all category repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
