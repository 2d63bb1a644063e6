package services

import (
	"context"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/dto"
)

// CategorySvcFacade defines the operations on ledger categories
type CategorySvcFacade interface {
	// ListCategories retrieves categories of one type, or all of them when recordType is empty.
	ListCategories(ctx context.Context, recordType string) ([]domain.Category, error)

	// CreateCategory validates and persists a category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
}
