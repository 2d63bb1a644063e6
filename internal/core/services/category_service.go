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

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, recordType string) ([]domain.Category, error) {
	rt := domain.RecordType(strings.ToLower(strings.TrimSpace(recordType)))
	if rt != "" && !rt.IsValid() {
		return nil, s.Rejected(ctx, "category", []string{"Category type must be 'income' or 'expense'"})
	}
	categories, err := s.categoryRepo.ListCategories(ctx, rt)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		Type: domain.RecordType(strings.ToLower(strings.TrimSpace(req.Type))),
		Name: strings.TrimSpace(req.Name),
	}
	if messages := category.Validate(); len(messages) > 0 {
		return nil, s.Rejected(ctx, "category", messages)
	}

	saved, err := s.categoryRepo.SaveCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", category.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return saved, nil
}
