package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/core/services"
	"github.com/SscSPs/finance_manager/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(repo)

	repo.On("UpdateSettings", ctx, mock.MatchedBy(func(s domain.Settings) bool {
		return s.CompanyName == "Corner Shop" && s.TaxRate.Equal(dec("0.08"))
	})).Return(nil).Once()
	repo.On("GetSettings", ctx).Return(&domain.Settings{CompanyName: "Corner Shop", TaxRate: dec("0.08"), InvoiceCounter: 5}, nil).Once()

	got, err := svc.UpdateSettings(ctx, dto.UpdateSettingsRequest{CompanyName: " Corner Shop ", TaxRate: dec("0.08")})

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.InvoiceCounter)
	repo.AssertExpectations(t)
}

func TestSettingsService_UpdateRejectsInvalid(t *testing.T) {
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(repo)

	_, err := svc.UpdateSettings(context.Background(), dto.UpdateSettingsRequest{TaxRate: dec("-0.1")})

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Company name cannot be empty", "Tax rate cannot be negative"}, vErr.Messages)
	repo.AssertNotCalled(t, "UpdateSettings", mock.Anything, mock.Anything)
}

func TestCategoryService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	svc := services.NewCategoryService(repo)

	repo.On("ListCategories", ctx, domain.Expense).Return([]domain.Category{{ID: 3, Type: domain.Expense, Name: "Rent"}}, nil).Once()
	repo.On("SaveCategory", ctx, domain.Category{Type: domain.Expense, Name: "Rent"}).Return(nil, apperrors.ErrDuplicate).Once()

	categories, err := svc.ListCategories(ctx, "EXPENSE")
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	_, err = svc.ListCategories(ctx, "transfer")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CreateCategory(ctx, dto.CreateCategoryRequest{Type: "expense", Name: " Rent "})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = svc.CreateCategory(ctx, dto.CreateCategoryRequest{Type: "expense"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertExpectations(t)
}
