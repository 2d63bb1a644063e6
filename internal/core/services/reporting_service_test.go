package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ofType(recordType domain.RecordType) any {
	return mock.MatchedBy(func(f domain.RecordFilter) bool { return f.Type == recordType })
}

func TestReportingService_ProfitAndLoss(t *testing.T) {
	tests := []struct {
		name    string
		income  []decimal.Decimal
		expense []decimal.Decimal
		net     string
		status  domain.ProfitLossStatus
	}{
		{"profit", []decimal.Decimal{dec("600"), dec("400")}, []decimal.Decimal{dec("100"), dec("300")}, "600", domain.Profit},
		{"loss", []decimal.Decimal{dec("300")}, []decimal.Decimal{dec("500")}, "-200", domain.Loss},
		{"empty ledger", []decimal.Decimal{}, []decimal.Decimal{}, "0", domain.Profit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := new(MockRecordRepository)
			repo.On("ListAmounts", ctx, ofType(domain.Income)).Return(tt.income, nil).Once()
			repo.On("ListAmounts", ctx, ofType(domain.Expense)).Return(tt.expense, nil).Once()

			report, err := services.NewReportingService(repo).ProfitAndLoss(ctx, nil, nil)

			require.NoError(t, err)
			assert.True(t, dec(tt.net).Equal(report.NetProfit), report.NetProfit.String())
			assert.Equal(t, tt.status, report.Status())
			repo.AssertExpectations(t)
		})
	}
}

func TestReportingService_PassesRange(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := new(MockRecordRepository)
	inRange := mock.MatchedBy(func(f domain.RecordFilter) bool { return f.From != nil && f.From.Equal(from) })
	repo.On("ListAmounts", ctx, inRange).Return([]decimal.Decimal{dec("5")}, nil).Twice()

	report, err := services.NewReportingService(repo).ProfitAndLoss(ctx, &from, nil)

	require.NoError(t, err)
	assert.Equal(t, &from, report.From)
	assert.True(t, report.NetProfit.IsZero())
}

func TestReportingService_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRecordRepository)
	boom := errors.New("disk I/O error")
	repo.On("ListAmounts", ctx, ofType(domain.Income)).Return(nil, boom).Once()

	_, err := services.NewReportingService(repo).ProfitAndLoss(ctx, nil, nil)

	assert.ErrorIs(t, err, boom)
}
