package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_manager/internal/apperrors"
	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfitLossParams_Range(t *testing.T) {
	from, to, err := ProfitLossParams{}.Range()
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)

	from, to, err = ProfitLossParams{From: "2024-01-01", To: "2024-01-31"}.Range()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *from)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *to)

	_, _, err = ProfitLossParams{From: "2024-02-01", To: "2024-01-01"}.Range()
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = ProfitLossParams{From: "Jan 1"}.Range()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToProfitLossResponse_Label(t *testing.T) {
	resp := ToProfitLossResponse(&domain.PAndLReport{
		TotalIncome:  decimal.NewFromInt(300),
		TotalExpense: decimal.NewFromInt(500),
		NetProfit:    decimal.NewFromInt(-200),
	}, "USD")

	assert.Equal(t, "Loss", resp.Status)
	assert.Equal(t, "Loss: $200.00", resp.Label)
	assert.Empty(t, resp.From)
}
