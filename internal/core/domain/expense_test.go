package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/travel_budget_app/internal/apperrors"
	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_IsValid(t *testing.T) {
	for _, c := range domain.Categories {
		assert.True(t, c.IsValid(), string(c))
	}
	assert.False(t, domain.Category("groceries").IsValid())
	assert.False(t, domain.Category("").IsValid())
	assert.False(t, domain.Category("Food").IsValid())
}

func TestExpense_Validate(t *testing.T) {
	date := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expense domain.Expense
		wantErr bool
	}{
		{name: "valid", expense: domain.Expense{Amount: dec("9.99"), LocalCurrency: "EUR", Category: domain.CategoryFood, Date: date}},
		{name: "zero amount", expense: domain.Expense{Amount: dec("0"), LocalCurrency: "EUR", Category: domain.CategoryFood, Date: date}, wantErr: true},
		{name: "negative amount", expense: domain.Expense{Amount: dec("-3"), LocalCurrency: "EUR", Category: domain.CategoryFood, Date: date}, wantErr: true},
		{name: "missing currency", expense: domain.Expense{Amount: dec("3"), Category: domain.CategoryFood, Date: date}, wantErr: true},
		{name: "unknown category", expense: domain.Expense{Amount: dec("3"), LocalCurrency: "EUR", Category: "misc", Date: date}, wantErr: true},
		{name: "missing date", expense: domain.Expense{Amount: dec("3"), LocalCurrency: "EUR", Category: domain.CategoryOther}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.expense.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpense_FreezeConversion(t *testing.T) {
	fetchedAt := time.Unix(0, 1_760_000_000_000_000_000)
	snapshot, err := domain.NewRateSnapshot(domain.RateTable{"EUR": dec("1"), "USD": dec("1.1")}, fetchedAt)
	require.NoError(t, err)

	t.Run("converts with snapshot", func(t *testing.T) {
		e := domain.Expense{Amount: dec("50"), LocalCurrency: "EUR"}
		require.NoError(t, e.FreezeConversion("USD", snapshot))
		assert.True(t, e.ConvertedAmount.Equal(dec("55")), "got %s", e.ConvertedAmount)
		require.NotNil(t, e.RatesAsOf)
		assert.Equal(t, fetchedAt.UnixNano(), e.RatesAsOf.UnixNano())
	})

	t.Run("same currency keeps amount and records no rates", func(t *testing.T) {
		e := domain.Expense{Amount: dec("12.34"), LocalCurrency: "USD"}
		require.NoError(t, e.FreezeConversion("USD", snapshot))
		assert.True(t, e.ConvertedAmount.Equal(dec("12.34")))
		assert.Nil(t, e.RatesAsOf)
	})

	t.Run("same currency without snapshot", func(t *testing.T) {
		e := domain.Expense{Amount: dec("7"), LocalCurrency: "THB"}
		require.NoError(t, e.FreezeConversion("THB", nil))
		assert.True(t, e.ConvertedAmount.Equal(dec("7")))
		assert.Nil(t, e.RatesAsOf)
	})

	t.Run("different currency without snapshot", func(t *testing.T) {
		e := domain.Expense{Amount: dec("7"), LocalCurrency: "THB"}
		err := e.FreezeConversion("USD", nil)
		assert.ErrorIs(t, err, apperrors.ErrUnconvertibleCurrency)
		assert.True(t, e.ConvertedAmount.IsZero())
	})

	t.Run("missing rate leaves expense untouched", func(t *testing.T) {
		e := domain.Expense{Amount: dec("7"), LocalCurrency: "GBP", ConvertedAmount: dec("3")}
		err := e.FreezeConversion("USD", snapshot)
		assert.ErrorIs(t, err, apperrors.ErrUnconvertibleCurrency)
		assert.True(t, e.ConvertedAmount.Equal(dec("3")))
	})
}
