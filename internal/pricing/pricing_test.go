package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalDays(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		expected int
	}{
		{"Same instant is one day", start, 1},
		{"Two hours is one day", start.Add(2 * time.Hour), 1},
		{"Exactly three days", start.AddDate(0, 0, 3), 3},
		{"Three days and an hour rounds up", start.AddDate(0, 0, 3).Add(time.Hour), 4},
		{"Across a month boundary", time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC), 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := RentalDays(start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, days)
		})
	}

	t.Run("End before start", func(t *testing.T) {
		_, err := RentalDays(start, start.Add(-time.Minute))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "end date must be >= start date")
	})
}

func TestRentalCost(t *testing.T) {
	assert.Equal(t, "6000.00", RentalCost(decimal.NewFromInt(2000), 3).StringFixed(2))
	assert.Equal(t, "3500.50", RentalCost(decimal.RequireFromString("3500.50"), 1).StringFixed(2))
	assert.Equal(t, "0.00", RentalCost(decimal.Zero, 10).StringFixed(2))
}

func TestQuoteRental(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	q, err := QuoteRental(start, start.AddDate(0, 0, 3), decimal.NewFromInt(2000))
	require.NoError(t, err)
	assert.Equal(t, 3, q.Days)
	assert.True(t, q.Total.Equal(decimal.NewFromInt(6000)))

	_, err = QuoteRental(start, start.AddDate(0, 0, -1), decimal.NewFromInt(2000))
	assert.Error(t, err)
}
