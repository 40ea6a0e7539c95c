// Package pricing computes rental charges from a model's daily rate.
package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// Quote is the cost breakdown of one rental.
type Quote struct {
	Days      int
	DailyRate decimal.Decimal
	Total     decimal.Decimal
}

// RentalDays returns the number of billable days between start and the
// planned end. Partial days are charged as whole days, and a rental is at
// least one day long.
func RentalDays(start, plannedEnd time.Time) (int, error) {
	if plannedEnd.Before(start) {
		return 0, fmt.Errorf("end date must be >= start date")
	}

	span := plannedEnd.Sub(start)
	days := int(span / day)
	if span%day > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days, nil
}

// RentalCost is dailyRate times days, rounded to cents.
func RentalCost(dailyRate decimal.Decimal, days int) decimal.Decimal {
	return dailyRate.Mul(decimal.NewFromInt(int64(days))).Round(2)
}

// QuoteRental combines RentalDays and RentalCost.
func QuoteRental(start, plannedEnd time.Time, dailyRate decimal.Decimal) (Quote, error) {
	days, err := RentalDays(start, plannedEnd)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		Days:      days,
		DailyRate: dailyRate,
		Total:     RentalCost(dailyRate, days),
	}, nil
}
