package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_AvailableVehiclesByClass(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM vehicles v\\s+JOIN car_models m ON m.id = v.model_id\\s+WHERE v.status = \\$1 AND m.class = \\$2").
		WithArgs("Available", "Business").
		WillReturnRows(sqlmock.NewRows([]string{"id", "brand", "model_name", "class", "license_plate", "color", "daily_rate"}).
			AddRow(1, "Toyota", "Camry", "Business", "A001AA777", "Black", "3500.00"))

	listings, err := repo.AvailableVehiclesByClass(context.Background(), "Business")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Camry", listings[0].ModelName)
	assert.True(t, listings[0].DailyRate.Equal(decimal.NewFromInt(3500)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_OpenOrdersByClient(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReportRepository(db)
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM rental_orders o(.+)WHERE c.full_name = \\$1 AND o.order_status = \\$2").
		WithArgs("Иванов Иван Иванович", "Open").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "brand", "model_name", "license_plate", "start_date", "end_date_planned", "total_cost"}).
			AddRow(3, "Иванов Иван Иванович", "Kia", "Rio", "B002BB777", start, start.AddDate(0, 0, 3), "6000.00").
			AddRow(4, "Иванов Иван Иванович", "Kia", "Rio", "B002BB777", start, start.AddDate(0, 0, 1), nil))

	summaries, err := repo.OpenOrdersByClient(context.Background(), "Иванов Иван Иванович")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.NotNil(t, summaries[0].TotalCost)
	assert.Equal(t, "6000.00", summaries[0].TotalCost.StringFixed(2))
	assert.Nil(t, summaries[1].TotalCost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_PaymentsAndFinesByOrder(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	paid := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE order_id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "amount", "payment_date", "payment_type", "method"}).
			AddRow(1, 3, "2000.00", paid, "Rent", "Card"))
	mock.ExpectQuery("SELECT (.+) FROM fines WHERE order_id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "violation_type", "amount", "is_paid", "issue_date"}).
			AddRow(1, 3, "Speeding", "500.00", false, paid))

	payments, err := repo.PaymentsByOrder(ctx, 3)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "Card", payments[0].Method)

	fines, err := repo.FinesByOrder(ctx, 3)
	require.NoError(t, err)
	require.Len(t, fines, 1)
	assert.Equal(t, "2024-05-01", fines[0].IssueDate.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}
