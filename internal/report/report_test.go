package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service/servicetest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResult() *Result {
	total := decimal.NewFromInt(6000)
	return &Result{
		Params: Params{Class: "Economy", ClientName: "Иванов Иван Иванович", OrderID: 1},
		Vehicles: []domain.VehicleListing{
			{VehicleID: 2, Brand: "Kia", ModelName: "Rio", Class: "Economy", LicensePlate: "B002BB777", Color: "White", DailyRate: decimal.NewFromInt(2000)},
		},
		Orders: []domain.OrderSummary{{
			OrderID:        1,
			ClientName:     "Иванов Иван Иванович",
			Brand:          "Kia",
			ModelName:      "Rio",
			LicensePlate:   "B002BB777",
			StartDate:      time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
			EndDatePlanned: time.Date(2026, 10, 4, 10, 0, 0, 0, time.UTC),
			TotalCost:      &total,
		}},
		Statement: &domain.OrderStatement{
			OrderID:    1,
			Payments:   []domain.Payment{{ID: 1, OrderID: 1, Amount: decimal.NewFromInt(2000), Method: "Card", PaymentDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)}},
			Fines:      []domain.Fine{{ID: 1, OrderID: 1, ViolationType: "Speeding", Amount: decimal.NewFromInt(500), IssueDate: domain.NewDate(2026, 10, 2)}},
			TotalPaid:  decimal.NewFromInt(2000),
			TotalFines: decimal.NewFromInt(500),
		},
	}
}

func TestCollect(t *testing.T) {
	svcs, m := servicetest.NewServices()
	ctx := context.Background()

	t.Run("Runs selected reports only", func(t *testing.T) {
		m.Reports.On("AvailableVehiclesByClass", mock.Anything, "Business").
			Return([]domain.VehicleListing{{VehicleID: 1}}, nil).Once()

		res, err := Collect(ctx, svcs.Reports, Params{Class: "Business"})
		require.NoError(t, err)
		assert.Len(t, res.Vehicles, 1)
		assert.Nil(t, res.Statement)
		m.Reports.AssertNotCalled(t, "OpenOrdersByClient", mock.Anything, mock.Anything)
	})

	t.Run("Propagates failures", func(t *testing.T) {
		m.Reports.On("OrderFinancials", mock.Anything, int64(9)).
			Return(nil, domain.NotFound(domain.EntityRentalOrder, 9)).Once()

		_, err := Collect(ctx, svcs.Reports, Params{OrderID: 9})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleResult().WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "Available vehicles, class Economy")
	assert.Contains(t, out, "B002BB777")
	assert.Contains(t, out, "Open orders of Иванов Иван Иванович")
	assert.Contains(t, out, "6000.00")
	assert.Contains(t, out, "Speeding")
	assert.Contains(t, out, "500.00")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleResult().WriteXLSX(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetVehicles, sheetOrders, sheetStatement}, f.GetSheetList())

	plate, err := f.GetCellValue(sheetVehicles, "E2")
	require.NoError(t, err)
	assert.Equal(t, "B002BB777", plate)

	rate, err := f.GetCellValue(sheetVehicles, "G2")
	require.NoError(t, err)
	assert.Equal(t, "2000", rate)

	start, err := f.GetCellValue(sheetOrders, "F2")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", start)

	rows, err := f.GetRows(sheetStatement)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "fine", rows[2][0])
	assert.Equal(t, "Total fines", rows[4][0])
}

func TestWriteXLSX_NothingSelected(t *testing.T) {
	var buf bytes.Buffer
	err := (&Result{}).WriteXLSX(&buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
