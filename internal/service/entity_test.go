package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	carModelColumns = []string{"id", "brand", "model_name", "class", "daily_rate", "deposit_amount"}
	vehicleColumns  = []string{"id", "model_id", "license_plate", "vin_code", "color", "current_mileage", "status"}
)

func newTestServices(t *testing.T) (*Services, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(postgres.NewStore(db)), mock
}

func existsRow(found bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(found)
}

func expectExists(mock sqlmock.Sqlmock, table string, id int64, found bool) {
	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM " + table + " WHERE id = \\$1\\)").
		WithArgs(id).
		WillReturnRows(existsRow(found))
}

func expectDependents(mock sqlmock.Sqlmock, table, column string, id int64, found bool) {
	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM " + table + " WHERE " + column + " = \\$1\\)").
		WithArgs(id).
		WillReturnRows(existsRow(found))
}

func TestCarModelService_Create(t *testing.T) {
	svcs, mock := newTestServices(t)

	m := &domain.CarModel{
		Brand:         "Toyota",
		ModelName:     "Camry",
		Class:         "Business",
		DailyRate:     decimal.RequireFromString("3500.00"),
		DepositAmount: decimal.RequireFromString("15000.00"),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO car_models").
		WithArgs("Toyota", "Camry", "Business", m.DailyRate, m.DepositAmount).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	created, err := svcs.CarModels.Create(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarModelService_Create_NegativeRate(t *testing.T) {
	svcs, mock := newTestServices(t)

	_, err := svcs.CarModels.Create(context.Background(), &domain.CarModel{
		Brand: "Kia", ModelName: "Rio", Class: "Economy",
		DailyRate: decimal.NewFromInt(-1), DepositAmount: decimal.NewFromInt(5000),
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarModelService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("No vehicles", func(t *testing.T) {
		svcs, mock := newTestServices(t)

		expectExists(mock, "car_models", 1, true)
		expectDependents(mock, "vehicles", "model_id", 1, false)
		mock.ExpectExec("DELETE FROM car_models WHERE id = \\$1").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, svcs.CarModels.Delete(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("One vehicle blocks the delete", func(t *testing.T) {
		svcs, mock := newTestServices(t)

		expectExists(mock, "car_models", 1, true)
		expectDependents(mock, "vehicles", "model_id", 1, true)

		err := svcs.CarModels.Delete(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Contains(t, err.Error(), "vehicle")
		// sqlmock rejects any DELETE that was not expected
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing id", func(t *testing.T) {
		svcs, mock := newTestServices(t)

		expectExists(mock, "car_models", 42, false)

		err := svcs.CarModels.Delete(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, "car model 42 not found", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVehicleService_Delete_GuardsShortCircuit(t *testing.T) {
	svcs, mock := newTestServices(t)

	expectExists(mock, "vehicles", 5, true)
	expectDependents(mock, "rental_orders", "vehicle_id", 5, true)

	err := svcs.Vehicles.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleService_Delete_AllGuardsClear(t *testing.T) {
	svcs, mock := newTestServices(t)

	expectExists(mock, "vehicles", 5, true)
	expectDependents(mock, "rental_orders", "vehicle_id", 5, false)
	expectDependents(mock, "maintenance", "vehicle_id", 5, false)
	expectDependents(mock, "insurance_policies", "vehicle_id", 5, false)
	mock.ExpectExec("DELETE FROM vehicles WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, svcs.Vehicles.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeafEntitiesDeleteWithoutGuards(t *testing.T) {
	svcs, mock := newTestServices(t)

	expectExists(mock, "payments", 9, true)
	mock.ExpectExec("DELETE FROM payments WHERE id = \\$1").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, svcs.Payments.Delete(context.Background(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Changes only patched fields", func(t *testing.T) {
		svcs, mock := newTestServices(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1 FOR UPDATE").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(vehicleColumns).AddRow(1, 2, "A001AA777", "VIN1", "Black", 12000, "Available"))
		expectExists(mock, "car_models", 2, true)
		mock.ExpectExec("UPDATE vehicles SET (.+) WHERE id = \\$7").
			WithArgs(int64(2), "A001AA777", "VIN1", "Red", int64(12000), "Available", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		v, err := svcs.Vehicles.Update(ctx, 1, domain.VehiclePatch{Color: domain.Some("Red")})
		require.NoError(t, err)
		assert.Equal(t, "Red", v.Color)
		assert.Equal(t, "A001AA777", v.LicensePlate)
		assert.Equal(t, int64(12000), v.CurrentMileage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing id", func(t *testing.T) {
		svcs, mock := newTestServices(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1 FOR UPDATE").
			WithArgs(int64(7)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := svcs.Vehicles.Update(ctx, 7, domain.VehiclePatch{Color: domain.Some("Red")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invalid status", func(t *testing.T) {
		svcs, mock := newTestServices(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1 FOR UPDATE").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(vehicleColumns).AddRow(1, 2, "A001AA777", "VIN1", "Black", 12000, "Available"))
		mock.ExpectRollback()

		_, err := svcs.Vehicles.Update(ctx, 1, domain.VehiclePatch{Status: domain.Some(domain.VehicleStatus("Stolen"))})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown model", func(t *testing.T) {
		svcs, mock := newTestServices(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1 FOR UPDATE").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(vehicleColumns).AddRow(1, 2, "A001AA777", "VIN1", "Black", 12000, "Available"))
		expectExists(mock, "car_models", 99, false)
		mock.ExpectRollback()

		_, err := svcs.Vehicles.Update(ctx, 1, domain.VehiclePatch{ModelID: domain.Some(int64(99))})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVehicleService_ListFiltered(t *testing.T) {
	ctx := context.Background()

	t.Run("By status", func(t *testing.T) {
		svcs, mock := newTestServices(t)
		status := domain.VehicleStatusAvailable

		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE status = \\$1 ORDER BY id").
			WithArgs("Available").
			WillReturnRows(sqlmock.NewRows(vehicleColumns).AddRow(1, 2, "A001AA777", "VIN1", "Black", 0, "Available"))

		vehicles, err := svcs.Vehicles.ListFiltered(ctx, domain.VehicleFilter{Status: &status})
		require.NoError(t, err)
		assert.Len(t, vehicles, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No filter", func(t *testing.T) {
		svcs, mock := newTestServices(t)

		mock.ExpectQuery("SELECT (.+) FROM vehicles ORDER BY id").
			WillReturnRows(sqlmock.NewRows(vehicleColumns))

		vehicles, err := svcs.Vehicles.ListFiltered(ctx, domain.VehicleFilter{})
		require.NoError(t, err)
		assert.Empty(t, vehicles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown status", func(t *testing.T) {
		svcs, _ := newTestServices(t)
		status := domain.VehicleStatus("Parked")

		_, err := svcs.Vehicles.ListFiltered(ctx, domain.VehicleFilter{Status: &status})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestClientService_Create_DefaultRating(t *testing.T) {
	svcs, mock := newTestServices(t)

	c := &domain.Client{
		FullName:         "Иванов Иван Иванович",
		DriverLicenseNum: "7701 123456",
		PassportData:     "4510 654321",
		Phone:            "+79991234567",
		BirthDate:        domain.NewDate(1990, 5, 15),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO clients").
		WithArgs(c.FullName, c.DriverLicenseNum, c.PassportData, c.Phone, c.BirthDate, domain.DefaultClientRating, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	created, err := svcs.Clients.Create(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, created.Rating.Valid)
	assert.True(t, created.Rating.Decimal.Equal(decimal.NewFromInt(5)))
	assert.False(t, created.IsBlacklisted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientService_Create_ZeroRatingIsKept(t *testing.T) {
	svcs, mock := newTestServices(t)

	var c domain.Client
	require.NoError(t, json.Unmarshal([]byte(`{
		"full_name": "Сидоров Олег",
		"driver_license_num": "7702 000111",
		"passport_data": "4511 222333",
		"phone": "+79990000000",
		"birth_date": "1985-03-20",
		"rating": "0"
	}`), &c))
	require.True(t, c.Rating.Valid)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO clients").
		WithArgs(c.FullName, c.DriverLicenseNum, c.PassportData, c.Phone, c.BirthDate, decimal.Zero, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	created, err := svcs.Clients.Create(context.Background(), &c)
	require.NoError(t, err)
	assert.True(t, created.Rating.Decimal.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults to active", func(t *testing.T) {
		svcs, mock := newTestServices(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO employees").
			WithArgs("Петров Петр", "Manager", "Active").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		e, err := svcs.Employees.Create(ctx, &domain.Employee{FullName: "Петров Петр", Position: "Manager"})
		require.NoError(t, err)
		assert.Equal(t, domain.EmployeeStatusActive, e.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown status", func(t *testing.T) {
		svcs, mock := newTestServices(t)

		_, err := svcs.Employees.Create(ctx, &domain.Employee{FullName: "X", Position: "Y", Status: "Retired"})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFineService_Create_MissingOrder(t *testing.T) {
	svcs, mock := newTestServices(t)

	mock.ExpectBegin()
	expectExists(mock, "rental_orders", 3, false)
	mock.ExpectRollback()

	_, err := svcs.Fines.Create(context.Background(), &domain.Fine{
		OrderID: 3, ViolationType: "Speeding", Amount: decimal.NewFromInt(500), IssueDate: domain.NewDate(2024, 5, 2),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "rental order 3 not found", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewService_Create_SecondReviewConflicts(t *testing.T) {
	svcs, mock := newTestServices(t)

	mock.ExpectBegin()
	expectExists(mock, "rental_orders", 3, true)
	mock.ExpectQuery("INSERT INTO reviews").
		WillReturnError(&pq.Error{Code: "23505", Detail: "Key (order_id)=(3) already exists."})
	mock.ExpectRollback()

	_, err := svcs.Reviews.Create(context.Background(), &domain.Review{OrderID: 3, CarRating: 5, ClientRating: 5})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentService_Create_DefaultsDate(t *testing.T) {
	svcs, mock := newTestServices(t)

	mock.ExpectBegin()
	expectExists(mock, "rental_orders", 3, true)
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(int64(3), decimal.NewFromInt(2000), sqlmock.AnyArg(), "Rent", "Card").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	p, err := svcs.Payments.Create(context.Background(), &domain.Payment{
		OrderID: 3, Amount: decimal.NewFromInt(2000), PaymentType: "Rent", Method: "Card",
	})
	require.NoError(t, err)
	assert.False(t, p.PaymentDate.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarModelService_Get(t *testing.T) {
	svcs, mock := newTestServices(t)

	mock.ExpectQuery("SELECT (.+) FROM car_models WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(carModelColumns).AddRow(1, "Toyota", "Camry", "Business", "3500.00", "15000.00"))
	mock.ExpectQuery("SELECT (.+) FROM car_models WHERE id = \\$1").
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	m, err := svcs.CarModels.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Camry", m.ModelName)

	_, err = svcs.CarModels.Get(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
