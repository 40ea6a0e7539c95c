// Package seed loads a small demo data set through the service layer.
package seed

import (
	"context"
	"fmt"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/service"

	"github.com/shopspring/decimal"
)

// Summary reports what Run created.
type Summary struct {
	Skipped   bool
	Models    int
	Vehicles  int
	OrderID   int64
	PaymentID int64
	FineID    int64
}

// Run creates the demo catalog, people and one open order with a payment and
// a fine. It does nothing when any car model already exists.
func Run(ctx context.Context, svcs *service.Services, now time.Time) (*Summary, error) {
	logger.EnterMethod("seed.Run")

	existing, err := svcs.CarModels.List(ctx)
	if err != nil {
		logger.ExitMethodWithError("seed.Run", err)
		return nil, fmt.Errorf("failed to check existing data: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("Seed skipped, catalog is not empty", "car_models", len(existing))
		return &Summary{Skipped: true}, nil
	}

	sum := &Summary{}

	camry, err := svcs.CarModels.Create(ctx, &domain.CarModel{
		Brand: "Toyota", ModelName: "Camry", Class: "Business",
		DailyRate: decimal.NewFromInt(3500), DepositAmount: decimal.NewFromInt(15000),
	})
	if err != nil {
		return nil, fail("car model Camry", err)
	}
	rio, err := svcs.CarModels.Create(ctx, &domain.CarModel{
		Brand: "Kia", ModelName: "Rio", Class: "Economy",
		DailyRate: decimal.NewFromInt(2000), DepositAmount: decimal.NewFromInt(5000),
	})
	if err != nil {
		return nil, fail("car model Rio", err)
	}
	sum.Models = 2

	if _, err := svcs.Vehicles.Create(ctx, &domain.Vehicle{
		ModelID: camry.ID, LicensePlate: "A001AA777", VINCode: "VIN1234567890",
		Color: "Black", CurrentMileage: 10000, Status: domain.VehicleStatusAvailable,
	}); err != nil {
		return nil, fail("vehicle A001AA777", err)
	}
	rioCar, err := svcs.Vehicles.Create(ctx, &domain.Vehicle{
		ModelID: rio.ID, LicensePlate: "B002BB777", VINCode: "VIN0987654321",
		Color: "White", CurrentMileage: 55000, Status: domain.VehicleStatusAvailable,
	})
	if err != nil {
		return nil, fail("vehicle B002BB777", err)
	}
	sum.Vehicles = 2

	client, err := svcs.Clients.Create(ctx, &domain.Client{
		FullName:         "Иванов Иван Иванович",
		DriverLicenseNum: "9900 123456",
		PassportData:     "4510 123123",
		Phone:            "+79001234567",
		BirthDate:        domain.NewDate(1990, time.January, 1),
	})
	if err != nil {
		return nil, fail("client", err)
	}
	manager, err := svcs.Employees.Create(ctx, &domain.Employee{
		FullName: "Петров Петр",
		Position: "Менеджер",
	})
	if err != nil {
		return nil, fail("employee", err)
	}

	// Total cost is left empty so the order is priced from the Rio's rate.
	order, err := svcs.Orders.Create(ctx, &domain.RentalOrder{
		ClientID:       client.ID,
		VehicleID:      rioCar.ID,
		EmployeeID:     manager.ID,
		StartDate:      now.Add(-48 * time.Hour),
		EndDatePlanned: now.Add(24 * time.Hour),
		PaymentStatus:  domain.PaymentStatusPartial,
	})
	if err != nil {
		return nil, fail("rental order", err)
	}
	sum.OrderID = order.ID

	payment, err := svcs.Payments.Create(ctx, &domain.Payment{
		OrderID:     order.ID,
		Amount:      decimal.NewFromInt(2000),
		PaymentDate: now,
		PaymentType: "Income",
		Method:      "Card",
	})
	if err != nil {
		return nil, fail("payment", err)
	}
	sum.PaymentID = payment.ID

	fine, err := svcs.Fines.Create(ctx, &domain.Fine{
		OrderID:       order.ID,
		ViolationType: "Speeding",
		Amount:        decimal.NewFromInt(500),
		IssueDate:     domain.DateOf(now),
	})
	if err != nil {
		return nil, fail("fine", err)
	}
	sum.FineID = fine.ID

	logger.ExitMethod("seed.Run", "order_id", sum.OrderID)
	logger.Info("Seed data created", "car_models", sum.Models, "vehicles", sum.Vehicles, "order_id", sum.OrderID)
	return sum, nil
}

func fail(what string, err error) error {
	logger.ExitMethodWithError("seed.Run", err, "step", what)
	return fmt.Errorf("failed to create %s: %w", what, err)
}
