package service

import (
	"context"
	"strings"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type reportService struct {
	store repository.Store
}

func NewReportService(store repository.Store) ReportService {
	return &reportService{store: store}
}

func (s *reportService) AvailableVehiclesByClass(ctx context.Context, class string) ([]domain.VehicleListing, error) {
	class = strings.TrimSpace(class)
	if class == "" {
		return nil, domain.BadRequest("class is required")
	}

	listings, err := s.store.Reports().AvailableVehiclesByClass(ctx, class)
	if err != nil {
		return nil, wrap(err, "failed to list available %s vehicles", class)
	}
	return listings, nil
}

func (s *reportService) OpenOrdersByClient(ctx context.Context, fullName string) ([]domain.OrderSummary, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, domain.BadRequest("client name is required")
	}

	summaries, err := s.store.Reports().OpenOrdersByClient(ctx, fullName)
	if err != nil {
		return nil, wrap(err, "failed to list open orders of %s", fullName)
	}
	return summaries, nil
}

func (s *reportService) OrderFinancials(ctx context.Context, orderID int64) (*domain.OrderStatement, error) {
	logger.EnterMethod("reportService.OrderFinancials", "orderID", orderID)

	found, err := s.store.Integrity().Exists(ctx, domain.EntityRentalOrder, orderID)
	if err != nil {
		logger.ExitMethodWithError("reportService.OrderFinancials", err, "orderID", orderID)
		return nil, wrap(err, "failed to look up rental order %d", orderID)
	}
	if !found {
		err := domain.NotFound(domain.EntityRentalOrder, orderID)
		logger.ExitMethodRejected("reportService.OrderFinancials", err)
		return nil, err
	}

	payments, err := s.store.Reports().PaymentsByOrder(ctx, orderID)
	if err != nil {
		logger.ExitMethodWithError("reportService.OrderFinancials", err, "orderID", orderID)
		return nil, wrap(err, "failed to list payments of order %d", orderID)
	}
	fines, err := s.store.Reports().FinesByOrder(ctx, orderID)
	if err != nil {
		logger.ExitMethodWithError("reportService.OrderFinancials", err, "orderID", orderID)
		return nil, wrap(err, "failed to list fines of order %d", orderID)
	}

	statement := &domain.OrderStatement{
		OrderID:    orderID,
		Payments:   payments,
		Fines:      fines,
		TotalPaid:  decimal.Zero,
		TotalFines: decimal.Zero,
	}
	for _, p := range payments {
		statement.TotalPaid = statement.TotalPaid.Add(p.Amount)
	}
	for _, f := range fines {
		statement.TotalFines = statement.TotalFines.Add(f.Amount)
	}

	logger.ExitMethod("reportService.OrderFinancials", "orderID", orderID,
		"payments", len(payments), "fines", len(fines))
	return statement, nil
}
