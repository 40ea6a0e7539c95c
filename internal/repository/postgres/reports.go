package postgres

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
)

type reportRepository struct {
	q DBTX
}

func NewReportRepository(q DBTX) repository.ReportRepository {
	return &reportRepository{q: q}
}

func (r *reportRepository) AvailableVehiclesByClass(ctx context.Context, class string) ([]domain.VehicleListing, error) {
	logger.EnterMethod("reportRepository.AvailableVehiclesByClass", "class", class)

	query := `
		SELECT v.id, m.brand, m.model_name, m.class, v.license_plate, v.color, m.daily_rate
		FROM vehicles v
		JOIN car_models m ON m.id = v.model_id
		WHERE v.status = $1 AND m.class = $2
		ORDER BY v.id
	`
	rows, err := r.q.QueryContext(ctx, query, domain.VehicleStatusAvailable, class)
	if err != nil {
		logger.ExitMethodWithError("reportRepository.AvailableVehiclesByClass", err)
		return nil, err
	}
	defer rows.Close()

	listings := []domain.VehicleListing{}
	for rows.Next() {
		var l domain.VehicleListing
		if err := rows.Scan(&l.VehicleID, &l.Brand, &l.ModelName, &l.Class, &l.LicensePlate, &l.Color, &l.DailyRate); err != nil {
			logger.ExitMethodWithError("reportRepository.AvailableVehiclesByClass", err)
			return nil, err
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("reportRepository.AvailableVehiclesByClass", "count", len(listings))
	return listings, nil
}

func (r *reportRepository) OpenOrdersByClient(ctx context.Context, fullName string) ([]domain.OrderSummary, error) {
	logger.EnterMethod("reportRepository.OpenOrdersByClient", "client", fullName)

	query := `
		SELECT o.id, c.full_name, m.brand, m.model_name, v.license_plate,
		       o.start_date, o.end_date_planned, o.total_cost
		FROM rental_orders o
		JOIN clients c ON c.id = o.client_id
		JOIN vehicles v ON v.id = o.vehicle_id
		JOIN car_models m ON m.id = v.model_id
		WHERE c.full_name = $1 AND o.order_status = $2
		ORDER BY o.id
	`
	rows, err := r.q.QueryContext(ctx, query, fullName, domain.OrderStatusOpen)
	if err != nil {
		logger.ExitMethodWithError("reportRepository.OpenOrdersByClient", err)
		return nil, err
	}
	defer rows.Close()

	summaries := []domain.OrderSummary{}
	for rows.Next() {
		var s domain.OrderSummary
		if err := rows.Scan(&s.OrderID, &s.ClientName, &s.Brand, &s.ModelName, &s.LicensePlate,
			&s.StartDate, &s.EndDatePlanned, &s.TotalCost); err != nil {
			logger.ExitMethodWithError("reportRepository.OpenOrdersByClient", err)
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("reportRepository.OpenOrdersByClient", "count", len(summaries))
	return summaries, nil
}

func (r *reportRepository) PaymentsByOrder(ctx context.Context, orderID int64) ([]domain.Payment, error) {
	payments := &crud[domain.Payment]{q: r.q, t: paymentTable}
	return payments.query(ctx, "reportRepository.PaymentsByOrder",
		paymentTable.selectSQL()+" WHERE order_id = $1 ORDER BY payment_date, id", orderID)
}

func (r *reportRepository) FinesByOrder(ctx context.Context, orderID int64) ([]domain.Fine, error) {
	fines := &crud[domain.Fine]{q: r.q, t: fineTable}
	return fines.query(ctx, "reportRepository.FinesByOrder",
		fineTable.selectSQL()+" WHERE order_id = $1 ORDER BY issue_date, id", orderID)
}
