package postgres

import (
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

var rentalOrderTable = &table[domain.RentalOrder]{
	entity: domain.EntityRentalOrder,
	name:   "rental_orders",
	columns: []string{
		"client_id", "vehicle_id", "employee_id",
		"start_date", "end_date_planned", "end_date_actual",
		"total_cost", "payment_status", "deposit_returned", "order_status",
	},
	id: func(o *domain.RentalOrder) *int64 { return &o.ID },
	scan: func(sc scanner, o *domain.RentalOrder) error {
		return sc.Scan(&o.ID, &o.ClientID, &o.VehicleID, &o.EmployeeID,
			&o.StartDate, &o.EndDatePlanned, &o.EndDateActual,
			&o.TotalCost, &o.PaymentStatus, &o.DepositReturned, &o.OrderStatus)
	},
	values: func(o *domain.RentalOrder) []any {
		return []any{o.ClientID, o.VehicleID, o.EmployeeID,
			o.StartDate, o.EndDatePlanned, o.EndDateActual,
			o.TotalCost, o.PaymentStatus, o.DepositReturned, o.OrderStatus}
	},
}

func NewRentalOrderRepository(q DBTX) repository.RentalOrderRepository {
	return &crud[domain.RentalOrder]{q: q, t: rentalOrderTable}
}
