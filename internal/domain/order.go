package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusUnpaid  PaymentStatus = "Unpaid"
	PaymentStatusPartial PaymentStatus = "Partial"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusPartial:
		return true
	}
	return false
}

// OrderStatus moves one way, Open to Closed.
type OrderStatus string

const (
	OrderStatusOpen   OrderStatus = "Open"
	OrderStatusClosed OrderStatus = "Closed"
)

func (s OrderStatus) Valid() bool {
	return s == OrderStatusOpen || s == OrderStatusClosed
}

type RentalOrder struct {
	ID              int64            `json:"id"`
	ClientID        int64            `json:"client_id"`
	VehicleID       int64            `json:"vehicle_id"`
	EmployeeID      int64            `json:"employee_id"`
	StartDate       time.Time        `json:"start_date"`
	EndDatePlanned  time.Time        `json:"end_date_planned"`
	EndDateActual   *time.Time       `json:"end_date_actual"`
	TotalCost       *decimal.Decimal `json:"total_cost"`
	PaymentStatus   PaymentStatus    `json:"payment_status"`
	DepositReturned bool             `json:"deposit_returned"`
	OrderStatus     OrderStatus      `json:"order_status"`
}

func (o RentalOrder) Validate() error {
	if !o.PaymentStatus.Valid() {
		return BadRequest("invalid payment status %q", o.PaymentStatus)
	}
	if !o.OrderStatus.Valid() {
		return BadRequest("invalid order status %q", o.OrderStatus)
	}
	if o.EndDatePlanned.Before(o.StartDate) {
		return BadRequest("planned end date is before start date")
	}
	return nil
}

// CheckTransition rejects updates that would reopen a closed order or move an
// open order, which holds its vehicle, to another vehicle.
func (o RentalOrder) CheckTransition(next RentalOrder) error {
	if o.OrderStatus == OrderStatusClosed && next.OrderStatus == OrderStatusOpen {
		return BadRequest("rental order %d is closed and cannot be reopened", o.ID)
	}
	if o.OrderStatus == OrderStatusOpen && next.VehicleID != o.VehicleID {
		return BadRequest("rental order %d is open, its vehicle cannot be changed", o.ID)
	}
	return nil
}

func (o RentalOrder) Targets() []Target {
	return []Target{
		{Entity: EntityClient, ID: o.ClientID},
		{Entity: EntityVehicle, ID: o.VehicleID},
		{Entity: EntityEmployee, ID: o.EmployeeID},
	}
}

type RentalOrderPatch struct {
	ClientID        Optional[int64]            `json:"client_id"`
	VehicleID       Optional[int64]            `json:"vehicle_id"`
	EmployeeID      Optional[int64]            `json:"employee_id"`
	StartDate       Optional[time.Time]        `json:"start_date"`
	EndDatePlanned  Optional[time.Time]        `json:"end_date_planned"`
	EndDateActual   Optional[*time.Time]       `json:"end_date_actual"`
	TotalCost       Optional[*decimal.Decimal] `json:"total_cost"`
	PaymentStatus   Optional[PaymentStatus]    `json:"payment_status"`
	DepositReturned Optional[bool]             `json:"deposit_returned"`
	OrderStatus     Optional[OrderStatus]      `json:"order_status"`
}

func (p RentalOrderPatch) Apply(o *RentalOrder) {
	p.ClientID.applyTo(&o.ClientID)
	p.VehicleID.applyTo(&o.VehicleID)
	p.EmployeeID.applyTo(&o.EmployeeID)
	p.StartDate.applyTo(&o.StartDate)
	p.EndDatePlanned.applyTo(&o.EndDatePlanned)
	p.EndDateActual.applyTo(&o.EndDateActual)
	p.TotalCost.applyTo(&o.TotalCost)
	p.PaymentStatus.applyTo(&o.PaymentStatus)
	p.DepositReturned.applyTo(&o.DepositReturned)
	p.OrderStatus.applyTo(&o.OrderStatus)
}
