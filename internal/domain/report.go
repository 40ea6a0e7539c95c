package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleListing is a vehicle joined with its catalog model.
type VehicleListing struct {
	VehicleID    int64           `json:"vehicle_id"`
	Brand        string          `json:"brand"`
	ModelName    string          `json:"model_name"`
	Class        string          `json:"class"`
	LicensePlate string          `json:"license_plate"`
	Color        string          `json:"color"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
}

type OrderSummary struct {
	OrderID        int64            `json:"order_id"`
	ClientName     string           `json:"client_name"`
	Brand          string           `json:"brand"`
	ModelName      string           `json:"model_name"`
	LicensePlate   string           `json:"license_plate"`
	StartDate      time.Time        `json:"start_date"`
	EndDatePlanned time.Time        `json:"end_date_planned"`
	TotalCost      *decimal.Decimal `json:"total_cost"`
}

// OrderStatement lists the money records of one order.
type OrderStatement struct {
	OrderID    int64           `json:"order_id"`
	Payments   []Payment       `json:"payments"`
	Fines      []Fine          `json:"fines"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	TotalFines decimal.Decimal `json:"total_fines"`
}
