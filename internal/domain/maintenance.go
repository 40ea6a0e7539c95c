package domain

import "github.com/shopspring/decimal"

type Maintenance struct {
	ID          int64           `json:"id"`
	VehicleID   int64           `json:"vehicle_id"`
	StartDate   Date            `json:"start_date"`
	EndDate     *Date           `json:"end_date"`
	ServiceType string          `json:"service_type"`
	Cost        decimal.Decimal `json:"cost"`
	Description *string         `json:"description"`
}

func (m Maintenance) Targets() []Target {
	return []Target{{Entity: EntityVehicle, ID: m.VehicleID}}
}

type MaintenancePatch struct {
	VehicleID   Optional[int64]           `json:"vehicle_id"`
	StartDate   Optional[Date]            `json:"start_date"`
	EndDate     Optional[*Date]           `json:"end_date"`
	ServiceType Optional[string]          `json:"service_type"`
	Cost        Optional[decimal.Decimal] `json:"cost"`
	Description Optional[*string]         `json:"description"`
}

func (p MaintenancePatch) Apply(m *Maintenance) {
	p.VehicleID.applyTo(&m.VehicleID)
	p.StartDate.applyTo(&m.StartDate)
	p.EndDate.applyTo(&m.EndDate)
	p.ServiceType.applyTo(&m.ServiceType)
	p.Cost.applyTo(&m.Cost)
	p.Description.applyTo(&m.Description)
}
