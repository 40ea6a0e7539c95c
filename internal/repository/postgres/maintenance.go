package postgres

import (
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

var maintenanceTable = &table[domain.Maintenance]{
	entity:  domain.EntityMaintenance,
	name:    "maintenance",
	columns: []string{"vehicle_id", "start_date", "end_date", "service_type", "cost", "description"},
	id:      func(m *domain.Maintenance) *int64 { return &m.ID },
	scan: func(sc scanner, m *domain.Maintenance) error {
		return sc.Scan(&m.ID, &m.VehicleID, &m.StartDate, &m.EndDate, &m.ServiceType, &m.Cost, &m.Description)
	},
	values: func(m *domain.Maintenance) []any {
		return []any{m.VehicleID, m.StartDate, m.EndDate, m.ServiceType, m.Cost, m.Description}
	},
}

func NewMaintenanceRepository(q DBTX) repository.MaintenanceRepository {
	return &crud[domain.Maintenance]{q: q, t: maintenanceTable}
}
