package postgres

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
)

var vehicleTable = &table[domain.Vehicle]{
	entity:  domain.EntityVehicle,
	name:    "vehicles",
	columns: []string{"model_id", "license_plate", "vin_code", "color", "current_mileage", "status"},
	id:      func(v *domain.Vehicle) *int64 { return &v.ID },
	scan: func(sc scanner, v *domain.Vehicle) error {
		return sc.Scan(&v.ID, &v.ModelID, &v.LicensePlate, &v.VINCode, &v.Color, &v.CurrentMileage, &v.Status)
	},
	values: func(v *domain.Vehicle) []any {
		return []any{v.ModelID, v.LicensePlate, v.VINCode, v.Color, v.CurrentMileage, v.Status}
	},
}

type vehicleRepository struct {
	*crud[domain.Vehicle]
}

func NewVehicleRepository(q DBTX) repository.VehicleRepository {
	return &vehicleRepository{crud: &crud[domain.Vehicle]{q: q, t: vehicleTable}}
}

func (r *vehicleRepository) ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	return r.query(ctx, "vehicles.ListByStatus", r.t.selectSQL()+" WHERE status = $1 ORDER BY id", status)
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	const method = "vehicles.UpdateStatus"
	logger.EnterMethod(method, "id", id, "status", status)

	query := `UPDATE vehicles SET status = $1 WHERE id = $2`
	logger.DatabaseCall("UPDATE", query, "id", id)
	res, err := r.q.ExecContext(ctx, query, status, id)
	if err != nil {
		logger.ExitMethodWithError(method, err, "id", id)
		return translateError(err, domain.EntityVehicle, id)
	}
	return r.expectOneRow(method, res, id)
}
