package postgres

import (
	"context"
	"fmt"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
)

var tableNames = map[domain.Entity]string{
	domain.EntityCarModel:        carModelTable.name,
	domain.EntityVehicle:         vehicleTable.name,
	domain.EntityClient:          clientTable.name,
	domain.EntityEmployee:        employeeTable.name,
	domain.EntityRentalOrder:     rentalOrderTable.name,
	domain.EntityMaintenance:     maintenanceTable.name,
	domain.EntityFine:            fineTable.name,
	domain.EntityPayment:         paymentTable.name,
	domain.EntityInsurancePolicy: insurancePolicyTable.name,
	domain.EntityReview:          reviewTable.name,
}

func tableFor(e domain.Entity) (string, error) {
	name, ok := tableNames[e]
	if !ok {
		return "", fmt.Errorf("no table for entity %q", e)
	}
	return name, nil
}

type integrityRepository struct {
	q DBTX
}

func NewIntegrityRepository(q DBTX) repository.IntegrityRepository {
	return &integrityRepository{q: q}
}

func (r *integrityRepository) Exists(ctx context.Context, entity domain.Entity, id int64) (bool, error) {
	name, err := tableFor(entity)
	if err != nil {
		return false, err
	}
	return r.exists(ctx, "integrity.Exists", fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", name), id)
}

func (r *integrityRepository) HasDependents(ctx context.Context, ref domain.Reference, id int64) (bool, error) {
	name, err := tableFor(ref.From)
	if err != nil {
		return false, err
	}
	return r.exists(ctx, "integrity.HasDependents", fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", name, ref.Column), id)
}

func (r *integrityRepository) exists(ctx context.Context, method, query string, id int64) (bool, error) {
	logger.EnterMethod(method, "query", query, "id", id)

	var found bool
	if err := r.q.QueryRowContext(ctx, query, id).Scan(&found); err != nil {
		logger.ExitMethodWithError(method, err, "id", id)
		return false, err
	}

	logger.ExitMethod(method, "id", id, "found", found)
	return found, nil
}
