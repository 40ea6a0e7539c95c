package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type vehicleService struct {
	*entityService[domain.Vehicle, domain.VehiclePatch]
}

func NewVehicleService(store repository.Store) VehicleService {
	return &vehicleService{
		entityService: newEntityService[domain.Vehicle, domain.VehiclePatch](store, entityConfig[domain.Vehicle]{
			name:   "vehicleService",
			entity: domain.EntityVehicle,
			repo:   func(s repository.Store) repository.CRUD[domain.Vehicle] { return s.Vehicles() },
			id:     func(v *domain.Vehicle) *int64 { return &v.ID },
			defaults: func(v *domain.Vehicle) {
				if v.Status == "" {
					v.Status = domain.VehicleStatusAvailable
				}
			},
			validate: func(v *domain.Vehicle) error { return v.Validate() },
			targets:  func(v *domain.Vehicle) []domain.Target { return v.Targets() },
		}),
	}
}

func (s *vehicleService) ListFiltered(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	if filter.Status == nil {
		return s.List(ctx)
	}
	if !filter.Status.Valid() {
		return nil, domain.BadRequest("invalid vehicle status %q", *filter.Status)
	}

	vehicles, err := s.store.Vehicles().ListByStatus(ctx, *filter.Status)
	if err != nil {
		return nil, wrap(err, "failed to list vehicles with status %s", *filter.Status)
	}
	return vehicles, nil
}
