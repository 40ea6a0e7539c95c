package repository

import (
	"context"

	"car-rental-backend/internal/domain"
)

// CRUD is the row access shared by every entity table. Lookups of a missing
// id return a *domain.Error of kind domain.ErrNotFound.
type CRUD[E any] interface {
	List(ctx context.Context) ([]E, error)
	GetByID(ctx context.Context, id int64) (*E, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id int64) error
}

type CarModelRepository interface {
	CRUD[domain.CarModel]
}

type VehicleRepository interface {
	CRUD[domain.Vehicle]
	ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error)
	UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
}

type ClientRepository interface {
	CRUD[domain.Client]
}

type EmployeeRepository interface {
	CRUD[domain.Employee]
}

type RentalOrderRepository interface {
	CRUD[domain.RentalOrder]
}

type MaintenanceRepository interface {
	CRUD[domain.Maintenance]
}

type FineRepository interface {
	CRUD[domain.Fine]
}

type PaymentRepository interface {
	CRUD[domain.Payment]
}

type InsurancePolicyRepository interface {
	CRUD[domain.InsurancePolicy]
}

type ReviewRepository interface {
	CRUD[domain.Review]
}

// IntegrityRepository answers the existence questions the service layer asks
// before it writes.
type IntegrityRepository interface {
	Exists(ctx context.Context, entity domain.Entity, id int64) (bool, error)
	// HasDependents reports whether any row of ref.From names id through
	// ref.Column.
	HasDependents(ctx context.Context, ref domain.Reference, id int64) (bool, error)
}

type ReportRepository interface {
	AvailableVehiclesByClass(ctx context.Context, class string) ([]domain.VehicleListing, error)
	OpenOrdersByClient(ctx context.Context, fullName string) ([]domain.OrderSummary, error)
	PaymentsByOrder(ctx context.Context, orderID int64) ([]domain.Payment, error)
	FinesByOrder(ctx context.Context, orderID int64) ([]domain.Fine, error)
}

// Store hands out the repositories bound to one connection or transaction.
type Store interface {
	CarModels() CarModelRepository
	Vehicles() VehicleRepository
	Clients() ClientRepository
	Employees() EmployeeRepository
	RentalOrders() RentalOrderRepository
	Maintenance() MaintenanceRepository
	Fines() FineRepository
	Payments() PaymentRepository
	InsurancePolicies() InsurancePolicyRepository
	Reviews() ReviewRepository
	Integrity() IntegrityRepository
	Reports() ReportRepository

	// WithTx runs fn against a transaction-bound Store. The transaction
	// commits when fn returns nil and rolls back otherwise. Calls made on a
	// Store that is already transaction-bound join the outer transaction.
	WithTx(ctx context.Context, fn func(Store) error) error
	Ping(ctx context.Context) error
}
