package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

// EntityService is the operation set every record type exposes. Update
// applies a merge patch: only fields present in the patch change.
type EntityService[E, P any] interface {
	List(ctx context.Context) ([]E, error)
	Get(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, e *E) (*E, error)
	Update(ctx context.Context, id int64, patch P) (*E, error)
	Delete(ctx context.Context, id int64) error
}

type CarModelService interface {
	EntityService[domain.CarModel, domain.CarModelPatch]
}

type VehicleService interface {
	EntityService[domain.Vehicle, domain.VehiclePatch]
	ListFiltered(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error)
}

type ClientService interface {
	EntityService[domain.Client, domain.ClientPatch]
}

type EmployeeService interface {
	EntityService[domain.Employee, domain.EmployeePatch]
}

// OrderService creates orders by reserving the vehicle and releases the
// vehicle again when an open order is deleted.
type OrderService interface {
	EntityService[domain.RentalOrder, domain.RentalOrderPatch]
}

type MaintenanceService interface {
	EntityService[domain.Maintenance, domain.MaintenancePatch]
}

type FineService interface {
	EntityService[domain.Fine, domain.FinePatch]
}

type PaymentService interface {
	EntityService[domain.Payment, domain.PaymentPatch]
}

type InsurancePolicyService interface {
	EntityService[domain.InsurancePolicy, domain.InsurancePolicyPatch]
}

type ReviewService interface {
	EntityService[domain.Review, domain.ReviewPatch]
}

type ReportService interface {
	AvailableVehiclesByClass(ctx context.Context, class string) ([]domain.VehicleListing, error)
	OpenOrdersByClient(ctx context.Context, fullName string) ([]domain.OrderSummary, error)
	OrderFinancials(ctx context.Context, orderID int64) (*domain.OrderStatement, error)
}

// Services bundles one service per record type over a shared store.
type Services struct {
	CarModels   CarModelService
	Vehicles    VehicleService
	Clients     ClientService
	Employees   EmployeeService
	Orders      OrderService
	Maintenance MaintenanceService
	Fines       FineService
	Payments    PaymentService
	Insurance   InsurancePolicyService
	Reviews     ReviewService
	Reports     ReportService

	store repository.Store
}

func New(store repository.Store) *Services {
	return &Services{
		CarModels:   NewCarModelService(store),
		Vehicles:    NewVehicleService(store),
		Clients:     NewClientService(store),
		Employees:   NewEmployeeService(store),
		Orders:      NewOrderService(store),
		Maintenance: NewMaintenanceService(store),
		Fines:       NewFineService(store),
		Payments:    NewPaymentService(store),
		Insurance:   NewInsurancePolicyService(store),
		Reviews:     NewReviewService(store),
		Reports:     NewReportService(store),
		store:       store,
	}
}

// Ping checks the store is reachable.
func (s *Services) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
