// Package servicetest provides testify mocks of the service interfaces.
package servicetest

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// EntityService mocks service.EntityService for any record type.
type EntityService[E, P any] struct {
	mock.Mock
}

func (m *EntityService[E, P]) List(ctx context.Context) ([]E, error) {
	args := m.MethodCalled("List", ctx)
	items, _ := args.Get(0).([]E)
	return items, args.Error(1)
}

func (m *EntityService[E, P]) Get(ctx context.Context, id int64) (*E, error) {
	args := m.MethodCalled("Get", ctx, id)
	e, _ := args.Get(0).(*E)
	return e, args.Error(1)
}

func (m *EntityService[E, P]) Create(ctx context.Context, e *E) (*E, error) {
	args := m.MethodCalled("Create", ctx, e)
	created, _ := args.Get(0).(*E)
	return created, args.Error(1)
}

func (m *EntityService[E, P]) Update(ctx context.Context, id int64, patch P) (*E, error) {
	args := m.MethodCalled("Update", ctx, id, patch)
	e, _ := args.Get(0).(*E)
	return e, args.Error(1)
}

func (m *EntityService[E, P]) Delete(ctx context.Context, id int64) error {
	args := m.MethodCalled("Delete", ctx, id)
	return args.Error(0)
}

type CarModelService = EntityService[domain.CarModel, domain.CarModelPatch]
type ClientService = EntityService[domain.Client, domain.ClientPatch]
type EmployeeService = EntityService[domain.Employee, domain.EmployeePatch]
type OrderService = EntityService[domain.RentalOrder, domain.RentalOrderPatch]
type MaintenanceService = EntityService[domain.Maintenance, domain.MaintenancePatch]
type FineService = EntityService[domain.Fine, domain.FinePatch]
type PaymentService = EntityService[domain.Payment, domain.PaymentPatch]
type InsurancePolicyService = EntityService[domain.InsurancePolicy, domain.InsurancePolicyPatch]
type ReviewService = EntityService[domain.Review, domain.ReviewPatch]

type VehicleService struct {
	EntityService[domain.Vehicle, domain.VehiclePatch]
}

func (m *VehicleService) ListFiltered(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.MethodCalled("ListFiltered", ctx, filter)
	items, _ := args.Get(0).([]domain.Vehicle)
	return items, args.Error(1)
}

type ReportService struct {
	mock.Mock
}

func (m *ReportService) AvailableVehiclesByClass(ctx context.Context, class string) ([]domain.VehicleListing, error) {
	args := m.Called(ctx, class)
	items, _ := args.Get(0).([]domain.VehicleListing)
	return items, args.Error(1)
}

func (m *ReportService) OpenOrdersByClient(ctx context.Context, fullName string) ([]domain.OrderSummary, error) {
	args := m.Called(ctx, fullName)
	items, _ := args.Get(0).([]domain.OrderSummary)
	return items, args.Error(1)
}

func (m *ReportService) OrderFinancials(ctx context.Context, orderID int64) (*domain.OrderStatement, error) {
	args := m.Called(ctx, orderID)
	st, _ := args.Get(0).(*domain.OrderStatement)
	return st, args.Error(1)
}

// Mocks holds one mock per service.
type Mocks struct {
	CarModels   *CarModelService
	Vehicles    *VehicleService
	Clients     *ClientService
	Employees   *EmployeeService
	Orders      *OrderService
	Maintenance *MaintenanceService
	Fines       *FineService
	Payments    *PaymentService
	Insurance   *InsurancePolicyService
	Reviews     *ReviewService
	Reports     *ReportService
}

// NewServices returns a service bundle backed entirely by fresh mocks.
func NewServices() (*service.Services, *Mocks) {
	m := &Mocks{
		CarModels:   new(CarModelService),
		Vehicles:    new(VehicleService),
		Clients:     new(ClientService),
		Employees:   new(EmployeeService),
		Orders:      new(OrderService),
		Maintenance: new(MaintenanceService),
		Fines:       new(FineService),
		Payments:    new(PaymentService),
		Insurance:   new(InsurancePolicyService),
		Reviews:     new(ReviewService),
		Reports:     new(ReportService),
	}
	return &service.Services{
		CarModels:   m.CarModels,
		Vehicles:    m.Vehicles,
		Clients:     m.Clients,
		Employees:   m.Employees,
		Orders:      m.Orders,
		Maintenance: m.Maintenance,
		Fines:       m.Fines,
		Payments:    m.Payments,
		Insurance:   m.Insurance,
		Reviews:     m.Reviews,
		Reports:     m.Reports,
	}, m
}
