package service

import (
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"

	"github.com/shopspring/decimal"
)

func NewCarModelService(store repository.Store) CarModelService {
	return newEntityService[domain.CarModel, domain.CarModelPatch](store, entityConfig[domain.CarModel]{
		name:   "carModelService",
		entity: domain.EntityCarModel,
		repo:   func(s repository.Store) repository.CRUD[domain.CarModel] { return s.CarModels() },
		id:     func(m *domain.CarModel) *int64 { return &m.ID },
		validate: func(m *domain.CarModel) error {
			if m.DailyRate.IsNegative() || m.DepositAmount.IsNegative() {
				return domain.BadRequest("daily rate and deposit must not be negative")
			}
			return nil
		},
	})
}

func NewClientService(store repository.Store) ClientService {
	return newEntityService[domain.Client, domain.ClientPatch](store, entityConfig[domain.Client]{
		name:   "clientService",
		entity: domain.EntityClient,
		repo:   func(s repository.Store) repository.CRUD[domain.Client] { return s.Clients() },
		id:     func(c *domain.Client) *int64 { return &c.ID },
		defaults: func(c *domain.Client) {
			if !c.Rating.Valid {
				c.Rating = decimal.NewNullDecimal(domain.DefaultClientRating)
			}
		},
	})
}

func NewEmployeeService(store repository.Store) EmployeeService {
	return newEntityService[domain.Employee, domain.EmployeePatch](store, entityConfig[domain.Employee]{
		name:   "employeeService",
		entity: domain.EntityEmployee,
		repo:   func(s repository.Store) repository.CRUD[domain.Employee] { return s.Employees() },
		id:     func(e *domain.Employee) *int64 { return &e.ID },
		defaults: func(e *domain.Employee) {
			if e.Status == "" {
				e.Status = domain.EmployeeStatusActive
			}
		},
		validate: func(e *domain.Employee) error { return e.Validate() },
	})
}

func NewMaintenanceService(store repository.Store) MaintenanceService {
	return newEntityService[domain.Maintenance, domain.MaintenancePatch](store, entityConfig[domain.Maintenance]{
		name:   "maintenanceService",
		entity: domain.EntityMaintenance,
		repo:   func(s repository.Store) repository.CRUD[domain.Maintenance] { return s.Maintenance() },
		id:     func(m *domain.Maintenance) *int64 { return &m.ID },
		validate: func(m *domain.Maintenance) error {
			if m.EndDate != nil && m.EndDate.Before(m.StartDate.Time) {
				return domain.BadRequest("maintenance end date is before start date")
			}
			return nil
		},
		targets: func(m *domain.Maintenance) []domain.Target { return m.Targets() },
	})
}

func NewFineService(store repository.Store) FineService {
	return newEntityService[domain.Fine, domain.FinePatch](store, entityConfig[domain.Fine]{
		name:    "fineService",
		entity:  domain.EntityFine,
		repo:    func(s repository.Store) repository.CRUD[domain.Fine] { return s.Fines() },
		id:      func(f *domain.Fine) *int64 { return &f.ID },
		targets: func(f *domain.Fine) []domain.Target { return f.Targets() },
	})
}

func NewPaymentService(store repository.Store) PaymentService {
	return newEntityService[domain.Payment, domain.PaymentPatch](store, entityConfig[domain.Payment]{
		name:   "paymentService",
		entity: domain.EntityPayment,
		repo:   func(s repository.Store) repository.CRUD[domain.Payment] { return s.Payments() },
		id:     func(p *domain.Payment) *int64 { return &p.ID },
		defaults: func(p *domain.Payment) {
			if p.PaymentDate.IsZero() {
				p.PaymentDate = time.Now().UTC()
			}
		},
		targets: func(p *domain.Payment) []domain.Target { return p.Targets() },
	})
}

func NewInsurancePolicyService(store repository.Store) InsurancePolicyService {
	return newEntityService[domain.InsurancePolicy, domain.InsurancePolicyPatch](store, entityConfig[domain.InsurancePolicy]{
		name:   "insurancePolicyService",
		entity: domain.EntityInsurancePolicy,
		repo:   func(s repository.Store) repository.CRUD[domain.InsurancePolicy] { return s.InsurancePolicies() },
		id:     func(p *domain.InsurancePolicy) *int64 { return &p.ID },
		validate: func(p *domain.InsurancePolicy) error {
			if p.EndDate.Before(p.StartDate.Time) {
				return domain.BadRequest("policy end date is before start date")
			}
			return nil
		},
		targets: func(p *domain.InsurancePolicy) []domain.Target { return p.Targets() },
	})
}

func NewReviewService(store repository.Store) ReviewService {
	return newEntityService[domain.Review, domain.ReviewPatch](store, entityConfig[domain.Review]{
		name:    "reviewService",
		entity:  domain.EntityReview,
		repo:    func(s repository.Store) repository.CRUD[domain.Review] { return s.Reviews() },
		id:      func(r *domain.Review) *int64 { return &r.ID },
		targets: func(r *domain.Review) []domain.Target { return r.Targets() },
	})
}
