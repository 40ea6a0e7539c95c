package postgres

import (
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

var insurancePolicyTable = &table[domain.InsurancePolicy]{
	entity:  domain.EntityInsurancePolicy,
	name:    "insurance_policies",
	columns: []string{"vehicle_id", "policy_number", "insurance_company", "start_date", "end_date", "cost"},
	id:      func(p *domain.InsurancePolicy) *int64 { return &p.ID },
	scan: func(sc scanner, p *domain.InsurancePolicy) error {
		return sc.Scan(&p.ID, &p.VehicleID, &p.PolicyNumber, &p.InsuranceCompany, &p.StartDate, &p.EndDate, &p.Cost)
	},
	values: func(p *domain.InsurancePolicy) []any {
		return []any{p.VehicleID, p.PolicyNumber, p.InsuranceCompany, p.StartDate, p.EndDate, p.Cost}
	},
}

func NewInsurancePolicyRepository(q DBTX) repository.InsurancePolicyRepository {
	return &crud[domain.InsurancePolicy]{q: q, t: insurancePolicyTable}
}
