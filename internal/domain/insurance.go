package domain

import "github.com/shopspring/decimal"

type InsurancePolicy struct {
	ID               int64           `json:"id"`
	VehicleID        int64           `json:"vehicle_id"`
	PolicyNumber     string          `json:"policy_number"`
	InsuranceCompany string          `json:"insurance_company"`
	StartDate        Date            `json:"start_date"`
	EndDate          Date            `json:"end_date"`
	Cost             decimal.Decimal `json:"cost"`
}

func (p InsurancePolicy) Targets() []Target {
	return []Target{{Entity: EntityVehicle, ID: p.VehicleID}}
}

type InsurancePolicyPatch struct {
	VehicleID        Optional[int64]           `json:"vehicle_id"`
	PolicyNumber     Optional[string]          `json:"policy_number"`
	InsuranceCompany Optional[string]          `json:"insurance_company"`
	StartDate        Optional[Date]            `json:"start_date"`
	EndDate          Optional[Date]            `json:"end_date"`
	Cost             Optional[decimal.Decimal] `json:"cost"`
}

func (p InsurancePolicyPatch) Apply(ip *InsurancePolicy) {
	p.VehicleID.applyTo(&ip.VehicleID)
	p.PolicyNumber.applyTo(&ip.PolicyNumber)
	p.InsuranceCompany.applyTo(&ip.InsuranceCompany)
	p.StartDate.applyTo(&ip.StartDate)
	p.EndDate.applyTo(&ip.EndDate)
	p.Cost.applyTo(&ip.Cost)
}
