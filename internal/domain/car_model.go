package domain

import "github.com/shopspring/decimal"

type CarModel struct {
	ID            int64           `json:"id"`
	Brand         string          `json:"brand"`
	ModelName     string          `json:"model_name"`
	Class         string          `json:"class"`
	DailyRate     decimal.Decimal `json:"daily_rate"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
}

type CarModelPatch struct {
	Brand         Optional[string]          `json:"brand"`
	ModelName     Optional[string]          `json:"model_name"`
	Class         Optional[string]          `json:"class"`
	DailyRate     Optional[decimal.Decimal] `json:"daily_rate"`
	DepositAmount Optional[decimal.Decimal] `json:"deposit_amount"`
}

func (p CarModelPatch) Apply(m *CarModel) {
	p.Brand.applyTo(&m.Brand)
	p.ModelName.applyTo(&m.ModelName)
	p.Class.applyTo(&m.Class)
	p.DailyRate.applyTo(&m.DailyRate)
	p.DepositAmount.applyTo(&m.DepositAmount)
}
