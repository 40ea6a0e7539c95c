package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	PaymentType string          `json:"payment_type"`
	Method      string          `json:"method"`
}

func (p Payment) Targets() []Target {
	return []Target{{Entity: EntityRentalOrder, ID: p.OrderID}}
}

type PaymentPatch struct {
	OrderID     Optional[int64]           `json:"order_id"`
	Amount      Optional[decimal.Decimal] `json:"amount"`
	PaymentDate Optional[time.Time]       `json:"payment_date"`
	PaymentType Optional[string]          `json:"payment_type"`
	Method      Optional[string]          `json:"method"`
}

func (p PaymentPatch) Apply(pm *Payment) {
	p.OrderID.applyTo(&pm.OrderID)
	p.Amount.applyTo(&pm.Amount)
	p.PaymentDate.applyTo(&pm.PaymentDate)
	p.PaymentType.applyTo(&pm.PaymentType)
	p.Method.applyTo(&pm.Method)
}
