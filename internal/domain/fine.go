package domain

import "github.com/shopspring/decimal"

type Fine struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	ViolationType string          `json:"violation_type"`
	Amount        decimal.Decimal `json:"amount"`
	IsPaid        bool            `json:"is_paid"`
	IssueDate     Date            `json:"issue_date"`
}

func (f Fine) Targets() []Target {
	return []Target{{Entity: EntityRentalOrder, ID: f.OrderID}}
}

type FinePatch struct {
	OrderID       Optional[int64]           `json:"order_id"`
	ViolationType Optional[string]          `json:"violation_type"`
	Amount        Optional[decimal.Decimal] `json:"amount"`
	IsPaid        Optional[bool]            `json:"is_paid"`
	IssueDate     Optional[Date]            `json:"issue_date"`
}

func (p FinePatch) Apply(f *Fine) {
	p.OrderID.applyTo(&f.OrderID)
	p.ViolationType.applyTo(&f.ViolationType)
	p.Amount.applyTo(&f.Amount)
	p.IsPaid.applyTo(&f.IsPaid)
	p.IssueDate.applyTo(&f.IssueDate)
}
