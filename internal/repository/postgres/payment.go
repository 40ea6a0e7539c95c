package postgres

import (
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

var paymentTable = &table[domain.Payment]{
	entity:  domain.EntityPayment,
	name:    "payments",
	columns: []string{"order_id", "amount", "payment_date", "payment_type", "method"},
	id:      func(p *domain.Payment) *int64 { return &p.ID },
	scan: func(sc scanner, p *domain.Payment) error {
		return sc.Scan(&p.ID, &p.OrderID, &p.Amount, &p.PaymentDate, &p.PaymentType, &p.Method)
	},
	values: func(p *domain.Payment) []any {
		return []any{p.OrderID, p.Amount, p.PaymentDate, p.PaymentType, p.Method}
	},
}

func NewPaymentRepository(q DBTX) repository.PaymentRepository {
	return &crud[domain.Payment]{q: q, t: paymentTable}
}
