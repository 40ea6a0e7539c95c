package postgres

import (
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

var fineTable = &table[domain.Fine]{
	entity:  domain.EntityFine,
	name:    "fines",
	columns: []string{"order_id", "violation_type", "amount", "is_paid", "issue_date"},
	id:      func(f *domain.Fine) *int64 { return &f.ID },
	scan: func(sc scanner, f *domain.Fine) error {
		return sc.Scan(&f.ID, &f.OrderID, &f.ViolationType, &f.Amount, &f.IsPaid, &f.IssueDate)
	},
	values: func(f *domain.Fine) []any {
		return []any{f.OrderID, f.ViolationType, f.Amount, f.IsPaid, f.IssueDate}
	},
}

func NewFineRepository(q DBTX) repository.FineRepository {
	return &crud[domain.Fine]{q: q, t: fineTable}
}
