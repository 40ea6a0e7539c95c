package postgres

import (
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

var employeeTable = &table[domain.Employee]{
	entity:  domain.EntityEmployee,
	name:    "employees",
	columns: []string{"full_name", "position", "status"},
	id:      func(e *domain.Employee) *int64 { return &e.ID },
	scan: func(sc scanner, e *domain.Employee) error {
		return sc.Scan(&e.ID, &e.FullName, &e.Position, &e.Status)
	},
	values: func(e *domain.Employee) []any {
		return []any{e.FullName, e.Position, e.Status}
	},
}

func NewEmployeeRepository(q DBTX) repository.EmployeeRepository {
	return &crud[domain.Employee]{q: q, t: employeeTable}
}
