package postgres

import (
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

var clientTable = &table[domain.Client]{
	entity:  domain.EntityClient,
	name:    "clients",
	columns: []string{"full_name", "driver_license_num", "passport_data", "phone", "birth_date", "rating", "is_blacklisted"},
	id:      func(c *domain.Client) *int64 { return &c.ID },
	scan: func(sc scanner, c *domain.Client) error {
		return sc.Scan(&c.ID, &c.FullName, &c.DriverLicenseNum, &c.PassportData, &c.Phone, &c.BirthDate, &c.Rating, &c.IsBlacklisted)
	},
	values: func(c *domain.Client) []any {
		return []any{c.FullName, c.DriverLicenseNum, c.PassportData, c.Phone, c.BirthDate, c.Rating, c.IsBlacklisted}
	},
}

func NewClientRepository(q DBTX) repository.ClientRepository {
	return &crud[domain.Client]{q: q, t: clientTable}
}
