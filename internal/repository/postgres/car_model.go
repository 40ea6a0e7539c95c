package postgres

import (
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

var carModelTable = &table[domain.CarModel]{
	entity:  domain.EntityCarModel,
	name:    "car_models",
	columns: []string{"brand", "model_name", "class", "daily_rate", "deposit_amount"},
	id:      func(m *domain.CarModel) *int64 { return &m.ID },
	scan: func(sc scanner, m *domain.CarModel) error {
		return sc.Scan(&m.ID, &m.Brand, &m.ModelName, &m.Class, &m.DailyRate, &m.DepositAmount)
	},
	values: func(m *domain.CarModel) []any {
		return []any{m.Brand, m.ModelName, m.Class, m.DailyRate, m.DepositAmount}
	},
}

func NewCarModelRepository(q DBTX) repository.CarModelRepository {
	return &crud[domain.CarModel]{q: q, t: carModelTable}
}
