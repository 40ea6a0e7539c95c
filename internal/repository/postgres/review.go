package postgres

import (
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

var reviewTable = &table[domain.Review]{
	entity:  domain.EntityReview,
	name:    "reviews",
	columns: []string{"order_id", "car_rating", "client_rating", "comment"},
	id:      func(r *domain.Review) *int64 { return &r.ID },
	scan: func(sc scanner, r *domain.Review) error {
		return sc.Scan(&r.ID, &r.OrderID, &r.CarRating, &r.ClientRating, &r.Comment)
	},
	values: func(r *domain.Review) []any {
		return []any{r.OrderID, r.CarRating, r.ClientRating, r.Comment}
	},
}

func NewReviewRepository(q DBTX) repository.ReviewRepository {
	return &crud[domain.Review]{q: q, t: reviewTable}
}
