package domain

// Review belongs to exactly one order; the store keeps order_id unique.
type Review struct {
	ID           int64   `json:"id"`
	OrderID      int64   `json:"order_id"`
	CarRating    int     `json:"car_rating"`
	ClientRating int     `json:"client_rating"`
	Comment      *string `json:"comment"`
}

func (r Review) Targets() []Target {
	return []Target{{Entity: EntityRentalOrder, ID: r.OrderID}}
}

type ReviewPatch struct {
	OrderID      Optional[int64]   `json:"order_id"`
	CarRating    Optional[int]     `json:"car_rating"`
	ClientRating Optional[int]     `json:"client_rating"`
	Comment      Optional[*string] `json:"comment"`
}

func (p ReviewPatch) Apply(r *Review) {
	p.OrderID.applyTo(&r.OrderID)
	p.CarRating.applyTo(&r.CarRating)
	p.ClientRating.applyTo(&r.ClientRating)
	p.Comment.applyTo(&r.Comment)
}
