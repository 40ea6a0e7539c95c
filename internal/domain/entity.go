package domain

// Entity names a record type. The value is used in error messages.
type Entity string

const (
	EntityCarModel        Entity = "car model"
	EntityVehicle         Entity = "vehicle"
	EntityClient          Entity = "client"
	EntityEmployee        Entity = "employee"
	EntityRentalOrder     Entity = "rental order"
	EntityMaintenance     Entity = "maintenance record"
	EntityFine            Entity = "fine"
	EntityPayment         Entity = "payment"
	EntityInsurancePolicy Entity = "insurance policy"
	EntityReview          Entity = "review"
)

// Reference is one foreign-key edge of the relationship graph: rows of From
// name a row of To through Column.
type Reference struct {
	From   Entity
	Column string
	To     Entity
}

// References is the full relationship graph. Dependents of an entity are
// listed in the order deletion guards evaluate them.
var References = []Reference{
	{From: EntityVehicle, Column: "model_id", To: EntityCarModel},
	{From: EntityRentalOrder, Column: "client_id", To: EntityClient},
	{From: EntityRentalOrder, Column: "vehicle_id", To: EntityVehicle},
	{From: EntityMaintenance, Column: "vehicle_id", To: EntityVehicle},
	{From: EntityInsurancePolicy, Column: "vehicle_id", To: EntityVehicle},
	{From: EntityRentalOrder, Column: "employee_id", To: EntityEmployee},
	{From: EntityPayment, Column: "order_id", To: EntityRentalOrder},
	{From: EntityFine, Column: "order_id", To: EntityRentalOrder},
	{From: EntityReview, Column: "order_id", To: EntityRentalOrder},
}

// DependentsOf returns the edges pointing at e. An empty result means e is a
// leaf entity.
func DependentsOf(e Entity) []Reference {
	var refs []Reference
	for _, ref := range References {
		if ref.To == e {
			refs = append(refs, ref)
		}
	}
	return refs
}

// Target is a row named by a reference attribute.
type Target struct {
	Entity Entity
	ID     int64
}
