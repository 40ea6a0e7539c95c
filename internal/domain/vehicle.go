package domain

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "Available"
	VehicleStatusRented      VehicleStatus = "Rented"
	VehicleStatusMaintenance VehicleStatus = "Maintenance"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusRented, VehicleStatusMaintenance:
		return true
	}
	return false
}

type Vehicle struct {
	ID             int64         `json:"id"`
	ModelID        int64         `json:"model_id"`
	LicensePlate   string        `json:"license_plate"`
	VINCode        string        `json:"vin_code"`
	Color          string        `json:"color"`
	CurrentMileage int64         `json:"current_mileage"`
	Status         VehicleStatus `json:"status"`
}

func (v Vehicle) Validate() error {
	if !v.Status.Valid() {
		return BadRequest("invalid vehicle status %q", v.Status)
	}
	return nil
}

func (v Vehicle) Targets() []Target {
	return []Target{{Entity: EntityCarModel, ID: v.ModelID}}
}

type VehiclePatch struct {
	ModelID        Optional[int64]         `json:"model_id"`
	LicensePlate   Optional[string]        `json:"license_plate"`
	VINCode        Optional[string]        `json:"vin_code"`
	Color          Optional[string]        `json:"color"`
	CurrentMileage Optional[int64]         `json:"current_mileage"`
	Status         Optional[VehicleStatus] `json:"status"`
}

func (p VehiclePatch) Apply(v *Vehicle) {
	p.ModelID.applyTo(&v.ModelID)
	p.LicensePlate.applyTo(&v.LicensePlate)
	p.VINCode.applyTo(&v.VINCode)
	p.Color.applyTo(&v.Color)
	p.CurrentMileage.applyTo(&v.CurrentMileage)
	p.Status.applyTo(&v.Status)
}

// VehicleFilter narrows a vehicle listing. A nil field matches every row.
type VehicleFilter struct {
	Status *VehicleStatus
}
