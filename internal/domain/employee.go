package domain

type EmployeeStatus string

const (
	EmployeeStatusActive    EmployeeStatus = "Active"
	EmployeeStatusFired     EmployeeStatus = "Fired"
	EmployeeStatusVacation  EmployeeStatus = "Vacation"
	EmployeeStatusSick      EmployeeStatus = "Sick"
	EmployeeStatusMaternity EmployeeStatus = "Maternity"
)

func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusFired, EmployeeStatusVacation, EmployeeStatusSick, EmployeeStatusMaternity:
		return true
	}
	return false
}

type Employee struct {
	ID       int64          `json:"id"`
	FullName string         `json:"full_name"`
	Position string         `json:"position"`
	Status   EmployeeStatus `json:"status"`
}

func (e Employee) Validate() error {
	if !e.Status.Valid() {
		return BadRequest("invalid employee status %q", e.Status)
	}
	return nil
}

type EmployeePatch struct {
	FullName Optional[string]         `json:"full_name"`
	Position Optional[string]         `json:"position"`
	Status   Optional[EmployeeStatus] `json:"status"`
}

func (p EmployeePatch) Apply(e *Employee) {
	p.FullName.applyTo(&e.FullName)
	p.Position.applyTo(&e.Position)
	p.Status.applyTo(&e.Status)
}
