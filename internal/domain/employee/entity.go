package employee

import "time"

// Role gates what an employee may do in the report workflow.
type Role string

const (
	RoleEmployee   Role = "employee"
	RoleManager    Role = "manager"
	RoleAccounting Role = "accounting"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAccounting:
		return true
	}
	return false
}

type Employee struct {
	ID             int64
	CompanyID      int64
	Name           string
	DepartmentName string
	EmployeeType   string
	Role           Role
	RetirementFlag bool
	// MasterFlag marks employees allowed to use the admin surface; only
	// they carry a login password.
	MasterFlag   bool
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
