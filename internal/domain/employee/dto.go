package employee

import (
	"github.com/softventure/timesheet-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	CompanyID      int64  `json:"company_id"`
	Name           string `json:"employee_name"`
	DepartmentName string `json:"department_name"`
	EmployeeType   string `json:"employee_type"`
	Role           Role   `json:"role"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if r.Role == "" {
		r.Role = RoleEmployee
	} else if !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be employee, manager or accounting",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID             int64  `json:"-"`
	Name           string `json:"employee_name"`
	DepartmentName string `json:"department_name"`
	EmployeeType   string `json:"employee_type"`
	Role           Role   `json:"role"`
	RetirementFlag bool   `json:"retirement_flag"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if r.Role != "" && !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be employee, manager or accounting",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             int64  `json:"employee_id"`
	CompanyID      int64  `json:"company_id"`
	Name           string `json:"employee_name"`
	DepartmentName string `json:"department_name"`
	EmployeeType   string `json:"employee_type"`
	Role           Role   `json:"role"`
	RetirementFlag bool   `json:"retirement_flag"`
	MasterFlag     bool   `json:"master_flag"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		CompanyID:      e.CompanyID,
		Name:           e.Name,
		DepartmentName: e.DepartmentName,
		EmployeeType:   e.EmployeeType,
		Role:           e.Role,
		RetirementFlag: e.RetirementFlag,
		MasterFlag:     e.MasterFlag,
	}
}
