package employee

import "context"

// EmployeeService covers the employee master surface.
type EmployeeService interface {
	ListActive(ctx context.Context) ([]EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
