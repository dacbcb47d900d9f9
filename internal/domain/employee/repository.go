package employee

import "context"

// EmployeeRepository defines data access for the employee master.
type EmployeeRepository interface {
	// ListActive returns employees that have not retired.
	ListActive(ctx context.Context) ([]Employee, error)

	GetByID(ctx context.Context, id int64) (Employee, error)

	Create(ctx context.Context, emp Employee) (Employee, error)

	Update(ctx context.Context, emp Employee) error
}
