package employee

import "context"

// EmployeeRepository defines data access for employees.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns active employees, optionally restricted to the
	// given IDs. An empty filter returns everyone.
	ListActive(ctx context.Context, ids []string) ([]Employee, error)
}
