package employee

import "context"

// EmployeeRepository fetches the employee roster from the data source.
type EmployeeRepository interface {
	FetchEmployees(ctx context.Context) ([]Employee, error)
}
