package employee

import "context"

// EmployeeService defines business logic for employee administration.
// All operations are admin-only; role gating happens at the HTTP layer.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// DeactivateEmployee is the delete operation: a soft delete that keeps
	// historical payroll records intact.
	DeactivateEmployee(ctx context.Context, id string) error
}
