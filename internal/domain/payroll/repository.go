package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access for payroll records. Create relies
// on the storage-level unique index over (employee_id, period_date) and maps
// its violation to ErrPayrollRecordAlreadyExists, so the duplicate-period
// guard holds even when two writers race past the application-level check.
type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, periodDate time.Time) (PayrollRecord, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
	Delete(ctx context.Context, id string) error
}
