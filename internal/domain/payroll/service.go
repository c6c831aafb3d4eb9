package payroll

import "context"

// PayrollService defines business logic for payroll generation and reads.
type PayrollService interface {
	// Generate creates the payroll record for one employee and one period.
	// Preconditions checked in order: employee exists, employee active, no
	// record for the period yet, positive base salary.
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollRecordResponse, error)

	// GenerateForAllActive runs generation over every active employee.
	// One employee's failure is recorded and never aborts the rest; only
	// failing to read the active set fails the whole call.
	GenerateForAllActive(ctx context.Context, req GenerateBulkPayrollRequest) (BulkPayrollResponse, error)

	// GetRecord retrieves one record (employees may only read their own).
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)

	// ListRecords lists records newest-generated first (employees see only
	// their own; admins may filter by employee).
	ListRecords(ctx context.Context, filter PayrollFilter) (ListPayrollRecordResponse, error)

	// DeleteRecord removes a record unconditionally (admin only).
	DeleteRecord(ctx context.Context, id string) error
}
