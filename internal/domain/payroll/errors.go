package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record already exists for this employee and period")
	ErrEmployeeNotFound           = errors.New("employee not found")
	ErrEmployeeInactive           = errors.New("cannot generate payroll for an inactive employee")
	ErrInvalidBaseSalary          = errors.New("employee has no valid positive base salary")
)
