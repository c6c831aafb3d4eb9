package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	calc         payroll.Calculator
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(
	calc payroll.Calculator,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		calc:         calc,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	periodDate, _ := time.Parse("2006-01-02", req.PeriodDate)

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PayrollRecordResponse{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	record, err := s.generateForEmployee(ctx, emp, periodDate, req.SubsidyMode(), req.Observations)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return payroll.MapToRecordResponse(record), nil
}

// generateForEmployee runs the precondition chain and persists the payslip.
// Order matters: inactive before duplicate before salary, so callers get the
// most actionable failure first.
func (s *PayrollServiceImpl) generateForEmployee(
	ctx context.Context,
	emp employee.Employee,
	periodDate time.Time,
	subsidy payroll.TransportSubsidyMode,
	observations *string,
) (payroll.PayrollRecord, error) {
	if !emp.IsActive() {
		return payroll.PayrollRecord{}, payroll.ErrEmployeeInactive
	}

	_, err := s.payrollRepo.GetByEmployeeAndPeriod(ctx, emp.ID, periodDate)
	if err == nil {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
	}
	if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to check existing payroll record: %w", err)
	}

	payslip, err := s.calc.Compute(emp.BaseSalary, subsidy)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	record, err := s.payrollRepo.Create(ctx, payroll.PayrollRecord{
		EmployeeID:    emp.ID,
		PeriodDate:    periodDate,
		Lines:         payslip.Lines,
		TotalAccrued:  payslip.TotalAccrued,
		TotalDeducted: payslip.TotalDeducted,
		NetPay:        payslip.NetPay,
		Observations:  observations,
	})
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	fullName := emp.FullName()
	record.EmployeeName = &fullName
	record.EmployeeDoc = &emp.DocNumber

	return record, nil
}

func (s *PayrollServiceImpl) GenerateForAllActive(ctx context.Context, req payroll.GenerateBulkPayrollRequest) (payroll.BulkPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BulkPayrollResponse{}, err
	}

	periodDate, _ := time.Parse("2006-01-02", req.PeriodDate)

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.BulkPayrollResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	result := payroll.BulkPayrollResponse{
		Total:     len(employees),
		Successes: []payroll.BulkPayrollSuccess{},
		Failures:  []payroll.BulkPayrollFailure{},
	}

	for _, emp := range employees {
		record, err := s.generateForEmployee(ctx, emp, periodDate, req.SubsidyMode(), nil)
		if err != nil {
			result.Failures = append(result.Failures, payroll.BulkPayrollFailure{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName(),
				Reason:       failureReason(err),
			})
			continue
		}
		result.Successes = append(result.Successes, payroll.BulkPayrollSuccess{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName(),
			RecordID:     record.ID,
		})
	}

	return result, nil
}

// failureReason maps per-employee generation errors to stable summary
// strings; unknown errors pass through verbatim.
func failureReason(err error) string {
	switch {
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		return "payroll already generated for this period"
	case errors.Is(err, payroll.ErrInvalidBaseSalary):
		return "base salary must be greater than zero"
	case errors.Is(err, payroll.ErrEmployeeInactive):
		return "employee is inactive"
	default:
		return err.Error()
	}
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	ownEmployeeID, restricted, err := s.ownScope(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if restricted && record.EmployeeID != ownEmployeeID {
		// Hide other employees' records rather than confirming they exist.
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordNotFound
	}

	return payroll.MapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollRecordResponse, error) {
	ownEmployeeID, restricted, err := s.ownScope(ctx)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 10
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if restricted {
		if ownEmployeeID == "" {
			return payroll.ListPayrollRecordResponse{
				Data:       []payroll.PayrollRecordResponse{},
				TotalCount: 0,
				Page:       filter.Page,
				Limit:      filter.Limit,
			}, nil
		}
		filter.EmployeeID = &ownEmployeeID
	}

	records, totalCount, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	data := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, record := range records {
		data = append(data, payroll.MapToRecordResponse(record))
	}

	return payroll.ListPayrollRecordResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.payrollRepo.Delete(ctx, id)
}

// ownScope inspects the access token claims. For employee-role callers it
// reports that reads must be restricted to the linked employee: taken from
// the employee_id claim when the token carries one, otherwise resolved
// through the user account. Admin callers get no restriction, as do calls
// with no token in the context (internal use).
func (s *PayrollServiceImpl) ownScope(ctx context.Context) (employeeID string, restricted bool, err error) {
	_, claims, claimsErr := jwtauth.FromContext(ctx)
	if claimsErr != nil || claims == nil {
		return "", false, nil
	}

	role, _ := claims["role"].(string)
	if role != string(user.RoleEmployee) {
		return "", false, nil
	}

	if id, ok := claims["employee_id"].(string); ok && id != "" {
		return id, true, nil
	}

	userID, _ := claims["user_id"].(string)
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Employee account without an employee record sees nothing.
			return "", true, nil
		}
		return "", false, fmt.Errorf("failed to resolve employee scope: %w", err)
	}

	return emp.ID, true, nil
}
