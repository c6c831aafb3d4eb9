package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// Create inserts a record; id and generated_at are assigned server-side.
// The uk_payroll_employee_period unique index is the authoritative guard
// against two writers generating the same (employee, period) concurrently.
func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	detailsJSON, err := json.Marshal(record.Lines)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to encode payslip lines: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			employee_id, period_date, details,
			total_accrued, total_deducted, net_pay, observations
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, period_date, details,
			total_accrued, total_deducted, net_pay, observations, generated_at
	`

	var rec payroll.PayrollRecord
	var detailsBytes []byte
	err = q.QueryRow(ctx, query,
		record.EmployeeID, record.PeriodDate, detailsJSON,
		record.TotalAccrued, record.TotalDeducted, record.NetPay, record.Observations,
	).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodDate, &detailsBytes,
		&rec.TotalAccrued, &rec.TotalDeducted, &rec.NetPay, &rec.Observations, &rec.GeneratedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	if err := json.Unmarshal(detailsBytes, &rec.Lines); err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to decode payslip lines: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.period_date, pr.details,
			   pr.total_accrued, pr.total_deducted, pr.net_pay, pr.observations, pr.generated_at,
			   e.first_name || ' ' || e.last_name AS employee_name, e.doc_number
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.id = $1
	`

	var rec payroll.PayrollRecord
	var detailsBytes []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodDate, &detailsBytes,
		&rec.TotalAccrued, &rec.TotalDeducted, &rec.NetPay, &rec.Observations, &rec.GeneratedAt,
		&rec.EmployeeName, &rec.EmployeeDoc,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	if err := json.Unmarshal(detailsBytes, &rec.Lines); err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to decode payslip lines: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, periodDate time.Time) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period_date, details,
			   total_accrued, total_deducted, net_pay, observations, generated_at
		FROM payroll_records
		WHERE employee_id = $1 AND period_date = $2::date
	`

	var rec payroll.PayrollRecord
	var detailsBytes []byte
	err := q.QueryRow(ctx, query, employeeID, periodDate).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodDate, &detailsBytes,
		&rec.TotalAccrued, &rec.TotalDeducted, &rec.NetPay, &rec.Observations, &rec.GeneratedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	if err := json.Unmarshal(detailsBytes, &rec.Lines); err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to decode payslip lines: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 10
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT pr.id, pr.employee_id, pr.period_date, pr.details,
			   pr.total_accrued, pr.total_deducted, pr.net_pay, pr.observations, pr.generated_at,
			   e.first_name || ' ' || e.last_name AS employee_name, e.doc_number
		%s
		ORDER BY pr.generated_at DESC, pr.period_date DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		var detailsBytes []byte
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.PeriodDate, &detailsBytes,
			&rec.TotalAccrued, &rec.TotalDeducted, &rec.NetPay, &rec.Observations, &rec.GeneratedAt,
			&rec.EmployeeName, &rec.EmployeeDoc,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		if err := json.Unmarshal(detailsBytes, &rec.Lines); err != nil {
			return nil, 0, fmt.Errorf("failed to decode payslip lines: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_records WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollRecordNotFound
		}
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}

	return nil
}
