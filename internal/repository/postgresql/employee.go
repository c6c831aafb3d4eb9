package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/nomina-hr/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hr/nomina-backend-go/internal/pkg/database"
)

const employeeColumns = `id, doc_type, doc_number, first_name, last_name, phone, position,
	hire_date, base_salary, bank_name, bank_account, status, user_id, created_at, updated_at`

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (
			doc_type, doc_number, first_name, last_name, phone, position,
			hire_date, base_salary, bank_name, bank_account, status, user_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s
	`, employeeColumns)

	var e employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.DocType, newEmployee.DocNumber, newEmployee.FirstName, newEmployee.LastName,
		newEmployee.Phone, newEmployee.Position, newEmployee.HireDate, newEmployee.BaseSalary,
		newEmployee.BankName, newEmployee.BankAccount, newEmployee.Status, newEmployee.UserID,
	).Scan(
		&e.ID, &e.DocType, &e.DocNumber, &e.FirstName, &e.LastName, &e.Phone, &e.Position,
		&e.HireDate, &e.BaseSalary, &e.BankName, &e.BankAccount, &e.Status, &e.UserID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_doc_number") {
			return employee.Employee{}, employee.ErrDocNumberExists
		}
		if strings.Contains(err.Error(), "uk_employees_user_id") {
			return employee.Employee{}, employee.ErrUserAlreadyLinked
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.DocType, &e.DocNumber, &e.FirstName, &e.LastName, &e.Phone, &e.Position,
		&e.HireDate, &e.BaseSalary, &e.BankName, &e.BankAccount, &e.Status, &e.UserID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE user_id = $1`, employeeColumns)

	var e employee.Employee
	err := q.QueryRow(ctx, query, userID).Scan(
		&e.ID, &e.DocType, &e.DocNumber, &e.FirstName, &e.LastName, &e.Phone, &e.Position,
		&e.HireDate, &e.BaseSalary, &e.BankName, &e.BankAccount, &e.Status, &e.UserID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM employees WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		baseQuery += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.DocNumber != nil && *filter.DocNumber != "" {
		baseQuery += fmt.Sprintf(" AND doc_number = $%d", argIdx)
		args = append(args, *filter.DocNumber)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseQuery += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*)" + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 10
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`SELECT %s%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		employeeColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.DocType, &e.DocNumber, &e.FirstName, &e.LastName, &e.Phone, &e.Position,
			&e.HireDate, &e.BaseSalary, &e.BankName, &e.BankAccount, &e.Status, &e.UserID,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, totalCount, nil
}

// ListActive returns all active employees ordered by last name, used by the
// bulk payroll run. No pagination on purpose: the run must see everyone.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		WHERE status = 'active'
		ORDER BY last_name, first_name
	`, employeeColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.DocType, &e.DocNumber, &e.FirstName, &e.LastName, &e.Phone, &e.Position,
			&e.HireDate, &e.BaseSalary, &e.BankName, &e.BankAccount, &e.Status, &e.UserID,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{}
	args := []interface{}{}
	argIdx := 1

	addSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.DocType != nil {
		addSet("doc_type", *req.DocType)
	}
	if req.DocNumber != nil {
		addSet("doc_number", *req.DocNumber)
	}
	if req.FirstName != nil {
		addSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		addSet("last_name", *req.LastName)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Position != nil {
		addSet("position", *req.Position)
	}
	if req.HireDate != nil {
		addSet("hire_date", *req.HireDate)
	}
	if req.BaseSalary != nil {
		addSet("base_salary", *req.BaseSalary)
	}
	if req.BankName != nil {
		addSet("bank_name", *req.BankName)
	}
	if req.BankAccount != nil {
		addSet("bank_account", *req.BankAccount)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}

	if len(setParts) == 0 {
		return employee.ErrNoFieldsToUpdate
	}

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`UPDATE employees SET %s WHERE id = $%d RETURNING id`,
		strings.Join(setParts, ", "), argIdx)

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		if strings.Contains(err.Error(), "uk_employees_doc_number") {
			return employee.ErrDocNumberExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (r *employeeRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET status = 'inactive', updated_at = NOW() WHERE id = $1 RETURNING id`

	var deactivatedID string
	err := q.QueryRow(ctx, query, id).Scan(&deactivatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return nil
}
