package employee

import (
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	DocType     string          `json:"doc_type"`
	DocNumber   string          `json:"doc_number"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Phone       *string         `json:"phone,omitempty"`
	Position    *string         `json:"position,omitempty"`
	HireDate    string          `json:"hire_date"` // YYYY-MM-DD
	BaseSalary  decimal.Decimal `json:"base_salary"`
	BankName    *string         `json:"bank_name,omitempty"`
	BankAccount *string         `json:"bank_account,omitempty"`
	Status      *string         `json:"status,omitempty"` // defaults to active

	// Optional login account created together with the employee.
	CreateUser bool   `json:"create_user,omitempty"`
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DocType) {
		errs = append(errs, validator.ValidationError{Field: "doc_type", Message: "is required"})
	} else if !ValidDocType(r.DocType) {
		errs = append(errs, validator.ValidationError{Field: "doc_type", Message: "must be 'CC', 'CE' or 'PA'"})
	}
	if validator.IsEmpty(r.DocNumber) {
		errs = append(errs, validator.ValidationError{Field: "doc_number", Message: "is required"})
	} else if !validator.IsValidDocNumber(r.DocNumber) {
		errs = append(errs, validator.ValidationError{Field: "doc_number", Message: "must be 5 to 15 digits"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be greater than zero"})
	}
	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}

	if r.CreateUser {
		if validator.IsEmpty(r.Username) {
			errs = append(errs, validator.ValidationError{Field: "username", Message: "is required when creating a user"})
		}
		if !validator.IsValidEmail(r.Email) {
			errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
		}
		if len(r.Password) < 8 {
			errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string
	DocType     *string          `json:"doc_type,omitempty"`
	DocNumber   *string          `json:"doc_number,omitempty"`
	FirstName   *string          `json:"first_name,omitempty"`
	LastName    *string          `json:"last_name,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Position    *string          `json:"position,omitempty"`
	HireDate    *string          `json:"hire_date,omitempty"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	BankName    *string          `json:"bank_name,omitempty"`
	BankAccount *string          `json:"bank_account,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DocType != nil && !ValidDocType(*r.DocType) {
		errs = append(errs, validator.ValidationError{Field: "doc_type", Message: "must be 'CC', 'CE' or 'PA'"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date in YYYY-MM-DD format"})
		}
	}
	if r.BaseSalary != nil && !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be greater than zero"})
	}
	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	DocType     string          `json:"doc_type"`
	DocNumber   string          `json:"doc_number"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Phone       *string         `json:"phone,omitempty"`
	Position    *string         `json:"position,omitempty"`
	HireDate    string          `json:"hire_date"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	BankName    *string         `json:"bank_name,omitempty"`
	BankAccount *string         `json:"bank_account,omitempty"`
	Status      string          `json:"status"`
	UserID      *string         `json:"user_id,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

type EmployeeFilter struct {
	Name      *string `json:"name,omitempty"`
	DocNumber *string `json:"doc_number,omitempty"`
	Status    *string `json:"status,omitempty"`
	Page      int     `json:"page"`
	Limit     int     `json:"limit"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

func MapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		DocType:     e.DocType,
		DocNumber:   e.DocNumber,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Phone:       e.Phone,
		Position:    e.Position,
		HireDate:    e.HireDate.Format("2006-01-02"),
		BaseSalary:  e.BaseSalary,
		BankName:    e.BankName,
		BankAccount: e.BankAccount,
		Status:      string(e.Status),
		UserID:      e.UserID,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
