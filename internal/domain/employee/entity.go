package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	DocType     string
	DocNumber   string
	FirstName   string
	LastName    string
	Phone       *string
	Position    *string
	HireDate    time.Time
	BaseSalary  decimal.Decimal
	BankName    *string
	BankAccount *string
	Status      Status
	UserID      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type DocType string

const (
	DocTypeCC       DocType = "CC" // citizenship card
	DocTypeCE       DocType = "CE" // foreigner card
	DocTypePassport DocType = "PA"
)

func ValidDocType(s string) bool {
	switch DocType(s) {
	case DocTypeCC, DocTypeCE, DocTypePassport:
		return true
	}
	return false
}
