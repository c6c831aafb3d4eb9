package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line concepts emitted by the calculator, in output order.
const (
	ConceptBaseSalary       = "Base Salary"
	ConceptTransportSubsidy = "Transport Subsidy"
	ConceptHealth           = "Health Contribution"
	ConceptPension          = "Pension Contribution"
)

// TransportSubsidyMode controls whether the transport subsidy line is
// emitted. Auto applies the statutory threshold rule; On and Off force the
// line regardless of salary.
type TransportSubsidyMode int

const (
	TransportSubsidyAuto TransportSubsidyMode = iota
	TransportSubsidyOn
	TransportSubsidyOff
)

// PayslipLine is a single payslip concept. Exactly one of Accrued/Deducted
// is non-zero: a line either adds to gross pay or subtracts from it.
// The JSON tags define the persisted shape of the jsonb details column, so
// stored records round-trip field-for-field in original order.
type PayslipLine struct {
	Concept   string          `json:"concept"`
	Quantity  int             `json:"quantity"`
	UnitValue decimal.Decimal `json:"unit_value"`
	Accrued   decimal.Decimal `json:"accrued"`
	Deducted  decimal.Decimal `json:"deducted"`
}

// Payslip is the result of one calculator run: the ordered lines plus totals
// derived from them. NetPay is never set independently of the lines.
type Payslip struct {
	Lines         []PayslipLine
	TotalAccrued  decimal.Decimal
	TotalDeducted decimal.Decimal
	NetPay        decimal.Decimal
}

// PayrollRecord - persisted outcome of generating payroll for one employee
// and one pay period. Created only by the generation service, immutable
// afterwards except for deletion.
type PayrollRecord struct {
	ID            string
	EmployeeID    string
	PeriodDate    time.Time
	Lines         []PayslipLine
	TotalAccrued  decimal.Decimal
	TotalDeducted decimal.Decimal
	NetPay        decimal.Decimal
	Observations  *string
	GeneratedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeDoc  *string
}
