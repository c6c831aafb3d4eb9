package payroll

import (
	"time"

	"github.com/nomina-hr/nomina-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== GENERATION DTOs ==========

type GeneratePayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	PeriodDate string `json:"period_date"` // YYYY-MM-DD
	// nil means "decide by threshold"; true/false force the subsidy on/off.
	ApplyTransportSubsidy *bool   `json:"apply_transport_subsidy,omitempty"`
	Observations          *string `json:"observations,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.PeriodDate) {
		errs = append(errs, validator.ValidationError{Field: "period_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.PeriodDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *GeneratePayrollRequest) SubsidyMode() TransportSubsidyMode {
	return subsidyModeFromFlag(r.ApplyTransportSubsidy)
}

type GenerateBulkPayrollRequest struct {
	PeriodDate            string `json:"period_date"` // YYYY-MM-DD
	ApplyTransportSubsidy *bool  `json:"apply_transport_subsidy,omitempty"`
}

func (r *GenerateBulkPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodDate) {
		errs = append(errs, validator.ValidationError{Field: "period_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.PeriodDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *GenerateBulkPayrollRequest) SubsidyMode() TransportSubsidyMode {
	return subsidyModeFromFlag(r.ApplyTransportSubsidy)
}

func subsidyModeFromFlag(flag *bool) TransportSubsidyMode {
	switch {
	case flag == nil:
		return TransportSubsidyAuto
	case *flag:
		return TransportSubsidyOn
	default:
		return TransportSubsidyOff
	}
}

// ========== RECORD DTOs ==========

type PayslipLineResponse struct {
	Concept   string          `json:"concept"`
	Quantity  int             `json:"quantity"`
	UnitValue decimal.Decimal `json:"unit_value"`
	Accrued   decimal.Decimal `json:"accrued"`
	Deducted  decimal.Decimal `json:"deducted"`
}

type PayrollRecordResponse struct {
	ID            string                `json:"id"`
	EmployeeID    string                `json:"employee_id"`
	EmployeeName  *string               `json:"employee_name,omitempty"`
	EmployeeDoc   *string               `json:"employee_doc,omitempty"`
	PeriodDate    string                `json:"period_date"`
	Lines         []PayslipLineResponse `json:"lines"`
	TotalAccrued  decimal.Decimal       `json:"total_accrued"`
	TotalDeducted decimal.Decimal       `json:"total_deducted"`
	NetPay        decimal.Decimal       `json:"net_pay"`
	Observations  *string               `json:"observations,omitempty"`
	GeneratedAt   string                `json:"generated_at"`
}

type PayrollFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

type ListPayrollRecordResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

// ========== BULK GENERATION DTOs ==========

type BulkPayrollSuccess struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	RecordID     string `json:"record_id"`
}

type BulkPayrollFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

// BulkPayrollResponse summarizes a best-effort batch run. Partial success is
// the expected common case, not an error.
type BulkPayrollResponse struct {
	Total     int                  `json:"total"`
	Successes []BulkPayrollSuccess `json:"successes"`
	Failures  []BulkPayrollFailure `json:"failures"`
}

func MapToRecordResponse(r PayrollRecord) PayrollRecordResponse {
	lines := make([]PayslipLineResponse, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, PayslipLineResponse{
			Concept:   line.Concept,
			Quantity:  line.Quantity,
			UnitValue: line.UnitValue,
			Accrued:   line.Accrued,
			Deducted:  line.Deducted,
		})
	}

	return PayrollRecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		EmployeeDoc:   r.EmployeeDoc,
		PeriodDate:    r.PeriodDate.Format("2006-01-02"),
		Lines:         lines,
		TotalAccrued:  r.TotalAccrued,
		TotalDeducted: r.TotalDeducted,
		NetPay:        r.NetPay,
		Observations:  r.Observations,
		GeneratedAt:   r.GeneratedAt.Format(time.RFC3339),
	}
}
