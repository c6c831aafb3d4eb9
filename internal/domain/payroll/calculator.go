package payroll

import "github.com/shopspring/decimal"

// Rates holds the statutory figures the calculator applies. They are fixed
// policy, not tenant configuration, but live in a value so tests can
// exercise rate changes without touching the algorithm.
type Rates struct {
	MinimumWage            decimal.Decimal
	HealthRate             decimal.Decimal
	PensionRate            decimal.Decimal
	TransportSubsidyAmount decimal.Decimal
}

// TransportSubsidyThreshold is two monthly minimum wages; salaries at or
// above it do not receive the subsidy by default.
func (r Rates) TransportSubsidyThreshold() decimal.Decimal {
	return r.MinimumWage.Mul(decimal.NewFromInt(2))
}

// DefaultRates returns the current statutory set: monthly minimum wage
// 1,300,000, 4% health, 4% pension, 162,000 flat transport subsidy.
func DefaultRates() Rates {
	return Rates{
		MinimumWage:            decimal.NewFromInt(1_300_000),
		HealthRate:             decimal.NewFromFloat(0.04),
		PensionRate:            decimal.NewFromFloat(0.04),
		TransportSubsidyAmount: decimal.NewFromInt(162_000),
	}
}

// Calculator turns a base salary into an itemized payslip. It is a pure
// transform: no I/O, no state, safe for concurrent use.
type Calculator struct {
	rates Rates
}

func NewCalculator(rates Rates) Calculator {
	return Calculator{rates: rates}
}

// Compute builds the payslip lines in fixed order: base salary accrual,
// optional transport subsidy accrual, health deduction, pension deduction.
// Callers must pass a positive base salary; anything else fails with
// ErrInvalidBaseSalary.
func (c Calculator) Compute(baseSalary decimal.Decimal, subsidy TransportSubsidyMode) (Payslip, error) {
	if !baseSalary.IsPositive() {
		return Payslip{}, ErrInvalidBaseSalary
	}

	lines := []PayslipLine{{
		Concept:   ConceptBaseSalary,
		Quantity:  1,
		UnitValue: baseSalary,
		Accrued:   baseSalary,
		Deducted:  decimal.Zero,
	}}

	if c.subsidyApplies(baseSalary, subsidy) {
		lines = append(lines, PayslipLine{
			Concept:   ConceptTransportSubsidy,
			Quantity:  1,
			UnitValue: c.rates.TransportSubsidyAmount,
			Accrued:   c.rates.TransportSubsidyAmount,
			Deducted:  decimal.Zero,
		})
	}

	health := baseSalary.Mul(c.rates.HealthRate)
	pension := baseSalary.Mul(c.rates.PensionRate)
	lines = append(lines,
		PayslipLine{Concept: ConceptHealth, Quantity: 1, UnitValue: health, Accrued: decimal.Zero, Deducted: health},
		PayslipLine{Concept: ConceptPension, Quantity: 1, UnitValue: pension, Accrued: decimal.Zero, Deducted: pension},
	)

	return buildPayslip(lines), nil
}

func (c Calculator) subsidyApplies(baseSalary decimal.Decimal, mode TransportSubsidyMode) bool {
	switch mode {
	case TransportSubsidyOn:
		return true
	case TransportSubsidyOff:
		return false
	default:
		// Strictly below two minimum wages.
		return baseSalary.LessThan(c.rates.TransportSubsidyThreshold())
	}
}

// buildPayslip derives the totals from the lines.
func buildPayslip(lines []PayslipLine) Payslip {
	totalAccrued := decimal.Zero
	totalDeducted := decimal.Zero
	for _, line := range lines {
		totalAccrued = totalAccrued.Add(line.Accrued)
		totalDeducted = totalDeducted.Add(line.Deducted)
	}
	return Payslip{
		Lines:         lines,
		TotalAccrued:  totalAccrued,
		TotalDeducted: totalDeducted,
		NetPay:        totalAccrued.Sub(totalDeducted),
	}
}
