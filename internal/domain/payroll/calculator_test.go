package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorCompute(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	t.Run("salary below threshold gets the transport subsidy", func(t *testing.T) {
		payslip, err := calc.Compute(decimal.NewFromInt(1_000_000), TransportSubsidyAuto)
		require.NoError(t, err)

		require.Len(t, payslip.Lines, 4)
		assert.Equal(t, ConceptBaseSalary, payslip.Lines[0].Concept)
		assert.Equal(t, ConceptTransportSubsidy, payslip.Lines[1].Concept)
		assert.Equal(t, ConceptHealth, payslip.Lines[2].Concept)
		assert.Equal(t, ConceptPension, payslip.Lines[3].Concept)

		assert.True(t, payslip.TotalAccrued.Equal(decimal.NewFromInt(1_162_000)), "total accrued = %s", payslip.TotalAccrued)
		assert.True(t, payslip.TotalDeducted.Equal(decimal.NewFromInt(80_000)), "total deducted = %s", payslip.TotalDeducted)
		assert.True(t, payslip.NetPay.Equal(decimal.NewFromInt(1_082_000)), "net pay = %s", payslip.NetPay)
	})

	t.Run("salary above threshold gets no subsidy", func(t *testing.T) {
		payslip, err := calc.Compute(decimal.NewFromInt(3_000_000), TransportSubsidyAuto)
		require.NoError(t, err)

		require.Len(t, payslip.Lines, 3)
		assert.Equal(t, ConceptBaseSalary, payslip.Lines[0].Concept)
		assert.Equal(t, ConceptHealth, payslip.Lines[1].Concept)
		assert.Equal(t, ConceptPension, payslip.Lines[2].Concept)

		assert.True(t, payslip.TotalAccrued.Equal(decimal.NewFromInt(3_000_000)), "total accrued = %s", payslip.TotalAccrued)
		assert.True(t, payslip.TotalDeducted.Equal(decimal.NewFromInt(240_000)), "total deducted = %s", payslip.TotalDeducted)
		assert.True(t, payslip.NetPay.Equal(decimal.NewFromInt(2_760_000)), "net pay = %s", payslip.NetPay)
	})

	t.Run("salary exactly at two minimum wages gets no subsidy", func(t *testing.T) {
		threshold := DefaultRates().TransportSubsidyThreshold()

		payslip, err := calc.Compute(threshold, TransportSubsidyAuto)
		require.NoError(t, err)

		for _, line := range payslip.Lines {
			assert.NotEqual(t, ConceptTransportSubsidy, line.Concept)
		}
	})

	t.Run("salary one peso below the threshold gets the subsidy", func(t *testing.T) {
		oneBelow := DefaultRates().TransportSubsidyThreshold().Sub(decimal.NewFromInt(1))

		payslip, err := calc.Compute(oneBelow, TransportSubsidyAuto)
		require.NoError(t, err)
		require.Len(t, payslip.Lines, 4)
		assert.Equal(t, ConceptTransportSubsidy, payslip.Lines[1].Concept)
	})

	t.Run("forced on adds the subsidy above the threshold", func(t *testing.T) {
		payslip, err := calc.Compute(decimal.NewFromInt(5_000_000), TransportSubsidyOn)
		require.NoError(t, err)
		require.Len(t, payslip.Lines, 4)
		assert.Equal(t, ConceptTransportSubsidy, payslip.Lines[1].Concept)
	})

	t.Run("forced off removes the subsidy below the threshold", func(t *testing.T) {
		payslip, err := calc.Compute(decimal.NewFromInt(1_000_000), TransportSubsidyOff)
		require.NoError(t, err)
		require.Len(t, payslip.Lines, 3)
		for _, line := range payslip.Lines {
			assert.NotEqual(t, ConceptTransportSubsidy, line.Concept)
		}
	})

	t.Run("totals always derive from the lines", func(t *testing.T) {
		salaries := []int64{1, 500_000, 1_299_999, 1_300_000, 2_599_999, 2_600_000, 10_000_000}

		for _, salary := range salaries {
			payslip, err := calc.Compute(decimal.NewFromInt(salary), TransportSubsidyAuto)
			require.NoError(t, err)

			accrued := decimal.Zero
			deducted := decimal.Zero
			for _, line := range payslip.Lines {
				accrued = accrued.Add(line.Accrued)
				deducted = deducted.Add(line.Deducted)
			}
			assert.True(t, payslip.TotalAccrued.Equal(accrued), "salary %d", salary)
			assert.True(t, payslip.TotalDeducted.Equal(deducted), "salary %d", salary)
			assert.True(t, payslip.NetPay.Equal(accrued.Sub(deducted)), "salary %d", salary)
		}
	})

	t.Run("deductions are eight percent of base salary", func(t *testing.T) {
		salary := decimal.NewFromInt(2_000_000)
		payslip, err := calc.Compute(salary, TransportSubsidyAuto)
		require.NoError(t, err)

		expected := salary.Mul(decimal.NewFromFloat(0.08))
		assert.True(t, payslip.TotalDeducted.Equal(expected), "total deducted = %s", payslip.TotalDeducted)
	})

	t.Run("each line accrues or deducts, never both", func(t *testing.T) {
		payslip, err := calc.Compute(decimal.NewFromInt(1_000_000), TransportSubsidyAuto)
		require.NoError(t, err)

		for _, line := range payslip.Lines {
			assert.True(t, line.Accrued.IsZero() || line.Deducted.IsZero(), "line %s", line.Concept)
			assert.False(t, line.Accrued.IsZero() && line.Deducted.IsZero(), "line %s", line.Concept)
		}
	})

	t.Run("rejects zero and negative salaries", func(t *testing.T) {
		_, err := calc.Compute(decimal.Zero, TransportSubsidyAuto)
		assert.ErrorIs(t, err, ErrInvalidBaseSalary)

		_, err = calc.Compute(decimal.NewFromInt(-100), TransportSubsidyAuto)
		assert.ErrorIs(t, err, ErrInvalidBaseSalary)
	})

	t.Run("custom rates flow through the computation", func(t *testing.T) {
		custom := NewCalculator(Rates{
			MinimumWage:            decimal.NewFromInt(1_000_000),
			HealthRate:             decimal.NewFromFloat(0.05),
			PensionRate:            decimal.NewFromFloat(0.05),
			TransportSubsidyAmount: decimal.NewFromInt(100_000),
		})

		payslip, err := custom.Compute(decimal.NewFromInt(1_500_000), TransportSubsidyAuto)
		require.NoError(t, err)

		require.Len(t, payslip.Lines, 4)
		assert.True(t, payslip.Lines[1].Accrued.Equal(decimal.NewFromInt(100_000)))
		assert.True(t, payslip.TotalDeducted.Equal(decimal.NewFromInt(150_000)), "total deducted = %s", payslip.TotalDeducted)
	})
}

func TestSubsidyModeFromFlag(t *testing.T) {
	on := true
	off := false

	req := GeneratePayrollRequest{}
	assert.Equal(t, TransportSubsidyAuto, req.SubsidyMode())

	req.ApplyTransportSubsidy = &on
	assert.Equal(t, TransportSubsidyOn, req.SubsidyMode())

	req.ApplyTransportSubsidy = &off
	assert.Equal(t, TransportSubsidyOff, req.SubsidyMode())
}
