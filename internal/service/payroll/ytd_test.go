package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo/suweldo-backend-go/internal/domain/statutory"
)

func releasedSlip(gross, basic, lateUT, sss, ph, pagibig, tax string) payroll.Payslip {
	return payroll.Payslip{
		GrossPay:               decimal.RequireFromString(gross),
		BasicPay:               decimal.RequireFromString(basic),
		LateUndertimeDeduction: decimal.RequireFromString(lateUT),
		SSSEmployee:            decimal.RequireFromString(sss),
		PhilHealthEmployee:     decimal.RequireFromString(ph),
		PagIbigEmployee:        decimal.RequireFromString(pagibig),
		WithholdingTax:         decimal.RequireFromString(tax),
		ProfileSnapshot: payroll.WageProfile{
			PayFrequency: payroll.FrequencySemiMonthly,
		},
	}
}

func TestRecomputeYTD_Empty(t *testing.T) {
	t.Parallel()

	ytd := RecomputeYTD(nil, monthlyProfile("20000"), statutory.DefaultRuleset())
	assert.True(t, ytd.GrossPay.IsZero())
	assert.True(t, ytd.TaxableIncome.IsZero())
	assert.True(t, ytd.TaxWithheld.IsZero())
}

func TestRecomputeYTD_BasicPayBasis(t *testing.T) {
	t.Parallel()

	slips := []payroll.Payslip{
		releasedSlip("12000", "10000", "100", "500", "250", "100", "200"),
		releasedSlip("10000", "10000", "0", "500", "250", "100", "150"),
	}

	ytd := RecomputeYTD(slips, monthlyProfile("20000"), statutory.DefaultRuleset())

	assert.Equal(t, "22000", ytd.GrossPay.String())
	assert.Equal(t, "350", ytd.TaxWithheld.String())
	// (10000-100-850) + (10000-0-850)
	assert.Equal(t, "18200", ytd.TaxableIncome.String())
}

func TestRecomputeYTD_FullEarningsPolicyRestatesHistory(t *testing.T) {
	t.Parallel()

	slips := []payroll.Payslip{
		releasedSlip("12000", "10000", "100", "500", "250", "100", "200"),
	}

	profile := monthlyProfile("20000")
	profile.TaxOnFullEarnings = true
	ytd := RecomputeYTD(slips, profile, statutory.DefaultRuleset())

	// Historical slips are re-based on gross, not on what was stored.
	assert.Equal(t, "11150", ytd.TaxableIncome.String())
	assert.Equal(t, "12000", ytd.GrossPay.String())
	assert.Equal(t, "200", ytd.TaxWithheld.String(), "withheld tax is settled history")
}

func TestRecomputeYTD_StatutoryOverrideRestatesShares(t *testing.T) {
	t.Parallel()

	slips := []payroll.Payslip{
		releasedSlip("12000", "10000", "100", "500", "250", "100", "200"),
	}

	profile := monthlyProfile("50000")
	override := decimal.RequireFromString("30000")
	profile.StatutoryOverride = &override

	ytd := RecomputeYTD(slips, profile, statutory.DefaultRuleset())

	// Declared 30,000/mo: SSS 750, PhilHealth 375, Pag-IBIG 100 per
	// semi-monthly period, replacing the 850 stored on the slip.
	// 10000 - 100 - 1225
	assert.Equal(t, "8675", ytd.TaxableIncome.String())
}

func TestRecomputeYTD_TaxableNeverNegative(t *testing.T) {
	t.Parallel()

	slips := []payroll.Payslip{
		releasedSlip("700", "500", "0", "500", "250", "100", "0"),
	}

	ytd := RecomputeYTD(slips, monthlyProfile("20000"), statutory.DefaultRuleset())
	assert.True(t, ytd.TaxableIncome.IsZero())
}
