package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo/suweldo-backend-go/internal/domain/statutory"
)

// RecomputeYTD accumulates the year-to-date tax basis from an employee's
// released payslips, oldest first.
//
// Gross and withheld tax are summed exactly as stored: they are settled
// history. Taxable income is re-derived per slip under the employee's
// CURRENT tax policy and statutory override, so flipping TaxOnFullEarnings
// or declaring an override mid-year restates the whole year's basis on the
// next run instead of splicing two regimes together.
func RecomputeYTD(slips []payroll.Payslip, profile payroll.WageProfile, rules statutory.Ruleset) payroll.YTD {
	var ytd payroll.YTD
	ytd.GrossPay = decimal.Zero
	ytd.TaxableIncome = decimal.Zero
	ytd.TaxWithheld = decimal.Zero

	for _, slip := range slips {
		ytd.GrossPay = ytd.GrossPay.Add(slip.GrossPay)
		ytd.TaxWithheld = ytd.TaxWithheld.Add(slip.WithholdingTax)

		eeShare := slip.StatutoryEmployeeShare()
		if profile.StatutoryOverride != nil {
			eeShare = overrideEmployeeShare(*profile.StatutoryOverride, slip.ProfileSnapshot.PayFrequency, rules)
		}

		var taxable decimal.Decimal
		if profile.TaxOnFullEarnings {
			taxable = slip.GrossPay.Sub(eeShare)
		} else {
			taxable = slip.BasicPay.Sub(slip.LateUndertimeDeduction).Sub(eeShare)
		}
		if taxable.Sign() < 0 {
			taxable = decimal.Zero
		}
		ytd.TaxableIncome = ytd.TaxableIncome.Add(taxable)
	}

	return ytd
}

// overrideEmployeeShare is the per-period employee contribution implied by
// a declared monthly wage, under the historical slip's pay frequency.
func overrideEmployeeShare(monthlyBase decimal.Decimal, freq payroll.PayFrequency, rules statutory.Ruleset) decimal.Decimal {
	ppm := payroll.PeriodsPerMonth(freq)

	sssEE, _ := rules.SSS.Shares(monthlyBase)
	phEE, _ := rules.PhilHealth.Shares(monthlyBase)
	piEE, _ := rules.PagIbig.Shares(monthlyBase)

	total := decimal.Zero
	for _, monthly := range []decimal.Decimal{sssEE, phEE, piEE} {
		total = total.Add(monthly.Div(ppm).Round(2))
	}
	return total
}
