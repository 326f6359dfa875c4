package statutory

import (
	"github.com/shopspring/decimal"
)

// ContributionBracket is one row of a government fund table. A bracket
// matches when the monthly statutory base falls in [RangeFrom, RangeTo).
// RangeTo of zero marks the open-ended top bracket.
//
// Shares are Fixed + Rate * base, where base is the statutory wage capped
// at RangeTo. SSS rows use only the fixed parts (precomputed from the MSC);
// PhilHealth's middle band uses only the rate parts.
type ContributionBracket struct {
	RangeFrom     decimal.Decimal
	RangeTo       decimal.Decimal
	EmployeeFixed decimal.Decimal
	EmployerFixed decimal.Decimal
	EmployeeRate  decimal.Decimal
	EmployerRate  decimal.Decimal
}

// ContributionTable is a versioned bracket table for one government fund.
type ContributionTable struct {
	Fund     string
	Brackets []ContributionBracket
}

// Shares returns the monthly employee and employer contribution for the
// given monthly statutory base. A base below the first bracket resolves to
// the first bracket; contributions never go negative.
func (t ContributionTable) Shares(monthlyBase decimal.Decimal) (employee, employer decimal.Decimal) {
	if len(t.Brackets) == 0 || monthlyBase.Sign() <= 0 {
		return decimal.Zero, decimal.Zero
	}

	bracket := t.Brackets[0]
	for _, b := range t.Brackets {
		if monthlyBase.LessThan(b.RangeFrom) {
			break
		}
		bracket = b
	}

	base := monthlyBase
	if bracket.RangeTo.Sign() > 0 && base.GreaterThan(bracket.RangeTo) {
		base = bracket.RangeTo
	}

	employee = bracket.EmployeeFixed.Add(bracket.EmployeeRate.Mul(base)).Round(2)
	employer = bracket.EmployerFixed.Add(bracket.EmployerRate.Mul(base)).Round(2)
	return employee, employer
}

// TaxBracket is one row of the progressive monthly withholding table:
// tax = BaseTax + Rate * (taxable - Over) for the highest row whose Over
// the taxable income exceeds.
type TaxBracket struct {
	Over    decimal.Decimal
	BaseTax decimal.Decimal
	Rate    decimal.Decimal
}

// TaxTable is the monthly progressive withholding-tax table.
type TaxTable struct {
	Brackets []TaxBracket
}

// MonthlyTax computes the monthly withholding tax on a monthly taxable
// income. Negative taxable income yields zero tax.
func (t TaxTable) MonthlyTax(monthlyTaxable decimal.Decimal) decimal.Decimal {
	if monthlyTaxable.Sign() <= 0 || len(t.Brackets) == 0 {
		return decimal.Zero
	}

	bracket := t.Brackets[0]
	for _, b := range t.Brackets {
		if monthlyTaxable.LessThan(b.Over) {
			break
		}
		bracket = b
	}

	excess := monthlyTaxable.Sub(bracket.Over)
	if excess.Sign() < 0 {
		excess = decimal.Zero
	}
	return bracket.BaseTax.Add(bracket.Rate.Mul(excess)).Round(2)
}

// PeriodTax prorates the monthly table over the pay frequency: the period
// taxable income is annualized to a monthly figure, taxed, then divided
// back. periodsPerMonth must be positive.
func (t TaxTable) PeriodTax(periodTaxable, periodsPerMonth decimal.Decimal) decimal.Decimal {
	if periodsPerMonth.Sign() <= 0 {
		return decimal.Zero
	}
	monthly := periodTaxable.Mul(periodsPerMonth)
	return t.MonthlyTax(monthly).Div(periodsPerMonth).Round(2)
}

// Ruleset bundles every statutory table and multiplier in force for a
// given year. It is constructed in code, passed explicitly into the
// compute engine, and never mutated at runtime.
type Ruleset struct {
	ID      string
	Version string

	SSS        ContributionTable
	PhilHealth ContributionTable
	PagIbig    ContributionTable
	Tax        TaxTable

	// Premium multipliers. Rest-day and special-holiday work pay 130%,
	// regular-holiday work 200%, unless a calendar event overrides.
	RestDayMultiplier        decimal.Decimal
	RegularHolidayMultiplier decimal.Decimal
	SpecialHolidayMultiplier decimal.Decimal

	// OvertimeMultiplier applies to approved work beyond the schedule on
	// ordinary workdays. NightDiffRate is the premium fraction for work
	// within the 22:00-06:00 window.
	OvertimeMultiplier decimal.Decimal
	NightDiffRate      decimal.Decimal
}
