package statutory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Statutory rates change at most once a year, so the tables ship as code
// and a new ruleset version is a redeploy, not a data migration.

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sssTable2025 generates the SSS bracket table: monthly salary credits from
// 5,000 to 35,000 in 500-peso steps, employee share 5% of the MSC, employer
// share 10% of the MSC plus the employee-compensation premium (PHP 10 below
// an MSC of 15,000, PHP 30 at or above it).
func sssTable2025() ContributionTable {
	step := d("500")
	half := d("250")
	eeRate := d("0.05")
	erRate := d("0.10")

	var brackets []ContributionBracket
	msc := d("5000")
	top := d("35000")
	for msc.LessThanOrEqual(top) {
		from := msc.Sub(half)
		if msc.Equal(d("5000")) {
			from = decimal.Zero
		}
		to := msc.Add(half)
		if msc.Equal(top) {
			to = decimal.Zero // open-ended
		}

		ec := d("10")
		if msc.GreaterThanOrEqual(d("15000")) {
			ec = d("30")
		}

		brackets = append(brackets, ContributionBracket{
			RangeFrom:     from,
			RangeTo:       to,
			EmployeeFixed: msc.Mul(eeRate).Round(2),
			EmployerFixed: msc.Mul(erRate).Add(ec).Round(2),
		})
		msc = msc.Add(step)
	}

	return ContributionTable{Fund: "SSS", Brackets: brackets}
}

// philHealthTable2025: 5% of the monthly basic salary split equally, with a
// 10,000 floor and a 100,000 ceiling.
func philHealthTable2025() ContributionTable {
	return ContributionTable{
		Fund: "PhilHealth",
		Brackets: []ContributionBracket{
			{
				RangeFrom:     decimal.Zero,
				RangeTo:       d("10000"),
				EmployeeFixed: d("250"),
				EmployerFixed: d("250"),
			},
			{
				RangeFrom:    d("10000"),
				RangeTo:      d("100000"),
				EmployeeRate: d("0.025"),
				EmployerRate: d("0.025"),
			},
			{
				RangeFrom:     d("100000"),
				EmployeeFixed: d("2500"),
				EmployerFixed: d("2500"),
			},
		},
	}
}

// pagIbigTable2025: employee 1% below 1,500 monthly, otherwise 2%; employer
// always 2%. The fund salary base is capped at 10,000.
func pagIbigTable2025() ContributionTable {
	return ContributionTable{
		Fund: "Pag-IBIG",
		Brackets: []ContributionBracket{
			{
				RangeFrom:    decimal.Zero,
				RangeTo:      d("1500"),
				EmployeeRate: d("0.01"),
				EmployerRate: d("0.02"),
			},
			{
				RangeFrom:    d("1500"),
				RangeTo:      d("10000"),
				EmployeeRate: d("0.02"),
				EmployerRate: d("0.02"),
			},
			{
				RangeFrom:     d("10000"),
				EmployeeFixed: d("200"),
				EmployerFixed: d("200"),
			},
		},
	}
}

// taxTable2023 is the BIR monthly withholding table effective January 2023.
func taxTable2023() TaxTable {
	return TaxTable{
		Brackets: []TaxBracket{
			{Over: decimal.Zero, BaseTax: decimal.Zero, Rate: decimal.Zero},
			{Over: d("20833"), BaseTax: decimal.Zero, Rate: d("0.15")},
			{Over: d("33333"), BaseTax: d("1875"), Rate: d("0.20")},
			{Over: d("66667"), BaseTax: d("8541.80"), Rate: d("0.25")},
			{Over: d("166667"), BaseTax: d("33541.80"), Rate: d("0.30")},
			{Over: d("666667"), BaseTax: d("183541.80"), Rate: d("0.35")},
		},
	}
}

// DefaultRuleset returns the ruleset currently in force.
func DefaultRuleset() Ruleset {
	return Ruleset{
		ID:         "ph-2025",
		Version:    "2025",
		SSS:        sssTable2025(),
		PhilHealth: philHealthTable2025(),
		PagIbig:    pagIbigTable2025(),
		Tax:        taxTable2023(),

		RestDayMultiplier:        d("1.30"),
		RegularHolidayMultiplier: d("2.00"),
		SpecialHolidayMultiplier: d("1.30"),
		OvertimeMultiplier:       d("1.25"),
		NightDiffRate:            d("0.10"),
	}
}

// RulesetForVersion resolves a configured version string to a compiled-in
// ruleset. Only one version ships today; the lookup exists so a new table
// year can roll out behind configuration.
func RulesetForVersion(version string) (Ruleset, error) {
	switch version {
	case "", "2025":
		return DefaultRuleset(), nil
	default:
		return Ruleset{}, fmt.Errorf("unknown statutory ruleset version: %s", version)
	}
}
