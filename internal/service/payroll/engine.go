package payroll

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
	"github.com/suweldo/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo/suweldo-backend-go/internal/domain/statutory"
	"github.com/suweldo/suweldo-backend-go/internal/service/timekeeping"
)

// Engine turns one employee's period inputs into a payslip. It is pure:
// no I/O, no clock reads, no randomness besides line identifiers, so the
// same inputs always produce the same amounts.
type Engine struct {
	rules statutory.Ruleset
}

func NewEngine(rules statutory.Ruleset) *Engine {
	return &Engine{rules: rules}
}

// lineBuilder accumulates payslip lines in emission order.
type lineBuilder struct {
	lines []payroll.PayslipLine
	next  int
}

func (b *lineBuilder) add(code payroll.LineCode, kind payroll.LineKind, desc string, qty, rate, mult, amount decimal.Decimal, sourceRef *string) {
	b.lines = append(b.lines, payroll.PayslipLine{
		ID:          uuid.New().String(),
		Code:        code,
		Kind:        kind,
		Description: desc,
		Quantity:    qty,
		Rate:        rate,
		Multiplier:  mult,
		Amount:      amount,
		SourceRef:   sourceRef,
		SortOrder:   b.next,
	})
	b.next++
}

var (
	one = decimal.NewFromInt(1)
)

// ComputePayslip computes one employee's payslip for the run. The returned
// payslip is complete and internally consistent; persisting it is the
// caller's job.
func (e *Engine) ComputePayslip(run payroll.PayrollRun, in payroll.EmployeeInput, events map[string]holiday.CalendarEvent) (payroll.Payslip, error) {
	if in.Profile == nil {
		return payroll.Payslip{}, fmt.Errorf("employee %s: %w", in.Employee.ID, payroll.ErrWageProfileNotFound)
	}
	profile := *in.Profile
	switch profile.WageType {
	case payroll.WageTypeMonthly, payroll.WageTypeDaily, payroll.WageTypeHourly:
	default:
		return payroll.Payslip{}, fmt.Errorf("employee %s: %w: %q", in.Employee.ID, payroll.ErrInvalidWageType, profile.WageType)
	}

	ppm := payroll.PeriodsPerMonth(run.Frequency)
	dailyRate := profile.DailyRate()
	minuteRate := profile.MinuteRate()
	restSet := in.Employee.RestDaySet()

	days := append([]attendance.AttendanceDay(nil), in.Days...)
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	var (
		dayLines       []payroll.PayslipLine
		lateUTMinutes  int
		absentDays     int
		qualifyingDays int
		paidMinutes    int
	)

	dayBuilder := &lineBuilder{}
	for _, day := range days {
		metrics := timekeeping.ComputeDayMetrics(day)
		res := timekeeping.ResolveDayType(day.Date, restSet, events, e.rules)
		effType, multiplier, holidayName := e.effectiveDayType(day, res)
		worked := metrics.WorkedMinutes > 0

		switch effType {
		case attendance.DayTypeWorkday, attendance.DayTypeSpecialWorking:
			if worked {
				qualifyingDays++
				paidMinutes += metrics.WorkedMinutes
				lateUTMinutes += metrics.LateMinutes + metrics.UndertimeMinutes

				otMinutes := metrics.OvertimeEarlyInMinutes + metrics.OvertimeLateOutMinutes
				if profile.OvertimeEligible && otMinutes > 0 {
					qty := decimal.NewFromInt(int64(otMinutes))
					amount := minuteRate.Mul(qty).Mul(e.rules.OvertimeMultiplier).Round(2)
					dayBuilder.add(payroll.LineOvertimeRegular, payroll.KindEarning,
						"Overtime "+day.Date.Format("Jan 2"),
						qty, minuteRate, e.rules.OvertimeMultiplier, amount, nil)
				}
			} else if day.LeaveID != nil && day.LeaveIsPaid {
				qualifyingDays++
				paidMinutes += profile.HoursPerDay * 60
			} else {
				absentDays++
			}

		case attendance.DayTypeRestDay:
			if worked {
				qty := decimal.NewFromInt(int64(metrics.WorkedMinutes))
				amount := minuteRate.Mul(qty).Mul(multiplier).Round(2)
				dayBuilder.add(payroll.LineOvertimeRestDay, payroll.KindEarning,
					"Rest day work "+day.Date.Format("Jan 2"),
					qty, minuteRate, multiplier, amount, nil)
			}

		case attendance.DayTypeRegularHoliday, attendance.DayTypeSpecialHoliday:
			desc := "Holiday work " + day.Date.Format("Jan 2")
			if holidayName != nil {
				desc = "Holiday work: " + *holidayName
			}
			if worked {
				qty := decimal.NewFromInt(int64(metrics.WorkedMinutes))
				amount := minuteRate.Mul(qty).Mul(multiplier).Round(2)
				dayBuilder.add(payroll.LineOvertimeHoliday, payroll.KindEarning,
					desc, qty, minuteRate, multiplier, amount, nil)

				// Holiday falling on the employee's rest day stacks an
				// additional 30% of the worked time.
				if day.DayType == attendance.DayTypeRestDay {
					extra := e.rules.RestDayMultiplier.Sub(one)
					amount := minuteRate.Mul(qty).Mul(extra).Round(2)
					dayBuilder.add(payroll.LineRestDayPay, payroll.KindEarning,
						"Rest day holiday premium "+day.Date.Format("Jan 2"),
						qty, minuteRate, extra, amount, nil)
				}
			} else if effType == attendance.DayTypeRegularHoliday && in.Employee.IsRegularAsOf(day.Date) {
				// Unworked regular holidays are paid a full day once the
				// employee has regularized; before that the day is simply
				// unpaid. Either way it never counts as an absence.
				payDesc := "Holiday pay " + day.Date.Format("Jan 2")
				if holidayName != nil {
					payDesc = "Holiday pay: " + *holidayName
				}
				dayBuilder.add(payroll.LineHolidayPay, payroll.KindEarning,
					payDesc, one, dailyRate, one, dailyRate.Round(2), nil)
			}
		}

		if worked && profile.NightDiffEligible && metrics.NightDiffMinutes > 0 {
			qty := decimal.NewFromInt(int64(metrics.NightDiffMinutes))
			amount := minuteRate.Mul(qty).Mul(e.rules.NightDiffRate).Round(2)
			dayBuilder.add(payroll.LineNightDiff, payroll.KindEarning,
				"Night differential "+day.Date.Format("Jan 2"),
				qty, minuteRate, e.rules.NightDiffRate, amount, nil)
		}
	}
	dayLines = dayBuilder.lines

	b := &lineBuilder{}

	// Basic pay.
	var basicPay decimal.Decimal
	switch profile.WageType {
	case payroll.WageTypeMonthly:
		basicPay = profile.MonthlyRate().Div(ppm).Round(2)
		b.add(payroll.LineBasicPay, payroll.KindEarning, "Basic pay",
			one, basicPay, one, basicPay, nil)
	case payroll.WageTypeDaily:
		qty := decimal.NewFromInt(int64(qualifyingDays))
		basicPay = profile.BaseRate.Mul(qty).Round(2)
		b.add(payroll.LineBasicPay, payroll.KindEarning, "Basic pay",
			qty, profile.BaseRate, one, basicPay, nil)
	case payroll.WageTypeHourly:
		hours := decimal.NewFromInt(int64(paidMinutes)).Div(decimal.NewFromInt(60))
		basicPay = profile.BaseRate.Mul(hours).Round(2)
		b.add(payroll.LineBasicPay, payroll.KindEarning, "Basic pay",
			hours.Round(2), profile.BaseRate, one, basicPay, nil)
	}

	// Day-derived premium lines follow basic pay in date order.
	for _, line := range dayLines {
		b.add(line.Code, line.Kind, line.Description,
			line.Quantity, line.Rate, line.Multiplier, line.Amount, line.SourceRef)
	}

	gross := basicPay
	for _, line := range dayLines {
		gross = gross.Add(line.Amount)
	}

	// Allowances. Amounts are monthly; prorate over the pay frequency.
	// Non-taxable allowances raise take-home pay without entering the
	// statutory gross.
	nonStatutory := decimal.Zero
	for _, allowance := range profile.Allowances {
		perPeriod := allowance.Amount.Div(ppm).Round(2)
		b.add(payroll.LineAllowance, payroll.KindEarning, "Allowance: "+allowance.Name,
			one, perPeriod, one, perPeriod, nil)
		if allowance.Taxable {
			gross = gross.Add(perPeriod)
		} else {
			nonStatutory = nonStatutory.Add(perPeriod)
		}
	}

	// Manual adjustments. Earnings are net-only: they never enter the
	// statutory gross or the tax basis.
	adjustments := append([]payroll.ManualAdjustment(nil), in.Adjustments...)
	sort.Slice(adjustments, func(i, j int) bool { return adjustments[i].ID < adjustments[j].ID })

	deductions := decimal.Zero
	for _, adj := range adjustments {
		if adj.Kind != payroll.AdjustmentEarning {
			continue
		}
		ref := adj.ID
		b.add(payroll.LineAdjustment, payroll.KindEarning, adj.Description,
			one, adj.Amount, one, adj.Amount.Round(2), &ref)
		nonStatutory = nonStatutory.Add(adj.Amount.Round(2))
	}

	// Late/undertime and absences.
	lateUT := decimal.Zero
	if lateUTMinutes > 0 && profile.WageType != payroll.WageTypeHourly {
		qty := decimal.NewFromInt(int64(lateUTMinutes))
		lateUT = minuteRate.Mul(qty).Round(2)
		b.add(payroll.LineLateUndertime, payroll.KindDeduction, "Late / undertime",
			qty, minuteRate, one, lateUT, nil)
		deductions = deductions.Add(lateUT)
	}
	if absentDays > 0 && profile.WageType == payroll.WageTypeMonthly {
		qty := decimal.NewFromInt(int64(absentDays))
		amount := dailyRate.Mul(qty).Round(2)
		b.add(payroll.LineAbsent, payroll.KindDeduction, "Absences",
			qty, dailyRate, one, amount, nil)
		deductions = deductions.Add(amount)
	}

	// Statutory contributions. Tables are monthly; each share is prorated
	// over the pay frequency and rounded per fund.
	slip := payroll.Payslip{
		ID:         uuid.New().String(),
		RunID:      run.ID,
		EmployeeID: in.Employee.ID,
	}
	if profile.BenefitsEligible {
		base := profile.StatutoryBase()

		sssEE, sssER := e.rules.SSS.Shares(base)
		phEE, phER := e.rules.PhilHealth.Shares(base)
		piEE, piER := e.rules.PagIbig.Shares(base)

		slip.SSSEmployee = sssEE.Div(ppm).Round(2)
		slip.SSSEmployer = sssER.Div(ppm).Round(2)
		slip.PhilHealthEmployee = phEE.Div(ppm).Round(2)
		slip.PhilHealthEmployer = phER.Div(ppm).Round(2)
		slip.PagIbigEmployee = piEE.Div(ppm).Round(2)
		slip.PagIbigEmployer = piER.Div(ppm).Round(2)

		b.add(payroll.LineSSSEmployee, payroll.KindDeduction, "SSS contribution",
			one, slip.SSSEmployee, one, slip.SSSEmployee, nil)
		b.add(payroll.LinePhilHealthEE, payroll.KindDeduction, "PhilHealth contribution",
			one, slip.PhilHealthEmployee, one, slip.PhilHealthEmployee, nil)
		b.add(payroll.LinePagIbigEE, payroll.KindDeduction, "Pag-IBIG contribution",
			one, slip.PagIbigEmployee, one, slip.PagIbigEmployee, nil)

		deductions = deductions.Add(slip.SSSEmployee).
			Add(slip.PhilHealthEmployee).
			Add(slip.PagIbigEmployee)
	} else {
		slip.SSSEmployee = decimal.Zero
		slip.SSSEmployer = decimal.Zero
		slip.PhilHealthEmployee = decimal.Zero
		slip.PhilHealthEmployer = decimal.Zero
		slip.PagIbigEmployee = decimal.Zero
		slip.PagIbigEmployer = decimal.Zero
	}

	// Withholding tax.
	eeShare := slip.StatutoryEmployeeShare()
	var taxable decimal.Decimal
	if profile.TaxOnFullEarnings {
		taxable = gross.Sub(eeShare)
	} else {
		taxable = basicPay.Sub(lateUT).Sub(eeShare)
	}
	if taxable.Sign() < 0 {
		taxable = decimal.Zero
	}
	tax := e.rules.Tax.PeriodTax(taxable, ppm)
	if tax.Sign() > 0 {
		b.add(payroll.LineWithholding, payroll.KindDeduction, "Withholding tax",
			one, tax, one, tax, nil)
		deductions = deductions.Add(tax)
	}

	// Penalty installments, one line per due installment.
	installments := append([]payroll.PenaltyInstallment(nil), in.Installments...)
	sort.Slice(installments, func(i, j int) bool {
		if installments[i].PenaltyID != installments[j].PenaltyID {
			return installments[i].PenaltyID < installments[j].PenaltyID
		}
		return installments[i].InstallmentNumber < installments[j].InstallmentNumber
	})
	for _, inst := range installments {
		ref := inst.ID
		b.add(payroll.LinePenalty, payroll.KindDeduction, inst.PenaltyDescription,
			one, inst.Amount, one, inst.Amount, &ref)
		deductions = deductions.Add(inst.Amount)
	}

	// Deduction adjustments.
	for _, adj := range adjustments {
		if adj.Kind != payroll.AdjustmentDeduction {
			continue
		}
		ref := adj.ID
		b.add(payroll.LineAdjustment, payroll.KindDeduction, adj.Description,
			one, adj.Amount, one, adj.Amount.Round(2), &ref)
		deductions = deductions.Add(adj.Amount.Round(2))
	}

	// Employer-side contributions close the slip. They never touch net pay.
	if profile.BenefitsEligible {
		b.add(payroll.LineSSSEmployer, payroll.KindEmployerContribution, "SSS contribution (employer)",
			one, slip.SSSEmployer, one, slip.SSSEmployer, nil)
		b.add(payroll.LinePhilHealthER, payroll.KindEmployerContribution, "PhilHealth contribution (employer)",
			one, slip.PhilHealthEmployer, one, slip.PhilHealthEmployer, nil)
		b.add(payroll.LinePagIbigER, payroll.KindEmployerContribution, "Pag-IBIG contribution (employer)",
			one, slip.PagIbigEmployer, one, slip.PagIbigEmployer, nil)
	}

	for i := range b.lines {
		b.lines[i].PayslipID = slip.ID
	}

	slip.Lines = b.lines
	slip.BasicPay = basicPay
	slip.GrossPay = gross
	slip.NonStatutoryEarnings = nonStatutory
	slip.TotalEarnings = gross.Add(nonStatutory)
	slip.TotalDeductions = deductions
	slip.LateUndertimeDeduction = lateUT
	slip.NetPay = slip.TotalEarnings.Sub(deductions)
	slip.WithholdingTax = tax
	slip.TaxableIncome = taxable
	slip.YTD = payroll.YTD{
		GrossPay:      in.PreviousYTD.GrossPay.Add(gross),
		TaxableIncome: in.PreviousYTD.TaxableIncome.Add(taxable),
		TaxWithheld:   in.PreviousYTD.TaxWithheld.Add(tax),
	}
	slip.ProfileSnapshot = profile
	slip.PeriodStart = run.PeriodStart
	slip.PeriodEnd = run.PeriodEnd
	slip.CreatedAt = time.Now().UTC()

	return slip, nil
}

// effectiveDayType merges the calendar resolution with the stored day type.
// A calendar holiday always wins, since imports routinely stamp plain
// WORKDAY on proclaimed holidays; otherwise the stored type stands, because
// individual rest-day swaps deviate from the default weekly set.
func (e *Engine) effectiveDayType(day attendance.AttendanceDay, res timekeeping.DayTypeResolution) (attendance.DayType, decimal.Decimal, *string) {
	switch res.DayType {
	case attendance.DayTypeRegularHoliday, attendance.DayTypeSpecialHoliday, attendance.DayTypeSpecialWorking:
		return res.DayType, res.Multiplier, res.HolidayName
	}

	switch day.DayType {
	case attendance.DayTypeRestDay:
		return day.DayType, e.rules.RestDayMultiplier, nil
	case attendance.DayTypeRegularHoliday:
		return day.DayType, e.rules.RegularHolidayMultiplier, nil
	case attendance.DayTypeSpecialHoliday:
		return day.DayType, e.rules.SpecialHolidayMultiplier, nil
	case attendance.DayTypeSpecialWorking:
		return day.DayType, one, nil
	default:
		return attendance.DayTypeWorkday, one, nil
	}
}
