package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
	"github.com/suweldo/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo/suweldo-backend-go/internal/domain/statutory"
)

var manila = time.FixedZone("PST", 8*60*60)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, manila)
	if err != nil {
		t.Fatalf("bad date %s: %v", s, err)
	}
	return d
}

func clock(t *testing.T, day, hm string) *time.Time {
	t.Helper()
	v, err := time.ParseInLocation("2006-01-02 15:04", day+" "+hm, manila)
	if err != nil {
		t.Fatalf("bad time %s %s: %v", day, hm, err)
	}
	return &v
}

func testRun(t *testing.T) payroll.PayrollRun {
	return payroll.PayrollRun{
		ID:          "run-1",
		PeriodStart: date(t, "2025-03-01"),
		PeriodEnd:   date(t, "2025-03-15"),
		Frequency:   payroll.FrequencySemiMonthly,
		Status:      payroll.RunStatusComputing,
	}
}

func regularEmployee(t *testing.T) employee.Employee {
	t.Helper()
	reg := date(t, "2024-06-01")
	return employee.Employee{
		ID:                 "emp-1",
		Status:             employee.StatusRegular,
		RegularizationDate: &reg,
	}
}

func monthlyProfile(rate string) payroll.WageProfile {
	return payroll.WageProfile{
		EmployeeID:       "emp-1",
		WageType:         payroll.WageTypeMonthly,
		BaseRate:         decimal.RequireFromString(rate),
		PayFrequency:     payroll.FrequencySemiMonthly,
		WorkDaysPerMonth: 26,
		HoursPerDay:      8,
		BenefitsEligible: true,
		OvertimeEligible: true,
	}
}

func workedDay(t *testing.T, day string) attendance.AttendanceDay {
	return attendance.AttendanceDay{
		EmployeeID:     "emp-1",
		Date:           date(t, day),
		ClockIn:        clock(t, day, "08:00"),
		ClockOut:       clock(t, day, "17:00"),
		ScheduledStart: *clock(t, day, "08:00"),
		ScheduledEnd:   *clock(t, day, "17:00"),
		BreakMinutes:   60,
		DayType:        attendance.DayTypeWorkday,
	}
}

func scheduledOnly(t *testing.T, day string) attendance.AttendanceDay {
	d := workedDay(t, day)
	d.ClockIn = nil
	d.ClockOut = nil
	return d
}

func findLine(slip payroll.Payslip, code payroll.LineCode) (payroll.PayslipLine, bool) {
	for _, line := range slip.Lines {
		if line.Code == code {
			return line, true
		}
	}
	return payroll.PayslipLine{}, false
}

func assertNetInvariant(t *testing.T, slip payroll.Payslip) {
	t.Helper()
	assert.True(t, slip.NetPay.Equal(slip.TotalEarnings.Sub(slip.TotalDeductions)),
		"net %s != earnings %s - deductions %s", slip.NetPay, slip.TotalEarnings, slip.TotalDeductions)
	assert.True(t, slip.TotalEarnings.Equal(slip.GrossPay.Add(slip.NonStatutoryEarnings)))
}

func TestComputePayslip_MonthlyBaseline(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")
	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days: []attendance.AttendanceDay{
			workedDay(t, "2025-03-03"),
			workedDay(t, "2025-03-04"),
		},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	assert.Equal(t, "10000", slip.BasicPay.String())
	assert.Equal(t, "10000", slip.GrossPay.String())

	sss, ok := findLine(slip, payroll.LineSSSEmployee)
	require.True(t, ok)
	assert.Equal(t, "500", sss.Amount.String())
	ph, ok := findLine(slip, payroll.LinePhilHealthEE)
	require.True(t, ok)
	assert.Equal(t, "250", ph.Amount.String())
	pi, ok := findLine(slip, payroll.LinePagIbigEE)
	require.True(t, ok)
	assert.Equal(t, "100", pi.Amount.String())

	// 9,150 taxable annualizes under the zero-rate threshold.
	assert.True(t, slip.WithholdingTax.IsZero())
	_, hasTax := findLine(slip, payroll.LineWithholding)
	assert.False(t, hasTax)

	sssER, ok := findLine(slip, payroll.LineSSSEmployer)
	require.True(t, ok)
	assert.Equal(t, "1015", sssER.Amount.String())
	assert.Equal(t, payroll.KindEmployerContribution, sssER.Kind)

	assert.Equal(t, "9150", slip.NetPay.String())
	assertNetInvariant(t, slip)
}

func TestComputePayslip_WithholdingTax(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("50000")
	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{workedDay(t, "2025-03-03")},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	// SSS caps at the 35,000 MSC: 1,750/mo. PhilHealth 2.5% of 50,000:
	// 1,250/mo. Pag-IBIG caps at 200/mo. Halved for the semi-monthly period.
	assert.Equal(t, "1600", slip.StatutoryEmployeeShare().String())
	assert.Equal(t, "23400", slip.TaxableIncome.String())
	assert.Equal(t, "2284.2", slip.WithholdingTax.String())
	assertNetInvariant(t, slip)
}

func TestComputePayslip_RestDayWorkPaysFullPremium(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")

	restDay := workedDay(t, "2025-03-09")
	restDay.DayType = attendance.DayTypeRestDay

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1", RestDays: []time.Weekday{time.Sunday}},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{restDay},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	line, ok := findLine(slip, payroll.LineOvertimeRestDay)
	require.True(t, ok, "rest day work must produce a premium line")
	// The whole 480 worked minutes carry the 130% rate, not just the
	// portion beyond eight hours, and no approval flag is required.
	assert.Equal(t, "480", line.Quantity.String())
	assert.Equal(t, "1.3", line.Multiplier.String())
	assert.Equal(t, "1000", line.Amount.String())

	_, hasOT := findLine(slip, payroll.LineOvertimeRegular)
	assert.False(t, hasOT)
	assertNetInvariant(t, slip)
}

func TestComputePayslip_ApprovedOvertime(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")

	day := workedDay(t, "2025-03-03")
	day.ClockOut = clock(t, "2025-03-03", "19:10")
	day.LateOutApproved = true

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{day},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	line, ok := findLine(slip, payroll.LineOvertimeRegular)
	require.True(t, ok)
	assert.Equal(t, "130", line.Quantity.String())
	assert.Equal(t, "1.25", line.Multiplier.String())
	// 130 min at 20,000/26/8/60 per minute, x1.25.
	assert.Equal(t, "260.42", line.Amount.String())

	profile.OvertimeEligible = false
	slip, err = engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)
	_, hasOT := findLine(slip, payroll.LineOvertimeRegular)
	assert.False(t, hasOT, "ineligible profiles earn no overtime")
}

func TestComputePayslip_UnworkedRegularHolidayIsNotAnAbsence(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")

	// Stored as a plain workday; the calendar says otherwise.
	day := scheduledOnly(t, "2025-04-09")
	events := map[string]holiday.CalendarEvent{
		"2025-04-09": {
			ID:   "hol-1",
			Name: "Araw ng Kagitingan",
			Date: date(t, "2025-04-09"),
			Type: holiday.TypeRegular,
		},
	}

	run := testRun(t)
	run.PeriodStart = date(t, "2025-04-01")
	run.PeriodEnd = date(t, "2025-04-15")

	in := payroll.EmployeeInput{
		Employee: regularEmployee(t),
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{day},
	}

	slip, err := engine.ComputePayslip(run, in, events)
	require.NoError(t, err)

	hp, ok := findLine(slip, payroll.LineHolidayPay)
	require.True(t, ok, "unworked regular holiday earns a day's pay")
	assert.Equal(t, "769.23", hp.Amount.String())

	_, hasAbsence := findLine(slip, payroll.LineAbsent)
	assert.False(t, hasAbsence, "the holiday must not also count as an absence")
	assertNetInvariant(t, slip)
}

func TestComputePayslip_UnworkedHolidayBeforeRegularizationIsUnpaid(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")

	day := scheduledOnly(t, "2025-04-09")
	events := map[string]holiday.CalendarEvent{
		"2025-04-09": {
			ID:   "hol-1",
			Name: "Araw ng Kagitingan",
			Date: date(t, "2025-04-09"),
			Type: holiday.TypeRegular,
		},
	}

	run := testRun(t)
	run.PeriodStart = date(t, "2025-04-01")
	run.PeriodEnd = date(t, "2025-04-15")

	// Regularizes after the holiday; still probationary on the day itself.
	reg := date(t, "2025-05-01")
	in := payroll.EmployeeInput{
		Employee: employee.Employee{
			ID:                 "emp-1",
			Status:             employee.StatusProbationary,
			RegularizationDate: &reg,
		},
		Profile: &profile,
		Days:    []attendance.AttendanceDay{day},
	}

	slip, err := engine.ComputePayslip(run, in, events)
	require.NoError(t, err)

	_, hasHolidayPay := findLine(slip, payroll.LineHolidayPay)
	assert.False(t, hasHolidayPay, "probationary employees are not paid unworked holidays")

	_, hasAbsence := findLine(slip, payroll.LineAbsent)
	assert.False(t, hasAbsence, "the holiday still never counts as an absence")
	assertNetInvariant(t, slip)
}

func TestComputePayslip_WorkedHolidayPaysRegardlessOfRegularization(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")

	day := workedDay(t, "2025-04-09")
	events := map[string]holiday.CalendarEvent{
		"2025-04-09": {
			ID:   "hol-1",
			Name: "Araw ng Kagitingan",
			Date: date(t, "2025-04-09"),
			Type: holiday.TypeRegular,
		},
	}

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1", Status: employee.StatusProbationary},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{day},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, events)
	require.NoError(t, err)

	work, ok := findLine(slip, payroll.LineOvertimeHoliday)
	require.True(t, ok, "work performed on a holiday is always paid")
	assert.Equal(t, "1538.46", work.Amount.String())
	assertNetInvariant(t, slip)
}

func TestComputePayslip_WorkedHolidayOnRestDayStacksPremium(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")

	day := workedDay(t, "2025-04-09")
	day.DayType = attendance.DayTypeRestDay
	events := map[string]holiday.CalendarEvent{
		"2025-04-09": {
			ID:   "hol-1",
			Name: "Araw ng Kagitingan",
			Date: date(t, "2025-04-09"),
			Type: holiday.TypeRegular,
		},
	}

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{day},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, events)
	require.NoError(t, err)

	work, ok := findLine(slip, payroll.LineOvertimeHoliday)
	require.True(t, ok)
	assert.Equal(t, "2", work.Multiplier.String())
	assert.Equal(t, "1538.46", work.Amount.String())

	extra, ok := findLine(slip, payroll.LineRestDayPay)
	require.True(t, ok, "holiday on a rest day adds the 30% rest-day premium")
	assert.Equal(t, "0.3", extra.Multiplier.String())
	assert.Equal(t, "230.77", extra.Amount.String())
	assertNetInvariant(t, slip)
}

func TestComputePayslip_AbsenceDeductsForMonthly(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days: []attendance.AttendanceDay{
			workedDay(t, "2025-03-03"),
			scheduledOnly(t, "2025-03-04"),
		},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	line, ok := findLine(slip, payroll.LineAbsent)
	require.True(t, ok)
	assert.Equal(t, "769.23", line.Amount.String())
	assert.Equal(t, "10000", slip.BasicPay.String(), "monthly basic stays flat")
	assertNetInvariant(t, slip)

	// A paid leave on the same day is not an absence.
	leaveID := "leave-1"
	in.Days[1].LeaveID = &leaveID
	in.Days[1].LeaveIsPaid = true
	slip, err = engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)
	_, hasAbsence := findLine(slip, payroll.LineAbsent)
	assert.False(t, hasAbsence)
}

func TestComputePayslip_DailyWageCountsQualifyingDays(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("800")
	profile.WageType = payroll.WageTypeDaily

	leaveID := "leave-1"
	leaveDay := scheduledOnly(t, "2025-03-05")
	leaveDay.LeaveID = &leaveID
	leaveDay.LeaveIsPaid = true

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days: []attendance.AttendanceDay{
			workedDay(t, "2025-03-03"),
			workedDay(t, "2025-03-04"),
			leaveDay,
			scheduledOnly(t, "2025-03-06"), // unpaid absence
		},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	basic, ok := findLine(slip, payroll.LineBasicPay)
	require.True(t, ok)
	assert.Equal(t, "3", basic.Quantity.String(), "two worked days plus one paid leave")
	assert.Equal(t, "2400", slip.BasicPay.String())

	_, hasAbsence := findLine(slip, payroll.LineAbsent)
	assert.False(t, hasAbsence, "daily wage absences are unpaid, not deducted")
	assertNetInvariant(t, slip)
}

func TestComputePayslip_LateUndertimeDeduction(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")

	day := workedDay(t, "2025-03-03")
	day.ClockIn = clock(t, "2025-03-03", "08:30")
	day.ClockOut = clock(t, "2025-03-03", "16:30")

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{day},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	line, ok := findLine(slip, payroll.LineLateUndertime)
	require.True(t, ok)
	assert.Equal(t, "60", line.Quantity.String())
	assert.Equal(t, "96.15", line.Amount.String())
	assert.True(t, slip.LateUndertimeDeduction.Equal(line.Amount))

	// The deduction also shrinks the basic-pay tax basis.
	expected := slip.BasicPay.Sub(slip.LateUndertimeDeduction).Sub(slip.StatutoryEmployeeShare())
	assert.True(t, slip.TaxableIncome.Equal(expected))
	assertNetInvariant(t, slip)
}

func TestComputePayslip_AdjustmentsPenaltiesAndAllowances(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")
	profile.Allowances = []payroll.Allowance{
		{Name: "Transport", Amount: decimal.RequireFromString("2000"), Taxable: true},
		{Name: "Rice subsidy", Amount: decimal.RequireFromString("1500"), Taxable: false},
	}

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{workedDay(t, "2025-03-03")},
		Adjustments: []payroll.ManualAdjustment{
			{ID: "adj-1", Kind: payroll.AdjustmentEarning, Description: "Referral bonus", Amount: decimal.RequireFromString("500")},
			{ID: "adj-2", Kind: payroll.AdjustmentDeduction, Description: "Laptop damage", Amount: decimal.RequireFromString("200")},
		},
		Installments: []payroll.PenaltyInstallment{
			{ID: "inst-1", PenaltyID: "pen-1", InstallmentNumber: 2, Amount: decimal.RequireFromString("300"), PenaltyDescription: "Cash shortage"},
		},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	// Taxable allowance enters gross, non-taxable rides on net only.
	assert.Equal(t, "11000", slip.GrossPay.String())
	assert.Equal(t, "1250", slip.NonStatutoryEarnings.String()) // 750 + 500
	assert.Equal(t, "12250", slip.TotalEarnings.String())

	penalty, ok := findLine(slip, payroll.LinePenalty)
	require.True(t, ok)
	require.NotNil(t, penalty.SourceRef)
	assert.Equal(t, "inst-1", *penalty.SourceRef)
	assert.Equal(t, "Cash shortage", penalty.Description)

	// 850 statutory + 300 penalty + 200 deduction adjustment, no tax at
	// this income level.
	assert.Equal(t, "1350", slip.TotalDeductions.String())
	assert.Equal(t, "10900", slip.NetPay.String())
	assertNetInvariant(t, slip)
}

func TestComputePayslip_TaxOnFullEarnings(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("50000")
	profile.Allowances = []payroll.Allowance{
		{Name: "Transport", Amount: decimal.RequireFromString("4000"), Taxable: true},
	}

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{workedDay(t, "2025-03-03")},
	}

	basisBasic, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	profile.TaxOnFullEarnings = true
	basisFull, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	assert.True(t, basisFull.TaxableIncome.GreaterThan(basisBasic.TaxableIncome))
	assert.True(t, basisFull.TaxableIncome.Equal(basisFull.GrossPay.Sub(basisFull.StatutoryEmployeeShare())))
	assert.True(t, basisFull.WithholdingTax.GreaterThan(basisBasic.WithholdingTax))
}

func TestComputePayslip_StatutoryOverride(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("50000")
	override := decimal.RequireFromString("20000")
	profile.StatutoryOverride = &override

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{workedDay(t, "2025-03-03")},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	// Contributions follow the declared 20,000, not the actual 50,000.
	assert.Equal(t, "500", slip.SSSEmployee.String())
	assert.Equal(t, "250", slip.PhilHealthEmployee.String())
	assert.Equal(t, "100", slip.PagIbigEmployee.String())
}

func TestComputePayslip_MissingProfile(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	in := payroll.EmployeeInput{Employee: employee.Employee{ID: "emp-1"}}

	_, err := engine.ComputePayslip(testRun(t), in, nil)
	assert.ErrorIs(t, err, payroll.ErrWageProfileNotFound)
}

func TestComputePayslip_Deterministic(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")
	profile.NightDiffEligible = true

	otDay := workedDay(t, "2025-03-03")
	otDay.ClockOut = clock(t, "2025-03-03", "19:00")
	otDay.LateOutApproved = true

	restDay := workedDay(t, "2025-03-09")
	restDay.DayType = attendance.DayTypeRestDay

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{restDay, otDay, workedDay(t, "2025-03-05")},
	}

	first, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)
	second, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	assert.True(t, first.NetPay.Equal(second.NetPay))
	assert.True(t, first.GrossPay.Equal(second.GrossPay))
	require.Equal(t, len(first.Lines), len(second.Lines))
	for i := range first.Lines {
		assert.Equal(t, first.Lines[i].Code, second.Lines[i].Code)
		assert.Equal(t, first.Lines[i].SortOrder, second.Lines[i].SortOrder)
		assert.True(t, first.Lines[i].Amount.Equal(second.Lines[i].Amount),
			"line %d amount drifted between runs", i)
	}
}

func TestComputePayslip_YTDAccumulates(t *testing.T) {
	t.Parallel()

	engine := NewEngine(statutory.DefaultRuleset())
	profile := monthlyProfile("20000")

	in := payroll.EmployeeInput{
		Employee: employee.Employee{ID: "emp-1"},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{workedDay(t, "2025-03-03")},
		PreviousYTD: payroll.YTD{
			GrossPay:      decimal.RequireFromString("40000"),
			TaxableIncome: decimal.RequireFromString("36600"),
			TaxWithheld:   decimal.RequireFromString("0"),
		},
	}

	slip, err := engine.ComputePayslip(testRun(t), in, nil)
	require.NoError(t, err)

	assert.Equal(t, "50000", slip.YTD.GrossPay.String())
	assert.True(t, slip.YTD.TaxableIncome.Equal(in.PreviousYTD.TaxableIncome.Add(slip.TaxableIncome)))
	assert.True(t, slip.YTD.TaxWithheld.Equal(slip.WithholdingTax))
}
