package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
	"github.com/suweldo/suweldo-backend-go/internal/domain/employee"
)

// WageType enum
type WageType string

const (
	WageTypeMonthly WageType = "MONTHLY"
	WageTypeDaily   WageType = "DAILY"
	WageTypeHourly  WageType = "HOURLY"
)

// PayFrequency enum
type PayFrequency string

const (
	FrequencyMonthly     PayFrequency = "MONTHLY"
	FrequencySemiMonthly PayFrequency = "SEMI_MONTHLY"
	FrequencyBiWeekly    PayFrequency = "BI_WEEKLY"
	FrequencyWeekly      PayFrequency = "WEEKLY"
)

// PeriodsPerMonth is the fixed frequency conversion table. Unknown
// frequencies fall back to semi-monthly.
func PeriodsPerMonth(f PayFrequency) decimal.Decimal {
	switch f {
	case FrequencyMonthly:
		return decimal.NewFromInt(1)
	case FrequencySemiMonthly:
		return decimal.NewFromInt(2)
	case FrequencyBiWeekly:
		return decimal.RequireFromString("2.17")
	case FrequencyWeekly:
		return decimal.RequireFromString("4.33")
	default:
		return decimal.NewFromInt(2)
	}
}

// Allowance is one fixed monthly allowance on a wage profile.
type Allowance struct {
	Name    string
	Amount  decimal.Decimal
	Taxable bool
}

// WageProfile is the per-employee wage configuration. The engine works on
// an immutable snapshot captured at computation time; the snapshot is
// stored on the payslip for audit.
type WageProfile struct {
	EmployeeID string

	WageType WageType

	// BaseRate semantics depend on WageType: monthly salary, daily rate,
	// or hourly rate.
	BaseRate decimal.Decimal

	PayFrequency PayFrequency

	// Divisor conventions.
	WorkDaysPerMonth int // default 26
	HoursPerDay      int // default 8

	BenefitsEligible  bool
	OvertimeEligible  bool
	NightDiffEligible bool

	Allowances []Allowance

	// TaxOnFullEarnings switches the withholding basis from basic pay to
	// full gross earnings. Per employee, not per run.
	TaxOnFullEarnings bool

	// StatutoryOverride, when set, is the administratively declared
	// monthly wage used for contribution and tax lookups instead of the
	// derived monthly rate.
	StatutoryOverride *decimal.Decimal
}

// MonthlyRate normalizes the base rate to a monthly figure.
func (p WageProfile) MonthlyRate() decimal.Decimal {
	days := decimal.NewFromInt(int64(p.WorkDaysPerMonth))
	hours := decimal.NewFromInt(int64(p.HoursPerDay))
	switch p.WageType {
	case WageTypeDaily:
		return p.BaseRate.Mul(days)
	case WageTypeHourly:
		return p.BaseRate.Mul(hours).Mul(days)
	default:
		return p.BaseRate
	}
}

// DailyRate returns the monthly rate spread over the workday convention.
func (p WageProfile) DailyRate() decimal.Decimal {
	if p.WageType == WageTypeDaily {
		return p.BaseRate
	}
	return p.MonthlyRate().Div(decimal.NewFromInt(int64(p.WorkDaysPerMonth)))
}

// HourlyRate returns the daily rate spread over the hours convention.
func (p WageProfile) HourlyRate() decimal.Decimal {
	if p.WageType == WageTypeHourly {
		return p.BaseRate
	}
	return p.DailyRate().Div(decimal.NewFromInt(int64(p.HoursPerDay)))
}

// MinuteRate is the per-minute wage used for late/undertime/absence math.
func (p WageProfile) MinuteRate() decimal.Decimal {
	return p.HourlyRate().Div(decimal.NewFromInt(60))
}

// StatutoryBase is the monthly wage used for government tables.
func (p WageProfile) StatutoryBase() decimal.Decimal {
	if p.StatutoryOverride != nil {
		return *p.StatutoryOverride
	}
	return p.MonthlyRate()
}

// AdjustmentKind enum
type AdjustmentKind string

const (
	AdjustmentEarning   AdjustmentKind = "EARNING"
	AdjustmentDeduction AdjustmentKind = "DEDUCTION"
)

// ManualAdjustment is an ad-hoc earning or deduction attached to a run.
// Editable only while the owning run is DRAFT or REVIEW.
type ManualAdjustment struct {
	ID          string
	RunID       string
	EmployeeID  string
	Kind        AdjustmentKind
	Category    string
	Description string
	Amount      decimal.Decimal
	Remarks     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PenaltyStatus enum
type PenaltyStatus string

const (
	PenaltyActive    PenaltyStatus = "ACTIVE"
	PenaltyCancelled PenaltyStatus = "CANCELLED"
)

// Penalty is a multi-period deduction split into installments at creation.
type Penalty struct {
	ID               string
	EmployeeID       string
	Description      string
	TotalAmount      decimal.Decimal
	InstallmentCount int
	Status           PenaltyStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PenaltyInstallment is one scheduled partial deduction. Each installment
// is consumed by at most one payroll run, in ascending number order.
type PenaltyInstallment struct {
	ID                string
	PenaltyID         string
	InstallmentNumber int
	Amount            decimal.Decimal
	Deducted          bool
	DeductedByRunID   *string

	// Joined for payslip descriptions.
	PenaltyDescription string
}

// RunStatus enum. The persistence layer enforces the state machine; the
// engine only requires that recomputation is an idempotent overwrite.
type RunStatus string

const (
	RunStatusDraft     RunStatus = "DRAFT"
	RunStatusComputing RunStatus = "COMPUTING"
	RunStatusReview    RunStatus = "REVIEW"
	RunStatusReleased  RunStatus = "RELEASED"
)

// PayrollRun is one pay period computation for the company.
type PayrollRun struct {
	ID          string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Frequency   PayFrequency
	Status      RunStatus

	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
	EmployeeCount   int
	PayslipCount    int

	ComputedAt *time.Time
	ReleasedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LineKind separates employee-facing earnings and deductions from the
// employer-side contribution lines that never touch net pay.
type LineKind string

const (
	KindEarning              LineKind = "EARNING"
	KindDeduction            LineKind = "DEDUCTION"
	KindEmployerContribution LineKind = "EMPLOYER_CONTRIBUTION"
)

// LineCode tags each payslip line with the rule that produced it.
type LineCode string

const (
	LineBasicPay        LineCode = "BASIC_PAY"
	LineAllowance       LineCode = "ALLOWANCE"
	LineHolidayPay      LineCode = "HOLIDAY_PAY"
	LineRestDayPay      LineCode = "REST_DAY_PAY"
	LineOvertimeRegular LineCode = "OVERTIME_REGULAR"
	LineOvertimeRestDay LineCode = "OVERTIME_REST_DAY"
	LineOvertimeHoliday LineCode = "OVERTIME_HOLIDAY"
	LineNightDiff       LineCode = "NIGHT_DIFFERENTIAL"
	LineAdjustment      LineCode = "ADJUSTMENT"

	LineLateUndertime LineCode = "LATE_UT_DEDUCTION"
	LineAbsent        LineCode = "ABSENT_DEDUCTION"
	LineSSSEmployee   LineCode = "SSS_EE"
	LinePhilHealthEE  LineCode = "PHILHEALTH_EE"
	LinePagIbigEE     LineCode = "PAGIBIG_EE"
	LineWithholding   LineCode = "WITHHOLDING_TAX"
	LinePenalty       LineCode = "PENALTY"

	LineSSSEmployer  LineCode = "SSS_ER"
	LinePhilHealthER LineCode = "PHILHEALTH_ER"
	LinePagIbigER    LineCode = "PAGIBIG_ER"
)

// Kind maps a line code to its side of the payslip. The switch is
// exhaustive over all defined codes; unknown codes panic early rather
// than silently corrupting totals.
func (c LineCode) Kind() LineKind {
	switch c {
	case LineBasicPay, LineAllowance, LineHolidayPay, LineRestDayPay,
		LineOvertimeRegular, LineOvertimeRestDay, LineOvertimeHoliday,
		LineNightDiff, LineAdjustment:
		return KindEarning
	case LineLateUndertime, LineAbsent, LineSSSEmployee, LinePhilHealthEE,
		LinePagIbigEE, LineWithholding, LinePenalty:
		return KindDeduction
	case LineSSSEmployer, LinePhilHealthER, LinePagIbigER:
		return KindEmployerContribution
	default:
		panic("payroll: unknown line code " + string(c))
	}
}

// PayslipLine is one itemized payslip row. Quantity/Rate/Multiplier retain
// how Amount was derived; SourceRef points back at the adjustment or
// penalty installment that produced the line.
type PayslipLine struct {
	ID          string
	PayslipID   string
	Code        LineCode
	Kind        LineKind
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Multiplier  decimal.Decimal
	Amount      decimal.Decimal
	SourceRef   *string
	SortOrder   int
}

// YTD is the cumulative year-to-date tax basis.
type YTD struct {
	GrossPay      decimal.Decimal
	TaxableIncome decimal.Decimal
	TaxWithheld   decimal.Decimal
}

// Payslip is one employee's computed result for a run. Recomputing a run
// deletes and replaces its payslips wholesale.
type Payslip struct {
	ID         string
	RunID      string
	EmployeeID string

	Lines []PayslipLine

	// Stored computation components. BasicPay, LateUndertimeDeduction and
	// StatutoryEmployeeShare are kept so the YTD accumulator can replay
	// historical taxable income under a changed policy.
	BasicPay               decimal.Decimal
	GrossPay               decimal.Decimal
	NonStatutoryEarnings   decimal.Decimal
	TotalEarnings          decimal.Decimal
	TotalDeductions        decimal.Decimal
	LateUndertimeDeduction decimal.Decimal
	NetPay                 decimal.Decimal

	SSSEmployee        decimal.Decimal
	SSSEmployer        decimal.Decimal
	PhilHealthEmployee decimal.Decimal
	PhilHealthEmployer decimal.Decimal
	PagIbigEmployee    decimal.Decimal
	PagIbigEmployer    decimal.Decimal
	WithholdingTax     decimal.Decimal
	TaxableIncome      decimal.Decimal

	YTD YTD

	// ProfileSnapshot is the wage profile exactly as used for this
	// computation.
	ProfileSnapshot WageProfile

	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
}

// StatutoryEmployeeShare is the total employee-side contribution.
func (p Payslip) StatutoryEmployeeShare() decimal.Decimal {
	return p.SSSEmployee.Add(p.PhilHealthEmployee).Add(p.PagIbigEmployee)
}

// ComputeError is a per-employee, non-fatal computation failure.
type ComputeError struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

// EmployeeInput is everything the engine needs for one employee. Loaded
// up front so the computation itself performs no I/O.
type EmployeeInput struct {
	Employee     employee.Employee
	Profile      *WageProfile
	Days         []attendance.AttendanceDay
	Adjustments  []ManualAdjustment
	Installments []PenaltyInstallment
	PreviousYTD  YTD
}

// RunTotals aggregates a computed run across employees.
type RunTotals struct {
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
	EmployeeCount   int
	PayslipCount    int
}

// RunResult is the full output of one run computation.
type RunResult struct {
	Payslips []Payslip
	Totals   RunTotals
	Errors   []ComputeError
}
