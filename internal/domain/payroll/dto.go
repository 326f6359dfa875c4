package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/suweldo/suweldo-backend-go/internal/pkg/validator"
)

// CreateRunRequest opens a new DRAFT run for a pay period.
type CreateRunRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Frequency   string `json:"frequency"`
}

func (r CreateRunRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && !start.Before(end) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be after period_start"})
	}
	switch PayFrequency(r.Frequency) {
	case FrequencyMonthly, FrequencySemiMonthly, FrequencyBiWeekly, FrequencyWeekly:
	default:
		errs = append(errs, validator.ValidationError{Field: "frequency", Message: "unknown pay frequency"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ComputeRunRequest triggers computation, optionally for a subset of
// employees.
type ComputeRunRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
}

// CreateAdjustmentRequest adds a manual earning or deduction to a run.
type CreateAdjustmentRequest struct {
	RunID       string          `json:"run_id"`
	EmployeeID  string          `json:"employee_id"`
	Kind        string          `json:"kind"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Remarks     *string         `json:"remarks"`
}

func (r CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RunID) {
		errs = append(errs, validator.ValidationError{Field: "run_id", Message: "is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	switch AdjustmentKind(r.Kind) {
	case AdjustmentEarning, AdjustmentDeduction:
	default:
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be EARNING or DEDUCTION"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if r.Amount.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreatePenaltyRequest creates a penalty and generates its installments.
type CreatePenaltyRequest struct {
	EmployeeID       string          `json:"employee_id"`
	Description      string          `json:"description"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	InstallmentCount int             `json:"installment_count"`
}

func (r CreatePenaltyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if r.TotalAmount.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must be positive"})
	}
	if r.InstallmentCount < 1 {
		errs = append(errs, validator.ValidationError{Field: "installment_count", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AllowanceRequest is one fixed monthly allowance on the wire.
type AllowanceRequest struct {
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	Taxable bool            `json:"taxable"`
}

// UpsertWageProfileRequest creates or replaces an employee's wage
// configuration.
type UpsertWageProfileRequest struct {
	EmployeeID        string             `json:"employee_id"`
	WageType          string             `json:"wage_type"`
	BaseRate          decimal.Decimal    `json:"base_rate"`
	PayFrequency      string             `json:"pay_frequency"`
	WorkDaysPerMonth  int                `json:"work_days_per_month"`
	HoursPerDay       int                `json:"hours_per_day"`
	BenefitsEligible  bool               `json:"benefits_eligible"`
	OvertimeEligible  bool               `json:"overtime_eligible"`
	NightDiffEligible bool               `json:"night_diff_eligible"`
	Allowances        []AllowanceRequest `json:"allowances"`
	TaxOnFullEarnings bool               `json:"tax_on_full_earnings"`
	StatutoryOverride *decimal.Decimal   `json:"statutory_override"`
}

func (r UpsertWageProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	switch WageType(r.WageType) {
	case WageTypeMonthly, WageTypeDaily, WageTypeHourly:
	default:
		errs = append(errs, validator.ValidationError{Field: "wage_type", Message: "unknown wage type"})
	}
	if r.BaseRate.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{Field: "base_rate", Message: "must be positive"})
	}
	switch PayFrequency(r.PayFrequency) {
	case FrequencyMonthly, FrequencySemiMonthly, FrequencyBiWeekly, FrequencyWeekly:
	default:
		errs = append(errs, validator.ValidationError{Field: "pay_frequency", Message: "unknown pay frequency"})
	}
	for _, allowance := range r.Allowances {
		if validator.IsEmpty(allowance.Name) || allowance.Amount.Sign() <= 0 {
			errs = append(errs, validator.ValidationError{Field: "allowances", Message: "each allowance needs a name and a positive amount"})
			break
		}
	}
	if r.StatutoryOverride != nil && r.StatutoryOverride.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{Field: "statutory_override", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToProfile converts the request to the domain entity.
func (r UpsertWageProfileRequest) ToProfile() WageProfile {
	profile := WageProfile{
		EmployeeID:        r.EmployeeID,
		WageType:          WageType(r.WageType),
		BaseRate:          r.BaseRate,
		PayFrequency:      PayFrequency(r.PayFrequency),
		WorkDaysPerMonth:  r.WorkDaysPerMonth,
		HoursPerDay:       r.HoursPerDay,
		BenefitsEligible:  r.BenefitsEligible,
		OvertimeEligible:  r.OvertimeEligible,
		NightDiffEligible: r.NightDiffEligible,
		TaxOnFullEarnings: r.TaxOnFullEarnings,
		StatutoryOverride: r.StatutoryOverride,
	}
	for _, allowance := range r.Allowances {
		profile.Allowances = append(profile.Allowances, Allowance{
			Name:    allowance.Name,
			Amount:  allowance.Amount,
			Taxable: allowance.Taxable,
		})
	}
	return profile
}

// RunResponse is the wire shape of a payroll run.
type RunResponse struct {
	ID              string `json:"id"`
	PeriodStart     string `json:"period_start"`
	PeriodEnd       string `json:"period_end"`
	Frequency       string `json:"frequency"`
	Status          string `json:"status"`
	TotalGross      string `json:"total_gross"`
	TotalDeductions string `json:"total_deductions"`
	TotalNet        string `json:"total_net"`
	EmployeeCount   int    `json:"employee_count"`
	PayslipCount    int    `json:"payslip_count"`
	ComputedAt      *string `json:"computed_at"`
	ReleasedAt      *string `json:"released_at"`
}

// PayslipLineResponse is one itemized row on the wire.
type PayslipLineResponse struct {
	Code        string  `json:"code"`
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	Rate        string  `json:"rate"`
	Multiplier  string  `json:"multiplier"`
	Amount      string  `json:"amount"`
	SourceRef   *string `json:"source_ref,omitempty"`
	SortOrder   int     `json:"sort_order"`
}

// PayslipResponse is the wire shape of one payslip.
type PayslipResponse struct {
	ID              string                `json:"id"`
	RunID           string                `json:"run_id"`
	EmployeeID      string                `json:"employee_id"`
	Lines           []PayslipLineResponse `json:"lines"`
	BasicPay        string                `json:"basic_pay"`
	GrossPay        string                `json:"gross_pay"`
	TotalEarnings   string                `json:"total_earnings"`
	TotalDeductions string                `json:"total_deductions"`
	NetPay          string                `json:"net_pay"`
	WithholdingTax  string                `json:"withholding_tax"`
	TaxableIncome   string                `json:"taxable_income"`
	YTDGross        string                `json:"ytd_gross"`
	YTDTaxable      string                `json:"ytd_taxable"`
	YTDTaxWithheld  string                `json:"ytd_tax_withheld"`
}

// ComputeRunResponse summarizes a computation.
type ComputeRunResponse struct {
	Run           RunResponse    `json:"run"`
	PayslipCount  int            `json:"payslip_count"`
	EmployeeCount int            `json:"employee_count"`
	Errors        []ComputeError `json:"errors,omitempty"`
}
