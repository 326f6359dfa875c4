package payroll

import "errors"

var (
	ErrRunNotFound           = errors.New("payroll run not found")
	ErrRunNotEditable        = errors.New("payroll run is not in an editable status")
	ErrRunNotComputable      = errors.New("payroll run cannot be computed in its current status")
	ErrRunNotReviewable      = errors.New("payroll run is not awaiting review")
	ErrRunAlreadyReleased    = errors.New("payroll run already released")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
	ErrWageProfileNotFound   = errors.New("wage profile not found")
	ErrPayslipNotFound       = errors.New("payslip not found")
	ErrAdjustmentNotFound    = errors.New("manual adjustment not found")
	ErrAdjustmentLocked      = errors.New("adjustments are locked once the run is released")
	ErrPenaltyNotFound       = errors.New("penalty not found")
	ErrPenaltyNotActive      = errors.New("penalty is not active")
	ErrInvalidInstallments   = errors.New("installment count must be at least 1")
	ErrInvalidWageType       = errors.New("unknown wage type")
	ErrInvalidAdjustmentKind = errors.New("adjustment kind must be EARNING or DEDUCTION")
)
