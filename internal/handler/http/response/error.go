package response

import (
	"errors"
	"net/http"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
	"github.com/suweldo/suweldo-backend-go/internal/domain/auth"
	"github.com/suweldo/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidClientCredentials):
		Unauthorized(w, "Invalid client credentials")
	case errors.Is(err, auth.ErrRefreshTokenMissing):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrRefreshTokenInvalid):
		Unauthorized(w, "Refresh token invalid or expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunNotComputable):
		Conflict(w, "Payroll run cannot be computed in its current status")
	case errors.Is(err, payroll.ErrRunNotReviewable):
		Conflict(w, "Payroll run is not awaiting review")
	case errors.Is(err, payroll.ErrRunAlreadyReleased):
		Conflict(w, "Payroll run already released")
	case errors.Is(err, payroll.ErrRunNotEditable):
		Conflict(w, "Payroll run is not editable in its current status")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrWageProfileNotFound):
		NotFound(w, "Wage profile not found")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrAdjustmentNotFound):
		NotFound(w, "Manual adjustment not found")
	case errors.Is(err, payroll.ErrAdjustmentLocked):
		Conflict(w, "Adjustments are locked for this run")
	case errors.Is(err, payroll.ErrPenaltyNotFound):
		NotFound(w, "Penalty not found")
	case errors.Is(err, payroll.ErrPenaltyNotActive):
		Conflict(w, "Penalty is not active")
	case errors.Is(err, payroll.ErrInvalidInstallments):
		BadRequest(w, "Installment count must be at least 1", nil)
	case errors.Is(err, payroll.ErrInvalidWageType):
		BadRequest(w, "Unknown wage type", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance day not found")
	case errors.Is(err, attendance.ErrDuplicateDay):
		Conflict(w, "Attendance day already exists for this employee and date")
	case errors.Is(err, attendance.ErrDateRequired):
		BadRequest(w, "A valid date is required", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is not active")

	// Calendar domain errors
	case errors.Is(err, holiday.ErrEventNotFound):
		NotFound(w, "Calendar event not found")
	case errors.Is(err, holiday.ErrDuplicateEvent):
		Conflict(w, "A calendar event already exists for this date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
