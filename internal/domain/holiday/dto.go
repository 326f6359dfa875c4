package holiday

import (
	"github.com/shopspring/decimal"

	"github.com/suweldo/suweldo-backend-go/internal/pkg/validator"
)

// CreateHolidayRequest adds one event to the company calendar.
type CreateHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`

	// Multiplier optionally overrides the statutory worked-day rate.
	Multiplier *decimal.Decimal `json:"multiplier"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	switch HolidayType(r.Type) {
	case TypeRegular, TypeSpecialNonWorking, TypeSpecialWorking:
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown holiday type"})
	}
	if r.Multiplier != nil && r.Multiplier.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HolidayResponse is the wire shape of one calendar event.
type HolidayResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	Multiplier string `json:"multiplier,omitempty"`
}
