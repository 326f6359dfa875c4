package employee

import "time"

type EmploymentStatus string

const (
	StatusProbationary EmploymentStatus = "PROBATIONARY"
	StatusRegular      EmploymentStatus = "REGULAR"
	StatusResigned     EmploymentStatus = "RESIGNED"
)

// Employee is the minimal employment record payroll needs: identity, the
// default weekly rest days, and the regularization date that drives
// benefit eligibility.
type Employee struct {
	ID     string
	Code   string
	Name   string
	Status EmploymentStatus

	// RestDays is the employee's default weekly rest-day set. Individual
	// days may still be stored as REST_DAY on attendance regardless.
	RestDays []time.Weekday

	HireDate           time.Time
	RegularizationDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestDaySet returns the rest days as a lookup set.
func (e Employee) RestDaySet() map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(e.RestDays))
	for _, d := range e.RestDays {
		set[d] = true
	}
	return set
}

// IsRegularAsOf reports whether the employee was regularized on or before
// the given date.
func (e Employee) IsRegularAsOf(date time.Time) bool {
	return e.RegularizationDate != nil && !e.RegularizationDate.After(date)
}
