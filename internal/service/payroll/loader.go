package payroll

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
	"github.com/suweldo/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo/suweldo-backend-go/internal/domain/statutory"
)

// RunInputs is everything a run computation needs, loaded up front so the
// engine itself performs no I/O.
type RunInputs struct {
	Employees []payroll.EmployeeInput
	Events    map[string]holiday.CalendarEvent
}

// Loader assembles RunInputs from the repositories. One parameterized
// path serves both full-company runs and partial recomputes; an empty
// employee filter means everyone active.
type Loader struct {
	employees   employee.EmployeeRepository
	attendances attendance.AttendanceRepository
	holidays    holiday.HolidayRepository
	payrolls    payroll.PayrollRepository
	rules       statutory.Ruleset
}

func NewLoader(
	employees employee.EmployeeRepository,
	attendances attendance.AttendanceRepository,
	holidays holiday.HolidayRepository,
	payrolls payroll.PayrollRepository,
	rules statutory.Ruleset,
) *Loader {
	return &Loader{
		employees:   employees,
		attendances: attendances,
		holidays:    holidays,
		payrolls:    payrolls,
		rules:       rules,
	}
}

// LoadRunInputs gathers employees, wage profiles, attendance, calendar
// events, adjustments, due penalty installments and the prior-period YTD
// basis for the run. Employees without a wage profile are still included;
// the engine reports them as per-employee errors instead of silently
// skipping them.
func (l *Loader) LoadRunInputs(ctx context.Context, run payroll.PayrollRun, employeeIDs []string) (RunInputs, error) {
	emps, err := l.employees.ListActive(ctx, employeeIDs)
	if err != nil {
		return RunInputs{}, fmt.Errorf("list employees: %w", err)
	}
	sort.Slice(emps, func(i, j int) bool { return emps[i].ID < emps[j].ID })

	ids := make([]string, 0, len(emps))
	for _, emp := range emps {
		ids = append(ids, emp.ID)
	}

	// The period end is inclusive; repository ranges are half-open.
	rangeEnd := run.PeriodEnd.AddDate(0, 0, 1)

	profiles, err := l.payrolls.GetWageProfiles(ctx, ids)
	if err != nil {
		return RunInputs{}, fmt.Errorf("load wage profiles: %w", err)
	}
	daysByEmployee, err := l.attendances.ListByRange(ctx, run.PeriodStart, rangeEnd, ids)
	if err != nil {
		return RunInputs{}, fmt.Errorf("load attendance: %w", err)
	}
	events, err := l.holidays.MapByRange(ctx, run.PeriodStart, rangeEnd)
	if err != nil {
		return RunInputs{}, fmt.Errorf("load holiday calendar: %w", err)
	}
	adjustments, err := l.payrolls.ListAdjustmentsByRun(ctx, run.ID, ids)
	if err != nil {
		return RunInputs{}, fmt.Errorf("load adjustments: %w", err)
	}
	installments, err := l.payrolls.NextDueInstallments(ctx, ids)
	if err != nil {
		return RunInputs{}, fmt.Errorf("load penalty installments: %w", err)
	}

	yearStart := time.Date(run.PeriodStart.Year(), time.January, 1, 0, 0, 0, 0, run.PeriodStart.Location())

	inputs := make([]payroll.EmployeeInput, 0, len(emps))
	for _, emp := range emps {
		input := payroll.EmployeeInput{
			Employee:     emp,
			Days:         daysByEmployee[emp.ID],
			Adjustments:  adjustments[emp.ID],
			Installments: installments[emp.ID],
		}
		if profile, ok := profiles[emp.ID]; ok {
			input.Profile = &profile

			slips, err := l.payrolls.ListReleasedPayslips(ctx, emp.ID, yearStart, run.PeriodStart)
			if err != nil {
				return RunInputs{}, fmt.Errorf("load released payslips for %s: %w", emp.ID, err)
			}
			input.PreviousYTD = RecomputeYTD(slips, profile, l.rules)
		}
		inputs = append(inputs, input)
	}

	return RunInputs{Employees: inputs, Events: events}, nil
}
