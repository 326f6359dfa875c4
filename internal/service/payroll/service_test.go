package payroll

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suweldo/suweldo-backend-go/internal/domain/attendance"
	"github.com/suweldo/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo/suweldo-backend-go/internal/domain/statutory"
)

func testService(t *testing.T, workers int) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(nil, nil, nil, NewEngine(statutory.DefaultRuleset()), manila, workers, logger)
}

func profiledInput(t *testing.T, id, rate string) payroll.EmployeeInput {
	profile := monthlyProfile(rate)
	profile.EmployeeID = id
	day := workedDay(t, "2025-03-03")
	day.EmployeeID = id
	return payroll.EmployeeInput{
		Employee: employee.Employee{ID: id},
		Profile:  &profile,
		Days:     []attendance.AttendanceDay{day},
	}
}

func TestComputeAll_PartitionsEveryEmployeeExactlyOnce(t *testing.T) {
	t.Parallel()

	svc := testService(t, 4)

	// Deliberately unsorted, with one employee missing a wage profile.
	inputs := RunInputs{Employees: []payroll.EmployeeInput{
		profiledInput(t, "emp-3", "30000"),
		{Employee: employee.Employee{ID: "emp-4"}},
		profiledInput(t, "emp-1", "20000"),
		profiledInput(t, "emp-2", "25000"),
	}}

	result := svc.computeAll(testRun(t), inputs)

	require.Len(t, result.Payslips, 3)
	require.Len(t, result.Errors, 1)

	seen := map[string]int{}
	var slipIDs []string
	for _, slip := range result.Payslips {
		seen[slip.EmployeeID]++
		slipIDs = append(slipIDs, slip.EmployeeID)
	}
	for _, ce := range result.Errors {
		seen[ce.EmployeeID]++
	}
	for _, in := range inputs.Employees {
		assert.Equal(t, 1, seen[in.Employee.ID],
			"employee %s must land exactly once in payslips or errors", in.Employee.ID)
	}

	assert.Equal(t, []string{"emp-1", "emp-2", "emp-3"}, slipIDs, "payslips ordered by employee ID")
	assert.Equal(t, "emp-4", result.Errors[0].EmployeeID)
	assert.Contains(t, result.Errors[0].Message, "wage profile")
}

func TestComputeAll_OneBadEmployeeDoesNotFailTheRun(t *testing.T) {
	t.Parallel()

	svc := testService(t, 2)

	badProfile := monthlyProfile("20000")
	badProfile.WageType = "PIECEWORK"
	inputs := RunInputs{Employees: []payroll.EmployeeInput{
		profiledInput(t, "emp-1", "20000"),
		{Employee: employee.Employee{ID: "emp-2"}, Profile: &badProfile},
	}}

	result := svc.computeAll(testRun(t), inputs)

	require.Len(t, result.Payslips, 1)
	assert.Equal(t, "emp-1", result.Payslips[0].EmployeeID)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "emp-2", result.Errors[0].EmployeeID)
}

func TestComputeAll_TotalsSumPayslips(t *testing.T) {
	t.Parallel()

	svc := testService(t, 3)
	inputs := RunInputs{Employees: []payroll.EmployeeInput{
		profiledInput(t, "emp-1", "20000"),
		profiledInput(t, "emp-2", "26000"),
	}}

	result := svc.computeAll(testRun(t), inputs)
	require.Len(t, result.Payslips, 2)

	gross := result.Payslips[0].GrossPay.Add(result.Payslips[1].GrossPay)
	deductions := result.Payslips[0].TotalDeductions.Add(result.Payslips[1].TotalDeductions)
	net := result.Payslips[0].NetPay.Add(result.Payslips[1].NetPay)

	assert.True(t, result.Totals.TotalGross.Equal(gross))
	assert.True(t, result.Totals.TotalDeductions.Equal(deductions))
	assert.True(t, result.Totals.TotalNet.Equal(net))
	assert.Equal(t, 2, result.Totals.EmployeeCount)
	assert.Equal(t, 2, result.Totals.PayslipCount)
}

func TestComputeAll_DeterministicUnderWorkerPool(t *testing.T) {
	t.Parallel()

	inputs := RunInputs{Employees: []payroll.EmployeeInput{
		profiledInput(t, "emp-5", "32000"),
		profiledInput(t, "emp-2", "21000"),
		{Employee: employee.Employee{ID: "emp-9"}},
		profiledInput(t, "emp-1", "20000"),
		profiledInput(t, "emp-7", "50000"),
	}}

	// More workers than employees must also be safe.
	first := testService(t, 8).computeAll(testRun(t), inputs)
	second := testService(t, 2).computeAll(testRun(t), inputs)

	require.Equal(t, len(first.Payslips), len(second.Payslips))
	for i := range first.Payslips {
		a, b := first.Payslips[i], second.Payslips[i]
		assert.Equal(t, a.EmployeeID, b.EmployeeID)
		assert.True(t, a.NetPay.Equal(b.NetPay))
		require.Equal(t, len(a.Lines), len(b.Lines))
		for j := range a.Lines {
			assert.Equal(t, a.Lines[j].Code, b.Lines[j].Code)
			assert.Equal(t, a.Lines[j].SortOrder, b.Lines[j].SortOrder)
			assert.True(t, a.Lines[j].Amount.Equal(b.Lines[j].Amount))
		}
	}
	require.Equal(t, len(first.Errors), len(second.Errors))
	assert.True(t, first.Totals.TotalNet.Equal(second.Totals.TotalNet))
}
