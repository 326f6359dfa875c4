package statutory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSSShares(t *testing.T) {
	t.Parallel()
	table := sssTable2025()

	tests := []struct {
		name    string
		monthly string
		wantEE  string
		wantER  string
	}{
		{"below minimum maps to lowest MSC", "3000", "250", "510"},
		{"mid bracket 20k", "20000", "1000", "2030"},
		{"bracket boundary 14750 rounds up to 15000 MSC", "14750", "750", "1530"},
		{"just under boundary keeps 14500 MSC", "14749.99", "725", "1460"},
		{"above ceiling capped at 35000 MSC", "90000", "1750", "3530"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ee, er := table.Shares(decimal.RequireFromString(tt.monthly))
			assert.True(t, ee.Equal(decimal.RequireFromString(tt.wantEE)), "ee = %s", ee)
			assert.True(t, er.Equal(decimal.RequireFromString(tt.wantER)), "er = %s", er)
		})
	}
}

func TestPhilHealthShares(t *testing.T) {
	t.Parallel()
	table := philHealthTable2025()

	ee, er := table.Shares(decimal.RequireFromString("8000"))
	assert.True(t, ee.Equal(decimal.RequireFromString("250")), "floor ee = %s", ee)
	assert.True(t, er.Equal(decimal.RequireFromString("250")))

	ee, er = table.Shares(decimal.RequireFromString("40000"))
	assert.True(t, ee.Equal(decimal.RequireFromString("1000")), "mid ee = %s", ee)
	assert.True(t, er.Equal(decimal.RequireFromString("1000")))

	ee, er = table.Shares(decimal.RequireFromString("250000"))
	assert.True(t, ee.Equal(decimal.RequireFromString("2500")), "cap ee = %s", ee)
	assert.True(t, er.Equal(decimal.RequireFromString("2500")))
}

func TestPagIbigShares(t *testing.T) {
	t.Parallel()
	table := pagIbigTable2025()

	ee, er := table.Shares(decimal.RequireFromString("1000"))
	assert.True(t, ee.Equal(decimal.RequireFromString("10")), "low ee = %s", ee)
	assert.True(t, er.Equal(decimal.RequireFromString("20")))

	ee, er = table.Shares(decimal.RequireFromString("5000"))
	assert.True(t, ee.Equal(decimal.RequireFromString("100")))
	assert.True(t, er.Equal(decimal.RequireFromString("100")))

	// Fund salary base caps at 10,000.
	ee, er = table.Shares(decimal.RequireFromString("80000"))
	assert.True(t, ee.Equal(decimal.RequireFromString("200")))
	assert.True(t, er.Equal(decimal.RequireFromString("200")))
}

func TestMonthlyTax(t *testing.T) {
	t.Parallel()
	table := taxTable2023()

	tests := []struct {
		name    string
		taxable string
		want    string
	}{
		{"exempt", "20000", "0"},
		{"zero taxable", "0", "0"},
		{"second bracket", "25000", "625.05"},
		{"third bracket", "50000", "5208.40"},
		{"top bracket", "700000", "195208.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.MonthlyTax(decimal.RequireFromString(tt.taxable))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "tax = %s", got)
		})
	}
}

func TestPeriodTaxProration(t *testing.T) {
	t.Parallel()
	table := taxTable2023()

	// Semi-monthly 12,500 annualizes to 25,000 monthly.
	got := table.PeriodTax(decimal.RequireFromString("12500"), decimal.RequireFromString("2"))
	assert.True(t, got.Equal(decimal.RequireFromString("312.53")), "period tax = %s", got)

	// Non-positive periods yields zero rather than dividing by zero.
	got = table.PeriodTax(decimal.RequireFromString("12500"), decimal.Zero)
	assert.True(t, got.IsZero())
}

func TestDefaultRuleset(t *testing.T) {
	t.Parallel()
	rs := DefaultRuleset()

	require.NotEmpty(t, rs.SSS.Brackets)
	require.NotEmpty(t, rs.PhilHealth.Brackets)
	require.NotEmpty(t, rs.PagIbig.Brackets)
	require.NotEmpty(t, rs.Tax.Brackets)

	assert.Equal(t, "2025", rs.Version)
	assert.True(t, rs.RestDayMultiplier.Equal(decimal.RequireFromString("1.30")))
	assert.True(t, rs.RegularHolidayMultiplier.Equal(decimal.RequireFromString("2.00")))

	// 61 MSC steps from 5,000 to 35,000.
	assert.Len(t, rs.SSS.Brackets, 61)
	// Top SSS bracket is open-ended.
	assert.True(t, rs.SSS.Brackets[len(rs.SSS.Brackets)-1].RangeTo.IsZero())
}
