package amortization

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMonthlyPayment_Libranza(t *testing.T) {
	// 12,000,000 at 16.5% for one year.
	payment := MonthlyPayment(dec("12000000"), dec("0.165"), 1)

	assert.Equal(t, "1091611.64", payment.StringFixed(2))
}

func TestMonthlyPayment_ZeroRateIsStraightLine(t *testing.T) {
	payment := MonthlyPayment(dec("1200"), decimal.Zero, 1)
	assert.True(t, payment.Equal(dec("100")), "got %s", payment)

	payment = MonthlyPayment(dec("1000"), decimal.Zero, 1)
	assert.True(t, payment.Equal(dec("1000").Div(decimal.NewFromInt(12))))
}

func TestMonthlyPayment_NonPositiveTerm(t *testing.T) {
	assert.True(t, MonthlyPayment(dec("1000"), dec("0.1"), 0).IsZero())
	assert.Nil(t, BuildSchedule(dec("1000"), dec("0.1"), 0))
}

func TestBuildSchedule_Libranza(t *testing.T) {
	schedule := BuildSchedule(dec("12000000"), dec("0.165"), 1)

	require.Len(t, schedule, 12)

	first := schedule[0]
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, "165000.00", first.InterestPaid.StringFixed(2))
	assert.Equal(t, "926611.64", first.PrincipalPaid.StringFixed(2))

	last := schedule[11]
	assert.Equal(t, 12, last.Month)
	assert.True(t, last.RemainingBalance.IsZero())
	assert.Equal(t, "0.00", last.RemainingBalance.StringFixed(2))
}

func TestBuildSchedule_Properties(t *testing.T) {
	cases := []struct {
		principal string
		rate      string
		years     int
	}{
		{"12000000", "0.165", 1},
		{"100000", "0.05", 30},
		{"20000000", "0.12", 20},
		{"500000", "0.30", 3},
		{"2000000", "0.09", 7},
		{"1000", "0.1", 50},
		{"1000", "0", 1},
		{"999999.99", "0.0001", 2},
	}

	for _, tc := range cases {
		t.Run(tc.principal+"@"+tc.rate, func(t *testing.T) {
			principal := dec(tc.principal)
			schedule := BuildSchedule(principal, dec(tc.rate), tc.years)

			require.Len(t, schedule, tc.years*12)
			assert.True(t, schedule[len(schedule)-1].RemainingBalance.IsZero(), "last balance must be exactly zero")

			sum := decimal.Zero
			prev := principal
			for i, e := range schedule {
				assert.Equal(t, i+1, e.Month)
				assert.True(t, e.RemainingBalance.LessThanOrEqual(prev),
					"month %d balance %s above previous %s", e.Month, e.RemainingBalance, prev)
				prev = e.RemainingBalance
				sum = sum.Add(e.PrincipalPaid)
			}
			assert.True(t, sum.Equal(principal), "sum of principal %s != %s", sum, principal)
		})
	}
}

func TestBuildSchedule_ZeroRate(t *testing.T) {
	principal := dec("1000")
	schedule := BuildSchedule(principal, decimal.Zero, 1)
	want := principal.Div(decimal.NewFromInt(12))

	require.Len(t, schedule, 12)
	for _, e := range schedule {
		assert.True(t, e.InterestPaid.IsZero(), "month %d interest %s", e.Month, e.InterestPaid)
		assert.True(t, e.MonthlyPayment.Equal(want))
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := Summarize(dec("12000000"), dec("0.165"), 1, now)

	assert.Equal(t, "1091611.64", s.MonthlyPayment.StringFixed(2))
	assert.True(t, s.TotalPayment.Equal(s.MonthlyPayment.Mul(decimal.NewFromInt(12))))
	assert.True(t, s.TotalInterest.Equal(s.TotalPayment.Sub(dec("12000000"))))
	assert.True(t, s.Principal.Equal(dec("12000000")))
	assert.True(t, s.AnnualInterestRate.Equal(dec("0.165")))
	// 12 payments * 30 days.
	assert.Equal(t, now.AddDate(0, 0, 360), s.FinalPaymentDate)
	assert.Equal(t, "2025-12-27", s.FinalPaymentDate.Format("2006-01-02"))
}
