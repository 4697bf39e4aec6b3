// internal/amortization/amortization.go
package amortization

import (
	"time"

	"loan-catalog/internal/domain"

	"github.com/shopspring/decimal"
)

// DaysPerMonth approximates a month when projecting the final payment date.
const DaysPerMonth = 30

// interest is carried at this many decimal places so the running balance does
// not grow unbounded digits; the last month absorbs the leftover.
const workingPrecision = 16

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// NumPayments is the number of monthly installments for a term in years.
func NumPayments(termYears int) int {
	return termYears * 12
}

// MonthlyRate converts a fractional annual rate to its monthly counterpart.
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(twelve)
}

// MonthlyPayment returns the fixed installment that fully amortizes principal
// over termYears at annualRate:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate splits the principal evenly. termYears must be positive; a
// non-positive term yields zero.
func MonthlyPayment(principal, annualRate decimal.Decimal, termYears int) decimal.Decimal {
	n := NumPayments(termYears)
	if n <= 0 {
		return decimal.Zero
	}

	r := MonthlyRate(annualRate)
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n)))
	}

	factor := one.Add(r).Pow(decimal.NewFromInt(int64(n)))
	return principal.Mul(r).Mul(factor).Div(factor.Sub(one))
}

// Summarize computes the loan totals. The final payment date is
// now + 30 days per installment, not a calendar projection.
func Summarize(principal, annualRate decimal.Decimal, termYears int, now time.Time) domain.LoanSummary {
	n := NumPayments(termYears)
	payment := MonthlyPayment(principal, annualRate, termYears)
	total := payment.Mul(decimal.NewFromInt(int64(n)))

	return domain.LoanSummary{
		TotalPayment:       total,
		Principal:          principal,
		TotalInterest:      total.Sub(principal),
		MonthlyPayment:     payment,
		AnnualInterestRate: annualRate,
		FinalPaymentDate:   now.AddDate(0, 0, n*DaysPerMonth),
	}
}

// BuildSchedule returns one entry per month. The balance after the last entry
// is exactly zero: any residue left by rounding is folded into that month's
// principal portion.
func BuildSchedule(principal, annualRate decimal.Decimal, termYears int) []domain.AmortizationEntry {
	n := NumPayments(termYears)
	if n <= 0 {
		return nil
	}

	r := MonthlyRate(annualRate)
	payment := MonthlyPayment(principal, annualRate, termYears)

	schedule := make([]domain.AmortizationEntry, 0, n)
	balance := principal

	for month := 1; month <= n; month++ {
		interest := balance.Mul(r).Round(workingPrecision)
		principalPart := payment.Sub(interest)
		balance = balance.Sub(principalPart)

		if month == n && !balance.IsZero() {
			principalPart = principalPart.Add(balance)
			balance = decimal.Zero
		}

		schedule = append(schedule, domain.AmortizationEntry{
			Month:            month,
			MonthlyPayment:   payment,
			PrincipalPaid:    principalPart,
			InterestPaid:     interest,
			RemainingBalance: balance,
		})
	}

	return schedule
}
