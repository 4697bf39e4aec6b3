// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanProduct is a catalog entry. Amounts and rate are kept as decimals;
// AnnualInterestRate is a fraction (0.165 means 16.5%).
type LoanProduct struct {
	ID                 int
	ProductName        string
	MinimumAmount      decimal.Decimal
	MaximumAmount      decimal.Decimal
	AnnualInterestRate decimal.Decimal
}

// Validate checks the invariants a stored product must hold.
func (p LoanProduct) Validate() error {
	if p.MinimumAmount.GreaterThan(p.MaximumAmount) {
		return &ValidationError{Detail: "minimumAmount must not exceed maximumAmount"}
	}
	if p.AnnualInterestRate.IsNegative() || p.AnnualInterestRate.GreaterThan(decimal.NewFromInt(1)) {
		return &ValidationError{Detail: "annualInterestRate must be between 0 and 1"}
	}
	return nil
}

// LoanProductPatch is a partial update; nil fields are left untouched.
type LoanProductPatch struct {
	ProductName        *string
	MinimumAmount      *decimal.Decimal
	MaximumAmount      *decimal.Decimal
	AnnualInterestRate *decimal.Decimal
}

// Apply returns a copy of p with the supplied fields overwritten.
func (patch LoanProductPatch) Apply(p LoanProduct) LoanProduct {
	if patch.ProductName != nil {
		p.ProductName = *patch.ProductName
	}
	if patch.MinimumAmount != nil {
		p.MinimumAmount = *patch.MinimumAmount
	}
	if patch.MaximumAmount != nil {
		p.MaximumAmount = *patch.MaximumAmount
	}
	if patch.AnnualInterestRate != nil {
		p.AnnualInterestRate = *patch.AnnualInterestRate
	}
	return p
}

type CalculationRequest struct {
	Amount           decimal.Decimal
	ProductName      string
	TermYears        int
	CustomAnnualRate *decimal.Decimal
}

// LoanSummary holds the totals of a fixed-rate loan.
type LoanSummary struct {
	TotalPayment       decimal.Decimal
	Principal          decimal.Decimal
	TotalInterest      decimal.Decimal
	MonthlyPayment     decimal.Decimal
	AnnualInterestRate decimal.Decimal
	FinalPaymentDate   time.Time
}

// AmortizationEntry is one month of the repayment plan.
type AmortizationEntry struct {
	Month            int             `json:"month"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
	PrincipalPaid    decimal.Decimal `json:"principal_paid"`
	InterestPaid     decimal.Decimal `json:"interest_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

type CalculationResult struct {
	Product  LoanProduct
	Summary  LoanSummary
	Schedule []AmortizationEntry
}
