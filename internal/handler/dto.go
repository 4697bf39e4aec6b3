// internal/handler/dto.go
package handler

import (
	"loan-catalog/internal/domain"
	"loan-catalog/internal/money"

	"github.com/shopspring/decimal"
)

// === requests ===

type CreateLoanRequest struct {
	ProductName        string   `json:"productName" validate:"required,notblank"`
	MinimumAmount      *float64 `json:"minimumAmount" validate:"required,gte=0"`
	MaximumAmount      *float64 `json:"maximumAmount" validate:"required,gte=0"`
	AnnualInterestRate *float64 `json:"annualInterestRate" validate:"required,gte=0,lte=1"`
}

func (r CreateLoanRequest) toDomain() domain.LoanProduct {
	return domain.LoanProduct{
		ProductName:        r.ProductName,
		MinimumAmount:      decimal.NewFromFloat(*r.MinimumAmount),
		MaximumAmount:      decimal.NewFromFloat(*r.MaximumAmount),
		AnnualInterestRate: decimal.NewFromFloat(*r.AnnualInterestRate),
	}
}

// UpdateLoanRequest: only the fields present in the body are applied.
type UpdateLoanRequest struct {
	ProductName        *string  `json:"productName" validate:"omitnil,notblank"`
	MinimumAmount      *float64 `json:"minimumAmount" validate:"omitnil,gte=0"`
	MaximumAmount      *float64 `json:"maximumAmount" validate:"omitnil,gte=0"`
	AnnualInterestRate *float64 `json:"annualInterestRate" validate:"omitnil,gte=0,lte=1"`
}

func (r UpdateLoanRequest) toDomain() domain.LoanProductPatch {
	return domain.LoanProductPatch{
		ProductName:        r.ProductName,
		MinimumAmount:      decimalPtr(r.MinimumAmount),
		MaximumAmount:      decimalPtr(r.MaximumAmount),
		AnnualInterestRate: decimalPtr(r.AnnualInterestRate),
	}
}

type SearchLoansRequest struct {
	ProductName string `json:"productName" validate:"required,notblank"`
}

type CalculateLoanRequest struct {
	Amount           float64  `json:"amount" validate:"gt=0"`
	ProductName      string   `json:"productName" validate:"required,notblank"`
	TermYears        int      `json:"termYears" validate:"gt=0,lte=50"`
	CustomAnnualRate *float64 `json:"customAnnualRate" validate:"omitnil,gte=0,lte=1"`
}

func (r CalculateLoanRequest) toDomain() domain.CalculationRequest {
	return domain.CalculationRequest{
		Amount:           decimal.NewFromFloat(r.Amount),
		ProductName:      r.ProductName,
		TermYears:        r.TermYears,
		CustomAnnualRate: decimalPtr(r.CustomAnnualRate),
	}
}

func decimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

// === responses ===

type LoanResponse struct {
	ID                 int     `json:"id"`
	ProductName        string  `json:"productName"`
	MinimumAmount      float64 `json:"minimumAmount"`
	MaximumAmount      float64 `json:"maximumAmount"`
	AnnualInterestRate float64 `json:"annualInterestRate"`
}

func toLoanResponse(p domain.LoanProduct) LoanResponse {
	return LoanResponse{
		ID:                 p.ID,
		ProductName:        p.ProductName,
		MinimumAmount:      p.MinimumAmount.InexactFloat64(),
		MaximumAmount:      p.MaximumAmount.InexactFloat64(),
		AnnualInterestRate: p.AnnualInterestRate.InexactFloat64(),
	}
}

func toLoanResponses(loans []domain.LoanProduct) []LoanResponse {
	out := make([]LoanResponse, len(loans))
	for i, p := range loans {
		out[i] = toLoanResponse(p)
	}
	return out
}

type SummaryResponse struct {
	TotalPayment       string `json:"totalPayment"`
	Principal          string `json:"principal"`
	TotalInterest      string `json:"totalInterest"`
	MonthlyPayment     string `json:"monthlyPayment"`
	AnnualInterestRate string `json:"annualInterestRate"`
	FinalPaymentDate   string `json:"finalPaymentDate"`
}

func toSummaryResponse(s domain.LoanSummary) SummaryResponse {
	return SummaryResponse{
		TotalPayment:       money.Currency(s.TotalPayment),
		Principal:          money.Currency(s.Principal),
		TotalInterest:      money.Currency(s.TotalInterest),
		MonthlyPayment:     money.Currency(s.MonthlyPayment),
		AnnualInterestRate: money.Percent(s.AnnualInterestRate),
		FinalPaymentDate:   s.FinalPaymentDate.Format(money.Date),
	}
}

type AmortizationEntryResponse struct {
	Month            int    `json:"month"`
	MonthlyPayment   string `json:"monthlyPayment"`
	PrincipalPaid    string `json:"principalPaid"`
	InterestPaid     string `json:"interestPaid"`
	RemainingBalance string `json:"remainingBalance"`
}

func toScheduleResponse(schedule []domain.AmortizationEntry) []AmortizationEntryResponse {
	out := make([]AmortizationEntryResponse, len(schedule))
	for i, e := range schedule {
		out[i] = AmortizationEntryResponse{
			Month:            e.Month,
			MonthlyPayment:   money.Currency(e.MonthlyPayment),
			PrincipalPaid:    money.Currency(e.PrincipalPaid),
			InterestPaid:     money.Currency(e.InterestPaid),
			RemainingBalance: money.Currency(e.RemainingBalance),
		}
	}
	return out
}
