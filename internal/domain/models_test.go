package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestLoanProductPatch_Apply(t *testing.T) {
	p := LoanProduct{
		ID:                 1,
		ProductName:        "Libranza",
		MinimumAmount:      d("5000000"),
		MaximumAmount:      d("50000000"),
		AnnualInterestRate: d("0.165"),
	}

	name := "Libranza Pensionados"
	rate := d("0.14")
	got := LoanProductPatch{ProductName: &name, AnnualInterestRate: &rate}.Apply(p)

	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "Libranza Pensionados", got.ProductName)
	assert.True(t, got.MinimumAmount.Equal(d("5000000")))
	assert.True(t, got.MaximumAmount.Equal(d("50000000")))
	assert.True(t, got.AnnualInterestRate.Equal(d("0.14")))
	assert.Equal(t, "Libranza", p.ProductName, "original must not change")
}

func TestLoanProduct_Validate(t *testing.T) {
	ok := LoanProduct{ProductName: "x", MinimumAmount: d("10"), MaximumAmount: d("10"), AnnualInterestRate: d("0")}
	require.NoError(t, ok.Validate())

	inverted := ok
	inverted.MinimumAmount = d("11")
	var vErr *ValidationError
	assert.True(t, errors.As(inverted.Validate(), &vErr))

	badRate := ok
	badRate.AnnualInterestRate = d("1.5")
	assert.Error(t, badRate.Validate())
}

func TestInvalidAmountError_Message(t *testing.T) {
	err := &InvalidAmountError{Amount: d("1000000"), Min: d("5000000"), Max: d("50000000")}
	assert.Equal(t,
		"Requested amount $1,000,000.00 is not within the allowed range ($5,000,000.00 - $50,000,000.00) for this loan.",
		err.Error())
}

func TestNotFoundMessages(t *testing.T) {
	assert.EqualError(t, LoanIDNotFound(9), "Loan with id 9 not found")
	assert.EqualError(t, ProductNotFound("Leasing"), "Loan product 'Leasing' not found.")
	assert.EqualError(t, NoLoanMatching("zzz"), "No loan found matching name 'zzz'")
}
