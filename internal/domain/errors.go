// internal/domain/errors.go
package domain

import (
	"fmt"

	"loan-catalog/internal/money"

	"github.com/shopspring/decimal"
)

// NotFoundError means an id, product name or search term matched nothing.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }

func LoanIDNotFound(id int) error {
	return &NotFoundError{Detail: fmt.Sprintf("Loan with id %d not found", id)}
}

func ProductNotFound(name string) error {
	return &NotFoundError{Detail: fmt.Sprintf("Loan product '%s' not found.", name)}
}

func NoLoanMatching(name string) error {
	return &NotFoundError{Detail: fmt.Sprintf("No loan found matching name '%s'", name)}
}

// InvalidAmountError is returned when a requested amount falls outside the
// product's [Min, Max] range.
type InvalidAmountError struct {
	Amount decimal.Decimal
	Min    decimal.Decimal
	Max    decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("Requested amount %s is not within the allowed range (%s - %s) for this loan.",
		money.Currency(e.Amount), money.Currency(e.Min), money.Currency(e.Max))
}

// ValidationError covers inputs that pass decoding but break a domain rule.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }
