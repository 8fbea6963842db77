package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInsufficientFunds = errors.New("Insufficient funds")

// InsufficientFundsError is returned by Account.Debit when the balance cannot
// cover the amount.
type InsufficientFundsError struct {
	Owner   string
	Balance decimal.Decimal
	Amount  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return ErrInsufficientFunds.Error()
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
