package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	Owner          string `json:"owner"`
	InitialBalance string `json:"initialBalance,omitempty"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Owner) == "" {
		errs = append(errs, "owner is required")
	}

	if balance := strings.TrimSpace(r.InitialBalance); balance != "" {
		parsed, err := decimal.NewFromString(balance)
		if err != nil {
			errs = append(errs, "initialBalance must be numeric")
		} else if parsed.IsNegative() {
			errs = append(errs, "initialBalance cannot be negative")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// AmountRequest moves amount in or out of the account held by Owner.
type AmountRequest struct {
	Owner  string `json:"owner"`
	Amount string `json:"amount"`
}

func (r AmountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Owner) == "" {
		errs = append(errs, "owner is required")
	}
	errs = append(errs, validateAmount(r.Amount)...)

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type AccountResponse struct {
	Owner    string `json:"owner"`
	Balance  string `json:"balance"`
	BankName string `json:"bankName,omitempty"`
}

type AmountResponse struct {
	Owner   string `json:"owner"`
	Amount  string `json:"amount"`
	Balance string `json:"balance"`
}

// ParsedAmount returns the amount as a decimal, failing with the same message
// Validate reports for it.
func (r AmountRequest) ParsedAmount() (decimal.Decimal, error) {
	return parseAmount(r.Amount)
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(raw)
	if amount == "" {
		return decimal.Zero, errors.New("amount is required")
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, errors.New("amount must be numeric")
	}
	if parsed.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.New("amount must be greater than zero")
	}

	return parsed, nil
}

func validateAmount(raw string) []string {
	if _, err := parseAmount(raw); err != nil {
		return []string{err.Error()}
	}

	return nil
}
