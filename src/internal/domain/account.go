package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account is a holder's balance. The balance only moves through Debit and
// Credit.
type Account struct {
	owner   string
	balance decimal.Decimal
	bank    *Bank
}

func NewAccount(owner string, balance decimal.Decimal) *Account {
	return &Account{
		owner:   owner,
		balance: balance,
	}
}

func (a *Account) Owner() string {
	return a.owner
}

func (a *Account) SetOwner(owner string) {
	a.owner = owner
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// BalanceString renders the balance without an exponent, keeping its scale.
func (a *Account) BalanceString() string {
	return PlainString(a.balance)
}

// Bank returns the bank that lists this account, or nil when the account has
// not been added to one.
func (a *Account) Bank() *Bank {
	return a.bank
}

// Debit subtracts amount from the balance. A debit that would leave the
// balance below zero is rejected and the balance is left untouched.
func (a *Account) Debit(amount decimal.Decimal) error {
	next := a.balance.Sub(amount)
	if next.LessThan(decimal.Zero) {
		return &InsufficientFundsError{
			Owner:   a.owner,
			Balance: a.balance,
			Amount:  amount,
		}
	}

	a.balance = next
	return nil
}

func (a *Account) Credit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// Equal reports whether both accounts have an owner and the same owner and
// balance. Balances must match in value and scale, so 2500 and 2500.00
// differ. The bank reference is not compared.
func (a *Account) Equal(other *Account) bool {
	if a == nil || other == nil {
		return false
	}
	if a.owner == "" || other.owner == "" {
		return false
	}

	return a.owner == other.owner &&
		a.balance.Equal(other.balance) &&
		a.balance.Exponent() == other.balance.Exponent()
}

func (a *Account) String() string {
	return fmt.Sprintf("Account [owner=%s, balance=%s]", a.owner, a.BalanceString())
}

// PlainString formats d with exactly as many fraction digits as its scale.
// Sums and differences take the larger scale of their operands.
func PlainString(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}

	return d.String()
}
