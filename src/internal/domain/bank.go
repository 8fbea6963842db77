package domain

import "github.com/shopspring/decimal"

// Bank lists accounts in the order they were added. Accounts stay shared with
// the caller that created them.
type Bank struct {
	name     string
	accounts []*Account
}

func NewBank(name string) *Bank {
	return &Bank{name: name}
}

func (b *Bank) Name() string {
	return b.name
}

func (b *Bank) SetName(name string) {
	b.name = name
}

// AddAccount appends account and points its bank reference at b.
func (b *Bank) AddAccount(account *Account) {
	b.accounts = append(b.accounts, account)
	account.bank = b
}

// Accounts returns a copy of the account list in insertion order.
func (b *Bank) Accounts() []*Account {
	out := make([]*Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

func (b *Bank) Len() int {
	return len(b.accounts)
}

// AccountByOwner returns the first account held by owner.
func (b *Bank) AccountByOwner(owner string) (*Account, bool) {
	for _, account := range b.accounts {
		if account.owner == owner {
			return account, true
		}
	}

	return nil, false
}

func (b *Bank) HasAccountFor(owner string) bool {
	_, ok := b.AccountByOwner(owner)
	return ok
}

// Transfer debits source and then credits destination. When the debit fails
// the error is returned and destination is not touched.
func (b *Bank) Transfer(source, destination *Account, amount decimal.Decimal) error {
	if err := source.Debit(amount); err != nil {
		return err
	}

	destination.Credit(amount)
	return nil
}
