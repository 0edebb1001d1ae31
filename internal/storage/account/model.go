package account

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// AccountType distinguishes the two balance conventions: bank balances
// are funds held, credit-card balances are amounts owed.
type AccountType int8

const (
	AccountTypeBank AccountType = iota
	AccountTypeCreditCard
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeBank:
		return "bank"
	case AccountTypeCreditCard:
		return "credit-card"
	}
	return "unknown"
}

// TypeFromString parses the wire representation of an account type.
func TypeFromString(s string) (AccountType, error) {
	switch s {
	case "bank":
		return AccountTypeBank, nil
	case "credit-card":
		return AccountTypeCreditCard, nil
	}
	return 0, fmt.Errorf("invalid account type %q", s)
}

// Account represents an account record.
type Account struct {
	ID              uuid.UUID
	Owner           uuid.UUID
	Name            string
	Type            AccountType
	Balance         decimal.Decimal
	StartingBalance decimal.Decimal
	AccountNumber   string
	CreditLimit     decimal.Decimal
	CreatedAt       time.Time
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Owner         uuid.UUID
	Name          string
	Type          AccountType
	Balance       decimal.Decimal
	AccountNumber string
	CreditLimit   decimal.Decimal
}

// AccountUpdate carries the user-editable fields. Balance is absent on
// purpose: it only moves through transaction propagation.
type AccountUpdate struct {
	Name          string
	AccountNumber string
	CreditLimit   decimal.Decimal
}

// ITable defines read access to the accounts table. Lookups that miss
// return (nil, nil).
type ITable interface {
	FindByID(ctx context.Context, owner, id uuid.UUID) (*Account, error)
	List(ctx context.Context, owner uuid.UUID) ([]*Account, error)
}

// IWriter defines transactional write access to the accounts table.
// All methods run inside the caller's database transaction.
type IWriter interface {
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, owner, id uuid.UUID) (*Account, error)
	BalanceForUpdate(ctx context.Context, owner, id uuid.UUID) (decimal.Decimal, bool, error)
	SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	Update(ctx context.Context, owner, id uuid.UUID, update *AccountUpdate) (*Account, error)
	Delete(ctx context.Context, owner, id uuid.UUID) (bool, error)
}
