package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes credits (income) from debits
// (expenses). The stored amount's sign always matches: positive for
// credits, negative for debits.
type TransactionType int8

const (
	TransactionTypeCredit TransactionType = iota
	TransactionTypeDebit
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeCredit:
		return "credit"
	case TransactionTypeDebit:
		return "debit"
	}
	return "unknown"
}

// TypeFromString parses the wire representation of a transaction type.
func TypeFromString(s string) (TransactionType, error) {
	switch s {
	case "credit":
		return TransactionTypeCredit, nil
	case "debit":
		return TransactionTypeDebit, nil
	}
	return 0, fmt.Errorf("invalid transaction type %q", s)
}

// Transaction represents a transaction record.
type Transaction struct {
	ID           uuid.UUID
	Owner        uuid.UUID
	AccountID    uuid.UUID
	Amount       decimal.Decimal // signed
	Type         TransactionType
	Category     string
	SubCategory  string
	Description  string
	Date         time.Time
	BillingCycle string
	CreatedAt    time.Time
}

// TransactionCreate is the input for inserting a transaction. Amount
// must already be normalized to the signed convention and BillingCycle
// resolved from Date.
type TransactionCreate struct {
	Owner        uuid.UUID
	AccountID    uuid.UUID
	Amount       decimal.Decimal
	Type         TransactionType
	Category     string
	SubCategory  string
	Description  string
	Date         time.Time
	BillingCycle string
}

// TransactionUpdate carries the replacement fields for an update.
type TransactionUpdate struct {
	AccountID    uuid.UUID
	Amount       decimal.Decimal
	Type         TransactionType
	Category     string
	SubCategory  string
	Description  string
	Date         time.Time
	BillingCycle string
}

// TransactionFilter narrows List results. Nil fields are ignored.
type TransactionFilter struct {
	AccountID    *uuid.UUID
	Category     *string
	BillingCycle *string
	From         *time.Time
	To           *time.Time
}

// ITable defines read access to the transactions table.
type ITable interface {
	FindByID(ctx context.Context, owner, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, owner uuid.UUID, filter *TransactionFilter) ([]*Transaction, error)
}

// IWriter defines transactional write access to the transactions table.
type IWriter interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, owner, id uuid.UUID) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByAccount(ctx context.Context, owner, accountID uuid.UUID) (int64, error)
	CountByCategory(ctx context.Context, owner uuid.UUID, category string) (int64, error)
}
