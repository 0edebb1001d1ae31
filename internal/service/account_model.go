package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// Account represents an account in the service layer.
type Account struct {
	ID              uuid.UUID
	Name            string
	Type            account.AccountType
	Balance         decimal.Decimal
	StartingBalance decimal.Decimal
	AccountNumber   string
	CreditLimit     decimal.Decimal
	CreatedAt       time.Time
}

// CreditCardBill is the statement for one credit card and billing
// cycle. TotalBill sums the magnitudes of every transaction in the
// cycle, so payments toward the card show up as part of the statement
// activity rather than hiding charges.
type CreditCardBill struct {
	AccountID    uuid.UUID
	AccountName  string
	BillingCycle string
	TotalBill    decimal.Decimal
	Transactions []Transaction
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:              row.ID,
		Name:            row.Name,
		Type:            row.Type,
		Balance:         row.Balance,
		StartingBalance: row.StartingBalance,
		AccountNumber:   row.AccountNumber,
		CreditLimit:     row.CreditLimit,
		CreatedAt:       row.CreatedAt,
	}
}
