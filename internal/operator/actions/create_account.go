package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// CreateAccount records a new account. The supplied balance becomes
// both the live balance and the starting balance that transaction
// propagation accrues on top of.
type CreateAccount struct {
	Owner         uuid.UUID
	Name          string
	Type          account.AccountType
	Balance       decimal.Decimal
	AccountNumber string
	CreditLimit   decimal.Decimal

	// Created is populated on success.
	Created *account.Account

	IAction
}

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Name == "" {
		return fmt.Errorf("name is required: %w", ledger.ErrValidation)
	}
	if a.CreditLimit.IsNegative() {
		return fmt.Errorf("creditLimit must be non-negative: %w", ledger.ErrValidation)
	}

	create := &account.AccountCreate{
		Owner:         a.Owner,
		Name:          a.Name,
		Type:          a.Type,
		Balance:       a.Balance,
		AccountNumber: a.AccountNumber,
		CreditLimit:   a.CreditLimit,
	}
	id, err := writer.Accounts.Insert(ctx, create)
	if err != nil {
		return err
	}

	a.Created = &account.Account{
		ID:              id,
		Owner:           a.Owner,
		Name:            a.Name,
		Type:            a.Type,
		Balance:         a.Balance,
		StartingBalance: a.Balance,
		AccountNumber:   a.AccountNumber,
		CreditLimit:     a.CreditLimit,
	}
	return nil
}
