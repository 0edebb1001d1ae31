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

// UpdateAccount edits an account's name, number, and credit limit.
// Balance is deliberately not editable here; it only moves through
// transaction propagation.
type UpdateAccount struct {
	Owner         uuid.UUID
	ID            uuid.UUID
	Name          string
	AccountNumber string
	CreditLimit   decimal.Decimal

	// Updated is populated on success.
	Updated *account.Account

	IAction
}

func (a *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Name == "" {
		return fmt.Errorf("name is required: %w", ledger.ErrValidation)
	}
	if a.CreditLimit.IsNegative() {
		return fmt.Errorf("creditLimit must be non-negative: %w", ledger.ErrValidation)
	}

	updated, err := writer.Accounts.Update(ctx, a.Owner, a.ID, &account.AccountUpdate{
		Name:          a.Name,
		AccountNumber: a.AccountNumber,
		CreditLimit:   a.CreditLimit,
	})
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("account %s: %w", a.ID, ledger.ErrNotFound)
	}

	a.Updated = updated
	return nil
}
