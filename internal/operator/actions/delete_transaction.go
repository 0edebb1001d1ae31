package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// DeleteTransaction removes a transaction after reversing its effect
// on the account balance and any matching budget.
type DeleteTransaction struct {
	Owner uuid.UUID
	ID    uuid.UUID

	// Delta is populated on success; Delta.Transaction is nil.
	Delta TransactionDelta

	IAction
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindForUpdate(ctx, a.Owner, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("transaction %s: %w", a.ID, ledger.ErrNotFound)
	}

	reversed, err := ledger.Reverse(ctx, writer.Accounts, writer.Budgets, effectOf(existing))
	if err != nil {
		return err
	}

	if err := writer.Transactions.Delete(ctx, a.ID); err != nil {
		return err
	}

	acct, err := writer.Accounts.FindForUpdate(ctx, a.Owner, existing.AccountID)
	if err != nil {
		return err
	}
	a.Delta = TransactionDelta{
		Account:   acct,
		OldBudget: budgetDelta(reversed),
	}
	return nil
}
