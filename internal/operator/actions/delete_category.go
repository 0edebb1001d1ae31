package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// DeleteCategory removes a category. Transactions and budgets
// reference categories by name, so deletion is blocked while any
// reference remains.
type DeleteCategory struct {
	Owner uuid.UUID
	ID    uuid.UUID

	IAction
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	cat, err := writer.Categories.Find(ctx, a.Owner, a.ID)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("category %s: %w", a.ID, ledger.ErrNotFound)
	}

	txRefs, err := writer.Transactions.CountByCategory(ctx, a.Owner, cat.Name)
	if err != nil {
		return err
	}
	budgetRefs, err := writer.Budgets.CountByCategory(ctx, a.Owner, cat.Name)
	if err != nil {
		return err
	}
	if txRefs > 0 || budgetRefs > 0 {
		return fmt.Errorf("category %q referenced by %d transactions and %d budgets: %w",
			cat.Name, txRefs, budgetRefs, ledger.ErrConflict)
	}

	_, err = writer.Categories.Delete(ctx, a.Owner, a.ID)
	return err
}
