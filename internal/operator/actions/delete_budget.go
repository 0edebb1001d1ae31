package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// DeleteBudget removes a budget. Transactions are untouched; the
// budget simply stops tracking them.
type DeleteBudget struct {
	Owner uuid.UUID
	ID    uuid.UUID

	IAction
}

func (a *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Budgets.Delete(ctx, a.Owner, a.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("budget %s: %w", a.ID, ledger.ErrNotFound)
	}
	return nil
}
