package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// DeleteAccount removes an account. Deletion is blocked while any
// transaction references the account, mirroring the category rule, so
// the transaction log never dangles.
type DeleteAccount struct {
	Owner uuid.UUID
	ID    uuid.UUID

	IAction
}

func (a *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	acct, err := writer.Accounts.FindForUpdate(ctx, a.Owner, a.ID)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("account %s: %w", a.ID, ledger.ErrNotFound)
	}

	refs, err := writer.Transactions.CountByAccount(ctx, a.Owner, a.ID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("account %s has %d transactions: %w", a.ID, refs, ledger.ErrConflict)
	}

	_, err = writer.Accounts.Delete(ctx, a.Owner, a.ID)
	return err
}
