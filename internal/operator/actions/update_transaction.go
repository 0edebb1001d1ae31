package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/cycle"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// UpdateTransaction replaces a transaction's fields and re-propagates
// its effect: the existing effect is reversed against the references
// resolved when it was applied, then the new effect is applied fresh.
// Reverse-then-apply rather than diffing keeps the account and budget
// arithmetic correct when the amount, type, account, category, or
// cycle change together.
type UpdateTransaction struct {
	Owner       uuid.UUID
	ID          uuid.UUID
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Type        transaction.TransactionType
	Category    string
	SubCategory string
	Description string
	Date        time.Time

	// Delta is populated on success.
	Delta TransactionDelta

	IAction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", ledger.ErrValidation)
	}
	if a.Category == "" {
		return fmt.Errorf("category is required: %w", ledger.ErrValidation)
	}

	existing, err := writer.Transactions.FindForUpdate(ctx, a.Owner, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("transaction %s: %w", a.ID, ledger.ErrNotFound)
	}

	acct, err := writer.Accounts.FindForUpdate(ctx, a.Owner, a.AccountID)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("account %s: %w", a.AccountID, ledger.ErrNotFound)
	}

	known, err := writer.Categories.Exists(ctx, a.Owner, a.Category)
	if err != nil {
		return err
	}
	if !known {
		return fmt.Errorf("category %q: %w", a.Category, ledger.ErrNotFound)
	}

	// Undo the old effect before the new one lands, even when the
	// source account is unchanged.
	reversed, err := ledger.Reverse(ctx, writer.Accounts, writer.Budgets, effectOf(existing))
	if err != nil {
		return err
	}

	signed := ledger.SignedAmount(a.Amount, a.Type == transaction.TransactionTypeDebit)
	billingCycle := cycle.Resolve(a.Date)

	update := &transaction.TransactionUpdate{
		AccountID:    a.AccountID,
		Amount:       signed,
		Type:         a.Type,
		Category:     a.Category,
		SubCategory:  a.SubCategory,
		Description:  a.Description,
		Date:         a.Date,
		BillingCycle: billingCycle,
	}
	if err := writer.Transactions.Update(ctx, a.ID, update); err != nil {
		return err
	}

	applied, err := ledger.Apply(ctx, writer.Accounts, writer.Budgets, ledger.Effect{
		Owner:     a.Owner,
		AccountID: a.AccountID,
		Amount:    signed,
		Debit:     a.Type == transaction.TransactionTypeDebit,
		Category:  a.Category,
		Cycle:     billingCycle,
	})
	if err != nil {
		return err
	}

	a.Delta = TransactionDelta{
		Transaction: &transaction.Transaction{
			ID:           a.ID,
			Owner:        a.Owner,
			AccountID:    a.AccountID,
			Amount:       signed,
			Type:         a.Type,
			Category:     a.Category,
			SubCategory:  a.SubCategory,
			Description:  a.Description,
			Date:         a.Date,
			BillingCycle: billingCycle,
			CreatedAt:    existing.CreatedAt,
		},
		Account:   balanceAfter(acct, applied.AccountBalance),
		Budget:    budgetDelta(applied),
		OldBudget: budgetDelta(reversed),
	}
	if existing.AccountID != a.AccountID {
		old, err := writer.Accounts.FindForUpdate(ctx, a.Owner, existing.AccountID)
		if err != nil {
			return err
		}
		if old != nil {
			a.Delta.OldAccount = old
		}
	}
	return nil
}

// effectOf captures a stored transaction's numeric footprint for
// reversal.
func effectOf(tx *transaction.Transaction) ledger.Effect {
	return ledger.Effect{
		Owner:     tx.Owner,
		AccountID: tx.AccountID,
		Amount:    tx.Amount,
		Debit:     tx.Type == transaction.TransactionTypeDebit,
		Category:  tx.Category,
		Cycle:     tx.BillingCycle,
	}
}
