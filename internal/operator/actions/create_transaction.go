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

// CreateTransaction records a transaction and propagates its effect.
// Amount is the non-negative magnitude entered by the user; the signed
// stored amount is derived from Type.
type CreateTransaction struct {
	Owner       uuid.UUID
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

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", ledger.ErrValidation)
	}
	if a.Category == "" {
		return fmt.Errorf("category is required: %w", ledger.ErrValidation)
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

	signed := ledger.SignedAmount(a.Amount, a.Type == transaction.TransactionTypeDebit)
	billingCycle := cycle.Resolve(a.Date)

	create := &transaction.TransactionCreate{
		Owner:        a.Owner,
		AccountID:    a.AccountID,
		Amount:       signed,
		Type:         a.Type,
		Category:     a.Category,
		SubCategory:  a.SubCategory,
		Description:  a.Description,
		Date:         a.Date,
		BillingCycle: billingCycle,
	}
	id, err := writer.Transactions.Insert(ctx, create)
	if err != nil {
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
			ID:           id,
			Owner:        a.Owner,
			AccountID:    a.AccountID,
			Amount:       signed,
			Type:         a.Type,
			Category:     a.Category,
			SubCategory:  a.SubCategory,
			Description:  a.Description,
			Date:         a.Date,
			BillingCycle: billingCycle,
		},
		Account: balanceAfter(acct, applied.AccountBalance),
		Budget:  budgetDelta(applied),
	}
	return nil
}
