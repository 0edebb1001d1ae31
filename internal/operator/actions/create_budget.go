package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/cycle"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
)

// CreateBudget records a budget for one category and period. At most
// one budget may exist per (owner, category, period); duplicates are
// rejected. Spent starts at zero and accrues from subsequent debits.
type CreateBudget struct {
	Owner     uuid.UUID
	Category  string
	Allocated decimal.Decimal
	Period    string

	// Created is populated on success.
	Created *budget.Budget

	IAction
}

func (a *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Category == "" {
		return fmt.Errorf("category is required: %w", ledger.ErrValidation)
	}
	if a.Allocated.IsNegative() {
		return fmt.Errorf("allocated must be non-negative: %w", ledger.ErrValidation)
	}
	if _, err := cycle.ParseLabel(a.Period); err != nil {
		return fmt.Errorf("invalid period %q: %w", a.Period, ledger.ErrValidation)
	}

	known, err := writer.Categories.Exists(ctx, a.Owner, a.Category)
	if err != nil {
		return err
	}
	if !known {
		return fmt.Errorf("category %q: %w", a.Category, ledger.ErrNotFound)
	}

	existing, err := writer.Budgets.FindByCategoryPeriod(ctx, a.Owner, a.Category, a.Period)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("budget for %q in %s already exists: %w", a.Category, a.Period, ledger.ErrConflict)
	}

	id, err := writer.Budgets.Insert(ctx, &budget.BudgetCreate{
		Owner:     a.Owner,
		Category:  a.Category,
		Allocated: a.Allocated,
		Period:    a.Period,
	})
	if err != nil {
		return err
	}

	a.Created = &budget.Budget{
		ID:        id,
		Owner:     a.Owner,
		Category:  a.Category,
		Allocated: a.Allocated,
		Spent:     decimal.Zero,
		Period:    a.Period,
	}
	return nil
}
