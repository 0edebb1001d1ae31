// Package ledger is the balance propagation engine: it applies and
// reverses a transaction's numeric effect on an account balance and,
// for debits, on the matching budget's spent total.
//
// The engine never decides sign conventions. Stored amounts are signed
// at normalization time (positive credit, negative debit), so applying
// an effect is always a single addition regardless of account type.
// Reverse is the exact inverse; Reverse immediately after Apply
// restores the prior state.
package ledger

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Effect is the numeric footprint of one transaction, captured from
// the record being applied or reversed. For updates the caller builds
// one Effect from the existing record and one from the new fields so
// that reversal uses the references resolved at apply time.
type Effect struct {
	Owner     uuid.UUID
	AccountID uuid.UUID
	Amount    decimal.Decimal // signed: positive credit, negative debit
	Debit     bool
	Category  string
	Cycle     string
}

// AccountBalances is the slice of account storage the engine mutates.
// The bool result reports whether the account row exists.
type AccountBalances interface {
	BalanceForUpdate(ctx context.Context, owner, accountID uuid.UUID) (decimal.Decimal, bool, error)
	SetBalance(ctx context.Context, accountID uuid.UUID, balance decimal.Decimal) error
}

// BudgetSpend is the slice of budget storage the engine mutates.
// The bool result reports whether a budget matches (owner, category,
// period) — no match is a normal branch, not an error.
type BudgetSpend interface {
	SpentForUpdate(ctx context.Context, owner uuid.UUID, category, period string) (uuid.UUID, decimal.Decimal, bool, error)
	SetSpent(ctx context.Context, budgetID uuid.UUID, spent decimal.Decimal) error
}

// Applied reports the state written by Apply or Reverse, so callers
// can return the precise delta instead of refetching collections.
type Applied struct {
	AccountBalance decimal.Decimal
	BudgetID       uuid.UUID
	BudgetSpent    decimal.Decimal
	BudgetHit      bool
}

// SignedAmount normalizes a user-entered magnitude to the stored
// signed amount: positive for credits, negative for debits.
func SignedAmount(magnitude decimal.Decimal, debit bool) decimal.Decimal {
	if debit {
		return magnitude.Abs().Neg()
	}
	return magnitude.Abs()
}

// Apply adds the effect's signed amount to the account balance and,
// for debits, adds the magnitude to the matching budget's spent.
// A missing account is a precondition failure: the caller must have
// validated existence inside the same transaction.
func Apply(ctx context.Context, accounts AccountBalances, budgets BudgetSpend, eff Effect) (*Applied, error) {
	return propagate(ctx, accounts, budgets, eff, false)
}

// Reverse subtracts the effect, exactly undoing a prior Apply.
// Spent is floored at zero in case external edits pushed it below the
// reversible amount.
func Reverse(ctx context.Context, accounts AccountBalances, budgets BudgetSpend, eff Effect) (*Applied, error) {
	return propagate(ctx, accounts, budgets, eff, true)
}

func propagate(ctx context.Context, accounts AccountBalances, budgets BudgetSpend, eff Effect, reverse bool) (*Applied, error) {
	balance, found, err := accounts.BalanceForUpdate(ctx, eff.Owner, eff.AccountID)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", eff.AccountID, err)
	}
	if !found {
		return nil, fmt.Errorf("account %s: %w", eff.AccountID, ErrNotFound)
	}

	delta := eff.Amount
	if reverse {
		delta = delta.Neg()
	}
	newBalance := balance.Add(delta)
	if err := accounts.SetBalance(ctx, eff.AccountID, newBalance); err != nil {
		return nil, fmt.Errorf("account %s: %w", eff.AccountID, err)
	}

	applied := &Applied{AccountBalance: newBalance}
	if !eff.Debit {
		return applied, nil
	}

	budgetID, spent, found, err := budgets.SpentForUpdate(ctx, eff.Owner, eff.Category, eff.Cycle)
	if err != nil {
		return nil, fmt.Errorf("budget %s %s: %w", eff.Category, eff.Cycle, err)
	}
	if !found {
		return applied, nil
	}

	magnitude := eff.Amount.Abs()
	var newSpent decimal.Decimal
	if reverse {
		newSpent = spent.Sub(magnitude)
		if newSpent.IsNegative() {
			newSpent = decimal.Zero
		}
	} else {
		newSpent = spent.Add(magnitude)
	}
	if err := budgets.SetSpent(ctx, budgetID, newSpent); err != nil {
		return nil, fmt.Errorf("budget %s %s: %w", eff.Category, eff.Cycle, err)
	}

	applied.BudgetID = budgetID
	applied.BudgetSpent = newSpent
	applied.BudgetHit = true
	return applied, nil
}
