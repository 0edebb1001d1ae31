package actions

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// TransactionDelta reports the precise entities written by a
// transaction mutation, so callers never need a broad refetch to stay
// consistent.
type TransactionDelta struct {
	// Transaction is the record after the mutation; nil for deletes.
	Transaction *transaction.Transaction

	// Account is the source account with its updated balance.
	Account *account.Account

	// OldAccount is set on updates that moved the transaction to a
	// different source account; it carries the reversed balance.
	OldAccount *account.Account

	// Budget is the forward budget side effect, nil when no budget
	// matched. OldBudget is the reversal side effect on update/delete.
	Budget    *BudgetDelta
	OldBudget *BudgetDelta
}

// BudgetDelta is a budget's spent total after propagation.
type BudgetDelta struct {
	ID    uuid.UUID
	Spent decimal.Decimal
}

func budgetDelta(applied *ledger.Applied) *BudgetDelta {
	if applied == nil || !applied.BudgetHit {
		return nil
	}
	return &BudgetDelta{ID: applied.BudgetID, Spent: applied.BudgetSpent}
}

// balanceAfter copies an account record with the balance propagation
// left behind.
func balanceAfter(acct *account.Account, balance decimal.Decimal) *account.Account {
	updated := *acct
	updated.Balance = balance
	return &updated
}
