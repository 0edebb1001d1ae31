package budget

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Writer provides write access to the budgets table inside one
// database transaction.
type Writer struct {
	tx *sql.Tx
}

var _ IWriter = (*Writer)(nil)

// NewWriter creates a Writer bound to the given transaction.
func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{tx: tx}
}

// Insert creates a budget with spent zero and returns its generated
// ID.
func (w *Writer) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := w.tx.QueryRowContext(ctx,
		`INSERT INTO budgets (owner, category, allocated, spent, period)
		 VALUES ($1, $2, $3, 0, $4) RETURNING id`,
		create.Owner, create.Category, create.Allocated, create.Period,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Find retrieves a budget by owner and ID.
func (w *Writer) Find(ctx context.Context, owner, id uuid.UUID) (*Budget, error) {
	row := w.tx.QueryRowContext(ctx,
		"SELECT "+budgetColumns+" FROM budgets WHERE owner = $1 AND id = $2", owner, id)
	return scanBudget(row)
}

// FindByCategoryPeriod retrieves the unique budget for a category and
// period, if any.
func (w *Writer) FindByCategoryPeriod(ctx context.Context, owner uuid.UUID, category, period string) (*Budget, error) {
	row := w.tx.QueryRowContext(ctx,
		"SELECT "+budgetColumns+" FROM budgets WHERE owner = $1 AND category = $2 AND period = $3",
		owner, category, period)
	return scanBudget(row)
}

// SpentForUpdate reads and locks the spent total of the budget
// matching (owner, category, period). The bool result is false when no
// budget matches.
func (w *Writer) SpentForUpdate(ctx context.Context, owner uuid.UUID, category, period string) (uuid.UUID, decimal.Decimal, bool, error) {
	var (
		id    uuid.UUID
		spent decimal.Decimal
	)
	err := w.tx.QueryRowContext(ctx,
		"SELECT id, spent FROM budgets WHERE owner = $1 AND category = $2 AND period = $3 FOR UPDATE",
		owner, category, period).Scan(&id, &spent)
	if err == sql.ErrNoRows {
		return uuid.Nil, decimal.Zero, false, nil
	}
	if err != nil {
		return uuid.Nil, decimal.Zero, false, err
	}
	return id, spent, true, nil
}

// SetSpent writes a budget's spent total.
func (w *Writer) SetSpent(ctx context.Context, id uuid.UUID, spent decimal.Decimal) error {
	_, err := w.tx.ExecContext(ctx, "UPDATE budgets SET spent = $1 WHERE id = $2", spent, id)
	return err
}

// Delete removes a budget. Returns false when no row matched.
func (w *Writer) Delete(ctx context.Context, owner, id uuid.UUID) (bool, error) {
	res, err := w.tx.ExecContext(ctx,
		"DELETE FROM budgets WHERE owner = $1 AND id = $2", owner, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// CountByCategory reports how many budgets reference a category name.
func (w *Writer) CountByCategory(ctx context.Context, owner uuid.UUID, category string) (int64, error) {
	var n int64
	err := w.tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM budgets WHERE owner = $1 AND category = $2", owner, category).Scan(&n)
	return n, err
}
