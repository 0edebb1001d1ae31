package transaction

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
)

// Writer provides write access to the transactions table inside one
// database transaction.
type Writer struct {
	tx *sql.Tx
}

var _ IWriter = (*Writer)(nil)

// NewWriter creates a Writer bound to the given transaction.
func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{tx: tx}
}

// Insert creates a transaction record and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := w.tx.QueryRowContext(ctx,
		`INSERT INTO transactions (owner, account_id, amount, type, category, sub_category, description, tx_date, billing_cycle)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		create.Owner, create.AccountID, create.Amount, int16(create.Type),
		create.Category, create.SubCategory, create.Description,
		create.Date, create.BillingCycle,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// FindForUpdate retrieves a transaction by owner and ID, locking the
// row for the remainder of the database transaction.
func (w *Writer) FindForUpdate(ctx context.Context, owner, id uuid.UUID) (*Transaction, error) {
	row := w.tx.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE owner = $1 AND id = $2 FOR UPDATE", owner, id)
	return scanTransaction(row)
}

// Update replaces a transaction's mutable fields.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	_, err := w.tx.ExecContext(ctx,
		`UPDATE transactions
		 SET account_id = $1, amount = $2, type = $3, category = $4,
		     sub_category = $5, description = $6, tx_date = $7, billing_cycle = $8
		 WHERE id = $9`,
		update.AccountID, update.Amount, int16(update.Type), update.Category,
		update.SubCategory, update.Description, update.Date, update.BillingCycle, id)
	return err
}

// Delete removes a transaction record.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := w.tx.ExecContext(ctx, "DELETE FROM transactions WHERE id = $1", id)
	return err
}

// CountByAccount reports how many transactions reference an account.
func (w *Writer) CountByAccount(ctx context.Context, owner, accountID uuid.UUID) (int64, error) {
	var n int64
	err := w.tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM transactions WHERE owner = $1 AND account_id = $2", owner, accountID).Scan(&n)
	return n, err
}

// CountByCategory reports how many transactions reference a category
// name.
func (w *Writer) CountByCategory(ctx context.Context, owner uuid.UUID, category string) (int64, error) {
	var n int64
	err := w.tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM transactions WHERE owner = $1 AND category = $2", owner, category).Scan(&n)
	return n, err
}
