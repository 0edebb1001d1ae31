package account

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Writer provides write access to the accounts table inside one
// database transaction.
type Writer struct {
	tx *sql.Tx
}

var _ IWriter = (*Writer)(nil)

// NewWriter creates a Writer bound to the given transaction.
func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{tx: tx}
}

// Insert creates a new account and returns its generated ID. The
// starting balance is recorded alongside the live balance so the
// balance invariant stays checkable later.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := w.tx.QueryRowContext(ctx,
		`INSERT INTO accounts (owner, name, type, balance, starting_balance, account_number, credit_limit)
		 VALUES ($1, $2, $3, $4, $4, $5, $6) RETURNING id`,
		create.Owner, create.Name, int16(create.Type), create.Balance,
		create.AccountNumber, create.CreditLimit,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// FindForUpdate retrieves an account by owner and ID, locking the row
// for the remainder of the transaction.
func (w *Writer) FindForUpdate(ctx context.Context, owner, id uuid.UUID) (*Account, error) {
	row := w.tx.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE owner = $1 AND id = $2 FOR UPDATE", owner, id)
	return scanAccount(row)
}

// BalanceForUpdate reads and locks an account's balance.
func (w *Writer) BalanceForUpdate(ctx context.Context, owner, id uuid.UUID) (decimal.Decimal, bool, error) {
	acc, err := w.FindForUpdate(ctx, owner, id)
	if err != nil {
		return decimal.Zero, false, err
	}
	if acc == nil {
		return decimal.Zero, false, nil
	}
	return acc.Balance, true, nil
}

// SetBalance writes an account's balance.
func (w *Writer) SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	_, err := w.tx.ExecContext(ctx,
		"UPDATE accounts SET balance = $1 WHERE id = $2", balance, id)
	return err
}

// Update writes the user-editable fields and returns the updated row.
func (w *Writer) Update(ctx context.Context, owner, id uuid.UUID, update *AccountUpdate) (*Account, error) {
	row := w.tx.QueryRowContext(ctx,
		`UPDATE accounts SET name = $1, account_number = $2, credit_limit = $3
		 WHERE owner = $4 AND id = $5
		 RETURNING `+accountColumns,
		update.Name, update.AccountNumber, update.CreditLimit, owner, id)
	return scanAccount(row)
}

// Delete removes an account. Returns false when no row matched.
func (w *Writer) Delete(ctx context.Context, owner, id uuid.UUID) (bool, error) {
	res, err := w.tx.ExecContext(ctx,
		"DELETE FROM accounts WHERE owner = $1 AND id = $2", owner, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
