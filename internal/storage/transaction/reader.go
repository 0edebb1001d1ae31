package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

const transactionColumns = "id, owner, account_id, amount, type, category, sub_category, description, tx_date, billing_cycle, created_at"

// Table provides read access to the transactions table over the pool.
type Table struct {
	db *sql.DB
}

var _ ITable = (*Table)(nil)

// NewTable creates a Table for the given database.
func NewTable(db *sql.DB) *Table {
	return &Table{db: db}
}

// FindByID retrieves a transaction by owner and primary key.
func (t *Table) FindByID(ctx context.Context, owner, id uuid.UUID) (*Transaction, error) {
	row := t.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE owner = $1 AND id = $2", owner, id)
	return scanTransaction(row)
}

// List returns the owner's transactions matching the filter, newest
// first.
func (t *Table) List(ctx context.Context, owner uuid.UUID, filter *TransactionFilter) ([]*Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE owner = $1"
	args := []any{owner}

	if filter != nil {
		if filter.AccountID != nil {
			args = append(args, *filter.AccountID)
			query += fmt.Sprintf(" AND account_id = $%d", len(args))
		}
		if filter.Category != nil {
			args = append(args, *filter.Category)
			query += fmt.Sprintf(" AND category = $%d", len(args))
		}
		if filter.BillingCycle != nil {
			args = append(args, *filter.BillingCycle)
			query += fmt.Sprintf(" AND billing_cycle = $%d", len(args))
		}
		if filter.From != nil {
			args = append(args, *filter.From)
			query += fmt.Sprintf(" AND tx_date >= $%d", len(args))
		}
		if filter.To != nil {
			args = append(args, *filter.To)
			query += fmt.Sprintf(" AND tx_date < $%d", len(args))
		}
	}
	query += " ORDER BY tx_date DESC, created_at DESC, id DESC"

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*Transaction, error) {
	var tx Transaction
	err := row.Scan(
		&tx.ID,
		&tx.Owner,
		&tx.AccountID,
		&tx.Amount,
		&tx.Type,
		&tx.Category,
		&tx.SubCategory,
		&tx.Description,
		&tx.Date,
		&tx.BillingCycle,
		&tx.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
