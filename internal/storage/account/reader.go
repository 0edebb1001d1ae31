package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
)

const accountColumns = "id, owner, name, type, balance, starting_balance, account_number, credit_limit, created_at"

// Table provides read access to the accounts table over the pool.
type Table struct {
	db *sql.DB
}

var _ ITable = (*Table)(nil)

// NewTable creates a Table for the given database.
func NewTable(db *sql.DB) *Table {
	return &Table{db: db}
}

// FindByID retrieves an account by owner and primary key.
func (t *Table) FindByID(ctx context.Context, owner, id uuid.UUID) (*Account, error) {
	row := t.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE owner = $1 AND id = $2", owner, id)
	return scanAccount(row)
}

// List returns the owner's accounts ordered by name.
func (t *Table) List(ctx context.Context, owner uuid.UUID) ([]*Account, error) {
	rows, err := t.db.QueryContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE owner = $1 ORDER BY name ASC, id ASC", owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, acc)
	}
	return result, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (*Account, error) {
	var acc Account
	err := row.Scan(
		&acc.ID,
		&acc.Owner,
		&acc.Name,
		&acc.Type,
		&acc.Balance,
		&acc.StartingBalance,
		&acc.AccountNumber,
		&acc.CreditLimit,
		&acc.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
