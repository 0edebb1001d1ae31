package budget

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

const budgetColumns = "id, owner, category, allocated, spent, period, created_at"

// Table provides read access to the budgets table over the pool.
type Table struct {
	db *sql.DB
}

var _ ITable = (*Table)(nil)

// NewTable creates a Table for the given database.
func NewTable(db *sql.DB) *Table {
	return &Table{db: db}
}

// FindByID retrieves a budget by owner and primary key.
func (t *Table) FindByID(ctx context.Context, owner, id uuid.UUID) (*Budget, error) {
	row := t.db.QueryRowContext(ctx,
		"SELECT "+budgetColumns+" FROM budgets WHERE owner = $1 AND id = $2", owner, id)
	return scanBudget(row)
}

// List returns the owner's budgets matching the filter, newest period
// first then by category.
func (t *Table) List(ctx context.Context, owner uuid.UUID, filter *BudgetFilter) ([]*Budget, error) {
	query := "SELECT " + budgetColumns + " FROM budgets WHERE owner = $1"
	args := []any{owner}

	if filter != nil {
		if filter.Period != nil {
			args = append(args, *filter.Period)
			query += fmt.Sprintf(" AND period = $%d", len(args))
		}
		if filter.Category != nil {
			args = append(args, *filter.Category)
			query += fmt.Sprintf(" AND category = $%d", len(args))
		}
	}
	query += " ORDER BY period DESC, category ASC"

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBudget(row scanner) (*Budget, error) {
	var b Budget
	err := row.Scan(
		&b.ID,
		&b.Owner,
		&b.Category,
		&b.Allocated,
		&b.Spent,
		&b.Period,
		&b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
