package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
)

const categoryColumns = "id, owner, name, created_at"

// Table provides read access to the categories table over the pool.
type Table struct {
	db *sql.DB
}

var _ ITable = (*Table)(nil)

// NewTable creates a Table for the given database.
func NewTable(db *sql.DB) *Table {
	return &Table{db: db}
}

// List returns the owner's categories ordered by name.
func (t *Table) List(ctx context.Context, owner uuid.UUID) ([]*Category, error) {
	rows, err := t.db.QueryContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE owner = $1 ORDER BY name ASC", owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(row scanner) (*Category, error) {
	var c Category
	err := row.Scan(&c.ID, &c.Owner, &c.Name, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
