package category

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
)

// Writer provides write access to the categories table inside one
// database transaction.
type Writer struct {
	tx *sql.Tx
}

var _ IWriter = (*Writer)(nil)

// NewWriter creates a Writer bound to the given transaction.
func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{tx: tx}
}

// Insert creates a category and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := w.tx.QueryRowContext(ctx,
		"INSERT INTO categories (owner, name) VALUES ($1, $2) RETURNING id",
		create.Owner, create.Name).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Find retrieves a category by owner and ID.
func (w *Writer) Find(ctx context.Context, owner, id uuid.UUID) (*Category, error) {
	row := w.tx.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE owner = $1 AND id = $2", owner, id)
	return scanCategory(row)
}

// Exists reports whether the owner has a category with the given name.
func (w *Writer) Exists(ctx context.Context, owner uuid.UUID, name string) (bool, error) {
	var n int64
	err := w.tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM categories WHERE owner = $1 AND name = $2", owner, name).Scan(&n)
	return n > 0, err
}

// Delete removes a category. Returns false when no row matched.
func (w *Writer) Delete(ctx context.Context, owner, id uuid.UUID) (bool, error) {
	res, err := w.tx.ExecContext(ctx,
		"DELETE FROM categories WHERE owner = $1 AND id = $2", owner, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
