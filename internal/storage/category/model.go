package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category is a named tag scoped to an owner. Transactions and budgets
// reference it by name, so deletion is blocked while references exist.
type Category struct {
	ID        uuid.UUID
	Owner     uuid.UUID
	Name      string
	CreatedAt time.Time
}

// CategoryCreate is the input for creating a category.
type CategoryCreate struct {
	Owner uuid.UUID
	Name  string
}

// ITable defines read access to the categories table.
type ITable interface {
	List(ctx context.Context, owner uuid.UUID) ([]*Category, error)
}

// IWriter defines transactional write access to the categories table.
type IWriter interface {
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	Find(ctx context.Context, owner, id uuid.UUID) (*Category, error)
	Exists(ctx context.Context, owner uuid.UUID, name string) (bool, error)
	Delete(ctx context.Context, owner, id uuid.UUID) (bool, error)
}
