package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a category budget for one billing-cycle period.
// Spent is maintained incrementally by the propagation engine; it is
// never recomputed on read.
type Budget struct {
	ID        uuid.UUID
	Owner     uuid.UUID
	Category  string
	Allocated decimal.Decimal
	Spent     decimal.Decimal
	Period    string
	CreatedAt time.Time
}

// BudgetCreate is the input for creating a budget. Spent starts at
// zero.
type BudgetCreate struct {
	Owner     uuid.UUID
	Category  string
	Allocated decimal.Decimal
	Period    string
}

// BudgetFilter narrows List results. Nil fields are ignored.
type BudgetFilter struct {
	Period   *string
	Category *string
}

// ITable defines read access to the budgets table.
type ITable interface {
	FindByID(ctx context.Context, owner, id uuid.UUID) (*Budget, error)
	List(ctx context.Context, owner uuid.UUID, filter *BudgetFilter) ([]*Budget, error)
}

// IWriter defines transactional write access to the budgets table.
type IWriter interface {
	Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error)
	Find(ctx context.Context, owner, id uuid.UUID) (*Budget, error)
	FindByCategoryPeriod(ctx context.Context, owner uuid.UUID, category, period string) (*Budget, error)
	SpentForUpdate(ctx context.Context, owner uuid.UUID, category, period string) (uuid.UUID, decimal.Decimal, bool, error)
	SetSpent(ctx context.Context, id uuid.UUID, spent decimal.Decimal) error
	Delete(ctx context.Context, owner, id uuid.UUID) (bool, error)
	CountByCategory(ctx context.Context, owner uuid.UUID, category string) (int64, error)
}
