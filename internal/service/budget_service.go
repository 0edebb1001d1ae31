package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
)

// Budget represents a budget in the service layer. Remaining is
// derived, never stored.
type Budget struct {
	ID        uuid.UUID
	Category  string
	Allocated decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Period    string
	CreatedAt time.Time
}

// BudgetFilter narrows budget listings. Nil fields match everything.
type BudgetFilter struct {
	Period   *string
	Category *string
}

// BudgetService handles budget read logic.
type BudgetService struct {
	storage *storage.Storage
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

// ListBudgets returns the owner's budgets matching the filter.
func (s *BudgetService) ListBudgets(ctx context.Context, owner uuid.UUID, filter *BudgetFilter) ([]Budget, error) {
	var storageFilter *budget.BudgetFilter
	if filter != nil {
		storageFilter = &budget.BudgetFilter{
			Period:   filter.Period,
			Category: filter.Category,
		}
	}

	rows, err := s.storage.Budgets.List(ctx, owner, storageFilter)
	if err != nil {
		return nil, err
	}

	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budgets[i] = budgetFromStorage(row)
	}
	return budgets, nil
}

// GetBudget returns one budget by ID.
func (s *BudgetService) GetBudget(ctx context.Context, owner, id uuid.UUID) (*Budget, error) {
	row, err := s.storage.Budgets.FindByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("budget %s: %w", id, ledger.ErrNotFound)
	}

	converted := budgetFromStorage(row)
	return &converted, nil
}

func budgetFromStorage(row *budget.Budget) Budget {
	return Budget{
		ID:        row.ID,
		Category:  row.Category,
		Allocated: row.Allocated,
		Spent:     row.Spent,
		Remaining: row.Allocated.Sub(row.Spent),
		Period:    row.Period,
		CreatedAt: row.CreatedAt,
	}
}
