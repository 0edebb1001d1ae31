package budget

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
	storagebudget "github.com/carson-networks/ledger-server/internal/storage/budget"
)

// Budget is the API response model for a budget.
// It is used only for responses, not for request bodies.
type Budget struct {
	ID        string `json:"id" doc:"Budget UUID"`
	Category  string `json:"category" doc:"Category name"`
	Allocated string `json:"allocated" doc:"Decimal allocation for the period"`
	Spent     string `json:"spent" doc:"Decimal spending accrued so far"`
	Remaining string `json:"remaining" doc:"Allocated minus spent"`
	Period    string `json:"period" doc:"Billing cycle label, e.g. Jun 2025"`
	CreatedAt string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

func fromService(b service.Budget) Budget {
	return Budget{
		ID:        b.ID.String(),
		Category:  b.Category,
		Allocated: b.Allocated.String(),
		Spent:     b.Spent.String(),
		Remaining: b.Remaining.String(),
		Period:    b.Period,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func fromStorage(b *storagebudget.Budget) Budget {
	return Budget{
		ID:        b.ID.String(),
		Category:  b.Category,
		Allocated: b.Allocated.String(),
		Spent:     b.Spent.String(),
		Remaining: b.Allocated.Sub(b.Spent).String(),
		Period:    b.Period,
	}
}

// actionProcessor runs write actions through the serialized operator
// queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
