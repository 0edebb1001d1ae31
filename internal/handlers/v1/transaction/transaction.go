package transaction

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
	storagetx "github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	AccountID    string `json:"accountID" doc:"Account UUID"`
	Amount       string `json:"amount" doc:"Signed decimal amount, negative for debits"`
	Type         string `json:"type" enum:"credit,debit" doc:"Transaction type"`
	Category     string `json:"category" doc:"Category name"`
	SubCategory  string `json:"subCategory,omitempty" doc:"Optional sub-category"`
	Description  string `json:"description,omitempty" doc:"Merchant or free-form note"`
	Date         string `json:"date" doc:"RFC3339 transaction date"`
	BillingCycle string `json:"billingCycle" doc:"Billing cycle label, e.g. Jun 2025"`
	CreatedAt    string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

// BudgetImpact reports the budget row a mutation touched.
type BudgetImpact struct {
	ID    string `json:"id" doc:"Budget UUID"`
	Spent string `json:"spent" doc:"Decimal spent total after the mutation"`
}

// FromService converts a service transaction to the API model.
func FromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID.String(),
		AccountID:    tx.AccountID.String(),
		Amount:       tx.Amount.String(),
		Type:         tx.Type.String(),
		Category:     tx.Category,
		SubCategory:  tx.SubCategory,
		Description:  tx.Description,
		Date:         tx.Date.Format(time.RFC3339),
		BillingCycle: tx.BillingCycle,
		CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
	}
}

func fromStorage(tx *storagetx.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID.String(),
		AccountID:    tx.AccountID.String(),
		Amount:       tx.Amount.String(),
		Type:         tx.Type.String(),
		Category:     tx.Category,
		SubCategory:  tx.SubCategory,
		Description:  tx.Description,
		Date:         tx.Date.Format(time.RFC3339),
		BillingCycle: tx.BillingCycle,
	}
}

// actionProcessor runs write actions through the serialized operator
// queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
