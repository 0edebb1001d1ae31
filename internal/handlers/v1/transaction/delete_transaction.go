package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

// DeleteTransactionResponseBody reports the state restored by the
// delete.
type DeleteTransactionResponseBody struct {
	AccountBalance string        `json:"accountBalance" doc:"Source account balance after reversal"`
	Budget         *BudgetImpact `json:"budget,omitempty" doc:"Budget the reversal touched, if any"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponseBody
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}.
type DeleteTransactionHandler struct {
	Operator actionProcessor
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(op actionProcessor) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Operator: op}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}",
		Summary:     "Delete transaction",
		Description: "Deletes a transaction after reversing its effect on the account and any budget.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	owner, err := identity.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	action := &actions.DeleteTransaction{Owner: owner, ID: id}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromError("failed to delete transaction", err)
	}

	body := DeleteTransactionResponseBody{
		AccountBalance: action.Delta.Account.Balance.String(),
	}
	if action.Delta.OldBudget != nil {
		body.Budget = &BudgetImpact{
			ID:    action.Delta.OldBudget.ID.String(),
			Spent: action.Delta.OldBudget.Spent.String(),
		}
	}
	return &DeleteTransactionOutput{Body: body}, nil
}
