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

// UpdateTransactionInput is the Huma input for updating a transaction.
// The body fully replaces the transaction's user-editable fields.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body CreateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body CreateTransactionResponseBody
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	Operator actionProcessor
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(op actionProcessor) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Operator: op}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Replaces a transaction's fields, reversing the old effect and applying the new one.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	owner, err := identity.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	accountID, amount, txType, date, err := parseTransactionBody(&input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{
		Owner:       owner,
		ID:          id,
		AccountID:   accountID,
		Amount:      amount,
		Type:        txType,
		Category:    input.Body.Category,
		SubCategory: input.Body.SubCategory,
		Description: input.Body.Description,
		Date:        date,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromError("failed to update transaction", err)
	}

	return &UpdateTransactionOutput{Body: deltaResponse(&action.Delta)}, nil
}
