package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// UpdateAccountBody is the request body for updating an account.
// Balance is absent on purpose: it only moves through transactions.
type UpdateAccountBody struct {
	Name          string `json:"name" required:"true" doc:"Display name"`
	AccountNumber string `json:"accountNumber" doc:"Masked account number"`
	CreditLimit   string `json:"creditLimit" doc:"Credit limit for credit cards"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body UpdateAccountBody
}

// UpdateAccountOutput is the Huma output for updating an account.
type UpdateAccountOutput struct {
	Body Account
}

// UpdateAccountHandler handles PUT /v1/account/{id}.
type UpdateAccountHandler struct {
	Operator actionProcessor
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(op actionProcessor) *UpdateAccountHandler {
	return &UpdateAccountHandler{Operator: op}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/v1/account/{id}",
		Summary:     "Update account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	owner, err := identity.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}
	creditLimit, err := parseDecimalField(input.Body.CreditLimit, "creditLimit")
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateAccount{
		Owner:         owner,
		ID:            id,
		Name:          input.Body.Name,
		AccountNumber: input.Body.AccountNumber,
		CreditLimit:   creditLimit,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromError("failed to update account", err)
	}

	return &UpdateAccountOutput{Body: fromStorage(action.Updated)}, nil
}
