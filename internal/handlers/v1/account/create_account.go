package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	storageacct "github.com/carson-networks/ledger-server/internal/storage/account"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name          string `json:"name" required:"true" doc:"Display name"`
	Type          string `json:"type" required:"true" enum:"bank,credit-card" doc:"Account type"`
	Balance       string `json:"balance" doc:"Opening decimal balance, defaults to 0"`
	AccountNumber string `json:"accountNumber" doc:"Masked account number"`
	CreditLimit   string `json:"creditLimit" doc:"Credit limit for credit cards, defaults to 0"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create account",
		Description:   "Creates a new account. The opening balance becomes its starting balance.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseDecimalField parses an optional decimal body field, defaulting
// to zero.
func parseDecimalField(raw, name string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return value, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	owner, err := identity.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	accountType, err := storageacct.TypeFromString(input.Body.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}
	balance, err := parseDecimalField(input.Body.Balance, "balance")
	if err != nil {
		return nil, err
	}
	creditLimit, err := parseDecimalField(input.Body.CreditLimit, "creditLimit")
	if err != nil {
		return nil, err
	}

	action := &actions.CreateAccount{
		Owner:         owner,
		Name:          input.Body.Name,
		Type:          accountType,
		Balance:       balance,
		AccountNumber: input.Body.AccountNumber,
		CreditLimit:   creditLimit,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromError("failed to create account", err)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   fromStorage(action.Created),
	}, nil
}
