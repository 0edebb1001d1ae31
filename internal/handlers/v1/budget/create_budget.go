package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	Category  string `json:"category" required:"true" doc:"Category name"`
	Allocated string `json:"allocated" required:"true" doc:"Non-negative decimal allocation"`
	Period    string `json:"period" required:"true" doc:"Billing cycle label, e.g. Jun 2025"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Status int
	Body   Budget
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	Operator actionProcessor
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(op actionProcessor) *CreateBudgetHandler {
	return &CreateBudgetHandler{Operator: op}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/v1/budget",
		Summary:       "Create budget",
		Description:   "Creates a budget for one category and billing cycle. Duplicates are rejected.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	owner, err := identity.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	allocated, err := decimal.NewFromString(input.Body.Allocated)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid allocated", err)
	}

	action := &actions.CreateBudget{
		Owner:     owner,
		Category:  input.Body.Category,
		Allocated: allocated,
		Period:    input.Body.Period,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromError("failed to create budget", err)
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body:   fromStorage(action.Created),
	}, nil
}
