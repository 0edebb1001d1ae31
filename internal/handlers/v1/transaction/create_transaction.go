package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	storagetx "github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID   string `json:"accountID" required:"true" doc:"Account UUID"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal magnitude"`
	Type        string `json:"type" required:"true" enum:"credit,debit" doc:"Transaction type"`
	Category    string `json:"category" required:"true" doc:"Category name"`
	SubCategory string `json:"subCategory" doc:"Optional sub-category"`
	Description string `json:"description" doc:"Merchant or free-form note"`
	Date        string `json:"date" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for creating a
// transaction. It reports the exact rows the write touched.
type CreateTransactionResponseBody struct {
	Transaction    Transaction   `json:"transaction" doc:"The created transaction"`
	AccountBalance string        `json:"accountBalance" doc:"Source account balance after the write"`
	Budget         *BudgetImpact `json:"budget,omitempty" doc:"Budget touched by the write, if any"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponseBody
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Records a transaction and propagates it to the account balance and any matching budget.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseTransactionBody validates the shared request fields and returns
// the normalized values.
func parseTransactionBody(body *CreateTransactionBody) (accountID uuid.UUID, amount decimal.Decimal, txType storagetx.TransactionType, date time.Time, err error) {
	accountID, err = uuid.FromString(body.AccountID)
	if err != nil {
		return accountID, amount, txType, date, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}
	amount, err = decimal.NewFromString(body.Amount)
	if err != nil {
		return accountID, amount, txType, date, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	txType, err = storagetx.TypeFromString(body.Type)
	if err != nil {
		return accountID, amount, txType, date, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	if body.Date != "" {
		date, err = time.Parse(time.RFC3339, body.Date)
		if err != nil {
			return accountID, amount, txType, date, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	} else {
		date = time.Now()
	}
	return accountID, amount, txType, date, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	owner, err := identity.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	accountID, amount, txType, date, err := parseTransactionBody(&input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{
		Owner:       owner,
		AccountID:   accountID,
		Amount:      amount,
		Type:        txType,
		Category:    input.Body.Category,
		SubCategory: input.Body.SubCategory,
		Description: input.Body.Description,
		Date:        date,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierror.FromError("failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   deltaResponse(&action.Delta),
	}, nil
}

func deltaResponse(delta *actions.TransactionDelta) CreateTransactionResponseBody {
	body := CreateTransactionResponseBody{
		Transaction:    fromStorage(delta.Transaction),
		AccountBalance: delta.Account.Balance.String(),
	}
	if delta.Budget != nil {
		body.Budget = &BudgetImpact{
			ID:    delta.Budget.ID.String(),
			Spent: delta.Budget.Spent.String(),
		}
	}
	return body
}
