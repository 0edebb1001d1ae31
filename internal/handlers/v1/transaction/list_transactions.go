package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
// All filters are optional and combine with AND.
type ListTransactionsInput struct {
	AccountID    string `query:"accountID" doc:"Filter by account UUID"`
	Category     string `query:"category" doc:"Filter by category name"`
	BillingCycle string `query:"billingCycle" doc:"Filter by billing cycle label, e.g. Jun 2025"`
	From         string `query:"from" doc:"Inclusive RFC3339 lower bound on transaction date"`
	To           string `query:"to" doc:"Exclusive RFC3339 upper bound on transaction date"`
}

// ListTransactionsResponseBody is the response body for listing
// transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, owner uuid.UUID, filter *service.TransactionFilter) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns the owner's transactions, optionally filtered by account, category, billing cycle, or date range.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the filter query
// parameters.
func parseListTransactionsInput(input *ListTransactionsInput) (*service.TransactionFilter, error) {
	filter := &service.TransactionFilter{}

	if input.AccountID != "" {
		accountID, err := uuid.FromString(input.AccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
		}
		filter.AccountID = &accountID
	}
	if input.Category != "" {
		filter.Category = &input.Category
	}
	if input.BillingCycle != "" {
		filter.BillingCycle = &input.BillingCycle
	}
	if input.From != "" {
		from, err := time.Parse(time.RFC3339, input.From)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid from date", err)
		}
		filter.From = &from
	}
	if input.To != "" {
		to, err := time.Parse(time.RFC3339, input.To)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid to date", err)
		}
		filter.To = &to
	}
	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	owner, err := identity.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, owner, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromError("failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = FromService(tx)
	}
	return &ListTransactionsOutput{Body: resp}, nil
}
