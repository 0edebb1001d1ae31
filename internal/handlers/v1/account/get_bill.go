package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/cycle"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	txhandler "github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetBillInput is the Huma input for fetching a credit card bill.
type GetBillInput struct {
	ID           string `path:"id" doc:"Account UUID, must be a credit card"`
	BillingCycle string `query:"billingCycle" doc:"Billing cycle label, defaults to the current cycle"`
}

// GetBillResponseBody is the response body for a credit card bill.
type GetBillResponseBody struct {
	AccountID    string                  `json:"accountID" doc:"Account UUID"`
	AccountName  string                  `json:"accountName" doc:"Account display name"`
	BillingCycle string                  `json:"billingCycle" doc:"The statement's billing cycle"`
	TotalBill    string                  `json:"totalBill" doc:"Sum of transaction magnitudes in the cycle"`
	Transactions []txhandler.Transaction `json:"transactions" doc:"The cycle's transactions, newest first"`
}

// GetBillOutput is the Huma output for a credit card bill.
type GetBillOutput struct {
	Body GetBillResponseBody
}

// billGetter is the interface for fetching a credit card bill.
type billGetter interface {
	GetCreditCardBill(ctx context.Context, owner, accountID uuid.UUID, billingCycle string) (*service.CreditCardBill, error)
}

// GetBillHandler handles GET /v1/account/{id}/bill.
type GetBillHandler struct {
	AccountService billGetter
}

// NewGetBillHandler creates a new GetBillHandler.
func NewGetBillHandler(svc billGetter) *GetBillHandler {
	return &GetBillHandler{AccountService: svc}
}

// Register registers the credit card bill endpoint with the Huma API.
func (h *GetBillHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-credit-card-bill",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}/bill",
		Summary:     "Get credit card bill",
		Description: "Returns the statement for one billing cycle of a credit card account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetBillHandler) handle(ctx context.Context, input *GetBillInput) (*GetBillOutput, error) {
	owner, err := identity.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	billingCycle := input.BillingCycle
	if billingCycle == "" {
		billingCycle = cycle.Resolve(time.Now())
	}

	bill, err := h.AccountService.GetCreditCardBill(ctx, owner, id, billingCycle)
	if err != nil {
		return nil, apierror.FromError("failed to get credit card bill", err)
	}

	resp := GetBillResponseBody{
		AccountID:    bill.AccountID.String(),
		AccountName:  bill.AccountName,
		BillingCycle: bill.BillingCycle,
		TotalBill:    bill.TotalBill.String(),
		Transactions: make([]txhandler.Transaction, len(bill.Transactions)),
	}
	for i, tx := range bill.Transactions {
		resp.Transactions[i] = txhandler.FromService(tx)
	}
	return &GetBillOutput{Body: resp}, nil
}
