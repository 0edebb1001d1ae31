package account

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/cycle"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/service"
	storagetx "github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type mockBillGetter struct {
	mock.Mock
}

func (m *mockBillGetter) GetCreditCardBill(ctx context.Context, owner, accountID uuid.UUID, billingCycle string) (*service.CreditCardBill, error) {
	args := m.Called(ctx, owner, accountID, billingCycle)
	bill, _ := args.Get(0).(*service.CreditCardBill)
	return bill, args.Error(1)
}

func newBillTestAPI(t *testing.T, svc billGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(identity.NewMiddleware(api))
	NewGetBillHandler(svc).Register(api)
	return api
}

func TestHTTP_GetBill_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockBillGetter)
	mockSvc.On("GetCreditCardBill", mock.Anything, testOwner, accountID, "Jun 2025").
		Return(&service.CreditCardBill{
			AccountID:    accountID,
			AccountName:  "Visa",
			BillingCycle: "Jun 2025",
			TotalBill:    decimal.RequireFromString("350.25"),
			Transactions: []service.Transaction{
				{
					ID:           uuid.Must(uuid.NewV4()),
					AccountID:    accountID,
					Amount:       decimal.RequireFromString("-350.25"),
					Type:         storagetx.TransactionTypeDebit,
					Category:     "Groceries",
					Date:         date,
					BillingCycle: "Jun 2025",
					CreatedAt:    date,
				},
			},
		}, nil)

	query := url.Values{}
	query.Set("billingCycle", "Jun 2025")
	resp := newBillTestAPI(t, mockSvc).Get(
		"/v1/account/"+accountID.String()+"/bill?"+query.Encode(), ownerHeader())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetBillResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, accountID.String(), body.AccountID)
	assert.Equal(t, "Visa", body.AccountName)
	assert.Equal(t, "Jun 2025", body.BillingCycle)
	assert.Equal(t, "350.25", body.TotalBill)
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, "-350.25", body.Transactions[0].Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetBill_DefaultsToCurrentCycle(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	currentCycle := cycle.Resolve(time.Now())

	mockSvc := new(mockBillGetter)
	mockSvc.On("GetCreditCardBill", mock.Anything, testOwner, accountID, currentCycle).
		Return(&service.CreditCardBill{
			AccountID:    accountID,
			AccountName:  "Visa",
			BillingCycle: currentCycle,
			TotalBill:    decimal.Zero,
		}, nil)

	resp := newBillTestAPI(t, mockSvc).Get("/v1/account/"+accountID.String()+"/bill", ownerHeader())

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetBill_NotACreditCard(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockBillGetter)
	mockSvc.On("GetCreditCardBill", mock.Anything, testOwner, accountID, mock.Anything).
		Return(nil, fmt.Errorf("account is not a credit card: %w", ledger.ErrValidation))

	resp := newBillTestAPI(t, mockSvc).Get("/v1/account/"+accountID.String()+"/bill", ownerHeader())

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetBill_AccountNotFound(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockBillGetter)
	mockSvc.On("GetCreditCardBill", mock.Anything, testOwner, accountID, mock.Anything).
		Return(nil, fmt.Errorf("account not found: %w", ledger.ErrNotFound))

	resp := newBillTestAPI(t, mockSvc).Get("/v1/account/"+accountID.String()+"/bill", ownerHeader())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetBill_InvalidAccountID(t *testing.T) {
	mockSvc := new(mockBillGetter)

	resp := newBillTestAPI(t, mockSvc).Get("/v1/account/not-a-uuid/bill", ownerHeader())

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "GetCreditCardBill")
}

func TestHTTP_GetBill_MissingOwnerHeader(t *testing.T) {
	mockSvc := new(mockBillGetter)

	resp := newBillTestAPI(t, mockSvc).Get("/v1/account/" + uuid.Must(uuid.NewV4()).String() + "/bill")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "GetCreditCardBill")
}
