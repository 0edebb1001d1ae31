package budget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	storagebudget "github.com/carson-networks/ledger-server/internal/storage/budget"
)

var testOwner = uuid.Must(uuid.NewV4())

func ownerHeader() string {
	return identity.Header + ": " + testOwner.String()
}

// mockActionProcessor is a mock for actionProcessor.
type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newCreateTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(identity.NewMiddleware(api))
	NewCreateBudgetHandler(op).Register(api)
	return api
}

func TestHTTP_CreateBudget_Success(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.CreateBudget)
		return ok &&
			action.Owner == testOwner &&
			action.Category == "Groceries" &&
			action.Allocated.Equal(decimal.RequireFromString("400")) &&
			action.Period == "Jun 2025"
	})).Run(func(args mock.Arguments) {
		action := args.Get(1).(*actions.CreateBudget)
		action.Created = &storagebudget.Budget{
			ID:        budgetID,
			Owner:     testOwner,
			Category:  "Groceries",
			Allocated: decimal.RequireFromString("400"),
			Spent:     decimal.RequireFromString("120"),
			Period:    "Jun 2025",
		}
	}).Return(nil)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/budget", ownerHeader(), CreateBudgetBody{
		Category:  "Groceries",
		Allocated: "400",
		Period:    "Jun 2025",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Budget
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, budgetID.String(), body.ID)
	assert.Equal(t, "400", body.Allocated)
	assert.Equal(t, "120", body.Spent)
	assert.Equal(t, "280", body.Remaining)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateBudget_Duplicate(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(fmt.Errorf("budget already exists: %w", ledger.ErrConflict))

	resp := newCreateTestAPI(t, mockOp).Post("/v1/budget", ownerHeader(), CreateBudgetBody{
		Category:  "Groceries",
		Allocated: "400",
		Period:    "Jun 2025",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateBudget_UnknownCategory(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(fmt.Errorf("unknown category: %w", ledger.ErrValidation))

	resp := newCreateTestAPI(t, mockOp).Post("/v1/budget", ownerHeader(), CreateBudgetBody{
		Category:  "Nonexistent",
		Allocated: "400",
		Period:    "Jun 2025",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateBudget_InvalidAllocated(t *testing.T) {
	mockOp := new(mockActionProcessor)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/budget", ownerHeader(), CreateBudgetBody{
		Category:  "Groceries",
		Allocated: "not-a-decimal",
		Period:    "Jun 2025",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateBudget_MissingRequiredFields(t *testing.T) {
	mockOp := new(mockActionProcessor)

	// Huma schema validation rejects the request before the handler runs.
	resp := newCreateTestAPI(t, mockOp).Post("/v1/budget", ownerHeader(), CreateBudgetBody{
		Category: "Groceries",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateBudget_MissingOwnerHeader(t *testing.T) {
	mockOp := new(mockActionProcessor)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/budget", CreateBudgetBody{
		Category:  "Groceries",
		Allocated: "400",
		Period:    "Jun 2025",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateBudget_OperatorError(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockOp).Post("/v1/budget", ownerHeader(), CreateBudgetBody{
		Category:  "Groceries",
		Allocated: "400",
		Period:    "Jun 2025",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockOp.AssertExpectations(t)
}
