package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

var testOwner = uuid.Must(uuid.NewV4())

func newAccountTestService(t *testing.T) (*AccountService, *mockAccountTable, *mockTransactionTable) {
	t.Helper()
	accounts := new(mockAccountTable)
	transactions := new(mockTransactionTable)
	store := &storage.Storage{Accounts: accounts, Transactions: transactions}
	return NewAccountService(store), accounts, transactions
}

func TestListAccounts(t *testing.T) {
	svc, accounts, _ := newAccountTestService(t)

	row := &account.Account{
		ID:              uuid.Must(uuid.NewV4()),
		Owner:           testOwner,
		Name:            "Checking",
		Type:            account.AccountTypeBank,
		Balance:         decimal.RequireFromString("820.50"),
		StartingBalance: decimal.RequireFromString("1000"),
	}
	accounts.On("List", mock.Anything, testOwner).Return([]*account.Account{row}, nil)

	result, err := svc.ListAccounts(context.Background(), testOwner)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, row.ID, result[0].ID)
	assert.Equal(t, "Checking", result[0].Name)
	assert.True(t, result[0].Balance.Equal(row.Balance))
}

func TestGetAccountNotFound(t *testing.T) {
	svc, accounts, _ := newAccountTestService(t)

	id := uuid.Must(uuid.NewV4())
	accounts.On("FindByID", mock.Anything, testOwner, id).Return(nil, nil)

	result, err := svc.GetAccount(context.Background(), testOwner, id)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.Nil(t, result)
}

func TestGetCreditCardBill(t *testing.T) {
	svc, accounts, transactions := newAccountTestService(t)

	cardID := uuid.Must(uuid.NewV4())
	accounts.On("FindByID", mock.Anything, testOwner, cardID).Return(&account.Account{
		ID:      cardID,
		Owner:   testOwner,
		Name:    "Visa",
		Type:    account.AccountTypeCreditCard,
		Balance: decimal.RequireFromString("-170"),
	}, nil)

	rows := []*transaction.Transaction{
		{
			ID: uuid.Must(uuid.NewV4()), AccountID: cardID,
			Amount: decimal.RequireFromString("-120"), Type: transaction.TransactionTypeDebit,
			Category: "dining", BillingCycle: "Jun 2025",
		},
		{
			ID: uuid.Must(uuid.NewV4()), AccountID: cardID,
			Amount: decimal.RequireFromString("-50"), Type: transaction.TransactionTypeDebit,
			Category: "groceries", BillingCycle: "Jun 2025",
		},
	}
	transactions.On("List", mock.Anything, testOwner, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.AccountID != nil && *f.AccountID == cardID &&
			f.BillingCycle != nil && *f.BillingCycle == "Jun 2025"
	})).Return(rows, nil)

	bill, err := svc.GetCreditCardBill(context.Background(), testOwner, cardID, "Jun 2025")
	assert.NoError(t, err)
	assert.Equal(t, "Visa", bill.AccountName)
	assert.Equal(t, "Jun 2025", bill.BillingCycle)
	assert.Equal(t, "170", bill.TotalBill.String())
	assert.Len(t, bill.Transactions, 2)
}

func TestGetCreditCardBillRejectsBankAccount(t *testing.T) {
	svc, accounts, _ := newAccountTestService(t)

	acctID := uuid.Must(uuid.NewV4())
	accounts.On("FindByID", mock.Anything, testOwner, acctID).Return(&account.Account{
		ID:    acctID,
		Owner: testOwner,
		Type:  account.AccountTypeBank,
	}, nil)

	bill, err := svc.GetCreditCardBill(context.Background(), testOwner, acctID, "Jun 2025")
	assert.ErrorIs(t, err, ledger.ErrValidation)
	assert.Nil(t, bill)
}

func TestGetCreditCardBillUnknownAccount(t *testing.T) {
	svc, accounts, _ := newAccountTestService(t)

	acctID := uuid.Must(uuid.NewV4())
	accounts.On("FindByID", mock.Anything, testOwner, acctID).Return(nil, nil)

	_, err := svc.GetCreditCardBill(context.Background(), testOwner, acctID, "Jun 2025")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestGetCreditCardBillInvalidCycle(t *testing.T) {
	svc, _, _ := newAccountTestService(t)

	_, err := svc.GetCreditCardBill(context.Background(), testOwner, uuid.Must(uuid.NewV4()), "2025-06")
	assert.ErrorIs(t, err, ledger.ErrValidation)
}

func TestListAccountsStorageError(t *testing.T) {
	svc, accounts, _ := newAccountTestService(t)

	accounts.On("List", mock.Anything, testOwner).Return(nil, errors.New("database unavailable"))

	result, err := svc.ListAccounts(context.Background(), testOwner)
	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, result)
}

// Guard against the conversion dropping fields as the model grows.
func TestAccountFromStorage(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	row := &account.Account{
		ID:              uuid.Must(uuid.NewV4()),
		Owner:           testOwner,
		Name:            "Visa",
		Type:            account.AccountTypeCreditCard,
		Balance:         decimal.RequireFromString("-300"),
		StartingBalance: decimal.Zero,
		AccountNumber:   "XXXX-1234",
		CreditLimit:     decimal.RequireFromString("5000"),
		CreatedAt:       createdAt,
	}

	converted := accountFromStorage(row)
	assert.Equal(t, row.ID, converted.ID)
	assert.Equal(t, row.Name, converted.Name)
	assert.Equal(t, row.Type, converted.Type)
	assert.True(t, converted.Balance.Equal(row.Balance))
	assert.Equal(t, row.AccountNumber, converted.AccountNumber)
	assert.True(t, converted.CreditLimit.Equal(row.CreditLimit))
	assert.Equal(t, createdAt, converted.CreatedAt)
}
