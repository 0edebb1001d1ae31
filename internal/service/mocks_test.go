package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type mockAccountTable struct {
	mock.Mock
}

var _ account.ITable = (*mockAccountTable)(nil)

func (m *mockAccountTable) FindByID(ctx context.Context, owner, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, owner, id)
	acct, _ := args.Get(0).(*account.Account)
	return acct, args.Error(1)
}

func (m *mockAccountTable) List(ctx context.Context, owner uuid.UUID) ([]*account.Account, error) {
	args := m.Called(ctx, owner)
	rows, _ := args.Get(0).([]*account.Account)
	return rows, args.Error(1)
}

type mockTransactionTable struct {
	mock.Mock
}

var _ transaction.ITable = (*mockTransactionTable)(nil)

func (m *mockTransactionTable) FindByID(ctx context.Context, owner, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, owner, id)
	tx, _ := args.Get(0).(*transaction.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, owner uuid.UUID, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, owner, filter)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

type mockBudgetTable struct {
	mock.Mock
}

var _ budget.ITable = (*mockBudgetTable)(nil)

func (m *mockBudgetTable) FindByID(ctx context.Context, owner, id uuid.UUID) (*budget.Budget, error) {
	args := m.Called(ctx, owner, id)
	b, _ := args.Get(0).(*budget.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetTable) List(ctx context.Context, owner uuid.UUID, filter *budget.BudgetFilter) ([]*budget.Budget, error) {
	args := m.Called(ctx, owner, filter)
	rows, _ := args.Get(0).([]*budget.Budget)
	return rows, args.Error(1)
}

type mockCategoryTable struct {
	mock.Mock
}

var _ category.ITable = (*mockCategoryTable)(nil)

func (m *mockCategoryTable) List(ctx context.Context, owner uuid.UUID) ([]*category.Category, error) {
	args := m.Called(ctx, owner)
	rows, _ := args.Get(0).([]*category.Category)
	return rows, args.Error(1)
}
