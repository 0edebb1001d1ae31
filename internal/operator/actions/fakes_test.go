package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// fakeState is an in-memory stand-in for the database so actions can
// be driven through full create/update/delete sequences.
type fakeState struct {
	accounts     map[uuid.UUID]*account.Account
	transactions map[uuid.UUID]*transaction.Transaction
	budgets      map[uuid.UUID]*budget.Budget
	categories   map[uuid.UUID]*category.Category
}

func newFakeState() *fakeState {
	return &fakeState{
		accounts:     make(map[uuid.UUID]*account.Account),
		transactions: make(map[uuid.UUID]*transaction.Transaction),
		budgets:      make(map[uuid.UUID]*budget.Budget),
		categories:   make(map[uuid.UUID]*category.Category),
	}
}

func (s *fakeState) writer() *storage.Writer {
	return &storage.Writer{
		Accounts:     &fakeAccounts{s},
		Transactions: &fakeTransactions{s},
		Budgets:      &fakeBudgets{s},
		Categories:   &fakeCategories{s},
	}
}

func (s *fakeState) addAccount(owner uuid.UUID, typ account.AccountType, balance string) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	bal := decimal.RequireFromString(balance)
	s.accounts[id] = &account.Account{
		ID: id, Owner: owner, Name: "acct-" + id.String()[:8], Type: typ,
		Balance: bal, StartingBalance: bal, CreditLimit: decimal.Zero,
	}
	return id
}

func (s *fakeState) addCategory(owner uuid.UUID, name string) {
	id := uuid.Must(uuid.NewV4())
	s.categories[id] = &category.Category{ID: id, Owner: owner, Name: name}
}

func (s *fakeState) addBudget(owner uuid.UUID, cat, period, allocated string) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	s.budgets[id] = &budget.Budget{
		ID: id, Owner: owner, Category: cat, Period: period,
		Allocated: decimal.RequireFromString(allocated), Spent: decimal.Zero,
	}
	return id
}

type fakeAccounts struct{ s *fakeState }

var _ account.IWriter = (*fakeAccounts)(nil)

func (f *fakeAccounts) Insert(_ context.Context, create *account.AccountCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	f.s.accounts[id] = &account.Account{
		ID: id, Owner: create.Owner, Name: create.Name, Type: create.Type,
		Balance: create.Balance, StartingBalance: create.Balance,
		AccountNumber: create.AccountNumber, CreditLimit: create.CreditLimit,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (f *fakeAccounts) FindForUpdate(_ context.Context, owner, id uuid.UUID) (*account.Account, error) {
	acc, ok := f.s.accounts[id]
	if !ok || acc.Owner != owner {
		return nil, nil
	}
	copied := *acc
	return &copied, nil
}

func (f *fakeAccounts) BalanceForUpdate(ctx context.Context, owner, id uuid.UUID) (decimal.Decimal, bool, error) {
	acc, err := f.FindForUpdate(ctx, owner, id)
	if err != nil || acc == nil {
		return decimal.Zero, false, err
	}
	return acc.Balance, true, nil
}

func (f *fakeAccounts) SetBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	f.s.accounts[id].Balance = balance
	return nil
}

func (f *fakeAccounts) Update(_ context.Context, owner, id uuid.UUID, update *account.AccountUpdate) (*account.Account, error) {
	acc, ok := f.s.accounts[id]
	if !ok || acc.Owner != owner {
		return nil, nil
	}
	acc.Name = update.Name
	acc.AccountNumber = update.AccountNumber
	acc.CreditLimit = update.CreditLimit
	copied := *acc
	return &copied, nil
}

func (f *fakeAccounts) Delete(_ context.Context, owner, id uuid.UUID) (bool, error) {
	acc, ok := f.s.accounts[id]
	if !ok || acc.Owner != owner {
		return false, nil
	}
	delete(f.s.accounts, id)
	return true, nil
}

type fakeTransactions struct{ s *fakeState }

var _ transaction.IWriter = (*fakeTransactions)(nil)

func (f *fakeTransactions) Insert(_ context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	f.s.transactions[id] = &transaction.Transaction{
		ID: id, Owner: create.Owner, AccountID: create.AccountID,
		Amount: create.Amount, Type: create.Type, Category: create.Category,
		SubCategory: create.SubCategory, Description: create.Description,
		Date: create.Date, BillingCycle: create.BillingCycle, CreatedAt: time.Now(),
	}
	return id, nil
}

func (f *fakeTransactions) FindForUpdate(_ context.Context, owner, id uuid.UUID) (*transaction.Transaction, error) {
	tx, ok := f.s.transactions[id]
	if !ok || tx.Owner != owner {
		return nil, nil
	}
	copied := *tx
	return &copied, nil
}

func (f *fakeTransactions) Update(_ context.Context, id uuid.UUID, update *transaction.TransactionUpdate) error {
	tx := f.s.transactions[id]
	tx.AccountID = update.AccountID
	tx.Amount = update.Amount
	tx.Type = update.Type
	tx.Category = update.Category
	tx.SubCategory = update.SubCategory
	tx.Description = update.Description
	tx.Date = update.Date
	tx.BillingCycle = update.BillingCycle
	return nil
}

func (f *fakeTransactions) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.s.transactions, id)
	return nil
}

func (f *fakeTransactions) CountByAccount(_ context.Context, owner, accountID uuid.UUID) (int64, error) {
	var n int64
	for _, tx := range f.s.transactions {
		if tx.Owner == owner && tx.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

func (f *fakeTransactions) CountByCategory(_ context.Context, owner uuid.UUID, category string) (int64, error) {
	var n int64
	for _, tx := range f.s.transactions {
		if tx.Owner == owner && tx.Category == category {
			n++
		}
	}
	return n, nil
}

type fakeBudgets struct{ s *fakeState }

var _ budget.IWriter = (*fakeBudgets)(nil)

func (f *fakeBudgets) Insert(_ context.Context, create *budget.BudgetCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	f.s.budgets[id] = &budget.Budget{
		ID: id, Owner: create.Owner, Category: create.Category,
		Allocated: create.Allocated, Spent: decimal.Zero, Period: create.Period,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (f *fakeBudgets) Find(_ context.Context, owner, id uuid.UUID) (*budget.Budget, error) {
	b, ok := f.s.budgets[id]
	if !ok || b.Owner != owner {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBudgets) FindByCategoryPeriod(_ context.Context, owner uuid.UUID, category, period string) (*budget.Budget, error) {
	for _, b := range f.s.budgets {
		if b.Owner == owner && b.Category == category && b.Period == period {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBudgets) SpentForUpdate(ctx context.Context, owner uuid.UUID, category, period string) (uuid.UUID, decimal.Decimal, bool, error) {
	b, err := f.FindByCategoryPeriod(ctx, owner, category, period)
	if err != nil || b == nil {
		return uuid.Nil, decimal.Zero, false, err
	}
	return b.ID, b.Spent, true, nil
}

func (f *fakeBudgets) SetSpent(_ context.Context, id uuid.UUID, spent decimal.Decimal) error {
	f.s.budgets[id].Spent = spent
	return nil
}

func (f *fakeBudgets) Delete(_ context.Context, owner, id uuid.UUID) (bool, error) {
	b, ok := f.s.budgets[id]
	if !ok || b.Owner != owner {
		return false, nil
	}
	delete(f.s.budgets, id)
	return true, nil
}

func (f *fakeBudgets) CountByCategory(_ context.Context, owner uuid.UUID, category string) (int64, error) {
	var n int64
	for _, b := range f.s.budgets {
		if b.Owner == owner && b.Category == category {
			n++
		}
	}
	return n, nil
}

type fakeCategories struct{ s *fakeState }

var _ category.IWriter = (*fakeCategories)(nil)

func (f *fakeCategories) Insert(_ context.Context, create *category.CategoryCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	f.s.categories[id] = &category.Category{
		ID: id, Owner: create.Owner, Name: create.Name, CreatedAt: time.Now(),
	}
	return id, nil
}

func (f *fakeCategories) Find(_ context.Context, owner, id uuid.UUID) (*category.Category, error) {
	c, ok := f.s.categories[id]
	if !ok || c.Owner != owner {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCategories) Exists(_ context.Context, owner uuid.UUID, name string) (bool, error) {
	for _, c := range f.s.categories {
		if c.Owner == owner && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategories) Delete(_ context.Context, owner, id uuid.UUID) (bool, error) {
	c, ok := f.s.categories[id]
	if !ok || c.Owner != owner {
		return false, nil
	}
	delete(f.s.categories, id)
	return true, nil
}
