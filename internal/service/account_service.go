package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/cycle"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// AccountService handles account read logic.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// ListAccounts returns the owner's accounts.
func (s *AccountService) ListAccounts(ctx context.Context, owner uuid.UUID) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}

// GetAccount returns one account by ID.
func (s *AccountService) GetAccount(ctx context.Context, owner, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("account %s: %w", id, ledger.ErrNotFound)
	}

	converted := accountFromStorage(row)
	return &converted, nil
}

// GetCreditCardBill returns the statement for a credit card and
// billing cycle: the cycle's transactions newest first and the total
// of their magnitudes.
func (s *AccountService) GetCreditCardBill(ctx context.Context, owner, accountID uuid.UUID, billingCycle string) (*CreditCardBill, error) {
	if _, err := cycle.ParseLabel(billingCycle); err != nil {
		return nil, fmt.Errorf("invalid billing cycle %q: %w", billingCycle, ledger.ErrValidation)
	}

	acct, err := s.storage.Accounts.FindByID(ctx, owner, accountID)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, fmt.Errorf("account %s: %w", accountID, ledger.ErrNotFound)
	}
	if acct.Type != account.AccountTypeCreditCard {
		return nil, fmt.Errorf("account %s is not a credit card: %w", accountID, ledger.ErrValidation)
	}

	rows, err := s.storage.Transactions.List(ctx, owner, (&TransactionFilter{
		AccountID:    &accountID,
		BillingCycle: &billingCycle,
	}).toStorage())
	if err != nil {
		return nil, err
	}

	bill := &CreditCardBill{
		AccountID:    accountID,
		AccountName:  acct.Name,
		BillingCycle: billingCycle,
		TotalBill:    decimal.Zero,
		Transactions: make([]Transaction, len(rows)),
	}
	for i, row := range rows {
		bill.Transactions[i] = transactionFromStorage(row)
		bill.TotalBill = bill.TotalBill.Add(row.Amount.Abs())
	}
	return bill, nil
}
