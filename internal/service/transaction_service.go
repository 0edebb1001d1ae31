package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// TransactionService handles transaction read logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns the owner's transactions matching the
// filter, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, owner uuid.UUID, filter *TransactionFilter) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, owner, filter.toStorage())
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

// GetTransaction returns one transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, owner, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("transaction %s: %w", id, ledger.ErrNotFound)
	}

	converted := transactionFromStorage(row)
	return &converted, nil
}
