package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer. Amount is
// signed: positive for credits, negative for debits.
type Transaction struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Amount       decimal.Decimal
	Type         transaction.TransactionType
	Category     string
	SubCategory  string
	Description  string
	Date         time.Time
	BillingCycle string
	CreatedAt    time.Time
}

// TransactionFilter narrows transaction listings. Nil fields match
// everything. To is exclusive.
type TransactionFilter struct {
	AccountID    *uuid.UUID
	Category     *string
	BillingCycle *string
	From         *time.Time
	To           *time.Time
}

func (f *TransactionFilter) toStorage() *transaction.TransactionFilter {
	if f == nil {
		return nil
	}
	return &transaction.TransactionFilter{
		AccountID:    f.AccountID,
		Category:     f.Category,
		BillingCycle: f.BillingCycle,
		From:         f.From,
		To:           f.To,
	}
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:           row.ID,
		AccountID:    row.AccountID,
		Amount:       row.Amount,
		Type:         row.Type,
		Category:     row.Category,
		SubCategory:  row.SubCategory,
		Description:  row.Description,
		Date:         row.Date,
		BillingCycle: row.BillingCycle,
		CreatedAt:    row.CreatedAt,
	}
}
