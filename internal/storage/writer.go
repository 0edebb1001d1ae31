package storage

import (
	"database/sql"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Writer bundles per-table writers over a single database transaction,
// so a transaction record and its account/budget side effects commit
// or roll back as one unit. Fields are interfaces so actions can be
// exercised against in-memory fakes.
type Writer struct {
	tx           *sql.Tx
	Accounts     account.IWriter
	Transactions transaction.IWriter
	Budgets      budget.IWriter
	Categories   category.IWriter
}

// NewWriter creates a Writer over the given transaction.
func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     account.NewWriter(tx),
		Transactions: transaction.NewWriter(tx),
		Budgets:      budget.NewWriter(tx),
		Categories:   category.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
