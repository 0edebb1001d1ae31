package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Storage bundles the database pool and per-table read access. Writes
// go through Write, which opens a transactional Writer.
type Storage struct {
	DB           *sql.DB
	Accounts     account.ITable
	Transactions transaction.ITable
	Budgets      budget.ITable
	Categories   category.ITable
}

// NewStorage opens the postgres pool described by the config.
func NewStorage(env *config.Config) (*Storage, error) {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	return &Storage{
		DB:           db,
		Accounts:     account.NewTable(db),
		Transactions: transaction.NewTable(db),
		Budgets:      budget.NewTable(db),
		Categories:   category.NewTable(db),
	}, nil
}

// Write begins a database transaction and returns a Writer scoped to
// it. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return NewWriter(tx), nil
}
