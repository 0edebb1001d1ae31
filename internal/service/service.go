package service

import (
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Service holds all read-side services. Writes go through the operator
// instead so they serialize on one queue.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Budget      *BudgetService
	Category    *CategoryService
	Dashboard   *DashboardService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account:     NewAccountService(store),
		Transaction: NewTransactionService(store),
		Budget:      NewBudgetService(store),
		Category:    NewCategoryService(store),
		Dashboard:   NewDashboardService(store),
	}
}
