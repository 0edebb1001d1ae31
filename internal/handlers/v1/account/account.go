package account

import (
	"context"
	"time"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/service"
	storageacct "github.com/carson-networks/ledger-server/internal/storage/account"
)

// Account is the API response model for an account.
// It is used only for responses, not for request bodies.
type Account struct {
	ID              string `json:"id" doc:"Account UUID"`
	Name            string `json:"name" doc:"Display name"`
	Type            string `json:"type" enum:"bank,credit-card" doc:"Account type"`
	Balance         string `json:"balance" doc:"Current decimal balance, negative for owed card balances"`
	StartingBalance string `json:"startingBalance" doc:"Balance at account creation"`
	AccountNumber   string `json:"accountNumber,omitempty" doc:"Masked account number"`
	CreditLimit     string `json:"creditLimit,omitempty" doc:"Credit limit for credit cards"`
	CreatedAt       string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

// FromService converts a service account to the API model.
func FromService(acct service.Account) Account {
	return Account{
		ID:              acct.ID.String(),
		Name:            acct.Name,
		Type:            acct.Type.String(),
		Balance:         acct.Balance.String(),
		StartingBalance: acct.StartingBalance.String(),
		AccountNumber:   acct.AccountNumber,
		CreditLimit:     acct.CreditLimit.String(),
		CreatedAt:       acct.CreatedAt.Format(time.RFC3339),
	}
}

func fromStorage(acct *storageacct.Account) Account {
	return Account{
		ID:              acct.ID.String(),
		Name:            acct.Name,
		Type:            acct.Type.String(),
		Balance:         acct.Balance.String(),
		StartingBalance: acct.StartingBalance.String(),
		AccountNumber:   acct.AccountNumber,
		CreditLimit:     acct.CreditLimit.String(),
	}
}

// actionProcessor runs write actions through the serialized operator
// queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
