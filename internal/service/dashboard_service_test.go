package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

func newDashboardTestService(t *testing.T, now time.Time) (*DashboardService, *mockAccountTable, *mockTransactionTable, *mockBudgetTable) {
	t.Helper()
	accounts := new(mockAccountTable)
	transactions := new(mockTransactionTable)
	budgets := new(mockBudgetTable)
	store := &storage.Storage{Accounts: accounts, Transactions: transactions, Budgets: budgets}
	svc := NewDashboardService(store)
	svc.now = func() time.Time { return now }
	return svc, accounts, transactions, budgets
}

func debitOn(date time.Time, magnitude, category, description string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Owner:       testOwner,
		AccountID:   uuid.Must(uuid.NewV4()),
		Amount:      decimal.RequireFromString(magnitude).Neg(),
		Type:        transaction.TransactionTypeDebit,
		Category:    category,
		Description: description,
		Date:        date,
	}
}

func creditOn(date time.Time, magnitude, category string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		Owner:     testOwner,
		AccountID: uuid.Must(uuid.NewV4()),
		Amount:    decimal.RequireFromString(magnitude),
		Type:      transaction.TransactionTypeCredit,
		Category:  category,
		Date:      date,
	}
}

func TestGetDashboardCurrentMonth(t *testing.T) {
	// June 10, so the current billing cycle is still Jun 2025.
	now := time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
	svc, accounts, transactions, budgets := newDashboardTestService(t, now)

	monthStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	rows := []*transaction.Transaction{
		creditOn(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), "3000", "salary"),
		debitOn(time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC), "120.25", "groceries", "Corner Market"),
		debitOn(time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC), "79.75", "groceries", "Corner Market"),
	}
	transactions.On("List", mock.Anything, testOwner, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return f.From != nil && f.From.Equal(monthStart) &&
			f.To != nil && f.To.Equal(monthStart.AddDate(0, 1, 0))
	})).Return(rows, nil)

	accounts.On("List", mock.Anything, testOwner).Return([]*account.Account{
		{
			ID: uuid.Must(uuid.NewV4()), Owner: testOwner, Name: "Checking",
			Type: account.AccountTypeBank, Balance: decimal.RequireFromString("3000"),
		},
		{
			ID: uuid.Must(uuid.NewV4()), Owner: testOwner, Name: "Visa",
			Type:    account.AccountTypeCreditCard,
			Balance: decimal.RequireFromString("-300"), CreditLimit: decimal.RequireFromString("1000"),
		},
	}, nil)

	budgets.On("List", mock.Anything, testOwner, mock.MatchedBy(func(f *budget.BudgetFilter) bool {
		return f.Period != nil && *f.Period == "Jun 2025"
	})).Return([]*budget.Budget{
		{
			ID: uuid.Must(uuid.NewV4()), Owner: testOwner, Category: "groceries",
			Allocated: decimal.RequireFromString("400"), Spent: decimal.RequireFromString("200"),
			Period: "Jun 2025",
		},
	}, nil)

	dashboard, err := svc.GetDashboard(context.Background(), testOwner, PeriodCurrentMonth)
	require.NoError(t, err)

	assert.Equal(t, "3000", dashboard.Summary.TotalIncome.String())
	assert.Equal(t, "200", dashboard.Summary.TotalExpenses.String())
	assert.Equal(t, "2800", dashboard.Summary.TotalSavings.String())

	assert.Equal(t, "3000", dashboard.Summary.NetWorth.Bank.String())
	assert.Equal(t, "300", dashboard.Summary.NetWorth.CreditCard.String())
	assert.Equal(t, "2700", dashboard.Summary.NetWorth.Total.String())

	require.Len(t, dashboard.SpendingByCategory, 1)
	assert.Equal(t, "groceries", dashboard.SpendingByCategory[0].Category)
	assert.Equal(t, "200", dashboard.SpendingByCategory[0].Amount.String())

	require.Len(t, dashboard.BudgetVsActual, 1)
	assert.Equal(t, "200", dashboard.BudgetVsActual[0].Remaining.String())

	require.Len(t, dashboard.MonthlySpendingTrend, 1)
	assert.Equal(t, "Jun 2025", dashboard.MonthlySpendingTrend[0].Month)
	assert.Equal(t, "200", dashboard.MonthlySpendingTrend[0].Amount.String())

	require.Len(t, dashboard.IncomeVsExpenses, 1)
	assert.Equal(t, "3000", dashboard.IncomeVsExpenses[0].Income.String())
	assert.Equal(t, "200", dashboard.IncomeVsExpenses[0].Expenses.String())

	require.Len(t, dashboard.TopMerchants, 1)
	assert.Equal(t, "Corner Market", dashboard.TopMerchants[0].Merchant)
	assert.Equal(t, "200", dashboard.TopMerchants[0].Amount.String())
	assert.Equal(t, 2, dashboard.TopMerchants[0].Count)

	require.Len(t, dashboard.TransactionsByDayOfWeek, 7)
	thursday := dashboard.TransactionsByDayOfWeek[time.Thursday]
	assert.Equal(t, "Thursday", thursday.Day)
	assert.Equal(t, "200", thursday.Amount.String())
	assert.Equal(t, 2, thursday.Count)
	assert.Equal(t, 0, dashboard.TransactionsByDayOfWeek[time.Monday].Count)

	require.Len(t, dashboard.TransactionCountByCategory, 2)
	assert.Equal(t, CategoryCount{Category: "groceries", Count: 2}, dashboard.TransactionCountByCategory[0])
	assert.Equal(t, CategoryCount{Category: "salary", Count: 1}, dashboard.TransactionCountByCategory[1])

	require.Len(t, dashboard.CreditCardUtilization, 1)
	assert.Equal(t, "Visa", dashboard.CreditCardUtilization[0].Name)
	assert.Equal(t, "300", dashboard.CreditCardUtilization[0].Balance.String())
	assert.Equal(t, "30", dashboard.CreditCardUtilization[0].Utilization.String())

	require.Len(t, dashboard.CashFlowAnalysis, 1)
	assert.Equal(t, "3000", dashboard.CashFlowAnalysis[0].Inflow.String())
	assert.Equal(t, "200", dashboard.CashFlowAnalysis[0].Outflow.String())
	assert.Equal(t, "2800", dashboard.CashFlowAnalysis[0].NetFlow.String())

	assert.Len(t, dashboard.Accounts, 2)
}

func TestGetDashboardInvalidPeriod(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	svc, _, _, _ := newDashboardTestService(t, now)

	dashboard, err := svc.GetDashboard(context.Background(), testOwner, "fortnight")
	assert.ErrorIs(t, err, ledger.ErrValidation)
	assert.Nil(t, dashboard)
}

func TestPeriodRange(t *testing.T) {
	now := time.Date(2025, time.June, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period   string
		wantFrom string
		wantTo   string
	}{
		{PeriodCurrentMonth, "2025-06-01", "2025-07-01"},
		{PeriodLastMonth, "2025-05-01", "2025-06-01"},
		{PeriodYear, "2025-01-01", "2026-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			from, to, err := periodRange(tt.period, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, from.Format("2006-01-02"))
			assert.Equal(t, tt.wantTo, to.Format("2006-01-02"))
		})
	}

	from, to, err := periodRange(PeriodAllTime, now)
	assert.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)

	_, _, err = periodRange("quarter", now)
	assert.ErrorIs(t, err, ledger.ErrValidation)
}

func TestMonthlyAggregatesSpanMonths(t *testing.T) {
	transactions := []*transaction.Transaction{
		debitOn(time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC), "100", "groceries", "Market"),
		creditOn(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), "2000", "salary"),
		debitOn(time.Date(2025, time.May, 7, 0, 0, 0, 0, time.UTC), "250", "travel", "Rail Co"),
	}

	trend := monthlySpendingTrend(transactions)
	require.Len(t, trend, 2)
	assert.Equal(t, "Apr 2025", trend[0].Month)
	assert.Equal(t, "100", trend[0].Amount.String())
	assert.Equal(t, "May 2025", trend[1].Month)
	assert.Equal(t, "250", trend[1].Amount.String())

	flows := cashFlowAnalysis(transactions)
	require.Len(t, flows, 2)
	assert.Equal(t, "1900", flows[0].NetFlow.String())
	assert.Equal(t, "-250", flows[1].NetFlow.String())
}

func TestTopMerchantsLimitAndOrder(t *testing.T) {
	date := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	var transactions []*transaction.Transaction
	for i := 0; i < 12; i++ {
		transactions = append(transactions,
			debitOn(date, decimal.NewFromInt(int64(10+i)).String(), "misc", string(rune('a'+i))))
	}

	merchants := topMerchants(transactions)
	assert.Len(t, merchants, topMerchantLimit)
	assert.Equal(t, "21", merchants[0].Amount.String(), "largest spend first")
	for i := 1; i < len(merchants); i++ {
		assert.True(t, merchants[i].Amount.LessThanOrEqual(merchants[i-1].Amount))
	}
}

func TestCreditCardUtilizationZeroLimit(t *testing.T) {
	cards := creditCardUtilization([]*account.Account{
		{
			Name: "No Limit Card", Type: account.AccountTypeCreditCard,
			Balance: decimal.RequireFromString("-50"), CreditLimit: decimal.Zero,
		},
	})
	require.Len(t, cards, 1)
	assert.True(t, cards[0].Utilization.IsZero())
}

func TestSummarizeOverpaidCreditCard(t *testing.T) {
	// A positive card balance is money the issuer owes back, so it adds
	// to net worth instead of counting as debt.
	summary := summarize(nil, []*account.Account{
		{
			Name: "Checking", Type: account.AccountTypeBank,
			Balance: decimal.RequireFromString("1000"),
		},
		{
			Name: "Visa", Type: account.AccountTypeCreditCard,
			Balance: decimal.RequireFromString("50"),
		},
	})

	assert.Equal(t, "1000", summary.NetWorth.Bank.String())
	assert.Equal(t, "-50", summary.NetWorth.CreditCard.String())
	assert.Equal(t, "1050", summary.NetWorth.Total.String())
}
