package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/cycle"
	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Dashboard periods.
const (
	PeriodCurrentMonth = "current-month"
	PeriodLastMonth    = "last-month"
	PeriodYear         = "year"
	PeriodAllTime      = "all-time"
)

const topMerchantLimit = 10

const monthFormat = "Jan 2006"

// DashboardService aggregates the owner's data for the overview
// screen.
type DashboardService struct {
	storage *storage.Storage

	// now is swapped out in tests.
	now func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store *storage.Storage) *DashboardService {
	return &DashboardService{storage: store, now: time.Now}
}

// periodRange translates a period name into a half-open [from, to)
// date range. All-time returns nil bounds.
func periodRange(period string, now time.Time) (from, to *time.Time, err error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	switch period {
	case PeriodCurrentMonth:
		end := monthStart.AddDate(0, 1, 0)
		return &monthStart, &end, nil
	case PeriodLastMonth:
		start := monthStart.AddDate(0, -1, 0)
		return &start, &monthStart, nil
	case PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(1, 0, 0)
		return &start, &end, nil
	case PeriodAllTime:
		return nil, nil, nil
	}
	return nil, nil, fmt.Errorf("invalid period %q: %w", period, ledger.ErrValidation)
}

// GetDashboard builds the full dashboard for one period.
func (s *DashboardService) GetDashboard(ctx context.Context, owner uuid.UUID, period string) (*Dashboard, error) {
	now := s.now()
	from, to, err := periodRange(period, now)
	if err != nil {
		return nil, err
	}

	transactions, err := s.storage.Transactions.List(ctx, owner, &transaction.TransactionFilter{
		From: from,
		To:   to,
	})
	if err != nil {
		return nil, err
	}

	accounts, err := s.storage.Accounts.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	currentCycle := cycle.Resolve(now)
	budgets, err := s.storage.Budgets.List(ctx, owner, &budget.BudgetFilter{Period: &currentCycle})
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		Summary:                    summarize(transactions, accounts),
		Accounts:                   make([]Account, len(accounts)),
		SpendingByCategory:         spendingByCategory(transactions),
		BudgetVsActual:             budgetVsActual(budgets),
		MonthlySpendingTrend:       monthlySpendingTrend(transactions),
		IncomeVsExpenses:           incomeVsExpenses(transactions),
		TopMerchants:               topMerchants(transactions),
		TransactionsByDayOfWeek:    transactionsByDayOfWeek(transactions),
		TransactionCountByCategory: transactionCountByCategory(transactions),
		CreditCardUtilization:      creditCardUtilization(accounts),
		CashFlowAnalysis:           cashFlowAnalysis(transactions),
	}
	for i, row := range accounts {
		dashboard.Accounts[i] = accountFromStorage(row)
	}
	return dashboard, nil
}

func summarize(transactions []*transaction.Transaction, accounts []*account.Account) Summary {
	summary := Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		NetWorth: NetWorth{
			Bank:       decimal.Zero,
			CreditCard: decimal.Zero,
		},
	}

	for _, tx := range transactions {
		if tx.Type == transaction.TransactionTypeCredit {
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		} else {
			summary.TotalExpenses = summary.TotalExpenses.Add(tx.Amount.Abs())
		}
	}
	summary.TotalSavings = summary.TotalIncome.Sub(summary.TotalExpenses)

	for _, acct := range accounts {
		if acct.Type == account.AccountTypeBank {
			summary.NetWorth.Bank = summary.NetWorth.Bank.Add(acct.Balance)
		} else {
			// Card balances are negative when owed, so the owed total
			// is the negation. An overpaid card subtracts from it.
			summary.NetWorth.CreditCard = summary.NetWorth.CreditCard.Sub(acct.Balance)
		}
	}
	summary.NetWorth.Total = summary.NetWorth.Bank.Sub(summary.NetWorth.CreditCard)
	return summary
}

func spendingByCategory(transactions []*transaction.Transaction) []CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != transaction.TransactionTypeDebit {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount.Abs())
	}

	result := make([]CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		result = append(result, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Amount.Equal(result[j].Amount) {
			return result[i].Amount.GreaterThan(result[j].Amount)
		}
		return result[i].Category < result[j].Category
	})
	return result
}

func budgetVsActual(budgets []*budget.Budget) []BudgetPerformance {
	result := make([]BudgetPerformance, len(budgets))
	for i, b := range budgets {
		result[i] = BudgetPerformance{
			Category:  b.Category,
			Allocated: b.Allocated,
			Spent:     b.Spent,
			Remaining: b.Allocated.Sub(b.Spent),
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result
}

// monthBuckets groups transactions into calendar months, oldest first.
func monthBuckets(transactions []*transaction.Transaction) []time.Time {
	seen := make(map[time.Time]bool)
	var months []time.Time
	for _, tx := range transactions {
		month := time.Date(tx.Date.Year(), tx.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		if !seen[month] {
			seen[month] = true
			months = append(months, month)
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}

func sameMonth(date, month time.Time) bool {
	return date.Year() == month.Year() && date.Month() == month.Month()
}

func monthlySpendingTrend(transactions []*transaction.Transaction) []MonthAmount {
	months := monthBuckets(transactions)
	result := make([]MonthAmount, len(months))
	for i, month := range months {
		total := decimal.Zero
		for _, tx := range transactions {
			if tx.Type == transaction.TransactionTypeDebit && sameMonth(tx.Date, month) {
				total = total.Add(tx.Amount.Abs())
			}
		}
		result[i] = MonthAmount{Month: month.Format(monthFormat), Amount: total}
	}
	return result
}

func incomeVsExpenses(transactions []*transaction.Transaction) []MonthlyIncomeExpense {
	months := monthBuckets(transactions)
	result := make([]MonthlyIncomeExpense, len(months))
	for i, month := range months {
		entry := MonthlyIncomeExpense{
			Month:    month.Format(monthFormat),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
		for _, tx := range transactions {
			if !sameMonth(tx.Date, month) {
				continue
			}
			if tx.Type == transaction.TransactionTypeCredit {
				entry.Income = entry.Income.Add(tx.Amount)
			} else {
				entry.Expenses = entry.Expenses.Add(tx.Amount.Abs())
			}
		}
		result[i] = entry
	}
	return result
}

func topMerchants(transactions []*transaction.Transaction) []MerchantSummary {
	totals := make(map[string]*MerchantSummary)
	for _, tx := range transactions {
		if tx.Type != transaction.TransactionTypeDebit || tx.Description == "" {
			continue
		}
		entry, ok := totals[tx.Description]
		if !ok {
			entry = &MerchantSummary{Merchant: tx.Description, Amount: decimal.Zero}
			totals[tx.Description] = entry
		}
		entry.Amount = entry.Amount.Add(tx.Amount.Abs())
		entry.Count++
	}

	result := make([]MerchantSummary, 0, len(totals))
	for _, entry := range totals {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Amount.Equal(result[j].Amount) {
			return result[i].Amount.GreaterThan(result[j].Amount)
		}
		return result[i].Merchant < result[j].Merchant
	})
	if len(result) > topMerchantLimit {
		result = result[:topMerchantLimit]
	}
	return result
}

func transactionsByDayOfWeek(transactions []*transaction.Transaction) []DayOfWeekSummary {
	// All seven days are always present so charts keep a stable axis.
	result := make([]DayOfWeekSummary, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		result[day] = DayOfWeekSummary{Day: day.String(), Amount: decimal.Zero}
	}
	for _, tx := range transactions {
		if tx.Type != transaction.TransactionTypeDebit {
			continue
		}
		day := tx.Date.Weekday()
		result[day].Amount = result[day].Amount.Add(tx.Amount.Abs())
		result[day].Count++
	}
	return result
}

func transactionCountByCategory(transactions []*transaction.Transaction) []CategoryCount {
	counts := make(map[string]int)
	for _, tx := range transactions {
		counts[tx.Category]++
	}

	result := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})
	return result
}

func creditCardUtilization(accounts []*account.Account) []CardUtilization {
	var result []CardUtilization
	for _, acct := range accounts {
		if acct.Type != account.AccountTypeCreditCard {
			continue
		}
		entry := CardUtilization{
			Name:        acct.Name,
			Balance:     acct.Balance.Abs(),
			Limit:       acct.CreditLimit,
			Utilization: decimal.Zero,
		}
		if acct.CreditLimit.IsPositive() {
			entry.Utilization = entry.Balance.Div(acct.CreditLimit).Mul(decimal.NewFromInt(100)).Round(2)
		}
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func cashFlowAnalysis(transactions []*transaction.Transaction) []MonthlyCashFlow {
	months := monthBuckets(transactions)
	result := make([]MonthlyCashFlow, len(months))
	for i, month := range months {
		entry := MonthlyCashFlow{
			Month:   month.Format(monthFormat),
			Inflow:  decimal.Zero,
			Outflow: decimal.Zero,
		}
		for _, tx := range transactions {
			if !sameMonth(tx.Date, month) {
				continue
			}
			if tx.Type == transaction.TransactionTypeCredit {
				entry.Inflow = entry.Inflow.Add(tx.Amount)
			} else {
				entry.Outflow = entry.Outflow.Add(tx.Amount.Abs())
			}
		}
		entry.NetFlow = entry.Inflow.Sub(entry.Outflow)
		result[i] = entry
	}
	return result
}
