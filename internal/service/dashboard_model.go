package service

import (
	"github.com/shopspring/decimal"
)

// Dashboard bundles every aggregate the overview screen renders, built
// from one pass over the period's transactions plus the live account
// and budget rows.
type Dashboard struct {
	Summary                    Summary
	Accounts                   []Account
	SpendingByCategory         []CategoryAmount
	BudgetVsActual             []BudgetPerformance
	MonthlySpendingTrend       []MonthAmount
	IncomeVsExpenses           []MonthlyIncomeExpense
	TopMerchants               []MerchantSummary
	TransactionsByDayOfWeek    []DayOfWeekSummary
	TransactionCountByCategory []CategoryCount
	CreditCardUtilization      []CardUtilization
	CashFlowAnalysis           []MonthlyCashFlow
}

// Summary holds the headline totals for the selected period plus the
// point-in-time net worth.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	TotalSavings  decimal.Decimal
	NetWorth      NetWorth
}

// NetWorth splits holdings by account type. Credit-card balances are
// owed amounts, so Total = Bank - CreditCard.
type NetWorth struct {
	Bank       decimal.Decimal
	CreditCard decimal.Decimal
	Total      decimal.Decimal
}

// CategoryAmount is a category's total debit spending.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// BudgetPerformance compares one current-cycle budget against its
// accrued spending.
type BudgetPerformance struct {
	Category  string
	Allocated decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// MonthAmount is one month's total debit spending.
type MonthAmount struct {
	Month  string
	Amount decimal.Decimal
}

// MonthlyIncomeExpense is one month's income and expense totals.
type MonthlyIncomeExpense struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// MerchantSummary aggregates debits sharing a description.
type MerchantSummary struct {
	Merchant string
	Amount   decimal.Decimal
	Count    int
}

// DayOfWeekSummary is debit spending grouped by weekday.
type DayOfWeekSummary struct {
	Day    string
	Amount decimal.Decimal
	Count  int
}

// CategoryCount is a category's transaction count, credits included.
type CategoryCount struct {
	Category string
	Count    int
}

// CardUtilization is a credit card's owed balance against its limit.
// Utilization is a percentage, zero when no limit is set.
type CardUtilization struct {
	Name        string
	Balance     decimal.Decimal
	Limit       decimal.Decimal
	Utilization decimal.Decimal
}

// MonthlyCashFlow is one month's money in, money out, and the
// difference.
type MonthlyCashFlow struct {
	Month   string
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
	NetFlow decimal.Decimal
}
