package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	accthandler "github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetDashboardInput is the Huma input for the dashboard.
type GetDashboardInput struct {
	Period string `query:"period" enum:"current-month,last-month,year,all-time" doc:"Aggregation period, defaults to current-month"`
}

// Summary is the API model for the dashboard headline totals.
type Summary struct {
	TotalIncome   string   `json:"totalIncome" doc:"Period income total"`
	TotalExpenses string   `json:"totalExpenses" doc:"Period expense total"`
	TotalSavings  string   `json:"totalSavings" doc:"Income minus expenses"`
	NetWorth      NetWorth `json:"netWorth" doc:"Point-in-time net worth"`
}

// NetWorth is the API model for net worth split by account type.
type NetWorth struct {
	Bank       string `json:"bank" doc:"Sum of bank balances"`
	CreditCard string `json:"creditCard" doc:"Sum of owed card balances"`
	Total      string `json:"total" doc:"Bank minus credit card"`
}

// CategoryAmount is the API model for per-category spending.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// BudgetPerformance is the API model for budget vs actual.
type BudgetPerformance struct {
	Category  string `json:"category"`
	Allocated string `json:"allocated"`
	Spent     string `json:"spent"`
	Remaining string `json:"remaining"`
}

// MonthAmount is the API model for a monthly total.
type MonthAmount struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// MonthlyIncomeExpense is the API model for monthly income vs expenses.
type MonthlyIncomeExpense struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// MerchantSummary is the API model for a top merchant.
type MerchantSummary struct {
	Merchant string `json:"merchant"`
	Amount   string `json:"amount"`
	Count    int    `json:"count"`
}

// DayOfWeekSummary is the API model for weekday spending.
type DayOfWeekSummary struct {
	Day    string `json:"day"`
	Amount string `json:"amount"`
	Count  int    `json:"count"`
}

// CategoryCount is the API model for per-category transaction counts.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CardUtilization is the API model for credit card utilization.
type CardUtilization struct {
	Name        string `json:"name"`
	Balance     string `json:"balance"`
	Limit       string `json:"limit"`
	Utilization string `json:"utilization" doc:"Percentage of the limit in use"`
}

// MonthlyCashFlow is the API model for monthly cash flow.
type MonthlyCashFlow struct {
	Month   string `json:"month"`
	Inflow  string `json:"inflow"`
	Outflow string `json:"outflow"`
	NetFlow string `json:"netFlow"`
}

// GetDashboardResponseBody is the response body for the dashboard.
type GetDashboardResponseBody struct {
	Summary                    Summary                `json:"summary"`
	Accounts                   []accthandler.Account  `json:"accounts"`
	SpendingByCategory         []CategoryAmount       `json:"spendingByCategory"`
	BudgetVsActual             []BudgetPerformance    `json:"budgetVsActual"`
	MonthlySpendingTrend       []MonthAmount          `json:"monthlySpendingTrend"`
	IncomeVsExpenses           []MonthlyIncomeExpense `json:"incomeVsExpenses"`
	TopMerchants               []MerchantSummary      `json:"topMerchants"`
	TransactionsByDayOfWeek    []DayOfWeekSummary     `json:"transactionsByDayOfWeek"`
	TransactionCountByCategory []CategoryCount        `json:"transactionCountByCategory"`
	CreditCardUtilization      []CardUtilization      `json:"creditCardUtilization"`
	CashFlowAnalysis           []MonthlyCashFlow      `json:"cashFlowAnalysis"`
}

// GetDashboardOutput is the Huma output for the dashboard.
type GetDashboardOutput struct {
	Body GetDashboardResponseBody
}

// dashboardGetter is the interface for building the dashboard.
type dashboardGetter interface {
	GetDashboard(ctx context.Context, owner uuid.UUID, period string) (*service.Dashboard, error)
}

// GetDashboardHandler handles GET /v1/dashboard.
type GetDashboardHandler struct {
	DashboardService dashboardGetter
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(svc dashboardGetter) *GetDashboardHandler {
	return &GetDashboardHandler{DashboardService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Get dashboard",
		Description: "Returns every aggregate the overview screen renders for one period.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *GetDashboardHandler) handle(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error) {
	owner, err := identity.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	period := input.Period
	if period == "" {
		period = service.PeriodCurrentMonth
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		logData.AddData("period", period)
		stopTimer = logData.AddTiming("dashboardMs")
	}
	dashboard, err := h.DashboardService.GetDashboard(ctx, owner, period)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromError("failed to build dashboard", err)
	}

	return &GetDashboardOutput{Body: toResponse(dashboard)}, nil
}

func toResponse(d *service.Dashboard) GetDashboardResponseBody {
	resp := GetDashboardResponseBody{
		Summary: Summary{
			TotalIncome:   d.Summary.TotalIncome.String(),
			TotalExpenses: d.Summary.TotalExpenses.String(),
			TotalSavings:  d.Summary.TotalSavings.String(),
			NetWorth: NetWorth{
				Bank:       d.Summary.NetWorth.Bank.String(),
				CreditCard: d.Summary.NetWorth.CreditCard.String(),
				Total:      d.Summary.NetWorth.Total.String(),
			},
		},
		Accounts:                   make([]accthandler.Account, len(d.Accounts)),
		SpendingByCategory:         make([]CategoryAmount, len(d.SpendingByCategory)),
		BudgetVsActual:             make([]BudgetPerformance, len(d.BudgetVsActual)),
		MonthlySpendingTrend:       make([]MonthAmount, len(d.MonthlySpendingTrend)),
		IncomeVsExpenses:           make([]MonthlyIncomeExpense, len(d.IncomeVsExpenses)),
		TopMerchants:               make([]MerchantSummary, len(d.TopMerchants)),
		TransactionsByDayOfWeek:    make([]DayOfWeekSummary, len(d.TransactionsByDayOfWeek)),
		TransactionCountByCategory: make([]CategoryCount, len(d.TransactionCountByCategory)),
		CreditCardUtilization:      make([]CardUtilization, len(d.CreditCardUtilization)),
		CashFlowAnalysis:           make([]MonthlyCashFlow, len(d.CashFlowAnalysis)),
	}

	for i, acct := range d.Accounts {
		resp.Accounts[i] = accthandler.FromService(acct)
	}
	for i, entry := range d.SpendingByCategory {
		resp.SpendingByCategory[i] = CategoryAmount{Category: entry.Category, Amount: entry.Amount.String()}
	}
	for i, entry := range d.BudgetVsActual {
		resp.BudgetVsActual[i] = BudgetPerformance{
			Category:  entry.Category,
			Allocated: entry.Allocated.String(),
			Spent:     entry.Spent.String(),
			Remaining: entry.Remaining.String(),
		}
	}
	for i, entry := range d.MonthlySpendingTrend {
		resp.MonthlySpendingTrend[i] = MonthAmount{Month: entry.Month, Amount: entry.Amount.String()}
	}
	for i, entry := range d.IncomeVsExpenses {
		resp.IncomeVsExpenses[i] = MonthlyIncomeExpense{
			Month:    entry.Month,
			Income:   entry.Income.String(),
			Expenses: entry.Expenses.String(),
		}
	}
	for i, entry := range d.TopMerchants {
		resp.TopMerchants[i] = MerchantSummary{
			Merchant: entry.Merchant,
			Amount:   entry.Amount.String(),
			Count:    entry.Count,
		}
	}
	for i, entry := range d.TransactionsByDayOfWeek {
		resp.TransactionsByDayOfWeek[i] = DayOfWeekSummary{
			Day:    entry.Day,
			Amount: entry.Amount.String(),
			Count:  entry.Count,
		}
	}
	for i, entry := range d.TransactionCountByCategory {
		resp.TransactionCountByCategory[i] = CategoryCount{Category: entry.Category, Count: entry.Count}
	}
	for i, entry := range d.CreditCardUtilization {
		resp.CreditCardUtilization[i] = CardUtilization{
			Name:        entry.Name,
			Balance:     entry.Balance.String(),
			Limit:       entry.Limit.String(),
			Utilization: entry.Utilization.String(),
		}
	}
	for i, entry := range d.CashFlowAnalysis {
		resp.CashFlowAnalysis[i] = MonthlyCashFlow{
			Month:   entry.Month,
			Inflow:  entry.Inflow.String(),
			Outflow: entry.Outflow.String(),
			NetFlow: entry.NetFlow.String(),
		}
	}
	return resp
}
