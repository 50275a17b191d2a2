package services

import (
	"context"
	"time"

	"fintrack/internal/models"
)

// Period restricts an aggregate to one calendar month.
type Period struct {
	Month int
	Year  int
}

// bounds returns the half-open date range [first day, first day of next month).
func (p Period) bounds() (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// SummaryStats holds the totals for a set of transactions.
type SummaryStats struct {
	TotalExpenses    float64 `json:"totalExpenses"`
	TotalIncome      float64 `json:"totalIncome"`
	Savings          float64 `json:"savings"`
	TransactionCount int64   `json:"transactionCount"`
}

// CategorySpending is the expense total of one category.
type CategorySpending struct {
	Name  models.Category `json:"name"`
	Value float64         `json:"value"`
	Color string          `json:"color"`
}

// DailySpending is the expense total of one calendar day.
type DailySpending struct {
	Day    string  `json:"day"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// MonthlyTrend holds income, expenses and savings for one calendar month.
type MonthlyTrend struct {
	Month    string  `json:"month"`
	Key      string  `json:"key"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// SearchFilter holds the search filter set. Empty or "All" category/type
// values disable that filter.
type SearchFilter struct {
	SearchTerm string
	Category   string
	Type       string
	Limit      int
}

// SearchResult is the visible page of a search plus aggregates over every match.
type SearchResult struct {
	Transactions []models.Transaction
	SummaryStats SummaryStats
	TotalCount   int64
	HasMore      bool
}

// TransactionServicer defines the contract for transaction storage, search and aggregation.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, in models.TransactionInsert) (*models.Transaction, error)
	GetAllTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
	GetTransactionsByType(ctx context.Context, transactionType models.TransactionType) ([]models.Transaction, error)
	GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error)
	GetSpendingByCategory(ctx context.Context, month, year int) ([]CategorySpending, error)
	GetWeeklySpending(ctx context.Context, start, end time.Time) ([]DailySpending, error)
	GetMonthlyTrends(ctx context.Context, months int) ([]MonthlyTrend, error)
	GetSummaryStats(ctx context.Context, period *Period) (*SummaryStats, error)
	SearchTransactions(ctx context.Context, filter SearchFilter) (*SearchResult, error)
}

// DashboardQuery selects the reference date and size of a dashboard.
type DashboardQuery struct {
	Date        time.Time
	RecentLimit int
}

// SavingsGoalProgress compares the month's savings against the goal.
type SavingsGoalProgress struct {
	Goal        float64 `json:"goal"`
	Saved       float64 `json:"saved"`
	ProgressPct float64 `json:"progressPct"`
}

// Dashboard is the overview shown on the home screen.
type Dashboard struct {
	RecentTransactions []models.Transaction
	CategoryData       []CategorySpending
	WeeklySpending     []DailySpending
	MonthlyTrends      []MonthlyTrend
	SummaryStats       SummaryStats
	SavingsGoal        SavingsGoalProgress
}

// DashboardServicer composes the dashboard from the transaction aggregates.
type DashboardServicer interface {
	GetDashboard(ctx context.Context, query DashboardQuery) (*Dashboard, error)
}
