package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/models"
)

// defaultRecentLimit is how many recent transactions the dashboard lists.
const defaultRecentLimit = 5

// dashboardService builds the home screen overview from transaction aggregates.
type dashboardService struct {
	transactions TransactionServicer
	savingsGoal  decimal.Decimal
	now          func() time.Time
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(transactions TransactionServicer, savingsGoal decimal.Decimal) DashboardServicer {
	return &dashboardService{
		transactions: transactions,
		savingsGoal:  savingsGoal,
		now:          time.Now,
	}
}

// GetDashboard loads every dashboard section concurrently. Month-scoped
// sections use the month of the reference date; weekly spending covers the
// seven days ending on it.
func (s *dashboardService) GetDashboard(ctx context.Context, query DashboardQuery) (*Dashboard, error) {
	ref := query.Date
	if ref.IsZero() {
		ref = s.now()
	}
	ref = models.CalendarDay(ref)

	recentLimit := query.RecentLimit
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}

	month := Period{Month: int(ref.Month()), Year: ref.Year()}
	dash := &Dashboard{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recent, err := s.transactions.GetAllTransactions(gctx, recentLimit)
		dash.RecentTransactions = recent
		return err
	})
	g.Go(func() error {
		categories, err := s.transactions.GetSpendingByCategory(gctx, month.Month, month.Year)
		dash.CategoryData = categories
		return err
	})
	g.Go(func() error {
		weekly, err := s.transactions.GetWeeklySpending(gctx, ref.AddDate(0, 0, -6), ref)
		dash.WeeklySpending = weekly
		return err
	})
	g.Go(func() error {
		trends, err := s.transactions.GetMonthlyTrends(gctx, 0)
		dash.MonthlyTrends = trends
		return err
	})
	g.Go(func() error {
		stats, err := s.transactions.GetSummaryStats(gctx, &month)
		if stats != nil {
			dash.SummaryStats = *stats
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dash.SavingsGoal = savingsProgress(s.savingsGoal, dash.SummaryStats.Savings)
	return dash, nil
}

// savingsProgress reports saved against goal, with the percentage clamped to 0..100.
func savingsProgress(goal decimal.Decimal, saved float64) SavingsGoalProgress {
	progress := SavingsGoalProgress{Goal: money(goal), Saved: saved}
	if !goal.IsPositive() {
		return progress
	}

	pct := decimal.NewFromFloat(saved).Div(goal).Mul(decimal.NewFromInt(100))
	switch {
	case pct.IsNegative():
		pct = decimal.Zero
	case pct.GreaterThan(decimal.NewFromInt(100)):
		pct = decimal.NewFromInt(100)
	}
	progress.ProgressPct = money(pct)
	return progress
}
