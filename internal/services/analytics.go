package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

const spendingByCategorySQL = `
SELECT category, COALESCE(SUM(ABS(amount)), 0) AS total
FROM transactions
WHERE type = ? AND date >= ? AND date < ?
GROUP BY category
ORDER BY total DESC, category ASC`

const dailySpendingSQL = `
SELECT date, COALESCE(SUM(ABS(amount)), 0) AS total
FROM transactions
WHERE type = ? AND date BETWEEN ? AND ?
GROUP BY date
ORDER BY date ASC`

// statsColumns computes SummaryStats over whatever WHERE clause it is paired with.
const statsColumns = `COALESCE(SUM(CASE WHEN type = ? THEN ABS(amount) ELSE 0 END), 0) AS total_expenses,
COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_income,
COUNT(id) AS transaction_count`

type statsRow struct {
	TotalExpenses    decimal.Decimal
	TotalIncome      decimal.Decimal
	TransactionCount int64
}

func (r statsRow) toStats() SummaryStats {
	return SummaryStats{
		TotalExpenses:    money(r.TotalExpenses),
		TotalIncome:      money(r.TotalIncome),
		Savings:          money(r.TotalIncome.Sub(r.TotalExpenses)),
		TransactionCount: r.TransactionCount,
	}
}

// selectStats applies the summary columns to q.
func selectStats(q *gorm.DB) *gorm.DB {
	return q.Select(statsColumns, models.TransactionTypeExpense, models.TransactionTypeIncome)
}

// money rounds an aggregate to cents for presentation.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year < 1900 || year > 9999 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "year is out of range")
	}
	return nil
}

// GetSpendingByCategory sums expense magnitudes per category for one month,
// largest first.
func (s *transactionService) GetSpendingByCategory(ctx context.Context, month, year int) ([]CategorySpending, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	start, end := Period{Month: month, Year: year}.bounds()

	var rows []struct {
		Category models.Category
		Total    decimal.Decimal
	}
	if err := s.db.WithContext(ctx).
		Raw(spendingByCategorySQL, models.TransactionTypeExpense, start, end).
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAnalyticsFailed, err)
	}

	result := make([]CategorySpending, 0, len(rows))
	for _, row := range rows {
		result = append(result, CategorySpending{
			Name:  row.Category,
			Value: money(row.Total),
			Color: row.Category.Color(),
		})
	}
	return result, nil
}

// GetWeeklySpending sums expense magnitudes per day within [start, end],
// oldest first. Days without expenses are omitted.
func (s *transactionService) GetWeeklySpending(ctx context.Context, start, end time.Time) ([]DailySpending, error) {
	start, end = models.CalendarDay(start), models.CalendarDay(end)
	if start.After(end) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start date must not be after end date")
	}

	var rows []struct {
		Date  time.Time
		Total decimal.Decimal
	}
	if err := s.db.WithContext(ctx).
		Raw(dailySpendingSQL, models.TransactionTypeExpense, start, end).
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAnalyticsFailed, err)
	}

	result := make([]DailySpending, 0, len(rows))
	for _, row := range rows {
		result = append(result, DailySpending{
			Day:    row.Date.Weekday().String()[:3],
			Date:   row.Date.Format(models.DateLayout),
			Amount: money(row.Total),
		})
	}
	return result, nil
}

// GetMonthlyTrends returns one entry per month of the window anchored at the
// configured start month, including months without transactions.
func (s *transactionService) GetMonthlyTrends(ctx context.Context, months int) ([]MonthlyTrend, error) {
	if months <= 0 {
		months = s.opts.TrendsMonths
	}
	if months > maxTrendMonths {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("months must not exceed %d", maxTrendMonths))
	}

	anchor := s.opts.TrendsStart
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, months, 0)

	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}
	buckets := make([]bucket, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		index[start.AddDate(0, i, 0).Format("2006-01")] = i
	}

	var transactions []models.Transaction
	if err := s.db.WithContext(ctx).
		Select("date", "amount", "type").
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAnalyticsFailed, err)
	}

	for _, tx := range transactions {
		i, ok := index[tx.Date.Format("2006-01")]
		if !ok {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			buckets[i].income = buckets[i].income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			buckets[i].expenses = buckets[i].expenses.Add(tx.Amount.Abs())
		}
	}

	trends := make([]MonthlyTrend, months)
	for i, b := range buckets {
		month := start.AddDate(0, i, 0)
		trends[i] = MonthlyTrend{
			Month:    month.Format("Jan"),
			Key:      month.Format("2006-01"),
			Income:   money(b.income),
			Expenses: money(b.expenses),
			Savings:  money(b.income.Sub(b.expenses)),
		}
	}
	return trends, nil
}

// GetSummaryStats totals expenses and income, optionally for a single month.
func (s *transactionService) GetSummaryStats(ctx context.Context, period *Period) (*SummaryStats, error) {
	q := s.db.WithContext(ctx).Model(&models.Transaction{})
	if period != nil {
		if err := validatePeriod(period.Month, period.Year); err != nil {
			return nil, err
		}
		start, end := period.bounds()
		q = q.Where("date >= ? AND date < ?", start, end)
	}

	var row statsRow
	if err := selectStats(q).Scan(&row).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAnalyticsFailed, err)
	}

	stats := row.toStats()
	return &stats, nil
}
