package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	ctx := context.Background()
	seeded, err := hasTransactions(ctx, dbManager.DB(), appConfig.TrendsStart, appConfig.TrendsMonths)
	if err != nil {
		return fmt.Errorf("checking existing data: %w", err)
	}
	if seeded {
		log.Infow("Trends window already has transactions; skipping seed", "start", appConfig.TrendsStart.Format(models.DateLayout))
		return nil
	}

	svc := services.NewTransactionService(dbManager.DB(), services.TransactionServiceOptions{
		TrendsStart:  appConfig.TrendsStart,
		TrendsMonths: appConfig.TrendsMonths,
	})

	plan := demoTransactions(appConfig.TrendsStart, appConfig.TrendsMonths)
	log.Infow("Seeding demo transactions...", "count", len(plan), "start", appConfig.TrendsStart.Format(models.DateLayout))

	for i, in := range plan {
		if _, err := svc.CreateTransaction(ctx, in); err != nil {
			return fmt.Errorf("seeding transaction %d (%s %s): %w", i, in.Category, in.Date.Format(models.DateLayout), err)
		}
	}

	log.Info("Database seeding completed successfully")
	return nil
}

// hasTransactions reports whether any transaction falls inside the months
// long window starting at start. Seeding only runs into an empty window.
func hasTransactions(ctx context.Context, db *gorm.DB, start time.Time, months int) (bool, error) {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	var count int64
	err := db.WithContext(ctx).Model(&models.Transaction{}).
		Where("date >= ? AND date < ?", first, first.AddDate(0, months, 0)).
		Count(&count).Error
	return count > 0, err
}

type recurring struct {
	day         int
	txType      models.TransactionType
	category    models.Category
	description string
	amount      string
}

var monthly = []recurring{
	{1, models.TransactionTypeIncome, models.CategorySalary, "Monthly salary", "4200.00"},
	{1, models.TransactionTypeExpense, models.CategoryRent, "Apartment rent", "1450.00"},
	{5, models.TransactionTypeExpense, models.CategoryUtilities, "Electricity and water", "96.40"},
	{7, models.TransactionTypeExpense, models.CategoryTransportation, "Transit pass", "64.00"},
	{12, models.TransactionTypeExpense, models.CategoryEntertainment, "Streaming subscriptions", "27.98"},
	{15, models.TransactionTypeIncome, models.CategoryFreelance, "Freelance invoice", "650.00"},
	{18, models.TransactionTypeExpense, models.CategoryHealthcare, "Pharmacy", "23.15"},
	{20, models.TransactionTypeExpense, models.CategoryInvestments, "Index fund contribution", "300.00"},
	{22, models.TransactionTypeExpense, models.CategoryShopping, "Clothing", "84.99"},
	{27, models.TransactionTypeExpense, models.CategoryOther, "Gift", "40.00"},
}

var weekly = []recurring{
	{0, models.TransactionTypeExpense, models.CategoryGroceries, "Weekly groceries", "82.35"},
	{3, models.TransactionTypeExpense, models.CategoryDining, "Dinner out", "38.50"},
}

// demoTransactions builds a deterministic history covering months calendar
// months from start: fixed monthly items plus weekly groceries and dining.
// Amounts vary slightly by month so trend lines are not flat.
func demoTransactions(start time.Time, months int) []models.TransactionInsert {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	var out []models.TransactionInsert

	for m := 0; m < months; m++ {
		monthStart := first.AddDate(0, m, 0)
		drift := decimal.NewFromInt(int64(m % 4)).Mul(decimal.RequireFromString("1.05"))

		for _, r := range monthly {
			out = append(out, insert(r, monthStart.AddDate(0, 0, r.day-1), drift))
		}
		for week := 0; week < 4; week++ {
			for _, r := range weekly {
				out = append(out, insert(r, monthStart.AddDate(0, 0, week*7+r.day), drift))
			}
		}
	}
	return out
}

func insert(r recurring, date time.Time, drift decimal.Decimal) models.TransactionInsert {
	amount := decimal.RequireFromString(r.amount).Add(drift)
	if r.txType == models.TransactionTypeExpense {
		amount = amount.Neg()
	}
	return models.TransactionInsert{
		Amount:      amount,
		Category:    r.category,
		Description: r.description,
		Date:        date,
		Type:        r.txType,
	}
}
