package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date parses a YYYY-MM-DD literal, failing the test on error.
func Date(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", s, err)
	}
	return d
}

// CreateTestTransaction stores a transaction of the given type. amount is the
// magnitude; expenses are stored negative.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, amount string, category models.Category, date string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionWithDescription(t, db, txType, amount, category, date, fmt.Sprintf("Test transaction %d", nextID()))
}

// CreateTestTransactionWithDescription is CreateTestTransaction with a fixed description.
func CreateTestTransactionWithDescription(t *testing.T, db *gorm.DB, txType models.TransactionType, amount string, category models.Category, date, description string) *models.Transaction {
	t.Helper()

	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid fixture amount %q: %v", amount, err)
	}
	value = value.Abs()
	if txType == models.TransactionTypeExpense {
		value = value.Neg()
	}

	tx := &models.Transaction{
		Amount:      value,
		Category:    category,
		Description: description,
		Date:        Date(t, date),
		Type:        txType,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
