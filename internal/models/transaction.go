package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used on the wire and in query strings.
const DateLayout = "2006-01-02"

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// TransactionTypes lists the supported transaction types in display order.
var TransactionTypes = []TransactionType{TransactionTypeExpense, TransactionTypeIncome}

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single income or expense record. Expense amounts
// are stored negative and income amounts positive.
type Transaction struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category    Category        `gorm:"type:varchar(100);not null" json:"category"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Type        TransactionType `gorm:"type:varchar(10);not null" json:"type"`
}

// TableName pins the table name used by migrations.
func (Transaction) TableName() string { return "transactions" }

// AbsAmount returns the magnitude of the amount regardless of direction.
func (t *Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// FormattedAmount returns the absolute amount with two decimal places.
func (t *Transaction) FormattedAmount() string {
	return t.AbsAmount().StringFixed(2)
}

// Sign returns "+" for income and "-" for expenses.
func (t *Transaction) Sign() string {
	if t.Type == TransactionTypeIncome {
		return "+"
	}
	return "-"
}

// DisplayAmount renders the amount the way it is shown in lists, e.g. "-$12.50".
func (t *Transaction) DisplayAmount() string {
	return t.Sign() + "$" + t.FormattedAmount()
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool { return t.Type == TransactionTypeExpense }

// IsIncome reports whether the transaction is income.
func (t *Transaction) IsIncome() bool { return t.Type == TransactionTypeIncome }

// TransactionInsert is the normalized payload accepted by the store: the amount
// is already sign-adjusted, the category lowercased and the description trimmed.
type TransactionInsert struct {
	Amount      decimal.Decimal
	Category    Category
	Description string
	Date        time.Time
	Type        TransactionType
}

// ToModel converts the payload into a record ready for insertion.
func (in TransactionInsert) ToModel() *Transaction {
	return &Transaction{
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		Type:        in.Type,
	}
}

// CalendarDay truncates t to midnight UTC of its calendar date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
