package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// TransactionForm is the raw, string-typed transaction form submission.
type TransactionForm struct {
	Amount      string `form:"amount" json:"amount" validate:"required,positive_amount"`
	Category    string `form:"category" json:"category" validate:"required,category"`
	Description string `form:"description" json:"description" validate:"nonblank"`
	Type        string `form:"type" json:"type" validate:"transaction_type"`
	Date        string `form:"date" json:"date" validate:"required,calendar_date"`
}

// insertFields mirrors the string-typed columns of a normalized insert payload.
type insertFields struct {
	Category    string `json:"category" validate:"category_exact"`
	Description string `json:"description" validate:"nonblank,trimmed"`
	Type        string `json:"type" validate:"transaction_type"`
}

// messages holds the user-facing message for each field/rule pair.
var messages = map[string]string{
	"amount.required":         "Amount is required",
	"amount.positive_amount":  "Amount must be a positive number",
	"category.required":       "Category is required",
	"category.category":       "Invalid category",
	"category.category_exact": "Invalid category",
	"description.nonblank":    "Description is required",
	"description.trimmed":     "Description must not have surrounding whitespace",
	"type.transaction_type":   "Invalid transaction type",
	"date.required":           "Date is required",
	"date.calendar_date":      "Invalid date format",

	// insert payload checks
	"amount.nonzero": "Amount must not be zero",
	"amount.sign":    "Amount sign does not match transaction type",
	"amount.range":   "Amount is out of range",
	"date.missing":   "Date is required",
}

// FormResult is the outcome of ValidateForm: either a normalized insert
// payload or a non-empty list of field errors.
type FormResult struct {
	Insert models.TransactionInsert
	Errors []apperrors.FieldError
}

// OK reports whether validation succeeded.
func (r FormResult) OK() bool { return len(r.Errors) == 0 }

// ValidateForm checks a raw form submission and, when it is valid, normalizes
// it: expenses become negative, the category is lowercased, the description is
// trimmed and the date is truncated to a calendar day.
func ValidateForm(form TransactionForm) FormResult {
	if errs := fieldErrors(validate.Struct(form)); len(errs) > 0 {
		return FormResult{Errors: errs}
	}

	amount, _ := parseAmount(form.Amount)
	category, _ := models.ParseCategory(form.Category)
	date, _ := ParseDate(form.Date)
	txType := models.TransactionType(form.Type)

	if txType == models.TransactionTypeExpense {
		amount = amount.Neg()
	}

	return FormResult{Insert: models.TransactionInsert{
		Amount:      amount,
		Category:    category,
		Description: strings.TrimSpace(form.Description),
		Date:        date,
		Type:        txType,
	}}
}

// ValidateInsert re-checks a normalized payload before it reaches the store.
func ValidateInsert(in models.TransactionInsert) []apperrors.FieldError {
	errs := fieldErrors(validate.Struct(insertFields{
		Category:    string(in.Category),
		Description: in.Description,
		Type:        string(in.Type),
	}))

	switch {
	case in.Amount.IsZero():
		errs = append(errs, fieldError("amount", "nonzero"))
	case in.Amount.Abs().GreaterThan(maxAmount):
		errs = append(errs, fieldError("amount", "range"))
	case in.Type == models.TransactionTypeExpense && in.Amount.IsPositive(),
		in.Type == models.TransactionTypeIncome && in.Amount.IsNegative():
		errs = append(errs, fieldError("amount", "sign"))
	}

	if in.Date.IsZero() {
		errs = append(errs, fieldError("date", "missing"))
	}
	return errs
}

func fieldErrors(err error) []apperrors.FieldError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperrors.FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldError(fe.Field(), fe.Tag()))
	}
	return out
}

func fieldError(field, rule string) apperrors.FieldError {
	msg, ok := messages[field+"."+rule]
	if !ok {
		msg = "Invalid " + field
	}
	return apperrors.FieldError{Field: field, Message: msg}
}
