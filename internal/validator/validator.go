// Package validator implements transaction input validation and registers the
// same custom rules with Gin's binding engine.
package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// maxAmount is the largest magnitude a DECIMAL(10,2) column can hold.
var maxAmount = decimal.RequireFromString("99999999.99")

var dateLayouts = []string{
	models.DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// rules maps tag names to their implementations. They are registered both on
// the package validator used for form payloads and on Gin's binding engine.
var rules = map[string]validator.Func{
	"positive_amount":  validatePositiveAmount,
	"category":         validateCategory,
	"category_exact":   validateCategoryExact,
	"transaction_type": validateTransactionType,
	"calendar_date":    validateCalendarDate,
	"nonblank":         validateNonBlank,
	"trimmed":          validateTrimmed,
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(fieldName)
	for tag, fn := range rules {
		_ = v.RegisterValidation(tag, fn)
	}
	return v
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
		for tag, fn := range rules {
			_ = v.RegisterValidation(tag, fn)
		}
	}
}

// fieldName reports fields by their form/json name rather than the Go name.
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// ParseDate parses a calendar date given as YYYY-MM-DD or an RFC3339-like
// timestamp and returns midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return models.CalendarDay(t), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// parseAmount parses a user supplied amount rounded to cents.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	return d.Round(2), nil
}

func validatePositiveAmount(fl validator.FieldLevel) bool {
	d, err := parseAmount(fl.Field().String())
	return err == nil && d.IsPositive() && d.LessThanOrEqual(maxAmount)
}

func validateCategory(fl validator.FieldLevel) bool {
	_, ok := models.ParseCategory(fl.Field().String())
	return ok
}

func validateCategoryExact(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Valid()
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func validateNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateTrimmed(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == strings.TrimSpace(s)
}
