package validator

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func validForm() TransactionForm {
	return TransactionForm{
		Amount:      "12.50",
		Category:    "Dining",
		Description: "  Lunch with team ",
		Type:        "expense",
		Date:        "2024-03-05",
	}
}

func TestValidateForm(t *testing.T) {
	t.Run("expense_is_normalized", func(t *testing.T) {
		result := ValidateForm(validForm())
		if !result.OK() {
			t.Fatalf("expected valid form, got %+v", result.Errors)
		}
		in := result.Insert
		testutil.AssertDecimal(t, in.Amount, "-12.50")
		if in.Category != models.CategoryDining {
			t.Errorf("expected dining, got %q", in.Category)
		}
		if in.Description != "Lunch with team" {
			t.Errorf("expected trimmed description, got %q", in.Description)
		}
		if !in.Date.Equal(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected date %v", in.Date)
		}
	})

	t.Run("income_stays_positive", func(t *testing.T) {
		form := validForm()
		form.Type = "income"
		form.Category = "SALARY"
		result := ValidateForm(form)
		if !result.OK() {
			t.Fatalf("expected valid form, got %+v", result.Errors)
		}
		testutil.AssertDecimal(t, result.Insert.Amount, "12.50")
		if result.Insert.Category != models.CategorySalary {
			t.Errorf("expected salary, got %q", result.Insert.Category)
		}
	})

	t.Run("amount_rounded_to_cents", func(t *testing.T) {
		form := validForm()
		form.Amount = "12.345"
		result := ValidateForm(form)
		if !result.OK() {
			t.Fatalf("expected valid form, got %+v", result.Errors)
		}
		testutil.AssertDecimal(t, result.Insert.Amount, "-12.35")
	})

	t.Run("timestamp_truncated_to_day", func(t *testing.T) {
		form := validForm()
		form.Date = "2024-03-05T23:30:00Z"
		result := ValidateForm(form)
		if !result.OK() {
			t.Fatalf("expected valid form, got %+v", result.Errors)
		}
		if got := result.Insert.Date.Format(models.DateLayout); got != "2024-03-05" {
			t.Errorf("expected 2024-03-05, got %s", got)
		}
	})

	tests := []struct {
		name    string
		mutate  func(f *TransactionForm)
		field   string
		message string
	}{
		{"missing_amount", func(f *TransactionForm) { f.Amount = "" }, "amount", "Amount is required"},
		{"non_numeric_amount", func(f *TransactionForm) { f.Amount = "twelve" }, "amount", "Amount must be a positive number"},
		{"negative_amount", func(f *TransactionForm) { f.Amount = "-5" }, "amount", "Amount must be a positive number"},
		{"zero_amount", func(f *TransactionForm) { f.Amount = "0.001" }, "amount", "Amount must be a positive number"},
		{"oversized_amount", func(f *TransactionForm) { f.Amount = "100000000" }, "amount", "Amount must be a positive number"},
		{"unknown_category", func(f *TransactionForm) { f.Category = "yachts" }, "category", "Invalid category"},
		{"blank_description", func(f *TransactionForm) { f.Description = "   " }, "description", "Description is required"},
		{"unknown_type", func(f *TransactionForm) { f.Type = "transfer" }, "type", "Invalid transaction type"},
		{"missing_date", func(f *TransactionForm) { f.Date = "" }, "date", "Date is required"},
		{"bad_date", func(f *TransactionForm) { f.Date = "03/05/2024" }, "date", "Invalid date format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			result := ValidateForm(form)
			if result.OK() {
				t.Fatal("expected validation errors")
			}
			if len(result.Errors) != 1 {
				t.Fatalf("expected exactly one error, got %+v", result.Errors)
			}
			if got := result.Errors[0]; got.Field != tt.field || got.Message != tt.message {
				t.Errorf("expected %s: %q, got %s: %q", tt.field, tt.message, got.Field, got.Message)
			}
		})
	}

	t.Run("reports_every_failing_field", func(t *testing.T) {
		result := ValidateForm(TransactionForm{})
		testutil.AssertFieldErrors(t, result.Errors, "amount", "category", "description", "type", "date")
	})
}

func TestValidateInsert(t *testing.T) {
	valid := models.TransactionInsert{
		Amount:      decimal.RequireFromString("-12.50"),
		Category:    models.CategoryDining,
		Description: "Lunch",
		Date:        time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Type:        models.TransactionTypeExpense,
	}

	t.Run("valid", func(t *testing.T) {
		if errs := ValidateInsert(valid); len(errs) != 0 {
			t.Errorf("expected no errors, got %+v", errs)
		}
	})

	tests := []struct {
		name    string
		mutate  func(in *models.TransactionInsert)
		field   string
		message string
	}{
		{"zero_amount", func(in *models.TransactionInsert) { in.Amount = decimal.Zero }, "amount", "Amount must not be zero"},
		{"positive_expense", func(in *models.TransactionInsert) { in.Amount = in.Amount.Neg() }, "amount", "Amount sign does not match transaction type"},
		{"negative_income", func(in *models.TransactionInsert) { in.Type = models.TransactionTypeIncome }, "amount", "Amount sign does not match transaction type"},
		{"out_of_range", func(in *models.TransactionInsert) { in.Amount = decimal.RequireFromString("-100000000") }, "amount", "Amount is out of range"},
		{"uppercase_category", func(in *models.TransactionInsert) { in.Category = "Dining" }, "category", "Invalid category"},
		{"untrimmed_description", func(in *models.TransactionInsert) { in.Description = " Lunch" }, "description", "Description must not have surrounding whitespace"},
		{"blank_description", func(in *models.TransactionInsert) { in.Description = "" }, "description", "Description is required"},
		{"unknown_type", func(in *models.TransactionInsert) { in.Type = "refund" }, "type", "Invalid transaction type"},
		{"missing_date", func(in *models.TransactionInsert) { in.Date = time.Time{} }, "date", "Date is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			errs := ValidateInsert(in)
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %+v", errs)
			}
			if errs[0].Field != tt.field || errs[0].Message != tt.message {
				t.Errorf("expected %s: %q, got %s: %q", tt.field, tt.message, errs[0].Field, errs[0].Message)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-02-29", "2024-02-29", false},
		{" 2024-03-05 ", "2024-03-05", false},
		{"2024-03-05T10:15:00+08:00", "2024-03-05", false},
		{"2024-03-05T10:15", "2024-03-05", false},
		{"2023-02-29", "", true},
		{"yesterday", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			testutil.AssertNoError(t, err)
			if got.Format(models.DateLayout) != tt.want || got.Location() != time.UTC || got.Hour() != 0 {
				t.Errorf("expected midnight UTC %s, got %v", tt.want, got)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	Register()

	type query struct {
		Category string `binding:"category"`
	}
	if err := binding.Validator.ValidateStruct(query{Category: "Groceries"}); err != nil {
		t.Errorf("expected valid category, got %v", err)
	}
	if err := binding.Validator.ValidateStruct(query{Category: "yachts"}); err == nil {
		t.Error("expected the custom category rule to reject an unknown category")
	}
}
