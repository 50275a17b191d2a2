package services

import (
	"context"
	"fmt"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestSearchCondition(t *testing.T) {
	t.Run("no_filters", func(t *testing.T) {
		if cond := searchCondition(SearchFilter{Category: "All", Type: "All"}); cond != nil {
			t.Errorf("expected nil condition, got %#v", cond)
		}
	})

	t.Run("sentinel_is_case_sensitive", func(t *testing.T) {
		sql, args, err := searchCondition(SearchFilter{Category: "all"}).ToSql()
		testutil.AssertNoError(t, err)
		if sql != "(category = ?)" || fmt.Sprint(args) != "[all]" {
			t.Errorf("expected an exact category filter, got %q %v", sql, args)
		}
	})

	t.Run("term_and_filters", func(t *testing.T) {
		sql, args, err := searchCondition(SearchFilter{SearchTerm: " Coffee ", Category: "dining", Type: "expense"}).ToSql()
		testutil.AssertNoError(t, err)

		want := "((LOWER(description) LIKE ? OR LOWER(category) LIKE ?) AND category = ? AND type = ?)"
		if sql != want {
			t.Errorf("expected %q, got %q", want, sql)
		}
		wantArgs := []interface{}{"%coffee%", "%coffee%", "dining", "expense"}
		if fmt.Sprint(args) != fmt.Sprint(wantArgs) {
			t.Errorf("expected args %v, got %v", wantArgs, args)
		}
	})
}

func TestSearchTransactions(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := NewTransactionService(db, DefaultTransactionServiceOptions())

	for i := 1; i <= 20; i++ {
		testutil.CreateTestTransactionWithDescription(t, db, models.TransactionTypeExpense, "10", models.CategoryDining,
			fmt.Sprintf("2024-03-%02d", i), fmt.Sprintf("Dinner %d", i))
	}
	testutil.CreateTestTransactionWithDescription(t, db, models.TransactionTypeExpense, "4.5", models.CategoryGroceries, "2024-03-21", "Coffee beans")
	testutil.CreateTestTransactionWithDescription(t, db, models.TransactionTypeIncome, "1000", models.CategorySalary, "2024-03-22", "March salary")

	t.Run("default_limit_with_stats_over_all_matches", func(t *testing.T) {
		got, err := svc.SearchTransactions(ctx, SearchFilter{Category: "dining"})
		testutil.AssertNoError(t, err)

		if len(got.Transactions) != 8 {
			t.Errorf("expected 8 transactions, got %d", len(got.Transactions))
		}
		if got.TotalCount != 20 {
			t.Errorf("expected totalCount 20, got %d", got.TotalCount)
		}
		if !got.HasMore {
			t.Error("expected hasMore")
		}
		if got.SummaryStats.TransactionCount != 20 || got.SummaryStats.TotalExpenses != 200 {
			t.Errorf("expected stats over 20 matches, got %+v", got.SummaryStats)
		}
		if d := got.Transactions[0].Date.Format(models.DateLayout); d != "2024-03-20" {
			t.Errorf("expected newest first, got %s", d)
		}
	})

	t.Run("term_matches_description_or_category", func(t *testing.T) {
		got, err := svc.SearchTransactions(ctx, SearchFilter{SearchTerm: "GROC", Limit: 50})
		testutil.AssertNoError(t, err)
		if got.TotalCount != 1 || got.Transactions[0].Description != "Coffee beans" {
			t.Errorf("expected the groceries transaction, got %+v", got.Transactions)
		}

		got, err = svc.SearchTransactions(ctx, SearchFilter{SearchTerm: "dinner 1", Limit: 50})
		testutil.AssertNoError(t, err)
		// "Dinner 1" and "Dinner 10".."Dinner 19"
		if got.TotalCount != 11 {
			t.Errorf("expected 11 matches, got %d", got.TotalCount)
		}
		if got.HasMore {
			t.Error("expected no more results")
		}
	})

	t.Run("type_filter_and_all_sentinel", func(t *testing.T) {
		got, err := svc.SearchTransactions(ctx, SearchFilter{Category: "All", Type: "income"})
		testutil.AssertNoError(t, err)
		if got.TotalCount != 1 {
			t.Fatalf("expected 1 income match, got %d", got.TotalCount)
		}
		want := SummaryStats{TotalIncome: 1000, Savings: 1000, TransactionCount: 1}
		if got.SummaryStats != want {
			t.Errorf("expected %+v, got %+v", want, got.SummaryStats)
		}
	})

	t.Run("no_filters_returns_everything", func(t *testing.T) {
		got, err := svc.SearchTransactions(ctx, SearchFilter{Limit: 100})
		testutil.AssertNoError(t, err)
		if got.TotalCount != 22 || len(got.Transactions) != 22 {
			t.Errorf("expected 22 transactions, got %d/%d", len(got.Transactions), got.TotalCount)
		}
		want := SummaryStats{TotalExpenses: 204.5, TotalIncome: 1000, Savings: 795.5, TransactionCount: 22}
		if got.SummaryStats != want {
			t.Errorf("expected %+v, got %+v", want, got.SummaryStats)
		}
	})

	t.Run("category_filter_is_exact", func(t *testing.T) {
		got, err := svc.SearchTransactions(ctx, SearchFilter{Category: "Dining", Limit: 50})
		testutil.AssertNoError(t, err)
		if got.TotalCount != 0 {
			t.Errorf("expected no match for a differently cased category, got %d", got.TotalCount)
		}
	})

	t.Run("no_matches", func(t *testing.T) {
		got, err := svc.SearchTransactions(ctx, SearchFilter{SearchTerm: "yacht"})
		testutil.AssertNoError(t, err)
		if got.Transactions == nil || len(got.Transactions) != 0 {
			t.Errorf("expected an empty, non-nil page, got %#v", got.Transactions)
		}
		if got.TotalCount != 0 || got.HasMore {
			t.Errorf("unexpected window: total=%d hasMore=%v", got.TotalCount, got.HasMore)
		}
	})
}
