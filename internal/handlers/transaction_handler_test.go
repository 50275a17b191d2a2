package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn func(ctx context.Context, in models.TransactionInsert) (*models.Transaction, error)
	getAllFn            func(ctx context.Context, limit int) ([]models.Transaction, error)
	byTypeFn            func(ctx context.Context, transactionType models.TransactionType) ([]models.Transaction, error)
	byDateRangeFn       func(ctx context.Context, start, end time.Time) ([]models.Transaction, error)
	byCategoryFn        func(ctx context.Context, month, year int) ([]services.CategorySpending, error)
	weeklyFn            func(ctx context.Context, start, end time.Time) ([]services.DailySpending, error)
	trendsFn            func(ctx context.Context, months int) ([]services.MonthlyTrend, error)
	summaryFn           func(ctx context.Context, period *services.Period) (*services.SummaryStats, error)
	searchFn            func(ctx context.Context, filter services.SearchFilter) (*services.SearchResult, error)
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, in models.TransactionInsert) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(ctx, in)
	}
	tx := in.ToModel()
	tx.ID = 1
	return tx, nil
}

func (m *mockTransactionService) GetAllTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, limit)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactionsByType(ctx context.Context, transactionType models.TransactionType) ([]models.Transaction, error) {
	if m.byTypeFn != nil {
		return m.byTypeFn(ctx, transactionType)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	if m.byDateRangeFn != nil {
		return m.byDateRangeFn(ctx, start, end)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) GetSpendingByCategory(ctx context.Context, month, year int) ([]services.CategorySpending, error) {
	if m.byCategoryFn != nil {
		return m.byCategoryFn(ctx, month, year)
	}
	return []services.CategorySpending{}, nil
}

func (m *mockTransactionService) GetWeeklySpending(ctx context.Context, start, end time.Time) ([]services.DailySpending, error) {
	if m.weeklyFn != nil {
		return m.weeklyFn(ctx, start, end)
	}
	return []services.DailySpending{}, nil
}

func (m *mockTransactionService) GetMonthlyTrends(ctx context.Context, months int) ([]services.MonthlyTrend, error) {
	if m.trendsFn != nil {
		return m.trendsFn(ctx, months)
	}
	return []services.MonthlyTrend{}, nil
}

func (m *mockTransactionService) GetSummaryStats(ctx context.Context, period *services.Period) (*services.SummaryStats, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, period)
	}
	return &services.SummaryStats{}, nil
}

func (m *mockTransactionService) SearchTransactions(ctx context.Context, filter services.SearchFilter) (*services.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, filter)
	}
	return &services.SearchResult{Transactions: []models.Transaction{}}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.ListTransactions)
	r.GET("/transactions/search", handler.SearchTransactions)
	r.GET("/transactions/stats", handler.GetSummaryStats)
	return r
}

func validForm() url.Values {
	return url.Values{
		"amount":      {"12.50"},
		"category":    {"Dining"},
		"description": {"  Lunch with team  "},
		"type":        {"expense"},
		"date":        {"2024-03-05"},
	}
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 with normalized transaction", func(t *testing.T) {
		var got models.TransactionInsert
		svc := &mockTransactionService{
			createTransactionFn: func(_ context.Context, in models.TransactionInsert) (*models.Transaction, error) {
				got = in
				tx := in.ToModel()
				tx.ID = 7
				return tx, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doFormRequest(r, "/transactions", validForm())

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.Amount.Equal(decimal.RequireFromString("-12.5")) || got.Category != models.CategoryDining || got.Description != "Lunch with team" {
			t.Errorf("unexpected insert payload: %+v", got)
		}

		result := parseJSON(t, rec)
		if result["message"] != "Transaction saved successfully" {
			t.Errorf("unexpected message %v", result["message"])
		}
		tx := result["transaction"].(map[string]interface{})
		if tx["amount"] != "-12.50" || tx["displayAmount"] != "-$12.50" || tx["sign"] != "-" || tx["date"] != "2024-03-05" {
			t.Errorf("unexpected transaction: %v", tx)
		}
		summary := result["summary"].(map[string]interface{})
		if summary["amount"] != 12.5 || summary["type"] != "expense" || summary["category"] != "dining" {
			t.Errorf("unexpected summary: %v", summary)
		}
	})

	t.Run("income_stays_positive", func(t *testing.T) {
		var got models.TransactionInsert
		svc := &mockTransactionService{
			createTransactionFn: func(_ context.Context, in models.TransactionInsert) (*models.Transaction, error) {
				got = in
				return in.ToModel(), nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		form := validForm()
		form.Set("type", "income")
		form.Set("category", "salary")
		rec := doFormRequest(r, "/transactions", form)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.Amount.Equal(decimal.RequireFromString("12.5")) {
			t.Errorf("expected positive amount, got %s", got.Amount)
		}
	})

	t.Run("returns 400 with field details on invalid form", func(t *testing.T) {
		called := false
		svc := &mockTransactionService{
			createTransactionFn: func(context.Context, models.TransactionInsert) (*models.Transaction, error) {
				called = true
				return nil, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		form := url.Values{
			"amount":      {"-5"},
			"category":    {"yachts"},
			"description": {"   "},
			"type":        {"expense"},
			"date":        {"not-a-date"},
		}
		rec := doFormRequest(r, "/transactions", form)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "VALIDATION_FAILED")
		if result["error"] != "Validation failed" || result["message"] != "Please check your input and try again." {
			t.Errorf("unexpected error body: %v", result)
		}
		assertDetailFields(t, result, "amount", "category", "description", "date")
		if called {
			t.Error("service must not be called for invalid input")
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		form := validForm()
		form.Set("amount", "0")
		rec := doFormRequest(r, "/transactions", form)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertDetailFields(t, parseJSON(t, rec), "amount")
	})

	t.Run("returns 409 on duplicate", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(context.Context, models.TransactionInsert) (*models.Transaction, error) {
				return nil, apperrors.ErrDuplicateTransaction
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doFormRequest(r, "/transactions", validForm())

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "DUPLICATE_TRANSACTION")
		if result["error"] != "Transaction already exists" {
			t.Errorf("unexpected error %v", result["error"])
		}
	})

	t.Run("returns 400 on invalid reference", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(context.Context, models.TransactionInsert) (*models.Transaction, error) {
				return nil, apperrors.ErrInvalidReference
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doFormRequest(r, "/transactions", validForm())

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_REFERENCE")
	})

	t.Run("returns 500 without leaking internals", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(context.Context, models.TransactionInsert) (*models.Transaction, error) {
				return nil, apperrors.Wrap(apperrors.ErrTransactionSave, context.DeadlineExceeded)
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doFormRequest(r, "/transactions", validForm())

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "TRANSACTION_SAVE_FAILED")
		if result["error"] != "Failed to save transaction" || result["message"] != "An unexpected error occurred. Please try again." {
			t.Errorf("unexpected error body: %v", result)
		}
	})
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	sample := []models.Transaction{{
		ID:          3,
		Amount:      decimal.RequireFromString("-7.25"),
		Category:    models.CategoryTransportation,
		Description: "Bus",
		Date:        time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		Type:        models.TransactionTypeExpense,
	}}

	t.Run("newest with limit", func(t *testing.T) {
		var gotLimit int
		svc := &mockTransactionService{
			getAllFn: func(_ context.Context, limit int) ([]models.Transaction, error) {
				gotLimit = limit
				return sample, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions?limit=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotLimit != 5 {
			t.Errorf("expected limit 5, got %d", gotLimit)
		}
		txs := parseJSON(t, rec)["transactions"].([]interface{})
		if len(txs) != 1 || txs[0].(map[string]interface{})["amount"] != "-7.25" {
			t.Errorf("unexpected transactions: %v", txs)
		}
	})

	t.Run("by type", func(t *testing.T) {
		var gotType models.TransactionType
		svc := &mockTransactionService{
			byTypeFn: func(_ context.Context, transactionType models.TransactionType) ([]models.Transaction, error) {
				gotType = transactionType
				return []models.Transaction{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions?type=income", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotType != models.TransactionTypeIncome {
			t.Errorf("expected income, got %q", gotType)
		}
	})

	t.Run("by date range", func(t *testing.T) {
		var gotStart, gotEnd time.Time
		svc := &mockTransactionService{
			byDateRangeFn: func(_ context.Context, start, end time.Time) ([]models.Transaction, error) {
				gotStart, gotEnd = start, end
				return sample, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions?start=2024-03-01&end=2024-03-31", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotStart.Format(models.DateLayout) != "2024-03-01" || gotEnd.Format(models.DateLayout) != "2024-03-31" {
			t.Errorf("unexpected range %s..%s", gotStart, gotEnd)
		}
	})

	t.Run("returns 400 on half-open range", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?start=2024-03-01", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on limit out of range", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions?limit=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestTransactionHandler_SearchTransactions(t *testing.T) {
	t.Run("passes filters and renders window", func(t *testing.T) {
		var got services.SearchFilter
		svc := &mockTransactionService{
			searchFn: func(_ context.Context, filter services.SearchFilter) (*services.SearchResult, error) {
				got = filter
				return &services.SearchResult{
					Transactions: []models.Transaction{{ID: 1, Amount: decimal.NewFromInt(-10), Category: models.CategoryDining, Type: models.TransactionTypeExpense}},
					SummaryStats: services.SummaryStats{TotalExpenses: 200, TransactionCount: 20, Savings: -200},
					TotalCount:   20,
					HasMore:      true,
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions/search?searchTerm=din&category=All&type=expense", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		want := services.SearchFilter{SearchTerm: "din", Category: "All", Type: "expense"}
		if got != want {
			t.Errorf("expected filter %+v, got %+v", want, got)
		}

		result := parseJSON(t, rec)
		if result["totalCount"] != float64(20) || result["hasMore"] != true {
			t.Errorf("unexpected window: %v", result)
		}
		stats := result["summaryStats"].(map[string]interface{})
		if stats["transactionCount"] != float64(20) || stats["totalExpenses"] != float64(200) {
			t.Errorf("unexpected stats: %v", stats)
		}
		if len(result["transactions"].([]interface{})) != 1 {
			t.Errorf("expected 1 transaction")
		}
	})

	t.Run("empty result renders empty list", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions/search", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		txs, ok := parseJSON(t, rec)["transactions"].([]interface{})
		if !ok || len(txs) != 0 {
			t.Errorf("expected empty list, got %v", txs)
		}
	})

	t.Run("returns 500 on failure", func(t *testing.T) {
		svc := &mockTransactionService{
			searchFn: func(context.Context, services.SearchFilter) (*services.SearchResult, error) {
				return nil, apperrors.ErrSearchFailed
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions/search?searchTerm=x", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SEARCH_FAILED")
	})
}

func TestTransactionHandler_GetSummaryStats(t *testing.T) {
	t.Run("all time", func(t *testing.T) {
		var gotPeriod *services.Period
		svc := &mockTransactionService{
			summaryFn: func(_ context.Context, period *services.Period) (*services.SummaryStats, error) {
				gotPeriod = period
				return &services.SummaryStats{TotalIncome: 100, Savings: 100, TransactionCount: 1}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions/stats", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotPeriod != nil {
			t.Errorf("expected no period, got %+v", gotPeriod)
		}
		if parseJSON(t, rec)["totalIncome"] != float64(100) {
			t.Error("expected totalIncome 100")
		}
	})

	t.Run("single month", func(t *testing.T) {
		var gotPeriod *services.Period
		svc := &mockTransactionService{
			summaryFn: func(_ context.Context, period *services.Period) (*services.SummaryStats, error) {
				gotPeriod = period
				return &services.SummaryStats{}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions/stats?month=3&year=2024", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotPeriod == nil || *gotPeriod != (services.Period{Month: 3, Year: 2024}) {
			t.Errorf("expected March 2024, got %+v", gotPeriod)
		}
	})

	t.Run("returns 400 when year missing", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "GET", "/transactions/stats?month=3", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
