package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/models"
	"fintrack/internal/services"
)

// AnalyticsHandler serves the chart aggregates.
type AnalyticsHandler struct {
	transactionService services.TransactionServicer
	now                func() time.Time
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(transactionService services.TransactionServicer) *AnalyticsHandler {
	return &AnalyticsHandler{transactionService: transactionService, now: time.Now}
}

// GetCategorySpending handles per-category expense totals
// @Summary     Spending by category
// @Description Expense totals per category for one month, largest first. Defaults to the current month.
// @Tags        analytics
// @Produce     json
// @Param       month query int false "Month (1-12)"
// @Param       year  query int false "Year"
// @Success     200 {object} map[string][]services.CategorySpending "Category totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/categories [get]
func (h *AnalyticsHandler) GetCategorySpending(c *gin.Context) {
	period, err := queryPeriod(c, true)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.transactionService.GetSpendingByCategory(c.Request.Context(), period.Month, period.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetWeeklySpending handles per-day expense totals
// @Summary     Weekly spending
// @Description Expense totals per day within an inclusive range, oldest first. Defaults to the seven days ending today.
// @Tags        analytics
// @Produce     json
// @Param       start query string false "Range start (YYYY-MM-DD)"
// @Param       end   query string false "Range end (YYYY-MM-DD)"
// @Success     200 {object} map[string][]services.DailySpending "Daily totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/weekly [get]
func (h *AnalyticsHandler) GetWeeklySpending(c *gin.Context) {
	end, hasEnd, err := queryDate(c, "end")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !hasEnd {
		end = models.CalendarDay(h.now())
	}

	start, hasStart, err := queryDate(c, "start")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !hasStart {
		start = end.AddDate(0, 0, -6)
	}

	days, err := h.transactionService.GetWeeklySpending(c.Request.Context(), start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GetMonthlyTrends handles the monthly income/expense series
// @Summary     Monthly trends
// @Description Income, expenses and savings per month over the configured window, including empty months.
// @Tags        analytics
// @Produce     json
// @Param       months query int false "Number of months (default from configuration, max 120)"
// @Success     200 {object} map[string][]services.MonthlyTrend "Monthly series"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/trends [get]
func (h *AnalyticsHandler) GetMonthlyTrends(c *gin.Context) {
	months, _, err := queryInt(c, "months")
	if err != nil {
		respondWithError(c, err)
		return
	}

	trends, err := h.transactionService.GetMonthlyTrends(c.Request.Context(), months)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trends": trends})
}
