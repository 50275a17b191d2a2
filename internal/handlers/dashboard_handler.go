package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// DashboardHandler serves the home screen overview.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardResponse is the overview shown on the home screen.
type DashboardResponse struct {
	RecentTransactions []TransactionResponse        `json:"recentTransactions"`
	CategoryData       []services.CategorySpending  `json:"categoryData"`
	WeeklySpending     []services.DailySpending     `json:"weeklySpending"`
	MonthlyTrends      []services.MonthlyTrend      `json:"monthlyTrends"`
	SummaryStats       services.SummaryStats        `json:"summaryStats"`
	SavingsGoal        services.SavingsGoalProgress `json:"savingsGoal"`
}

// GetDashboard handles the dashboard overview
// @Summary     Dashboard
// @Description Recent transactions, the month's category split and summary, the week's daily spending, monthly trends and savings goal progress.
// @Tags        dashboard
// @Produce     json
// @Param       date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success     200 {object} DashboardResponse "Dashboard"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	date, _, err := queryDate(c, "date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	dash, err := h.dashboardService.GetDashboard(c.Request.Context(), services.DashboardQuery{Date: date})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		RecentTransactions: toTransactionResponses(dash.RecentTransactions),
		CategoryData:       dash.CategoryData,
		WeeklySpending:     dash.WeeklySpending,
		MonthlyTrends:      dash.MonthlyTrends,
		SummaryStats:       dash.SummaryStats,
		SavingsGoal:        dash.SavingsGoal,
	})
}
