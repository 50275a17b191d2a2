package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fintrack/internal/advisor"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/services"

	_ "fintrack/internal/docs" // Import swagger docs
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Transactions   services.TransactionServicer
	Dashboard      services.DashboardServicer
	Advisor        advisor.Servicer
	DB             handlers.Pinger
	AllowedOrigins []string
}

// New builds the gin engine with middleware and every route mounted under /api.
func New(deps Dependencies) *gin.Engine {
	transactionHandler := handlers.NewTransactionHandler(deps.Transactions)
	analyticsHandler := handlers.NewAnalyticsHandler(deps.Transactions)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard)
	advisorHandler := handlers.NewAdvisorHandler(deps.Advisor)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS(deps.AllowedOrigins))
	router.Use(middleware.ErrorHandler())

	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", handlers.Health(deps.DB))

	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/search", transactionHandler.SearchTransactions)
	transactions.GET("/stats", transactionHandler.GetSummaryStats)

	analytics := api.Group("/analytics")
	analytics.GET("/categories", analyticsHandler.GetCategorySpending)
	analytics.GET("/weekly", analyticsHandler.GetWeeklySpending)
	analytics.GET("/trends", analyticsHandler.GetMonthlyTrends)

	api.GET("/dashboard", dashboardHandler.GetDashboard)
	api.GET("/categories", handlers.ListCategories)
	api.POST("/ai-advisor", advisorHandler.Ask)

	return router
}
