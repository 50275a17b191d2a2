package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fintrack/internal/advisor"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/router"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack records income and expenses, aggregates them for charts and search, and relays budgeting questions to an AI advisor.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	transactionService := services.NewTransactionService(dbManager.DB(), services.TransactionServiceOptions{
		TrendsStart:  appConfig.TrendsStart,
		TrendsMonths: appConfig.TrendsMonths,
		SearchLimit:  appConfig.SearchDefaultLimit,
	})
	dashboardService := services.NewDashboardService(transactionService, appConfig.SavingsGoal)

	provider, err := advisor.NewProvider(advisor.ProviderConfig{
		Kind:    appConfig.AdvisorProvider,
		APIKey:  appConfig.OpenAIAPIKey,
		BaseURL: appConfig.OpenAIBaseURL,
		Model:   appConfig.AdvisorModel,
	}, &http.Client{})
	if err != nil {
		return fmt.Errorf("failed to configure AI advisor: %w", err)
	}
	if provider == nil {
		log.Warn("OPENAI_API_KEY is not set; the AI advisor is disabled")
	}
	advisorService := advisor.NewService(provider, appConfig.AdvisorTimeout)

	// Initialize Gin router
	handler := router.New(router.Dependencies{
		Transactions:   transactionService,
		Dashboard:      dashboardService,
		Advisor:        advisorService,
		DB:             dbManager,
		AllowedOrigins: appConfig.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + appConfig.Port,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting Fintrack backend server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
