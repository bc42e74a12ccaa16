package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	authUseCase "github.com/pennyledger/finance-tracker/internal/domain/usecase/auth"
	ledgerUseCase "github.com/pennyledger/finance-tracker/internal/domain/usecase/ledger"

	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/logger"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/repository"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/security"
	timeProvider "github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/time"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Logger.Level, cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	if cfg.Session.Secret == config.InsecureDefaultSecret {
		appLogger.Warn("Session secret is the insecure default; set FT_SESSION_SECRET", nil)
	}

	// Setup database configuration
	dbConfig := &database.Config{
		URL:             cfg.Database.URL,
		SQLitePath:      cfg.Database.SQLitePath,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
		LogLevel:        cfg.Logger.Level,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.Connect(dbConfig, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	// Run migrations
	if err := database.Migrate(conn.DB, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB, appLogger)
	transactionRepo := repository.NewTransactionRepository(conn.DB, appLogger)

	// Initialize use cases
	hasher := security.NewBcryptHasher()
	authUseCaseImpl := authUseCase.NewAuthUseCase(userRepo, hasher, tp, appLogger)
	ledgerUseCaseImpl := ledgerUseCase.NewLedgerUseCase(transactionRepo, tp, appLogger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCaseImpl, appLogger)
	ledgerHandler := handler.NewLedgerHandler(ledgerUseCaseImpl, appLogger)

	// Initialize Gin router
	router := gin.New()
	router.LoadHTMLGlob(cfg.Server.TemplatesGlob)

	routes.SetupMiddlewares(router, cfg.Session, tp, appLogger)
	routes.SetupRoutes(router, authHandler, ledgerHandler, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if cfg.Server.TemplatesGlob == "" {
		missingConfigs = append(missingConfigs, "server.templatesGlob")
	}

	if cfg.Database.URL == "" && cfg.Database.SQLitePath == "" {
		missingConfigs = append(missingConfigs, "database.url (or database.sqlitePath)")
	}

	if cfg.Session.Secret == "" {
		missingConfigs = append(missingConfigs, "session.secret")
	}
	if cfg.Session.CookieName == "" {
		missingConfigs = append(missingConfigs, "session.cookieName")
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
