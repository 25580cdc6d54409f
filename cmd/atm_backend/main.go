package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/atm_backend/internal/core/dispenser"
	portsrepo "github.com/SscSPs/atm_backend/internal/core/ports/repositories"
	"github.com/SscSPs/atm_backend/internal/core/services"
	"github.com/SscSPs/atm_backend/internal/core/withdrawal"
	"github.com/SscSPs/atm_backend/internal/handlers"
	"github.com/SscSPs/atm_backend/internal/middleware"
	"github.com/SscSPs/atm_backend/internal/platform/config"
	"github.com/SscSPs/atm_backend/internal/platform/seed"
	"github.com/SscSPs/atm_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/atm_backend/internal/repositories/memory"
	"github.com/SscSPs/atm_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title ATM Backend API
// @version 1.0
// @description Cash dispenser backend: balances, deposits, exact-change withdrawals and cash section administration.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey CardAuth
// @in header
// @name Authorization
// @description Type "Atm:" followed by a space and card:pin.

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires the application and serves until the server stops. Every startup
// failure is returned so deferred cleanup runs before main exits.
func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.AdminAPIKeyGenerated {
		logger.Warn("ADMIN_API_KEY not set, using a generated key for this process",
			slog.String("admin_api_key", cfg.AdminAPIKey))
	}

	seedData, err := seed.LoadFile(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	var greedyOpts []withdrawal.GreedyOption
	if cfg.WithdrawAllowFullBalance {
		greedyOpts = append(greedyOpts, withdrawal.WithInclusiveBalanceCheck())
	}
	atm, err := dispenser.New(seedData.Catalog, withdrawal.NewGreedy(greedyOpts...), seedData.Sections...)
	if err != nil {
		return fmt.Errorf("failed to initialize dispenser: %w", err)
	}
	logger.Info("Dispenser loaded",
		slog.Int("sections", len(seedData.Sections)),
		slog.String("total", atm.TotalBalance().String()))

	accountRepo := memory.NewAccountRepository()
	if err := seedData.Apply(context.Background(), accountRepo); err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}
	logger.Info("Accounts seeded", slog.Int("count", len(seedData.Accounts)))

	repos := portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		JournalRepo: memory.NewJournalRepository(),
	}
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to initialize database pool: %w", err)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		repos = pgsql.NewRepositoryProvider(dbPool, accountRepo)
	} else {
		logger.Warn("PGSQL_URL not set, journal is kept in memory")
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, atm)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, atm.Catalog()); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("server failed to run: %w", err)
	}
	return nil
}
