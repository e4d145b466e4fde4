package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/rewards-pool/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/usecase/access"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/usecase/content"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/usecase/pool"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/id"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/staging"
	timeProvider "github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/rewards-pool/internal/infrastructure/config"
)

// revocationSweepInterval is how often expired session revocations are purged
const revocationSweepInterval = time.Hour

//	@title						Rewards Pool API
//	@version					1.0
//	@description				Points, referrals, the conversion pool and the learning CMS.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	secrets, err := identity.LoadSecretsFromEnv()
	if err != nil {
		log.Fatalf("Failed to load secrets: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Service:    "rewards-pool",
	})
	defer func() { _ = appLogger.Flush() }()
	appLogger.Info("Logger initialized", map[string]any{
		"environment": cfg.Environment,
		"level":       appLogger.GetLevel().String(),
	})

	if err := run(cfg, secrets, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, secrets identity.Secrets, appLogger coreport.Logger) error {
	tp := timeProvider.NewRealTimeProvider()
	ids := id.NewUUIDGenerator()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()

	// Connect to the database and bring the schema up to date
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	db, err := dbManager.Connect(startupCtx)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(startupCtx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Scratch space for federated onboarding
	redisClient, err := staging.NewClient(startupCtx, staging.ClientOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("Failed to close redis client", map[string]any{"error": err.Error()})
		}
	}()
	profileStore := staging.NewRedisProfileStore(redisClient, cfg.App.StagedProfileTTL, appLogger)

	identityProvider := identity.NewProvider(db, ids, tp, appLogger, identity.Options{
		Issuer:            cfg.Auth.Issuer,
		SessionTTL:        cfg.Auth.SessionTTL,
		FederatedIssuer:   cfg.Auth.FederatedIssuer,
		FederatedAudience: cfg.Auth.FederatedAudience,
		Secrets:           secrets,
	})

	// Initialize use cases
	accessService := access.NewService(dbManager.UserRepository(), appLogger)
	poolService := pool.NewService(dbManager.CreateUnitOfWork(), ids, tp, appLogger, pool.Options{
		MinimumPoints: cfg.Pool.MinimumConversionPoints,
		QueueSize:     cfg.Pool.QueueSize,
	})
	accountUseCase := account.NewAccountUseCase(
		dbManager.CreateUnitOfWork(),
		identityProvider,
		profileStore,
		accessService,
		ids,
		tp,
		appLogger,
		account.Options{
			ReferralLinkBase:     cfg.App.ReferralLinkBase,
			ReferralCodeAttempts: cfg.App.ReferralCodeAttempts,
		},
	)
	contentService := content.NewService(dbManager.ArticleRepository(), ids, tp, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.CORS.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:       handler.NewAuthHandler(accountUseCase, appLogger),
		Access:     handler.NewAccessHandler(accessService),
		User:       handler.NewUserHandler(accountUseCase, appLogger),
		Pool:       handler.NewPoolHandler(poolService, appLogger),
		Settlement: handler.NewSettlementHandler(poolService, appLogger),
		Article:    handler.NewArticleHandler(contentService, appLogger),
		Health:     handler.NewHealthHandler(dbManager, appLogger),
	}, routes.Guards{
		Identity: identityProvider,
		Access:   accessService,
		Logger:   appLogger,
	}, cfg.Server.EnableSwagger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepRevocations(sweepCtx, identityProvider, appLogger)

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		poolService.Shutdown()
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests first so no conversion is queued after the pool drains
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Draining conversion queue...", nil)
	poolService.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// sweepRevocations periodically drops revocations of sessions that have expired anyway
func sweepRevocations(ctx context.Context, provider *identity.Provider, appLogger coreport.Logger) {
	ticker := time.NewTicker(revocationSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := provider.PurgeExpiredRevocations(ctx)
			if err != nil {
				appLogger.Warn("Failed to purge expired revocations", map[string]any{"error": err.Error()})
				continue
			}
			if purged > 0 {
				appLogger.Debug("Purged expired revocations", map[string]any{"count": purged})
			}
		}
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
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

	// Validate database configuration
	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path")
		}
	case database.DriverPostgres:
		required := map[string]string{
			"database.host (or RP_DB_HOST)":         cfg.Database.Host,
			"database.port (or RP_DB_PORT)":         cfg.Database.Port,
			"database.username (or RP_DB_USERNAME)": cfg.Database.Username,
			"database.password (or RP_DB_PASSWORD)": cfg.Database.Password,
			"database.database (or RP_DB_NAME)":     cfg.Database.Database,
		}
		for name, value := range required {
			if value == "" {
				missingConfigs = append(missingConfigs, name)
			}
		}
	default:
		return fmt.Errorf("invalid database driver: %q, must be %s or %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "redis.addr")
	}

	// Validate pool configuration
	if cfg.Pool.MinimumConversionPoints <= 0 {
		missingConfigs = append(missingConfigs, "pool.minimumConversionPoints")
	}

	if cfg.App.ReferralLinkBase == "" {
		missingConfigs = append(missingConfigs, "app.referralLinkBase")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite allows a single writer and is meant for development")
		}

		// Check database security settings
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if cfg.Server.EnableSwagger {
			warnings = append(warnings, "server.enableSwagger exposes the API description in production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
