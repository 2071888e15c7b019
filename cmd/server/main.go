// Package main is the entry point for the TripPulse travel-offer service.
//
//	@title						TripPulse API
//	@version					1.0.0
//	@description				Plans trips against a budget, synthesizes scored flight offers and keeps their price history.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/trippulse/trippulse-api/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/trippulse/trippulse-api/internal/config"
	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/infrastructure/logger"
	"github.com/trippulse/trippulse-api/internal/infrastructure/ratelimit"
	"github.com/trippulse/trippulse-api/internal/infrastructure/retry"
	"github.com/trippulse/trippulse-api/internal/infrastructure/timeutil"

	// Import generated docs for swagger
	_ "github.com/trippulse/trippulse-api/docs"

	// Application layers
	triphttp "github.com/trippulse/trippulse-api/internal/adapter/http"
	"github.com/trippulse/trippulse-api/internal/adapter/http/middleware"
	"github.com/trippulse/trippulse-api/internal/adapter/repository/memory"
	"github.com/trippulse/trippulse-api/internal/adapter/repository/postgres"
	"github.com/trippulse/trippulse-api/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

// repositories groups the storage backends chosen at startup.
type repositories struct {
	trips     domain.TripRepository
	offers    domain.OfferRepository
	saved     domain.SavedTripRepository
	users     domain.UserRepository
	snapshots domain.PriceSnapshotRepository
	logs      domain.APILogRepository

	pool *pgxpool.Pool
}

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage()).
		Str("rate_limit_backend", cfg.RateLimit.Backend).
		Msg("Configuration loaded")

	ctx := context.Background()
	clock := timeutil.NewRealClock()

	repos, err := setupStorage(ctx, cfg, log, clock)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage")
	}

	limiter, redisClient, err := setupLimiter(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize rate limiter")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Component("http"), middleware.RecoveryConfig{DisablePrintStack: cfg.IsProduction()})

	setupRoutes(e, cfg, log, repos, limiter, clock)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)

	if repos.pool != nil {
		repos.pool.Close()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing redis client")
		}
	}
}

// setupLogger configures the global logger based on config.
func setupLogger(cfg *config.Config) *logger.Logger {
	return logger.Init(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  "trippulse-api",
	})
}

// setupStorage connects to Postgres when DATABASE_URL is set and keeps
// everything in memory otherwise.
func setupStorage(ctx context.Context, cfg *config.Config, log *logger.Logger, clock timeutil.Clock) (*repositories, error) {
	if cfg.Database.URL == "" {
		return &repositories{
			trips:     memory.NewTripRepo(clock),
			offers:    memory.NewOfferRepo(),
			saved:     memory.NewSavedTripRepo(),
			users:     memory.NewUserRepo(),
			snapshots: memory.NewPriceSnapshotRepo(),
			logs:      memory.NewAPILogRepo(memory.DefaultLogCapacity),
		}, nil
	}

	pool, err := postgres.Connect(ctx, cfg.Database.URL, connectRetry(log, "postgres"))
	if err != nil {
		return nil, err
	}

	applied, err := postgres.Migrate(ctx, cfg.Database.URL)
	if err != nil {
		pool.Close()
		return nil, err
	}
	log.Info().Int("applied", applied).Msg("Database migrations complete")

	return &repositories{
		trips:     postgres.NewTripRepo(pool),
		offers:    postgres.NewOfferRepo(pool),
		saved:     postgres.NewSavedTripRepo(pool),
		users:     postgres.NewUserRepo(pool),
		snapshots: postgres.NewPriceSnapshotRepo(pool),
		logs:      postgres.NewAPILogRepo(pool),
		pool:      pool,
	}, nil
}

// setupLimiter builds the search cooldown store. The redis client is returned
// so it can be closed on shutdown.
func setupLimiter(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.RateLimiter, *redis.Client, error) {
	if cfg.RateLimit.Backend != config.BackendRedis {
		return ratelimit.NewWindowLimiter(cfg.Offers.Cooldown), nil, nil
	}

	client, err := retry.DoWithResult(ctx, func() (*redis.Client, error) {
		return ratelimit.NewRedisClient(ctx, ratelimit.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}, connectRetry(log, "redis"))
	if err != nil {
		return nil, nil, err
	}
	return ratelimit.NewRedisLimiter(client, cfg.Offers.Cooldown, log.Component("rate_limiter")), client, nil
}

// connectRetry logs each failed startup attempt against a backing service.
func connectRetry(log *logger.Logger, service string) retry.Config {
	return retry.ConnectConfig.WithOnRetry(func(attempt int, err error) {
		log.Warn().Err(err).Str("service", service).Int("attempt", attempt).Msg("Backing service not ready, retrying")
	})
}

// setupRoutes wires the use cases and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger, repos *repositories, limiter domain.RateLimiter, clock timeutil.Clock) {
	seed := cfg.Offers.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	generator := usecase.NewOfferGenerator(usecase.NewSeededRand(seed), &usecase.GeneratorConfig{
		MinLatency: cfg.Offers.MinLatency,
		MaxLatency: cfg.Offers.MaxLatency,
	})

	trips := usecase.NewTripUseCase(repos.trips, clock)
	search := usecase.NewOfferSearchUseCase(usecase.OfferSearchDeps{
		Generator: generator,
		Limiter:   limiter,
		Trips:     repos.trips,
		Offers:    repos.offers,
		Snapshots: repos.snapshots,
		Logs:      repos.logs,
	}, &usecase.Config{
		Clock:  clock,
		Logger: log.Component("offer_search"),
	})

	deps := triphttp.Deps{
		Trips:    trips,
		Search:   search,
		Offers:   usecase.NewOfferQueryUseCase(repos.trips, repos.offers, repos.snapshots),
		Saved:    usecase.NewSavedTripUseCase(repos.saved, repos.trips, repos.offers, clock),
		Users:    usecase.NewUserUseCase(repos.users, clock),
		Admin:    usecase.NewAdminUseCase(repos.logs),
		Airports: usecase.NewAirportDirectory(),
		Intake:   usecase.NewIntakeUseCase(trips),
		Storage:  cfg.Storage(),
		Clock:    clock,
	}
	if repos.pool != nil {
		deps.Pinger = repos.pool
	}

	auth := middleware.NewAuthenticator(middleware.AuthConfig{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.Issuer,
		TokenTTL: cfg.Auth.TokenTTL,
	})

	var clients *ratelimit.ClientLimiter
	if cfg.RateLimit.ClientEnabled {
		clients = ratelimit.NewClientLimiter(ratelimit.ClientConfig{
			RequestsPerSecond: cfg.RateLimit.ClientRPS,
			BurstSize:         cfg.RateLimit.ClientBurst,
		})
	}

	triphttp.RegisterRoutes(e, triphttp.NewHandler(deps), auth, clients)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
