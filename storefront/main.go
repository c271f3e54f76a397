package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/tair/wastesmart-storefront/internal/backend"
	cartdomain "github.com/tair/wastesmart-storefront/internal/cart/domain"
	sessiondomain "github.com/tair/wastesmart-storefront/internal/session/domain"
	"github.com/tair/wastesmart-storefront/internal/session/repository"
	"github.com/tair/wastesmart-storefront/kafka"
	"github.com/tair/wastesmart-storefront/pkg/database"
	"github.com/tair/wastesmart-storefront/pkg/logger"
	"github.com/tair/wastesmart-storefront/pkg/tracing"
	"github.com/tair/wastesmart-storefront/storefront/config"
	_ "github.com/tair/wastesmart-storefront/storefront/docs"
	"github.com/tair/wastesmart-storefront/storefront/health"
	"github.com/tair/wastesmart-storefront/storefront/middleware"
	"github.com/tair/wastesmart-storefront/storefront/routes"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(logger.Config{
		Service:     cfg.ServiceName,
		Development: cfg.IsDevelopment(),
		Level:       cfg.LogLevel,
	})

	if err := cfg.Validate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Strs("backend", cfg.Backend.BaseURLs).
		Msg("Starting storefront")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.InitTracer(tracing.Config{
		ServiceName:    cfg.ServiceName,
		JaegerEndpoint: cfg.JaegerEndpoint,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Redis backs the rate limiter and, by default, the session store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	redisUp := redisClient.Ping(ctx).Err() == nil
	if redisUp {
		logger.Logger.Info().Str("redis_addr", cfg.Redis.Addr).Msg("Connected to Redis")
	} else {
		logger.Logger.Warn().Str("redis_addr", cfg.Redis.Addr).Msg("Redis unreachable - sign-in rate limiting disabled")
	}

	store, closeStore, err := buildSessionStore(ctx, cfg, redisClient, redisUp)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("store", cfg.Session.Store).Msg("Failed to initialize session store")
	}
	defer closeStore()

	client := backend.NewClient(backend.Config{
		BaseURLs: cfg.Backend.BaseURLs,
		Timeout:  cfg.Backend.Timeout,
	})

	checks := map[string]health.CheckFunc{
		"backend":       client.Ping,
		"session_store": store.Ping,
	}

	var publisher cartdomain.EventPublisher = kafka.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		p, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable - checkout events will not be published")
		} else {
			defer p.Close()
			publisher = p
			checks["kafka"] = p.Ping
		}
	}

	var cacheClient *redis.Client
	if redisUp {
		cacheClient = redisClient
	}

	sf, err := InitializeStorefront(cfg, client, cacheClient, store, publisher, registry)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to wire storefront")
	}

	go sweepCarts(ctx, sf.Carts, cfg.Session.CartIdle)

	var limiter *middleware.RateLimiter
	if redisUp {
		limiter = middleware.NewRateLimiter(redisClient, "auth", cfg.RateLimit.AuthRequests, cfg.RateLimit.Window)
		if err := limiter.TrustProxies(cfg.RateLimit.TrustedProxies); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Invalid TRUSTED_PROXIES")
		}
	}

	router := routes.SetupRoutes(routes.Options{
		Modules:     []routes.Module{sf.Session, sf.Catalog, sf.Cart},
		Middleware:  middleware.DefaultMiddlewareConfig(sf.Middleware.Handler),
		Health:      health.NewHealthChecker(cfg.ServiceName, checks),
		Gatherer:    registry,
		AuthLimiter: limiter,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept", "traceparent", "tracestate"},
		ExposedHeaders:   []string{"X-Trace-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Handler(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("addr", srv.Addr).
			Str("session_store", cfg.Session.Store).
			Msg("Storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down storefront")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Logger.Info().Msg("Storefront stopped")
}

// buildSessionStore opens the configured session backend wrapped in tracing
func buildSessionStore(ctx context.Context, cfg *config.StorefrontConfig, redisClient *redis.Client, redisUp bool) (sessiondomain.Store, func(), error) {
	switch cfg.Session.Store {
	case config.StoreRedis:
		if !redisUp {
			return nil, nil, fmt.Errorf("redis at %s is unreachable", cfg.Redis.Addr)
		}
		store := repository.NewRedisStore(redisClient, cfg.Session.TTL)
		return repository.NewTracingStore(store, config.StoreRedis), func() {}, nil

	case config.StorePostgres:
		db, err := database.NewGormConnection(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		store := repository.NewGormStore(db, cfg.Session.TTL)
		if err := store.AutoMigrate(); err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		go purgeSessions(ctx, store, cfg.Session.TTL)
		return repository.NewTracingStore(store, config.StorePostgres), func() { sqlDB.Close() }, nil

	case config.StoreMemory:
		logger.Logger.Warn().Msg("Using in-memory sessions; they are lost on restart")
		return repository.NewTracingStore(repository.NewMemoryStore(), config.StoreMemory), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}

func purgeSessions(ctx context.Context, store *repository.GormStore, ttl time.Duration) {
	ticker := time.NewTicker(sweepInterval(ttl))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to purge expired sessions")
				continue
			}
			if n > 0 {
				logger.Logger.Info().Int64("purged", n).Msg("Expired sessions purged")
			}
		}
	}
}

func sweepCarts(ctx context.Context, carts *cartdomain.Registry, idle time.Duration) {
	ticker := time.NewTicker(sweepInterval(idle))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := carts.Sweep(idle); n > 0 {
				logger.Logger.Info().Int("dropped", n).Int("remaining", carts.Len()).Msg("Idle carts swept")
			}
		}
	}
}

func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	return interval
}
