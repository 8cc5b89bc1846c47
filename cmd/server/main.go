package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iho/gowallet/internal/adapter/event"
	httpAdapter "github.com/iho/gowallet/internal/adapter/http"
	"github.com/iho/gowallet/internal/adapter/http/handler"
	"github.com/iho/gowallet/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/gowallet/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/gowallet/internal/adapter/repository/redis"
	"github.com/iho/gowallet/internal/infrastructure/config"
	"github.com/iho/gowallet/internal/infrastructure/eventpublisher"
	"github.com/iho/gowallet/internal/infrastructure/logger"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
	"github.com/iho/gowallet/internal/infrastructure/postgres"
	"github.com/iho/gowallet/internal/infrastructure/redis"
	"github.com/iho/gowallet/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns, cfg.DatabaseTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	balanceRepo := postgresRepo.NewBalanceRepository(pool)
	historyRepo := postgresRepo.NewHistoryRepository(pool)
	var outboxRepo usecase.OutboxRepository = postgresRepo.NewOutboxRepository(pool)
	if !cfg.OutboxEnabled {
		outboxRepo = postgresRepo.NewNullOutboxRepository()
	}
	snapshotCache := redisRepo.NewSnapshotCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	retrier := postgresRepo.NewRetrier()
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	ledgerUC := usecase.NewLedgerUseCase(
		txManager,
		transactionRepo,
		balanceRepo,
		historyRepo,
		outboxRepo,
		retrier,
		snapshotCache,
		idGen,
		m,
	)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)
	balanceUC := usecase.NewBalanceUseCase(balanceRepo, historyRepo, snapshotCache, m).
		WithCacheTTL(cfg.BalanceCacheTTL)
	reconciliationUC := usecase.NewReconciliationUseCase(transactionRepo, balanceRepo, historyRepo)

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(ledgerUC, transactionUC)
	balanceHandler := handler.NewBalanceHandler(balanceUC, reconciliationUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: transactionHandler,
		BalanceHandler:     balanceHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		Logger:             log,
	})

	// Background workers log via slog
	workerLog := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Outbox publisher
	if cfg.OutboxEnabled {
		var publisher eventpublisher.Publisher
		if cfg.KafkaEnabled() {
			kafkaPublisher := eventpublisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaEventsTopic)
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
			log.Info().Strs("brokers", cfg.KafkaBrokers).Msg("kafka publishing enabled")
		} else {
			publisher = eventpublisher.NewLogPublisher(workerLog)
			log.Info().Msg("kafka not configured, logging outbox events")
		}

		outboxPublisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
			OutboxRepo: outboxRepo,
			Publisher:  publisher,
			Logger:     workerLog,
			Metrics:    m,
			BatchSize:  cfg.OutboxBatchSize,
			Interval:   cfg.OutboxInterval,
		})
		go func() {
			if err := outboxPublisher.Start(ctx); err != nil {
				log.Error().Err(err).Msg("outbox publisher stopped")
			}
		}()
	} else {
		log.Info().Msg("outbox publishing disabled")
	}

	// Intake consumer
	if cfg.KafkaEnabled() {
		consumer := event.NewConsumer(event.ConsumerConfig{
			Brokers:  cfg.KafkaBrokers,
			Topic:    cfg.KafkaIntakeTopic,
			GroupID:  cfg.KafkaConsumerGroup,
			LedgerUC: ledgerUC,
			Logger:   workerLog,
			Metrics:  m,
		})
		defer consumer.Close()
		go func() {
			if err := consumer.Start(ctx); err != nil {
				log.Error().Err(err).Msg("intake consumer stopped")
			}
		}()
	}

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
