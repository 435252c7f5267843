package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/refpay/earnings-be/internal/config"
	"github.com/refpay/earnings-be/internal/domain"
	"github.com/refpay/earnings-be/internal/eventbus"
	"github.com/refpay/earnings-be/internal/handler"
	"github.com/refpay/earnings-be/internal/server"
	"github.com/refpay/earnings-be/internal/service"
	"github.com/refpay/earnings-be/internal/storage"
	"github.com/refpay/earnings-be/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	store, directory, cleanup := buildStores(ctx, cfg, log)
	defer cleanup()
	log.Info(ctx, "Store initialized",
		"driver", cfg.Store.Driver,
	)

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}
	bus := eventbus.New(log, eventBusCfg)

	notifier := eventbus.NewLogNotifier(log)
	notificationConsumer := eventbus.NewNotificationConsumer(notifier, log, cfg.Worker.PoolSize)

	if err := bus.Subscribe(eventbus.EventTypeNotification, notificationConsumer); err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	if err := bus.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}
	log.Info(ctx, "Event bus started",
		"worker_count", cfg.Worker.PoolSize,
	)

	validator := service.NewValidator(directory, cfg.Batch.DefaultCurrency)
	ledger := service.NewLedgerApplier(store, directory, log, cfg.Worker.MaxRetries, cfg.Worker.RetryBaseDelay)

	processor := service.NewBatchProcessor(store, validator, ledger, bus, log, service.ProcessorConfig{
		PoolSize:            cfg.Worker.PoolSize,
		MaxEntries:          cfg.Batch.MaxEntries,
		MaxRetries:          cfg.Worker.MaxRetries,
		RetryBaseDelay:      cfg.Worker.RetryBaseDelay,
		CollaboratorTimeout: cfg.Batch.CollaboratorTimeout,
	})
	lifecycle := service.NewLifecycleManager(store, ledger, bus, log, cfg.Batch.CollaboratorTimeout)

	normalizer := service.NewNormalizer(log)
	csvReader := service.NewCSVReader(log)
	earningsService := service.NewEarningsService(processor, lifecycle, normalizer, csvReader, store, log)
	log.Info(ctx, "Services initialized")

	earningsHandler := handler.NewEarningsHandler(earningsService, log)
	healthHandler := handler.NewHealthHandler()

	srv := server.New(cfg, log, earningsHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting new HTTP requests first, then drain the event workers.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}

func buildStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.EarningsStore, domain.AgentDirectory, func()) {
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			log.Fatal(ctx, "Failed to connect to database",
				"error", err,
			)
		}
		return storage.NewPostgresStore(pool), storage.NewPostgresDirectory(pool), pool.Close
	default:
		directory := storage.NewMemoryDirectory()
		if cfg.Store.SeedDemoAgents {
			seedDemoAgents(directory)
			log.Info(ctx, "Seeded demo agents")
		}
		store := storage.NewMemoryStore(storage.WithTierLookup(directory.TierOf))
		return store, directory, func() {}
	}
}

func seedDemoAgents(directory *storage.MemoryDirectory) {
	for _, agent := range []domain.Agent{
		{ID: "agt-1", Code: "AG-1001", Name: "Amelia Ortiz", Tier: "gold"},
		{ID: "agt-2", Code: "AG-1002", Name: "Noah Becker", Tier: "silver"},
		{ID: "agt-3", Code: "AG-1003", Name: "Priya Raman", Tier: "bronze"},
	} {
		agent.AvailableBalance = decimal.Zero
		agent.TotalEarnings = decimal.Zero
		directory.AddAgent(agent)
	}
}
