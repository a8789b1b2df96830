package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/garage-service/internal/api/http"
	"github.com/spec-kit/garage-service/internal/api/http/handlers"
	"github.com/spec-kit/garage-service/internal/config"
	"github.com/spec-kit/garage-service/internal/events"
	"github.com/spec-kit/garage-service/internal/observability"
	"github.com/spec-kit/garage-service/internal/persistence"
	"github.com/spec-kit/garage-service/internal/repository"
	"github.com/spec-kit/garage-service/internal/service"
	"github.com/spec-kit/garage-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	ticketRepo := repository.NewTicketRepository(pool)
	partRepo := repository.NewPartRepository(pool)
	toolRepo := repository.NewToolAssignmentRepository(pool)
	orderedRepo := repository.NewOrderedPartRepository(pool)
	stockRepo := repository.NewOutsourceStockRepository(pool)
	mechanicRepo := repository.NewOutsourceMechanicRepository(pool)
	progressRepo := repository.NewProgressLogRepository(pool)
	inspectionRepo := repository.NewInspectionRepository(pool)
	billRepo := repository.NewBillRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)
	events.NewRedisForwarder(redis.Client, cfg.Redis.EventChannel, logger).Register(dispatcher)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	ticketService := service.NewTicketService(ticketRepo, cfg.Workflow)
	partsService := service.NewPartsService(partRepo, ticketRepo, dispatcher)
	progressService := service.NewProgressService(progressRepo, ticketRepo)
	inventoryService := service.NewInventoryService(toolRepo, orderedRepo, ticketRepo)
	outsourceService := service.NewOutsourceService(stockRepo, mechanicRepo, ticketRepo)
	inspectionService := service.NewInspectionService(inspectionRepo, ticketRepo)
	billingService := service.NewBillingService(billRepo, ticketRepo)
	aggregatorService := service.NewAggregatorService(service.AggregatorDependencies{
		TicketRepo:     ticketRepo,
		PartRepo:       partRepo,
		ToolRepo:       toolRepo,
		OrderedRepo:    orderedRepo,
		StockRepo:      stockRepo,
		MechanicRepo:   mechanicRepo,
		ProgressRepo:   progressRepo,
		InspectionRepo: inspectionRepo,
		Billing:        billingService,
		Logger:         logger,
		Metrics:        metrics,
	})

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(pg, redis),
		Tickets:     handlers.NewTicketsHandler(ticketService, aggregatorService),
		Parts:       handlers.NewPartsHandler(partsService),
		Progress:    handlers.NewProgressHandler(progressService),
		Inventory:   handlers.NewInventoryHandler(inventoryService),
		Outsource:   handlers.NewOutsourceHandler(outsourceService),
		Inspections: handlers.NewInspectionsHandler(inspectionService),
		Billing:     handlers.NewBillingHandler(billingService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
