package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/legal-case-service/internal/api/http"
	"github.com/spec-kit/legal-case-service/internal/api/http/handlers"
	"github.com/spec-kit/legal-case-service/internal/auth"
	"github.com/spec-kit/legal-case-service/internal/config"
	"github.com/spec-kit/legal-case-service/internal/events"
	"github.com/spec-kit/legal-case-service/internal/observability"
	"github.com/spec-kit/legal-case-service/internal/persistence"
	"github.com/spec-kit/legal-case-service/internal/repository"
	"github.com/spec-kit/legal-case-service/internal/service"
	"github.com/spec-kit/legal-case-service/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	processRepo := repository.NewProcessRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)
	agendaRepo := repository.NewAgendaRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg, userRepo)
	clientService := service.NewClientService(clientRepo, processRepo)
	processService := service.NewProcessService(processRepo, taskRepo, agendaRepo, dispatcher)
	taskService := service.NewTaskService(taskRepo, dispatcher)
	agendaService := service.NewAgendaService(agendaRepo, processRepo, dispatcher)
	dashboardService := service.NewDashboardService(dashboardRepo, redis, logger)

	mailSender := service.NewLogMailSender(logger, cfg.SMTP)
	notificationService := service.NewNotificationService(dispatcher, processRepo, userRepo, mailSender, logger)
	worker.StartReminderWorker(notificationService)
	go worker.RunDeadlineScanner(ctx, agendaRepo, dispatcher, logger, time.Hour, 72*time.Hour)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, cfg, logger, metrics, redis)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.App.Env, pg, redis),
		Auth:       handlers.NewAuthHandler(authService),
		Clients:    handlers.NewClientsHandler(clientService),
		Processes:  handlers.NewProcessesHandler(processService),
		Tasks:      handlers.NewTasksHandler(taskService),
		Agenda:     handlers.NewAgendaHandler(agendaService),
		Dashboard:  handlers.NewDashboardHandler(dashboardService),
		Middleware: authMiddleware,
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
