package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/campus-portal/internal/api/http"
	"github.com/spec-kit/campus-portal/internal/api/http/handlers"
	"github.com/spec-kit/campus-portal/internal/auth"
	"github.com/spec-kit/campus-portal/internal/config"
	"github.com/spec-kit/campus-portal/internal/events"
	"github.com/spec-kit/campus-portal/internal/observability"
	"github.com/spec-kit/campus-portal/internal/persistence"
	"github.com/spec-kit/campus-portal/internal/repository"
	"github.com/spec-kit/campus-portal/internal/service"
	"github.com/spec-kit/campus-portal/internal/session"
	"github.com/spec-kit/campus-portal/internal/worker"
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

	backends := map[string]handlers.Pinger{}
	var store persistence.KeyValueStore
	switch cfg.Session.Store {
	case config.StorePostgres:
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
		slots := persistence.NewPostgresStore(pg.PoolHandle())
		worker.StartSlotJanitor(ctx, slots, cfg.Session.PurgeInterval(), logger)
		backends["postgres"] = pg
		store = slots
	case config.StoreRedis:
		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		backends["redis"] = redis
		store = persistence.NewRedisStore(redis.Client)
	default:
		store = persistence.NewMemoryStore()
	}

	if cfg.Session.SealSecret != "" {
		sealed, err := persistence.NewSealedStore(store, cfg.Session.SealSecret)
		if err != nil {
			logger.Fatal("failed to init sealed store", zap.Error(err))
		}
		store = sealed
	}

	timeout := cfg.Remote.Timeout()
	authRepo := repository.NewAuthRepository(repository.NewClient(cfg.Remote.AuthURL, timeout, logger))
	eventRepo := repository.NewEventRepository(repository.NewClient(cfg.Remote.EventsURL, timeout, logger))
	noticeRepo := repository.NewNoticeRepository(repository.NewClient(cfg.Remote.NoticesURL, timeout, logger))
	resourceRepo := repository.NewResourceRepository(repository.NewClient(cfg.Remote.ResourcesURL, timeout, logger))
	userRepo := repository.NewUserRepository(repository.NewClient(cfg.Remote.AdminURL, timeout, logger))

	dispatcher := events.NewInMemoryDispatcher()
	sessions := session.NewService(store, auth.NewUnverifiedDecoder(), authRepo, dispatcher, logger, session.Options{
		KeyPrefix: cfg.Session.KeyPrefix,
		TTL:       cfg.Session.TTL(),
	})
	defer sessions.Close()

	validator := service.NewFormValidator()
	metrics := observability.NewMetrics()
	pagesHandler := handlers.NewPagesHandler()
	guard := auth.NewGuard(session.SnapshotOf, pagesHandler.Loading, metrics)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		Views:   httptransport.NewViews(),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.Session.Store, backends, metrics),
		Pages:     pagesHandler,
		Auth:      handlers.NewAuthHandler(service.NewAuthForms(validator)),
		Events:    handlers.NewEventsHandler(service.NewEventService(eventRepo, validator)),
		Notices:   handlers.NewNoticesHandler(service.NewNoticeService(noticeRepo, validator)),
		Resources: handlers.NewResourcesHandler(service.NewResourceService(resourceRepo, validator)),
		Admin:     handlers.NewAdminHandler(service.NewAdminService(userRepo, validator)),
		Session: sessions.Middleware(session.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
			TTL:    cfg.Session.TTL(),
		}),
		Guard: guard,
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
