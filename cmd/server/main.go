package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/redis/go-redis/v9"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/storage"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/store"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// backend is the snapshot store picked by STORAGE_DRIVER plus whatever has
// to be pinged and closed alongside it.
type backend struct {
	snap  storage.Snapshotter
	ping  handlers.Pinger
	close func()
}

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	level := logging.ParseLevel(cfg.AppEnv)
	logging.Setup(level)

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	be, err := openBackend(cfg)
	if err != nil {
		slog.Error("storage backend unavailable", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}

	// Database log handler (ERROR+ async batch) and 30-day retention
	var dbLogHandler *logging.DBHandler
	cleanupDone := make(chan struct{})
	if cfg.UsesDatabase() {
		dbLogHandler = logging.NewDBHandler(database.DB, 5*time.Second)
		slog.SetDefault(slog.New(logging.NewMultiHandler(
			logging.NewJSONHandler(os.Stdout, level),
			dbLogHandler,
		)))
		logging.StartCleanup(database.DB, cleanupDone)
	}

	// Store
	auth, err := store.NewDemoAuthenticator(store.SeedUsers(), cfg.DemoPassword, cfg.LoginDelay)
	if err != nil {
		slog.Error("authenticator setup failed", "error", err)
		be.close()
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := store.Open(ctx, store.Options{
		Authenticator: auth,
		Snapshotter:   be.snap,
		Namespace:     cfg.StorageNamespace,
	})
	cancel()
	if err != nil {
		slog.Error("failed to load store snapshot", "driver", cfg.StorageDriver, "error", err)
		be.close()
		os.Exit(1)
	}

	// Services
	authService := services.NewAuthService(st, cfg)
	faqService := services.NewFAQService(services.DefaultFAQs)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	routes.Setup(app, cfg, authService, routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService, st),
		Profile:   handlers.NewProfileHandler(st),
		User:      handlers.NewUserHandler(st),
		Report:    handlers.NewReportHandler(st),
		Inbox:     handlers.NewInboxHandler(st),
		Dashboard: handlers.NewDashboardHandler(st),
		FAQ:       handlers.NewFAQHandler(faqService),
		Health:    handlers.NewHealthHandler(be.ping),
	}, routes.DefaultLimits)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	slog.Info("server starting", "port", cfg.Port, "storage", cfg.StorageDriver)
	exitCode := 0
	if err := serve(app, ":"+cfg.Port, quit); err != nil {
		exitCode = 1
	}

	// Let in-flight snapshot saves land before the backend closes.
	st.Wait()

	close(cleanupDone)
	if dbLogHandler != nil {
		dbLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)
	be.close()

	slog.Info("server stopped")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// serve runs app until a signal arrives on quit or Listen fails. A listen
// failure is returned so the caller still goes through the shutdown path.
func serve(app *fiber.App, addr string, quit <-chan os.Signal) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(addr)
	}()

	select {
	case <-quit:
		slog.Info("shutting down server...")
		if err := app.Shutdown(); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
		return nil
	case err := <-listenErr:
		if err == nil {
			return nil
		}
		slog.Error("server failed to start", "error", err)
		return err
	}
}

func openBackend(cfg *config.Config) (*backend, error) {
	switch cfg.StorageDriver {
	case "file":
		snap, err := storage.NewFileSnapshotter(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return &backend{snap: snap, close: func() {}}, nil

	case "postgres", "sqlite":
		if err := database.Connect(cfg); err != nil {
			return nil, err
		}
		if err := database.Migrate(database.DB); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &backend{
			snap: storage.NewGormSnapshotter(database.DB),
			ping: func(context.Context) error { return database.Ping() },
			close: func() {
				if sqlDB, err := database.DB.DB(); err == nil {
					if err := sqlDB.Close(); err != nil {
						slog.Error("database close error", "error", err)
					}
				}
			},
		}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return &backend{
			snap: storage.NewRedisSnapshotter(client, cfg.RedisPrefix),
			ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
			close: func() {
				if err := client.Close(); err != nil {
					slog.Error("redis close error", "error", err)
				}
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
