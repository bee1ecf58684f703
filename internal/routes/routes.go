package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/aitprint-portal/AITPRINT/internal/config"
	"github.com/aitprint-portal/AITPRINT/internal/ledger"
	"github.com/aitprint-portal/AITPRINT/internal/middleware"
	"github.com/aitprint-portal/AITPRINT/internal/notification"
	"github.com/aitprint-portal/AITPRINT/internal/portal"
	"github.com/aitprint-portal/AITPRINT/internal/store"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Store  store.Store
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log in desired format: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Logger != nil {
		app.Use(middleware.Audit(d.Logger))
	}
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	seedAdmin := ledger.Administrator{
		Username: d.Cfg.AdminUsername,
		Password: d.Cfg.AdminPassword,
	}
	notifier := notification.NewLoggerNotifier(d.Logger)
	svc, err := portal.NewService(context.Background(), d.Store, seedAdmin, d.Cfg.UPIVPA, nil, notifier)
	if err != nil {
		return err
	}

	portalHandler := portal.NewHandler(svc)
	adminHandler := portal.NewAdminHandler(svc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	RegisterAccountRoutes(api, portalHandler)

	// Admin routes
	rateLimiter := middleware.AdminLoginRateLimit(d.Cache, 5)
	guard := middleware.AdminGuard(svc.AuthenticateAdmin)
	RegisterAdminRoutes(api, adminHandler, guard, rateLimiter)

	return nil
}
