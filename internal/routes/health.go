package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterHealthRoutes adds liveness/readiness style endpoints.
func RegisterHealthRoutes(app *fiber.App, d Deps) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		storeStatus := "ok"
		cacheStatus := "ok"

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if d.Store != nil {
			if _, err := d.Store.Load(ctx); err != nil {
				storeStatus = err.Error()
			}
		}
		if d.Cache != nil {
			if err := d.Cache.Ping(ctx).Err(); err != nil {
				cacheStatus = err.Error()
			}
		}
		status := http.StatusOK
		if storeStatus != "ok" || cacheStatus != "ok" {
			status = http.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":    fiber.Map{"store": storeStatus, "redis": cacheStatus},
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
}
