package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aitprint-portal/AITPRINT/internal/portal"
)

// RegisterAdminRoutes wires the administrator endpoints. Everything except
// login sits behind the credential guard.
func RegisterAdminRoutes(r fiber.Router, h *portal.AdminHandler, guard fiber.Handler, rateLimiter fiber.Handler) {
	group := r.Group("/admin")
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, h.Login)
	} else {
		group.Post("/login", h.Login)
	}

	protected := group.Group("", guard)
	protected.Get("/accounts", h.ListAccounts)
	protected.Post("/accounts/:accountId/credit", h.Credit)
	protected.Delete("/accounts/:accountId", h.Remove)
}
