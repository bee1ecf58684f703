package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aitprint-portal/AITPRINT/internal/portal"
)

// RegisterAccountRoutes wires the public registration and recharge endpoints.
func RegisterAccountRoutes(r fiber.Router, h *portal.Handler) {
	r.Post("/accounts", h.Register)
	r.Get("/accounts/:accountId", h.Get)
	r.Get("/accounts/:accountId/payment-link", h.PaymentLink)
	r.Post("/accounts/:accountId/topup", h.TopUp)
	r.Post("/accounts/:accountId/payments/simulate", h.SimulatePayment)
}
