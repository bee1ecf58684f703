package portal

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes administrator endpoints for crediting and removing
// accounts.
type AdminHandler struct {
	service *Service
}

// NewAdminHandler constructs an administrator HTTP handler.
func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login verifies administrator credentials.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.AuthenticateAdmin(c.UserContext(), req.Username, req.Password); err != nil {
		return errorToHTTP(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "authenticated"})
}

// ListAccounts returns every account, newest first.
func (h *AdminHandler) ListAccounts(c *fiber.Ctx) error {
	accounts := h.service.List(c.UserContext())
	out := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toAccountResponse(account))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"accounts": out,
		"count":    len(out),
	})
}

// Credit adds funds to an account's wallet through the same path as a top-up.
func (h *AdminHandler) Credit(c *fiber.Ctx) error {
	var req TopUpRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	account, err := h.service.TopUp(c.UserContext(), c.Params("accountId"), req.Amount)
	if err != nil {
		return errorToHTTP(err)
	}
	return c.Status(http.StatusOK).JSON(PaymentResponse{Account: toAccountResponse(account)})
}

// Remove deletes an account. Removing an unknown account succeeds.
func (h *AdminHandler) Remove(c *fiber.Ctx) error {
	if err := h.service.Remove(c.UserContext(), c.Params("accountId")); err != nil {
		return errorToHTTP(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
