package portal

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/aitprint-portal/AITPRINT/internal/ledger"
)

// Handler exposes the public account and recharge endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a portal HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register creates a pending account and returns its UPI payment link.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	account, link, err := h.service.Register(c.UserContext(), ledger.RegisterInput{
		Name:   req.Name,
		Mobile: req.Mobile,
		Type:   req.Type,
	})
	if err != nil {
		return errorToHTTP(err)
	}

	return c.Status(http.StatusCreated).JSON(RegisterResponse{
		Account:     toAccountResponse(account),
		PaymentLink: link,
		LastUID:     account.ID,
	})
}

// Get looks an account up by UID.
func (h *Handler) Get(c *fiber.Ctx) error {
	account, err := h.service.Get(c.UserContext(), c.Params("accountId"))
	if err != nil {
		return errorToHTTP(err)
	}
	return c.Status(http.StatusOK).JSON(toAccountResponse(account))
}

// TopUp credits the account's wallet.
func (h *Handler) TopUp(c *fiber.Ctx) error {
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

// SimulatePayment records a claimed UPI payment of the registration fee.
func (h *Handler) SimulatePayment(c *fiber.Ctx) error {
	account, receipt, err := h.service.SimulatePayment(c.UserContext(), c.Params("accountId"))
	if err != nil {
		return errorToHTTP(err)
	}
	return c.Status(http.StatusOK).JSON(PaymentResponse{
		Account:   toAccountResponse(account),
		Reference: receipt.Reference,
	})
}

// PaymentLink returns the UPI link for the account's registration fee.
func (h *Handler) PaymentLink(c *fiber.Ctx) error {
	link, err := h.service.PaymentLink(c.UserContext(), c.Params("accountId"))
	if err != nil {
		return errorToHTTP(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"payment_link": link})
}

func errorToHTTP(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrUnauthorized):
		return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
