package bkash

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shakilahmed/banglabazaar-backend/internal/customer"
	"github.com/shakilahmed/banglabazaar-backend/internal/order"
)

// Handler exposes payment initiation (protected) and the gateway callback
// (public; the gateway calls it server-to-server and via browser redirect).
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/payment/bkash/callback", h.callback)
	app.Get("/api/payment/bkash/callback", h.callback)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/payment/bkash/create", h.createPayment)
}

type createPaymentRequest struct {
	OrderID string `json:"orderId"`
	Phone   string `json:"phone"`
}

func (h *Handler) createPayment(c *fiber.Ctx) error {
	if _, err := customer.GetCustomerIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(createPaymentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.OrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "orderId is required"})
	}

	result, err := h.service.CreatePayment(c.Context(), payload.OrderID, payload.Phone)
	if err != nil {
		switch err {
		case ErrInvalidPhone, ErrAlreadyPaid, ErrInvalidAmount:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case order.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(result)
}

type callbackRequest struct {
	PaymentID string `json:"paymentID"`
}

// callback always answers with a redirect, whatever happened inside.
func (h *Handler) callback(c *fiber.Ctx) error {
	paymentID := c.Query("paymentID")
	if paymentID == "" {
		payload := new(callbackRequest)
		if err := c.BodyParser(payload); err == nil {
			paymentID = payload.PaymentID
		}
	}

	url := h.service.Reconcile(c.Context(), paymentID)
	return c.Redirect(url, fiber.StatusFound)
}
