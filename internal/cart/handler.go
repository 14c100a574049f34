package cart

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shakilahmed/banglabazaar-backend/internal/currency"
	"github.com/shakilahmed/banglabazaar-backend/internal/customer"
)

// Handler delegates cart operations to the cart service. The session key is
// the authenticated customer id.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/cart", h.getCart)
	app.Post("/api/cart/items", h.addItem)
	app.Patch("/api/cart/items/:productId", h.updateQuantity)
	app.Delete("/api/cart/items/:productId", h.removeItem)
	app.Delete("/api/cart", h.clearCart)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items     []Item          `json:"items"`
	SubTotal  currency.Amount `json:"subTotal"`
	ItemCount int             `json:"itemCount"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func toResponse(c Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return cartResponse{
		Items:     items,
		SubTotal:  c.SubTotal(),
		ItemCount: c.ItemCount(),
		UpdatedAt: c.UpdatedAt,
	}
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sessionID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	current, err := h.service.Get(c.Context(), sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(toResponse(current))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	sessionID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	updated, err := h.service.AddItem(c.Context(), sessionID, payload.ProductID, payload.Color, payload.Size, payload.Quantity)
	if err != nil {
		return h.toError(c, err)
	}
	return c.JSON(toResponse(updated))
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	sessionID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.UpdateQuantity(c.Context(), sessionID, c.Params("productId"), payload.Quantity)
	if err != nil {
		return h.toError(c, err)
	}
	return c.JSON(toResponse(updated))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	sessionID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	updated, err := h.service.RemoveItem(c.Context(), sessionID, c.Params("productId"))
	if err != nil {
		return h.toError(c, err)
	}
	return c.JSON(toResponse(updated))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sessionID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Clear(c.Context(), sessionID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) toError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrProductNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	case ErrItemNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "item not in cart"})
	case ErrInvalidQuantity, ErrBelowMinimum:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
