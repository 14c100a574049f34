package favorite

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shakilahmed/banglabazaar-backend/internal/customer"
	"github.com/shakilahmed/banglabazaar-backend/internal/product"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/favorites", h.list)
	app.Post("/api/favorites/:productId", h.add)
	app.Delete("/api/favorites/:productId", h.remove)
}

func (h *Handler) list(c *fiber.Ctx) error {
	customerID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	products, err := h.service.List(c.Context(), customerID)
	if err != nil {
		if err == ErrCustomerNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) add(c *fiber.Ctx) error {
	customerID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ids, err := h.service.Add(c.Context(), customerID, c.Params("productId"))
	if err != nil {
		switch err {
		case product.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrCustomerNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "customer not found"})
		case ErrAlreadyFavorite:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"favoriteProductIds": ids})
}

func (h *Handler) remove(c *fiber.Ctx) error {
	customerID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ids, err := h.service.Remove(c.Context(), customerID, c.Params("productId"))
	if err != nil {
		switch err {
		case ErrCustomerNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "customer not found"})
		case ErrNotFavorite:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"favoriteProductIds": ids})
}
