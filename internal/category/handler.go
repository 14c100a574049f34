package category

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shakilahmed/banglabazaar-backend/internal/customer"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/categories", h.list)
	app.Get("/api/categories/:slug", h.getBySlug)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/categories", h.create)
}

func (h *Handler) list(c *fiber.Ctx) error {
	categories, err := h.service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(categories)
}

func (h *Handler) getBySlug(c *fiber.Ctx) error {
	cat, err := h.service.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(cat)
}

func (h *Handler) create(c *fiber.Ctx) error {
	if _, err := customer.GetCustomerIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(Category)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(c.Context(), *payload)
	if err != nil {
		switch err {
		case ErrInvalidName:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrSlugExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
