package address

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shakilahmed/banglabazaar-backend/internal/customer"
)

// Handler delegates address book operations to the address service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/addresses", h.list)
	app.Post("/api/addresses", h.create)
	app.Patch("/api/addresses/:addressId", h.update)
	app.Delete("/api/addresses/:addressId", h.delete)
}

type addressRequest struct {
	Label      string `json:"label"`
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Area       string `json:"area"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (h *Handler) list(c *fiber.Ctx) error {
	customerID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	addresses, err := h.service.List(c.Context(), customerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(addresses)
}

func (h *Handler) create(c *fiber.Ctx) error {
	customerID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(addressRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(c.Context(), Address{
		CustomerID: customerID,
		Label:      payload.Label,
		Recipient:  payload.Recipient,
		Phone:      payload.Phone,
		Line1:      payload.Line1,
		Area:       payload.Area,
		City:       payload.City,
		PostalCode: payload.PostalCode,
		Country:    payload.Country,
	})
	if err != nil {
		if err == ErrMissingFields {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) update(c *fiber.Ctx) error {
	customerID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	existing, err := h.service.Get(c.Context(), customerID, c.Params("addressId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "address not found"})
	}

	payload := new(addressRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Label != "" {
		existing.Label = payload.Label
	}
	if payload.Recipient != "" {
		existing.Recipient = payload.Recipient
	}
	if payload.Phone != "" {
		existing.Phone = payload.Phone
	}
	if payload.Line1 != "" {
		existing.Line1 = payload.Line1
	}
	if payload.Area != "" {
		existing.Area = payload.Area
	}
	if payload.City != "" {
		existing.City = payload.City
	}
	if payload.PostalCode != "" {
		existing.PostalCode = payload.PostalCode
	}
	if payload.Country != "" {
		existing.Country = payload.Country
	}

	updated, err := h.service.Update(c.Context(), existing)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "address not found"})
		case ErrMissingFields:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	customerID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Delete(c.Context(), customerID, c.Params("addressId")); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "address not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
