package order

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shakilahmed/banglabazaar-backend/internal/currency"
	"github.com/shakilahmed/banglabazaar-backend/internal/customer"
	"github.com/shakilahmed/banglabazaar-backend/internal/product"
)

// Handler delegates order operations to the order service. It needs the
// customer service for checkout snapshots and the product service to validate
// and price the requested lines.
type Handler struct {
	service         *Service
	customerService customer.ServiceInterface
	productService  product.ServiceInterface
	log             *slog.Logger
}

func NewHandler(s *Service, cs customer.ServiceInterface, ps product.ServiceInterface, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{service: s, customerService: cs, productService: ps, log: log}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
	app.Get("/api/orders", h.listOrders)
	app.Get("/api/orders/:orderId", h.getOrder)
	app.Patch("/api/orders/:orderId", h.updateStatus)
	app.Get("/api/orders/:orderId/invoice", h.invoice)
}

type orderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

type createOrderRequest struct {
	Items           []orderLineRequest `json:"items"`
	ShippingAddress ShippingAddress    `json:"shippingAddress"`
	ShippingMethod  string             `json:"shippingMethod,omitempty"`
	DeliveryType    string             `json:"deliveryType,omitempty"`
	PaymentMethod   string             `json:"paymentMethod,omitempty"`
	PaymentCurrency string             `json:"paymentCurrency,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	customerID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(payload.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "order must contain at least one item"})
	}
	for _, it := range payload.Items {
		if it.ProductID == "" || it.Quantity < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid products"})
		}
	}
	payCurrency := currency.Code(payload.PaymentCurrency)
	if payCurrency == "" {
		payCurrency = currency.BDT
	}
	if !payCurrency.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unsupported payment currency"})
	}

	cust, err := h.customerService.GetByID(c.Context(), customerID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ids := make([]string, 0, len(payload.Items))
	for _, it := range payload.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := h.productService.ListByIDs(c.Context(), ids)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	byID := make(map[string]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var (
		lines    []ProductLine
		subTotal currency.Amount
		discount currency.Amount
	)
	for _, it := range payload.Items {
		p, ok := byID[it.ProductID]
		if !ok || !p.Active {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid products"})
		}
		if it.Quantity < p.EffectiveMinOrderQty() {
			msg := fmt.Sprintf("minimum order quantity for %s is %d", p.Title, p.EffectiveMinOrderQty())
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
		}
		lineTotal := p.Price.MulQty(it.Quantity)
		lines = append(lines, ProductLine{
			ProductID:  p.ID,
			Title:      p.Title,
			Color:      it.Color,
			Size:       it.Size,
			Quantity:   it.Quantity,
			UnitPrice:  p.Price,
			TotalPrice: lineTotal,
		})
		subTotal = subTotal.Add(lineTotal)
		discount = discount.Add(p.DiscountPerUnit().MulQty(it.Quantity))
	}

	shippingRate := ShippingRate(payload.DeliveryType)
	created, err := h.service.Create(c.Context(), Order{
		CustomerID: customerID,
		CustomerInfo: CustomerInfo{
			Name:  cust.FullName(),
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Products:        lines,
		ShippingAddress: payload.ShippingAddress,
		ShippingMethod:  payload.ShippingMethod,
		DeliveryType:    payload.DeliveryType,
		ShippingRate:    shippingRate,
		SubTotal:        subTotal,
		TotalDiscount:   discount,
		TotalAmount:     subTotal.Add(shippingRate),
		PaymentMethod:   payload.PaymentMethod,
		PaymentCurrency: payCurrency,
		Notes:           payload.Notes,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	h.log.Info("order created", "orderId", created.OrderID, "customerId", customerID)
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	if _, err := customer.GetCustomerIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	skip, _ := strconv.ParseInt(c.Query("skip", "0"), 10, 64)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}

	result, err := h.service.List(c.Context(),
		ListFilter{CustomerID: c.Query("userId"), Status: Status(c.Query("status"))},
		ListOptions{Limit: limit, Skip: skip, Sort: c.Query("sort")},
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(result)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	customerID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, err := h.service.GetByOrderID(c.Context(), c.Params("orderId"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if ord.CustomerID != customerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
	}
	return c.JSON(ord)
}

type updateStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
}

// updateStatus is the admin path: beyond authentication there is no
// per-order entitlement check here.
func (h *Handler) updateStatus(c *fiber.Ctx) error {
	if _, err := customer.GetCustomerIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.UpdateStatus(c.Context(), c.Params("orderId"), payload.Status, payload.Location)
	if err != nil {
		switch err {
		case ErrEmptyStatus, ErrUnknownStatus:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) invoice(c *fiber.Ctx) error {
	customerID, err := customer.GetCustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, err := h.service.GetByOrderID(c.Context(), c.Params("orderId"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if ord.CustomerID != customerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="invoice-%s.txt"`, ord.OrderID))

	body, err := RenderInvoice(ord)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Send(body)
}
