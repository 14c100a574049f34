package order

import (
	"context"
	"errors"
	"time"

	"github.com/shakilahmed/banglabazaar-backend/internal/currency"
)

var (
	ErrEmptyStatus   = errors.New("status is required")
	ErrUnknownStatus = errors.New("unknown status")
)

// createAttempts bounds the order-id retry loop. The suffix space is 10k per
// day, so a handful of redraws is plenty at this volume.
const createAttempts = 5

// shippingRates maps delivery types to flat rates. Unknown types fall back
// to standard.
var shippingRates = map[string]currency.Amount{
	"standard": {CNY: 60, USD: 8, BDT: 1000},
	"express":  {CNY: 120, USD: 16, BDT: 2000},
}

// ShippingRate resolves the flat rate for a delivery type.
func ShippingRate(deliveryType string) currency.Amount {
	if rate, ok := shippingRates[deliveryType]; ok {
		return rate
	}
	return shippingRates["standard"]
}

// Service provides business logic for orders.
type Service struct {
	repo   Repository
	prefix string
}

func NewService(repo Repository, prefix string) *Service {
	if prefix == "" {
		prefix = "BB"
	}
	return &Service{repo: repo, prefix: prefix}
}

// Create persists a new order. The caller supplies validated lines and
// totals; Create assigns the order id, the pending statuses, and the initial
// tracking entry. A duplicate-key clash on the generated id is retried with
// a fresh suffix.
func (s *Service) Create(ctx context.Context, o Order) (Order, error) {
	if o.CustomerID == "" {
		return Order{}, errors.New("customer is required")
	}
	if len(o.Products) == 0 {
		return Order{}, errors.New("order has no products")
	}

	now := time.Now().UTC()
	o.Status = StatusPending
	o.PaymentDetails = PaymentDetails{
		Status:       PaymentPending,
		Transactions: []Transaction{},
	}
	o.TrackingHistory = []TrackingEntry{{
		Status:    StatusPending,
		Timestamp: now,
		Location:  "Order placed",
	}}
	o.CreatedAt = now
	o.UpdatedAt = now

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		o.OrderID = NewOrderID(s.prefix, now)
		created, err := s.repo.Create(ctx, o)
		if err == nil {
			return created, nil
		}
		if err != ErrDuplicateOrderID {
			return Order{}, err
		}
		lastErr = err
	}
	return Order{}, lastErr
}

// UpdateStatus validates and applies a status change, appending exactly one
// tracking entry. Values outside the closed status set are rejected before
// anything is written.
func (s *Service) UpdateStatus(ctx context.Context, orderID, status, location string) (Order, error) {
	if status == "" {
		return Order{}, ErrEmptyStatus
	}
	next := Status(status)
	if !next.Valid() {
		return Order{}, ErrUnknownStatus
	}
	if location == "" {
		location = "Status updated"
	}
	return s.repo.UpdateStatus(ctx, orderID, next, TrackingEntry{
		Status:    next,
		Timestamp: time.Now().UTC(),
		Location:  location,
	})
}

func (s *Service) GetByOrderID(ctx context.Context, orderID string) (Order, error) {
	return s.repo.GetByOrderID(ctx, orderID)
}

// ListResult is the paginated listing payload.
type ListResult struct {
	Orders  []Order `json:"orders"`
	Total   int64   `json:"total"`
	HasMore bool    `json:"hasMore"`
}

func (s *Service) List(ctx context.Context, f ListFilter, opts ListOptions) (ListResult, error) {
	orders, total, err := s.repo.List(ctx, f, opts)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Orders:  orders,
		Total:   total,
		HasMore: opts.Skip+int64(len(orders)) < total,
	}, nil
}
