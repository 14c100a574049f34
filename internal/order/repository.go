package order

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrDuplicateOrderID signals a clash on the human-readable order id;
	// the service retries creation with a freshly generated id.
	ErrDuplicateOrderID = errors.New("duplicate order id")
)

// ListFilter narrows a listing; zero values mean "all".
type ListFilter struct {
	CustomerID string
	Status     Status
}

// ListOptions controls pagination. Sort is a field name, prefixed with "-"
// for descending; empty means newest first.
type ListOptions struct {
	Limit int64
	Skip  int64
	Sort  string
}

// Repository defines persistence operations for orders.
type Repository interface {
	// Create inserts the order and indexes its id on the owning customer's
	// order set in the same unit of work.
	Create(ctx context.Context, o Order) (Order, error)
	GetByOrderID(ctx context.Context, orderID string) (Order, error)
	List(ctx context.Context, f ListFilter, opts ListOptions) ([]Order, int64, error)
	// UpdateStatus sets the status and appends the tracking entry in one
	// document write.
	UpdateStatus(ctx context.Context, orderID string, status Status, entry TrackingEntry) (Order, error)
	// AddTransaction appends a payment attempt to the order.
	AddTransaction(ctx context.Context, orderID string, tx Transaction) (Order, error)
	// FindByTransactionID locates the order holding the given gateway
	// transaction id.
	FindByTransactionID(ctx context.Context, transactionID string) (Order, error)
	// UpdatePaymentStatus sets paymentDetails.status and appends a note to
	// the matching transaction sub-document. The fulfillment status is
	// never touched.
	UpdatePaymentStatus(ctx context.Context, orderID string, status PaymentStatus, transactionID, note string) (Order, error)
}
