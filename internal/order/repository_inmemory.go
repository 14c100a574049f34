package order

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// InMemoryRepository is used for tests. It mirrors the Mongo repository's
// semantics, including the customer order-set upsert performed on Create.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	// CustomerOrders records the order ids indexed per customer, with set
	// semantics like the Mongo $addToSet.
	CustomerOrders map[string][]string
	nextID         int
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{
		orders:         make([]Order, 0, len(seed)),
		CustomerOrders: make(map[string][]string),
		nextID:         1,
	}
	r.orders = append(r.orders, seed...)
	return r
}

func (r *InMemoryRepository) Create(ctx context.Context, o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.OrderID == o.OrderID {
			return Order{}, ErrDuplicateOrderID
		}
	}
	if o.ID == "" {
		o.ID = fmt.Sprintf("ord-%d", r.nextID)
		r.nextID++
	}
	r.orders = append(r.orders, o)
	if o.CustomerID != "" {
		r.addCustomerOrderLocked(o.CustomerID, o.OrderID)
	}
	return o, nil
}

func (r *InMemoryRepository) addCustomerOrderLocked(customerID, orderID string) {
	for _, existing := range r.CustomerOrders[customerID] {
		if existing == orderID {
			return
		}
	}
	r.CustomerOrders[customerID] = append(r.CustomerOrders[customerID], orderID)
}

func (r *InMemoryRepository) GetByOrderID(ctx context.Context, orderID string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) List(ctx context.Context, f ListFilter, opts ListOptions) ([]Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		matched = append(matched, o)
	}

	desc := opts.Sort == "" || strings.HasPrefix(opts.Sort, "-")
	sort.SliceStable(matched, func(i, j int) bool {
		if desc {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if opts.Skip > 0 {
		if opts.Skip >= total {
			return []Order{}, total, nil
		}
		matched = matched[opts.Skip:]
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return matched, total, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, orderID string, status Status, entry TrackingEntry) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.OrderID == orderID {
			o.Status = status
			o.TrackingHistory = append(o.TrackingHistory, entry)
			o.UpdatedAt = time.Now().UTC()
			r.orders[i] = o
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) AddTransaction(ctx context.Context, orderID string, tx Transaction) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.OrderID == orderID {
			o.PaymentDetails.Transactions = append(o.PaymentDetails.Transactions, tx)
			o.UpdatedAt = time.Now().UTC()
			r.orders[i] = o
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) FindByTransactionID(ctx context.Context, transactionID string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if _, ok := o.TransactionByID(transactionID); ok {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) UpdatePaymentStatus(ctx context.Context, orderID string, status PaymentStatus, transactionID, note string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.OrderID == orderID {
			o.PaymentDetails.Status = status
			for j, tx := range o.PaymentDetails.Transactions {
				if tx.TransactionID == transactionID {
					tx.Notes = note
					o.PaymentDetails.Transactions[j] = tx
				}
			}
			o.UpdatedAt = time.Now().UTC()
			r.orders[i] = o
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}
