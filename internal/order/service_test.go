package order

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shakilahmed/banglabazaar-backend/internal/currency"
)

func testOrder(orderID, customerID string) Order {
	return Order{
		OrderID:    orderID,
		CustomerID: customerID,
		Products: []ProductLine{{
			ProductID: "p1", Title: "Ceramic mug", Quantity: 2,
			UnitPrice:  currency.Amount{BDT: 100},
			TotalPrice: currency.Amount{BDT: 200},
		}},
		SubTotal:    currency.Amount{BDT: 200},
		TotalAmount: currency.Amount{BDT: 1200},
		Status:      StatusPending,
		PaymentDetails: PaymentDetails{
			Status: PaymentPending,
			Transactions: []Transaction{
				{TransactionID: "TRX001", Gateway: "bkash", Amount: 1200, Currency: currency.BDT},
			},
		},
		TrackingHistory: []TrackingEntry{{Status: StatusPending, Timestamp: time.Now(), Location: "Order placed"}},
		CreatedAt:       time.Now().UTC(),
	}
}

func TestCreateAssignsOrderIDAndInitialState(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo, "BB")

	created, err := svc.Create(context.Background(), Order{
		CustomerID: "cus-1",
		Products:   []ProductLine{{ProductID: "p1", Quantity: 1, UnitPrice: currency.Amount{BDT: 50}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	pattern := regexp.MustCompile(`^BB-ORD-\d{2}-\d{2}-\d{2}-\d{4}$`)
	if !pattern.MatchString(created.OrderID) {
		t.Errorf("unexpected order id format: %s", created.OrderID)
	}
	if created.Status != StatusPending {
		t.Errorf("expected pending status, got %s", created.Status)
	}
	if created.PaymentDetails.Status != PaymentPending {
		t.Errorf("expected pending payment status, got %s", created.PaymentDetails.Status)
	}
	if len(created.TrackingHistory) != 1 {
		t.Fatalf("expected one initial tracking entry, got %d", len(created.TrackingHistory))
	}
}

func TestCreateIndexesOrderOnCustomerOnce(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo, "BB")

	created, err := svc.Create(context.Background(), Order{
		CustomerID: "cus-1",
		Products:   []ProductLine{{ProductID: "p1", Quantity: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	ids := repo.CustomerOrders["cus-1"]
	if len(ids) != 1 || ids[0] != created.OrderID {
		t.Fatalf("expected customer order set to hold %s, got %v", created.OrderID, ids)
	}
}

// duplicateOnceRepo wraps the in-memory repo to force one duplicate-key
// failure, exercising the id retry loop.
type duplicateOnceRepo struct {
	*InMemoryRepository
	failed bool
}

func (r *duplicateOnceRepo) Create(ctx context.Context, o Order) (Order, error) {
	if !r.failed {
		r.failed = true
		return Order{}, ErrDuplicateOrderID
	}
	return r.InMemoryRepository.Create(ctx, o)
}

func TestCreateRetriesOnDuplicateOrderID(t *testing.T) {
	repo := &duplicateOnceRepo{InMemoryRepository: NewInMemoryRepository(nil)}
	svc := NewService(repo, "BB")

	created, err := svc.Create(context.Background(), Order{
		CustomerID: "cus-1",
		Products:   []ProductLine{{ProductID: "p1", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if created.OrderID == "" {
		t.Fatal("expected an order id after retry")
	}
}

func TestUpdateStatusAppendsTrackingEntries(t *testing.T) {
	repo := NewInMemoryRepository([]Order{testOrder("BB-ORD-01-01-26-0001", "cus-1")})
	svc := NewService(repo, "BB")
	ctx := context.Background()

	steps := []string{"confirmed", "processing", "shipped"}
	for _, step := range steps {
		if _, err := svc.UpdateStatus(ctx, "BB-ORD-01-01-26-0001", step, ""); err != nil {
			t.Fatalf("update to %s failed: %v", step, err)
		}
	}

	ord, err := svc.GetByOrderID(ctx, "BB-ORD-01-01-26-0001")
	if err != nil {
		t.Fatal(err)
	}
	if ord.Status != StatusShipped {
		t.Errorf("expected shipped, got %s", ord.Status)
	}
	// initial entry plus one per transition; history never shrinks
	if len(ord.TrackingHistory) != 1+len(steps) {
		t.Fatalf("expected %d tracking entries, got %d", 1+len(steps), len(ord.TrackingHistory))
	}
	last := ord.TrackingHistory[len(ord.TrackingHistory)-1]
	if last.Status != StatusShipped || last.Location != "Status updated" {
		t.Errorf("unexpected final tracking entry: %+v", last)
	}
}

func TestUpdateStatusRejectsEmptyWithoutMutating(t *testing.T) {
	repo := NewInMemoryRepository([]Order{testOrder("BB-ORD-01-01-26-0002", "cus-1")})
	svc := NewService(repo, "BB")
	ctx := context.Background()

	if _, err := svc.UpdateStatus(ctx, "BB-ORD-01-01-26-0002", "", ""); err != ErrEmptyStatus {
		t.Fatalf("expected ErrEmptyStatus, got %v", err)
	}

	ord, _ := svc.GetByOrderID(ctx, "BB-ORD-01-01-26-0002")
	if len(ord.TrackingHistory) != 1 {
		t.Fatalf("tracking history mutated on rejected update: %d entries", len(ord.TrackingHistory))
	}
	if ord.Status != StatusPending {
		t.Fatalf("status mutated on rejected update: %s", ord.Status)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := NewInMemoryRepository([]Order{testOrder("BB-ORD-01-01-26-0003", "cus-1")})
	svc := NewService(repo, "BB")

	if _, err := svc.UpdateStatus(context.Background(), "BB-ORD-01-01-26-0003", "teleported", ""); err != ErrUnknownStatus {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}

	ord, _ := svc.GetByOrderID(context.Background(), "BB-ORD-01-01-26-0003")
	if len(ord.TrackingHistory) != 1 {
		t.Fatal("unknown status must not be persisted")
	}
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil), "BB")
	if _, err := svc.UpdateStatus(context.Background(), "BB-ORD-99-99-99-9999", "confirmed", ""); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPagination(t *testing.T) {
	base := time.Now().UTC()
	seed := make([]Order, 0, 5)
	for i := 0; i < 5; i++ {
		o := testOrder(NewOrderID("BB", base), "cus-1")
		o.OrderID = o.OrderID + "-" + string(rune('a'+i))
		o.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		seed = append(seed, o)
	}
	svc := NewService(NewInMemoryRepository(seed), "BB")

	res, err := svc.List(context.Background(), ListFilter{CustomerID: "cus-1"}, ListOptions{Limit: 2, Skip: 0})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 5 || len(res.Orders) != 2 || !res.HasMore {
		t.Fatalf("unexpected first page: total=%d len=%d hasMore=%v", res.Total, len(res.Orders), res.HasMore)
	}

	res2, err := svc.List(context.Background(), ListFilter{CustomerID: "cus-1"}, ListOptions{Limit: 2, Skip: 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(res2.Orders) != 1 || res2.HasMore {
		t.Fatalf("unexpected last page: len=%d hasMore=%v", len(res2.Orders), res2.HasMore)
	}
}
