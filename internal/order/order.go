package order

import (
	"time"

	"github.com/shakilahmed/banglabazaar-backend/internal/currency"
)

// Status is the fulfillment state of an order. The set is closed: the API
// boundary rejects any value outside it before anything is persisted.
type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusProcessing     Status = "processing"
	StatusShipped        Status = "shipped"
	StatusInTransit      Status = "in-transit"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
	StatusCanceled       Status = "canceled"
	StatusReturned       Status = "returned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped,
		StatusInTransit, StatusOutForDelivery, StatusDelivered,
		StatusCanceled, StatusReturned:
		return true
	}
	return false
}

// PaymentStatus tracks money independently of fulfillment. An order can be
// delivered while its payment is still pending; no cross-field rule links the
// two.
type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "pending"
	PaymentPaid              PaymentStatus = "paid"
	PaymentFailed            PaymentStatus = "failed"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentPartiallyPaid     PaymentStatus = "partially_paid"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded,
		PaymentPartiallyRefunded, PaymentPartiallyPaid:
		return true
	}
	return false
}

// ProductLine is a denormalized order line. Lines are written once at order
// creation and never edited afterwards.
type ProductLine struct {
	ProductID  string          `json:"productId" bson:"productId"`
	Title      string          `json:"title" bson:"title"`
	Color      string          `json:"color,omitempty" bson:"color,omitempty"`
	Size       string          `json:"size,omitempty" bson:"size,omitempty"`
	Quantity   int             `json:"quantity" bson:"quantity"`
	UnitPrice  currency.Amount `json:"unitPrice" bson:"unitPrice"`
	TotalPrice currency.Amount `json:"totalPrice" bson:"totalPrice"`
}

// Transaction is one payment attempt against the order, keyed by the
// gateway-issued transaction id.
type Transaction struct {
	TransactionID string        `json:"transactionId" bson:"transactionId"`
	Gateway       string        `json:"gateway" bson:"gateway"`
	Amount        float64       `json:"amount" bson:"amount"`
	Currency      currency.Code `json:"currency" bson:"currency"`
	Notes         string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
}

type PaymentDetails struct {
	Status       PaymentStatus `json:"status" bson:"status"`
	Transactions []Transaction `json:"transactions" bson:"transactions"`
}

// TrackingEntry is one line of the append-only status audit trail.
type TrackingEntry struct {
	Status    Status    `json:"status" bson:"status"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Location  string    `json:"location" bson:"location"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

// CustomerInfo is a snapshot of the buyer at checkout time.
type CustomerInfo struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

type ShippingAddress struct {
	Name       string `json:"name" bson:"name"`
	Phone      string `json:"phone" bson:"phone"`
	Line       string `json:"line" bson:"line"`
	City       string `json:"city" bson:"city"`
	District   string `json:"district,omitempty" bson:"district,omitempty"`
	PostalCode string `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Country    string `json:"country,omitempty" bson:"country,omitempty"`
}

// Order is one purchase, stored as a single document. Every status change
// appends exactly one tracking entry; the history is never truncated.
type Order struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	OrderID      string       `json:"orderId" bson:"orderId"`
	CustomerID   string       `json:"customerId" bson:"customerId"`
	CustomerInfo CustomerInfo `json:"customerInfo" bson:"customerInfo"`

	Products []ProductLine `json:"products" bson:"products"`

	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shippingAddress"`
	ShippingMethod  string          `json:"shippingMethod,omitempty" bson:"shippingMethod,omitempty"`
	DeliveryType    string          `json:"deliveryType,omitempty" bson:"deliveryType,omitempty"`
	ShippingRate    currency.Amount `json:"shippingRate" bson:"shippingRate"`

	SubTotal      currency.Amount `json:"subTotal" bson:"subTotal"`
	TotalDiscount currency.Amount `json:"totalDiscount" bson:"totalDiscount"`
	TotalAmount   currency.Amount `json:"totalAmount" bson:"totalAmount"`

	PaymentMethod   string         `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	PaymentCurrency currency.Code  `json:"paymentCurrency" bson:"paymentCurrency"`
	PaymentDetails  PaymentDetails `json:"paymentDetails" bson:"paymentDetails"`

	Status          Status          `json:"status" bson:"status"`
	TrackingHistory []TrackingEntry `json:"trackingHistory" bson:"trackingHistory"`

	Notes    string            `json:"notes,omitempty" bson:"notes,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// TransactionByID returns the payment attempt matching the gateway id.
func (o Order) TransactionByID(transactionID string) (Transaction, bool) {
	for _, tx := range o.PaymentDetails.Transactions {
		if tx.TransactionID == transactionID {
			return tx, true
		}
	}
	return Transaction{}, false
}
