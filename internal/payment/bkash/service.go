package bkash

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/shakilahmed/banglabazaar-backend/internal/currency"
	"github.com/shakilahmed/banglabazaar-backend/internal/order"
)

// phonePattern matches valid bKash wallet numbers.
var phonePattern = regexp.MustCompile(`^01[3-9]\d{8}$`)

var (
	ErrInvalidPhone  = errors.New("invalid bKash number")
	ErrAlreadyPaid   = errors.New("order is already paid")
	ErrInvalidAmount = errors.New("payable amount must be positive")
)

// URLs are the hosted pages the callback redirects to. Reconciliation always
// lands on one of these, never on an error status.
type URLs struct {
	Success  string
	Failure  string
	Callback string
}

// Service translates between the storefront's orders and the bKash gateway.
type Service struct {
	gateway Gateway
	orders  order.Repository
	urls    URLs
	log     *slog.Logger
}

func NewService(gateway Gateway, orders order.Repository, urls URLs, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{gateway: gateway, orders: orders, urls: urls, log: log}
}

// CreateResult is returned to the client that initiates a payment; the user
// is sent to PaymentURL, the gateway's hosted page.
type CreateResult struct {
	PaymentURL string  `json:"paymentUrl"`
	PaymentID  string  `json:"paymentID"`
	Amount     float64 `json:"amount"`
}

// CreatePayment validates the request, asks the gateway for a payment and
// records the returned paymentID as a transaction on the order. An order that
// is already paid is rejected before the gateway is ever called.
func (s *Service) CreatePayment(ctx context.Context, orderID, phone string) (CreateResult, error) {
	if !phonePattern.MatchString(phone) {
		return CreateResult{}, ErrInvalidPhone
	}

	ord, err := s.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return CreateResult{}, err
	}
	if ord.PaymentDetails.Status == order.PaymentPaid {
		return CreateResult{}, ErrAlreadyPaid
	}

	amount := ord.TotalAmount.BDT
	if amount <= 0 {
		return CreateResult{}, ErrInvalidAmount
	}

	res, err := s.gateway.CreatePayment(ctx, CreateRequest{
		Mode:                  "0011",
		PayerReference:        phone,
		CallbackURL:           s.urls.Callback,
		Amount:                fmt.Sprintf("%.2f", amount),
		Currency:              string(currency.BDT),
		Intent:                "sale",
		MerchantInvoiceNumber: ord.OrderID,
	})
	if err != nil {
		return CreateResult{}, err
	}

	_, err = s.orders.AddTransaction(ctx, ord.OrderID, order.Transaction{
		TransactionID: res.PaymentID,
		Gateway:       "bkash",
		Amount:        amount,
		Currency:      currency.BDT,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return CreateResult{}, err
	}

	return CreateResult{PaymentURL: res.BkashURL, PaymentID: res.PaymentID, Amount: amount}, nil
}

// Reconcile handles the gateway callback. The payload is never trusted: the
// payment is verified server-to-server via execute, then mapped onto the
// order's payment status — "0000" means paid, anything else failed. The
// fulfillment status is never touched. Every error path degrades to the
// failure redirect; the cause is logged, never surfaced.
func (s *Service) Reconcile(ctx context.Context, paymentID string) string {
	if paymentID == "" {
		s.log.Warn("bkash callback without paymentID")
		return s.urls.Failure
	}

	exec, err := s.gateway.ExecutePayment(ctx, paymentID)
	if err != nil {
		s.log.Error("bkash execute failed", "paymentID", paymentID, "err", err)
		return s.urls.Failure
	}

	ord, err := s.orders.FindByTransactionID(ctx, paymentID)
	if err != nil {
		s.log.Error("no order for bkash payment", "paymentID", paymentID, "err", err)
		return s.urls.Failure
	}

	status := order.PaymentFailed
	if exec.StatusCode == statusOK {
		status = order.PaymentPaid
	}
	note := fmt.Sprintf("bKash %s (trxID %s)", exec.StatusMessage, exec.TrxID)

	if _, err := s.orders.UpdatePaymentStatus(ctx, ord.OrderID, status, paymentID, note); err != nil {
		s.log.Error("payment status update failed", "orderId", ord.OrderID, "err", err)
		return s.urls.Failure
	}

	s.log.Info("payment reconciled", "orderId", ord.OrderID, "paymentID", paymentID, "status", status)
	if status == order.PaymentPaid {
		return s.urls.Success
	}
	return s.urls.Failure
}
