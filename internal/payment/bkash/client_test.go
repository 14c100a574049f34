package bkash

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newGatewayServer(t *testing.T, grantCalls *int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/tokenized/checkout/token/grant", func(w http.ResponseWriter, r *http.Request) {
		*grantCalls++
		if r.Header.Get("username") != "merchant" || r.Header.Get("password") != "secret" {
			json.NewEncoder(w).Encode(tokenGrantResponse{StatusCode: "9999", StatusMessage: "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(tokenGrantResponse{IDToken: "tok-123", ExpiresIn: 3600, StatusCode: "0000"})
	})
	mux.HandleFunc("/tokenized/checkout/create", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "tok-123" {
			json.NewEncoder(w).Encode(CreateResponse{StatusCode: "2001", StatusMessage: "invalid token"})
			return
		}
		var req CreateRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(CreateResponse{
			PaymentID:  "TR-" + req.MerchantInvoiceNumber,
			BkashURL:   "https://sandbox.pay.bka.sh/redirect",
			StatusCode: "0000",
		})
	})
	mux.HandleFunc("/tokenized/checkout/execute", func(w http.ResponseWriter, r *http.Request) {
		var req executeRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(ExecuteResponse{
			PaymentID:  req.PaymentID,
			TrxID:      "8HJ3K2L",
			StatusCode: "0000",
		})
	})
	return httptest.NewServer(mux)
}

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:   baseURL,
		AppKey:    "app-key",
		AppSecret: "app-secret",
		Username:  "merchant",
		Password:  "secret",
	}
}

func TestClientTokenIsCachedAcrossCalls(t *testing.T) {
	grantCalls := 0
	srv := newGatewayServer(t, &grantCalls)
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NewMemoryTokenCache())
	ctx := context.Background()

	if _, err := client.CreatePayment(ctx, CreateRequest{MerchantInvoiceNumber: "ORD-1", Amount: "100.00"}); err != nil {
		t.Fatal(err)
	}
	if _, err := client.ExecutePayment(ctx, "TR-ORD-1"); err != nil {
		t.Fatal(err)
	}

	if grantCalls != 1 {
		t.Fatalf("expected a single token grant, got %d", grantCalls)
	}
}

func TestClientCreatePayment(t *testing.T) {
	grantCalls := 0
	srv := newGatewayServer(t, &grantCalls)
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NewMemoryTokenCache())

	res, err := client.CreatePayment(context.Background(), CreateRequest{
		Mode:                  "0011",
		PayerReference:        "01711111111",
		Amount:                "1200.00",
		Currency:              "BDT",
		Intent:                "sale",
		MerchantInvoiceNumber: "ORD-42",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.PaymentID != "TR-ORD-42" {
		t.Fatalf("unexpected paymentID: %s", res.PaymentID)
	}
	if res.BkashURL == "" {
		t.Fatal("expected hosted payment URL")
	}
}

func TestClientTokenGrantRejected(t *testing.T) {
	grantCalls := 0
	srv := newGatewayServer(t, &grantCalls)
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Password = "wrong"
	client := NewClient(cfg, NewMemoryTokenCache())

	if _, err := client.CreatePayment(context.Background(), CreateRequest{}); err == nil {
		t.Fatal("expected error on rejected token grant")
	}
}

func TestClientExecutePayment(t *testing.T) {
	grantCalls := 0
	srv := newGatewayServer(t, &grantCalls)
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NewMemoryTokenCache())

	res, err := client.ExecutePayment(context.Background(), "TRX-9")
	if err != nil {
		t.Fatal(err)
	}
	if res.PaymentID != "TRX-9" || res.StatusCode != "0000" {
		t.Fatalf("unexpected execute response: %+v", res)
	}
}
