package bkash

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shakilahmed/banglabazaar-backend/internal/order"
)

func makeApp(svc *Service) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			claims := jwt.MapClaims{"user_id": v}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	h := NewHandler(svc)
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func TestCreatePaymentRoute(t *testing.T) {
	repo := order.NewInMemoryRepository([]order.Order{seededOrder("BB-ORD-01-01-26-0050", order.PaymentPending, "")})
	gw := &fakeGateway{createRes: CreateResponse{PaymentID: "TR1", BkashURL: "https://pay", StatusCode: "0000"}}
	app := makeApp(NewService(gw, repo, testURLs, nil))

	// unauthenticated
	req := httptest.NewRequest("POST", "/api/payment/bkash/create", strings.NewReader(`{"orderId":"BB-ORD-01-01-26-0050","phone":"01711111111"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req, -1)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	// malformed phone → 400
	req2 := httptest.NewRequest("POST", "/api/payment/bkash/create", strings.NewReader(`{"orderId":"BB-ORD-01-01-26-0050","phone":"0211111111"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "cus-1")
	res2, _ := app.Test(req2, -1)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad phone, got %d", res2.StatusCode)
	}

	// missing order → 404
	req3 := httptest.NewRequest("POST", "/api/payment/bkash/create", strings.NewReader(`{"orderId":"BB-ORD-00-00-00-0000","phone":"01711111111"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "cus-1")
	res3, _ := app.Test(req3, -1)
	if res3.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res3.StatusCode)
	}

	// happy path
	req4 := httptest.NewRequest("POST", "/api/payment/bkash/create", strings.NewReader(`{"orderId":"BB-ORD-01-01-26-0050","phone":"01711111111"}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-User-ID", "cus-1")
	res4, _ := app.Test(req4, -1)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res4.StatusCode)
	}
}

func TestCallbackRoute_AlwaysRedirects(t *testing.T) {
	repo := order.NewInMemoryRepository([]order.Order{seededOrder("BB-ORD-01-01-26-0051", order.PaymentPending, "TRX051")})
	gw := &fakeGateway{execRes: ExecuteResponse{PaymentID: "TRX051", StatusCode: "0000", StatusMessage: "Successful"}}
	app := makeApp(NewService(gw, repo, testURLs, nil))

	// successful reconciliation → redirect to success page
	req := httptest.NewRequest("GET", "/api/payment/bkash/callback?paymentID=TRX051", nil)
	res, _ := app.Test(req, -1)
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302, got %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != testURLs.Success {
		t.Fatalf("expected success redirect, got %s", loc)
	}

	// unknown payment → still a redirect, to the failure page
	req2 := httptest.NewRequest("GET", "/api/payment/bkash/callback?paymentID=GHOST", nil)
	res2, _ := app.Test(req2, -1)
	if res2.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302, got %d", res2.StatusCode)
	}
	if loc := res2.Header.Get("Location"); loc != testURLs.Failure {
		t.Fatalf("expected failure redirect, got %s", loc)
	}

	// POST body variant used by the server-to-server call
	req3 := httptest.NewRequest("POST", "/api/payment/bkash/callback", strings.NewReader(`{"paymentID":"TRX051"}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3, -1)
	if res3.StatusCode != fiber.StatusFound {
		t.Fatalf("expected 302 for POST callback, got %d", res3.StatusCode)
	}
}
