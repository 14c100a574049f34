package product

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shakilahmed/banglabazaar-backend/internal/currency"
)

func setupApp(seed []Product) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func TestListAndGetProducts(t *testing.T) {
	app := setupApp([]Product{
		{Title: "Jamdani Saree", Price: currency.Amount{BDT: 4500}, Active: true},
		{Title: "Panjabi", Price: currency.Amount{BDT: 1800}, Active: true},
	})

	res, err := app.Test(httptest.NewRequest("GET", "/api/products", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var list []Product
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 products, got %d", len(list))
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/products/prod-1", nil), -1)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	var got Product
	if err := json.NewDecoder(res2.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Title != "Jamdani Saree" {
		t.Fatalf("unexpected product: %+v", got)
	}

	res3, _ := app.Test(httptest.NewRequest("GET", "/api/products/prod-99", nil), -1)
	if res3.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res3.StatusCode)
	}
}

func TestCreateProduct(t *testing.T) {
	app := setupApp(nil)

	body := `{"title":"Nakshi Kantha","price":{"cny":0,"usd":35,"bdt":4200},"minOrderQty":1,"active":true}`
	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req, -1)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	var created Product
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.Price.BDT != 4200 {
		t.Fatalf("unexpected created product: %+v", created)
	}

	// missing title
	req2 := httptest.NewRequest("POST", "/api/products", strings.NewReader(`{"price":{"bdt":100}}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2, -1)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res2.StatusCode)
	}
}

func TestUpdateProduct(t *testing.T) {
	app := setupApp([]Product{{Title: "Panjabi", Price: currency.Amount{BDT: 1800}, Active: true}})

	body := `{"title":"Panjabi","price":{"bdt":1600},"active":true}`
	req := httptest.NewRequest("PUT", "/api/products/prod-1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req, -1)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var updated Product
	if err := json.NewDecoder(res.Body).Decode(&updated); err != nil {
		t.Fatal(err)
	}
	if updated.Price.BDT != 1600 {
		t.Fatalf("unexpected price: %+v", updated.Price)
	}

	req2 := httptest.NewRequest("PUT", "/api/products/prod-99", strings.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2, -1)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res2.StatusCode)
	}
}
