package customer

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func setupApp(seed []Customer) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			claims := jwt.MapClaims{"user_id": v}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := setupApp(nil)

	body := `{"email":"rahim@example.com","password":"s3cret","firstName":"Rahim","lastName":"Uddin","phone":"01711111111"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	var created Customer
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.Password != "" {
		t.Fatal("password must not be returned")
	}

	// duplicate email
	req2 := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2, -1)
	if res2.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", res2.StatusCode)
	}

	// login with the registered credentials
	req3 := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"rahim@example.com","password":"s3cret"}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3, -1)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res3.StatusCode)
	}
	var loginBody struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res3.Body).Decode(&loginBody); err != nil {
		t.Fatal(err)
	}
	if loginBody.Token == "" {
		t.Fatal("expected a JWT in the login response")
	}

	// wrong password
	req4 := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"rahim@example.com","password":"wrong"}`))
	req4.Header.Set("Content-Type", "application/json")
	res4, _ := app.Test(req4, -1)
	if res4.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", res4.StatusCode)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	app := setupApp(nil)

	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"email":"x@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req, -1)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestProfile(t *testing.T) {
	app := setupApp([]Customer{{Email: "karim@example.com", FirstName: "Karim", LastName: "Ahmed"}})

	// unauthenticated
	res, _ := app.Test(httptest.NewRequest("GET", "/api/profile", nil), -1)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	req := httptest.NewRequest("GET", "/api/profile", nil)
	req.Header.Set("X-User-ID", "cus-1")
	res2, _ := app.Test(req, -1)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	var got Customer
	if err := json.NewDecoder(res2.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.FirstName != "Karim" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	// partial update keeps untouched fields
	req3 := httptest.NewRequest("PATCH", "/api/profile", strings.NewReader(`{"phone":"01899999999"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "cus-1")
	res3, _ := app.Test(req3, -1)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res3.StatusCode)
	}
	var updated Customer
	if err := json.NewDecoder(res3.Body).Decode(&updated); err != nil {
		t.Fatal(err)
	}
	if updated.Phone != "01899999999" || updated.FirstName != "Karim" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestFullName(t *testing.T) {
	cases := []struct {
		c    Customer
		want string
	}{
		{Customer{FirstName: "Rahim", LastName: "Uddin"}, "Rahim Uddin"},
		{Customer{FirstName: "Rahim"}, "Rahim"},
		{Customer{LastName: "Uddin"}, "Uddin"},
	}
	for _, tc := range cases {
		if got := tc.c.FullName(); got != tc.want {
			t.Errorf("FullName() = %q, want %q", got, tc.want)
		}
	}
}
