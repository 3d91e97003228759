package address

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithAddressHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				claims := jwt.MapClaims{"user_id": id}
				c.Locals("user", &jwt.Token{Claims: claims})
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func TestAddressRoutes_CRUD(t *testing.T) {
	app := makeAppWithAddressHandler(NewHandler(NewService(NewInMemoryRepository(nil))))

	// create
	req := httptest.NewRequest("POST", "/api/v1/addresses", strings.NewReader(
		`{"fullName":"Ann Example","phone":"555-0101","line1":"1 Main St","city":"Springfield"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	var created Address
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &created); err != nil {
		t.Fatalf("unmarshal created: %v", err)
	}
	if created.ID == 0 || created.UserID != 42 {
		t.Fatalf("unexpected created address: %+v", created)
	}

	// list shows it
	req2 := httptest.NewRequest("GET", "/api/v1/addresses", nil)
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "1 Main St") {
		t.Fatalf("expected address in list, got %s", string(b2))
	}

	// another user's list stays empty
	req3 := httptest.NewRequest("GET", "/api/v1/addresses", nil)
	req3.Header.Set("X-User-ID", "99")
	res3, _ := app.Test(req3)
	b3, _ := io.ReadAll(res3.Body)
	if strings.Contains(string(b3), "1 Main St") {
		t.Fatalf("address leaked to another user: %s", string(b3))
	}

	// another user cannot update it
	id := strconv.Itoa(created.ID)
	req4 := httptest.NewRequest("PUT", "/api/v1/addresses/"+id, strings.NewReader(
		`{"fullName":"Mallory","phone":"555","line1":"Evil St"}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-User-ID", "99")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for foreign update, got %d", res4.StatusCode)
	}

	// owner update
	req5 := httptest.NewRequest("PUT", "/api/v1/addresses/"+id, strings.NewReader(
		`{"fullName":"Ann Example","phone":"555-0101","line1":"2 Oak St"}`))
	req5.Header.Set("Content-Type", "application/json")
	req5.Header.Set("X-User-ID", "42")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for owner update, got %d", res5.StatusCode)
	}

	// owner delete
	req6 := httptest.NewRequest("DELETE", "/api/v1/addresses/"+id, nil)
	req6.Header.Set("X-User-ID", "42")
	res6, _ := app.Test(req6)
	if res6.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for delete, got %d", res6.StatusCode)
	}
}

func TestAddressRoutes_Validation(t *testing.T) {
	app := makeAppWithAddressHandler(NewHandler(NewService(NewInMemoryRepository(nil))))

	// missing phone
	req := httptest.NewRequest("POST", "/api/v1/addresses", strings.NewReader(
		`{"fullName":"Ann Example","line1":"1 Main St"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing phone, got %d", res.StatusCode)
	}

	// no token
	req2 := httptest.NewRequest("GET", "/api/v1/addresses", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res2.StatusCode)
	}
}
