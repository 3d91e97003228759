package cart

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"

	"github.com/shoplite/shop-backend/internal/product"
)

func makeAppWithCartHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func newTestHandler() *Handler {
	products := product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Sneaker", Price: decimal.NewFromInt(30)},
	})
	svc := NewService(NewInMemoryRepository(), product.NewService(products))
	return NewHandler(svc)
}

func TestCartRoutes_Basic(t *testing.T) {
	app := makeAppWithCartHandler(newTestHandler())

	// unauthorized access should be blocked
	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated GET, got %d", res.StatusCode)
	}

	// add an item
	req2 := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productId":1,"quantity":2}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), `"quantity":2`) {
		t.Fatalf("expected quantity 2 in response, got %s", string(b2))
	}

	// response carries totals derived from the pricing calculator
	var body struct {
		Items []LineItem `json:"items"`
		Totals struct {
			Subtotal    decimal.Decimal `json:"subtotal"`
			ShippingFee decimal.Decimal `json:"shippingFee"`
			Total       decimal.Decimal `json:"total"`
		} `json:"totals"`
	}
	if err := json.Unmarshal(b2, &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !body.Totals.Subtotal.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected subtotal 60, got %s", body.Totals.Subtotal)
	}
	if len(body.Items) != 1 {
		t.Fatalf("expected one line item, got %d", len(body.Items))
	}
	itemID := body.Items[0].ID

	// set quantity directly
	req3 := httptest.NewRequest("PUT", "/api/v1/cart/items/"+itemID, strings.NewReader(`{"quantity":1}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "42")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for update, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"quantity":1`) {
		t.Fatalf("expected quantity 1 after update, got %s", string(b3))
	}

	// zero quantity removes the line
	req4 := httptest.NewRequest("PUT", "/api/v1/cart/items/"+itemID, strings.NewReader(`{"quantity":0}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-User-ID", "42")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for zero-quantity update, got %d", res4.StatusCode)
	}
	b4, _ := io.ReadAll(res4.Body)
	if strings.Contains(string(b4), itemID) {
		t.Fatalf("expected item removed after zero quantity, got %s", string(b4))
	}

	// clear the cart
	req5 := httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	req5.Header.Set("X-User-ID", "42")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for clear, got %d", res5.StatusCode)
	}
}

func TestCartRoutes_InvalidInput(t *testing.T) {
	app := makeAppWithCartHandler(newTestHandler())

	// zero quantity on add is rejected before any write
	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productId":1,"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %d", res.StatusCode)
	}

	// unknown product
	req2 := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productId":999,"quantity":1}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res2.StatusCode)
	}

	// unknown shipping method
	req3 := httptest.NewRequest("PUT", "/api/v1/cart/shipping", strings.NewReader(`{"shippingMethod":"overnight"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "42")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown shipping method, got %d", res3.StatusCode)
	}
}
