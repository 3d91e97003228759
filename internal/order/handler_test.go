package order

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
)

func makeAppWithOrderHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				claims := jwt.MapClaims{"user_id": id}
				if c.Get("X-Admin") == "true" {
					claims["is_admin"] = true
				}
				c.Locals("user", &jwt.Token{Claims: claims})
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	h.RegisterAdminRoutes(app)
	return app
}

func seedPendingOrder(t *testing.T, svc *Service, userID int) Order {
	t.Helper()
	o, err := svc.Create(Order{
		UserID:        userID,
		Items:         []Item{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(30)}},
		PaymentMethod: PaymentCard,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func TestOrderRoutes_Customer(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	app := makeAppWithOrderHandler(NewHandler(svc))
	o := seedPendingOrder(t, svc, 42)

	// list own orders
	req := httptest.NewRequest("GET", "/api/v1/orders", nil)
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var list []Order
	b, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(b, &list); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(list) != 1 || list[0].OrderNumber != o.OrderNumber {
		t.Fatalf("unexpected order list: %+v", list)
	}

	// another user cannot see it
	req2 := httptest.NewRequest("GET", "/api/v1/orders/"+strconv.Itoa(o.ID), nil)
	req2.Header.Set("X-User-ID", "99")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for foreign order, got %d", res2.StatusCode)
	}

	// cancel while pending
	req3 := httptest.NewRequest("POST", "/api/v1/orders/"+strconv.Itoa(o.ID)+"/cancel", nil)
	req3.Header.Set("X-User-ID", "42")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for cancel, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), string(StatusCancelled)) {
		t.Fatalf("expected CANCELLED order, got %s", string(b3))
	}

	// a second cancel hits a terminal order
	req4 := httptest.NewRequest("POST", "/api/v1/orders/"+strconv.Itoa(o.ID)+"/cancel", nil)
	req4.Header.Set("X-User-ID", "42")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for cancelled order, got %d", res4.StatusCode)
	}
}

func TestOrderRoutes_CancelAfterConfirmation(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	app := makeAppWithOrderHandler(NewHandler(svc))
	o := seedPendingOrder(t, svc, 42)

	if _, err := svc.AdminUpdateStatus(o.ID, StatusConfirmed); err != nil {
		t.Fatalf("confirm order: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/v1/orders/"+strconv.Itoa(o.ID)+"/cancel", nil)
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for confirmed order, got %d", res.StatusCode)
	}
}

func TestOrderRoutes_Admin(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	app := makeAppWithOrderHandler(NewHandler(svc))
	o := seedPendingOrder(t, svc, 42)

	// customer token cannot reach the admin console
	req := httptest.NewRequest("GET", "/api/v1/admin/orders", nil)
	req.Header.Set("X-User-ID", "42")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", res.StatusCode)
	}

	// admin list with status filter
	req2 := httptest.NewRequest("GET", "/api/v1/admin/orders?status=PENDING", nil)
	req2.Header.Set("X-User-ID", "1")
	req2.Header.Set("X-Admin", "true")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for admin list, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), o.OrderNumber) {
		t.Fatalf("expected order in admin list, got %s", string(b2))
	}

	// advance the status
	req3 := httptest.NewRequest("PATCH", "/api/v1/admin/orders/"+strconv.Itoa(o.ID)+"/status",
		strings.NewReader(`{"status":"CONFIRMED"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "1")
	req3.Header.Set("X-Admin", "true")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for status update, got %d", res3.StatusCode)
	}

	// skipping ahead is rejected
	req4 := httptest.NewRequest("PATCH", "/api/v1/admin/orders/"+strconv.Itoa(o.ID)+"/status",
		strings.NewReader(`{"status":"DELIVERED"}`))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-User-ID", "1")
	req4.Header.Set("X-Admin", "true")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for skipped transition, got %d", res4.StatusCode)
	}

	// tracking number
	req5 := httptest.NewRequest("PATCH", "/api/v1/admin/orders/"+strconv.Itoa(o.ID)+"/tracking",
		strings.NewReader(`{"trackingNumber":"TRK-123"}`))
	req5.Header.Set("Content-Type", "application/json")
	req5.Header.Set("X-User-ID", "1")
	req5.Header.Set("X-Admin", "true")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for tracking update, got %d", res5.StatusCode)
	}
	b5, _ := io.ReadAll(res5.Body)
	if !strings.Contains(string(b5), "TRK-123") {
		t.Fatalf("expected tracking number in response, got %s", string(b5))
	}
}
