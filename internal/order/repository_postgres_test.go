package order

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"github.com/shoplite/shop-backend/internal/pricing"
)

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"order_id"}).AddRow(11)
	mock.ExpectQuery("INSERT INTO orders").WillReturnRows(rows)

	o := Order{
		OrderNumber:    "ORD-ABCD1234",
		UserID:         7,
		Items:          []Item{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(30)}},
		Pricing:        pricing.Breakdown{Subtotal: decimal.NewFromInt(30)},
		Status:         StatusPending,
		PaymentStatus:  PaymentUnpaid,
		PaymentMethod:  PaymentCard,
		ShippingMethod: pricing.ShippingStandard,
	}
	created, err := repo.Create(o)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 11 {
		t.Fatalf("expected id 11, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"order_id", "order_number", "user_id", "items", "shipping_address",
		"subtotal", "shipping_fee", "tax", "discount", "total",
		"status", "payment_status", "payment_method", "shipping_method",
		"tracking_number", "created_at", "updated_at",
	})
}

func TestPostgresListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := orderRows().
		AddRow(2, "ORD-BBBB2222", 7, `[{"productId":2,"quantity":1,"price":"60"}]`, `{"fullName":"Ann","phone":"555","line1":"1 Main"}`,
			"60", "0", "6", "0", "66", "PENDING", "UNPAID", "cod", "standard", nil, "t", "t").
		AddRow(1, "ORD-AAAA1111", 7, `[{"productId":1,"quantity":2,"price":"30"}]`, `{"fullName":"Ann","phone":"555","line1":"1 Main"}`,
			"60", "0", "6", "0", "66", "DELIVERED", "PAID", "cod", "standard", "TRK1", "t", "t")
	mock.ExpectQuery("FROM orders WHERE user_id").WithArgs(7).WillReturnRows(rows)

	orders, err := repo.ListByUser(7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].OrderNumber != "ORD-BBBB2222" {
		t.Fatalf("unexpected order %q", orders[0].OrderNumber)
	}
	if !orders[0].Pricing.Total.Equal(decimal.NewFromInt(66)) {
		t.Fatalf("unexpected total %s", orders[0].Pricing.Total)
	}
	if orders[1].TrackingNumber != "TRK1" {
		t.Fatalf("unexpected tracking %q", orders[1].TrackingNumber)
	}
	if len(orders[1].Items) != 1 || orders[1].Items[0].ProductID != 1 {
		t.Fatalf("items not decoded: %+v", orders[1].Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM orders WHERE order_id").WithArgs(404).WillReturnRows(orderRows())

	if _, err := repo.GetByID(404); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresUpdate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders SET status").WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.Update(Order{ID: 404, Status: StatusConfirmed}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
