package order

import (
	"database/sql"
	"encoding/json"

	"github.com/shoplite/shop-backend/internal/pricing"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `order_id, order_number, user_id, items, shipping_address, subtotal, shipping_fee, tax, discount, total, status, payment_status, payment_method, shipping_method, tracking_number, created_at, updated_at`

func (r *PostgresRepository) Create(o Order) (Order, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return Order{}, err
	}
	addrJSON, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(`INSERT INTO orders (order_number, user_id, items, shipping_address, subtotal, shipping_fee, tax, discount, total, status, payment_status, payment_method, shipping_method, tracking_number, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING order_id`,
		o.OrderNumber, o.UserID, itemsJSON, addrJSON,
		o.Pricing.Subtotal, o.Pricing.ShippingFee, o.Pricing.Tax, o.Pricing.Discount, o.Pricing.Total,
		string(o.Status), string(o.PaymentStatus), string(o.PaymentMethod), string(o.ShippingMethod),
		o.TrackingNumber, o.CreatedAt, o.UpdatedAt).Scan(&o.ID)
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	row := r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, id)
	o, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY order_id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *PostgresRepository) ListAll(status Status) ([]Order, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = r.db.Query(`SELECT ` + orderColumns + ` FROM orders ORDER BY order_id DESC`)
	} else {
		rows, err = r.db.Query(`SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY order_id DESC`, string(status))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

// Update only touches the mutable fields; items and pricing are frozen at
// creation and never rewritten.
func (r *PostgresRepository) Update(o Order) (Order, error) {
	res, err := r.db.Exec(`UPDATE orders SET status = $1, payment_status = $2, tracking_number = $3, updated_at = $4 WHERE order_id = $5`,
		string(o.Status), string(o.PaymentStatus), o.TrackingNumber, o.UpdatedAt, o.ID)
	if err != nil {
		return Order{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func scanOrders(rows *sql.Rows) ([]Order, error) {
	out := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanOrder(scan func(dest ...interface{}) error) (Order, error) {
	var o Order
	var itemsJSON, addrJSON []byte
	var status, paymentStatus, paymentMethod, shippingMethod string
	var tracking sql.NullString
	err := scan(&o.ID, &o.OrderNumber, &o.UserID, &itemsJSON, &addrJSON,
		&o.Pricing.Subtotal, &o.Pricing.ShippingFee, &o.Pricing.Tax, &o.Pricing.Discount, &o.Pricing.Total,
		&status, &paymentStatus, &paymentMethod, &shippingMethod, &tracking, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(addrJSON, &o.ShippingAddress); err != nil {
		return Order{}, err
	}
	o.Status = Status(status)
	o.PaymentStatus = PaymentStatus(paymentStatus)
	o.PaymentMethod = PaymentMethod(paymentMethod)
	o.ShippingMethod = pricing.ShippingMethod(shippingMethod)
	o.TrackingNumber = tracking.String
	return o, nil
}
