package cart

import (
	"database/sql"
	"encoding/json"

	"github.com/shoplite/shop-backend/internal/pricing"
)

// PostgresRepository persists each cart as a jsonb snapshot keyed by user.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(userID int) (Cart, error) {
	var itemsJSON []byte
	var method sql.NullString
	var updatedAt sql.NullString
	err := r.db.QueryRow(`SELECT items, shipping_method, updated_at FROM carts WHERE user_id = $1`, userID).
		Scan(&itemsJSON, &method, &updatedAt)
	if err == sql.ErrNoRows {
		return Cart{UserID: userID, Items: []LineItem{}, ShippingMethod: pricing.ShippingStandard}, nil
	}
	if err != nil {
		return Cart{}, err
	}

	c := Cart{UserID: userID, Items: []LineItem{}, ShippingMethod: pricing.ShippingStandard, UpdatedAt: updatedAt.String}
	if method.Valid && pricing.ShippingMethod(method.String).Valid() {
		c.ShippingMethod = pricing.ShippingMethod(method.String)
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &c.Items); err != nil {
			return Cart{}, err
		}
	}
	return c, nil
}

func (r *PostgresRepository) Save(c Cart) (Cart, error) {
	itemsJSON, err := json.Marshal(c.Items)
	if err != nil {
		return Cart{}, err
	}
	_, err = r.db.Exec(`INSERT INTO carts (user_id, items, shipping_method, updated_at)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (user_id) DO UPDATE SET items = $2, shipping_method = $3, updated_at = $4`,
		c.UserID, itemsJSON, string(c.ShippingMethod), c.UpdatedAt)
	if err != nil {
		return Cart{}, err
	}
	return r.Get(c.UserID)
}

func (r *PostgresRepository) Clear(userID int, updatedAt string) error {
	_, err := r.db.Exec(`UPDATE carts SET items = '[]', updated_at = $1 WHERE user_id = $2`, updatedAt, userID)
	return err
}
