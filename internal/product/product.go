package product

import "github.com/shopspring/decimal"

// Product is a catalog entry. Sizes and colors list the variant options a
// customer can pick when adding the product to a cart.
type Product struct {
	ID          int             `json:"productId"`
	Name        string          `json:"productName"`
	Description string          `json:"productDesc"`
	Price       decimal.Decimal `json:"productPrice"`
	Category    string          `json:"category"`
	Image       string          `json:"productImg,omitempty"`
	Sizes       []string        `json:"sizes,omitempty"`
	Colors      []string        `json:"colors,omitempty"`
	Rating      decimal.Decimal `json:"rating"`
	CreatedAt   string          `json:"createdAt,omitempty"`
	UpdatedAt   string          `json:"updatedAt,omitempty"`
}
