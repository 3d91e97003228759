package address

// Address is a stored shipping destination. Orders copy the fields at
// checkout time instead of referencing the row.
type Address struct {
	ID         int    `json:"addressId"`
	UserID     int    `json:"userId"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}
