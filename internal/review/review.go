package review

import "errors"

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrNotDelivered    = errors.New("reviews are only allowed for delivered orders")
	ErrNotInOrder      = errors.New("product is not part of this order")
	ErrAlreadyReviewed = errors.New("product already reviewed for this order")
)

// Review is customer feedback on one line item of a delivered order.
type Review struct {
	ID        int    `json:"reviewId"`
	ProductID int    `json:"productId"`
	UserID    int    `json:"userId"`
	OrderID   int    `json:"orderId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
