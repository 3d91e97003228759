package review

import (
	"time"

	"github.com/shoplite/shop-backend/internal/order"
)

// Service enforces the review affordance rule: a customer may only review a
// product that appears in one of their DELIVERED orders, once per order.
type Service struct {
	repo   Repository
	orders order.ServiceInterface
}

func NewService(repo Repository, orders order.ServiceInterface) *Service {
	return &Service{repo: repo, orders: orders}
}

func (s *Service) Create(userID, orderID, productID, rating int, comment string) (Review, error) {
	if rating < 1 || rating > 5 {
		return Review{}, ErrInvalidRating
	}

	o, err := s.orders.GetForUser(orderID, userID)
	if err != nil {
		return Review{}, err
	}
	if o.Status != order.StatusDelivered {
		return Review{}, ErrNotDelivered
	}

	inOrder := false
	for _, item := range o.Items {
		if item.ProductID == productID {
			inOrder = true
			break
		}
	}
	if !inOrder {
		return Review{}, ErrNotInOrder
	}

	exists, err := s.repo.Exists(userID, orderID, productID)
	if err != nil {
		return Review{}, err
	}
	if exists {
		return Review{}, ErrAlreadyReviewed
	}

	return s.repo.Create(Review{
		ProductID: productID,
		UserID:    userID,
		OrderID:   orderID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) ListByProduct(productID int) ([]Review, error) {
	return s.repo.ListByProduct(productID)
}

// AverageRating returns the mean rating for a product and the number of
// reviews it is based on. No reviews yields (0, 0).
func (s *Service) AverageRating(productID int) (float64, int, error) {
	reviews, err := s.repo.ListByProduct(productID)
	if err != nil {
		return 0, 0, err
	}
	if len(reviews) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, rv := range reviews {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews), nil
}
