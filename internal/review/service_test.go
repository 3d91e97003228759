package review

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shop-backend/internal/order"
)

// seedOrder creates an order for user 7 containing product 1 and walks it to
// the given status.
func seedOrder(t *testing.T, orders *order.Service, target order.Status) order.Order {
	t.Helper()
	o, err := orders.Create(order.Order{
		UserID:        7,
		Items:         []order.Item{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(30)}},
		PaymentMethod: order.PaymentCOD,
	})
	require.NoError(t, err)

	path := []order.Status{order.StatusConfirmed, order.StatusProcessing, order.StatusShipped, order.StatusDelivered}
	for _, next := range path {
		if o.Status == target {
			break
		}
		o, err = orders.AdminUpdateStatus(o.ID, next)
		require.NoError(t, err)
	}
	return o
}

func TestCreate_RequiresDeliveredOrder(t *testing.T) {
	orders := order.NewService(order.NewInMemoryRepository())
	svc := NewService(NewInMemoryRepository(), orders)
	o := seedOrder(t, orders, order.StatusShipped)

	_, err := svc.Create(7, o.ID, 1, 5, "great")
	assert.ErrorIs(t, err, ErrNotDelivered)
}

func TestCreate_DeliveredOrder(t *testing.T) {
	orders := order.NewService(order.NewInMemoryRepository())
	svc := NewService(NewInMemoryRepository(), orders)
	o := seedOrder(t, orders, order.StatusDelivered)

	rv, err := svc.Create(7, o.ID, 1, 4, "solid")
	require.NoError(t, err)
	assert.Equal(t, 4, rv.Rating)
	assert.Equal(t, 7, rv.UserID)
	assert.NotZero(t, rv.ID)

	// once per order
	_, err = svc.Create(7, o.ID, 1, 5, "again")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreate_ProductMustBeInOrder(t *testing.T) {
	orders := order.NewService(order.NewInMemoryRepository())
	svc := NewService(NewInMemoryRepository(), orders)
	o := seedOrder(t, orders, order.StatusDelivered)

	_, err := svc.Create(7, o.ID, 999, 5, "")
	assert.ErrorIs(t, err, ErrNotInOrder)
}

func TestCreate_OtherUsersOrder(t *testing.T) {
	orders := order.NewService(order.NewInMemoryRepository())
	svc := NewService(NewInMemoryRepository(), orders)
	o := seedOrder(t, orders, order.StatusDelivered)

	_, err := svc.Create(8, o.ID, 1, 5, "")
	assert.ErrorIs(t, err, order.ErrNotFound)
}

func TestCreate_RatingBounds(t *testing.T) {
	orders := order.NewService(order.NewInMemoryRepository())
	svc := NewService(NewInMemoryRepository(), orders)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Create(7, 1, 1, rating, "")
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}
}

func TestAverageRating(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, order.NewService(order.NewInMemoryRepository()))

	avg, count, err := svc.AverageRating(1)
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.Zero(t, count)

	for _, rating := range []int{5, 4, 3} {
		_, err := repo.Create(Review{ProductID: 1, UserID: 7, Rating: rating})
		require.NoError(t, err)
	}
	_, err = repo.Create(Review{ProductID: 2, UserID: 7, Rating: 1})
	require.NoError(t, err)

	avg, count, err = svc.AverageRating(1)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 1e-9)
	assert.Equal(t, 3, count)
}
