package wishlist

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shop-backend/internal/product"
)

func newTestService() *Service {
	products := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Sneaker", Price: decimal.NewFromInt(30)},
		{ID: 2, Name: "Jacket", Price: decimal.NewFromInt(60)},
	}))
	return NewService(NewInMemoryRepository(), products)
}

func TestAddAndList(t *testing.T) {
	svc := newTestService()

	ids, err := svc.Add(7, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)

	// duplicate add is a no-op
	ids, err = svc.Add(7, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)

	ids, err = svc.Add(7, 2)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	items, err := svc.List(7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Sneaker", items[0].Name)
	assert.Equal(t, "Jacket", items[1].Name)
}

func TestAddUnknownProduct(t *testing.T) {
	svc := newTestService()
	_, err := svc.Add(7, 999)
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestRemove(t *testing.T) {
	svc := newTestService()
	_, err := svc.Add(7, 1)
	require.NoError(t, err)
	_, err = svc.Add(7, 2)
	require.NoError(t, err)

	ids, err := svc.Remove(7, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids)

	// removing an absent id leaves the list untouched
	ids, err = svc.Remove(7, 999)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids)
}

func TestListsAreIsolatedPerUser(t *testing.T) {
	svc := newTestService()
	_, err := svc.Add(7, 1)
	require.NoError(t, err)

	items, err := svc.List(8)
	require.NoError(t, err)
	assert.Empty(t, items)
}
