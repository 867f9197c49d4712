package user

import (
	"testing"

	"shopkart_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCartItemAppendsWithSnapshot(t *testing.T) {
	product := models.Product{Title: "Buds Pro", Price: 2499, Stock: 10}

	items, err := mergeCartItem([]models.CartItem{}, product, "p1", 2)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, 2499.0, items[0].PriceAtAdd)
}

func TestMergeCartItemSumsQuantities(t *testing.T) {
	product := models.Product{Title: "Buds Pro", Price: 2999, Stock: 10}
	existing := []models.CartItem{{ProductID: "p1", Qty: 2, PriceAtAdd: 2499}}

	items, err := mergeCartItem(existing, product, "p1", 3)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, 5, items[0].Qty)
	assert.Equal(t, 2499.0, items[0].PriceAtAdd, "merge keeps the original snapshot")
}

func TestMergeCartItemCapsAtStock(t *testing.T) {
	product := models.Product{Title: "Buds Pro", Price: 2499, Stock: 4}
	existing := []models.CartItem{{ProductID: "p1", Qty: 2, PriceAtAdd: 2499}}

	_, err := mergeCartItem(existing, product, "p1", 3)
	require.ErrorIs(t, err, errNotEnoughStock)

	_, err = mergeCartItem([]models.CartItem{}, product, "p2", 5)
	require.ErrorIs(t, err, errNotEnoughStock)
}

func TestSetCartItemQtyRefreshesSnapshot(t *testing.T) {
	product := models.Product{Title: "Buds Pro", Price: 1999, Stock: 10}
	existing := []models.CartItem{{ProductID: "p1", Qty: 2, PriceAtAdd: 2499}}

	items, err := setCartItemQty(existing, product, "p1", 4)
	require.NoError(t, err)

	assert.Equal(t, 4, items[0].Qty)
	assert.Equal(t, 1999.0, items[0].PriceAtAdd, "explicit update refreshes the snapshot")
}

func TestSetCartItemQtyChecksStockAndPresence(t *testing.T) {
	product := models.Product{Title: "Buds Pro", Price: 1999, Stock: 3}
	existing := []models.CartItem{{ProductID: "p1", Qty: 1, PriceAtAdd: 2499}}

	_, err := setCartItemQty(existing, product, "p1", 4)
	require.ErrorIs(t, err, errNotEnoughStock)

	_, err = setCartItemQty(existing, product, "p2", 1)
	require.ErrorIs(t, err, errItemNotInCart)
}

func TestRemoveCartItem(t *testing.T) {
	existing := []models.CartItem{
		{ProductID: "p1", Qty: 1, PriceAtAdd: 100},
		{ProductID: "p2", Qty: 2, PriceAtAdd: 200},
	}

	items, err := removeCartItem(existing, "p1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
}

func TestRemoveCartItemAbsentIsAnError(t *testing.T) {
	existing := []models.CartItem{{ProductID: "p1", Qty: 1, PriceAtAdd: 100}}

	_, err := removeCartItem(existing, "p9")
	require.ErrorIs(t, err, errItemNotInCart)
	require.Len(t, existing, 1, "cart left unchanged")
}
