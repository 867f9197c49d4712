package user

import (
	"errors"
	"testing"

	"shopkart_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStockStore keeps stock in a map and can reject a scripted number of
// CAS attempts per product, like a concurrent order racing the decrement.
type fakeStockStore struct {
	stock      map[gocql.UUID]int
	rejectCAS  map[gocql.UUID]int
	readErrFor map[gocql.UUID]bool
}

func newFakeStockStore() *fakeStockStore {
	return &fakeStockStore{
		stock:      make(map[gocql.UUID]int),
		rejectCAS:  make(map[gocql.UUID]int),
		readErrFor: make(map[gocql.UUID]bool),
	}
}

func (f *fakeStockStore) readStock(productID gocql.UUID) (int, error) {
	if f.readErrFor[productID] {
		return 0, errors.New("read timeout")
	}
	stock, ok := f.stock[productID]
	if !ok {
		return 0, errors.New("not found")
	}
	return stock, nil
}

func (f *fakeStockStore) casStock(productID gocql.UUID, newStock, expected int) (bool, error) {
	if f.rejectCAS[productID] > 0 {
		f.rejectCAS[productID]--
		return false, nil
	}
	if f.stock[productID] != expected {
		return false, nil
	}
	f.stock[productID] = newStock
	return true, nil
}

func stockFixture(store *fakeStockStore, title string, stock int) (gocql.UUID, models.Product) {
	id := gocql.TimeUUID()
	store.stock[id] = stock
	return id, models.Product{ID: id, Title: title, Price: 100, Stock: stock}
}

func TestDecrementStockAppliesEveryLine(t *testing.T) {
	store := newFakeStockStore()
	idA, productA := stockFixture(store, "Buds Pro", 10)
	idB, productB := stockFixture(store, "Desk Lamp", 5)

	cart := []models.CartItem{
		{ProductID: idA.String(), Qty: 3, PriceAtAdd: 100},
		{ProductID: idB.String(), Qty: 5, PriceAtAdd: 100},
	}
	products := map[string]models.Product{
		idA.String(): productA,
		idB.String(): productB,
	}

	require.NoError(t, decrementStock(store, cart, products))

	assert.Equal(t, 7, store.stock[idA], "decremented by exactly the ordered qty")
	assert.Equal(t, 0, store.stock[idB], "the last units can be consumed")
}

func TestDecrementStockRestoresEarlierLinesOnFailure(t *testing.T) {
	store := newFakeStockStore()
	idA, productA := stockFixture(store, "Buds Pro", 10)
	idB, productB := stockFixture(store, "Pressure Cooker 5L", 1)

	cart := []models.CartItem{
		{ProductID: idA.String(), Qty: 4, PriceAtAdd: 100},
		{ProductID: idB.String(), Qty: 3, PriceAtAdd: 100}, // more than available
	}
	products := map[string]models.Product{
		idA.String(): productA,
		idB.String(): productB,
	}

	err := decrementStock(store, cart, products)
	require.Error(t, err)
	assert.Equal(t, "Not enough stock for Pressure Cooker 5L. Available: 1, Requested: 3", err.Error())

	assert.Equal(t, 10, store.stock[idA], "first line restored after the second failed")
	assert.Equal(t, 1, store.stock[idB], "failed line untouched")
}

func TestCasAdjustStockRetriesThroughContention(t *testing.T) {
	store := newFakeStockStore()
	id, _ := stockFixture(store, "Buds Pro", 10)
	store.rejectCAS[id] = stockCASAttempts - 1

	require.NoError(t, casAdjustStock(store, id, -2, "Buds Pro"))
	assert.Equal(t, 8, store.stock[id])
}

func TestCasAdjustStockGivesUpAfterBoundedAttempts(t *testing.T) {
	store := newFakeStockStore()
	id, _ := stockFixture(store, "Buds Pro", 10)
	store.rejectCAS[id] = stockCASAttempts

	err := casAdjustStock(store, id, -2, "Buds Pro")
	require.ErrorIs(t, err, errStockContention)
	assert.Equal(t, 10, store.stock[id], "no partial mutation on contention")
}

func TestDecrementStockReadFailureMapsToInvalidProduct(t *testing.T) {
	store := newFakeStockStore()
	id, product := stockFixture(store, "Buds Pro", 10)
	store.readErrFor[id] = true

	cart := []models.CartItem{{ProductID: id.String(), Qty: 1, PriceAtAdd: 100}}
	products := map[string]models.Product{id.String(): product}

	err := decrementStock(store, cart, products)
	require.Error(t, err)
	assert.Equal(t, "Invalid cart item product", err.Error())
}
