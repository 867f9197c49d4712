package user

import (
	"errors"

	"shopkart_back_end/internal/models"
)

var (
	errNotEnoughStock = errors.New("Not enough stock")
	errItemNotInCart  = errors.New("Item not in cart")
)

// mergeCartItem applies the add operation: an existing line has its quantity
// summed (capped by stock, original snapshot price kept), a new line is
// appended with a snapshot of the current price.
func mergeCartItem(items []models.CartItem, product models.Product, productID string, qty int) ([]models.CartItem, error) {
	for i := range items {
		if items[i].ProductID == productID {
			newQty := items[i].Qty + qty
			if newQty > product.Stock {
				return nil, errNotEnoughStock
			}
			items[i].Qty = newQty
			return items, nil
		}
	}

	if qty > product.Stock {
		return nil, errNotEnoughStock
	}

	return append(items, models.CartItem{
		ProductID:  productID,
		Qty:        qty,
		PriceAtAdd: product.Price,
	}), nil
}

// setCartItemQty applies the update operation: the line must already exist
// and, unlike add-merge, the snapshot price is refreshed to the current one.
func setCartItemQty(items []models.CartItem, product models.Product, productID string, qty int) ([]models.CartItem, error) {
	if qty > product.Stock {
		return nil, errNotEnoughStock
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Qty = qty
			items[i].PriceAtAdd = product.Price
			return items, nil
		}
	}

	return nil, errItemNotInCart
}

// removeCartItem drops a line. Removing a product that is not in the cart is
// an error, never a silent success.
func removeCartItem(items []models.CartItem, productID string) ([]models.CartItem, error) {
	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	if len(kept) == len(items) {
		return nil, errItemNotInCart
	}
	return kept, nil
}
