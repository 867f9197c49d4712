package user

import (
	"fmt"
	"math"

	"shopkart_back_end/internal/models"
)

// Pricing rules for order placement.
const (
	FreeShippingThreshold = 999.0 // free shipping at or above this subtotal
	FlatShippingFee       = 50.0
	TaxRate               = 0.0
)

// round2 rounds to 2 decimal places, half up at the cent level.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type orderTotals struct {
	ItemsPrice    float64
	ShippingPrice float64
	TaxPrice      float64
	TotalPrice    float64
}

// buildOrderItems validates every cart line against the live catalog and
// freezes the line snapshots. products maps productID → live record; a
// missing entry means the product was deleted since it was added.
func buildOrderItems(cartItems []models.CartItem, products map[string]models.Product) ([]models.OrderItem, error) {
	orderItems := make([]models.OrderItem, 0, len(cartItems))

	for _, item := range cartItems {
		p, ok := products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("Invalid cart item product")
		}

		if p.Stock < item.Qty {
			return nil, fmt.Errorf("Not enough stock for %s. Available: %d, Requested: %d",
				p.Title, p.Stock, item.Qty)
		}

		// snapshot-or-fallback: lines predating snapshotting carry a zero
		// PriceAtAdd and fall back to the current price
		price := item.PriceAtAdd
		if price == 0 {
			price = p.Price
		}

		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Title:     p.Title,
			Image:     p.Image,
			Price:     price,
			Qty:       item.Qty,
		})
	}

	return orderItems, nil
}

// computeTotals derives the order's price fields from the frozen lines.
func computeTotals(items []models.OrderItem) orderTotals {
	itemsPrice := 0.0
	for _, item := range items {
		itemsPrice += item.Price * float64(item.Qty)
	}
	itemsPrice = round2(itemsPrice)

	shippingPrice := FlatShippingFee
	if itemsPrice >= FreeShippingThreshold {
		shippingPrice = 0
	}

	taxPrice := round2(itemsPrice * TaxRate)
	totalPrice := round2(itemsPrice + shippingPrice + taxPrice)

	return orderTotals{
		ItemsPrice:    itemsPrice,
		ShippingPrice: shippingPrice,
		TaxPrice:      taxPrice,
		TotalPrice:    totalPrice,
	}
}

// validateShippingAddress enforces the required fields and fills defaults.
func validateShippingAddress(addr *models.ShippingAddress) error {
	if addr.FullName == "" || addr.Phone == "" || addr.AddressLine1 == "" ||
		addr.City == "" || addr.State == "" || addr.Pincode == "" {
		return fmt.Errorf("Shipping address is incomplete")
	}
	if addr.Country == "" {
		addr.Country = "India"
	}
	return nil
}
