package admin

import (
	"encoding/json"
	"net/http"
	"sort"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetAllOrders returns every order, newest first, for the admin panel.
func GetAllOrders(c *gin.Context) {
	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return
	}

	iter := ordersSession.Query(`SELECT order_id, user_id, items, shipping_address, payment_method, payment_status, items_price, shipping_price, tax_price, total_price, status, created_at
		FROM orders`).Iter()

	orders := []models.Order{}
	var order models.Order
	var itemsJSON, addressJSON string

	for iter.Scan(&order.ID, &order.UserID, &itemsJSON, &addressJSON,
		&order.PaymentMethod, &order.PaymentStatus, &order.ItemsPrice,
		&order.ShippingPrice, &order.TaxPrice, &order.TotalPrice,
		&order.Status, &order.CreatedAt) {
		json.Unmarshal([]byte(itemsJSON), &order.Items)
		json.Unmarshal([]byte(addressJSON), &order.ShippingAddress)
		orders = append(orders, order)
		order = models.Order{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read orders: " + err.Error()})
		return
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	c.JSON(http.StatusOK, orders)
}
