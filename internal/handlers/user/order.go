package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/middleware"
	"shopkart_back_end/internal/models"
	"shopkart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

const stockCASAttempts = 3

var errStockContention = errors.New("stock changed while placing the order, please retry")

//
// 📦 POST /api/orders — place an order from the caller's cart
//
func PlaceOrder(c *gin.Context) {
	claims, _ := middleware.CurrentUser(c)

	var input struct {
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
		PaymentMethod   string                 `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = "COD"
	}

	if err := validateShippingAddress(&input.ShippingAddress); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx := context.Background()

	cartItems, err := getOrCreateCart(ctx, claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read cart"})
		return
	}
	if len(cartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
		return
	}

	// live catalog reads for existence, stock and fallback prices
	products := make(map[string]models.Product, len(cartItems))
	for _, item := range cartItems {
		p, err := getProductByID(item.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item product"})
			return
		}
		products[item.ProductID] = p
	}

	orderItems, err := buildOrderItems(cartItems, products)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	totals := computeTotals(orderItems)

	catalogSession, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return
	}

	// Conditional per-product decrement. A line that fails after earlier
	// lines succeeded restores those before the order is rejected.
	if err := decrementStock(scyllaStockStore{session: catalogSession}, cartItems, products); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order := models.Order{
		ID:              gocql.TimeUUID(),
		UserID:          claims.UserID,
		Items:           orderItems,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   models.PaymentStatusPending,
		ItemsPrice:      totals.ItemsPrice,
		ShippingPrice:   totals.ShippingPrice,
		TaxPrice:        totals.TaxPrice,
		TotalPrice:      totals.TotalPrice,
		Status:          models.OrderStatusPlaced,
		CreatedAt:       time.Now(),
	}

	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return
	}

	itemsJSON, _ := json.Marshal(order.Items)
	addressJSON, _ := json.Marshal(order.ShippingAddress)

	if err := ordersSession.Query(`INSERT INTO orders (order_id, user_id, items, shipping_address, payment_method, payment_status, items_price, shipping_price, tax_price, total_price, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.UserID, string(itemsJSON), string(addressJSON),
		order.PaymentMethod, order.PaymentStatus, order.ItemsPrice,
		order.ShippingPrice, order.TaxPrice, order.TotalPrice,
		order.Status, order.CreatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create order: " + err.Error()})
		return
	}

	if err := saveCart(ctx, claims.UserID, []models.CartItem{}); err != nil {
		log.Printf("⚠️ Could not clear cart for %s after order %s: %v", claims.UserID, order.ID, err)
	}
	notifyCartChange(ctx, claims.UserID, "cleared")

	// best-effort confirmation mail
	go func(email string, o models.Order) {
		if email == "" {
			return
		}
		if err := utils.SendOrderConfirmationEmail(email, o); err != nil {
			log.Printf("⚠️ Confirmation email for order %s failed: %v", o.ID, err)
		}
	}(claims.Email, order)

	log.Printf("✅ Order %s placed by %s (total %.2f)", order.ID, claims.UserID, order.TotalPrice)
	c.JSON(http.StatusCreated, order)
}

// stockStore is the narrow catalog surface the decrement loop needs, so the
// compensation logic can be exercised without a live cluster.
type stockStore interface {
	readStock(productID gocql.UUID) (int, error)
	casStock(productID gocql.UUID, newStock, expected int) (bool, error)
}

type scyllaStockStore struct {
	session *gocql.Session
}

func (s scyllaStockStore) readStock(productID gocql.UUID) (int, error) {
	var stock int
	err := s.session.Query(`SELECT stock FROM products WHERE product_id = ?`, productID).Scan(&stock)
	return stock, err
}

func (s scyllaStockStore) casStock(productID gocql.UUID, newStock, expected int) (bool, error) {
	var prevStock int
	return s.session.Query(`UPDATE products SET stock = ? WHERE product_id = ? IF stock = ?`,
		newStock, productID, expected).ScanCAS(&prevStock)
}

// decrementStock applies each line with a compare-and-set update and bounded
// retries. On failure the already-applied decrements are restored so a
// rejected order never leaves the catalog mutated.
func decrementStock(store stockStore, cartItems []models.CartItem, products map[string]models.Product) error {
	type adjustment struct {
		id  gocql.UUID
		qty int
	}
	var applied []adjustment

	for _, item := range cartItems {
		p := products[item.ProductID]
		if err := casAdjustStock(store, p.ID, -item.Qty, p.Title); err != nil {
			for _, adj := range applied {
				if restoreErr := casAdjustStock(store, adj.id, adj.qty, ""); restoreErr != nil {
					log.Printf("❌ Stock restore failed for %s (+%d): %v", adj.id, adj.qty, restoreErr)
				}
			}
			return err
		}
		applied = append(applied, adjustment{id: p.ID, qty: item.Qty})
	}

	return nil
}

// casAdjustStock applies stock += delta guarded by `IF stock = ?`, so two
// concurrent orders can never both consume the same last unit.
func casAdjustStock(store stockStore, productID gocql.UUID, delta int, title string) error {
	for attempt := 0; attempt < stockCASAttempts; attempt++ {
		stock, err := store.readStock(productID)
		if err != nil {
			return fmt.Errorf("Invalid cart item product")
		}

		newStock := stock + delta
		if newStock < 0 {
			return fmt.Errorf("Not enough stock for %s. Available: %d, Requested: %d", title, stock, -delta)
		}

		ok, err := store.casStock(productID, newStock, stock)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		// someone else moved the stock, re-read and retry
	}

	return errStockContention
}

//
// 📦 GET /api/orders/my
//
func GetMyOrders(c *gin.Context) {
	claims, _ := middleware.CurrentUser(c)

	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return
	}

	iter := ordersSession.Query(`SELECT order_id, user_id, items, shipping_address, payment_method, payment_status, items_price, shipping_price, tax_price, total_price, status, created_at
		FROM orders WHERE user_id = ? ALLOW FILTERING`, claims.UserID).Iter()

	orders, err := scanOrders(iter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read orders: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

//
// 📦 GET /api/orders/:id — owner or admin
//
func GetOrderByID(c *gin.Context) {
	claims, _ := middleware.CurrentUser(c)

	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
		return
	}

	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return
	}

	var order models.Order
	var itemsJSON, addressJSON string
	if err := ordersSession.Query(`SELECT order_id, user_id, items, shipping_address, payment_method, payment_status, items_price, shipping_price, tax_price, total_price, status, created_at
		FROM orders WHERE order_id = ?`, gocql.UUID(orderUUID)).Scan(
		&order.ID, &order.UserID, &itemsJSON, &addressJSON,
		&order.PaymentMethod, &order.PaymentStatus, &order.ItemsPrice,
		&order.ShippingPrice, &order.TaxPrice, &order.TotalPrice,
		&order.Status, &order.CreatedAt); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	json.Unmarshal([]byte(itemsJSON), &order.Items)
	json.Unmarshal([]byte(addressJSON), &order.ShippingAddress)

	if order.UserID != claims.UserID && !claims.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not allowed"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// scanOrders drains an orders iterator, newest first.
func scanOrders(iter *gocql.Iter) ([]models.Order, error) {
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
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}
