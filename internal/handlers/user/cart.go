package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const cartTTL = 30 * 24 * time.Hour

func cartKey(userID string) string {
	return "cart:" + userID
}

// getOrCreateCart reads the user's cart document from Redis. Read-or-create
// semantics are explicit: a missing key persists an empty cart before
// returning it.
func getOrCreateCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	data, err := database.RedisClient.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		items := []models.CartItem{}
		if err := saveCart(ctx, userID, items); err != nil {
			return nil, err
		}
		return items, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

func saveCart(ctx context.Context, userID string, items []models.CartItem) error {
	jsonData, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return database.RedisClient.Set(ctx, cartKey(userID), jsonData, cartTTL).Err()
}

// notifyCartChange wakes up the websocket feed for this user.
func notifyCartChange(ctx context.Context, userID, event string) {
	database.RedisClient.Publish(ctx, cartKey(userID), event)
}

// populateCart joins cart lines with the live catalog so the client can
// render titles, current prices and remaining stock. Lines whose product
// disappeared stay in the cart (order placement reports them).
func populateCart(items []models.CartItem) []models.PopulatedCartItem {
	populated := make([]models.PopulatedCartItem, 0, len(items))
	for _, item := range items {
		entry := models.PopulatedCartItem{
			ProductID:  item.ProductID,
			Qty:        item.Qty,
			PriceAtAdd: item.PriceAtAdd,
		}
		if p, err := getProductByID(item.ProductID); err == nil {
			entry.Title = p.Title
			entry.Brand = p.Brand
			entry.Category = p.Category
			entry.Price = p.Price
			entry.MRP = p.MRP
			entry.Image = p.Image
			entry.Stock = p.Stock
		}
		populated = append(populated, entry)
	}
	return populated
}

//
// 🛒 GET /api/cart
//
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := context.Background()

	items, err := getOrCreateCart(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID, "items": populateCart(items)})
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID string `json:"productId"`
		Qty       *int   `json:"qty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	if input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "productId required"})
		return
	}

	// qty defaults to 1 only when absent, an explicit 0 is invalid
	qty := 1
	if input.Qty != nil {
		qty = *input.Qty
	}
	if qty < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "qty must be >= 1"})
		return
	}

	product, err := getProductByID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if product.Stock <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Out of stock"})
		return
	}

	ctx := context.Background()
	items, err := getOrCreateCart(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read cart"})
		return
	}

	items, err = mergeCartItem(items, product, input.ProductID, qty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := saveCart(ctx, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not save cart"})
		return
	}
	notifyCartChange(ctx, userID, "updated")

	c.JSON(http.StatusOK, gin.H{"userId": userID, "items": populateCart(items)})
}

//
// ✏️ PUT /api/cart/update
//
func UpdateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID string `json:"productId"`
		Qty       int    `json:"qty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}
	if input.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "productId required"})
		return
	}
	if input.Qty < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "qty must be >= 1"})
		return
	}

	product, err := getProductByID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	ctx := context.Background()
	items, err := getOrCreateCart(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read cart"})
		return
	}

	items, err = setCartItemQty(items, product, input.ProductID, input.Qty)
	if errors.Is(err, errItemNotInCart) {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := saveCart(ctx, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not save cart"})
		return
	}
	notifyCartChange(ctx, userID, "updated")

	c.JSON(http.StatusOK, gin.H{"userId": userID, "items": populateCart(items)})
}

//
// ❌ DELETE /api/cart/remove/:productId
//
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	ctx := context.Background()
	items, err := getOrCreateCart(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read cart"})
		return
	}

	items, err = removeCartItem(items, productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	if err := saveCart(ctx, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not save cart"})
		return
	}
	notifyCartChange(ctx, userID, "updated")

	c.JSON(http.StatusOK, gin.H{"userId": userID, "items": populateCart(items)})
}

//
// 🧹 DELETE /api/cart/clear
//
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := context.Background()

	if err := saveCart(ctx, userID, []models.CartItem{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not clear cart"})
		return
	}
	notifyCartChange(ctx, userID, "cleared")

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
