package user

import (
	"context"
	"log"
	"net/http"
	"time"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow all origins, tighten in production
		return true
	},
}

// CartWebSocket streams cart state to the client whenever a mutation
// publishes on the user's cart channel.
func CartWebSocket(c *gin.Context) {
	userID := c.GetString("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	pubsub := database.Redis.Subscribe(ctx, cartKey(userID))
	defer pubsub.Close()

	ch := pubsub.Channel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Cart sync enabled",
	})

	for {
		select {
		case msg := <-ch:
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}

			items, err := getOrCreateCart(ctx, userID)
			if err != nil {
				items = []models.CartItem{}
			}

			total := 0.0
			count := 0
			for _, item := range items {
				total += item.PriceAtAdd * float64(item.Qty)
				count += item.Qty
			}

			response := map[string]interface{}{
				"type":  "cart_updated",
				"items": items,
				"total": total,
				"count": count,
			}

			if err := conn.WriteJSON(response); err != nil {
				log.Printf("❌ WebSocket write error: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// keepalive ping
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
