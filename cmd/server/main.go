package main

import (
	"context"
	"log"
	"os"

	"shopkart_back_end/internal/config"
	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	// ✅ Prepared statements for the hot auth path
	database.InitPreparedStatements()

	// ✅ Pre-warm the Redis connection
	warmupRedisCache()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Shopkart server listening on port", port)
	r.Run(":" + port)
}

// warmupRedisCache pings Redis so the first request does not pay the
// connection latency.
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Redis cache warmed up")
	}
}
