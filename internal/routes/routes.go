package routes

import (
	"fmt"
	"net/http"
	"os"

	"shopkart_back_end/internal/handlers/admin"
	"shopkart_back_end/internal/handlers/faq"
	"shopkart_back_end/internal/handlers/product"
	"shopkart_back_end/internal/handlers/user"
	"shopkart_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CLIENT_URL")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API running...")
	})

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// Auth
	auth := api.Group("/auth")
	auth.POST("/register", middleware.RegisterRateLimit(), user.Register)
	auth.POST("/login", middleware.LoginRateLimit(), user.Login)
	auth.POST("/logout", user.Logout)
	auth.GET("/me", middleware.AuthRequired(), user.Me)

	// Products (public reads, admin-gated writes)
	products := api.Group("/products")
	products.GET("", product.GetProducts)
	products.GET("/search", middleware.SearchRateLimit(), product.SearchProducts)
	products.GET("/:id", product.GetProductByID)
	products.POST("", middleware.AuthRequired(), middleware.RequireAdmin, product.CreateProduct)
	products.PUT("/:id", middleware.AuthRequired(), middleware.RequireAdmin, product.UpdateProduct)
	products.DELETE("/:id", middleware.AuthRequired(), middleware.RequireAdmin, product.DeleteProduct)
	products.POST("/:id/image", middleware.AuthRequired(), middleware.RequireAdmin, product.UploadProductImage)

	// Cart (authenticated, per caller)
	cart := api.Group("/cart")
	cart.Use(middleware.AuthRequired())
	cart.GET("", user.GetCart)
	cart.GET("/ws", user.CartWebSocket)
	cart.POST("/add", middleware.CartRateLimit(), user.AddToCart)
	cart.PUT("/update", middleware.CartRateLimit(), user.UpdateCartItem)
	cart.DELETE("/remove/:productId", user.RemoveFromCart)
	cart.DELETE("/clear", user.ClearCart)

	// Orders
	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired())
	orders.POST("", user.PlaceOrder)
	orders.GET("/my", user.GetMyOrders)
	orders.GET("/:id", user.GetOrderByID)
	orders.GET("", middleware.RequireAdmin, admin.GetAllOrders)

	// FAQs
	api.GET("/faqs", faq.GetFaqs)

	adminFaqs := api.Group("/admin/faqs")
	adminFaqs.Use(middleware.AuthRequired(), middleware.RequireAdmin)
	adminFaqs.GET("", faq.AdminListFaqs)
	adminFaqs.POST("", faq.AdminCreateFaq)
	adminFaqs.PUT("/:id", faq.AdminUpdateFaq)
	adminFaqs.PATCH("/:id/toggle", faq.AdminToggleFaq)
	adminFaqs.DELETE("/:id", faq.AdminDeleteFaq)

	// clean JSON 404 for unmatched routes
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Not Found - %s", c.Request.URL.Path)})
	})
}
