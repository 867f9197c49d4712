package product

import (
	"net/http"
	"strings"
	"time"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

//
// ✏️ PUT /api/products/:id (admin) — partial update
//
func UpdateProduct(c *gin.Context) {
	p, ok := findProduct(c)
	if !ok {
		return
	}

	var input struct {
		Title       *string  `json:"title"`
		Brand       *string  `json:"brand"`
		Category    *string  `json:"category"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		MRP         *float64 `json:"mrp"`
		Stock       *int     `json:"stock"`
		Image       *string  `json:"image"`
		Rating      *float64 `json:"rating"`
		NumReviews  *int     `json:"numReviews"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	oldCategory := p.Category

	// only fields present in the body are touched
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		if trimmed == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
			return
		}
		p.Title = trimmed
	}
	if input.Brand != nil {
		p.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.Category != nil {
		p.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		p.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.MRP != nil {
		p.MRP = *input.MRP
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	if input.Image != nil {
		p.Image = strings.TrimSpace(*input.Image)
	}
	if input.Rating != nil {
		p.Rating = *input.Rating
	}
	if input.NumReviews != nil {
		p.NumReviews = *input.NumReviews
	}
	p.UpdatedAt = time.Now()

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return
	}

	if err := session.Query(`UPDATE products SET title = ?, brand = ?, category = ?, description = ?, price = ?, mrp = ?, stock = ?, image = ?, rating = ?, num_reviews = ?, updated_at = ? WHERE product_id = ?`,
		p.Title, p.Brand, p.Category, p.Description, p.Price, p.MRP, p.Stock,
		p.Image, p.Rating, p.NumReviews, p.UpdatedAt, p.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update product: " + err.Error()})
		return
	}

	if p.Category != oldCategory {
		session.Query(`DELETE FROM products_by_category WHERE category = ? AND product_id = ?`,
			oldCategory, p.ID).Exec()
	}
	upsertCategoryIndex(session, p)
	invalidateProductCache()

	go services.IndexProduct(p)

	c.JSON(http.StatusOK, p)
}

//
// 🗑️ DELETE /api/products/:id (admin)
//
func DeleteProduct(c *gin.Context) {
	p, ok := findProduct(c)
	if !ok {
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`, p.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete product: " + err.Error()})
		return
	}

	session.Query(`DELETE FROM products_by_category WHERE category = ? AND product_id = ?`,
		p.Category, p.ID).Exec()
	invalidateProductCache()

	go services.DeleteDocument(services.ProductIndex, p.ID.String())

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
