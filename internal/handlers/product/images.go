package product

import (
	"context"
	"net/http"
	"time"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

//
// 🖼️ POST /api/products/:id/image (admin) — multipart upload to MinIO
//
func UploadProductImage(c *gin.Context) {
	p, ok := findProduct(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image file is required"})
		return
	}

	ctx := context.Background()
	objectURL, err := services.UploadProductImage(ctx, p.ID.String(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed: " + err.Error()})
		return
	}

	p.Image = objectURL
	p.UpdatedAt = time.Now()

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return
	}

	if err := session.Query(`UPDATE products SET image = ?, updated_at = ? WHERE product_id = ?`,
		p.Image, p.UpdatedAt, p.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update product: " + err.Error()})
		return
	}

	invalidateProductCache()
	go services.IndexProduct(p)

	c.JSON(http.StatusOK, p)
}
