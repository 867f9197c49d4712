package product

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"
	"shopkart_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

const productListCacheKey = "products:all"

const selectProductColumns = `SELECT product_id, title, brand, category, description, price, mrp, stock, image, rating, num_reviews, created_at, updated_at FROM products`

//
// 🛍️ GET /api/products?category=&q=
//
func GetProducts(c *gin.Context) {
	category := c.Query("category")
	q := strings.TrimSpace(c.Query("q"))

	ctx := context.Background()

	// unfiltered listing is served from the Redis cache
	if category == "" && q == "" {
		if val, err := database.RedisClient.Get(ctx, productListCacheKey).Result(); err == nil && val != "" {
			var cached []models.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	var products []models.Product
	var err error

	if category != "" && q == "" {
		products, err = productsByCategory(category)
	} else {
		products, err = scanAllProducts()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not read products: " + err.Error()})
		return
	}

	products = filterProducts(products, category, q)
	sortProductsNewest(products)

	if category == "" && q == "" {
		if data, err := json.Marshal(products); err == nil {
			database.RedisClient.Set(ctx, productListCacheKey, data, time.Hour)
		}
	}

	c.JSON(http.StatusOK, products)
}

func scanAllProducts() ([]models.Product, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(selectProductColumns).Iter()

	products := []models.Product{}
	var p models.Product
	for iter.Scan(&p.ID, &p.Title, &p.Brand, &p.Category, &p.Description, &p.Price, &p.MRP,
		&p.Stock, &p.Image, &p.Rating, &p.NumReviews, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{}
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

// productsByCategory walks the products_by_category lookup table and
// hydrates the full records.
func productsByCategory(category string) ([]models.Product, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id FROM products_by_category WHERE category = ?`, category).Iter()

	var ids []gocql.UUID
	var id gocql.UUID
	for iter.Scan(&id) {
		ids = append(ids, id)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	products := []models.Product{}
	for _, pid := range ids {
		var p models.Product
		if err := session.Query(selectProductColumns+` WHERE product_id = ?`, pid).Scan(
			&p.ID, &p.Title, &p.Brand, &p.Category, &p.Description, &p.Price, &p.MRP,
			&p.Stock, &p.Image, &p.Rating, &p.NumReviews, &p.CreatedAt, &p.UpdatedAt); err == nil {
			products = append(products, p)
		}
	}
	return products, nil
}

//
// 🔎 GET /api/products/search?q= — Elasticsearch path
//
func SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "query parameter 'q' is required"})
		return
	}

	// 1️⃣ Elasticsearch first
	results, err := services.SearchProducts(query)
	if err == nil && len(results) > 0 {
		// presigned URLs for the stored images
		for i := range results {
			if img, ok := results[i]["image"].(string); ok && img != "" {
				if signedURL, err := services.GenerateSignedURL(context.Background(), img, 24*time.Hour); err == nil {
					results[i]["image"] = signedURL
				}
			}
		}
		c.JSON(http.StatusOK, results)
		return
	}

	// 2️⃣ fallback: in-memory filter over the catalog table
	products, err := scanAllProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Search error: " + err.Error()})
		return
	}

	products = filterProducts(products, "", query)
	sortProductsNewest(products)
	c.JSON(http.StatusOK, products)
}

//
// 🛍️ GET /api/products/:id
//
func GetProductByID(c *gin.Context) {
	p, ok := findProduct(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p)
}

// findProduct resolves the :id path param, answering 404 on malformed or
// unknown ids.
func findProduct(c *gin.Context) (models.Product, bool) {
	var p models.Product

	pid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
		return p, false
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return p, false
	}

	if err := session.Query(selectProductColumns+` WHERE product_id = ?`, gocql.UUID(pid)).Scan(
		&p.ID, &p.Title, &p.Brand, &p.Category, &p.Description, &p.Price, &p.MRP,
		&p.Stock, &p.Image, &p.Rating, &p.NumReviews, &p.CreatedAt, &p.UpdatedAt); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return p, false
	}

	return p, true
}

//
// ➕ POST /api/products (admin)
//
func CreateProduct(c *gin.Context) {
	var input struct {
		Title       string   `json:"title"`
		Brand       string   `json:"brand"`
		Category    string   `json:"category"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		MRP         float64  `json:"mrp"`
		Stock       int      `json:"stock"`
		Image       string   `json:"image"`
		Rating      float64  `json:"rating"`
		NumReviews  int      `json:"numReviews"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
		return
	}
	if input.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "price is required"})
		return
	}
	if input.Category == "" {
		input.Category = "General"
	}

	now := time.Now()
	p := models.Product{
		ID:          gocql.TimeUUID(),
		Title:       input.Title,
		Brand:       input.Brand,
		Category:    input.Category,
		Description: input.Description,
		Price:       *input.Price,
		MRP:         input.MRP,
		Stock:       input.Stock,
		Image:       input.Image,
		Rating:      input.Rating,
		NumReviews:  input.NumReviews,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection error"})
		return
	}

	if err := session.Query(`INSERT INTO products (product_id, title, brand, category, description, price, mrp, stock, image, rating, num_reviews, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Brand, p.Category, p.Description, p.Price, p.MRP, p.Stock,
		p.Image, p.Rating, p.NumReviews, p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create product: " + err.Error()})
		return
	}

	upsertCategoryIndex(session, p)
	invalidateProductCache()

	// 🔄 Elasticsearch indexing
	go services.IndexProduct(p)

	c.JSON(http.StatusCreated, p)
}

func upsertCategoryIndex(session *gocql.Session, p models.Product) {
	session.Query(`INSERT INTO products_by_category (category, product_id) VALUES (?, ?)`,
		p.Category, p.ID).Exec()
}

func invalidateProductCache() {
	database.RedisClient.Del(context.Background(), productListCacheKey)
}
