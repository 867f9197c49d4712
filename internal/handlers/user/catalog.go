package user

import (
	"errors"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

var errProductNotFound = errors.New("Product not found")

// getProductByID reads one live catalog record, shared by the cart and
// order handlers for stock and price checks.
func getProductByID(productID string) (models.Product, error) {
	var p models.Product

	uid, err := uuid.Parse(productID)
	if err != nil {
		return p, errProductNotFound
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return p, err
	}

	if err := session.Query(`SELECT product_id, title, brand, category, description, price, mrp, stock, image, rating, num_reviews, created_at, updated_at
		FROM products WHERE product_id = ?`, gocql.UUID(uid)).Scan(
		&p.ID, &p.Title, &p.Brand, &p.Category, &p.Description, &p.Price, &p.MRP,
		&p.Stock, &p.Image, &p.Rating, &p.NumReviews, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return p, errProductNotFound
	}

	return p, nil
}
