package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID          gocql.UUID `json:"id" db:"product_id"`
	Title       string     `json:"title" db:"title"`
	Brand       string     `json:"brand" db:"brand"`
	Category    string     `json:"category" db:"category"`
	Description string     `json:"description" db:"description"`
	Price       float64    `json:"price" db:"price"`
	MRP         float64    `json:"mrp" db:"mrp"`
	Stock       int        `json:"stock" db:"stock"`
	Image       string     `json:"image" db:"image"`
	Rating      float64    `json:"rating" db:"rating"`
	NumReviews  int        `json:"numReviews" db:"num_reviews"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
