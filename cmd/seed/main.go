package main

import (
	"log"
	"time"

	"shopkart_back_end/internal/config"
	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"
	"shopkart_back_end/internal/services"

	"github.com/gocql/gocql"
)

// seedProducts is the starter catalog loaded by `go run ./cmd/seed`. The
// products table is wiped first.
var seedProducts = []models.Product{
	{Title: "Aurora X1 Smartphone", Brand: "Aurora", Category: "Electronics", Description: "6.5\" AMOLED, 128GB storage, dual SIM", Price: 13999, MRP: 15999, Stock: 40, Rating: 4.3, NumReviews: 182},
	{Title: "Aurora Buds Pro", Brand: "Aurora", Category: "Electronics", Description: "Wireless earbuds with active noise cancellation", Price: 2499, MRP: 3499, Stock: 120, Rating: 4.1, NumReviews: 95},
	{Title: "Nimbus 24\" Monitor", Brand: "Nimbus", Category: "Electronics", Description: "Full HD IPS panel, 75Hz", Price: 8499, MRP: 9999, Stock: 25, Rating: 4.4, NumReviews: 61},
	{Title: "TrailBlaze Running Shoes", Brand: "TrailBlaze", Category: "Footwear", Description: "Lightweight mesh, cushioned sole", Price: 1899, MRP: 2999, Stock: 80, Rating: 4.0, NumReviews: 210},
	{Title: "TrailBlaze Trekking Sandals", Brand: "TrailBlaze", Category: "Footwear", Description: "All-terrain grip, quick-dry straps", Price: 1299, MRP: 1799, Stock: 60, Rating: 3.9, NumReviews: 47},
	{Title: "Everwarm Fleece Jacket", Brand: "Everwarm", Category: "Clothing", Description: "Mid-weight fleece, zip pockets", Price: 999, MRP: 1499, Stock: 150, Rating: 4.2, NumReviews: 133},
	{Title: "Everwarm Cotton Tee (Pack of 3)", Brand: "Everwarm", Category: "Clothing", Description: "Crew neck, combed cotton", Price: 699, MRP: 999, Stock: 200, Rating: 4.5, NumReviews: 301},
	{Title: "HomeChef Non-stick Pan 28cm", Brand: "HomeChef", Category: "Kitchen", Description: "Induction compatible, PFOA free", Price: 849, MRP: 1299, Stock: 90, Rating: 4.3, NumReviews: 76},
	{Title: "HomeChef Pressure Cooker 5L", Brand: "HomeChef", Category: "Kitchen", Description: "Stainless steel, ISI certified", Price: 1599, MRP: 2199, Stock: 45, Rating: 4.6, NumReviews: 158},
	{Title: "PageTurner Desk Lamp", Brand: "PageTurner", Category: "General", Description: "Warm LED, adjustable arm", Price: 549, MRP: 799, Stock: 70, Rating: 4.0, NumReviews: 39},
}

func main() {
	config.Load()
	database.ConnectDatabases()

	session, err := database.GetCatalogSession()
	if err != nil {
		log.Fatalf("❌ Catalog session error: %v", err)
	}

	if err := session.Query(`TRUNCATE products`).Exec(); err != nil {
		log.Fatalf("❌ Could not truncate products: %v", err)
	}
	if err := session.Query(`TRUNCATE products_by_category`).Exec(); err != nil {
		log.Fatalf("❌ Could not truncate products_by_category: %v", err)
	}

	now := time.Now()
	for _, p := range seedProducts {
		p.ID = gocql.TimeUUID()
		p.CreatedAt = now
		p.UpdatedAt = now

		if err := session.Query(`INSERT INTO products (product_id, title, brand, category, description, price, mrp, stock, image, rating, num_reviews, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Brand, p.Category, p.Description, p.Price, p.MRP, p.Stock,
			p.Image, p.Rating, p.NumReviews, p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
			log.Fatalf("❌ Seeding failed for %s: %v", p.Title, err)
		}

		if err := session.Query(`INSERT INTO products_by_category (category, product_id) VALUES (?, ?)`,
			p.Category, p.ID).Exec(); err != nil {
			log.Printf("⚠️ Category index insert failed for %s: %v", p.Title, err)
		}

		services.IndexProduct(p)
	}

	log.Printf("✅ Seeded %d products", len(seedProducts))
}
