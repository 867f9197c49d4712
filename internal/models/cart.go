package models

// CartItem is one line of the per-user cart document stored in Redis.
// PriceAtAdd is the snapshot taken when the line was first added.
type CartItem struct {
	ProductID  string  `json:"productId"`
	Qty        int     `json:"qty"`
	PriceAtAdd float64 `json:"priceAtAdd"`
}

type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

// PopulatedCartItem joins a cart line with the live product record so the
// client can render title, current price and remaining stock.
type PopulatedCartItem struct {
	ProductID  string  `json:"productId"`
	Qty        int     `json:"qty"`
	PriceAtAdd float64 `json:"priceAtAdd"`
	Title      string  `json:"title"`
	Brand      string  `json:"brand"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	MRP        float64 `json:"mrp"`
	Image      string  `json:"image"`
	Stock      int     `json:"stock"`
}
