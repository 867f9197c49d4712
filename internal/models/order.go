package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Order statuses. There is no transition engine, the field is just persisted.
const (
	OrderStatusPlaced     = "placed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// OrderItem is a frozen copy of the product at placement time. Later catalog
// edits or deletes must never change it.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

type ShippingAddress struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country"`
}

type Order struct {
	ID              gocql.UUID      `json:"id" db:"order_id"`
	UserID          string          `json:"userId" db:"user_id"`
	Items           []OrderItem     `json:"items" db:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress" db:"shipping_address"`
	PaymentMethod   string          `json:"paymentMethod" db:"payment_method"`
	PaymentStatus   string          `json:"paymentStatus" db:"payment_status"`
	ItemsPrice      float64         `json:"itemsPrice" db:"items_price"`
	ShippingPrice   float64         `json:"shippingPrice" db:"shipping_price"`
	TaxPrice        float64         `json:"taxPrice" db:"tax_price"`
	TotalPrice      float64         `json:"totalPrice" db:"total_price"`
	Status          string          `json:"status" db:"status"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
}
