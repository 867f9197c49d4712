package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Faq struct {
	ID        gocql.UUID `json:"id" db:"faq_id"`
	Category  string     `json:"category" db:"category"`
	Question  string     `json:"question" db:"question"`
	Answer    string     `json:"answer" db:"answer"`
	Lang      string     `json:"lang" db:"lang"`
	IsActive  bool       `json:"isActive" db:"is_active"`
	Order     int        `json:"order" db:"display_order"`
	Tags      []string   `json:"tags" db:"tags"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}
