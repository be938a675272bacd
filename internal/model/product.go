package model

import "time"

// Product represents an item in the catalogue.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       Amount    `json:"price" db:"price"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ProductRequest is the POST /api/products payload.
type ProductRequest struct {
	Name        Field `json:"name"`
	Price       Field `json:"price"`
	Description Field `json:"description"`
}
