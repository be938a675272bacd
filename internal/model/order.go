package model

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order represents a customer order. UserName is filled from the owning user
// when listing and stays nil when user_id does not resolve.
type Order struct {
	ID          int64       `json:"id" db:"id"`
	UserID      *int64      `json:"user_id" db:"user_id"`
	TotalAmount Amount      `json:"total_amount" db:"total_amount"`
	Status      OrderStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UserName    *string     `json:"user_name" db:"user_name"`
}

// OrderRequest is the POST /api/orders payload. Status is optional and
// defaults to pending; its value is checked by the database.
type OrderRequest struct {
	UserID      Field `json:"user_id"`
	TotalAmount Field `json:"total_amount"`
	Status      Field `json:"status"`
}
