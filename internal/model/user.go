package model

import "time"

// User is a registered customer.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserRequest is the POST /api/users payload.
type UserRequest struct {
	Name  Field `json:"name"`
	Email Field `json:"email"`
}
