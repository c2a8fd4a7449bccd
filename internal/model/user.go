package model

import "time"

// User is an administrative account with an assigned role.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	RoleID       int       `json:"role_id"`
	RoleName     string    `json:"role_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest is the payload for admin login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateUserRequest is the payload for creating an admin account.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	RoleID   int    `json:"role_id" binding:"required,min=1"`
}

// UpdateUserRequest is the payload for updating an admin account.
// Password is optional; empty means unchanged.
type UpdateUserRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Name     string `json:"name" binding:"omitempty,min=2,max=255"`
	Password string `json:"password" binding:"omitempty,min=8,max=72"`
	RoleID   int    `json:"role_id" binding:"omitempty,min=1"`
}
