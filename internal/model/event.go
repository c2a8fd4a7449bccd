package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled program entry (conference, meetup, service).
type Event struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required,min=3,max=255"`
	Description string     `json:"description" binding:"omitempty,max=5000"`
	Location    string     `json:"location" binding:"omitempty,max=255"`
	StartsAt    time.Time  `json:"starts_at" binding:"required"`
	EndsAt      *time.Time `json:"ends_at" binding:"omitempty,gtfield=StartsAt"`
}

// UpdateEventRequest is the payload for updating an event.
type UpdateEventRequest struct {
	Title       string     `json:"title" binding:"omitempty,min=3,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=5000"`
	Location    *string    `json:"location" binding:"omitempty,max=255"`
	StartsAt    *time.Time `json:"starts_at" binding:"omitempty"`
	EndsAt      *time.Time `json:"ends_at" binding:"omitempty"`
	IsPublished *bool      `json:"is_published" binding:"omitempty"`
}
