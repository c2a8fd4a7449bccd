package model

import (
	"time"

	"github.com/google/uuid"
)

// Sermon is a recorded talk in the media program.
type Sermon struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Speaker     string    `json:"speaker"`
	Passage     string    `json:"passage"`
	RecordedOn  time.Time `json:"recorded_on"`
	MediaKey    *string   `json:"media_key,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateSermonRequest is the payload for creating a sermon.
type CreateSermonRequest struct {
	Title      string    `json:"title" binding:"required,min=3,max=255"`
	Speaker    string    `json:"speaker" binding:"required,min=2,max=255"`
	Passage    string    `json:"passage" binding:"omitempty,max=255"`
	RecordedOn time.Time `json:"recorded_on" binding:"required"`
	MediaKey   *string   `json:"media_key" binding:"omitempty,max=512"`
}

// UpdateSermonRequest is the payload for updating a sermon.
type UpdateSermonRequest struct {
	Title       string     `json:"title" binding:"omitempty,min=3,max=255"`
	Speaker     string     `json:"speaker" binding:"omitempty,min=2,max=255"`
	Passage     *string    `json:"passage" binding:"omitempty,max=255"`
	RecordedOn  *time.Time `json:"recorded_on" binding:"omitempty"`
	MediaKey    *string    `json:"media_key" binding:"omitempty,max=512"`
	IsPublished *bool      `json:"is_published" binding:"omitempty"`
}
