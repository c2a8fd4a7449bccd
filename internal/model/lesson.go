package model

import (
	"time"

	"github.com/google/uuid"
)

// Lesson is an ordered unit of content. A lesson normally belongs to a
// module; the legacy flat shape attaches it directly to a course with
// no module, and both shapes are served indefinitely.
type Lesson struct {
	ID              uuid.UUID  `json:"id"`
	ModuleID        *uuid.UUID `json:"module_id,omitempty"`
	CourseID        *uuid.UUID `json:"course_id,omitempty"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	DurationMinutes int        `json:"duration_minutes"`
	OrderNum        int        `json:"order_num"`
	VideoKey        *string    `json:"video_key,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateLessonRequest is the payload for creating a lesson. A
// user-supplied OrderNum may collide with a sibling; the collision is
// reported as a warning, never rejected.
type CreateLessonRequest struct {
	Title           string  `json:"title" binding:"required,min=1,max=255"`
	Content         string  `json:"content" binding:"omitempty"`
	DurationMinutes int     `json:"duration_minutes" binding:"omitempty,min=0"`
	OrderNum        int     `json:"order_num" binding:"omitempty,min=1"`
	VideoKey        *string `json:"video_key" binding:"omitempty,max=512"`
}

// UpdateLessonRequest is the payload for updating a lesson.
type UpdateLessonRequest struct {
	Title           string  `json:"title" binding:"omitempty,min=1,max=255"`
	Content         *string `json:"content" binding:"omitempty"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=0"`
	OrderNum        int     `json:"order_num" binding:"omitempty,min=1"`
	VideoKey        *string `json:"video_key" binding:"omitempty,max=512"`
}
