package model

import (
	"time"

	"github.com/google/uuid"
)

// Course is the root of the content hierarchy. It owns modules (which
// own lessons and an optional quiz) and course-scoped exams.
type Course struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	InstructorID int       `json:"instructor_id"`
	Duration     string    `json:"duration"`
	IsPublished  bool      `json:"is_published"`
	ThumbnailKey *string   `json:"thumbnail_key,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCourseRequest is the payload for creating a new course.
type CreateCourseRequest struct {
	Title        string  `json:"title" binding:"required,min=3,max=255"`
	Description  string  `json:"description" binding:"omitempty,max=5000"`
	InstructorID int     `json:"instructor_id" binding:"required,min=1"`
	Duration     string  `json:"duration" binding:"omitempty,max=50"`
	ThumbnailKey *string `json:"thumbnail_key" binding:"omitempty,max=512"`
}

// UpdateCourseRequest is the payload for updating an existing course.
type UpdateCourseRequest struct {
	Title        string  `json:"title" binding:"omitempty,min=3,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=5000"`
	InstructorID int     `json:"instructor_id" binding:"omitempty,min=1"`
	Duration     *string `json:"duration" binding:"omitempty,max=50"`
	ThumbnailKey *string `json:"thumbnail_key" binding:"omitempty,max=512"`
}

// SetPublishedRequest flips the course draft/published flag. Either
// direction is always legal; publishing has no completeness
// precondition.
type SetPublishedRequest struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}

// CourseTree is the fully expanded hierarchy returned by the tree
// endpoint and cached in Redis for published courses.
type CourseTree struct {
	Course  Course       `json:"course"`
	Modules []ModuleTree `json:"modules"`
	Exams   []ExamDetail `json:"exams"`
}
