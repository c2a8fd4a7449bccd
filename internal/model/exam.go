package model

import (
	"time"

	"github.com/google/uuid"
)

// Exam is a course-scoped assessment with an ordered question list.
// SubmissionCount is maintained by the external grading system and is
// read-only here; a non-zero count freezes the exam and all of its
// questions against edits and deletes.
type Exam struct {
	ID              uuid.UUID `json:"id"`
	CourseID        uuid.UUID `json:"course_id"`
	Title           string    `json:"title"`
	DurationMinutes int       `json:"duration_minutes"`
	PassingScore    int       `json:"passing_score"`
	IsPublished     bool      `json:"is_published"`
	SubmissionCount int       `json:"submission_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateExamRequest is the payload for creating an exam under a course.
type CreateExamRequest struct {
	Title           string `json:"title" binding:"required,min=3,max=255"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=480"`
	PassingScore    int    `json:"passing_score" binding:"omitempty,min=0,max=100"`
}

// UpdateExamRequest is the payload for updating an exam.
type UpdateExamRequest struct {
	Title           string `json:"title" binding:"omitempty,min=3,max=255"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1,max=480"`
	PassingScore    *int   `json:"passing_score" binding:"omitempty,min=0,max=100"`
	IsPublished     *bool  `json:"is_published" binding:"omitempty"`
}

// ExamDetail is an exam expanded with its questions and the derived
// aggregates the admin UI renders next to them.
type ExamDetail struct {
	Exam           Exam       `json:"exam"`
	Questions      []Question `json:"questions"`
	TotalPoints    int        `json:"total_points"`
	TotalQuestions int        `json:"total_questions"`
}
