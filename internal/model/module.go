package model

import (
	"time"

	"github.com/google/uuid"
)

// Module is an ordered section of a course. A module owns lessons and
// at most one quiz.
type Module struct {
	ID        uuid.UUID  `json:"id"`
	CourseID  uuid.UUID  `json:"course_id"`
	Title     string     `json:"title"`
	OrderNum  int        `json:"order_num"`
	QuizID    *uuid.UUID `json:"quiz_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateModuleRequest is the payload for creating a module under a
// course. OrderNum is optional; when omitted the next free position is
// assigned.
type CreateModuleRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=255"`
	OrderNum int    `json:"order_num" binding:"omitempty,min=1"`
}

// UpdateModuleRequest is the payload for updating a module. Order is
// deliberately absent: module positions are locked after creation and
// only change through the reorder endpoint.
type UpdateModuleRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

// ReorderRequest moves one sibling to a target position. The whole
// sibling set is renumbered contiguously in response.
type ReorderRequest struct {
	MovedID     uuid.UUID `json:"moved_id" binding:"required"`
	NewPosition int       `json:"new_position" binding:"required,min=1"`
}

// ModuleTree is a module expanded with its lessons and quiz.
type ModuleTree struct {
	Module  Module             `json:"module"`
	Lessons []Lesson           `json:"lessons"`
	Quiz    *QuizWithQuestions `json:"quiz,omitempty"`
}
