package model

import (
	"time"

	"github.com/google/uuid"
)

// Quiz is a module-scoped assessment. Each module holds at most one
// quiz; attaching a second is rejected.
type Quiz struct {
	ID           uuid.UUID `json:"id"`
	ModuleID     uuid.UUID `json:"module_id"`
	PassingScore int       `json:"passing_score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateQuizRequest is the payload for attaching a quiz to a module.
type CreateQuizRequest struct {
	PassingScore int `json:"passing_score" binding:"required,min=1,max=100"`
}

// UpdateQuizRequest is the payload for updating a quiz.
type UpdateQuizRequest struct {
	PassingScore int `json:"passing_score" binding:"required,min=1,max=100"`
}

// QuizWithQuestions is a quiz expanded with its ordered questions.
type QuizWithQuestions struct {
	Quiz      Quiz       `json:"quiz"`
	Questions []Question `json:"questions"`
}
