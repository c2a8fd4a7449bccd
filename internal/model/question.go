package model

import (
	"github.com/google/uuid"
)

// QuestionType is the tagged discriminant for question variants. The
// structural rules enforced for each variant live in the assessment
// package.
type QuestionType string

const (
	QuestionTypeMCQ         QuestionType = "mcq"
	QuestionTypeTrueFalse   QuestionType = "true-false"
	QuestionTypeShortAnswer QuestionType = "short-answer"
)

// Question is a validated assessment question. Exactly one of QuizID
// and ExamID is set, depending on scope.
type Question struct {
	ID                 uuid.UUID    `json:"id"`
	QuizID             *uuid.UUID   `json:"quiz_id,omitempty"`
	ExamID             *uuid.UUID   `json:"exam_id,omitempty"`
	QuestionText       string       `json:"question_text"`
	QuestionType       QuestionType `json:"question_type"`
	Points             int          `json:"points"`
	OrderNum           int          `json:"order_num"`
	Options            []string     `json:"options,omitempty"`
	CorrectAnswer      *string      `json:"correct_answer,omitempty"`
	CorrectIndex       *int         `json:"correct_answer_index,omitempty"`
	Keywords           []string     `json:"keywords,omitempty"`
	NeedsManualGrading bool         `json:"needs_manual_grading,omitempty"`
}

// AddQuestionRequest is the payload for adding or replacing a question
// on a quiz or exam. Only the request shape is checked at bind time;
// the per-variant rules (option floor, answer membership, true/false
// values) run in the assessment engine so that every violation can be
// reported in one pass.
type AddQuestionRequest struct {
	QuestionText  string   `json:"question_text" binding:"required,min=1,max=2000"`
	QuestionType  string   `json:"question_type" binding:"required,oneof=mcq true-false short-answer"`
	Points        int      `json:"points" binding:"omitempty,min=1"`
	OrderNum      int      `json:"order_num" binding:"omitempty,min=1"`
	Options       []string `json:"options" binding:"omitempty,max=10,dive,max=1000"`
	CorrectAnswer *string  `json:"correct_answer" binding:"omitempty,max=1000"`
	CorrectIndex  *int     `json:"correct_answer_index" binding:"omitempty,min=0"`
	Keywords      []string `json:"keywords" binding:"omitempty,max=20,dive,max=100"`
}
