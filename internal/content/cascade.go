package content

import (
	"errors"

	"github.com/google/uuid"
)

// ErrDuplicateQuiz is returned when attaching a quiz to a module that
// already owns one.
var ErrDuplicateQuiz = errors.New("module already has a quiz attached")

// Kind identifies the entity type of a hierarchy node.
type Kind string

const (
	KindCourse   Kind = "course"
	KindModule   Kind = "module"
	KindLesson   Kind = "lesson"
	KindQuiz     Kind = "quiz"
	KindExam     Kind = "exam"
	KindQuestion Kind = "question"
)

// Ref identifies one entity in the hierarchy.
type Ref struct {
	Kind Kind      `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// Tree is the ownership snapshot of a single course, as supplied by
// the caller. The authoritative cascade runs server-side via foreign
// keys; this mirror exists for optimistic UI updates and tests.
type Tree struct {
	CourseID uuid.UUID
	Modules  []ModuleNode
	Lessons  []uuid.UUID // legacy flat lessons attached directly to the course
	Exams    []ExamNode
}

// ModuleNode is a module with its owned lessons and optional quiz.
type ModuleNode struct {
	ID      uuid.UUID
	Lessons []uuid.UUID
	Quiz    *QuizNode
}

// QuizNode is a quiz with its owned questions.
type QuizNode struct {
	ID        uuid.UUID
	Questions []uuid.UUID
}

// ExamNode is an exam with its owned questions.
type ExamNode struct {
	ID        uuid.UUID
	Questions []uuid.UUID
}

// CascadeDelete returns every entity transitively owned by target,
// excluding target itself. Deleting a lesson, question, or exam body
// cascades to nothing beyond the exam's own questions.
func CascadeDelete(tree Tree, target Ref) []Ref {
	var out []Ref

	switch target.Kind {
	case KindCourse:
		if target.ID != tree.CourseID {
			return nil
		}
		for _, m := range tree.Modules {
			out = append(out, Ref{KindModule, m.ID})
			out = append(out, moduleDependents(m)...)
		}
		for _, l := range tree.Lessons {
			out = append(out, Ref{KindLesson, l})
		}
		for _, e := range tree.Exams {
			out = append(out, Ref{KindExam, e.ID})
			for _, q := range e.Questions {
				out = append(out, Ref{KindQuestion, q})
			}
		}

	case KindModule:
		for _, m := range tree.Modules {
			if m.ID == target.ID {
				out = append(out, moduleDependents(m)...)
				break
			}
		}

	case KindQuiz:
		for _, m := range tree.Modules {
			if m.Quiz != nil && m.Quiz.ID == target.ID {
				for _, q := range m.Quiz.Questions {
					out = append(out, Ref{KindQuestion, q})
				}
				break
			}
		}

	case KindExam:
		for _, e := range tree.Exams {
			if e.ID == target.ID {
				for _, q := range e.Questions {
					out = append(out, Ref{KindQuestion, q})
				}
				break
			}
		}

	case KindLesson, KindQuestion:
		// Leaves; nothing owned.
	}

	return out
}

func moduleDependents(m ModuleNode) []Ref {
	var out []Ref
	for _, l := range m.Lessons {
		out = append(out, Ref{KindLesson, l})
	}
	if m.Quiz != nil {
		out = append(out, Ref{KindQuiz, m.Quiz.ID})
		for _, q := range m.Quiz.Questions {
			out = append(out, Ref{KindQuestion, q})
		}
	}
	return out
}

// AttachQuiz enforces the one-quiz-per-module invariant: it returns
// the new quiz reference, or ErrDuplicateQuiz when the module already
// holds one.
func AttachQuiz(current *uuid.UUID, quizID uuid.UUID) (*uuid.UUID, error) {
	if current != nil {
		return nil, ErrDuplicateQuiz
	}
	q := quizID
	return &q, nil
}
