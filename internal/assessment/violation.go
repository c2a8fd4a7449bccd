// Package assessment implements the question validation engine: a
// pure, type-discriminated structural validator for quiz and exam
// questions, plus the derived aggregates the admin UI displays.
//
// The engine never performs I/O. Callers supply the target context
// (sibling count, submission count) as a snapshot and commit the
// normalized result themselves. Failures are returned as values —
// the full violation list at once — so a form can render every
// field error in a single round trip.
package assessment

import "strings"

// Code identifies a structural violation kind.
type Code string

const (
	// CodeImmutableExam — mutation attempted against an exam with
	// recorded submissions. Fatal to the operation; no other checks run.
	CodeImmutableExam Code = "IMMUTABLE_EXAM"

	// CodeInsufficientOptions — an MCQ has fewer than two non-blank options.
	CodeInsufficientOptions Code = "INSUFFICIENT_OPTIONS"

	// CodeTooManyOptions — an MCQ exceeds the per-context option cap.
	CodeTooManyOptions Code = "TOO_MANY_OPTIONS"

	// CodeInvalidAnswerReference — the correct answer does not reference
	// any of the question's own options.
	CodeInvalidAnswerReference Code = "INVALID_ANSWER_REFERENCE"

	// CodeMissingAnswer — a true/false question has no answer set.
	CodeMissingAnswer Code = "MISSING_ANSWER"

	// CodeInvalidAnswerValue — a true/false answer is neither "true" nor
	// "false" (case-insensitive), or the index is outside {0,1}.
	CodeInvalidAnswerValue Code = "INVALID_ANSWER_VALUE"

	// CodeMissingQuestionText — the question text is empty after trimming.
	CodeMissingQuestionText Code = "MISSING_QUESTION_TEXT"

	// CodeInvalidPoints — points below 1.
	CodeInvalidPoints Code = "INVALID_POINTS"

	// CodeInvalidOrder — order below 1.
	CodeInvalidOrder Code = "INVALID_ORDER"

	// CodeUnsupportedQuestionType — the type is unknown, or not
	// available in the target scope (quizzes are auto-graded and take
	// mcq and true-false only).
	CodeUnsupportedQuestionType Code = "UNKNOWN_QUESTION_TYPE"
)

// Violation is one structural failure, attributed to the form field
// that caused it.
type Violation struct {
	Code    Code   `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the aggregate result of a failed validation. It
// implements error for convenience but is always returned as a value,
// never panicked or wrapped into control flow.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Message
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether the list contains a violation with the given code.
func (v Violations) Has(code Code) bool {
	for _, violation := range v {
		if violation.Code == code {
			return true
		}
	}
	return false
}

// Fields returns the violations as a field → message map, matching the
// shape of the API error envelope.
func (v Violations) Fields() map[string]string {
	fields := make(map[string]string, len(v))
	for _, violation := range v {
		key := violation.Field
		if key == "" {
			key = "detail"
		}
		fields[key] = violation.Message
	}
	return fields
}
