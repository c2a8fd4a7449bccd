package assessment

import (
	"fmt"
	"strings"

	"github.com/beaconhq/beacon-backend/internal/model"
)

// DefaultMaxOptions is the MCQ option cap when the context does not
// set one. Quiz questions use a tighter cap of 5; exams allow 6.
const DefaultMaxOptions = 6

// Candidate is an unvalidated question as submitted by the caller.
type Candidate struct {
	Type          model.QuestionType
	Text          string
	Points        int
	Order         int
	Options       []string
	CorrectAnswer *string
	CorrectIndex  *int
	Keywords      []string
}

// Context is the snapshot of the target quiz or exam the candidate is
// being validated against. The caller fetches it before calling in;
// the engine never reaches out itself.
type Context struct {
	// SiblingCount is the number of questions already on the target,
	// used to default the order of a new question.
	SiblingCount int

	// SubmissionCount is the externally maintained count of graded
	// submissions. Any value above zero freezes the target.
	SubmissionCount int

	// MaxOptions caps the MCQ option list; zero means DefaultMaxOptions.
	MaxOptions int

	// AllowShortAnswer admits the short-answer variant. Exams set it;
	// quiz scope leaves it false because quizzes are auto-graded and
	// short-answer questions may need manual grading.
	AllowShortAnswer bool
}

// ValidateQuestion checks a candidate against the structural rules of
// its question type and returns the normalized question, or the full
// list of violations. There is no partial acceptance: a candidate with
// any violation is rejected as a whole.
//
// The immutability gate runs first and short-circuits: a frozen exam
// reports only CodeImmutableExam regardless of the payload.
func ValidateQuestion(cand Candidate, ctx Context) (*model.Question, Violations) {
	if ctx.SubmissionCount > 0 {
		return nil, Violations{{
			Code:    CodeImmutableExam,
			Message: fmt.Sprintf("exam has %d recorded submissions and can no longer be changed", ctx.SubmissionCount),
		}}
	}

	var violations Violations
	q := &model.Question{
		QuestionType: cand.Type,
		QuestionText: strings.TrimSpace(cand.Text),
		Points:       cand.Points,
		OrderNum:     cand.Order,
	}

	switch cand.Type {
	case model.QuestionTypeMCQ:
		violations = append(violations, validateMCQ(cand, ctx, q)...)
	case model.QuestionTypeTrueFalse:
		violations = append(violations, validateTrueFalse(cand, q)...)
	case model.QuestionTypeShortAnswer:
		if !ctx.AllowShortAnswer {
			violations = append(violations, Violation{
				Code:    CodeUnsupportedQuestionType,
				Field:   "question_type",
				Message: "short-answer questions are not available in quiz scope",
			})
		} else {
			validateShortAnswer(cand, q)
		}
	default:
		violations = append(violations, Violation{
			Code:    CodeUnsupportedQuestionType,
			Field:   "question_type",
			Message: fmt.Sprintf("unknown question type %q", cand.Type),
		})
	}

	violations = append(violations, validateCommon(cand, ctx, q)...)

	if len(violations) > 0 {
		return nil, violations
	}
	return q, nil
}

// validateMCQ enforces the option floor, the per-context option cap,
// and correct-answer membership in the filtered option set.
func validateMCQ(cand Candidate, ctx Context, q *model.Question) Violations {
	var violations Violations

	options := FilterOptions(cand.Options)
	q.Options = options

	if len(options) < 2 {
		violations = append(violations, Violation{
			Code:    CodeInsufficientOptions,
			Field:   "options",
			Message: fmt.Sprintf("multiple choice requires at least 2 non-blank options, got %d", len(options)),
		})
	}

	cap := ctx.MaxOptions
	if cap <= 0 {
		cap = DefaultMaxOptions
	}
	if len(options) > cap {
		violations = append(violations, Violation{
			Code:    CodeTooManyOptions,
			Field:   "options",
			Message: fmt.Sprintf("multiple choice allows at most %d options, got %d", cap, len(options)),
		})
	}

	switch {
	case cand.CorrectAnswer != nil:
		answer := strings.TrimSpace(*cand.CorrectAnswer)
		idx := -1
		for i, opt := range options {
			if opt == answer {
				idx = i
				break
			}
		}
		if idx == -1 {
			violations = append(violations, Violation{
				Code:    CodeInvalidAnswerReference,
				Field:   "correct_answer",
				Message: fmt.Sprintf("correct answer %q is not one of the options", answer),
			})
		} else {
			q.CorrectAnswer = &answer
			q.CorrectIndex = &idx
		}

	case cand.CorrectIndex != nil:
		idx := *cand.CorrectIndex
		if idx < 0 || idx >= len(options) {
			violations = append(violations, Violation{
				Code:    CodeInvalidAnswerReference,
				Field:   "correct_answer_index",
				Message: fmt.Sprintf("correct answer index %d is out of range", idx),
			})
		} else {
			answer := options[idx]
			q.CorrectAnswer = &answer
			q.CorrectIndex = &idx
		}
	}

	return violations
}

// validateTrueFalse accepts an answer as the literal strings
// "true"/"false" (case-insensitive) or as an index into the fixed
// pair, where 0 means true and 1 means false.
func validateTrueFalse(cand Candidate, q *model.Question) Violations {
	var answer string

	switch {
	case cand.CorrectAnswer != nil:
		normalized := strings.ToLower(strings.TrimSpace(*cand.CorrectAnswer))
		if normalized != "true" && normalized != "false" {
			return Violations{{
				Code:    CodeInvalidAnswerValue,
				Field:   "correct_answer",
				Message: fmt.Sprintf("true/false answer must be \"true\" or \"false\", got %q", *cand.CorrectAnswer),
			}}
		}
		answer = normalized

	case cand.CorrectIndex != nil:
		switch *cand.CorrectIndex {
		case 0:
			answer = "true"
		case 1:
			answer = "false"
		default:
			return Violations{{
				Code:    CodeInvalidAnswerValue,
				Field:   "correct_answer_index",
				Message: fmt.Sprintf("true/false answer index must be 0 or 1, got %d", *cand.CorrectIndex),
			}}
		}

	default:
		return Violations{{
			Code:    CodeMissingAnswer,
			Field:   "correct_answer",
			Message: "true/false questions require an answer",
		}}
	}

	idx := 0
	if answer == "false" {
		idx = 1
	}
	q.CorrectAnswer = &answer
	q.CorrectIndex = &idx
	return nil
}

// validateShortAnswer has no structural requirement: keywords are
// optional, and their absence tags the question for manual grading
// downstream rather than rejecting it.
func validateShortAnswer(cand Candidate, q *model.Question) {
	q.Keywords = FilterOptions(cand.Keywords)
	q.NeedsManualGrading = len(q.Keywords) == 0
}

// validateCommon checks the fields shared by all variants and applies
// defaulting: points defaults to 1 and order defaults to
// siblingCount+1 when unsupplied (zero).
func validateCommon(cand Candidate, ctx Context, q *model.Question) Violations {
	var violations Violations

	if q.QuestionText == "" {
		violations = append(violations, Violation{
			Code:    CodeMissingQuestionText,
			Field:   "question_text",
			Message: "question text must not be empty",
		})
	}

	if q.Points == 0 {
		q.Points = 1
	}
	if q.Points < 1 {
		violations = append(violations, Violation{
			Code:    CodeInvalidPoints,
			Field:   "points",
			Message: fmt.Sprintf("points must be at least 1, got %d", cand.Points),
		})
	}

	if q.OrderNum == 0 {
		q.OrderNum = ctx.SiblingCount + 1
	}
	if q.OrderNum < 1 {
		violations = append(violations, Violation{
			Code:    CodeInvalidOrder,
			Field:   "order_num",
			Message: fmt.Sprintf("order must be at least 1, got %d", cand.Order),
		})
	}

	return violations
}

// FilterOptions trims every entry and drops blanks, preserving order.
func FilterOptions(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, o := range raw {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
