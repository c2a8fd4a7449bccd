package assessment

import (
	"testing"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateQuestionMCQOptionFloor(t *testing.T) {
	// Scenario: one of the two options is blank after trimming, so only
	// a single usable option remains.
	cand := Candidate{
		Type:          model.QuestionTypeMCQ,
		Text:          "What is the capital of France?",
		Options:       []string{"", "Paris"},
		CorrectAnswer: strPtr("Paris"),
	}

	q, violations := ValidateQuestion(cand, Context{})
	require.Nil(t, q)
	assert.True(t, violations.Has(CodeInsufficientOptions))
}

func TestValidateQuestionMCQOptionFloorRegardlessOfOtherFields(t *testing.T) {
	// The floor applies no matter what the rest of the payload looks like.
	cases := []Candidate{
		{Type: model.QuestionTypeMCQ, Text: "Q", Options: nil},
		{Type: model.QuestionTypeMCQ, Text: "Q", Options: []string{"only"}},
		{Type: model.QuestionTypeMCQ, Text: "", Options: []string{"  ", "\t"}, Points: 10, Order: 3},
	}
	for _, cand := range cases {
		q, violations := ValidateQuestion(cand, Context{SiblingCount: 7})
		require.Nil(t, q)
		assert.True(t, violations.Has(CodeInsufficientOptions))
	}
}

func TestValidateQuestionMCQAnswerMembership(t *testing.T) {
	cand := Candidate{
		Type:          model.QuestionTypeMCQ,
		Text:          "Pick one",
		Options:       []string{"Alpha", "Beta"},
		CorrectAnswer: strPtr("Gamma"),
	}

	q, violations := ValidateQuestion(cand, Context{})
	require.Nil(t, q)
	assert.True(t, violations.Has(CodeInvalidAnswerReference))
}

func TestValidateQuestionMCQAnswerByIndex(t *testing.T) {
	cand := Candidate{
		Type:         model.QuestionTypeMCQ,
		Text:         "Pick one",
		Options:      []string{"Alpha", " Beta "},
		CorrectIndex: intPtr(1),
	}

	q, violations := ValidateQuestion(cand, Context{})
	require.Nil(t, violations)
	require.NotNil(t, q)
	assert.Equal(t, []string{"Alpha", "Beta"}, q.Options)
	require.NotNil(t, q.CorrectAnswer)
	assert.Equal(t, "Beta", *q.CorrectAnswer)
}

func TestValidateQuestionMCQIndexOutOfRange(t *testing.T) {
	cand := Candidate{
		Type:         model.QuestionTypeMCQ,
		Text:         "Pick one",
		Options:      []string{"Alpha", "Beta"},
		CorrectIndex: intPtr(5),
	}

	q, violations := ValidateQuestion(cand, Context{})
	require.Nil(t, q)
	assert.True(t, violations.Has(CodeInvalidAnswerReference))
}

func TestValidateQuestionMCQOptionCap(t *testing.T) {
	cand := Candidate{
		Type:    model.QuestionTypeMCQ,
		Text:    "Pick one",
		Options: []string{"a", "b", "c", "d", "e", "f"},
	}

	// Quiz context caps at 5.
	q, violations := ValidateQuestion(cand, Context{MaxOptions: 5})
	require.Nil(t, q)
	assert.True(t, violations.Has(CodeTooManyOptions))

	// Default (exam) cap is 6, so the same payload passes.
	q, violations = ValidateQuestion(cand, Context{})
	require.Nil(t, violations)
	require.NotNil(t, q)
}

func TestValidateQuestionTrueFalse(t *testing.T) {
	// Scenario: "maybe" is not a valid truth value.
	cand := Candidate{
		Type:          model.QuestionTypeTrueFalse,
		Text:          "Water is wet.",
		CorrectAnswer: strPtr("maybe"),
	}
	q, violations := ValidateQuestion(cand, Context{})
	require.Nil(t, q)
	assert.True(t, violations.Has(CodeInvalidAnswerValue))

	// Case-insensitive acceptance, normalized to lowercase.
	cand.CorrectAnswer = strPtr("TRUE")
	q, violations = ValidateQuestion(cand, Context{})
	require.Nil(t, violations)
	require.NotNil(t, q.CorrectAnswer)
	assert.Equal(t, "true", *q.CorrectAnswer)
	assert.Equal(t, 0, *q.CorrectIndex)

	// Index form: 1 means false.
	cand.CorrectAnswer = nil
	cand.CorrectIndex = intPtr(1)
	q, violations = ValidateQuestion(cand, Context{})
	require.Nil(t, violations)
	assert.Equal(t, "false", *q.CorrectAnswer)

	// No answer at all.
	cand.CorrectIndex = nil
	q, violations = ValidateQuestion(cand, Context{})
	require.Nil(t, q)
	assert.True(t, violations.Has(CodeMissingAnswer))
}

func TestValidateQuestionShortAnswer(t *testing.T) {
	// Scenario: empty keywords are valid and tag the question for
	// manual grading.
	cand := Candidate{
		Type:     model.QuestionTypeShortAnswer,
		Text:     "Explain the water cycle.",
		Keywords: []string{},
	}
	q, violations := ValidateQuestion(cand, Context{AllowShortAnswer: true})
	require.Nil(t, violations)
	assert.True(t, q.NeedsManualGrading)

	cand.Keywords = []string{"evaporation", " condensation "}
	q, violations = ValidateQuestion(cand, Context{AllowShortAnswer: true})
	require.Nil(t, violations)
	assert.False(t, q.NeedsManualGrading)
	assert.Equal(t, []string{"evaporation", "condensation"}, q.Keywords)
}

func TestValidateQuestionShortAnswerQuizScope(t *testing.T) {
	// Quizzes take auto-graded types only: the same payload that an
	// exam accepts is rejected in quiz scope.
	cand := Candidate{
		Type:     model.QuestionTypeShortAnswer,
		Text:     "Explain the water cycle.",
		Keywords: []string{"evaporation"},
	}

	q, violations := ValidateQuestion(cand, Context{MaxOptions: 5})
	require.Nil(t, q)
	assert.True(t, violations.Has(CodeUnsupportedQuestionType))

	q, violations = ValidateQuestion(cand, Context{MaxOptions: 6, AllowShortAnswer: true})
	require.Nil(t, violations)
	require.NotNil(t, q)
}

func TestValidateQuestionImmutableExam(t *testing.T) {
	// A fully valid payload is still rejected when the exam has
	// submissions, and the immutability violation is the only one
	// reported.
	cand := Candidate{
		Type:          model.QuestionTypeMCQ,
		Text:          "Pick one",
		Options:       []string{"Alpha", "Beta"},
		CorrectAnswer: strPtr("Alpha"),
	}

	q, violations := ValidateQuestion(cand, Context{SubmissionCount: 3})
	require.Nil(t, q)
	require.Len(t, violations, 1)
	assert.Equal(t, CodeImmutableExam, violations[0].Code)

	// Even an invalid payload reports only the gate.
	cand.Options = nil
	cand.Text = ""
	_, violations = ValidateQuestion(cand, Context{SubmissionCount: 1})
	require.Len(t, violations, 1)
	assert.Equal(t, CodeImmutableExam, violations[0].Code)
}

func TestValidateQuestionAggregatesViolations(t *testing.T) {
	// One pass must surface every failure, not just the first.
	cand := Candidate{
		Type:          model.QuestionTypeMCQ,
		Text:          "   ",
		Points:        -5,
		Order:         -1,
		Options:       []string{"only one"},
		CorrectAnswer: strPtr("missing"),
	}

	q, violations := ValidateQuestion(cand, Context{})
	require.Nil(t, q)
	assert.True(t, violations.Has(CodeInsufficientOptions))
	assert.True(t, violations.Has(CodeInvalidAnswerReference))
	assert.True(t, violations.Has(CodeMissingQuestionText))
	assert.True(t, violations.Has(CodeInvalidPoints))
	assert.True(t, violations.Has(CodeInvalidOrder))

	fields := violations.Fields()
	assert.Contains(t, fields, "options")
	assert.Contains(t, fields, "question_text")
	assert.Contains(t, fields, "points")
}

func TestValidateQuestionDefaults(t *testing.T) {
	cand := Candidate{
		Type:          model.QuestionTypeTrueFalse,
		Text:          "Defaults apply",
		CorrectAnswer: strPtr("false"),
	}

	q, violations := ValidateQuestion(cand, Context{SiblingCount: 4})
	require.Nil(t, violations)
	assert.Equal(t, 1, q.Points)
	assert.Equal(t, 5, q.OrderNum)
}

func TestValidateQuestionUnknownType(t *testing.T) {
	q, violations := ValidateQuestion(Candidate{Type: "essay", Text: "?"}, Context{})
	require.Nil(t, q)
	assert.True(t, violations.Has(CodeUnsupportedQuestionType))
}
