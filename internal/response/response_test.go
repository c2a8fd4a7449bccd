package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMessageKnownCodes(t *testing.T) {
	assert.Equal(t,
		"This exam already has submissions and can no longer be modified.",
		GetMessage(ErrImmutableExam))
	assert.Equal(t,
		"This module already has a quiz attached.",
		GetMessage(ErrDuplicateQuiz))
	assert.Equal(t,
		"The correct answer does not match any of the options.",
		GetMessage(ErrInvalidAnswerReference))
}

func TestGetMessageUnknownCode(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred.", GetMessage(ErrCode("NO_SUCH_CODE")))
}
