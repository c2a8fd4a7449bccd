package assessment

import (
	"testing"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTotals(t *testing.T) {
	questions := []model.Question{
		{Points: 2},
		{Points: 3},
		{Points: 5},
	}
	assert.Equal(t, 10, TotalPoints(questions))
	assert.Equal(t, 3, TotalQuestions(questions))

	assert.Equal(t, 0, TotalPoints(nil))
	assert.Equal(t, 0, TotalQuestions(nil))
}

func TestRepointAnswerIndex(t *testing.T) {
	// Removing the selected option re-points to 0.
	assert.Equal(t, 0, RepointAnswerIndex(2, 2))
	// Options past the removed slot shift down.
	assert.Equal(t, 2, RepointAnswerIndex(3, 1))
	// Options before the removed slot are untouched.
	assert.Equal(t, 1, RepointAnswerIndex(1, 3))
}
