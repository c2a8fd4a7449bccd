package assessment

import "github.com/beaconhq/beacon-backend/internal/model"

// TotalPoints sums the point values of a question list.
func TotalPoints(questions []model.Question) int {
	total := 0
	for _, q := range questions {
		total += q.Points
	}
	return total
}

// TotalQuestions counts a question list.
func TotalQuestions(questions []model.Question) int {
	return len(questions)
}

// RepointAnswerIndex recomputes an MCQ correct-answer index after the
// option at removedIdx is deleted. An index that referenced the
// removed option re-points to 0 rather than dangling; indexes past the
// removed slot shift down by one.
func RepointAnswerIndex(currentIdx, removedIdx int) int {
	switch {
	case currentIdx == removedIdx:
		return 0
	case currentIdx > removedIdx:
		return currentIdx - 1
	default:
		return currentIdx
	}
}
