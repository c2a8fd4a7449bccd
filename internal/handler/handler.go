package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beaconhq/beacon-backend/internal/assessment"
	"github.com/beaconhq/beacon-backend/internal/response"
	"github.com/beaconhq/beacon-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// failLookup maps a repository read error to 404 or 500.
func failLookup(c *gin.Context, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// failViolations renders an aggregated violation list. The immutable
// exam case is a conflict; everything else is an unprocessable payload
// carrying every field error at once.
func failViolations(c *gin.Context, violations assessment.Violations) {
	if violations.Has(assessment.CodeImmutableExam) {
		response.FailWithFields(c, http.StatusConflict, response.ErrImmutableExam, violations.Fields())
		return
	}

	code := response.ErrValidation
	if len(violations) == 1 {
		code = violationErrCode(violations[0].Code)
	}
	response.FailWithFields(c, http.StatusUnprocessableEntity, code, violations.Fields())
}

func violationErrCode(code assessment.Code) response.ErrCode {
	switch code {
	case assessment.CodeInsufficientOptions:
		return response.ErrInsufficientOptions
	case assessment.CodeTooManyOptions:
		return response.ErrTooManyOptions
	case assessment.CodeInvalidAnswerReference:
		return response.ErrInvalidAnswerReference
	case assessment.CodeMissingAnswer:
		return response.ErrMissingAnswer
	case assessment.CodeInvalidAnswerValue:
		return response.ErrInvalidAnswerValue
	case assessment.CodeUnsupportedQuestionType:
		return response.ErrUnknownQuestionType
	default:
		return response.ErrValidation
	}
}

// failExamMutation maps exam mutation errors: the submission freeze is
// a conflict, a missing row is 404.
func failExamMutation(c *gin.Context, err error) {
	if errors.Is(err, service.ErrExamImmutable) {
		response.Fail(c, http.StatusConflict, response.ErrImmutableExam)
		return
	}
	failLookup(c, err)
}

// pageParams reads ?page and ?per_page with defaults.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	return page, perPage
}

// orderWarning is the warnings entry attached to accepted ordinal
// collisions.
func orderWarning() map[string]string {
	return map[string]string{
		"order_num": "position collides with an existing sibling; both were kept",
	}
}
