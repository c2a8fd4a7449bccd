package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beaconhq/beacon-backend/internal/content"
	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/response"
	"github.com/beaconhq/beacon-backend/internal/service"
	"github.com/beaconhq/beacon-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuestionHandler handles question management for both quiz and exam
// scopes. All rule violations from the validation engine surface in a
// single response.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// AddToQuiz godoc
// POST /api/v1/admin/quizzes/:id/questions
func (h *QuestionHandler) AddToQuiz(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.AddQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	question, violations, err := h.questionService.AddToQuiz(c.Request.Context(), quizID, &req)
	if err != nil {
		failLookup(c, err)
		return
	}
	if len(violations) > 0 {
		failViolations(c, violations)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"question": question})
}

// AddToExam godoc
// POST /api/v1/admin/exams/:id/questions
func (h *QuestionHandler) AddToExam(c *gin.Context) {
	examID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.AddQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	question, violations, err := h.questionService.AddToExam(c.Request.Context(), examID, &req)
	if err != nil {
		failLookup(c, err)
		return
	}
	if len(violations) > 0 {
		failViolations(c, violations)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"question": question})
}

// Update godoc
// PUT /api/v1/admin/questions/:id
// Revalidates and replaces the question content in place.
func (h *QuestionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.AddQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	question, violations, err := h.questionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failLookup(c, err)
		return
	}
	if len(violations) > 0 {
		failViolations(c, violations)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"question": question})
}

// RemoveOption godoc
// DELETE /api/v1/admin/questions/:id/options/:index
// Drops one MCQ option and repoints the stored answer index.
func (h *QuestionHandler) RemoveOption(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	question, violations, err := h.questionService.RemoveOption(c.Request.Context(), id, index)
	if err != nil {
		failLookup(c, err)
		return
	}
	if len(violations) > 0 {
		failViolations(c, violations)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"question": question})
}

// Reorder godoc
// POST /api/v1/admin/questions/:id/reorder
// Moves the question within its quiz or exam and renumbers the set.
func (h *QuestionHandler) Reorder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.ReorderRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	question, err := h.questionService.GetByID(c.Request.Context(), id)
	if err != nil {
		failLookup(c, err)
		return
	}

	questions, err := h.questionService.Reorder(c.Request.Context(), question, &req)
	if err != nil {
		if errors.Is(err, content.ErrUnknownSibling) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failExamMutation(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// Delete godoc
// DELETE /api/v1/admin/questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), id); err != nil {
		failExamMutation(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "question deleted"})
}
