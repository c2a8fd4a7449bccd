package service

import (
	"context"
	"errors"

	"github.com/beaconhq/beacon-backend/internal/assessment"
	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Domain errors.
var (
	// ErrExamImmutable rejects any mutation of an exam that already has
	// submissions. The freeze covers the exam row and its questions.
	ErrExamImmutable = errors.New("exam has submissions and is immutable")
)

// ExamService handles exam business logic. submission_count is owned
// by the grading pipeline; here it only gates mutations.
type ExamService struct {
	examRepo     *repository.ExamRepository
	questionRepo *repository.QuestionRepository
	courses      *CourseService
	log          zerolog.Logger
}

// NewExamService creates a new ExamService.
func NewExamService(
	examRepo *repository.ExamRepository,
	questionRepo *repository.QuestionRepository,
	courses *CourseService,
	log zerolog.Logger,
) *ExamService {
	return &ExamService{
		examRepo:     examRepo,
		questionRepo: questionRepo,
		courses:      courses,
		log:          log.With().Str("component", "exam_service").Logger(),
	}
}

// GetByID retrieves an exam by its UUID.
func (s *ExamService) GetByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	return s.examRepo.GetByID(ctx, id)
}

// ListByCourse retrieves a course's exams.
func (s *ExamService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Exam, error) {
	exams, err := s.examRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if exams == nil {
		exams = []model.Exam{}
	}
	return exams, nil
}

// Detail retrieves an exam with its ordered questions and derived
// aggregates.
func (s *ExamService) Detail(ctx context.Context, id uuid.UUID) (*model.ExamDetail, error) {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByExam(ctx, id)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []model.Question{}
	}

	return &model.ExamDetail{
		Exam:           *exam,
		Questions:      questions,
		TotalPoints:    assessment.TotalPoints(questions),
		TotalQuestions: assessment.TotalQuestions(questions),
	}, nil
}

// Create inserts a new exam under a course.
func (s *ExamService) Create(ctx context.Context, courseID uuid.UUID, req *model.CreateExamRequest) (*model.Exam, error) {
	exam := &model.Exam{
		CourseID:        courseID,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		PassingScore:    req.PassingScore,
	}
	if err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, err
	}

	s.courses.InvalidateTree(ctx, courseID)
	s.log.Info().Str("exam_id", exam.ID.String()).Msg("Exam created")
	return exam, nil
}

// Update applies a partial update. Rejected with ErrExamImmutable once
// the exam has any submissions.
func (s *ExamService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateExamRequest) (*model.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exam.SubmissionCount > 0 {
		return nil, ErrExamImmutable
	}

	if req.Title != "" {
		exam.Title = req.Title
	}
	if req.DurationMinutes != 0 {
		exam.DurationMinutes = req.DurationMinutes
	}
	if req.PassingScore != nil {
		exam.PassingScore = *req.PassingScore
	}
	if req.IsPublished != nil {
		exam.IsPublished = *req.IsPublished
	}

	if err := s.examRepo.Update(ctx, exam); err != nil {
		return nil, err
	}

	s.courses.InvalidateTree(ctx, exam.CourseID)
	return exam, nil
}

// Delete removes an exam and its questions. Rejected with
// ErrExamImmutable once the exam has any submissions.
func (s *ExamService) Delete(ctx context.Context, id uuid.UUID) error {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if exam.SubmissionCount > 0 {
		return ErrExamImmutable
	}

	if err := s.examRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.courses.InvalidateTree(ctx, exam.CourseID)
	s.log.Info().Str("exam_id", id.String()).Msg("Exam deleted")
	return nil
}
