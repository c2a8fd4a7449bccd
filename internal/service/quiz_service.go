package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beaconhq/beacon-backend/internal/content"
	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// QuizService handles quiz business logic. A module holds at most one
// quiz; attaching a second is a domain error, not a constraint
// violation.
type QuizService struct {
	quizRepo     *repository.QuizRepository
	moduleRepo   *repository.ModuleRepository
	questionRepo *repository.QuestionRepository
	courses      *CourseService
	log          zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	quizRepo *repository.QuizRepository,
	moduleRepo *repository.ModuleRepository,
	questionRepo *repository.QuestionRepository,
	courses *CourseService,
	log zerolog.Logger,
) *QuizService {
	return &QuizService{
		quizRepo:     quizRepo,
		moduleRepo:   moduleRepo,
		questionRepo: questionRepo,
		courses:      courses,
		log:          log.With().Str("component", "quiz_service").Logger(),
	}
}

// GetByID retrieves a quiz by its UUID.
func (s *QuizService) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	return s.quizRepo.GetByID(ctx, id)
}

// GetWithQuestions retrieves a quiz expanded with its ordered questions.
func (s *QuizService) GetWithQuestions(ctx context.Context, id uuid.UUID) (*model.QuizWithQuestions, error) {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListByQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []model.Question{}
	}
	return &model.QuizWithQuestions{Quiz: *quiz, Questions: questions}, nil
}

// CreateForModule attaches a quiz to a module. Returns
// content.ErrDuplicateQuiz if the module already has one.
func (s *QuizService) CreateForModule(ctx context.Context, moduleID uuid.UUID, req *model.CreateQuizRequest) (*model.Quiz, error) {
	module, err := s.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	if _, err := content.AttachQuiz(module.QuizID, uuid.Nil); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		ModuleID:     moduleID,
		PassingScore: req.PassingScore,
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	s.courses.InvalidateTree(ctx, module.CourseID)
	s.log.Info().Str("quiz_id", quiz.ID.String()).Str("module_id", moduleID.String()).Msg("Quiz attached")
	return quiz, nil
}

// Update changes the quiz passing score.
func (s *QuizService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateQuizRequest) (*model.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	quiz.PassingScore = req.PassingScore
	if err := s.quizRepo.Update(ctx, quiz); err != nil {
		return nil, err
	}

	s.invalidateFor(ctx, quiz)
	return quiz, nil
}

// Delete removes a quiz and all of its questions.
func (s *QuizService) Delete(ctx context.Context, id uuid.UUID) error {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.quizRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateFor(ctx, quiz)
	s.log.Info().Str("quiz_id", id.String()).Msg("Quiz deleted")
	return nil
}

// IsDuplicateQuizErr reports whether err is the one-quiz-per-module
// rejection.
func IsDuplicateQuizErr(err error) bool {
	return errors.Is(err, content.ErrDuplicateQuiz)
}

// IsNotFoundErr reports whether err is a missing-row error from the
// repository layer.
func IsNotFoundErr(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func (s *QuizService) invalidateFor(ctx context.Context, quiz *model.Quiz) {
	if module, err := s.moduleRepo.GetByID(ctx, quiz.ModuleID); err == nil {
		s.courses.InvalidateTree(ctx, module.CourseID)
	}
}
