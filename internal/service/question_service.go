package service

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/assessment"
	"github.com/beaconhq/beacon-backend/internal/content"
	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Option caps per scope. Quiz questions render in a compact widget, so
// they carry a tighter cap than exams.
const (
	quizMaxOptions = 5
	examMaxOptions = 6
)

// QuestionService handles question business logic for both quiz and
// exam scopes. Every write runs through the validation engine, which
// reports all rule violations at once; a candidate with any violation
// is rejected without touching the database.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
	quizRepo     *repository.QuizRepository
	examRepo     *repository.ExamRepository
	moduleRepo   *repository.ModuleRepository
	courses      *CourseService
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(
	questionRepo *repository.QuestionRepository,
	quizRepo *repository.QuizRepository,
	examRepo *repository.ExamRepository,
	moduleRepo *repository.ModuleRepository,
	courses *CourseService,
	log zerolog.Logger,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		quizRepo:     quizRepo,
		examRepo:     examRepo,
		moduleRepo:   moduleRepo,
		courses:      courses,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// GetByID retrieves a question by its UUID.
func (s *QuestionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// AddToQuiz validates and stores a new quiz question.
func (s *QuestionService) AddToQuiz(ctx context.Context, quizID uuid.UUID, req *model.AddQuestionRequest) (*model.Question, assessment.Violations, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, nil, err
	}

	siblings, err := s.questionRepo.ListByQuiz(ctx, quizID)
	if err != nil {
		return nil, nil, err
	}

	question, violations := assessment.ValidateQuestion(candidateOf(req), assessment.Context{
		SiblingCount: len(siblings),
		MaxOptions:   quizMaxOptions,
	})
	if len(violations) > 0 {
		return nil, violations, nil
	}

	question.QuizID = &quizID
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, nil, err
	}

	s.invalidateQuiz(ctx, quiz)
	s.log.Info().Str("question_id", question.ID.String()).Str("quiz_id", quizID.String()).Msg("Quiz question added")
	return question, nil, nil
}

// AddToExam validates and stores a new exam question. An exam with
// submissions rejects the write with a single immutability violation.
func (s *QuestionService) AddToExam(ctx context.Context, examID uuid.UUID, req *model.AddQuestionRequest) (*model.Question, assessment.Violations, error) {
	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, nil, err
	}

	siblings, err := s.questionRepo.ListByExam(ctx, examID)
	if err != nil {
		return nil, nil, err
	}

	question, violations := assessment.ValidateQuestion(candidateOf(req), assessment.Context{
		SiblingCount:     len(siblings),
		SubmissionCount:  exam.SubmissionCount,
		MaxOptions:       examMaxOptions,
		AllowShortAnswer: true,
	})
	if len(violations) > 0 {
		return nil, violations, nil
	}

	question.ExamID = &examID
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, nil, err
	}

	s.courses.InvalidateTree(ctx, exam.CourseID)
	s.log.Info().Str("question_id", question.ID.String()).Str("exam_id", examID.String()).Msg("Exam question added")
	return question, nil, nil
}

// Update revalidates and replaces a question's content in place. The
// scope (quiz or exam) never changes; a frozen exam rejects the write.
func (s *QuestionService) Update(ctx context.Context, id uuid.UUID, req *model.AddQuestionRequest) (*model.Question, assessment.Violations, error) {
	existing, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	vctx, err := s.contextFor(ctx, existing)
	if err != nil {
		return nil, nil, err
	}

	question, violations := assessment.ValidateQuestion(candidateOf(req), vctx)
	if len(violations) > 0 {
		return nil, violations, nil
	}

	question.ID = existing.ID
	question.QuizID = existing.QuizID
	question.ExamID = existing.ExamID
	if req.OrderNum == 0 {
		// Keep the slot on content-only edits.
		question.OrderNum = existing.OrderNum
	}

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, nil, err
	}

	s.invalidateScope(ctx, question)
	return question, nil, nil
}

// RemoveOption drops one MCQ option by index and repoints the stored
// answer index the way graders expect: deleting the answered option
// resets the answer to the first survivor.
func (s *QuestionService) RemoveOption(ctx context.Context, id uuid.UUID, optionIndex int) (*model.Question, assessment.Violations, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	vctx, err := s.contextFor(ctx, question)
	if err != nil {
		return nil, nil, err
	}
	if vctx.SubmissionCount > 0 {
		_, violations := assessment.ValidateQuestion(assessment.Candidate{}, vctx)
		return nil, violations, nil
	}

	if question.QuestionType != model.QuestionTypeMCQ ||
		optionIndex < 0 || optionIndex >= len(question.Options) {
		return nil, assessment.Violations{{
			Code:    assessment.CodeInvalidAnswerReference,
			Field:   "options",
			Message: "option index out of range",
		}}, nil
	}

	remaining := make([]string, 0, len(question.Options)-1)
	remaining = append(remaining, question.Options[:optionIndex]...)
	remaining = append(remaining, question.Options[optionIndex+1:]...)

	if len(remaining) < 2 {
		return nil, assessment.Violations{{
			Code:    assessment.CodeInsufficientOptions,
			Field:   "options",
			Message: "removing this option would leave fewer than 2 options",
		}}, nil
	}

	question.Options = remaining
	if question.CorrectIndex != nil {
		idx := assessment.RepointAnswerIndex(*question.CorrectIndex, optionIndex)
		question.CorrectIndex = &idx
		answer := remaining[idx]
		question.CorrectAnswer = &answer
	}

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, nil, err
	}

	s.invalidateScope(ctx, question)
	return question, nil, nil
}

// Reorder moves one question within its quiz or exam and renumbers the
// set contiguously. Exam questions honor the submission freeze: a
// frozen exam's ordering is part of what students answered against.
func (s *QuestionService) Reorder(ctx context.Context, question *model.Question, req *model.ReorderRequest) ([]model.Question, error) {
	if question.ExamID != nil {
		exam, err := s.examRepo.GetByID(ctx, *question.ExamID)
		if err != nil {
			return nil, err
		}
		if exam.SubmissionCount > 0 {
			return nil, ErrExamImmutable
		}
	}

	siblings, err := s.siblingsOf(ctx, question)
	if err != nil {
		return nil, err
	}

	sibs := make([]content.Sibling, len(siblings))
	for i, q := range siblings {
		sibs[i] = content.Sibling{ID: q.ID, OrderNum: q.OrderNum}
	}

	reordered, err := content.Reorder(sibs, req.MovedID, req.NewPosition)
	if err != nil {
		return nil, err
	}

	positions := make(map[uuid.UUID]int, len(reordered))
	for _, sib := range reordered {
		positions[sib.ID] = sib.OrderNum
	}
	if err := s.questionRepo.UpdatePositions(ctx, positions); err != nil {
		return nil, err
	}

	s.invalidateScope(ctx, question)
	return s.siblingsOf(ctx, question)
}

// Delete removes a question and closes the ordering gap among the
// survivors. Exam questions honor the submission freeze.
func (s *QuestionService) Delete(ctx context.Context, id uuid.UUID) error {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if question.ExamID != nil {
		exam, err := s.examRepo.GetByID(ctx, *question.ExamID)
		if err != nil {
			return err
		}
		if exam.SubmissionCount > 0 {
			return ErrExamImmutable
		}
	}

	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return err
	}

	survivors, err := s.siblingsOf(ctx, question)
	if err != nil {
		return err
	}
	sibs := make([]content.Sibling, len(survivors))
	for i, q := range survivors {
		sibs[i] = content.Sibling{ID: q.ID, OrderNum: q.OrderNum}
	}
	renumbered := content.Renumber(sibs)
	if len(renumbered) > 0 {
		positions := make(map[uuid.UUID]int, len(renumbered))
		for _, sib := range renumbered {
			positions[sib.ID] = sib.OrderNum
		}
		if err := s.questionRepo.UpdatePositions(ctx, positions); err != nil {
			return err
		}
	}

	s.invalidateScope(ctx, question)
	s.log.Info().Str("question_id", id.String()).Msg("Question deleted")
	return nil
}

func (s *QuestionService) contextFor(ctx context.Context, question *model.Question) (assessment.Context, error) {
	switch {
	case question.ExamID != nil:
		exam, err := s.examRepo.GetByID(ctx, *question.ExamID)
		if err != nil {
			return assessment.Context{}, err
		}
		siblings, err := s.questionRepo.ListByExam(ctx, *question.ExamID)
		if err != nil {
			return assessment.Context{}, err
		}
		return assessment.Context{
			SiblingCount:     len(siblings),
			SubmissionCount:  exam.SubmissionCount,
			MaxOptions:       examMaxOptions,
			AllowShortAnswer: true,
		}, nil

	default:
		siblings, err := s.questionRepo.ListByQuiz(ctx, *question.QuizID)
		if err != nil {
			return assessment.Context{}, err
		}
		return assessment.Context{
			SiblingCount: len(siblings),
			MaxOptions:   quizMaxOptions,
		}, nil
	}
}

func (s *QuestionService) siblingsOf(ctx context.Context, question *model.Question) ([]model.Question, error) {
	if question.ExamID != nil {
		return s.questionRepo.ListByExam(ctx, *question.ExamID)
	}
	return s.questionRepo.ListByQuiz(ctx, *question.QuizID)
}

func (s *QuestionService) invalidateScope(ctx context.Context, question *model.Question) {
	switch {
	case question.ExamID != nil:
		if exam, err := s.examRepo.GetByID(ctx, *question.ExamID); err == nil {
			s.courses.InvalidateTree(ctx, exam.CourseID)
		}
	case question.QuizID != nil:
		if quiz, err := s.quizRepo.GetByID(ctx, *question.QuizID); err == nil {
			if module, err := s.moduleRepo.GetByID(ctx, quiz.ModuleID); err == nil {
				s.courses.InvalidateTree(ctx, module.CourseID)
			}
		}
	}
}

func (s *QuestionService) invalidateQuiz(ctx context.Context, quiz *model.Quiz) {
	if module, err := s.moduleRepo.GetByID(ctx, quiz.ModuleID); err == nil {
		s.courses.InvalidateTree(ctx, module.CourseID)
	}
}

func candidateOf(req *model.AddQuestionRequest) assessment.Candidate {
	return assessment.Candidate{
		Type:          model.QuestionType(req.QuestionType),
		Text:          req.QuestionText,
		Points:        req.Points,
		Order:         req.OrderNum,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		CorrectIndex:  req.CorrectIndex,
		Keywords:      req.Keywords,
	}
}
