package service

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/content"
	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/repository"
	"github.com/beaconhq/beacon-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LessonService handles lesson business logic for both shapes: lessons
// under a module and the legacy flat lessons attached directly to a
// course. Order collisions are accepted and reported as warnings, and
// deletions close the gap in the surviving siblings.
type LessonService struct {
	lessonRepo *repository.LessonRepository
	moduleRepo *repository.ModuleRepository
	courses    *CourseService
	media      *storage.MediaStore
	log        zerolog.Logger
}

// NewLessonService creates a new LessonService.
func NewLessonService(
	lessonRepo *repository.LessonRepository,
	moduleRepo *repository.ModuleRepository,
	courses *CourseService,
	media *storage.MediaStore,
	log zerolog.Logger,
) *LessonService {
	return &LessonService{
		lessonRepo: lessonRepo,
		moduleRepo: moduleRepo,
		courses:    courses,
		media:      media,
		log:        log.With().Str("component", "lesson_service").Logger(),
	}
}

// GetByID retrieves a lesson by its UUID.
func (s *LessonService) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	return s.lessonRepo.GetByID(ctx, id)
}

// ListByModule retrieves a module's lessons in position order.
func (s *LessonService) ListByModule(ctx context.Context, moduleID uuid.UUID) ([]model.Lesson, error) {
	lessons, err := s.lessonRepo.ListByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []model.Lesson{}
	}
	return lessons, nil
}

// CreateUnderModule inserts a lesson into a module. The returned bool
// reports an accepted order collision.
func (s *LessonService) CreateUnderModule(ctx context.Context, moduleID uuid.UUID, req *model.CreateLessonRequest) (*model.Lesson, bool, error) {
	module, err := s.moduleRepo.GetByID(ctx, moduleID)
	if err != nil {
		return nil, false, err
	}

	lesson := &model.Lesson{
		ModuleID:        &moduleID,
		Title:           req.Title,
		Content:         req.Content,
		DurationMinutes: req.DurationMinutes,
		OrderNum:        req.OrderNum,
		VideoKey:        req.VideoKey,
	}

	collision, err := s.create(ctx, lesson, func() ([]content.Sibling, error) {
		return s.moduleSiblings(ctx, moduleID)
	})
	if err != nil {
		return nil, false, err
	}

	s.courses.InvalidateTree(ctx, module.CourseID)
	return lesson, collision, nil
}

// CreateFlat inserts a legacy module-less lesson directly under a
// course. Kept for content that predates modules.
func (s *LessonService) CreateFlat(ctx context.Context, courseID uuid.UUID, req *model.CreateLessonRequest) (*model.Lesson, bool, error) {
	lesson := &model.Lesson{
		CourseID:        &courseID,
		Title:           req.Title,
		Content:         req.Content,
		DurationMinutes: req.DurationMinutes,
		OrderNum:        req.OrderNum,
		VideoKey:        req.VideoKey,
	}

	collision, err := s.create(ctx, lesson, func() ([]content.Sibling, error) {
		return s.flatSiblings(ctx, courseID)
	})
	if err != nil {
		return nil, false, err
	}

	s.courses.InvalidateTree(ctx, courseID)
	return lesson, collision, nil
}

func (s *LessonService) create(ctx context.Context, lesson *model.Lesson, loadSiblings func() ([]content.Sibling, error)) (bool, error) {
	siblings, err := loadSiblings()
	if err != nil {
		return false, err
	}

	collision := false
	if lesson.OrderNum == 0 {
		lesson.OrderNum = content.NextOrder(siblings)
	} else {
		collision = content.OrderCollision(siblings, lesson.OrderNum, uuid.Nil)
	}

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return false, err
	}

	s.log.Info().
		Str("lesson_id", lesson.ID.String()).
		Int("order", lesson.OrderNum).
		Bool("order_collision", collision).
		Msg("Lesson created")
	return collision, nil
}

// Update applies a partial update. A changed order that lands on a
// sibling is accepted and reported as a warning.
func (s *LessonService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateLessonRequest) (*model.Lesson, bool, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if req.Title != "" {
		lesson.Title = req.Title
	}
	if req.Content != nil {
		lesson.Content = *req.Content
	}
	if req.DurationMinutes != nil {
		lesson.DurationMinutes = *req.DurationMinutes
	}
	if req.VideoKey != nil {
		lesson.VideoKey = req.VideoKey
	}

	collision := false
	if req.OrderNum != 0 && req.OrderNum != lesson.OrderNum {
		siblings, err := s.siblingsOf(ctx, lesson)
		if err != nil {
			return nil, false, err
		}
		collision = content.OrderCollision(siblings, req.OrderNum, lesson.ID)
		lesson.OrderNum = req.OrderNum
	}

	if err := s.lessonRepo.Update(ctx, lesson); err != nil {
		return nil, false, err
	}

	s.invalidateFor(ctx, lesson)
	return lesson, collision, nil
}

// Reorder moves one lesson within a module and renumbers the set.
func (s *LessonService) Reorder(ctx context.Context, moduleID uuid.UUID, req *model.ReorderRequest) ([]model.Lesson, error) {
	siblings, err := s.moduleSiblings(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	reordered, err := content.Reorder(siblings, req.MovedID, req.NewPosition)
	if err != nil {
		return nil, err
	}

	positions := make(map[uuid.UUID]int, len(reordered))
	for _, sib := range reordered {
		positions[sib.ID] = sib.OrderNum
	}
	if err := s.lessonRepo.UpdatePositions(ctx, positions); err != nil {
		return nil, err
	}

	if module, err := s.moduleRepo.GetByID(ctx, moduleID); err == nil {
		s.courses.InvalidateTree(ctx, module.CourseID)
	}
	return s.ListByModule(ctx, moduleID)
}

// Delete removes a lesson, its stored video, and closes the ordering
// gap among the surviving siblings.
func (s *LessonService) Delete(ctx context.Context, id uuid.UUID) error {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.lessonRepo.Delete(ctx, id); err != nil {
		return err
	}

	if lesson.VideoKey != nil {
		if err := s.media.Delete(ctx, *lesson.VideoKey); err != nil {
			s.log.Warn().Err(err).Str("lesson_id", id.String()).Msg("Lesson video delete failed")
		}
	}

	siblings, err := s.siblingsOf(ctx, lesson)
	if err != nil {
		return err
	}
	renumbered := content.Renumber(siblings)
	if len(renumbered) > 0 {
		positions := make(map[uuid.UUID]int, len(renumbered))
		for _, sib := range renumbered {
			positions[sib.ID] = sib.OrderNum
		}
		if err := s.lessonRepo.UpdatePositions(ctx, positions); err != nil {
			return err
		}
	}

	s.invalidateFor(ctx, lesson)
	s.log.Info().Str("lesson_id", id.String()).Msg("Lesson deleted")
	return nil
}

func (s *LessonService) siblingsOf(ctx context.Context, lesson *model.Lesson) ([]content.Sibling, error) {
	if lesson.ModuleID != nil {
		return s.moduleSiblings(ctx, *lesson.ModuleID)
	}
	if lesson.CourseID != nil {
		return s.flatSiblings(ctx, *lesson.CourseID)
	}
	return nil, nil
}

func (s *LessonService) moduleSiblings(ctx context.Context, moduleID uuid.UUID) ([]content.Sibling, error) {
	lessons, err := s.lessonRepo.ListByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	return lessonSiblings(lessons), nil
}

func (s *LessonService) flatSiblings(ctx context.Context, courseID uuid.UUID) ([]content.Sibling, error) {
	lessons, err := s.lessonRepo.ListFlatByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return lessonSiblings(lessons), nil
}

func lessonSiblings(lessons []model.Lesson) []content.Sibling {
	siblings := make([]content.Sibling, len(lessons))
	for i, l := range lessons {
		siblings[i] = content.Sibling{ID: l.ID, OrderNum: l.OrderNum}
	}
	return siblings
}

func (s *LessonService) invalidateFor(ctx context.Context, lesson *model.Lesson) {
	if lesson.CourseID != nil {
		s.courses.InvalidateTree(ctx, *lesson.CourseID)
		return
	}
	if lesson.ModuleID != nil {
		if module, err := s.moduleRepo.GetByID(ctx, *lesson.ModuleID); err == nil {
			s.courses.InvalidateTree(ctx, module.CourseID)
		}
	}
}
