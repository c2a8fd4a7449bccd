package service

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/content"
	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ModuleService handles module business logic. Module positions are
// locked after creation; the only way to move one is the reorder
// operation, which renumbers the whole sibling set.
type ModuleService struct {
	moduleRepo *repository.ModuleRepository
	courses    *CourseService
	log        zerolog.Logger
}

// NewModuleService creates a new ModuleService.
func NewModuleService(moduleRepo *repository.ModuleRepository, courses *CourseService, log zerolog.Logger) *ModuleService {
	return &ModuleService{
		moduleRepo: moduleRepo,
		courses:    courses,
		log:        log.With().Str("component", "module_service").Logger(),
	}
}

// GetByID retrieves a module by its UUID.
func (s *ModuleService) GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	return s.moduleRepo.GetByID(ctx, id)
}

// ListByCourse retrieves a course's modules in position order.
func (s *ModuleService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Module, error) {
	modules, err := s.moduleRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if modules == nil {
		modules = []model.Module{}
	}
	return modules, nil
}

// Create inserts a module under a course. An omitted order gets the
// next free position; a supplied order that collides with a sibling is
// accepted and reported as a warning.
func (s *ModuleService) Create(ctx context.Context, courseID uuid.UUID, req *model.CreateModuleRequest) (*model.Module, bool, error) {
	siblings, err := s.siblings(ctx, courseID)
	if err != nil {
		return nil, false, err
	}

	order := req.OrderNum
	collision := false
	if order == 0 {
		order = content.NextOrder(siblings)
	} else {
		collision = content.OrderCollision(siblings, order, uuid.Nil)
	}

	module := &model.Module{
		CourseID: courseID,
		Title:    req.Title,
		OrderNum: order,
	}
	if err := s.moduleRepo.Create(ctx, module); err != nil {
		return nil, false, err
	}

	s.courses.InvalidateTree(ctx, courseID)
	s.log.Info().Str("module_id", module.ID.String()).Int("order", order).Msg("Module created")
	return module, collision, nil
}

// Update renames a module. The position is deliberately untouchable
// here.
func (s *ModuleService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateModuleRequest) (*model.Module, error) {
	module, err := s.moduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.moduleRepo.UpdateTitle(ctx, id, req.Title); err != nil {
		return nil, err
	}
	module.Title = req.Title

	s.courses.InvalidateTree(ctx, module.CourseID)
	return module, nil
}

// Reorder moves one module to a new position and renumbers the whole
// sibling set contiguously.
func (s *ModuleService) Reorder(ctx context.Context, courseID uuid.UUID, req *model.ReorderRequest) ([]model.Module, error) {
	siblings, err := s.siblings(ctx, courseID)
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
	if err := s.moduleRepo.UpdatePositions(ctx, positions); err != nil {
		return nil, err
	}

	s.courses.InvalidateTree(ctx, courseID)
	return s.ListByCourse(ctx, courseID)
}

// Delete removes a module and its lessons, quiz, and quiz questions,
// then closes the gap in the remaining siblings.
func (s *ModuleService) Delete(ctx context.Context, id uuid.UUID) error {
	module, err := s.moduleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.moduleRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.renumber(ctx, module.CourseID); err != nil {
		return err
	}

	s.courses.InvalidateTree(ctx, module.CourseID)
	s.log.Info().Str("module_id", id.String()).Msg("Module deleted")
	return nil
}

func (s *ModuleService) renumber(ctx context.Context, courseID uuid.UUID) error {
	siblings, err := s.siblings(ctx, courseID)
	if err != nil {
		return err
	}
	renumbered := content.Renumber(siblings)
	if len(renumbered) == 0 {
		return nil
	}

	positions := make(map[uuid.UUID]int, len(renumbered))
	for _, sib := range renumbered {
		positions[sib.ID] = sib.OrderNum
	}
	return s.moduleRepo.UpdatePositions(ctx, positions)
}

func (s *ModuleService) siblings(ctx context.Context, courseID uuid.UUID) ([]content.Sibling, error) {
	modules, err := s.moduleRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	siblings := make([]content.Sibling, len(modules))
	for i, m := range modules {
		siblings[i] = content.Sibling{ID: m.ID, OrderNum: m.OrderNum}
	}
	return siblings, nil
}
