package service

import (
	"context"

	"github.com/beaconhq/beacon-backend/internal/model"
	"github.com/beaconhq/beacon-backend/internal/repository"
	"github.com/rs/zerolog"
)

// RoleService handles role and permission management.
type RoleService struct {
	roleRepo *repository.RoleRepository
	palette  model.RolePalette
	log      zerolog.Logger
}

// NewRoleService creates a new RoleService.
func NewRoleService(roleRepo *repository.RoleRepository, palette model.RolePalette, log zerolog.Logger) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		palette:  palette,
		log:      log.With().Str("component", "role_service").Logger(),
	}
}

// List retrieves all roles with their permissions and badge colors.
func (s *RoleService) List(ctx context.Context) ([]model.RoleWithPermissions, error) {
	roles, err := s.roleRepo.ListRolesWithPermissions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range roles {
		roles[i].Color = s.palette.ColorFor(roles[i].Name)
	}
	return roles, nil
}

// GetByID retrieves a role with its permissions and badge color.
func (s *RoleService) GetByID(ctx context.Context, id int) (*model.RoleWithPermissions, error) {
	role, err := s.roleRepo.GetRoleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	role.Color = s.palette.ColorFor(role.Name)
	return role, nil
}

// Create inserts a role and assigns its permissions.
func (s *RoleService) Create(ctx context.Context, req *model.CreateRoleRequest) (*model.RoleWithPermissions, error) {
	id, err := s.roleRepo.CreateRole(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.roleRepo.AssignPermissionsToRole(ctx, id, req.Permissions); err != nil {
		return nil, err
	}

	s.log.Info().Int("role_id", id).Str("name", req.Name).Msg("Role created")
	return s.GetByID(ctx, id)
}

// Update renames a role and replaces its permission set.
func (s *RoleService) Update(ctx context.Context, id int, req *model.UpdateRoleRequest) (*model.RoleWithPermissions, error) {
	if err := s.roleRepo.UpdateRole(ctx, id, req.Name); err != nil {
		return nil, err
	}
	if err := s.roleRepo.DeleteAllPermissionsFromRole(ctx, id); err != nil {
		return nil, err
	}
	if err := s.roleRepo.AssignPermissionsToRole(ctx, id, req.Permissions); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes a role.
func (s *RoleService) Delete(ctx context.Context, id int) error {
	if err := s.roleRepo.DeleteAllPermissionsFromRole(ctx, id); err != nil {
		return err
	}
	if err := s.roleRepo.DeleteRole(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("role_id", id).Msg("Role deleted")
	return nil
}
