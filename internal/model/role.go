package model

import "time"

// Role represents an RBAC role.
type Role struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RoleWithPermissions extends Role to include its associated permissions.
type RoleWithPermissions struct {
	*Role
	Permissions []string `json:"permissions"`
	Color       string   `json:"color,omitempty"`
}

// CreateRoleRequest is the payload for creating a role.
type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Permissions []string `json:"permissions" binding:"required,min=1"`
}

// UpdateRoleRequest is the payload for updating a role.
type UpdateRoleRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Permissions []string `json:"permissions" binding:"required,min=1"`
}

// RolePalette maps well-known role names to the badge color the admin
// UI renders. It is built once at startup and passed to whoever needs
// it; treat it as read-only.
type RolePalette map[string]string

// DefaultRolePalette returns the shared role color table.
func DefaultRolePalette() RolePalette {
	return RolePalette{
		"Super Admin": "#7c3aed",
		"Editor":      "#2563eb",
		"Instructor":  "#059669",
		"Viewer":      "#6b7280",
	}
}

// ColorFor returns the badge color for a role name, falling back to
// the Viewer gray for unknown roles.
func (p RolePalette) ColorFor(name string) string {
	if c, ok := p[name]; ok {
		return c
	}
	return p["Viewer"]
}
