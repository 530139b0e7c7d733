package project

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/willianszwy/roleta-sub000/internal/repositories/project Repository

import (
	"context"
)

// Repository defines the interface for project registry persistence
type Repository interface {
	// SaveProjects persists the full project registry
	SaveProjects(ctx context.Context, input *SaveProjectsInput) error

	// GetProjects retrieves the project registry, falling back to an
	// empty registry on missing or unreadable data
	GetProjects(ctx context.Context, input *GetProjectsInput) (*GetProjectsOutput, error)

	// SetActiveProject persists the active-project pointer
	SetActiveProject(ctx context.Context, input *SetActiveProjectInput) error

	// GetActiveProject retrieves the active-project pointer, falling
	// back to empty on missing data
	GetActiveProject(ctx context.Context, input *GetActiveProjectInput) (*GetActiveProjectOutput, error)

	// Migrate runs the one-time legacy flat-key migration, wrapping any
	// pre-project records into a synthesized default project
	Migrate(ctx context.Context, input *MigrateInput) (*MigrateOutput, error)
}
