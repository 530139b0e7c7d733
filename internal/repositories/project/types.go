package project

import "github.com/willianszwy/roleta-sub000/internal/models"

// SaveProjectsInput contains parameters for persisting the project registry
type SaveProjectsInput struct {
	Projects []*models.Project
}

// GetProjectsInput contains parameters for retrieving the project registry
type GetProjectsInput struct{}

// GetProjectsOutput contains the retrieved project registry
type GetProjectsOutput struct {
	Projects []*models.Project
}

// SetActiveProjectInput contains parameters for persisting the active pointer.
// An empty ProjectID clears the pointer.
type SetActiveProjectInput struct {
	ProjectID string
}

// GetActiveProjectInput contains parameters for retrieving the active pointer
type GetActiveProjectInput struct{}

// GetActiveProjectOutput contains the retrieved active pointer
type GetActiveProjectOutput struct {
	ProjectID string
}

// MigrateInput contains parameters for the legacy migration
type MigrateInput struct{}

// MigrateOutput contains the result of the legacy migration
type MigrateOutput struct {
	// Migrated indicates legacy records were found and wrapped into a
	// default project on this run
	Migrated bool
}
