package roulette

import (
	"context"
	"strings"

	"github.com/willianszwy/roleta-sub000/internal/models"
)

// CreateProject appends a new empty project and makes it active
func (s *service) CreateProject(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	project := &models.Project{
		ID:           s.uuid.NewUUID(),
		Name:         name,
		Description:  strings.TrimSpace(input.Description),
		Participants: []*models.Participant{},
		Tasks:        []*models.Task{},
		History:      []*models.RouletteHistory{},
		TaskHistory:  []*models.TaskHistory{},
		Settings:     models.DefaultSettings(),
		CreatedAt:    now,
		LastModified: now,
	}

	s.projects = append(s.projects, project)
	s.activeProjectID = project.ID
	s.persistProjects(ctx)

	return &CreateProjectOutput{Project: project}, nil
}

// DeleteProject removes a project from the registry. When the active
// project is deleted the pointer falls back to the first remaining
// project, or clears when the registry is empty.
func (s *service) DeleteProject(ctx context.Context, input *DeleteProjectInput) (*DeleteProjectOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findProject(input.ProjectID) == nil {
		return nil, ErrProjectNotFound
	}

	remaining := make([]*models.Project, 0, len(s.projects)-1)
	for _, p := range s.projects {
		if p.ID != input.ProjectID {
			remaining = append(remaining, p)
		}
	}
	s.projects = remaining

	if s.activeProjectID == input.ProjectID {
		if len(s.projects) > 0 {
			s.activeProjectID = s.projects[0].ID
		} else {
			s.activeProjectID = ""
		}
	}

	s.persistProjects(ctx)

	return &DeleteProjectOutput{ActiveProjectID: s.activeProjectID}, nil
}

// SwitchProject changes the active project pointer
func (s *service) SwitchProject(ctx context.Context, input *SwitchProjectInput) (*SwitchProjectOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project := s.findProject(input.ProjectID)
	if project == nil {
		return nil, ErrProjectNotFound
	}

	s.activeProjectID = project.ID
	s.persistActivePointer(ctx)

	return &SwitchProjectOutput{Project: project}, nil
}

// RenameProject updates a project's display name
func (s *service) RenameProject(ctx context.Context, input *RenameProjectInput) (*RenameProjectOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project := s.findProject(input.ProjectID)
	if project == nil {
		return nil, ErrProjectNotFound
	}

	project.Name = name
	s.touch(project)
	s.persistProjects(ctx)

	return &RenameProjectOutput{Project: project}, nil
}

// GetProjects returns the project registry and the active pointer
func (s *service) GetProjects(ctx context.Context, input *GetProjectsInput) (*GetProjectsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := make([]*models.Project, len(s.projects))
	copy(projects, s.projects)

	return &GetProjectsOutput{
		Projects:        projects,
		ActiveProjectID: s.activeProjectID,
	}, nil
}

// GetActiveProject returns the active project, or nil when none exists
func (s *service) GetActiveProject(ctx context.Context, input *GetActiveProjectInput) (*GetActiveProjectOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetActiveProjectOutput{Project: s.findProject(s.activeProjectID)}, nil
}

// UpdateSettings replaces the active project's settings
func (s *service) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	settings := input.Settings
	if settings.AnimationDurationMs <= 0 {
		settings.AnimationDurationMs = models.DefaultAnimationDurationMs
	}

	project.Settings = settings
	s.touch(project)
	s.persistProjects(ctx)

	return &UpdateSettingsOutput{Project: project}, nil
}
