package roulette

import (
	"context"

	"github.com/willianszwy/roleta-sub000/internal/models"
)

// GetHistory returns the active project's draw history, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	history := make([]*models.RouletteHistory, len(project.History))
	copy(history, project.History)

	return &GetHistoryOutput{History: history}, nil
}

// GetTaskHistory returns the active project's task assignments, newest first
func (s *service) GetTaskHistory(ctx context.Context, input *GetTaskHistoryInput) (*GetTaskHistoryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	taskHistory := make([]*models.TaskHistory, len(project.TaskHistory))
	copy(taskHistory, project.TaskHistory)

	return &GetTaskHistoryOutput{TaskHistory: taskHistory}, nil
}

// ClearHistory empties the draw history ledger. Rosters are untouched.
func (s *service) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	project.History = []*models.RouletteHistory{}
	s.touch(project)
	s.persistProjects(ctx)

	return &ClearHistoryOutput{}, nil
}

// ClearTaskHistory empties the task-history ledger. Tasks previously
// completed become pending again, since pending is derived from this
// ledger.
func (s *service) ClearTaskHistory(ctx context.Context, input *ClearTaskHistoryInput) (*ClearTaskHistoryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	project.TaskHistory = []*models.TaskHistory{}
	s.touch(project)
	s.persistProjects(ctx)

	return &ClearTaskHistoryOutput{}, nil
}
