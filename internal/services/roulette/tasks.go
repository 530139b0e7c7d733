package roulette

import (
	"context"
	"strings"

	"github.com/willianszwy/roleta-sub000/internal/colors"
	"github.com/willianszwy/roleta-sub000/internal/models"
	"github.com/willianszwy/roleta-sub000/internal/names"
)

// taskNames returns the current task list's names for duplicate resolution
func taskNames(p *models.Project) []string {
	existing := make([]string, 0, len(p.Tasks))
	for _, task := range p.Tasks {
		existing = append(existing, task.Name)
	}
	return existing
}

// completedTaskIDs collects the task IDs present in task history. A task
// is completed iff its ID appears here; there is no status field.
func completedTaskIDs(p *models.Project) map[string]bool {
	completed := make(map[string]bool, len(p.TaskHistory))
	for _, entry := range p.TaskHistory {
		completed[entry.TaskID] = true
	}
	return completed
}

// newTask builds a task with a fresh identity and a clamped required
// count. Callers must hold the lock.
func (s *service) newTask(name, description string, required int) *models.Task {
	return &models.Task{
		ID:                   s.uuid.NewUUID(),
		Name:                 name,
		Description:          description,
		RequiredParticipants: names.ClampRequired(required),
		Color:                colors.Assign(),
		CreatedAt:            s.clock.Now(),
	}
}

// AddTask adds one task to the active project, renaming on
// case-insensitive collision
func (s *service) AddTask(ctx context.Context, input *AddTaskInput) (*AddTaskOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	name, ok := names.Resolve(input.Name, taskNames(project))
	if !ok {
		return nil, ErrEmptyName
	}

	task := s.newTask(name, strings.TrimSpace(input.Description), input.RequiredParticipants)
	project.Tasks = append(project.Tasks, task)
	s.touch(project)
	s.persistProjects(ctx)

	return &AddTaskOutput{Task: task}, nil
}

// AddTasksBulk adds newline-delimited "name|description|required" lines.
// Task names resolve against a running set like participant batches do.
func (s *service) AddTasksBulk(ctx context.Context, input *AddTasksBulkInput) (*AddTasksBulkOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	running := taskNames(project)

	added := make([]*models.Task, 0)
	for _, line := range strings.Split(input.Lines, "\n") {
		name, description, required, ok := names.ParseTaskLine(line)
		if !ok {
			continue
		}

		resolved, ok := names.Resolve(name, running)
		if !ok {
			continue
		}
		running = append(running, resolved)

		task := s.newTask(resolved, description, required)
		project.Tasks = append(project.Tasks, task)
		added = append(added, task)
	}

	if len(added) > 0 {
		s.touch(project)
		s.persistProjects(ctx)
	}

	return &AddTasksBulkOutput{Tasks: added}, nil
}

// RemoveTask removes one task from the active project. Task history is
// not altered.
func (s *service) RemoveTask(ctx context.Context, input *RemoveTaskInput) (*RemoveTaskOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	found := false
	for i, task := range project.Tasks {
		if task.ID == input.TaskID {
			project.Tasks = append(project.Tasks[:i], project.Tasks[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil, ErrTaskNotFound
	}

	s.touch(project)
	s.persistProjects(ctx)

	return &RemoveTaskOutput{}, nil
}

// ClearTasks empties the active project's task list. Task history is not
// altered.
func (s *service) ClearTasks(ctx context.Context, input *ClearTasksInput) (*ClearTasksOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	project.Tasks = []*models.Task{}
	s.touch(project)
	s.persistProjects(ctx)

	return &ClearTasksOutput{}, nil
}

// GetTasks partitions the active project's tasks into pending and
// completed by task-history membership, preserving insertion order
func (s *service) GetTasks(ctx context.Context, input *GetTasksInput) (*GetTasksOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	completed := completedTaskIDs(project)

	out := &GetTasksOutput{
		Pending:   []*models.Task{},
		Completed: []*models.Task{},
	}
	for _, task := range project.Tasks {
		if completed[task.ID] {
			out.Completed = append(out.Completed, task)
		} else {
			out.Pending = append(out.Pending, task)
		}
	}

	return out, nil
}
