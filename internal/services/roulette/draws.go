package roulette

import (
	"context"

	"github.com/willianszwy/roleta-sub000/internal/models"
	"github.com/willianszwy/roleta-sub000/internal/names"
	"github.com/willianszwy/roleta-sub000/internal/roulette"
)

// RequestSpin performs the uniform selection for a participant draw. The
// selection itself is synchronous; any animation latency belongs to the
// caller, who commits the result with FinishSpin. While a spin is in
// flight further draw requests are rejected, not queued.
func (s *service) RequestSpin(ctx context.Context, input *RequestSpinInput) (*RequestSpinOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spinning {
		return nil, ErrSpinInProgress
	}

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	selected, ok := roulette.PickOne(s.picker, project.Participants)
	if !ok {
		return nil, ErrNoParticipants
	}

	s.spinning = true
	s.lastWinner = nil

	return &RequestSpinOutput{Participant: selected}, nil
}

// FinishSpin commits a requested participant draw into history. A nil
// participant cancels the spin: the slot frees up and nothing is
// recorded. Exactly one history entry is appended per committed draw.
func (s *service) FinishSpin(ctx context.Context, input *FinishSpinInput) (*FinishSpinOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.spinning {
		return nil, ErrNoSpinInProgress
	}
	s.spinning = false

	if input == nil || input.Participant == nil {
		return &FinishSpinOutput{}, nil
	}

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	entry := &models.RouletteHistory{
		ID:              s.uuid.NewUUID(),
		ParticipantID:   input.Participant.ID,
		ParticipantName: input.Participant.Name,
		SelectedAt:      s.clock.Now(),
	}

	// Newest first
	project.History = append([]*models.RouletteHistory{entry}, project.History...)
	s.lastWinner = input.Participant
	s.touch(project)
	s.persistProjects(ctx)

	return &FinishSpinOutput{History: entry}, nil
}

// RequestTaskSpin selects the next pending task, in task insertion
// order, and draws its required participants from the roster. With
// duplicates disallowed the draw samples without replacement, so a task
// asking for more participants than the roster holds yields a shorter
// result instead of failing.
func (s *service) RequestTaskSpin(ctx context.Context, input *RequestTaskSpinInput) (*RequestTaskSpinOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spinning {
		return nil, ErrSpinInProgress
	}

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	completed := completedTaskIDs(project)
	var task *models.Task
	for _, t := range project.Tasks {
		if !completed[t.ID] {
			task = t
			break
		}
	}
	if task == nil {
		return nil, ErrNoPendingTask
	}

	if len(project.Participants) == 0 {
		return nil, ErrNoParticipants
	}

	required := names.ClampRequired(task.RequiredParticipants)
	selected := roulette.PickMany(
		s.picker,
		project.Participants,
		required,
		project.Settings.AllowDuplicateParticipantsInTask,
	)

	s.spinning = true
	s.lastAssignment = nil

	return &RequestTaskSpinOutput{
		Task:         task,
		Participants: selected,
	}, nil
}

// FinishTaskSpin commits a requested task draw into task history. A nil
// task cancels the spin. Once recorded, the task is permanently excluded
// from pending status regardless of later roster or task changes. When
// auto-remove is on, every drawn participant leaves the roster as part
// of the same transition.
func (s *service) FinishTaskSpin(ctx context.Context, input *FinishTaskSpinInput) (*FinishTaskSpinOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.spinning {
		return nil, ErrNoSpinInProgress
	}
	s.spinning = false

	if input == nil || input.Task == nil {
		return &FinishTaskSpinOutput{}, nil
	}

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	refs := make([]models.ParticipantRef, 0, len(input.Participants))
	for _, participant := range input.Participants {
		refs = append(refs, models.ParticipantRef{
			ID:   participant.ID,
			Name: participant.Name,
		})
	}

	entry := &models.TaskHistory{
		ID:              s.uuid.NewUUID(),
		Participants:    refs,
		TaskID:          input.Task.ID,
		TaskName:        input.Task.Name,
		TaskDescription: input.Task.Description,
		SelectedAt:      s.clock.Now(),
	}

	// Newest first
	project.TaskHistory = append([]*models.TaskHistory{entry}, project.TaskHistory...)

	var removed []string
	if project.Settings.AutoRemoveParticipants {
		seen := make(map[string]bool, len(input.Participants))
		for _, participant := range input.Participants {
			if seen[participant.ID] {
				continue
			}
			seen[participant.ID] = true
			if removeParticipantByID(project, participant.ID) {
				removed = append(removed, participant.ID)
			}
		}
	}

	s.lastAssignment = entry
	s.touch(project)
	s.persistProjects(ctx)

	return &FinishTaskSpinOutput{
		TaskHistory:           entry,
		RemovedParticipantIDs: removed,
	}, nil
}

// GetDrawState reports the spin slot and the last committed results
func (s *service) GetDrawState(ctx context.Context, input *GetDrawStateInput) (*GetDrawStateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetDrawStateOutput{
		Spinning:       s.spinning,
		LastWinner:     s.lastWinner,
		LastAssignment: s.lastAssignment,
	}, nil
}
