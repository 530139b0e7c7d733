package roulette

import (
	"context"
	"strings"

	"github.com/willianszwy/roleta-sub000/internal/colors"
	"github.com/willianszwy/roleta-sub000/internal/models"
	"github.com/willianszwy/roleta-sub000/internal/names"
)

// rosterNames returns the current roster's names for duplicate resolution
func rosterNames(p *models.Project) []string {
	existing := make([]string, 0, len(p.Participants))
	for _, participant := range p.Participants {
		existing = append(existing, participant.Name)
	}
	return existing
}

// newParticipant builds a participant with a fresh identity. Callers
// must hold the lock.
func (s *service) newParticipant(name string) *models.Participant {
	return &models.Participant{
		ID:        s.uuid.NewUUID(),
		Name:      name,
		Color:     colors.Assign(),
		CreatedAt: s.clock.Now(),
	}
}

// AddParticipant adds one participant to the active roster, renaming on
// case-insensitive collision
func (s *service) AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	name, ok := names.Resolve(input.Name, rosterNames(project))
	if !ok {
		return nil, ErrEmptyName
	}

	participant := s.newParticipant(name)
	project.Participants = append(project.Participants, participant)
	s.touch(project)
	s.persistProjects(ctx)

	return &AddParticipantOutput{Participant: participant}, nil
}

// AddParticipantsBulk adds a delimited batch of participants. Identical
// names in one batch resolve in order: "X", "X (2)", "X (3)".
func (s *service) AddParticipantsBulk(ctx context.Context, input *AddParticipantsBulkInput) (*AddParticipantsBulkOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	resolved := names.ResolveBulk(names.SplitNames(input.Raw), rosterNames(project))

	added := make([]*models.Participant, 0, len(resolved))
	for _, name := range resolved {
		participant := s.newParticipant(name)
		project.Participants = append(project.Participants, participant)
		added = append(added, participant)
	}

	if len(added) > 0 {
		s.touch(project)
		s.persistProjects(ctx)
	}

	return &AddParticipantsBulkOutput{Participants: added}, nil
}

// RemoveParticipant removes one participant from the active roster.
// History is not altered.
func (s *service) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	if !removeParticipantByID(project, input.ParticipantID) {
		return nil, ErrParticipantNotFound
	}

	s.touch(project)
	s.persistProjects(ctx)

	return &RemoveParticipantOutput{}, nil
}

// ClearParticipants empties the active roster. History is not altered.
func (s *service) ClearParticipants(ctx context.Context, input *ClearParticipantsInput) (*ClearParticipantsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	project.Participants = []*models.Participant{}
	s.touch(project)
	s.persistProjects(ctx)

	return &ClearParticipantsOutput{}, nil
}

// RemoveFromRouletteAfterSpin removes the participant from the roster
// and marks their most recent not-yet-removed history entry as removed.
// Unlike RemoveParticipant this mutates history, which is what lets
// RestoreParticipant undo it later.
func (s *service) RemoveFromRouletteAfterSpin(ctx context.Context, input *RemoveFromRouletteAfterSpinInput) (*RemoveFromRouletteAfterSpinOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	if !removeParticipantByID(project, input.ParticipantID) {
		return nil, ErrParticipantNotFound
	}

	marked := false
	for _, entry := range project.History {
		if entry.ParticipantID == input.ParticipantID && !entry.Removed {
			entry.Removed = true
			marked = true
			break
		}
	}

	s.touch(project)
	s.persistProjects(ctx)

	return &RemoveFromRouletteAfterSpinOutput{HistoryMarked: marked}, nil
}

// RestoreParticipant re-adds a removed participant by display name. The
// restored participant is a new entity with a fresh ID; identity is not
// preserved. The most recent soft-deleted history entry matching the
// name (case-insensitively) is flipped back. Two removed participants
// who shared a name are indistinguishable here; that matches the way
// removal history is keyed.
func (s *service) RestoreParticipant(ctx context.Context, input *RestoreParticipantInput) (*RestoreParticipantOutput, error) {
	trimmed := strings.TrimSpace(input.Name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	name, ok := names.Resolve(trimmed, rosterNames(project))
	if !ok {
		return nil, ErrEmptyName
	}

	participant := s.newParticipant(name)
	project.Participants = append(project.Participants, participant)

	restored := false
	for _, entry := range project.History {
		if entry.Removed && strings.EqualFold(entry.ParticipantName, trimmed) {
			entry.Removed = false
			restored = true
			break
		}
	}

	s.touch(project)
	s.persistProjects(ctx)

	return &RestoreParticipantOutput{
		Participant:     participant,
		HistoryRestored: restored,
	}, nil
}

// removeParticipantByID removes one participant from a project's roster,
// reporting whether anything was removed
func removeParticipantByID(project *models.Project, id string) bool {
	for i, participant := range project.Participants {
		if participant.ID == id {
			project.Participants = append(project.Participants[:i], project.Participants[i+1:]...)
			return true
		}
	}
	return false
}
