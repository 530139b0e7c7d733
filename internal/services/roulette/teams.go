package roulette

import (
	"context"
	"strings"

	"github.com/willianszwy/roleta-sub000/internal/colors"
	"github.com/willianszwy/roleta-sub000/internal/models"
	"github.com/willianszwy/roleta-sub000/internal/names"
)

// teamNames returns the registry's team names, optionally excluding one
// team (for renames)
func (s *service) teamNames(excludeID string) []string {
	existing := make([]string, 0, len(s.teams))
	for _, t := range s.teams {
		if t.ID != excludeID {
			existing = append(existing, t.Name)
		}
	}
	return existing
}

// findTeam returns the team with the given ID, or nil. Callers must hold
// the lock.
func (s *service) findTeam(id string) *models.Team {
	for _, t := range s.teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AddTeam creates a team in the global registry, renaming on
// case-insensitive collision
func (s *service) AddTeam(ctx context.Context, input *AddTeamInput) (*AddTeamOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok := names.Resolve(input.Name, s.teamNames(""))
	if !ok {
		return nil, ErrEmptyName
	}

	team := &models.Team{
		ID:          s.uuid.NewUUID(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Members:     []*models.Participant{},
		Color:       colors.Assign(),
		CreatedAt:   s.clock.Now(),
	}

	s.teams = append(s.teams, team)
	s.persistTeams(ctx)

	return &AddTeamOutput{Team: team}, nil
}

// EditTeam updates a team's name and description
func (s *service) EditTeam(ctx context.Context, input *EditTeamInput) (*EditTeamOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team := s.findTeam(input.TeamID)
	if team == nil {
		return nil, ErrTeamNotFound
	}

	name, ok := names.Resolve(input.Name, s.teamNames(team.ID))
	if !ok {
		return nil, ErrEmptyName
	}

	team.Name = name
	team.Description = strings.TrimSpace(input.Description)
	s.persistTeams(ctx)

	return &EditTeamOutput{Team: team}, nil
}

// RemoveTeam deletes a team from the global registry. Projects that
// imported its members keep their copies.
func (s *service) RemoveTeam(ctx context.Context, input *RemoveTeamInput) (*RemoveTeamOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	remaining := make([]*models.Team, 0, len(s.teams))
	for _, t := range s.teams {
		if t.ID == input.TeamID {
			found = true
			continue
		}
		remaining = append(remaining, t)
	}
	if !found {
		return nil, ErrTeamNotFound
	}

	s.teams = remaining
	s.persistTeams(ctx)

	return &RemoveTeamOutput{}, nil
}

// AddMemberToTeam adds a member to a team, renaming on case-insensitive
// collision within the team
func (s *service) AddMemberToTeam(ctx context.Context, input *AddMemberToTeamInput) (*AddMemberToTeamOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team := s.findTeam(input.TeamID)
	if team == nil {
		return nil, ErrTeamNotFound
	}

	existing := make([]string, 0, len(team.Members))
	for _, m := range team.Members {
		existing = append(existing, m.Name)
	}

	name, ok := names.Resolve(input.Name, existing)
	if !ok {
		return nil, ErrEmptyName
	}

	member := s.newParticipant(name)
	team.Members = append(team.Members, member)
	s.persistTeams(ctx)

	return &AddMemberToTeamOutput{Member: member}, nil
}

// RemoveMemberFromTeam removes a member from a team
func (s *service) RemoveMemberFromTeam(ctx context.Context, input *RemoveMemberFromTeamInput) (*RemoveMemberFromTeamOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team := s.findTeam(input.TeamID)
	if team == nil {
		return nil, ErrTeamNotFound
	}

	found := false
	for i, m := range team.Members {
		if m.ID == input.MemberID {
			team.Members = append(team.Members[:i], team.Members[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil, ErrMemberNotFound
	}

	s.persistTeams(ctx)

	return &RemoveMemberFromTeamOutput{}, nil
}

// GetTeams returns the global team registry
func (s *service) GetTeams(ctx context.Context, input *GetTeamsInput) (*GetTeamsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teams := make([]*models.Team, len(s.teams))
	copy(teams, s.teams)

	return &GetTeamsOutput{Teams: teams}, nil
}

// ImportTeamToProject copies a team's members into the active roster.
// Members whose names collide case-insensitively with roster names are
// skipped outright, not renumbered; the copies are new entities with
// fresh identities.
func (s *service) ImportTeamToProject(ctx context.Context, input *ImportTeamToProjectInput) (*ImportTeamToProjectOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.activeProject()
	if err != nil {
		return nil, err
	}

	team := s.findTeam(input.TeamID)
	if team == nil {
		return nil, ErrTeamNotFound
	}

	taken := make(map[string]bool, len(project.Participants))
	for _, participant := range project.Participants {
		taken[strings.ToLower(participant.Name)] = true
	}

	out := &ImportTeamToProjectOutput{}
	for _, member := range team.Members {
		key := strings.ToLower(member.Name)
		if taken[key] {
			out.Skipped = append(out.Skipped, member.Name)
			continue
		}
		taken[key] = true

		participant := s.newParticipant(member.Name)
		project.Participants = append(project.Participants, participant)
		out.Imported = append(out.Imported, participant)
	}

	if len(out.Imported) > 0 {
		s.touch(project)
		s.persistProjects(ctx)
	}

	return out, nil
}
