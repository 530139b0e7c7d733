package roulette

import (
	"context"
	"log"
	"sync"

	"github.com/willianszwy/roleta-sub000/internal/common/clock"
	"github.com/willianszwy/roleta-sub000/internal/common/uuid"
	"github.com/willianszwy/roleta-sub000/internal/models"
	projectRepo "github.com/willianszwy/roleta-sub000/internal/repositories/project"
	teamRepo "github.com/willianszwy/roleta-sub000/internal/repositories/team"
	"github.com/willianszwy/roleta-sub000/internal/roulette"
)

// service implements the Service interface. It owns the authoritative
// in-memory state; every committed mutation is written back to the
// repositories best-effort, so persistence failures never undo a
// transition that already happened.
type service struct {
	projectRepo projectRepo.Repository
	teamRepo    teamRepo.Repository
	picker      roulette.Picker
	clock       clock.Clock
	uuid        uuid.UUID

	mu              sync.Mutex
	projects        []*models.Project
	teams           []*models.Team
	activeProjectID string

	spinning       bool
	lastWinner     *models.Participant
	lastAssignment *models.TaskHistory
}

// New creates a new roulette service. It runs the one-time legacy
// migration and loads the persisted state before returning.
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ProjectRepo == nil {
		return nil, ErrNilProjectRepo
	}
	if cfg.TeamRepo == nil {
		return nil, ErrNilTeamRepo
	}
	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		projectRepo: cfg.ProjectRepo,
		teamRepo:    cfg.TeamRepo,
		picker:      cfg.Picker,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
	}

	if _, err := s.projectRepo.Migrate(ctx, &projectRepo.MigrateInput{}); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.GetProjects(ctx, &projectRepo.GetProjectsInput{})
	if err != nil {
		return nil, err
	}
	s.projects = projects.Projects

	teams, err := s.teamRepo.GetTeams(ctx, &teamRepo.GetTeamsInput{})
	if err != nil {
		return nil, err
	}
	s.teams = teams.Teams

	active, err := s.projectRepo.GetActiveProject(ctx, &projectRepo.GetActiveProjectInput{})
	if err != nil {
		return nil, err
	}
	s.activeProjectID = active.ProjectID

	// The pointer must never reference a project that is not in the
	// registry; fall back to the first project, or to the empty state.
	if s.findProject(s.activeProjectID) == nil {
		if len(s.projects) > 0 {
			s.activeProjectID = s.projects[0].ID
		} else {
			s.activeProjectID = ""
		}
		s.persistActivePointer(ctx)
	}

	return s, nil
}

// findProject returns the project with the given ID, or nil. Callers
// must hold the lock (or be inside New).
func (s *service) findProject(id string) *models.Project {
	if id == "" {
		return nil
	}
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// activeProject resolves the active project. Callers must hold the lock.
func (s *service) activeProject() (*models.Project, error) {
	p := s.findProject(s.activeProjectID)
	if p == nil {
		return nil, ErrNoActiveProject
	}
	return p, nil
}

// touch bumps a project's LastModified. Callers must hold the lock.
func (s *service) touch(p *models.Project) {
	p.LastModified = s.clock.Now()
}

// persistProjects writes the registry and active pointer out. Failures
// are logged and swallowed: the in-memory transition already committed.
// Callers must hold the lock.
func (s *service) persistProjects(ctx context.Context) {
	if err := s.projectRepo.SaveProjects(ctx, &projectRepo.SaveProjectsInput{Projects: s.projects}); err != nil {
		log.Printf("failed to persist projects: %v", err)
	}
	s.persistActivePointer(ctx)
}

func (s *service) persistActivePointer(ctx context.Context) {
	if err := s.projectRepo.SetActiveProject(ctx, &projectRepo.SetActiveProjectInput{ProjectID: s.activeProjectID}); err != nil {
		log.Printf("failed to persist active project pointer: %v", err)
	}
}

// persistTeams writes the team registry out, same contract as
// persistProjects. Callers must hold the lock.
func (s *service) persistTeams(ctx context.Context) {
	if err := s.teamRepo.SaveTeams(ctx, &teamRepo.SaveTeamsInput{Teams: s.teams}); err != nil {
		log.Printf("failed to persist teams: %v", err)
	}
}
