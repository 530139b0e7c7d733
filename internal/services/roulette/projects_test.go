package roulette

import (
	"github.com/willianszwy/roleta-sub000/internal/models"
)

func (s *RouletteServiceTestSuite) TestCreateProject() {
	svc := s.newService(nil, "", nil)

	out, err := svc.CreateProject(s.ctx, &CreateProjectInput{
		Name:        "  Sprint 12  ",
		Description: "weekly draws",
	})
	s.Require().NoError(err)
	s.Equal("Sprint 12", out.Project.Name)
	s.Equal("weekly draws", out.Project.Description)
	s.Empty(out.Project.Participants)
	s.Empty(out.Project.Tasks)
	s.Equal(models.DefaultSettings(), out.Project.Settings)
	s.Equal(s.testTime, out.Project.CreatedAt)

	// The new project becomes active
	active, err := svc.GetActiveProject(s.ctx, &GetActiveProjectInput{})
	s.Require().NoError(err)
	s.Equal(out.Project.ID, active.Project.ID)
}

func (s *RouletteServiceTestSuite) TestCreateProjectEmptyName() {
	svc := s.newService(nil, "", nil)

	_, err := svc.CreateProject(s.ctx, &CreateProjectInput{Name: "   "})
	s.ErrorIs(err, ErrEmptyName)

	projects, err := svc.GetProjects(s.ctx, &GetProjectsInput{})
	s.Require().NoError(err)
	s.Empty(projects.Projects)
}

func (s *RouletteServiceTestSuite) TestDeleteActiveProjectFallsBackToFirst() {
	first := s.testProject("project-1", "First")
	second := s.testProject("project-2", "Second")

	svc := s.newService([]*models.Project{first, second}, "project-2", nil)

	out, err := svc.DeleteProject(s.ctx, &DeleteProjectInput{ProjectID: "project-2"})
	s.Require().NoError(err)
	s.Equal("project-1", out.ActiveProjectID)
}

func (s *RouletteServiceTestSuite) TestDeleteOnlyProjectYieldsEmptyState() {
	project := s.testProject("project-1", "Only", "Ana")

	svc := s.newService([]*models.Project{project}, "project-1", nil)

	out, err := svc.DeleteProject(s.ctx, &DeleteProjectInput{ProjectID: "project-1"})
	s.Require().NoError(err)
	s.Empty(out.ActiveProjectID)

	active, err := svc.GetActiveProject(s.ctx, &GetActiveProjectInput{})
	s.Require().NoError(err)
	s.Nil(active.Project)
}

func (s *RouletteServiceTestSuite) TestDeleteNonActiveProjectKeepsPointer() {
	first := s.testProject("project-1", "First")
	second := s.testProject("project-2", "Second")

	svc := s.newService([]*models.Project{first, second}, "project-1", nil)

	out, err := svc.DeleteProject(s.ctx, &DeleteProjectInput{ProjectID: "project-2"})
	s.Require().NoError(err)
	s.Equal("project-1", out.ActiveProjectID)
}

func (s *RouletteServiceTestSuite) TestDeleteProjectNotFound() {
	svc := s.newService([]*models.Project{s.testProject("project-1", "Only")}, "project-1", nil)

	_, err := svc.DeleteProject(s.ctx, &DeleteProjectInput{ProjectID: "nope"})
	s.ErrorIs(err, ErrProjectNotFound)
}

func (s *RouletteServiceTestSuite) TestSwitchProject() {
	first := s.testProject("project-1", "First", "Ana")
	second := s.testProject("project-2", "Second", "Bruno", "Carla")

	svc := s.newService([]*models.Project{first, second}, "project-1", nil)

	out, err := svc.SwitchProject(s.ctx, &SwitchProjectInput{ProjectID: "project-2"})
	s.Require().NoError(err)
	s.Equal("Second", out.Project.Name)

	// Roster operations now target the switched-to project
	active, err := svc.GetActiveProject(s.ctx, &GetActiveProjectInput{})
	s.Require().NoError(err)
	s.Len(active.Project.Participants, 2)
}

func (s *RouletteServiceTestSuite) TestSwitchProjectNotFound() {
	svc := s.newService([]*models.Project{s.testProject("project-1", "Only")}, "project-1", nil)

	_, err := svc.SwitchProject(s.ctx, &SwitchProjectInput{ProjectID: "nope"})
	s.ErrorIs(err, ErrProjectNotFound)

	active, err := svc.GetActiveProject(s.ctx, &GetActiveProjectInput{})
	s.Require().NoError(err)
	s.Equal("project-1", active.Project.ID)
}

func (s *RouletteServiceTestSuite) TestRenameProject() {
	svc := s.newService([]*models.Project{s.testProject("project-1", "Old")}, "project-1", nil)

	out, err := svc.RenameProject(s.ctx, &RenameProjectInput{ProjectID: "project-1", Name: " New "})
	s.Require().NoError(err)
	s.Equal("New", out.Project.Name)
}

func (s *RouletteServiceTestSuite) TestRenameProjectEmptyName() {
	svc := s.newService([]*models.Project{s.testProject("project-1", "Old")}, "project-1", nil)

	_, err := svc.RenameProject(s.ctx, &RenameProjectInput{ProjectID: "project-1", Name: "  "})
	s.ErrorIs(err, ErrEmptyName)

	active, err := svc.GetActiveProject(s.ctx, &GetActiveProjectInput{})
	s.Require().NoError(err)
	s.Equal("Old", active.Project.Name)
}

func (s *RouletteServiceTestSuite) TestUpdateSettings() {
	svc := s.newService([]*models.Project{s.testProject("project-1", "Sprint")}, "project-1", nil)

	out, err := svc.UpdateSettings(s.ctx, &UpdateSettingsInput{
		Settings: models.ProjectSettings{
			AutoRemoveParticipants:           true,
			AnimationDurationMs:              2500,
			AllowDuplicateParticipantsInTask: true,
		},
	})
	s.Require().NoError(err)
	s.True(out.Project.Settings.AutoRemoveParticipants)
	s.Equal(2500, out.Project.Settings.AnimationDurationMs)
}

func (s *RouletteServiceTestSuite) TestUpdateSettingsDefaultsAnimationDuration() {
	svc := s.newService([]*models.Project{s.testProject("project-1", "Sprint")}, "project-1", nil)

	out, err := svc.UpdateSettings(s.ctx, &UpdateSettingsInput{
		Settings: models.ProjectSettings{AnimationDurationMs: 0},
	})
	s.Require().NoError(err)
	s.Equal(models.DefaultAnimationDurationMs, out.Project.Settings.AnimationDurationMs)
}
