package roulette

import (
	"github.com/willianszwy/roleta-sub000/internal/models"
)

func (s *RouletteServiceTestSuite) TestSpinRoundTrip() {
	project := s.testProject("project-1", "Sprint", "Ana", "Bruno", "Carla")
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	s.mockPicker.EXPECT().Pick(3).Return(1)

	spin, err := svc.RequestSpin(s.ctx, &RequestSpinInput{})
	s.Require().NoError(err)
	s.Equal("Bruno", spin.Participant.Name)

	state, err := svc.GetDrawState(s.ctx, &GetDrawStateInput{})
	s.Require().NoError(err)
	s.True(state.Spinning)

	finish, err := svc.FinishSpin(s.ctx, &FinishSpinInput{Participant: spin.Participant})
	s.Require().NoError(err)
	s.Require().NotNil(finish.History)
	s.Equal(spin.Participant.ID, finish.History.ParticipantID)
	s.Equal("Bruno", finish.History.ParticipantName)
	s.Equal(s.testTime, finish.History.SelectedAt)
	s.False(finish.History.Removed)

	// Exactly one history entry per committed draw, spin slot freed
	history, err := svc.GetHistory(s.ctx, &GetHistoryInput{})
	s.Require().NoError(err)
	s.Len(history.History, 1)

	state, err = svc.GetDrawState(s.ctx, &GetDrawStateInput{})
	s.Require().NoError(err)
	s.False(state.Spinning)
	s.Equal("Bruno", state.LastWinner.Name)
}

func (s *RouletteServiceTestSuite) TestSpinRejectedWhileInFlight() {
	project := s.testProject("project-1", "Sprint", "Ana", "Bruno")
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	s.mockPicker.EXPECT().Pick(2).Return(0)

	_, err := svc.RequestSpin(s.ctx, &RequestSpinInput{})
	s.Require().NoError(err)

	_, err = svc.RequestSpin(s.ctx, &RequestSpinInput{})
	s.ErrorIs(err, ErrSpinInProgress)

	_, err = svc.RequestTaskSpin(s.ctx, &RequestTaskSpinInput{})
	s.ErrorIs(err, ErrSpinInProgress)

	// Rejected requests leave no trace
	history, err := svc.GetHistory(s.ctx, &GetHistoryInput{})
	s.Require().NoError(err)
	s.Empty(history.History)
}

func (s *RouletteServiceTestSuite) TestSpinEmptyRoster() {
	svc := s.newService([]*models.Project{s.testProject("project-1", "Sprint")}, "project-1", nil)

	_, err := svc.RequestSpin(s.ctx, &RequestSpinInput{})
	s.ErrorIs(err, ErrNoParticipants)

	// The slot stays free after a rejected request
	state, err := svc.GetDrawState(s.ctx, &GetDrawStateInput{})
	s.Require().NoError(err)
	s.False(state.Spinning)
}

func (s *RouletteServiceTestSuite) TestCancelledSpinRecordsNothing() {
	project := s.testProject("project-1", "Sprint", "Ana")
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	s.mockPicker.EXPECT().Pick(1).Return(0)

	_, err := svc.RequestSpin(s.ctx, &RequestSpinInput{})
	s.Require().NoError(err)

	finish, err := svc.FinishSpin(s.ctx, &FinishSpinInput{})
	s.Require().NoError(err)
	s.Nil(finish.History)

	history, err := svc.GetHistory(s.ctx, &GetHistoryInput{})
	s.Require().NoError(err)
	s.Empty(history.History)

	state, err := svc.GetDrawState(s.ctx, &GetDrawStateInput{})
	s.Require().NoError(err)
	s.False(state.Spinning)
}

func (s *RouletteServiceTestSuite) TestFinishSpinWithoutRequest() {
	svc := s.newService([]*models.Project{s.testProject("project-1", "Sprint", "Ana")}, "project-1", nil)

	_, err := svc.FinishSpin(s.ctx, &FinishSpinInput{
		Participant: &models.Participant{ID: "x", Name: "Ana"},
	})
	s.ErrorIs(err, ErrNoSpinInProgress)
}

func (s *RouletteServiceTestSuite) TestHistoryIsNewestFirst() {
	project := s.testProject("project-1", "Sprint", "Ana", "Bruno")
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	s.mockPicker.EXPECT().Pick(2).Return(0)
	spin, err := svc.RequestSpin(s.ctx, &RequestSpinInput{})
	s.Require().NoError(err)
	_, err = svc.FinishSpin(s.ctx, &FinishSpinInput{Participant: spin.Participant})
	s.Require().NoError(err)

	s.mockPicker.EXPECT().Pick(2).Return(1)
	spin, err = svc.RequestSpin(s.ctx, &RequestSpinInput{})
	s.Require().NoError(err)
	_, err = svc.FinishSpin(s.ctx, &FinishSpinInput{Participant: spin.Participant})
	s.Require().NoError(err)

	history, err := svc.GetHistory(s.ctx, &GetHistoryInput{})
	s.Require().NoError(err)
	s.Require().Len(history.History, 2)
	s.Equal("Bruno", history.History[0].ParticipantName)
	s.Equal("Ana", history.History[1].ParticipantName)
}

func (s *RouletteServiceTestSuite) TestTaskSpinDrawsDistinctParticipants() {
	project := s.testProject("project-1", "Sprint", "Ana", "Bruno")
	project.Tasks = []*models.Task{
		{ID: "t1", Name: "Revisar PR", RequiredParticipants: 2, CreatedAt: s.testTime},
	}
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	// Without replacement the pool shrinks between picks
	s.mockPicker.EXPECT().Pick(2).Return(0)
	s.mockPicker.EXPECT().Pick(1).Return(0)

	spin, err := svc.RequestTaskSpin(s.ctx, &RequestTaskSpinInput{})
	s.Require().NoError(err)
	s.Equal("Revisar PR", spin.Task.Name)
	s.Require().Len(spin.Participants, 2)
	s.NotEqual(spin.Participants[0].ID, spin.Participants[1].ID)

	finish, err := svc.FinishTaskSpin(s.ctx, &FinishTaskSpinInput{
		Task:         spin.Task,
		Participants: spin.Participants,
	})
	s.Require().NoError(err)
	s.Require().NotNil(finish.TaskHistory)
	s.Len(finish.TaskHistory.Participants, 2)
	s.Equal("t1", finish.TaskHistory.TaskID)

	taskHistory, err := svc.GetTaskHistory(s.ctx, &GetTaskHistoryInput{})
	s.Require().NoError(err)
	s.Len(taskHistory.TaskHistory, 1)
}

func (s *RouletteServiceTestSuite) TestTaskSpinTruncatesWhenRosterIsSmaller() {
	project := s.testProject("project-1", "Sprint", "Ana", "Bruno")
	project.Tasks = []*models.Task{
		{ID: "t1", Name: "Mutirão", RequiredParticipants: 5, CreatedAt: s.testTime},
	}
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	s.mockPicker.EXPECT().Pick(2).Return(1)
	s.mockPicker.EXPECT().Pick(1).Return(0)

	spin, err := svc.RequestTaskSpin(s.ctx, &RequestTaskSpinInput{})
	s.Require().NoError(err)
	s.Len(spin.Participants, 2)
}

func (s *RouletteServiceTestSuite) TestTaskSpinWithReplacementKeepsPool() {
	project := s.testProject("project-1", "Sprint", "Ana")
	project.Tasks = []*models.Task{
		{ID: "t1", Name: "Plantão", RequiredParticipants: 3, CreatedAt: s.testTime},
	}
	project.Settings.AllowDuplicateParticipantsInTask = true
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	s.mockPicker.EXPECT().Pick(1).Return(0).Times(3)

	spin, err := svc.RequestTaskSpin(s.ctx, &RequestTaskSpinInput{})
	s.Require().NoError(err)
	s.Require().Len(spin.Participants, 3)
	for _, p := range spin.Participants {
		s.Equal("Ana", p.Name)
	}
}

func (s *RouletteServiceTestSuite) TestTaskSpinSkipsCompletedTasks() {
	project := s.testProject("project-1", "Sprint", "Ana")
	project.Tasks = []*models.Task{
		{ID: "t1", Name: "Deploy", RequiredParticipants: 1, CreatedAt: s.testTime},
		{ID: "t2", Name: "Review", RequiredParticipants: 1, CreatedAt: s.testTime},
	}
	project.TaskHistory = []*models.TaskHistory{
		{ID: "th1", TaskID: "t1", TaskName: "Deploy", SelectedAt: s.testTime},
	}
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	s.mockPicker.EXPECT().Pick(1).Return(0)

	spin, err := svc.RequestTaskSpin(s.ctx, &RequestTaskSpinInput{})
	s.Require().NoError(err)
	s.Equal("t2", spin.Task.ID)
}

func (s *RouletteServiceTestSuite) TestTaskSpinNoPendingTask() {
	project := s.testProject("project-1", "Sprint", "Ana")
	project.Tasks = []*models.Task{
		{ID: "t1", Name: "Deploy", RequiredParticipants: 1, CreatedAt: s.testTime},
	}
	project.TaskHistory = []*models.TaskHistory{
		{ID: "th1", TaskID: "t1", TaskName: "Deploy", SelectedAt: s.testTime},
	}
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	_, err := svc.RequestTaskSpin(s.ctx, &RequestTaskSpinInput{})
	s.ErrorIs(err, ErrNoPendingTask)
}

func (s *RouletteServiceTestSuite) TestCompletedTaskStaysCompletedAcrossRosterChanges() {
	project := s.testProject("project-1", "Sprint", "Ana")
	project.Tasks = []*models.Task{
		{ID: "t1", Name: "Deploy", RequiredParticipants: 1, CreatedAt: s.testTime},
	}
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	s.mockPicker.EXPECT().Pick(1).Return(0)
	spin, err := svc.RequestTaskSpin(s.ctx, &RequestTaskSpinInput{})
	s.Require().NoError(err)
	_, err = svc.FinishTaskSpin(s.ctx, &FinishTaskSpinInput{Task: spin.Task, Participants: spin.Participants})
	s.Require().NoError(err)

	// Clear and repopulate the roster; the task must stay completed
	_, err = svc.ClearParticipants(s.ctx, &ClearParticipantsInput{})
	s.Require().NoError(err)
	_, err = svc.AddParticipant(s.ctx, &AddParticipantInput{Name: "Bruno"})
	s.Require().NoError(err)

	_, err = svc.RequestTaskSpin(s.ctx, &RequestTaskSpinInput{})
	s.ErrorIs(err, ErrNoPendingTask)

	tasks, err := svc.GetTasks(s.ctx, &GetTasksInput{})
	s.Require().NoError(err)
	s.Empty(tasks.Pending)
	s.Len(tasks.Completed, 1)
}

func (s *RouletteServiceTestSuite) TestFinishTaskSpinAutoRemovesParticipants() {
	project := s.testProject("project-1", "Sprint", "Ana", "Bruno", "Carla")
	project.Tasks = []*models.Task{
		{ID: "t1", Name: "Revisar PR", RequiredParticipants: 2, CreatedAt: s.testTime},
	}
	project.Settings.AutoRemoveParticipants = true
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	s.mockPicker.EXPECT().Pick(3).Return(0)
	s.mockPicker.EXPECT().Pick(2).Return(0)

	spin, err := svc.RequestTaskSpin(s.ctx, &RequestTaskSpinInput{})
	s.Require().NoError(err)

	finish, err := svc.FinishTaskSpin(s.ctx, &FinishTaskSpinInput{
		Task:         spin.Task,
		Participants: spin.Participants,
	})
	s.Require().NoError(err)
	s.Len(finish.RemovedParticipantIDs, 2)

	active, err := svc.GetActiveProject(s.ctx, &GetActiveProjectInput{})
	s.Require().NoError(err)
	s.Len(active.Project.Participants, 1)
}

func (s *RouletteServiceTestSuite) TestCancelledTaskSpinRecordsNothing() {
	project := s.testProject("project-1", "Sprint", "Ana")
	project.Tasks = []*models.Task{
		{ID: "t1", Name: "Deploy", RequiredParticipants: 1, CreatedAt: s.testTime},
	}
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	s.mockPicker.EXPECT().Pick(1).Return(0)

	_, err := svc.RequestTaskSpin(s.ctx, &RequestTaskSpinInput{})
	s.Require().NoError(err)

	finish, err := svc.FinishTaskSpin(s.ctx, &FinishTaskSpinInput{})
	s.Require().NoError(err)
	s.Nil(finish.TaskHistory)

	// The task is still pending after a cancel
	tasks, err := svc.GetTasks(s.ctx, &GetTasksInput{})
	s.Require().NoError(err)
	s.Len(tasks.Pending, 1)
}

func (s *RouletteServiceTestSuite) TestClearTaskHistoryMakesTasksPendingAgain() {
	project := s.testProject("project-1", "Sprint", "Ana")
	project.Tasks = []*models.Task{
		{ID: "t1", Name: "Deploy", RequiredParticipants: 1, CreatedAt: s.testTime},
	}
	project.TaskHistory = []*models.TaskHistory{
		{ID: "th1", TaskID: "t1", TaskName: "Deploy", SelectedAt: s.testTime},
	}
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	_, err := svc.ClearTaskHistory(s.ctx, &ClearTaskHistoryInput{})
	s.Require().NoError(err)

	tasks, err := svc.GetTasks(s.ctx, &GetTasksInput{})
	s.Require().NoError(err)
	s.Len(tasks.Pending, 1)
	s.Empty(tasks.Completed)
}

func (s *RouletteServiceTestSuite) TestClearHistoryKeepsRoster() {
	project := s.testProject("project-1", "Sprint", "Ana")
	project.History = []*models.RouletteHistory{
		{ID: "h1", ParticipantID: "project-1-p1", ParticipantName: "Ana", SelectedAt: s.testTime},
	}
	svc := s.newService([]*models.Project{project}, "project-1", nil)

	_, err := svc.ClearHistory(s.ctx, &ClearHistoryInput{})
	s.Require().NoError(err)

	history, err := svc.GetHistory(s.ctx, &GetHistoryInput{})
	s.Require().NoError(err)
	s.Empty(history.History)

	active, err := svc.GetActiveProject(s.ctx, &GetActiveProjectInput{})
	s.Require().NoError(err)
	s.Len(active.Project.Participants, 1)
}
