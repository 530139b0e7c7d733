package roulette

import (
	"github.com/willianszwy/roleta-sub000/internal/common/clock"
	"github.com/willianszwy/roleta-sub000/internal/common/uuid"
	"github.com/willianszwy/roleta-sub000/internal/models"
	"github.com/willianszwy/roleta-sub000/internal/roulette"
	projectRepo "github.com/willianszwy/roleta-sub000/internal/repositories/project"
	teamRepo "github.com/willianszwy/roleta-sub000/internal/repositories/team"
)

// Config holds configuration for the roulette service
type Config struct {
	// Repository dependencies
	ProjectRepo projectRepo.Repository
	TeamRepo    teamRepo.Repository

	// Service dependencies
	Picker        roulette.Picker
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateProjectInput contains parameters for creating a project
type CreateProjectInput struct {
	// Name is the display name; rejected when it trims to empty
	Name string

	// Description is an optional free-form description
	Description string
}

// CreateProjectOutput contains the created project
type CreateProjectOutput struct {
	Project *models.Project
}

// DeleteProjectInput contains parameters for deleting a project
type DeleteProjectInput struct {
	ProjectID string
}

// DeleteProjectOutput contains the result of deleting a project
type DeleteProjectOutput struct {
	// ActiveProjectID is the pointer after the delete; empty when the
	// registry is now empty
	ActiveProjectID string
}

// SwitchProjectInput contains parameters for switching the active project
type SwitchProjectInput struct {
	ProjectID string
}

// SwitchProjectOutput contains the newly active project
type SwitchProjectOutput struct {
	Project *models.Project
}

// RenameProjectInput contains parameters for renaming a project
type RenameProjectInput struct {
	ProjectID string
	Name      string
}

// RenameProjectOutput contains the renamed project
type RenameProjectOutput struct {
	Project *models.Project
}

// GetProjectsInput contains parameters for listing projects
type GetProjectsInput struct{}

// GetProjectsOutput contains the project registry
type GetProjectsOutput struct {
	Projects        []*models.Project
	ActiveProjectID string
}

// GetActiveProjectInput contains parameters for reading the active project
type GetActiveProjectInput struct{}

// GetActiveProjectOutput contains the active project; Project is nil
// when the registry is empty
type GetActiveProjectOutput struct {
	Project *models.Project
}

// UpdateSettingsInput contains the replacement settings for the active project
type UpdateSettingsInput struct {
	Settings models.ProjectSettings
}

// UpdateSettingsOutput contains the updated project
type UpdateSettingsOutput struct {
	Project *models.Project
}

// AddParticipantInput contains parameters for adding a participant
type AddParticipantInput struct {
	Name string
}

// AddParticipantOutput contains the added participant
type AddParticipantOutput struct {
	Participant *models.Participant
}

// AddParticipantsBulkInput contains a newline- or comma-delimited batch
// of participant names
type AddParticipantsBulkInput struct {
	Raw string
}

// AddParticipantsBulkOutput contains the added participants, in input order
type AddParticipantsBulkOutput struct {
	Participants []*models.Participant
}

// RemoveParticipantInput contains parameters for removing a participant
type RemoveParticipantInput struct {
	ParticipantID string
}

// RemoveParticipantOutput contains the result of removing a participant
type RemoveParticipantOutput struct{}

// ClearParticipantsInput contains parameters for emptying the roster
type ClearParticipantsInput struct{}

// ClearParticipantsOutput contains the result of emptying the roster
type ClearParticipantsOutput struct{}

// RemoveFromRouletteAfterSpinInput contains parameters for the
// remove-after-spin operation
type RemoveFromRouletteAfterSpinInput struct {
	ParticipantID string
}

// RemoveFromRouletteAfterSpinOutput contains the result of the
// remove-after-spin operation
type RemoveFromRouletteAfterSpinOutput struct {
	// HistoryMarked indicates a history entry was soft-deleted
	HistoryMarked bool
}

// RestoreParticipantInput contains parameters for restoring a removed
// participant by name
type RestoreParticipantInput struct {
	Name string
}

// RestoreParticipantOutput contains the restored participant
type RestoreParticipantOutput struct {
	// Participant is a fresh entity carrying the old name
	Participant *models.Participant

	// HistoryRestored indicates a soft-deleted history entry was flipped back
	HistoryRestored bool
}

// AddTaskInput contains parameters for adding a task
type AddTaskInput struct {
	Name                 string
	Description          string
	RequiredParticipants int
}

// AddTaskOutput contains the added task
type AddTaskOutput struct {
	Task *models.Task
}

// AddTasksBulkInput contains newline-delimited pipe-format task lines
type AddTasksBulkInput struct {
	Lines string
}

// AddTasksBulkOutput contains the added tasks, in input order
type AddTasksBulkOutput struct {
	Tasks []*models.Task
}

// RemoveTaskInput contains parameters for removing a task
type RemoveTaskInput struct {
	TaskID string
}

// RemoveTaskOutput contains the result of removing a task
type RemoveTaskOutput struct{}

// ClearTasksInput contains parameters for emptying the task list
type ClearTasksInput struct{}

// ClearTasksOutput contains the result of emptying the task list
type ClearTasksOutput struct{}

// GetTasksInput contains parameters for listing tasks
type GetTasksInput struct{}

// GetTasksOutput partitions tasks by task-history membership
type GetTasksOutput struct {
	Pending   []*models.Task
	Completed []*models.Task
}

// RequestSpinInput contains parameters for requesting a participant draw
type RequestSpinInput struct{}

// RequestSpinOutput contains the selected participant
type RequestSpinOutput struct {
	Participant *models.Participant
}

// FinishSpinInput contains the selection to commit; nil cancels the spin
type FinishSpinInput struct {
	Participant *models.Participant
}

// FinishSpinOutput contains the committed history record; nil on cancel
type FinishSpinOutput struct {
	History *models.RouletteHistory
}

// RequestTaskSpinInput contains parameters for requesting a task draw
type RequestTaskSpinInput struct{}

// RequestTaskSpinOutput contains the pending task and the drawn
// participants. Participants may be shorter than the task's required
// count when the roster is smaller.
type RequestTaskSpinOutput struct {
	Task         *models.Task
	Participants []*models.Participant
}

// FinishTaskSpinInput contains the assignment to commit; a nil task
// cancels the spin
type FinishTaskSpinInput struct {
	Task         *models.Task
	Participants []*models.Participant
}

// FinishTaskSpinOutput contains the committed task-history record; nil
// on cancel
type FinishTaskSpinOutput struct {
	TaskHistory *models.TaskHistory

	// RemovedParticipantIDs lists roster removals performed by the
	// auto-remove setting
	RemovedParticipantIDs []string
}

// GetDrawStateInput contains parameters for reading the draw state
type GetDrawStateInput struct{}

// GetDrawStateOutput reports the spin slot and last committed results
type GetDrawStateOutput struct {
	// Spinning indicates a draw is in flight between request and finish
	Spinning bool

	// LastWinner is the participant committed by the latest FinishSpin,
	// cleared by the next RequestSpin
	LastWinner *models.Participant

	// LastAssignment is the record committed by the latest
	// FinishTaskSpin, cleared by the next RequestTaskSpin
	LastAssignment *models.TaskHistory
}

// GetHistoryInput contains parameters for reading draw history
type GetHistoryInput struct{}

// GetHistoryOutput contains the draw history, newest first
type GetHistoryOutput struct {
	History []*models.RouletteHistory
}

// GetTaskHistoryInput contains parameters for reading task history
type GetTaskHistoryInput struct{}

// GetTaskHistoryOutput contains the task history, newest first
type GetTaskHistoryOutput struct {
	TaskHistory []*models.TaskHistory
}

// ClearHistoryInput contains parameters for clearing draw history
type ClearHistoryInput struct{}

// ClearHistoryOutput contains the result of clearing draw history
type ClearHistoryOutput struct{}

// ClearTaskHistoryInput contains parameters for clearing task history
type ClearTaskHistoryInput struct{}

// ClearTaskHistoryOutput contains the result of clearing task history
type ClearTaskHistoryOutput struct{}

// AddTeamInput contains parameters for creating a team
type AddTeamInput struct {
	Name        string
	Description string
}

// AddTeamOutput contains the created team
type AddTeamOutput struct {
	Team *models.Team
}

// EditTeamInput contains parameters for editing a team
type EditTeamInput struct {
	TeamID      string
	Name        string
	Description string
}

// EditTeamOutput contains the edited team
type EditTeamOutput struct {
	Team *models.Team
}

// RemoveTeamInput contains parameters for deleting a team
type RemoveTeamInput struct {
	TeamID string
}

// RemoveTeamOutput contains the result of deleting a team
type RemoveTeamOutput struct{}

// AddMemberToTeamInput contains parameters for adding a team member
type AddMemberToTeamInput struct {
	TeamID string
	Name   string
}

// AddMemberToTeamOutput contains the added member
type AddMemberToTeamOutput struct {
	Member *models.Participant
}

// RemoveMemberFromTeamInput contains parameters for removing a team member
type RemoveMemberFromTeamInput struct {
	TeamID   string
	MemberID string
}

// RemoveMemberFromTeamOutput contains the result of removing a team member
type RemoveMemberFromTeamOutput struct{}

// GetTeamsInput contains parameters for listing teams
type GetTeamsInput struct{}

// GetTeamsOutput contains the global team registry
type GetTeamsOutput struct {
	Teams []*models.Team
}

// ImportTeamToProjectInput contains parameters for copying a team's
// members into the active roster
type ImportTeamToProjectInput struct {
	TeamID string
}

// ImportTeamToProjectOutput contains the result of a team import
type ImportTeamToProjectOutput struct {
	// Imported are the fresh participant copies added to the roster
	Imported []*models.Participant

	// Skipped lists member names that collided with existing roster
	// names and were left out
	Skipped []string
}
