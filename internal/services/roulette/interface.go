package roulette

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/willianszwy/roleta-sub000/internal/services/roulette Service

// Service defines the interface for roulette state operations. All
// roster, task, draw, and history operations target the active project.
type Service interface {
	// CreateProject appends a new empty project and makes it active
	CreateProject(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error)

	// DeleteProject removes a project; deleting the active project falls
	// back to the first remaining project or to the empty state
	DeleteProject(ctx context.Context, input *DeleteProjectInput) (*DeleteProjectOutput, error)

	// SwitchProject changes the active project pointer
	SwitchProject(ctx context.Context, input *SwitchProjectInput) (*SwitchProjectOutput, error)

	// RenameProject updates a project's name
	RenameProject(ctx context.Context, input *RenameProjectInput) (*RenameProjectOutput, error)

	// GetProjects returns the project registry and the active pointer
	GetProjects(ctx context.Context, input *GetProjectsInput) (*GetProjectsOutput, error)

	// GetActiveProject returns the active project, or nil when none exists
	GetActiveProject(ctx context.Context, input *GetActiveProjectInput) (*GetActiveProjectOutput, error)

	// UpdateSettings replaces the active project's settings
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)

	// AddParticipant adds one participant to the active roster
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error)

	// AddParticipantsBulk adds a newline- or comma-delimited batch of
	// participants to the active roster
	AddParticipantsBulk(ctx context.Context, input *AddParticipantsBulkInput) (*AddParticipantsBulkOutput, error)

	// RemoveParticipant removes one participant from the active roster
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error)

	// ClearParticipants empties the active roster
	ClearParticipants(ctx context.Context, input *ClearParticipantsInput) (*ClearParticipantsOutput, error)

	// RemoveFromRouletteAfterSpin removes a participant from the roster
	// and soft-deletes their most recent history entry
	RemoveFromRouletteAfterSpin(ctx context.Context, input *RemoveFromRouletteAfterSpinInput) (*RemoveFromRouletteAfterSpinOutput, error)

	// RestoreParticipant re-adds a removed participant by name, with a
	// fresh identity, and restores their soft-deleted history entry
	RestoreParticipant(ctx context.Context, input *RestoreParticipantInput) (*RestoreParticipantOutput, error)

	// AddTask adds one task to the active project
	AddTask(ctx context.Context, input *AddTaskInput) (*AddTaskOutput, error)

	// AddTasksBulk adds a batch of pipe-delimited task lines
	AddTasksBulk(ctx context.Context, input *AddTasksBulkInput) (*AddTasksBulkOutput, error)

	// RemoveTask removes one task from the active project
	RemoveTask(ctx context.Context, input *RemoveTaskInput) (*RemoveTaskOutput, error)

	// ClearTasks empties the active project's task list
	ClearTasks(ctx context.Context, input *ClearTasksInput) (*ClearTasksOutput, error)

	// GetTasks partitions the active project's tasks into pending and
	// completed by task-history membership
	GetTasks(ctx context.Context, input *GetTasksInput) (*GetTasksOutput, error)

	// RequestSpin performs the random selection for a participant draw
	// and marks the spin slot busy until finished or cancelled
	RequestSpin(ctx context.Context, input *RequestSpinInput) (*RequestSpinOutput, error)

	// FinishSpin commits a participant draw into history; a nil
	// participant cancels the spin without recording anything
	FinishSpin(ctx context.Context, input *FinishSpinInput) (*FinishSpinOutput, error)

	// RequestTaskSpin selects the next pending task and draws its
	// required participants
	RequestTaskSpin(ctx context.Context, input *RequestTaskSpinInput) (*RequestTaskSpinOutput, error)

	// FinishTaskSpin commits a task assignment into task history; a nil
	// task cancels the spin without recording anything
	FinishTaskSpin(ctx context.Context, input *FinishTaskSpinInput) (*FinishTaskSpinOutput, error)

	// GetDrawState reports the spin slot and the last committed results
	GetDrawState(ctx context.Context, input *GetDrawStateInput) (*GetDrawStateOutput, error)

	// GetHistory returns the active project's draw history, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// GetTaskHistory returns the active project's task assignments, newest first
	GetTaskHistory(ctx context.Context, input *GetTaskHistoryInput) (*GetTaskHistoryOutput, error)

	// ClearHistory empties the active project's draw history
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)

	// ClearTaskHistory empties the active project's task history
	ClearTaskHistory(ctx context.Context, input *ClearTaskHistoryInput) (*ClearTaskHistoryOutput, error)

	// AddTeam creates a team in the global registry
	AddTeam(ctx context.Context, input *AddTeamInput) (*AddTeamOutput, error)

	// EditTeam updates a team's name and description
	EditTeam(ctx context.Context, input *EditTeamInput) (*EditTeamOutput, error)

	// RemoveTeam deletes a team from the global registry
	RemoveTeam(ctx context.Context, input *RemoveTeamInput) (*RemoveTeamOutput, error)

	// AddMemberToTeam adds a member to a team
	AddMemberToTeam(ctx context.Context, input *AddMemberToTeamInput) (*AddMemberToTeamOutput, error)

	// RemoveMemberFromTeam removes a member from a team
	RemoveMemberFromTeam(ctx context.Context, input *RemoveMemberFromTeamInput) (*RemoveMemberFromTeamOutput, error)

	// GetTeams returns the global team registry
	GetTeams(ctx context.Context, input *GetTeamsInput) (*GetTeamsOutput, error)

	// ImportTeamToProject copies a team's members into the active
	// roster, skipping names already present
	ImportTeamToProject(ctx context.Context, input *ImportTeamToProjectInput) (*ImportTeamToProjectOutput, error)
}
