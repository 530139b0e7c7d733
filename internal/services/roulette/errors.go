package roulette

import "errors"

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilProjectRepo   = errors.New("project repository cannot be nil")
	ErrNilTeamRepo      = errors.New("team repository cannot be nil")
	ErrNilPicker        = errors.New("picker cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")

	ErrEmptyName           = errors.New("name cannot be empty")
	ErrNoActiveProject     = errors.New("no active project")
	ErrProjectNotFound     = errors.New("project not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrMemberNotFound      = errors.New("team member not found")

	ErrSpinInProgress   = errors.New("a spin is already in progress")
	ErrNoSpinInProgress = errors.New("no spin is in progress")
	ErrNoParticipants   = errors.New("no participants to draw from")
	ErrNoPendingTask    = errors.New("no pending task to draw for")
)
