package models

import (
	"time"
)

// DefaultAnimationDurationMs is the default wheel animation duration
// handed to the UI layer, in milliseconds.
const DefaultAnimationDurationMs = 5000

// ProjectSettings holds per-project draw behavior switches
type ProjectSettings struct {
	// AutoRemoveParticipants removes drawn participants from the roster
	// when a task draw finishes
	AutoRemoveParticipants bool `json:"autoRemoveParticipants"`

	// AnimationDurationMs is how long the UI spins the wheel, in milliseconds
	AnimationDurationMs int `json:"animationDuration"`

	// AllowDuplicateParticipantsInTask lets one participant be drawn more
	// than once for the same task (sampling with replacement)
	AllowDuplicateParticipantsInTask bool `json:"allowDuplicateParticipantsInTask"`
}

// DefaultSettings returns the settings a freshly created project starts with
func DefaultSettings() ProjectSettings {
	return ProjectSettings{
		AutoRemoveParticipants:           false,
		AnimationDurationMs:              DefaultAnimationDurationMs,
		AllowDuplicateParticipantsInTask: false,
	}
}

// Project owns one wheel's worth of state: a participant roster, a task
// list, and the draw history ledgers. Exactly one project is active at a
// time; all draw and roster operations target the active project.
type Project struct {
	// ID is the unique identifier for the project
	ID string `json:"id"`

	// Name is the display name of the project
	Name string `json:"name"`

	// Description is an optional free-form description
	Description string `json:"description,omitempty"`

	// Participants is the active roster for this project's wheel
	Participants []*Participant `json:"participants"`

	// Tasks is the ordered task list; the first task without a matching
	// TaskHistory record is the next pending task
	Tasks []*Task `json:"tasks"`

	// History records completed single-participant draws, newest first
	History []*RouletteHistory `json:"history"`

	// TaskHistory records completed task assignments, newest first
	TaskHistory []*TaskHistory `json:"taskHistory"`

	// Settings holds the project's draw behavior switches
	Settings ProjectSettings `json:"settings"`

	// CreatedAt is when the project was created
	CreatedAt time.Time `json:"createdAt"`

	// LastModified is when the project last changed
	LastModified time.Time `json:"lastModified"`
}
