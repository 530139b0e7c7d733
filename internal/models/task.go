package models

import (
	"time"
)

const (
	// MinRequiredParticipants is the smallest number of participants a task can ask for
	MinRequiredParticipants = 1

	// MaxRequiredParticipants is the largest number of participants a task can ask for
	MaxRequiredParticipants = 10
)

// Task represents a unit of work that gets assigned to drawn participants
type Task struct {
	// ID is the unique identifier for the task
	ID string `json:"id"`

	// Name is the display name of the task
	Name string `json:"name"`

	// Description is an optional free-form description
	Description string `json:"description,omitempty"`

	// RequiredParticipants is how many distinct participants must be drawn
	// together for this task, always within [MinRequiredParticipants, MaxRequiredParticipants]
	RequiredParticipants int `json:"requiredParticipants"`

	// Color is the display color token assigned to the task
	Color string `json:"color,omitempty"`

	// CreatedAt is when the task was added
	CreatedAt time.Time `json:"createdAt"`
}
