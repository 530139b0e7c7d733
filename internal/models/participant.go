package models

import (
	"time"
)

// Participant represents a person on the roulette wheel
type Participant struct {
	// ID is the unique identifier for the participant
	ID string `json:"id"`

	// Name is the display name shown on the wheel
	Name string `json:"name"`

	// Color is the display color token assigned to the participant
	Color string `json:"color,omitempty"`

	// CreatedAt is when the participant was added
	CreatedAt time.Time `json:"createdAt"`
}
