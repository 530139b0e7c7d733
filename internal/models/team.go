package models

import (
	"time"
)

// Team represents a reusable group of participants, kept in a global
// registry that is independent of any project. Members are copies, not
// references into project rosters.
type Team struct {
	// ID is the unique identifier for the team
	ID string `json:"id"`

	// Name is the display name of the team
	Name string `json:"name"`

	// Description is an optional free-form description
	Description string `json:"description,omitempty"`

	// Members is the ordered list of participants belonging to the team
	Members []*Participant `json:"members"`

	// Color is the display color token assigned to the team
	Color string `json:"color,omitempty"`

	// CreatedAt is when the team was created
	CreatedAt time.Time `json:"createdAt"`
}
