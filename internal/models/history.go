package models

import (
	"time"
)

// RouletteHistory records a single-participant draw. The participant name
// is a snapshot taken at draw time, not a live reference; renaming or
// removing the participant never alters past records.
type RouletteHistory struct {
	// ID is the unique identifier for the history record
	ID string `json:"id"`

	// ParticipantID is the ID the drawn participant had at draw time
	ParticipantID string `json:"participantId"`

	// ParticipantName is the name the drawn participant had at draw time
	ParticipantName string `json:"participantName"`

	// SelectedAt is when the draw completed
	SelectedAt time.Time `json:"selectedAt"`

	// Removed marks that the participant was taken out of the roster
	// following this draw. This is a soft delete: the record stays.
	Removed bool `json:"removed"`
}

// ParticipantRef is a snapshot copy of a participant's identity, embedded
// in task history records.
type ParticipantRef struct {
	// ID is the participant's ID at draw time
	ID string `json:"id"`

	// Name is the participant's name at draw time
	Name string `json:"name"`
}

// TaskHistory records a task assignment draw. A task is considered
// completed iff a TaskHistory record with its ID exists; there is no
// status field on Task. Records are immutable after creation.
type TaskHistory struct {
	// ID is the unique identifier for the history record
	ID string `json:"id"`

	// Participants are snapshot copies of everyone drawn for the task
	Participants []ParticipantRef `json:"participants"`

	// TaskID is the ID of the assigned task
	TaskID string `json:"taskId"`

	// TaskName is the name the task had at draw time
	TaskName string `json:"taskName"`

	// TaskDescription is the description the task had at draw time
	TaskDescription string `json:"taskDescription,omitempty"`

	// SelectedAt is when the draw completed
	SelectedAt time.Time `json:"selectedAt"`
}
