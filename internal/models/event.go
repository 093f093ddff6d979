package models

import "time"

// Event is a conference event run by an organizer.
// EndDate, when present, is expected to be on or after StartDate; the store
// does not enforce this.
type Event struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	OrganizerID int64      `json:"organizer_id"`
}

// EventRow is the denormalized list shape: organizer id resolved to a name.
type EventRow struct {
	Event
	OrganizerName string `json:"organizer_name"`
}

// EventRef is the id/name pair used to populate foreign-key selections.
type EventRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
