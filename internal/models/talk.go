package models

import "time"

// Talk is a single talk scheduled under an event. Time is the wall-clock
// start stored as HH:MM (the column is TIME; the date lives in Date).
// Date is expected to fall within the parent event's range; the store does
// not enforce this.
type Talk struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Room        *string   `json:"room,omitempty"`
	EventID     int64     `json:"event_id"`
	SpeakerID   int64     `json:"speaker_id"`
}

// TalkRow is the denormalized list shape: event and speaker names resolved.
type TalkRow struct {
	Talk
	EventName   string `json:"event_name"`
	SpeakerName string `json:"speaker_name"`
}

// TalkRef is the id/title pair used to populate foreign-key selections.
type TalkRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
