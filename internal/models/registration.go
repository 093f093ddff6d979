package models

import "time"

// Registration enrolls a participant in a talk. The composite key
// (participant_id, talk_id) allows at most one registration per pair.
type Registration struct {
	ParticipantID    int64     `json:"participant_id"`
	TalkID           int64     `json:"talk_id"`
	RegistrationDate time.Time `json:"registration_date"`
}

// RegistrationRow is the denormalized list shape with display names.
type RegistrationRow struct {
	Registration
	ParticipantName string `json:"participant_name"`
	TalkTitle       string `json:"talk_title"`
}
