package models

// Feedback is a participant's score for a talk. The natural key
// (participant_id, talk_id) is unique; writes through the upsert replace
// score and comment in place.
type Feedback struct {
	ID            int64   `json:"id"`
	ParticipantID int64   `json:"participant_id"`
	TalkID        int64   `json:"talk_id"`
	Score         int     `json:"score"`
	Comment       *string `json:"comment,omitempty"`
}

// FeedbackRow is the denormalized list shape with display names.
type FeedbackRow struct {
	Feedback
	ParticipantName string `json:"participant_name"`
	TalkTitle       string `json:"talk_title"`
}
