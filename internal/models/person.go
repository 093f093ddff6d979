package models

// Role represents a person's role on the platform.
type Role string

const (
	RoleParticipant Role = "Participant"
	RoleOrganizer   Role = "Organizer"
	RoleSpeaker     Role = "Speaker"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleParticipant, RoleOrganizer, RoleSpeaker:
		return true
	}
	return false
}

// CanOrganize reports whether a person with this role may organize events.
func (r Role) CanOrganize() bool {
	return r == RoleOrganizer
}

// CanSpeak reports whether a person with this role may be a talk speaker.
// Organizers double as speakers.
func (r Role) CanSpeak() bool {
	return r == RoleOrganizer || r == RoleSpeaker
}

// Person is a participant, organizer or speaker.
type Person struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Role  Role    `json:"role"`
}

// PersonRef is the id/name pair used to populate foreign-key selections.
type PersonRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
