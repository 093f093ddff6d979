package models

// PaymentStatus values accepted by the payments table.
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusConfirmed = "Confirmed"
	PaymentStatusCanceled  = "Canceled"
)

// Payment is a participant's payment toward an event.
type Payment struct {
	ID            int64   `json:"id"`
	ParticipantID int64   `json:"participant_id"`
	EventID       int64   `json:"event_id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	PaymentTypeID *int64  `json:"payment_type_id,omitempty"`
}

// PaymentRow is the denormalized list shape with display names.
type PaymentRow struct {
	Payment
	ParticipantName string  `json:"participant_name"`
	EventName       string  `json:"event_name"`
	PaymentTypeName *string `json:"payment_type_name,omitempty"`
}
