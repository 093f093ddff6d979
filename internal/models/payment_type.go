package models

// PaymentType is a named payment method referenced by payments.
type PaymentType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
