package model

import "time"

// BookingRecord is a committed reservation against a (museum, date) slot.
// Records are append-only: once written they are never mutated, and the
// persisted file reproduces them in commit order on reload.
type BookingRecord struct {
	BookingNumber string    `json:"booking_number" bson:"_id"`
	VisitorName   string    `json:"name" bson:"name"`
	Museum        string    `json:"museum" bson:"museum"`
	Date          string    `json:"date" bson:"date"`
	Tickets       int       `json:"tickets" bson:"tickets"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// ReservationRequest is the client payload for a reserve call. Museum and
// date membership in the catalog is checked by the service, not by tags.
type ReservationRequest struct {
	VisitorName string `json:"name" validate:"required,min=2,max=100"`
	Museum      string `json:"museum" validate:"required,min=2,max=100"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Tickets     int    `json:"tickets" validate:"required,min=1,max=2"`
}

// Confirmation is the success result of a reserve call: the issued booking
// number plus the slot's remaining capacity after the commit.
type Confirmation struct {
	BookingNumber    string `json:"booking_number"`
	Museum           string `json:"museum"`
	Date             string `json:"date"`
	Tickets          int    `json:"tickets"`
	RemainingTickets int    `json:"remaining_tickets"`
}
