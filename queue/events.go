package queue

import "time"

// Routing key yang dipublish ke exchange topic.
const (
	KeyBookingCreated     = "booking.created"
	KeyBookingCancelled   = "booking.cancelled"
	KeyTableStatusChanged = "table.status_changed"
)

type BookingEvent struct {
	BookingID  uint      `json:"booking_id"`
	UserID     uint      `json:"user_id"`
	TableID    uint      `json:"table_id"`
	Date       string    `json:"date,omitempty"`
	Time       string    `json:"time,omitempty"`
	People     int       `json:"people,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type TableStatusEvent struct {
	TableID    uint      `json:"table_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
