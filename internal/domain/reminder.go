package domain

import "time"

// ReminderRecord marks that the pre-start reminder for a booking was sent.
// The booking fields are a denormalized snapshot kept for audit display.
type ReminderRecord struct {
	BookingID   string    `json:"booking_id"`
	UserID      int64     `json:"user_id"`
	SentAt      time.Time `json:"sent_at"`
	BookingDate string    `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
	RoomName    string    `json:"room_name"`
}
