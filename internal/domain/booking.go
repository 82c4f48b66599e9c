package domain

import (
	"fmt"
	"time"
)

// Civil date/time layouts used across the stored records.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

type Booking struct {
	ID             string        `json:"id"`
	RoomID         int           `json:"room_id"`
	RoomName       string        `json:"room_name"`
	Date           string        `json:"date"`
	StartTime      string        `json:"start_time"`
	EndTime        string        `json:"end_time"`
	TelegramID     int64         `json:"telegram_id"`
	UserName       string        `json:"user_name"`
	UserCompany    string        `json:"user_company"`
	Purpose        string        `json:"purpose,omitempty"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	CreatedByAdmin int           `json:"created_by_admin,omitempty"`
	IsRecurring    bool          `json:"is_recurring,omitempty"`
	AdminReason    string        `json:"admin_reason,omitempty"`
}

// Key identifies a booking in the reminder log. Records created before IDs
// were introduced fall back to a composite of owner, date and start time.
func (b *Booking) Key() string {
	if b.ID != "" {
		return b.ID
	}
	return fmt.Sprintf("%d_%s_%s", b.TelegramID, b.Date, b.StartTime)
}

// StartsAt combines the booking date and start time into an instant in loc.
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, b.Date+" "+b.StartTime, loc)
}

type CreateBookingInput struct {
	RoomID     int
	Date       string
	StartTime  string
	EndTime    string
	Purpose    string
	TelegramID int64
}

type UpdateBookingInput struct {
	Date        string
	StartTime   string
	EndTime     string
	Purpose     string
	AdminReason string
}

// RecurringRequest is the transient template consumed by the expander.
// Offsets are days relative to the anchor week, 0=Monday .. 6=Sunday.
type RecurringRequest struct {
	Base    Booking
	Offsets []int
	Weeks   int
}
