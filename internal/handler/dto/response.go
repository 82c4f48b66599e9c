package dto

import (
	"time"

	"github.com/sapateam/roombooker/internal/domain"
)

type AuthResponse struct {
	Token      string `json:"token"`
	Registered bool   `json:"registered"`
	AdminLevel int    `json:"admin_level"`
}

type UserResponse struct {
	TelegramID   int64  `json:"telegram_id"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	RegisteredAt string `json:"registered_at"`
}

type RoomResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location,omitempty"`
	CurrentStatus string `json:"current_status"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	RoomID      int    `json:"room_id"`
	RoomName    string `json:"room_name"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	UserName    string `json:"user_name"`
	Purpose     string `json:"purpose,omitempty"`
	Status      string `json:"status"`
	IsRecurring bool   `json:"is_recurring,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type NotificationResponse struct {
	ID          int    `json:"id"`
	MessageText string `json:"message_text"`
	SendTime    string `json:"send_time"`
	DaysOfWeek  []int  `json:"days_of_week"`
	WeeksCount  int    `json:"weeks_count"`
	CreatedAt   string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		TelegramID:   u.TelegramID,
		Name:         u.Name,
		Company:      u.Company,
		RegisteredAt: u.RegisteredAt.Format(time.RFC3339),
	}
}

// ToRoomResponse localizes the room for lang ("ru" or "en"); an empty lang
// falls back to the default names.
func ToRoomResponse(r *domain.RoomWithStatus, lang string) RoomResponse {
	return RoomResponse{
		ID:            r.ID,
		Name:          r.LocalizedName(lang),
		Location:      r.LocalizedLocation(lang),
		CurrentStatus: string(r.CurrentStatus),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		RoomID:      b.RoomID,
		RoomName:    b.RoomName,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		UserName:    b.UserName,
		Purpose:     b.Purpose,
		Status:      string(b.Status),
		IsRecurring: b.IsRecurring,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		MessageText: n.MessageText,
		SendTime:    n.SendTime,
		DaysOfWeek:  n.DaysOfWeek,
		WeeksCount:  n.WeeksCount,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
	}
}
