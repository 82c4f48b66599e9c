package domain

import "time"

// Notification is a user-owned recurring message definition. Executions is the
// append-only log of instants it actually fired, one entry per day.
type Notification struct {
	ID          int       `json:"id"`
	UserID      int64     `json:"user_id"`
	MessageText string    `json:"message_text"`
	SendTime    string    `json:"send_time"`
	DaysOfWeek  []int     `json:"days_of_week"`
	WeeksCount  int       `json:"weeks_count"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
	Executions  []string  `json:"executions"`
}

type CreateNotificationInput struct {
	UserID      int64
	MessageText string
	SendTime    string
	DaysOfWeek  []int
	WeeksCount  int
}
