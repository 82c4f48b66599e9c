package domain

import "time"

type User struct {
	TelegramID   int64     `json:"telegram_id"`
	Name         string    `json:"name"`
	Company      string    `json:"company"`
	RegisteredAt time.Time `json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterUserInput struct {
	TelegramID int64
	Name       string
	Company    string
}
