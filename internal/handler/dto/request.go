package dto

type AuthRequest struct {
	TelegramID int64 `json:"telegram_id" binding:"required"`
}

type RegisterUserRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company" binding:"required"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company" binding:"required"`
}

type CreateBookingRequest struct {
	RoomID    int    `json:"room_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Purpose   string `json:"purpose"`
}

type UpdateBookingRequest struct {
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	Purpose     string `json:"purpose"`
	AdminReason string `json:"admin_reason"`
}

type DeleteBookingRequest struct {
	Reason string `json:"reason"`
}

type CreateRecurringRequest struct {
	StartDate  string   `json:"start_date" binding:"required"`
	StartTime  string   `json:"start_time" binding:"required"`
	EndTime    string   `json:"end_time" binding:"required"`
	Purpose    string   `json:"purpose"`
	DaysOfWeek []string `json:"days_of_week" binding:"required"`
	WeeksCount int      `json:"weeks_count" binding:"required,gt=0"`
}

type CreateNotificationRequest struct {
	MessageText string `json:"message_text" binding:"required"`
	SendTime    string `json:"send_time" binding:"required"`
	DaysOfWeek  []int  `json:"days_of_week" binding:"required"`
	WeeksCount  int    `json:"weeks_count" binding:"required,gt=0"`
}
