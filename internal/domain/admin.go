package domain

import "time"

// Admin privilege tiers. Higher levels include the powers of the lower ones.
const (
	AdminLevelNone      = 0
	AdminLevelBasic     = 1
	AdminLevelModerator = 2
	AdminLevelRoot      = 3
)

type Admin struct {
	TelegramID int64     `json:"telegram_id"`
	Level      int       `json:"level"`
	AddedBy    string    `json:"added_by"`
	AddedAt    time.Time `json:"added_at"`
}

// CanManageAdmin reports whether an admin of actorLevel may add or remove an
// admin of targetLevel. Moderators and above manage strictly lower levels.
func CanManageAdmin(actorLevel, targetLevel int) bool {
	return actorLevel >= AdminLevelModerator && actorLevel > targetLevel
}
