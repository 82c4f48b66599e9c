package ports

import "context"

// Messenger is the outbound chat delivery collaborator. Failures are logged
// by callers and treated as "not sent"; nothing here retries.
type Messenger interface {
	Send(ctx context.Context, chatID int64, text string) (int, error)
	Delete(ctx context.Context, chatID int64, messageID int) error
	IsGroupMember(ctx context.Context, userID int64) (bool, error)
}

// SequenceSender starts the multi-message notification sequence for a user.
// The sequence runs in the background on timers owned by the implementation.
type SequenceSender interface {
	Start(chatID int64, messageText string)
}
