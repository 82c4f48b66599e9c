package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramMessenger is the outbound delivery collaborator. With an empty
// token it degrades to a disabled messenger that only logs, the same way the
// service runs in local development.
type TelegramMessenger struct {
	bot     *tgbotapi.BotAPI
	groupID int64
	logger  logger.Logger
}

func NewTelegramMessenger(token string, groupID int64, logger logger.Logger) (*TelegramMessenger, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, message delivery disabled")
		return &TelegramMessenger{bot: nil, groupID: groupID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramMessenger{bot: bot, groupID: groupID, logger: logger}, nil
}

// Bot exposes the underlying API client for the long-polling front door.
func (m *TelegramMessenger) Bot() *tgbotapi.BotAPI {
	return m.bot
}

func (m *TelegramMessenger) Send(ctx context.Context, chatID int64, text string) (int, error) {
	if m.bot == nil {
		m.logger.Debug("message skipped (bot disabled)", logger.String("text", text))
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	sent, err := m.bot.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}
	return sent.MessageID, nil
}

func (m *TelegramMessenger) Delete(ctx context.Context, chatID int64, messageID int) error {
	if m.bot == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := m.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

// IsGroupMember checks membership in the access-control group.
func (m *TelegramMessenger) IsGroupMember(ctx context.Context, userID int64) (bool, error) {
	if m.bot == nil {
		m.logger.Debug("membership check skipped (bot disabled)", logger.Int64("user_id", userID))
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	member, err := m.bot.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: m.groupID,
			UserID: userID,
		},
	})
	if err != nil {
		return false, fmt.Errorf("get chat member: %w", err)
	}

	switch member.Status {
	case "creator", "administrator", "member":
		return true, nil
	}
	return false, nil
}
