package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sapateam/roombooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	startCooldown = 10 * time.Second
	replyTTL      = 5 * time.Minute
	errorTTL      = time.Minute
)

type AdminSvc interface {
	Level(ctx context.Context, telegramID int64) (int, error)
	Add(ctx context.Context, telegramID int64, level int, addedBy int64) error
	FormatList(ctx context.Context) (string, error)
	ClearSystem(ctx context.Context, actorID int64) error
}

type MembershipChecker interface {
	IsGroupMember(ctx context.Context, userID int64) (bool, error)
}

// Deleter owns delayed message removal, so bot replies are cleaned up even
// though the handler goroutine has long returned.
type Deleter interface {
	ScheduleDelete(chatID int64, messageID int, delay time.Duration)
}

// Bot is the telegram front door: /start, /help and the inline admin menu.
type Bot struct {
	api        *tgbotapi.BotAPI
	admins     AdminSvc
	membership MembershipChecker
	deleter    Deleter
	webAppURL  string
	logger     logger.Logger

	mu        sync.Mutex
	lastStart map[int64]time.Time
	// pending add-admin dialogs, keyed by the admin running one
	dialogs map[int64]*adminDialog
}

type adminDialog struct {
	newAdminID int64
	awaitingID bool
}

func New(
	api *tgbotapi.BotAPI,
	admins AdminSvc,
	membership MembershipChecker,
	deleter Deleter,
	webAppURL string,
	logger logger.Logger,
) *Bot {
	return &Bot{
		api:        api,
		admins:     admins,
		membership: membership,
		deleter:    deleter,
		webAppURL:  webAppURL,
		logger:     logger,
		lastStart:  make(map[int64]time.Time),
		dialogs:    make(map[int64]*adminDialog),
	}
}

// Run consumes the long-polling update stream until ctx is cancelled.
// A nil api (no bot token configured) disables the front door entirely.
func (b *Bot) Run(ctx context.Context) {
	if b.api == nil {
		b.logger.Warn("telegram bot disabled, no token configured")
		return
	}

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := b.api.GetUpdatesChan(updateCfg)

	b.logger.Info("telegram bot started", logger.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.Message != nil:
		b.handleText(ctx, update.Message)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "help":
		b.handleHelp(msg)
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	firstName := msg.From.FirstName
	if firstName == "" {
		firstName = "Пользователь"
	}

	if !b.startAllowed(userID) {
		b.logger.Debug("start command ignored, spam protection", logger.Int64("user_id", userID))
		return
	}

	member, err := b.membership.IsGroupMember(ctx, userID)
	if err != nil {
		b.logger.Error("membership check failed",
			logger.Int64("user_id", userID),
			logger.String("error", err.Error()),
		)
		b.send(msg.Chat.ID, "❌ Произошла ошибка. Попробуйте еще раз через несколько секунд.", nil, errorTTL)
		return
	}

	if !member {
		denied := fmt.Sprintf(
			"👋 Здравствуйте, %s!\n\n"+
				"🔒 Доступ к системе бронирования ограничен только для участников группы Sapa Group.\n\n"+
				"📞 Для получения доступа обратитесь к администратору.",
			firstName,
		)
		b.send(msg.Chat.ID, denied, nil, replyTTL)
		b.logger.Warn("access denied, not a group member", logger.Int64("user_id", userID))
		return
	}

	level, err := b.admins.Level(ctx, userID)
	if err != nil {
		b.logger.Error("admin level lookup failed",
			logger.Int64("user_id", userID),
			logger.String("error", err.Error()),
		)
		level = domain.AdminLevelNone
	}

	b.send(msg.Chat.ID, b.greetingText(firstName, level), b.startKeyboard(userID, level), replyTTL)
	b.logger.Info("access granted", logger.Int64("user_id", userID))
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	helpText := "✨ <b>Бот системы бронирования Sapa Group</b> ✨\n\n" +
		"📋 <b>Доступные команды:</b>\n" +
		"/start - Запустить бота и получить доступ к веб-приложению\n" +
		"/help - Показать это сообщение помощи\n\n" +
		"💡 <b>Как пользоваться:</b>\n" +
		"1. Нажмите /start\n" +
		"2. Выберите 'Открыть веб-приложение'\n" +
		"3. Забронируйте переговорную!\n\n" +
		"❓ По вопросам обращайтесь к администратору."

	b.send(msg.Chat.ID, helpText, nil, replyTTL)
}

// handleText feeds free-form input into a pending add-admin dialog.
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	b.mu.Lock()
	dialog, active := b.dialogs[userID]
	awaiting := active && dialog.awaitingID
	b.mu.Unlock()

	if !awaiting {
		return
	}

	level, err := b.admins.Level(ctx, userID)
	if err != nil || level < domain.AdminLevelModerator {
		b.endDialog(userID)
		b.send(msg.Chat.ID, "❌ Недостаточно прав", nil, 0)
		return
	}

	newAdminID, err := strconv.ParseInt(strings.TrimSpace(msg.Text), 10, 64)
	if err != nil {
		b.send(msg.Chat.ID, "❌ Неверный формат ID. Введите числовой Telegram ID:",
			cancelKeyboard(), 0)
		return
	}

	b.mu.Lock()
	dialog.newAdminID = newAdminID
	dialog.awaitingID = false
	b.mu.Unlock()

	b.send(msg.Chat.ID,
		fmt.Sprintf("🔹 ID: %d\n\n🎚️ Выберите уровень доступа:", newAdminID),
		levelKeyboard(level), 0)
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.logger.Debug("callback ack failed", logger.String("error", err.Error()))
	}

	userID := query.From.ID
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	level, err := b.admins.Level(ctx, userID)
	if err != nil {
		b.logger.Error("admin level lookup failed",
			logger.Int64("user_id", userID),
			logger.String("error", err.Error()),
		)
		return
	}

	switch data := query.Data; {
	case data == "add_admin":
		if level < domain.AdminLevelModerator {
			b.edit(chatID, messageID, "❌ Недостаточно прав для добавления администратора", nil)
			return
		}
		b.mu.Lock()
		b.dialogs[userID] = &adminDialog{awaitingID: true}
		b.mu.Unlock()
		b.edit(chatID, messageID,
			"👨‍💼 Добавление нового администратора\n\n📝 Введите Telegram ID нового администратора:",
			cancelKeyboard())

	case data == "list_admins":
		if level < domain.AdminLevelModerator {
			return
		}
		list, err := b.admins.FormatList(ctx)
		if err != nil {
			b.logger.Error("admin list failed", logger.String("error", err.Error()))
			return
		}
		b.edit(chatID, messageID,
			fmt.Sprintf("📋 Список администраторов:\n\n%s", list),
			backKeyboard())

	case data == "clear_system":
		if level < domain.AdminLevelRoot {
			return
		}
		b.edit(chatID, messageID,
			"⚠️ ВНИМАНИЕ! Это действие удалит:\n• Все бронирования\n\nВы уверены?",
			&inlineKeyboard{InlineKeyboard: [][]keyboardButton{
				{{Text: "✅ Да, очистить всё", CallbackData: "confirm_clear_system"}},
				{{Text: "❌ Отмена", CallbackData: "back_to_start"}},
			}})

	case data == "confirm_clear_system":
		if level < domain.AdminLevelRoot {
			b.edit(chatID, messageID, "❌ Недостаточно прав", nil)
			return
		}
		if err := b.admins.ClearSystem(ctx, userID); err != nil {
			b.logger.Error("system clear failed",
				logger.Int64("user_id", userID),
				logger.String("error", err.Error()),
			)
			b.edit(chatID, messageID, "❌ Ошибка при очистке системы", backKeyboard())
			return
		}
		b.edit(chatID, messageID,
			"✅ Система полностью очищена!\n\nУдалено:\n• Все бронирования",
			backKeyboard())

	case data == "cancel_admin", data == "back_to_start":
		b.endDialog(userID)
		firstName := query.From.FirstName
		if firstName == "" {
			firstName = "Пользователь"
		}
		b.edit(chatID, messageID, b.greetingText(firstName, level), b.startKeyboard(userID, level))

	case strings.HasPrefix(data, "level_"):
		b.finishAddAdmin(ctx, query)
	}
}

func (b *Bot) finishAddAdmin(ctx context.Context, query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	b.mu.Lock()
	dialog, active := b.dialogs[userID]
	delete(b.dialogs, userID)
	b.mu.Unlock()

	if !active || dialog.newAdminID == 0 {
		b.edit(chatID, messageID, "❌ Ошибка: ID не найден", nil)
		return
	}

	newLevel := domain.AdminLevelBasic
	switch query.Data {
	case "level_2":
		newLevel = domain.AdminLevelModerator
	case "level_3":
		newLevel = domain.AdminLevelRoot
	}

	if err := b.admins.Add(ctx, dialog.newAdminID, newLevel, userID); err != nil {
		b.logger.Error("admin add failed",
			logger.Int64("new_admin_id", dialog.newAdminID),
			logger.Int("level", newLevel),
			logger.String("error", err.Error()),
		)
		b.edit(chatID, messageID, fmt.Sprintf("❌ Ошибка: %s", err.Error()), nil)
		return
	}

	titles := map[int]string{
		domain.AdminLevelRoot:      "Главный админ",
		domain.AdminLevelModerator: "Админ-модератор",
		domain.AdminLevelBasic:     "Админ",
	}
	b.edit(chatID, messageID, fmt.Sprintf(
		"✅ Администратор добавлен!\n\n👤 ID: %d\n🔹 Уровень: %s",
		dialog.newAdminID, titles[newLevel],
	), nil)
}

func (b *Bot) greetingText(firstName string, level int) string {
	greeting := fmt.Sprintf(
		"👋 Здравствуйте, %s!\n\n"+
			"🏢 Добро пожаловать в систему бронирования переговорных Sapa Group!\n\n"+
			"✨ Для доступа к системе нажмите кнопку ниже:",
		firstName,
	)
	if level > domain.AdminLevelNone {
		titles := map[int]string{
			domain.AdminLevelRoot:      "Главный администратор",
			domain.AdminLevelModerator: "Админ-модератор",
			domain.AdminLevelBasic:     "Администратор",
		}
		title, ok := titles[level]
		if !ok {
			title = "Администратор"
		}
		greeting += fmt.Sprintf("\n\n👑 Ваш уровень: %s", title)
	}
	return greeting
}

func (b *Bot) startKeyboard(userID int64, level int) *inlineKeyboard {
	webappURL := fmt.Sprintf("%s/telegram-auth?telegram_id=%d", b.webAppURL, userID)

	rows := [][]keyboardButton{
		{{Text: "🚀 Открыть веб-приложение", WebApp: &webAppInfo{URL: webappURL}}},
		{{Text: "📋 Прямая ссылка", URL: webappURL}},
	}
	if level >= domain.AdminLevelModerator {
		rows = append(rows,
			[]keyboardButton{{Text: "👨‍💼 Добавить админа", CallbackData: "add_admin"}},
			[]keyboardButton{{Text: "📋 Список админов", CallbackData: "list_admins"}},
		)
	}
	if level >= domain.AdminLevelRoot {
		rows = append(rows,
			[]keyboardButton{{Text: "💥 Очистить систему", CallbackData: "clear_system"}},
		)
	}
	return &inlineKeyboard{InlineKeyboard: rows}
}

func (b *Bot) startAllowed(userID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if last, ok := b.lastStart[userID]; ok && now.Sub(last) < startCooldown {
		return false
	}
	b.lastStart[userID] = now
	return true
}

func (b *Bot) endDialog(userID int64) {
	b.mu.Lock()
	delete(b.dialogs, userID)
	b.mu.Unlock()
}

// send posts a message, optionally with a keyboard and a self-destruct delay.
// Keyboards go through raw params: the typed markup predates web-app buttons.
func (b *Bot) send(chatID int64, text string, kb *inlineKeyboard, autoDelete time.Duration) {
	params := tgbotapi.Params{}
	params.AddNonZero64("chat_id", chatID)
	params["text"] = text
	params["parse_mode"] = "HTML"
	if kb != nil {
		markup, err := json.Marshal(kb)
		if err != nil {
			b.logger.Error("failed to marshal keyboard", logger.String("error", err.Error()))
			return
		}
		params["reply_markup"] = string(markup)
	}

	resp, err := b.api.MakeRequest("sendMessage", params)
	if err != nil {
		b.logger.Error("failed to send bot reply",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
		return
	}

	if autoDelete > 0 {
		var sent tgbotapi.Message
		if err := json.Unmarshal(resp.Result, &sent); err != nil {
			b.logger.Debug("failed to decode sent message", logger.String("error", err.Error()))
			return
		}
		b.deleter.ScheduleDelete(chatID, sent.MessageID, autoDelete)
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string, kb *inlineKeyboard) {
	params := tgbotapi.Params{}
	params.AddNonZero64("chat_id", chatID)
	params.AddNonZero("message_id", messageID)
	params["text"] = text
	params["parse_mode"] = "HTML"
	if kb != nil {
		markup, err := json.Marshal(kb)
		if err != nil {
			b.logger.Error("failed to marshal keyboard", logger.String("error", err.Error()))
			return
		}
		params["reply_markup"] = string(markup)
	}

	if _, err := b.api.MakeRequest("editMessageText", params); err != nil {
		b.logger.Error("failed to edit bot message",
			logger.Int64("chat_id", chatID),
			logger.Int("message_id", messageID),
			logger.String("error", err.Error()),
		)
	}
}
