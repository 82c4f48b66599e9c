package bot

import "github.com/sapateam/roombooker/internal/domain"

// Inline keyboards are marshalled by hand because the typed markup in the
// client library has no web_app button field yet.

type webAppInfo struct {
	URL string `json:"url"`
}

type keyboardButton struct {
	Text         string      `json:"text"`
	URL          string      `json:"url,omitempty"`
	CallbackData string      `json:"callback_data,omitempty"`
	WebApp       *webAppInfo `json:"web_app,omitempty"`
}

type inlineKeyboard struct {
	InlineKeyboard [][]keyboardButton `json:"inline_keyboard"`
}

func cancelKeyboard() *inlineKeyboard {
	return &inlineKeyboard{InlineKeyboard: [][]keyboardButton{
		{{Text: "❌ Отмена", CallbackData: "cancel_admin"}},
	}}
}

func backKeyboard() *inlineKeyboard {
	return &inlineKeyboard{InlineKeyboard: [][]keyboardButton{
		{{Text: "🔙 Назад", CallbackData: "back_to_start"}},
	}}
}

// levelKeyboard offers the grantable tiers; only a root admin may hand out
// the root tier itself.
func levelKeyboard(actorLevel int) *inlineKeyboard {
	rows := [][]keyboardButton{
		{{Text: "1️⃣ Уровень 1 (Админ)", CallbackData: "level_1"}},
		{{Text: "2️⃣ Уровень 2 (Админ-модератор)", CallbackData: "level_2"}},
	}
	if actorLevel >= domain.AdminLevelRoot {
		rows = append(rows, []keyboardButton{{Text: "3️⃣ Уровень 3 (Главный админ)", CallbackData: "level_3"}})
	}
	rows = append(rows, []keyboardButton{{Text: "❌ Отмена", CallbackData: "cancel_admin"}})
	return &inlineKeyboard{InlineKeyboard: rows}
}
