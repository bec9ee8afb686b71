package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"learnwords/internal/domain/entities"
)

// buildMenuKeyboard builds the main menu keyboard.
func buildMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎓 Заниматься", buildMenuCallback(menuLearn)),
			tgbotapi.NewInlineKeyboardButtonData("➕ Пополнить словарь", buildMenuCallback(menuAdd)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", buildMenuCallback(menuStats)),
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Настройки", buildMenuCallback(menuSettings)),
		),
	)
}

// buildQuestionKeyboard builds one button per choice plus a cancel row.
func buildQuestionKeyboard(q *entities.Question) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, choice := range q.Choices {
		button := tgbotapi.NewInlineKeyboardButtonData(choice.Translation, buildAnswerCallback(i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✋ Прервать занятие", buildCancelCallback()),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildKindKeyboard builds the entry-kind keyboard of the add-word flow.
func buildKindKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Слово", buildAddWordKindCallback(string(entities.KindWord))),
			tgbotapi.NewInlineKeyboardButtonData("Словосочетание", buildAddWordKindCallback(string(entities.KindPhrase))),
			tgbotapi.NewInlineKeyboardButtonData("Выражение", buildAddWordKindCallback(string(entities.KindExpression))),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« В меню", buildMenuCallback(menuMain)),
		),
	)
}

// buildSettingsKeyboard builds the main settings keyboard.
func buildSettingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📏 Размер занятия", buildSettingsCallback(settingsQuizLength)),
			tgbotapi.NewInlineKeyboardButtonData("🗂 Тип занятия", buildSettingsCallback(settingsFilter)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧹 Сбросить прогресс", buildSettingsCallback(settingsReset)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« В меню", buildMenuCallback(menuMain)),
		),
	)
}

// buildQuizLengthKeyboard builds the quiz length keyboard.
func buildQuizLengthKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("3 слова", buildSettingsCallback(settingsQuizLength, "3")),
			tgbotapi.NewInlineKeyboardButtonData("4 слова", buildSettingsCallback(settingsQuizLength, "4")),
			tgbotapi.NewInlineKeyboardButtonData("5 слов", buildSettingsCallback(settingsQuizLength, "5")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("7 слов", buildSettingsCallback(settingsQuizLength, "7")),
			tgbotapi.NewInlineKeyboardButtonData("10 слов", buildSettingsCallback(settingsQuizLength, "10")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Назад к настройкам", buildMenuCallback(menuSettings)),
		),
	)
}

// buildFilterKeyboard builds the kind filter keyboard.
func buildFilterKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Слова", buildSettingsCallback(settingsFilter, string(entities.FilterWord))),
			tgbotapi.NewInlineKeyboardButtonData("Словосочетания", buildSettingsCallback(settingsFilter, string(entities.FilterPhrase))),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Выражения", buildSettingsCallback(settingsFilter, string(entities.FilterExpression))),
			tgbotapi.NewInlineKeyboardButtonData("Всё", buildSettingsCallback(settingsFilter, string(entities.FilterAll))),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Назад к настройкам", buildMenuCallback(menuSettings)),
		),
	)
}

// buildResetConfirmKeyboard builds the progress reset confirmation keyboard.
func buildResetConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Да, сбросить", buildSettingsCallback(settingsReset, resetConfirm)),
			tgbotapi.NewInlineKeyboardButtonData("Нет", buildSettingsCallback(settingsReset, resetCancel)),
		),
	)
}
