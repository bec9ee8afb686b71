// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"learnwords/internal/domain/entities"
)

const (
	msgWelcome = "Привет! Я помогу тебе учить иностранные слова, словосочетания и выражения.\n\n" +
		"Пополняй словарь, проходи занятия и следи за прогрессом."
	msgHelp = "Доступные команды:\n\n" +
		"/start — главное меню\n" +
		"/cancel — прервать текущее занятие\n" +
		"/help — эта справка\n\n" +
		"Всё остальное удобнее делать через кнопки меню."
	msgUseMenu        = "Воспользуйтесь кнопками меню."
	msgUnknownCommand = "Неизвестная команда. Посмотрите /help."
	msgInternalError  = "Что‑то пошло не так. Попробуйте позже."

	msgTrainingActive  = "Занятие уже идёт. Сначала закончите его или нажмите /cancel."
	msgNoTraining      = "Сейчас нет активного занятия. Начните новое через меню."
	msgNothingToLearn  = "Вы выучили все слова для текущего типа занятия.\nДобавьте новые слова или смените тип занятия в настройках."
	msgTrainingStopped = "Занятие прервано."

	msgCorrect = "✅ Правильно!"

	msgEmptyDictionary = "Словарь пуст. Добавьте слова, чтобы начать заниматься."

	msgChooseKind       = "Что добавляем в словарь?"
	msgEnterTranslation = "Введите перевод (кириллицей):"
	msgWordAdded        = "Добавлено: <b>%s</b> — <b>%s</b>"
	msgAddCancelled     = "Добавление отменено."

	msgResetConfirm = "Сбросить прогресс? Счётчики правильных ответов всех слов обнулятся, сами слова останутся."
	msgResetDone    = "Прогресс сброшен."
	msgResetSkipped = "Сброс отменён."
)

// Validation error messages of the add-word flow.
const (
	msgEmptyInput        = "Пустая строка. Повторите ввод."
	msgNotLatin          = "Используйте только латинские буквы. Повторите ввод."
	msgNotCyrillic       = "Используйте только кириллические буквы. Повторите ввод."
	msgWordCountMismatch = "Неверное количество слов для выбранного типа. Повторите ввод."
	msgDuplicateWord     = "Такая запись уже есть в словаре. Введите другую."
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// formatQuestion renders a question prompt; the choices go into the
// inline keyboard.
func formatQuestion(q *entities.Question) string {
	return fmt.Sprintf("Как переводится <b>%s</b>?", q.Word.Original)
}

// formatWrongAnswer shows the correct translation after a miss.
func formatWrongAnswer(w entities.Word) string {
	return fmt.Sprintf("❌ Неправильно. <b>%s</b> — это <b>%s</b>.", w.Original, w.Translation)
}

// formatSummary renders the end-of-training message.
func formatSummary(correct, total int) string {
	return fmt.Sprintf("Занятие окончено!\nПравильных ответов: <b>%d из %d</b>.", correct, total)
}

// formatStatistics renders the progress screen.
func formatStatistics(s *entities.Statistics) string {
	return fmt.Sprintf(
		"<b>📊 Статистика</b>\n\n%s\n\nВыучено: <b>%d</b> из <b>%d</b> (%d%%)",
		buildProgressBar(s.Learned, s.Total, 20),
		s.Learned,
		s.Total,
		s.ProgressPercent,
	)
}

// formatSettings renders the settings screen.
func formatSettings(s *entities.UserSettings) string {
	return fmt.Sprintf(
		"<b>⚙️ Настройки</b>\n\nСлов за занятие: <b>%d</b>\nТип занятия: <b>%s</b>",
		s.QuizLength,
		formatFilter(s.Filter),
	)
}

func formatFilter(f entities.KindFilter) string {
	switch f {
	case entities.FilterWord:
		return "слова"
	case entities.FilterPhrase:
		return "словосочетания"
	case entities.FilterExpression:
		return "выражения"
	default:
		return "всё"
	}
}

func formatKindPrompt(kind entities.WordKind) string {
	switch kind {
	case entities.KindWord:
		return "Введите 1 слово на иностранном языке:"
	case entities.KindPhrase:
		return "Введите 2 слова на иностранном языке через пробел:"
	default:
		return "Введите выражение на иностранном языке (3+ слов):"
	}
}

// buildProgressBar creates ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return strings.Repeat("░", length)
	}

	filled := current * length / total
	if filled > length {
		filled = length
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
	return fmt.Sprintf("[%s]", bar)
}
