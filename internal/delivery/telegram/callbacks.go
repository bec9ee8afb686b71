package telegram

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleCallback routes inline keyboard presses. The caller guarantees
// a non-nil Message. The callback is always answered first so the
// client stops showing the spinner.
func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID

	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		h.logger.Warn("failed to answer callback",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}

	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionMenu:
		h.handleMenuCallback(ctx, chatID, data)

	case actionAnswer:
		if len(data.Params) == 0 {
			return
		}
		index, err := strconv.Atoi(data.Params[0])
		if err != nil {
			h.logger.Warn("bad answer callback",
				zap.Int64("chat_id", chatID),
				zap.String("data", data.Raw),
			)
			return
		}
		_ = h.withErrorHandling(h.answerHandler(index))(ctx, chatID)

	case actionAddWord:
		if len(data.Params) == 0 {
			return
		}
		_ = h.withErrorHandling(h.addWordKindHandler(data.Params[0]))(ctx, chatID)

	case actionSettings:
		h.handleSettingsCallback(ctx, chatID, data)

	case actionCancel:
		_ = h.withErrorHandling(h.cancelHandler())(ctx, chatID)

	default:
		h.logger.Warn("unknown callback action",
			zap.Int64("chat_id", chatID),
			zap.String("data", data.Raw),
		)
	}
}

func (h *Handler) handleMenuCallback(ctx context.Context, chatID int64, data callbackData) {
	if len(data.Params) == 0 {
		return
	}

	switch data.Params[0] {
	case menuLearn:
		_ = h.withErrorHandling(h.startTrainingHandler())(ctx, chatID)

	case menuAdd:
		_ = h.withErrorHandling(h.addWordStartHandler())(ctx, chatID)

	case menuStats:
		_ = h.withErrorHandling(h.statisticsHandler())(ctx, chatID)

	case menuSettings:
		_ = h.withErrorHandling(h.settingsHandler())(ctx, chatID)

	case menuMain:
		h.drafts.Delete(chatID)
		msg := newHTMLMessage(chatID, msgUseMenu)
		msg.ReplyMarkup = buildMenuKeyboard()
		h.send(msg)
	}
}

func (h *Handler) handleSettingsCallback(ctx context.Context, chatID int64, data callbackData) {
	if len(data.Params) == 0 {
		return
	}

	sub := data.Params[0]
	value := ""
	if len(data.Params) > 1 {
		value = data.Params[1]
	}

	switch sub {
	case settingsQuizLength:
		if value == "" {
			msg := newHTMLMessage(chatID, "Сколько слов за одно занятие?")
			msg.ReplyMarkup = buildQuizLengthKeyboard()
			h.send(msg)
			return
		}
		_ = h.withErrorHandling(h.updateQuizLengthHandler(value))(ctx, chatID)

	case settingsFilter:
		if value == "" {
			msg := newHTMLMessage(chatID, "Какой тип занятий вам нужен?")
			msg.ReplyMarkup = buildFilterKeyboard()
			h.send(msg)
			return
		}
		_ = h.withErrorHandling(h.updateFilterHandler(value))(ctx, chatID)

	case settingsReset:
		switch value {
		case "":
			msg := newHTMLMessage(chatID, msgResetConfirm)
			msg.ReplyMarkup = buildResetConfirmKeyboard()
			h.send(msg)
		case resetConfirm:
			_ = h.withErrorHandling(h.resetProgressHandler())(ctx, chatID)
		case resetCancel:
			msg := newHTMLMessage(chatID, msgResetSkipped)
			msg.ReplyMarkup = buildMenuKeyboard()
			h.send(msg)
		}
	}
}
