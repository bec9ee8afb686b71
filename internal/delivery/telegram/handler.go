// Package telegram is the long-polling chat front end of the trainer.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"learnwords/internal/service"
	"learnwords/internal/storage"
)

// Handler routes Telegram updates to the training engine. Updates are
// processed sequentially, which upholds the one-in-flight-call-per-user
// contract of the engine.
type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	trainers        *service.TrainerRegistry
	dictionary      *service.DictionaryService
	settingsService *service.SettingsService
	sessions        *storage.SessionStorage
	drafts          *storage.DraftStorage
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	trainers *service.TrainerRegistry,
	dictionary *service.DictionaryService,
	settingsService *service.SettingsService,
	sessions *storage.SessionStorage,
	drafts *storage.DraftStorage,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		trainers:        trainers,
		dictionary:      dictionary,
		settingsService: settingsService,
		sessions:        sessions,
		drafts:          drafts,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if cb := update.CallbackQuery; cb != nil {
		// Buttons on old messages arrive without a Message.
		if cb.Message == nil {
			h.logger.Debug("callback without message",
				zap.String("data", cb.Data),
			)
			return
		}

		h.logger.Debug("callback received",
			zap.Int64("chat_id", cb.Message.Chat.ID),
			zap.String("data", cb.Data),
		)
		h.handleCallback(ctx, cb)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			h.drafts.Delete(chatID)
			msg := newHTMLMessage(chatID, msgWelcome)
			msg.ReplyMarkup = buildMenuKeyboard()
			h.send(msg)

		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))

		case "cancel":
			_ = h.withErrorHandling(h.cancelHandler())(ctx, chatID)

		default:
			h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}

		return
	}

	// Plain text only matters inside an add-word conversation.
	if h.drafts.Get(chatID) != nil {
		_ = h.withErrorHandling(h.addWordInputHandler(update.Message.Text))(ctx, chatID)
		return
	}

	msg := newHTMLMessage(chatID, msgUseMenu)
	msg.ReplyMarkup = buildMenuKeyboard()
	h.send(msg)
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
