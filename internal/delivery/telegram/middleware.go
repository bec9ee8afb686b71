package telegram

import (
	"context"

	"go.uber.org/zap"
)

// HandlerFunc is one chat-scoped handler step.
type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling converts a handler failure into a logged generic
// reply, so one bad update never takes down the update loop.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err != nil {
			h.logger.Error("handler failed",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}
