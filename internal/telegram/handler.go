package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"helpdeskbot/internal/router"
)

// NewUpdateHandler returns the bot's default handler: it converts every
// message update into a router.Message and hands it to the router. Errors
// stay local to the one update being processed.
func NewUpdateHandler(logger *slog.Logger, r *router.Router) bot.HandlerFunc {
	log := logger.With("component", "update_handler")

	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}

		msg, ok := toRouterMessage(update.Message)
		if !ok {
			log.DebugContext(ctx, "Ignoring update from unsupported chat kind",
				"update_id", update.ID, "chat_type", update.Message.Chat.Type)
			return
		}

		if err := r.Handle(ctx, msg); err != nil {
			log.ErrorContext(ctx, "Failed to handle message",
				"chat_id", msg.ChatID, "message_id", msg.ID, "error", err)
		}
	}
}

// toRouterMessage maps a Telegram message onto the router's inbound shape.
// Channel posts and other exotic chat kinds are not part of this bot's
// surface.
func toRouterMessage(m *models.Message) (router.Message, bool) {
	var kind router.ChatKind
	switch m.Chat.Type {
	case models.ChatTypePrivate:
		kind = router.ChatKindPrivate
	case models.ChatTypeGroup, models.ChatTypeSupergroup:
		kind = router.ChatKindGroup
	default:
		return router.Message{}, false
	}

	msg := router.Message{
		ID:       m.ID,
		ChatID:   m.Chat.ID,
		ChatKind: kind,
		Text:     m.Text,
	}
	if m.ReplyToMessage != nil {
		msg.ReplyToID = m.ReplyToMessage.ID
	}
	return msg, true
}
