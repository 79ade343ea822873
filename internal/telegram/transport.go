package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Transport implements router.Transport on a live Telegram bot.
type Transport struct {
	b *bot.Bot
}

// NewTransport wraps a bot instance as the router's transport collaborator.
func NewTransport(b *bot.Bot) *Transport {
	return &Transport{b: b}
}

// Forward copies a message into another chat and returns the identifier the
// forwarded copy got in the destination chat.
func (t *Transport) Forward(ctx context.Context, fromChatID int64, messageID int, toChatID int64) (int, error) {
	forwarded, err := t.b.ForwardMessage(ctx, &bot.ForwardMessageParams{
		ChatID:     toChatID,
		FromChatID: fromChatID,
		MessageID:  messageID,
	})
	if err != nil {
		return 0, err
	}
	return forwarded.ID, nil
}

// SendText sends a text message, attaching a one-time resized reply
// keyboard when labels are given.
func (t *Transport) SendText(ctx context.Context, chatID int64, text string, keyboard [][]string) error {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if len(keyboard) > 0 {
		params.ReplyMarkup = buildReplyKeyboard(keyboard)
	}

	_, err := t.b.SendMessage(ctx, params)
	return err
}

func buildReplyKeyboard(labels [][]string) *models.ReplyKeyboardMarkup {
	rows := make([][]models.KeyboardButton, 0, len(labels))
	for _, rowLabels := range labels {
		row := make([]models.KeyboardButton, 0, len(rowLabels))
		for _, label := range rowLabels {
			row = append(row, models.KeyboardButton{Text: label})
		}
		rows = append(rows, row)
	}
	return &models.ReplyKeyboardMarkup{
		Keyboard:        rows,
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}
