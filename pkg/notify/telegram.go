package notify

import (
	"context"

	"github.com/go-telegram/bot"
)

// TelegramNotifier delivers reminders as Telegram messages; the chat ID is
// the user ID.
type TelegramNotifier struct {
	b *bot.Bot
}

func NewTelegramNotifier(token string, opts ...bot.Option) (*TelegramNotifier, error) {
	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{b: b}, nil
}

func (n *TelegramNotifier) Send(ctx context.Context, userID int64, _, subject, body string) error {
	_, err := n.b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: userID,
		Text:   subject + "\n\n" + body,
	})
	return err
}
