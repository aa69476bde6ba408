package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/mailgun/mailgun-go/v3"
	"github.com/ponzhin/habit-tracker/pkg/config"
)

type MailgunNotifier struct {
	mg     mailgun.Mailgun
	sender string
}

func NewMailgunNotifier(cfg config.MailgunConfig) *MailgunNotifier {
	return &MailgunNotifier{
		mg:     mailgun.NewMailgun(cfg.Domain, cfg.APIKey),
		sender: cfg.Sender,
	}
}

func (n *MailgunNotifier) Send(ctx context.Context, userID int64, email, subject, body string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("no email address on file for user %d", userID)
	}
	message := n.mg.NewMessage(n.sender, subject, body, email)
	_, _, err := n.mg.Send(ctx, message)
	return err
}
