package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/ponzhin/habit-tracker/pkg/config"
	"github.com/ponzhin/habit-tracker/pkg/logger"
)

// Notifier delivers one reminder to one user. The scheduler treats the
// transport as opaque: email is the reference, Telegram and log-only are
// alternatives.
type Notifier interface {
	Send(ctx context.Context, userID int64, email, subject, body string) error
}

// FromConfig picks the transport named in the config. An unknown transport is
// a startup error; an empty one falls back to the log-only notifier.
func FromConfig(cfg config.NotifyConfig) (Notifier, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Transport)) {
	case "mailgun":
		return NewMailgunNotifier(cfg.Mailgun), nil
	case "telegram":
		return NewTelegramNotifier(cfg.Telegram.Token)
	case "", "log":
		return LogNotifier{}, nil
	default:
		return nil, fmt.Errorf("unknown notify transport %q", cfg.Transport)
	}
}

// LogNotifier writes reminders to the log instead of delivering them.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, userID int64, _, subject, body string) error {
	logger.Info("reminder (log transport)", "user_id", userID, "subject", subject, "body", body)
	return nil
}
