package order

import (
	"context"
	"fmt"
	"time"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"

	"github.com/mengsruy/webstore/config"
)

// Sink delivers an order summary to an external notification endpoint.
// Implementations must respect the context deadline; the caller decides
// what to do with a failed send.
type Sink interface {
	Send(ctx context.Context, text string) error
}

// TelegramSink posts summaries to the Telegram bot sendMessage API.
type TelegramSink struct {
	endpoint string
	botToken string
	chatID   string
	timeout  time.Duration
}

func NewTelegramSink(cfg config.NotifyConfig) *TelegramSink {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TelegramSink{
		endpoint: cfg.Endpoint,
		botToken: cfg.BotToken,
		chatID:   cfg.ChatID,
		timeout:  timeout,
	}
}

func (s *TelegramSink) Send(ctx context.Context, text string) error {
	if s.botToken == "" || s.chatID == "" {
		return errors.New("notify: bot token or chat id not configured")
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", s.endpoint, s.botToken)

	// the context is the single timeout mechanism; gout's SetTimeout would
	// replace a caller deadline rather than combine with it
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var code int
	err := gout.POST(url).
		WithContext(ctx).
		SetWWWForm(gout.H{
			"chat_id":    s.chatID,
			"text":       text,
			"parse_mode": "Markdown",
		}).
		Code(&code).
		Do()
	if err != nil {
		return errors.Wrap(err, "notify: send failed")
	}
	if code < 200 || code > 299 {
		return errors.Errorf("notify: unexpected status %d", code)
	}
	return nil
}
