package order

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mengsruy/webstore/config"
)

func telegramSink(endpoint string, timeout int) *TelegramSink {
	return NewTelegramSink(config.NotifyConfig{
		Endpoint: endpoint,
		BotToken: "token",
		ChatID:   "42",
		Timeout:  timeout,
	})
}

func TestTelegramSinkSendsForm(t *testing.T) {
	var gotPath, gotChatID, gotText, gotMode string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		gotChatID = r.PostFormValue("chat_id")
		gotText = r.PostFormValue("text")
		gotMode = r.PostFormValue("parse_mode")
	}))
	defer srv.Close()

	sink := telegramSink(srv.URL, 10)
	require.NoError(t, sink.Send(context.Background(), "🛒 *New Order*"))

	assert.Equal(t, "/bottoken/sendMessage", gotPath)
	assert.Equal(t, "42", gotChatID)
	assert.Equal(t, "🛒 *New Order*", gotText)
	assert.Equal(t, "Markdown", gotMode)
}

func TestTelegramSinkRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := telegramSink(srv.URL, 10).Send(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestTelegramSinkHonorsCallerDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	// the configured timeout is generous; the caller's shorter deadline
	// must still cancel the call
	sink := telegramSink(srv.URL, 30)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := sink.Send(ctx, "text")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
