package notification

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func chatID(v int64) *int64 { return &v }

var gala = &domain.Event{Title: "Winter_Gala", Date: "2026-12-12", Time: "19:00", Location: "Main Hall"}

func TestTelegramNotifier_NotifyRegistered(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	n.NotifyRegistered(context.Background(), &domain.User{TelegramChatID: chatID(42)}, gala)

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(42), bot.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, bot.sent[0].ParseMode)
	assert.Contains(t, bot.sent[0].Text, `Winter\_Gala`)
	assert.Contains(t, bot.sent[0].Text, "2026-12-12 19:00")
	assert.Contains(t, bot.sent[0].Text, "Main Hall")
}

func TestTelegramNotifier_NotifyEventCancelled(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	n.NotifyEventCancelled(context.Background(), &domain.User{TelegramChatID: chatID(7)}, gala)

	require.Len(t, bot.sent, 1)
	assert.Contains(t, bot.sent[0].Text, "Event cancelled")
}

func TestTelegramNotifier_Skips(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	n.NotifyRegistered(context.Background(), &domain.User{}, gala)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.NotifyRegistered(ctx, &domain.User{TelegramChatID: chatID(1)}, gala)

	assert.Empty(t, bot.sent)
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		n.NotifyRegistered(context.Background(), &domain.User{TelegramChatID: chatID(1)}, gala)
	})
}

func TestTelegramNotifier_SendErrorIsLogged(t *testing.T) {
	bot := &fakeBot{err: assert.AnError}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	assert.NotPanics(t, func() {
		n.NotifyEventCancelled(context.Background(), &domain.User{TelegramChatID: chatID(1)}, gala)
	})
	assert.Len(t, bot.sent, 1)
}
