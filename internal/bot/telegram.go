// internal/bot/telegram.go
package bot

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI the bot needs to answer.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// HandleUpdate answers one update; updates without a text message are ignored.
func (b *Bot) HandleUpdate(ctx context.Context, api Sender, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	chatID := update.Message.Chat.ID
	slog.Info("Telegram message received", "chat_id", chatID, "text", update.Message.Text)

	msg := tgbotapi.NewMessage(chatID, b.Reply(ctx, update.Message.Text))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := api.Send(msg); err != nil {
		// Markdown Telegram cannot parse is rejected outright; fall back to plain text.
		slog.Warn("Markdown reply rejected, resending as plain text", "chat_id", chatID, "error", err)
		msg.ParseMode = ""
		if _, err := api.Send(msg); err != nil {
			slog.Error("Failed to send Telegram reply", "chat_id", chatID, "error", err)
		}
	}
}

// WebhookHandler serves POST /telegram.
func (b *Bot) WebhookHandler(api Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			slog.Error("Failed to parse Telegram update", "error", err)
			c.Status(http.StatusBadRequest)
			return
		}
		b.HandleUpdate(c.Request.Context(), api, update)
		c.Status(http.StatusOK)
	}
}

// SetWebhook points Telegram at url.
func SetWebhook(api *tgbotapi.BotAPI, url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return err
	}
	_, err = api.Request(wh)
	return err
}

// Poll answers long-polled updates until ctx is cancelled.
func (b *Bot) Poll(ctx context.Context, api *tgbotapi.BotAPI) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)
	defer api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, api, update)
		}
	}
}
