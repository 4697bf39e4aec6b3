// cmd/bot/main.go
package main

import (
	"context"
	"loan-catalog/internal/app"
	"loan-catalog/internal/bot"
	"loan-catalog/internal/config"
	"loan-catalog/internal/logger"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoad()
	logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	if cfg.TelegramToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services := app.New(ctx, cfg)
	defer services.Close()

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		slog.Error("Failed to initialise Telegram bot", "error", err)
		os.Exit(1)
	}

	slog.Info("Bot started", "bot", api.Self.UserName)
	bot.New(services.Loans, services.Calc).Poll(ctx, api)
	slog.Info("Bot stopped")
}
