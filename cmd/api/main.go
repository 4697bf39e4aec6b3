// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"loan-catalog/internal/app"
	"loan-catalog/internal/bot"
	"loan-catalog/internal/config"
	"loan-catalog/internal/handler"
	"loan-catalog/internal/logger"
	"loan-catalog/internal/metrics"
	"loan-catalog/internal/middleware"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoad()
	logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	services := app.New(ctx, cfg)
	defer services.Close()

	m := metrics.New()

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(m), middleware.CORS(cfg.CORSOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	handler.RegisterRoutes(router,
		handler.NewLoanHandler(services.Loans),
		handler.NewCalculationHandler(services.Calc, m),
	)

	if cfg.TelegramToken != "" && cfg.TelegramWebhookURL != "" {
		api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
		if err != nil {
			slog.Error("Failed to initialise Telegram bot", "error", err)
			os.Exit(1)
		}
		webhookURL := cfg.TelegramWebhookURL + "/telegram"
		if err := bot.SetWebhook(api, webhookURL); err != nil {
			slog.Error("Failed to set Telegram webhook", "error", err)
			os.Exit(1)
		}
		router.POST("/telegram", bot.New(services.Loans, services.Calc).WebhookHandler(api))
		slog.Info("Telegram webhook set", "url", webhookURL, "bot", api.Self.UserName)
	}

	server := &http.Server{
		Addr:         cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("🚀 Server started", "addr", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		return
	case <-quit:
		slog.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during server shutdown", "error", err)
	}
	slog.Info("Server exited")
}
