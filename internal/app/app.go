// internal/app/app.go
package app

import (
	"context"
	"loan-catalog/internal/config"
	"loan-catalog/internal/service"
	"loan-catalog/internal/storage"
	"loan-catalog/internal/storage/memory"
	"loan-catalog/internal/storage/redis"
	"log/slog"
)

// Services is everything the HTTP API and the bot share.
type Services struct {
	Loans *service.LoanService
	Calc  *service.Calculator

	closers []func() error
}

// New seeds an in-memory catalog and picks the schedule cache: Redis when
// REDIS_ADDR is set and reachable, an in-process cache otherwise.
func New(ctx context.Context, cfg config.Config) *Services {
	catalog := memory.NewCatalog(memory.DefaultProducts())
	s := &Services{Loans: service.NewLoanService(catalog)}

	var cache storage.ScheduleCache = memory.NewScheduleCache(cfg.ScheduleCacheSize, cfg.ScheduleCacheTTL)
	if cfg.RedisAddr != "" {
		client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			slog.Warn("Redis unavailable, using in-memory schedule cache", "addr", cfg.RedisAddr, "error", err)
		} else {
			slog.Info("Using Redis schedule cache", "addr", cfg.RedisAddr)
			cache = redis.NewScheduleCache(client, cfg.ScheduleCacheTTL)
			s.closers = append(s.closers, client.Close)
		}
	}

	s.Calc = service.NewCalculator(catalog, cache)
	return s
}

func (s *Services) Close() {
	for _, c := range s.closers {
		if err := c(); err != nil {
			slog.Error("Close failed", "error", err)
		}
	}
}
