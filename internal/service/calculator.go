// internal/service/calculator.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"loan-catalog/internal/amortization"
	"loan-catalog/internal/domain"
	"loan-catalog/internal/storage"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

// Calculator resolves a named product and runs the amortization engine on it.
// It never writes to the catalog.
type Calculator struct {
	loans storage.LoanReader
	cache storage.ScheduleCache
	now   func() time.Time
}

// NewCalculator accepts a nil cache; schedules are then always recomputed.
func NewCalculator(loans storage.LoanReader, cache storage.ScheduleCache) *Calculator {
	return &Calculator{loans: loans, cache: cache, now: time.Now}
}

func (c *Calculator) Calculate(ctx context.Context, req domain.CalculationRequest) (domain.CalculationResult, error) {
	if req.TermYears <= 0 {
		return domain.CalculationResult{}, &domain.ValidationError{Detail: "termYears must be greater than 0"}
	}

	product, err := c.loans.FindByExactName(ctx, req.ProductName)
	if err != nil {
		return domain.CalculationResult{}, fmt.Errorf("find product %q: %w", req.ProductName, err)
	}
	if product == nil {
		return domain.CalculationResult{}, domain.ProductNotFound(req.ProductName)
	}

	if req.Amount.LessThan(product.MinimumAmount) || req.Amount.GreaterThan(product.MaximumAmount) {
		return domain.CalculationResult{}, &domain.InvalidAmountError{
			Amount: req.Amount,
			Min:    product.MinimumAmount,
			Max:    product.MaximumAmount,
		}
	}

	rate := product.AnnualInterestRate
	if req.CustomAnnualRate != nil {
		rate = *req.CustomAnnualRate
	}

	return domain.CalculationResult{
		Product:  *product,
		Summary:  amortization.Summarize(req.Amount, rate, req.TermYears, c.now()),
		Schedule: c.schedule(ctx, req.Amount, rate, req.TermYears),
	}, nil
}

// schedule serves from the cache when it can. Cache failures are logged and
// the schedule is recomputed.
func (c *Calculator) schedule(ctx context.Context, amount, rate decimal.Decimal, termYears int) []domain.AmortizationEntry {
	if c.cache == nil {
		return amortization.BuildSchedule(amount, rate, termYears)
	}

	key := ScheduleKey(amount, rate, termYears)
	if raw, ok, err := c.cache.Get(ctx, key); err != nil {
		slog.Warn("Schedule cache read failed", "error", err, "key", key)
	} else if ok {
		var cached []domain.AmortizationEntry
		if err := json.Unmarshal(raw, &cached); err == nil {
			slog.Debug("Schedule cache hit", "key", key)
			return cached
		}
		slog.Warn("Discarding unreadable cached schedule", "key", key)
	}

	schedule := amortization.BuildSchedule(amount, rate, termYears)
	raw, err := json.Marshal(schedule)
	if err != nil {
		slog.Warn("Schedule not cached", "error", err, "key", key)
		return schedule
	}
	if err := c.cache.Set(ctx, key, raw); err != nil {
		slog.Warn("Schedule cache write failed", "error", err, "key", key)
	}
	return schedule
}

// ScheduleKey identifies a schedule by its inputs; the product is irrelevant.
func ScheduleKey(amount, rate decimal.Decimal, termYears int) string {
	return fmt.Sprintf("schedule:%s:%s:%d", amount.String(), rate.String(), termYears)
}
