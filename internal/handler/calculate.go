// internal/handler/calculate.go
package handler

import (
	"errors"
	"loan-catalog/internal/domain"
	"loan-catalog/internal/metrics"
	"loan-catalog/internal/service"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CalculationHandler struct {
	calc    *service.Calculator
	metrics *metrics.Metrics
}

// NewCalculationHandler accepts nil metrics.
func NewCalculationHandler(calc *service.Calculator, m *metrics.Metrics) *CalculationHandler {
	return &CalculationHandler{calc: calc, metrics: m}
}

// CalculateLoan godoc
// @Summary Preview the repayment plan of a loan product
// @Description Response is a two-element array: [{"summary": {...}}, [entries...]]
// @Tags calculation
// @Accept json
// @Produce json
// @Param request body CalculateLoanRequest true "Amount, product and term"
// @Success 200 {array} object
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calculate-loan [post]
func (h *CalculationHandler) CalculateLoan(c *gin.Context) {
	var req CalculateLoanRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.calc.Calculate(c.Request.Context(), req.toDomain())
	h.observe(err)
	if err != nil {
		slog.Warn("Calculation rejected", "error", err, "product", req.ProductName, "amount", req.Amount)
		respondError(c, err)
		return
	}

	slog.Info("Loan calculated",
		"product", res.Product.ProductName,
		"amount", req.Amount,
		"term_years", req.TermYears,
		"rate", res.Summary.AnnualInterestRate.String(),
	)
	c.JSON(http.StatusOK, []any{
		gin.H{"summary": toSummaryResponse(res.Summary)},
		toScheduleResponse(res.Schedule),
	})
}

func (h *CalculationHandler) observe(err error) {
	if h.metrics == nil {
		return
	}
	var (
		notFound      *domain.NotFoundError
		invalidAmount *domain.InvalidAmountError
	)
	switch {
	case err == nil:
		h.metrics.ObserveCalculation(metrics.OutcomeOK)
	case errors.As(err, &notFound):
		h.metrics.ObserveCalculation(metrics.OutcomeNotFound)
	case errors.As(err, &invalidAmount):
		h.metrics.ObserveCalculation(metrics.OutcomeInvalidAmount)
	default:
		h.metrics.ObserveCalculation(metrics.OutcomeError)
	}
}
