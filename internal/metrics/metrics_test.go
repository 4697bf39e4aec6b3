package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/loans/:id", "200", 0.01)
	m.ObserveRequest("GET", "/loans/:id", "200", 0.02)
	m.ObserveCalculation(OutcomeInvalidAmount)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/loans/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues(OutcomeInvalidAmount)))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveCalculation(OutcomeOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `loan_catalog_calculations_total{outcome="ok"} 1`)
}
