package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/help-requests", http.MethodGet, 200, 15*time.Millisecond)
	m.RecordRequest("/help-requests", http.MethodGet, 200, 5*time.Millisecond)
	m.RecordError("/help-requests", http.MethodPost, "VALIDATION_FAILED")
	m.RecordWebhookDelivery("failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/help-requests", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("/help-requests", http.MethodPost, "VALIDATION_FAILED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.webhookDelivered.WithLabelValues("failed")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", http.MethodGet, 200, time.Second)
		m.RecordError("/", http.MethodGet, "X")
		m.RecordWebhookDelivery("delivered")
	})
}

func TestMetricsHandlerExposition(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/health/live", http.MethodGet, 200, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `community_http_requests_total{method="GET",route="/health/live",status="200"} 1`)
}

func TestRequestLoggerUsesRoutePattern(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), m))
	app.Get("/help-requests/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/help-requests/abc", nil))
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/help-requests/:id", http.MethodGet, "204")))
}
