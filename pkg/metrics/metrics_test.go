package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, c *Collector) string {
	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func TestGinMiddlewareRecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	collector, err := NewCollector()
	require.NoError(t, err)

	engine := gin.New()
	engine.Use(collector.GinMiddleware())
	engine.GET("/users/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/42", nil))
	require.Equal(t, http.StatusAccepted, rr.Code)

	body := scrape(t, collector)
	assert.True(t, strings.Contains(body, `vitals_http_requests_total{method="GET",route="/users/:id",status="202"} 1`), body)
	assert.Contains(t, body, "vitals_http_request_duration_seconds")
}

func TestGovernanceCounters(t *testing.T) {
	collector, err := NewCollector()
	require.NoError(t, err)

	collector.ThresholdAction("publish", "ok")
	collector.ThresholdAction("publish", "ok")
	collector.RecordClassified("borderline")
	collector.SetActiveVersion(3)

	body := scrape(t, collector)
	assert.Contains(t, body, `vitals_threshold_actions_total{action="publish",outcome="ok"} 2`)
	assert.Contains(t, body, `vitals_records_classified_total{classification="borderline"} 1`)
	assert.Contains(t, body, `vitals_threshold_active_version 3`)
}

func TestNilCollectorIsNoop(t *testing.T) {
	var collector *Collector
	assert.NotPanics(t, func() {
		collector.ThresholdAction("draft", "ok")
		collector.RecordClassified("healthy")
		collector.SetActiveVersion(1)
	})
}
