package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vitals"

// Collector exposes request and governance metrics on its own registry. A nil *Collector
// is valid and records nothing.
type Collector struct {
	registry         *prometheus.Registry
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	thresholdActions *prometheus.CounterVec
	classifications  *prometheus.CounterVec
	activeVersion    prometheus.Gauge
}

func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution for inbound HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests.",
		}, []string{"method", "route", "status"}),
		thresholdActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threshold",
			Name:      "actions_total",
			Help:      "Threshold governance actions by outcome.",
		}, []string{"action", "outcome"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "classified_total",
			Help:      "Ingested health records by classification.",
		}, []string{"classification"}),
		activeVersion: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "threshold",
			Name:      "active_version",
			Help:      "Version of the threshold configuration currently in effect.",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.requestDuration, c.requestTotal, c.thresholdActions, c.classifications, c.activeVersion,
	} {
		if err := registry.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records every request under its route template, not the raw path.
func (c *Collector) GinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())

		c.requestTotal.WithLabelValues(ctx.Request.Method, route, status).Inc()
		c.requestDuration.WithLabelValues(ctx.Request.Method, route, status).Observe(time.Since(start).Seconds())
	}
}

func (c *Collector) ThresholdAction(action string, outcome string) {
	if c == nil {
		return
	}
	c.thresholdActions.WithLabelValues(action, outcome).Inc()
}

func (c *Collector) RecordClassified(classification string) {
	if c == nil {
		return
	}
	c.classifications.WithLabelValues(classification).Inc()
}

func (c *Collector) SetActiveVersion(version int64) {
	if c == nil {
		return
	}
	c.activeVersion.Set(float64(version))
}
