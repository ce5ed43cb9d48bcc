package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Redemption outcomes
const (
	OutcomeRedeemed = "redeemed"
	OutcomeInvalid  = "invalid"
	OutcomeExpired  = "expired"
)

// Metrics owns a private registry and the storefront collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry        *prom.Registry
	httpRequests    *prom.CounterVec
	httpDuration    *prom.HistogramVec
	codesIssued     *prom.CounterVec
	codeRedemptions *prom.CounterVec
	deliveryErrors  *prom.CounterVec
}

// New creates the collectors and registers them with a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prom.NewRegistry(),
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "flabef",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "flabef",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prom.DefBuckets,
		}, []string{"method", "route"}),
		codesIssued: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "flabef",
			Name:      "recovery_codes_issued_total",
			Help:      "Password recovery codes issued by delivery channel.",
		}, []string{"channel"}),
		codeRedemptions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "flabef",
			Name:      "recovery_code_redemptions_total",
			Help:      "Password recovery code redemption attempts by outcome.",
		}, []string{"outcome"}),
		deliveryErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "flabef",
			Name:      "recovery_delivery_failures_total",
			Help:      "Failed recovery code deliveries by channel.",
		}, []string{"channel"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.codesIssued,
		m.codeRedemptions,
		m.deliveryErrors,
	)
	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prom.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware counts requests by matched route template
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) CodeIssued(channel string) {
	if m == nil {
		return
	}
	m.codesIssued.WithLabelValues(channel).Inc()
}

func (m *Metrics) CodeRedemption(outcome string) {
	if m == nil {
		return
	}
	m.codeRedemptions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) DeliveryFailed(channel string) {
	if m == nil {
		return
	}
	m.deliveryErrors.WithLabelValues(channel).Inc()
}
