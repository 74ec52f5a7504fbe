package observability

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus collectors for the fix pipeline and the HTTP surface.
type Metrics struct {
	gatherer prometheus.Gatherer

	FixesComputed   prometheus.Counter
	FixesFailed     *prometheus.CounterVec
	ReportsIngested *prometheus.CounterVec
	ReportsRejected *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDurations   *prometheus.HistogramVec
}

// NewMetrics registers against reg, or the default registry when reg is nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	var err error
	m := &Metrics{gatherer: gatherer}

	if m.FixesComputed, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "df_fixes_computed_total",
		Help: "Fixes successfully triangulated from two bearings.",
	})); err != nil {
		return nil, err
	}
	if m.FixesFailed, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "df_fixes_failed_total",
		Help: "Fix computations that failed, labeled by reason.",
	}, []string{"reason"})); err != nil {
		return nil, err
	}
	if m.ReportsIngested, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "df_reports_ingested_total",
		Help: "Bearing reports accepted from the message broker, labeled by channel.",
	}, []string{"channel"})); err != nil {
		return nil, err
	}
	if m.ReportsRejected, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "df_reports_rejected_total",
		Help: "Bearing reports dropped by the ingester, labeled by reason.",
	}, []string{"reason"})); err != nil {
		return nil, err
	}
	if m.HTTPRequests, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests, labeled by method, route and status.",
	}, []string{"method", "route", "status"})); err != nil {
		return nil, err
	}
	if m.HTTPDurations, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"method", "route"})); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) FixComputed() {
	m.FixesComputed.Inc()
}

func (m *Metrics) FixFailed(reason string) {
	m.FixesFailed.WithLabelValues(reason).Inc()
}

func (m *Metrics) ReportIngested(channel string) {
	m.ReportsIngested.WithLabelValues(channel).Inc()
}

func (m *Metrics) ReportRejected(reason string) {
	m.ReportsRejected.WithLabelValues(reason).Inc()
}

// Middleware records request counts and latency by matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDurations.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// register returns the already registered collector when an identical one exists.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("registering metric: %w", err)
	}
	return c, nil
}
