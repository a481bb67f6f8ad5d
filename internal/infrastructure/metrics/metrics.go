package metrics

import (
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DefaultNamespace = "guytogo"

// Metrics holds the HTTP and workflow collectors of the storefront API.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	PaymentRequestsSubmitted *prometheus.CounterVec
	DecisionsApplied         *prometheus.CounterVec
	NotificationFailures     *prometheus.CounterVec
	LessonPlansGenerated     *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

var _ interfaces.IWorkflowMetrics = (*Metrics)(nil)

// NewMetrics registers on the default registry.
func NewMetrics(namespace string) *Metrics {
	return NewMetricsWithRegistry(namespace, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

func NewMetricsWithRegistry(namespace string, reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),
		PaymentRequestsSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_requests_submitted_total",
				Help:      "Payment requests submitted by kind",
			},
			[]string{"kind"},
		),
		DecisionsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_decisions_total",
				Help:      "Administrator decisions applied by kind and resulting status",
			},
			[]string{"kind", "status"},
		),
		NotificationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notification_failures_total",
				Help:      "Notifications that failed or panicked",
			},
			[]string{"event"},
		),
		LessonPlansGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lesson_plans_generated_total",
				Help:      "Lesson plan generation attempts by result",
			},
			[]string{"result"},
		),
		gatherer: gatherer,
	}
}

func (m *Metrics) RequestSubmitted(kind entities.PaymentKind) {
	m.PaymentRequestsSubmitted.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) DecisionApplied(kind entities.PaymentKind, status entities.SubscriptionStatus) {
	m.DecisionsApplied.WithLabelValues(string(kind), string(status)).Inc()
}

func (m *Metrics) NotificationFailed(event string) {
	m.NotificationFailures.WithLabelValues(event).Inc()
}

func (m *Metrics) LessonPlanGenerated(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	m.LessonPlansGenerated.WithLabelValues(result).Inc()
}

// Middleware records request counts and latency. Paths are the gin route
// templates, so ids never become label values.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry this Metrics was created with.
func (m *Metrics) Handler() http.Handler {
	if m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
