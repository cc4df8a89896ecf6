package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry          *prometheus.Registry
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	roomsCreated      prometheus.Counter
	readingsRecorded  prometheus.Counter
	readingsRejected  prometheus.Counter
}

// New registers the service collectors on a fresh registry so several instances can live in
// one process (tests build one per suite).
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total count of HTTP requests processed by route and status.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Histogram of HTTP request durations by route.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		roomsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rooms_created_total",
			Help:        "Total rooms created.",
			ConstLabels: constLabels,
		}),
		readingsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "temperature_readings_recorded_total",
			Help:        "Total temperature readings stored.",
			ConstLabels: constLabels,
		}),
		readingsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "temperature_readings_rejected_total",
			Help:        "Total temperature readings the store refused.",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpDuration,
		m.roomsCreated,
		m.readingsRecorded,
		m.readingsRejected,
	)

	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RoomCreated() {
	if m == nil {
		return
	}
	m.roomsCreated.Inc()
}

func (m *Metrics) ReadingRecorded(accepted bool) {
	if m == nil {
		return
	}
	if accepted {
		m.readingsRecorded.Inc()
		return
	}
	m.readingsRejected.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
