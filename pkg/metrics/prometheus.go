package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Prometheus struct {
	geocodeRequests *prometheus.CounterVec
	fallbacks       *prometheus.CounterVec
	useCaseTotal    *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	trackingCycle   *prometheus.HistogramVec
	trackingDrivers prometheus.Gauge
	trackingChanged prometheus.Counter
	httpDuration    *prometheus.HistogramVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		geocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "geocourier_geocode_requests_total",
			Help:        "Total outbound geocoding provider requests.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"operation", "status"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "geocourier_resolver_fallback_total",
			Help:        "Times a server-side query was unavailable and the in-memory fallback ran.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"operation"}),
		useCaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_usecase_total",
			Help:        "Total number of Use Case executions.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_usecase_duration_seconds",
			Help:        "Use Case execution latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		trackingCycle: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "geocourier_tracking_cycle_seconds",
			Help:        "Duration of one driver sampling cycle.",
			Buckets:     []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 15},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{}),
		trackingDrivers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "geocourier_tracking_drivers",
			Help:        "Drivers seen in the last sampling cycle.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		trackingChanged: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "geocourier_tracking_position_changes_total",
			Help:        "Driver position changes delivered to subscribers.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_http_duration_seconds",
			Help:        "Duration of HTTP requests.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_cache_hits_total",
			Help:        "Total cache hits.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"cache_type"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_cache_misses_total",
			Help:        "Total cache misses.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"cache_type"}),
	}

	reg.MustRegister(
		m.geocodeRequests,
		m.fallbacks,
		m.useCaseTotal,
		m.useCaseDuration,
		m.trackingCycle,
		m.trackingDrivers,
		m.trackingChanged,
		m.httpDuration,
		m.cacheHits,
		m.cacheMisses,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordGeocodeRequest(operation, status string) {
	p.geocodeRequests.WithLabelValues(operation, status).Inc()
}

func (p *Prometheus) RecordFallback(operation string) {
	p.fallbacks.WithLabelValues(operation).Inc()
}

func (p *Prometheus) RecordUseCaseExecution(useCase string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.useCaseTotal.WithLabelValues(useCase, status).Inc()
	p.useCaseDuration.WithLabelValues(useCase, status).Observe(duration.Seconds())
}

func (p *Prometheus) ObserveTrackingCycle(duration time.Duration, drivers, changed int) {
	p.trackingCycle.WithLabelValues().Observe(duration.Seconds())
	p.trackingDrivers.Set(float64(drivers))
	p.trackingChanged.Add(float64(changed))
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}

func (p *Prometheus) IncCacheHit(cacheType string) {
	p.cacheHits.WithLabelValues(cacheType).Inc()
}

func (p *Prometheus) IncCacheMiss(cacheType string) {
	p.cacheMisses.WithLabelValues(cacheType).Inc()
}
