package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nagoyameshi"

// Registry owns every collector the service exports. Instances are
// independent so tests can build their own.
type Registry struct {
	reg *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
	billingCalls    *prometheus.CounterVec
	billingLatency  *prometheus.HistogramVec
	revocationEvent *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		billingCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "billing_calls_total", Help: "Billing provider calls."},
			[]string{"operation", "outcome"}, // outcome: ok|error
		),
		billingLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "billing_call_duration_seconds",
				Help:    "Billing provider call duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		revocationEvent: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "token_revocation_events_total", Help: "Revocation store events."},
			[]string{"event"}, // event: revoke|hit|miss|error
		),
	}
	r.reg.MustRegister(
		r.httpRequests, r.httpLatency, r.billingCalls, r.billingLatency, r.revocationEvent,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

func (r *Registry) ObserveHTTP(route, method string, status int, dur time.Duration) {
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (r *Registry) ObserveBilling(operation string, err error, dur time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.billingCalls.WithLabelValues(operation, outcome).Inc()
	r.billingLatency.WithLabelValues(operation).Observe(dur.Seconds())
}

func (r *Registry) ObserveRevocation(event string) {
	r.revocationEvent.WithLabelValues(event).Inc()
}
