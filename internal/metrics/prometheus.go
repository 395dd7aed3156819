package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Method = `method`
const Status = `status`

const StatusOk = `ok`
const StatusProtocolError = `protocol_error`
const StatusTransportError = `transport_error`
const StatusCoercionError = `coercion_error`

const DefaultPrefix = `elementsrpc`

// Store holds the client's collectors. A nil *Store is valid and records nothing.
type Store struct {
	Prometheus *prometheus.Registry
	Requests   *prometheus.CounterVec
	Latency    *prometheus.HistogramVec
	BatchSize  prometheus.Histogram
	CacheHits  *prometheus.CounterVec
}

func New(promRegistry *prometheus.Registry, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	factory := promauto.With(promRegistry)

	return &Store{
		Prometheus: promRegistry,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_requests_total", prefix),
			Help: "The total number of RPC calls by outcome",
		}, []string{Method, Status}),
		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    fmt.Sprintf("%s_request_duration_seconds", prefix),
			Help:    "Time spent waiting for the daemon to answer",
			Buckets: prometheus.DefBuckets,
		}, []string{Method}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    fmt.Sprintf("%s_batch_size", prefix),
			Help:    "Number of calls flushed per batch",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		CacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_cache_hits_total", prefix),
			Help: "The total number of results served from the cache",
		}, []string{Method}),
	}
}

// ObserveCall records the outcome and latency of one call
func (s *Store) ObserveCall(method, status string, elapsed time.Duration) {
	if s == nil {
		return
	}
	s.Requests.WithLabelValues(method, status).Inc()
	if status != StatusCoercionError {
		s.Latency.WithLabelValues(method).Observe(elapsed.Seconds())
	}
}

func (s *Store) ObserveBatch(size int) {
	if s == nil {
		return
	}
	s.BatchSize.Observe(float64(size))
}

func (s *Store) CacheHit(method string) {
	if s == nil {
		return
	}
	s.CacheHits.WithLabelValues(method).Inc()
}
