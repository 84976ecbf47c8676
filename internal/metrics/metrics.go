package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Sink records application metrics. Components receive a Sink so tests and
// metric-less deployments can pass NopSink.
type Sink interface {
	RecordSourceEvents(source string, count int)
	RecordSourceError(source string)
	RecordSkippedRecords(source string, count int)
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordExternalSync(success bool, teams int)
}

// NopSink discards all metrics.
type NopSink struct{}

func (NopSink) RecordSourceEvents(string, int)                   {}
func (NopSink) RecordSourceError(string)                         {}
func (NopSink) RecordSkippedRecords(string, int)                 {}
func (NopSink) RecordRequest(string, string, int, time.Duration) {}
func (NopSink) RecordExternalSync(bool, int)                     {}

// PromSink records calendar aggregation and HTTP metrics in Prometheus.
type PromSink struct {
	sourceEvents  *prometheus.CounterVec
	sourceErrors  *prometheus.CounterVec
	skippedTotal  *prometheus.CounterVec
	requests      *prometheus.CounterVec
	requestTiming *prometheus.HistogramVec
	syncRuns      *prometheus.CounterVec
	syncedTeams   prometheus.Gauge
}

// NewPromSink registers collectors on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers collectors on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	sourceEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calendar_source_events_total",
		Help: "Number of events emitted per calendar source",
	}, []string{"source"})
	sourceErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calendar_source_errors_total",
		Help: "Number of per-source fetch failures during aggregation",
	}, []string{"source"})
	skippedTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calendar_skipped_records_total",
		Help: "Number of malformed records skipped during normalization",
	}, []string{"source"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of handled HTTP requests",
	}, []string{"method", "route", "status"})
	requestTiming := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	syncRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "external_sync_runs_total",
		Help: "Number of external team sync runs",
	}, []string{"success"})
	syncedTeams := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "external_synced_teams",
		Help: "Number of external teams stored by the most recent sync",
	})

	if err := reg.Register(sourceEvents); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			sourceEvents = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(sourceErrors); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			sourceErrors = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(skippedTotal); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			skippedTotal = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(requests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			requests = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(requestTiming); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			requestTiming = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(syncRuns); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			syncRuns = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(syncedTeams); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			syncedTeams = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		sourceEvents:  sourceEvents,
		sourceErrors:  sourceErrors,
		skippedTotal:  skippedTotal,
		requests:      requests,
		requestTiming: requestTiming,
		syncRuns:      syncRuns,
		syncedTeams:   syncedTeams,
	}, nil
}

// RecordSourceEvents increments the per-source emitted event counter.
func (s *PromSink) RecordSourceEvents(source string, count int) {
	if count > 0 {
		s.sourceEvents.WithLabelValues(source).Add(float64(count))
	}
}

// RecordSourceError increments the per-source failure counter.
func (s *PromSink) RecordSourceError(source string) {
	s.sourceErrors.WithLabelValues(source).Inc()
}

// RecordSkippedRecords increments the malformed record counter.
func (s *PromSink) RecordSkippedRecords(source string, count int) {
	if count > 0 {
		s.skippedTotal.WithLabelValues(source).Add(float64(count))
	}
}

// RecordRequest records one handled HTTP request.
func (s *PromSink) RecordRequest(method, route string, status int, duration time.Duration) {
	s.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.requestTiming.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordExternalSync records one sync run and the resulting team count.
func (s *PromSink) RecordExternalSync(success bool, teams int) {
	s.syncRuns.WithLabelValues(strconv.FormatBool(success)).Inc()
	if success {
		s.syncedTeams.Set(float64(teams))
	}
}
