package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelResult},
	)

	WheelSpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWheelSpinsTotal,
			Help: HelpTextWheelSpinsTotal,
		},
		[]string{LabelResult},
	)

	RecordsPersistedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordsPersistedTotal,
			Help: HelpTextRecordsPersistedTotal,
		},
		[]string{LabelGame},
	)

	LimitRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLimitRejectionsTotal,
			Help: HelpTextLimitRejectionsTotal,
		},
		[]string{LabelGame},
	)

	PersistFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistFailuresTotal,
			Help: HelpTextPersistFailuresTotal,
		},
		[]string{LabelGame},
	)
)
