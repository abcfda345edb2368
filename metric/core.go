package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all codec and store level metrics
type Metrics struct {
	// Codec metrics
	EncodesTotal   *prometheus.CounterVec
	DecodesTotal   *prometheus.CounterVec
	DecodeErrors   *prometheus.CounterVec
	EncodeDuration *prometheus.HistogramVec
	DecodeDuration *prometheus.HistogramVec

	// Container metrics
	ValuesStored    *prometheus.GaugeVec
	StoreOperations *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all codec and store metrics
func NewMetrics() *Metrics {
	return &Metrics{
		EncodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "containerkit",
				Subsystem: "codec",
				Name:      "encodes_total",
				Help:      "Total number of container encode operations",
			},
			[]string{"codec"},
		),

		DecodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "containerkit",
				Subsystem: "codec",
				Name:      "decodes_total",
				Help:      "Total number of container decode operations",
			},
			[]string{"codec", "status"},
		),

		DecodeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "containerkit",
				Subsystem: "codec",
				Name:      "decode_errors_total",
				Help:      "Total number of decode failures by error kind",
			},
			[]string{"codec", "kind"},
		),

		EncodeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "containerkit",
				Subsystem: "codec",
				Name:      "encode_duration_seconds",
				Help:      "Container encode duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"codec"},
		),

		DecodeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "containerkit",
				Subsystem: "codec",
				Name:      "decode_duration_seconds",
				Help:      "Container decode duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"codec"},
		),

		ValuesStored: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "containerkit",
				Subsystem: "store",
				Name:      "values_stored",
				Help:      "Current number of values held by a store",
			},
			[]string{"store"},
		),

		StoreOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "containerkit",
				Subsystem: "store",
				Name:      "operations_total",
				Help:      "Total number of store operations",
			},
			[]string{"store", "operation"},
		),
	}
}

// RecordEncode increments the encode counter and observes duration
func (m *Metrics) RecordEncode(codec string, duration time.Duration) {
	m.EncodesTotal.WithLabelValues(codec).Inc()
	m.EncodeDuration.WithLabelValues(codec).Observe(duration.Seconds())
}

// RecordDecode increments the decode counter and observes duration
func (m *Metrics) RecordDecode(codec, status string, duration time.Duration) {
	m.DecodesTotal.WithLabelValues(codec, status).Inc()
	m.DecodeDuration.WithLabelValues(codec).Observe(duration.Seconds())
}

// RecordDecodeError increments the decode error counter for an error kind
func (m *Metrics) RecordDecodeError(codec, kind string) {
	m.DecodeErrors.WithLabelValues(codec, kind).Inc()
}

// RecordValuesStored updates the stored-values gauge for a store
func (m *Metrics) RecordValuesStored(store string, count int) {
	m.ValuesStored.WithLabelValues(store).Set(float64(count))
}

// RecordStoreOperation increments the store operation counter
func (m *Metrics) RecordStoreOperation(store, operation string) {
	m.StoreOperations.WithLabelValues(store, operation).Inc()
}
