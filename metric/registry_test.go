package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsRegistry(t *testing.T) {
	r := NewMetricsRegistry()

	require.NotNil(t, r.PrometheusRegistry())
	require.NotNil(t, r.CoreMetrics())
}

func TestRecordEncodeDecode(t *testing.T) {
	m := NewMetrics()

	m.RecordEncode("wire", 5*time.Millisecond)
	m.RecordEncode("wire", 2*time.Millisecond)
	m.RecordDecode("wire", "ok", time.Millisecond)
	m.RecordDecodeError("wire", "malformed_field")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.EncodesTotal.WithLabelValues("wire")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DecodesTotal.WithLabelValues("wire", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DecodeErrors.WithLabelValues("wire", "malformed_field")))
}

func TestRecordStoreMetrics(t *testing.T) {
	m := NewMetrics()

	m.RecordValuesStored("session", 7)
	m.RecordStoreOperation("session", "set")
	m.RecordStoreOperation("session", "set")

	assert.Equal(t, float64(7), testutil.ToFloat64(m.ValuesStored.WithLabelValues("session")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.StoreOperations.WithLabelValues("session", "set")))
}

func TestRegisterAndUnregister(t *testing.T) {
	r := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_component_ops_total",
		Help: "test counter",
	})

	require.NoError(t, r.RegisterCounter("test", "ops", counter))

	// Second registration under the same key is rejected.
	err := r.RegisterCounter("test", "ops", counter)
	require.Error(t, err)

	assert.True(t, r.Unregister("test", "ops"))
	assert.False(t, r.Unregister("test", "ops"))
}

func TestRegisterDistinctComponents(t *testing.T) {
	r := NewMetricsRegistry()

	g1 := prometheus.NewGauge(prometheus.GaugeOpts{Name: "comp_a_size", Help: "a"})
	g2 := prometheus.NewGauge(prometheus.GaugeOpts{Name: "comp_b_size", Help: "b"})

	require.NoError(t, r.RegisterGauge("a", "size", g1))
	require.NoError(t, r.RegisterGauge("b", "size", g2))
}
