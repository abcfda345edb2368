package store

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/metric"
	"github.com/c360/containerkit/wire"
)

func TestSetAndGet(t *testing.T) {
	s := New()

	created, err := s.Set("count", container.NewIntValue("count", 42))
	require.NoError(t, err)
	assert.True(t, created)

	v, ok := s.Get("count")
	require.True(t, ok)
	n, err := v.ToInt()
	require.NoError(t, err)
	assert.Equal(t, int32(42), n)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestSetReplaces(t *testing.T) {
	s := New()

	_, err := s.Set("k", container.NewIntValue("k", 1))
	require.NoError(t, err)
	created, err := s.Set("k", container.NewIntValue("k", 2))
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, 1, s.Size())
	v, _ := s.Get("k")
	n, _ := v.ToInt()
	assert.Equal(t, int32(2), n)
}

func TestSetValidation(t *testing.T) {
	s := New()

	_, err := s.Set("", container.NewIntValue("k", 1))
	require.Error(t, err)

	_, err = s.Set("k", nil)
	require.Error(t, err)
}

func TestDeleteAndClear(t *testing.T) {
	s := New()
	_, err := s.Set("a", container.NewIntValue("a", 1))
	require.NoError(t, err)
	_, err = s.Set("b", container.NewIntValue("b", 2))
	require.NoError(t, err)

	assert.True(t, s.Delete("a"))
	assert.False(t, s.Delete("a"))
	assert.Equal(t, 1, s.Size())

	s.Clear()
	assert.Equal(t, 0, s.Size())
	assert.Empty(t, s.Keys())
}

func TestForEachSnapshot(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("k%d", i)
		_, err := s.Set(key, container.NewIntValue(key, int32(i)))
		require.NoError(t, err)
	}

	seen := 0
	s.ForEach(func(key string, v container.Value) {
		seen++
		// Mutating during iteration must not deadlock.
		s.Delete(key)
	})
	assert.Equal(t, 5, seen)
	assert.Equal(t, 0, s.Size())
}

func TestSerialize(t *testing.T) {
	s := New(WithName("session"))
	_, err := s.Set("b", container.NewIntValue("b", 2))
	require.NoError(t, err)
	_, err = s.Set("a", container.NewIntValue("a", 1))
	require.NoError(t, err)

	out, err := s.Serialize()
	require.NoError(t, err)

	cont, err := wire.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "session", cont.SourceID())
	assert.Equal(t, "value_store_snapshot", cont.MessageType())
	require.Equal(t, 2, cont.ValueCount())

	// Sorted key order makes snapshots deterministic.
	vals := cont.Values()
	assert.Equal(t, "a", vals[0].Name())
	assert.Equal(t, "b", vals[1].Name())

	again, err := s.Serialize()
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestStatistics(t *testing.T) {
	s := New()
	_, err := s.Set("a", container.NewIntValue("a", 1))
	require.NoError(t, err)
	s.Get("a")
	s.Get("missing")
	s.Delete("a")
	_, err = s.Serialize()
	require.NoError(t, err)

	stats := s.Stats()
	assert.Equal(t, int64(1), stats.Writes())
	assert.Equal(t, int64(2), stats.Reads())
	assert.Equal(t, int64(1), stats.Removes())
	assert.Equal(t, int64(1), stats.Serializations())
	assert.GreaterOrEqual(t, stats.Uptime().Nanoseconds(), int64(0))
}

func TestStoreMetrics(t *testing.T) {
	m := metric.NewMetrics()
	s := New(WithName("session"), WithMetrics(m))

	_, err := s.Set("a", container.NewIntValue("a", 1))
	require.NoError(t, err)
	_, err = s.Set("b", container.NewIntValue("b", 2))
	require.NoError(t, err)
	s.Get("a")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.StoreOperations.WithLabelValues("session", "set")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StoreOperations.WithLabelValues("session", "get")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ValuesStored.WithLabelValues("session")))
}

func TestConcurrentAccess(t *testing.T) {
	s := New()

	var g errgroup.Group
	for w := 0; w < 4; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("w%d-%d", w, i)
				if _, err := s.Set(key, container.NewIntValue(key, int32(i))); err != nil {
					return err
				}
			}
			return nil
		})
	}
	for r := 0; r < 4; r++ {
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				s.Get("w0-0")
				_ = s.Keys()
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, 800, s.Size())
}
