package store

import (
	"sort"
	"sync"

	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/errors"
	"github.com/c360/containerkit/metric"
	"github.com/c360/containerkit/wire"
)

// ValueStore is a thread-safe keyed store of values. Unlike a
// Container, keys are unique: setting an existing key replaces its
// value. Statistics are always collected and optionally exported as
// Prometheus metrics.
type ValueStore struct {
	mu     sync.RWMutex
	values map[string]container.Value

	name    string
	stats   *Statistics
	metrics *metric.Metrics
	codec   *wire.Codec
}

// Option configures a ValueStore
type Option func(*ValueStore)

// WithName sets the store label used in metrics and serialized
// snapshots. The default is "default".
func WithName(name string) Option {
	return func(s *ValueStore) {
		if name != "" {
			s.name = name
		}
	}
}

// WithMetrics enables Prometheus export of store activity. If m is
// nil the option is ignored.
func WithMetrics(m *metric.Metrics) Option {
	return func(s *ValueStore) {
		s.metrics = m
	}
}

// WithCodec sets the codec used by Serialize. The default codec is
// used otherwise.
func WithCodec(c *wire.Codec) Option {
	return func(s *ValueStore) {
		if c != nil {
			s.codec = c
		}
	}
}

// New creates an empty value store
func New(opts ...Option) *ValueStore {
	s := &ValueStore{
		values: make(map[string]container.Value),
		name:   "default",
		stats:  NewStatistics(),
		codec:  wire.NewCodec(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set stores a value under a key, replacing any previous value.
// Returns true if a new entry was created, false if updated.
func (s *ValueStore) Set(key string, v container.Value) (bool, error) {
	if key == "" {
		return false, errors.WrapInvalid(
			errors.New("key cannot be empty"), "store", "Set", "validation")
	}
	if v == nil {
		return false, errors.WrapInvalid(
			errors.New("value cannot be nil"), "store", "Set", "validation")
	}

	s.mu.Lock()
	_, existed := s.values[key]
	s.values[key] = v
	size := len(s.values)
	s.mu.Unlock()

	s.stats.Write()
	if s.metrics != nil {
		s.metrics.RecordStoreOperation(s.name, "set")
		s.metrics.RecordValuesStored(s.name, size)
	}
	return !existed, nil
}

// Get retrieves a value by key
func (s *ValueStore) Get(key string) (container.Value, bool) {
	s.mu.RLock()
	v, ok := s.values[key]
	s.mu.RUnlock()

	s.stats.Read()
	if s.metrics != nil {
		s.metrics.RecordStoreOperation(s.name, "get")
	}
	return v, ok
}

// Delete removes an entry by key. Returns whether the key existed.
func (s *ValueStore) Delete(key string) bool {
	s.mu.Lock()
	_, existed := s.values[key]
	delete(s.values, key)
	size := len(s.values)
	s.mu.Unlock()

	if existed {
		s.stats.Remove()
	}
	if s.metrics != nil {
		s.metrics.RecordStoreOperation(s.name, "delete")
		s.metrics.RecordValuesStored(s.name, size)
	}
	return existed
}

// Clear removes all entries
func (s *ValueStore) Clear() {
	s.mu.Lock()
	removed := len(s.values)
	s.values = make(map[string]container.Value)
	s.mu.Unlock()

	for i := 0; i < removed; i++ {
		s.stats.Remove()
	}
	if s.metrics != nil {
		s.metrics.RecordStoreOperation(s.name, "clear")
		s.metrics.RecordValuesStored(s.name, 0)
	}
}

// Size returns the current number of entries
func (s *ValueStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Keys returns all keys in unspecified order
func (s *ValueStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

// ForEach calls fn for every entry over a snapshot of the store, so
// fn may call back into the store without deadlocking.
func (s *ValueStore) ForEach(fn func(key string, v container.Value)) {
	s.mu.RLock()
	snapshot := make(map[string]container.Value, len(s.values))
	for k, v := range s.values {
		snapshot[k] = v
	}
	s.mu.RUnlock()

	for k, v := range snapshot {
		fn(k, v)
	}
}

// Serialize encodes a snapshot of the store as a wire container. The
// store name becomes the container's source id, so peers can tell
// stores apart.
func (s *ValueStore) Serialize() (string, error) {
	s.mu.RLock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	// Deterministic output regardless of map order.
	sort.Strings(keys)
	cont := container.New(
		container.WithSource(s.name, ""),
		container.WithMessageType("value_store_snapshot"),
		container.WithMaxValues(container.AbsoluteMaxValues),
	)
	var addErr error
	for _, k := range keys {
		if addErr = cont.AddValue(s.values[k].Clone()); addErr != nil {
			break
		}
	}
	s.mu.RUnlock()
	if addErr != nil {
		return "", errors.Wrap(addErr, "store", "Serialize", "building snapshot")
	}

	out, err := s.codec.Encode(cont)
	if err != nil {
		return "", errors.Wrap(err, "store", "Serialize", "encoding snapshot")
	}

	s.stats.Serialization()
	if s.metrics != nil {
		s.metrics.RecordStoreOperation(s.name, "serialize")
	}
	return out, nil
}

// Stats returns the store's statistics tracker
func (s *ValueStore) Stats() *Statistics {
	return s.stats
}

// Name returns the store label
func (s *ValueStore) Name() string {
	return s.name
}
