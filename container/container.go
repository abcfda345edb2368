package container

import (
	"sync"

	"github.com/c360/containerkit/errors"
)

// Container limits and defaults.
const (
	// DefaultMaxValues is the default cap on values per container.
	DefaultMaxValues = 10_000
	// AbsoluteMaxValues is the hard ceiling; configured caps are clamped.
	AbsoluteMaxValues = 100_000
	// DefaultMessageType marks a plain data container with no routing.
	DefaultMessageType = "data_container"
	// DefaultVersion is used when no version is supplied at construction.
	DefaultVersion = "1.0.0.0"
)

// Container is the top-level, thread-safe, header-carrying collection of
// named values. It owns four routing header strings (source and target id
// plus sub-id each), a message type, a version, and an ordered multi-map
// from name to one or more values.
//
// A *Container is the cheap shared handle: pass it between goroutines
// freely; all access goes through one reader/writer lock. Copy is the
// distinct, explicit O(n) duplication and must not be confused with
// handle sharing.
type Container struct {
	mu sync.RWMutex

	sourceID    string
	sourceSubID string
	targetID    string
	targetSubID string
	messageType string
	version     string

	// values preserves global insertion order; valueMap indexes the same
	// handles by name for O(1) lookup. Both are updated together under
	// the write lock.
	values    []Value
	valueMap  map[string][]Value
	maxValues int
}

// Option configures a Container at construction.
type Option func(*Container)

// WithMaxValues caps the number of values. Values above AbsoluteMaxValues
// are clamped; zero or negative selects the default.
func WithMaxValues(n int) Option {
	return func(c *Container) {
		switch {
		case n <= 0:
			c.maxValues = DefaultMaxValues
		case n > AbsoluteMaxValues:
			c.maxValues = AbsoluteMaxValues
		default:
			c.maxValues = n
		}
	}
}

// WithMessageType sets the message type.
func WithMessageType(messageType string) Option {
	return func(c *Container) { c.messageType = messageType }
}

// WithVersion sets the protocol version string carried in the header.
func WithVersion(version string) Option {
	return func(c *Container) { c.version = version }
}

// WithSource sets the source routing fields.
func WithSource(id, subID string) Option {
	return func(c *Container) {
		c.sourceID = id
		c.sourceSubID = subID
	}
}

// WithTarget sets the target routing fields.
func WithTarget(id, subID string) Option {
	return func(c *Container) {
		c.targetID = id
		c.targetSubID = subID
	}
}

// New creates an empty container. Defaults: message type
// "data_container", version "1.0.0.0", max values 10 000.
func New(opts ...Option) *Container {
	c := &Container{
		messageType: DefaultMessageType,
		version:     DefaultVersion,
		valueMap:    make(map[string][]Value),
		maxValues:   DefaultMaxValues,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSource sets the source (sender) routing fields.
func (c *Container) SetSource(id, subID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sourceID = id
	c.sourceSubID = subID
}

// SetTarget sets the target (receiver) routing fields.
func (c *Container) SetTarget(id, subID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.targetID = id
	c.targetSubID = subID
}

// SetMessageType sets the message type.
func (c *Container) SetMessageType(messageType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messageType = messageType
}

// SetVersion sets the header version string.
func (c *Container) SetVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version = version
}

// SwapHeader exchanges source and target routing fields in one atomic
// step, for building a response from a request. No intermediate state is
// observable outside the lock.
func (c *Container) SwapHeader() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sourceID, c.targetID = c.targetID, c.sourceID
	c.sourceSubID, c.targetSubID = c.targetSubID, c.sourceSubID
}

// SourceID returns the source id header field.
func (c *Container) SourceID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sourceID
}

// SourceSubID returns the source sub-id header field.
func (c *Container) SourceSubID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sourceSubID
}

// TargetID returns the target id header field.
func (c *Container) TargetID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.targetID
}

// TargetSubID returns the target sub-id header field.
func (c *Container) TargetSubID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.targetSubID
}

// MessageType returns the message type header field.
func (c *Container) MessageType() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.messageType
}

// Version returns the header version string.
func (c *Container) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// MaxValues returns the configured value cap.
func (c *Container) MaxValues() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxValues
}

// AddValue appends a value under its own name. It fails with a limit
// error when the insert would exceed the configured cap; state is
// unchanged on failure.
func (c *Container) AddValue(v Value) error {
	if v == nil {
		return errors.WrapInvalid(errors.New("nil value"), "Container", "AddValue", "argument check")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.values) >= c.maxValues {
		return errors.NewLimitError(c.maxValues, len(c.values)+1)
	}

	c.values = append(c.values, v)
	c.valueMap[v.Name()] = append(c.valueMap[v.Name()], v)
	return nil
}

// GetValue returns the first value inserted under name, or a not-found
// error.
func (c *Container) GetValue(name string) (Value, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	vs := c.valueMap[name]
	if len(vs) == 0 {
		return nil, errors.NewNotFoundError(name)
	}
	return vs[0], nil
}

// GetValueArray returns all values under name in insertion order. The
// returned slice is a snapshot copy; an unknown name yields an empty
// slice.
func (c *Container) GetValueArray(name string) []Value {
	c.mu.RLock()
	defer c.mu.RUnlock()

	vs := c.valueMap[name]
	out := make([]Value, len(vs))
	copy(out, vs)
	return out
}

// Contains reports whether any value exists under name.
func (c *Container) Contains(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.valueMap[name]) > 0
}

// RemoveValue removes every value under name. Returns whether anything
// was removed.
func (c *Container) RemoveValue(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.valueMap[name]; !ok {
		return false
	}
	delete(c.valueMap, name)

	kept := c.values[:0]
	for _, v := range c.values {
		if v.Name() != name {
			kept = append(kept, v)
		}
	}
	c.values = kept
	return true
}

// ClearValues removes all values. Header fields are untouched.
func (c *Container) ClearValues() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = nil
	c.valueMap = make(map[string][]Value)
}

// ValueCount returns the number of stored values.
func (c *Container) ValueCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// IsEmpty reports whether the container holds no values.
func (c *Container) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values) == 0
}

// Values returns a stable snapshot of all values in insertion order.
// Concurrent inserts or removals after the snapshot is taken are not
// reflected in the returned slice.
func (c *Container) Values() []Value {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Value, len(c.values))
	copy(out, c.values)
	return out
}

// Header returns all six header fields as one consistent snapshot.
func (c *Container) Header() (sourceID, sourceSubID, targetID, targetSubID, messageType, version string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sourceID, c.sourceSubID, c.targetID, c.targetSubID, c.messageType, c.version
}

// Copy produces an independent container. When includeValues is false
// only the header fields are copied, which is the cheap way to build a
// response skeleton from a request. When true, values are deep-cloned so
// the copy shares nothing with the original.
func (c *Container) Copy(includeValues bool) *Container {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := &Container{
		sourceID:    c.sourceID,
		sourceSubID: c.sourceSubID,
		targetID:    c.targetID,
		targetSubID: c.targetSubID,
		messageType: c.messageType,
		version:     c.version,
		valueMap:    make(map[string][]Value),
		maxValues:   c.maxValues,
	}

	if includeValues {
		out.values = make([]Value, len(c.values))
		for i, v := range c.values {
			cloned := v.Clone()
			out.values[i] = cloned
			out.valueMap[cloned.Name()] = append(out.valueMap[cloned.Name()], cloned)
		}
	}

	return out
}
