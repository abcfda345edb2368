package wire

import (
	"time"

	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/errors"
	"github.com/c360/containerkit/metric"
)

// DefaultMaxDepth bounds how deeply arrays and containers may nest,
// on both the encode and the decode path.
const DefaultMaxDepth = 32

const codecName = "wire"

// Codec encodes containers to the text wire format and decodes them
// back. A Codec is immutable after construction and safe for
// concurrent use; Encode and Decode take no locks, so callers working
// with a shared Container should snapshot or copy it first.
type Codec struct {
	maxDepth  int
	maxValues int
	metrics   *metric.Metrics
}

// Option configures a Codec
type Option func(*Codec)

// WithMaxDepth sets the maximum nesting depth for arrays and
// containers. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *Codec) {
		if depth >= 1 {
			c.maxDepth = depth
		}
	}
}

// WithMaxValues sets the value cap applied to containers rebuilt by
// Decode. Without it decoded containers carry the default cap, so
// wire text from a sender configured above the default needs a
// matching codec to round-trip. Values below 1 are ignored; the
// container clamps the cap at its absolute ceiling.
func WithMaxValues(max int) Option {
	return func(c *Codec) {
		if max >= 1 {
			c.maxValues = max
		}
	}
}

// WithMetrics attaches Prometheus metrics to the codec
func WithMetrics(m *metric.Metrics) Option {
	return func(c *Codec) {
		c.metrics = m
	}
}

// NewCodec creates a codec with the given options
func NewCodec(opts ...Option) *Codec {
	c := &Codec{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxDepth returns the configured nesting limit
func (c *Codec) MaxDepth() int {
	return c.maxDepth
}

// MaxValues returns the decode-side value cap, or 0 when decoded
// containers keep the default.
func (c *Codec) MaxValues() int {
	return c.maxValues
}

// Encode serializes a container to its wire text form
func (c *Codec) Encode(cont *container.Container) (string, error) {
	start := time.Now()
	out, err := c.encode(cont)
	if c.metrics != nil && err == nil {
		c.metrics.RecordEncode(codecName, time.Since(start))
	}
	return out, err
}

// Decode parses wire text into a freshly built container. The input
// is never partially applied: on any error no container is returned.
func (c *Codec) Decode(input string) (*container.Container, error) {
	start := time.Now()
	cont, err := c.decode(input)
	if c.metrics != nil {
		if err != nil {
			c.metrics.RecordDecode(codecName, "error", time.Since(start))
			c.metrics.RecordDecodeError(codecName, errorKind(err))
		} else {
			c.metrics.RecordDecode(codecName, "ok", time.Since(start))
		}
	}
	return cont, err
}

var defaultCodec = NewCodec()

// Encode serializes a container using the default codec
func Encode(cont *container.Container) (string, error) {
	return defaultCodec.Encode(cont)
}

// Decode parses wire text using the default codec
func Decode(input string) (*container.Container, error) {
	return defaultCodec.Decode(input)
}

// errorKind maps a decode error to its metric label
func errorKind(err error) string {
	switch {
	case errors.Is(err, errors.ErrMaxDepthExceeded):
		return "max_depth_exceeded"
	case errors.Is(err, errors.ErrUnknownTypeCode):
		return "unknown_type_code"
	case errors.Is(err, errors.ErrUnterminatedBlock):
		return "unterminated_block"
	case errors.Is(err, errors.ErrMalformedField):
		return "malformed_field"
	case errors.Is(err, errors.ErrLimitExceeded):
		return "limit_exceeded"
	case errors.Is(err, errors.ErrValueOutOfRange):
		return "value_out_of_range"
	default:
		return "invalid_format"
	}
}
