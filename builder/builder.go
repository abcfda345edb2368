package builder

import (
	"github.com/google/uuid"

	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/errors"
)

// Builder assembles a container fluently. Errors raised along the way
// are deferred: every method keeps chaining and Build reports the
// first failure, so call sites stay flat.
type Builder struct {
	opts   []container.Option
	values []container.Value
	err    error
}

// New creates an empty builder
func New() *Builder {
	return &Builder{}
}

// WithSource sets the source routing pair
func (b *Builder) WithSource(id, subID string) *Builder {
	b.opts = append(b.opts, container.WithSource(id, subID))
	return b
}

// WithGeneratedSource sets the source id with a fresh unique sub id,
// for callers that need per-session addressing without coordinating.
func (b *Builder) WithGeneratedSource(id string) *Builder {
	return b.WithSource(id, uuid.NewString())
}

// WithTarget sets the target routing pair
func (b *Builder) WithTarget(id, subID string) *Builder {
	b.opts = append(b.opts, container.WithTarget(id, subID))
	return b
}

// WithType sets the message type
func (b *Builder) WithType(messageType string) *Builder {
	b.opts = append(b.opts, container.WithMessageType(messageType))
	return b
}

// WithVersion sets the protocol version
func (b *Builder) WithVersion(version string) *Builder {
	b.opts = append(b.opts, container.WithVersion(version))
	return b
}

// WithMaxValues sets the value cap
func (b *Builder) WithMaxValues(max int) *Builder {
	b.opts = append(b.opts, container.WithMaxValues(max))
	return b
}

// Add appends a value
func (b *Builder) Add(v container.Value) *Builder {
	if b.err != nil {
		return b
	}
	if v == nil {
		b.err = errors.WrapInvalid(
			errors.New("nil value"), "builder", "Add", "add failed")
		return b
	}
	b.values = append(b.values, v)
	return b
}

// AddBool appends a boolean value
func (b *Builder) AddBool(name string, v bool) *Builder {
	return b.Add(container.NewBoolValue(name, v))
}

// AddInt appends a 32-bit integer value
func (b *Builder) AddInt(name string, v int32) *Builder {
	return b.Add(container.NewIntValue(name, v))
}

// AddLong appends a range-checked long value; out-of-range input
// surfaces at Build.
func (b *Builder) AddLong(name string, v int64) *Builder {
	if b.err != nil {
		return b
	}
	lv, err := container.NewLongValue(name, v)
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(lv)
}

// AddLLong appends a 64-bit integer value
func (b *Builder) AddLLong(name string, v int64) *Builder {
	return b.Add(container.NewLLongValue(name, v))
}

// AddDouble appends a 64-bit float value
func (b *Builder) AddDouble(name string, v float64) *Builder {
	return b.Add(container.NewDoubleValue(name, v))
}

// AddString appends a string value
func (b *Builder) AddString(name, v string) *Builder {
	return b.Add(container.NewStringValue(name, v))
}

// AddBytes appends a bytes value
func (b *Builder) AddBytes(name string, v []byte) *Builder {
	return b.Add(container.NewBytesValue(name, v))
}

// Err returns the first deferred error, if any
func (b *Builder) Err() error {
	return b.err
}

// Build creates the container. The first error recorded during
// chaining wins; insert failures such as an exceeded value cap are
// reported the same way.
func (b *Builder) Build() (*container.Container, error) {
	if b.err != nil {
		return nil, b.err
	}

	cont := container.New(b.opts...)
	for _, v := range b.values {
		if err := cont.AddValue(v); err != nil {
			return nil, errors.Wrap(err, "builder", "Build", "adding values")
		}
	}
	return cont, nil
}
