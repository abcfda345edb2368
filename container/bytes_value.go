package container

import "encoding/base64"

// BytesValue is an arbitrary binary value (type code 12). Text forms
// (wire, JSON, XML) carry the payload base64-encoded; Bytes() returns the
// raw payload.
type BytesValue struct {
	base
	value []byte
}

// NewBytesValue creates a binary value. The payload is copied so the
// value owns its data.
func NewBytesValue(name string, value []byte) *BytesValue {
	owned := make([]byte, len(value))
	copy(owned, value)
	return &BytesValue{base: base{name: name, typ: TypeBytes}, value: owned}
}

// Value returns a copy of the binary payload.
func (v *BytesValue) Value() []byte {
	out := make([]byte, len(v.value))
	copy(out, v.value)
	return out
}

func (v *BytesValue) Size() int { return len(v.value) }

func (v *BytesValue) String() string {
	return base64.StdEncoding.EncodeToString(v.value)
}

func (v *BytesValue) Bytes() []byte {
	out := make([]byte, len(v.value))
	copy(out, v.value)
	return out
}

func (v *BytesValue) Clone() Value {
	return NewBytesValue(v.name, v.value)
}
