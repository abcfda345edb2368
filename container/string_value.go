package container

import "strings"

// StringValue is a UTF-8 text value (type code 13). Payloads are valid
// UTF-8 by construction; invalid sequences are replaced with U+FFFD.
//
// String and numeric kinds never convert into each other implicitly: all
// numeric conversion methods fail. Parse the text explicitly if a number
// is wanted.
type StringValue struct {
	base
	value string
}

// NewStringValue creates a string value, sanitizing to valid UTF-8.
func NewStringValue(name, value string) *StringValue {
	return &StringValue{
		base:  base{name: name, typ: TypeString},
		value: strings.ToValidUTF8(value, "�"),
	}
}

// Value returns the text payload.
func (v *StringValue) Value() string { return v.value }

func (v *StringValue) Size() int { return len(v.value) }

func (v *StringValue) String() string { return v.value }

func (v *StringValue) Bytes() []byte { return []byte(v.value) }

func (v *StringValue) Clone() Value {
	c := *v
	return &c
}
