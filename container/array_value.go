package container

import (
	"encoding/binary"
	"fmt"
)

// ArrayValue is an ordered sequence of anonymous values (type code 15).
// Elements may themselves be arrays or nested containers. The sequence is
// owned exclusively by this value; Clone deep-clones the sequence handle
// while elements are shared by handle, not copied.
type ArrayValue struct {
	base
	elements []Value
}

// NewArrayValue creates an array value with the given elements.
func NewArrayValue(name string, elements ...Value) *ArrayValue {
	owned := make([]Value, len(elements))
	copy(owned, elements)
	return &ArrayValue{base: base{name: name, typ: TypeArray}, elements: owned}
}

// Push appends an element to the array.
func (v *ArrayValue) Push(element Value) {
	v.elements = append(v.elements, element)
}

// At returns the element at index, or nil when index is out of bounds.
// It never panics.
func (v *ArrayValue) At(index int) Value {
	if index < 0 || index >= len(v.elements) {
		return nil
	}
	return v.elements[index]
}

// Count returns the number of elements.
func (v *ArrayValue) Count() int { return len(v.elements) }

// IsEmpty reports whether the array has no elements.
func (v *ArrayValue) IsEmpty() bool { return len(v.elements) == 0 }

// Clear removes all elements.
func (v *ArrayValue) Clear() {
	v.elements = nil
}

// Elements returns a snapshot copy of the element slice.
func (v *ArrayValue) Elements() []Value {
	out := make([]Value, len(v.elements))
	copy(out, v.elements)
	return out
}

// Size is the element count word plus the sizes of all elements.
func (v *ArrayValue) Size() int {
	total := 4
	for _, e := range v.elements {
		total += e.Size()
	}
	return total
}

func (v *ArrayValue) String() string {
	return fmt.Sprintf("array(%d)", len(v.elements))
}

// Bytes is the canonical binary form: element count (4 bytes,
// little-endian) followed by each element's canonical bytes.
func (v *ArrayValue) Bytes() []byte {
	out := make([]byte, 4, 4+16*len(v.elements))
	binary.LittleEndian.PutUint32(out, uint32(len(v.elements)))
	for _, e := range v.elements {
		out = append(out, e.Bytes()...)
	}
	return out
}

// Clone returns a new array whose element handles are shared.
func (v *ArrayValue) Clone() Value {
	return NewArrayValue(v.name, v.elements...)
}
