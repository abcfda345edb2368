package container

import (
	"encoding/binary"
	"fmt"
)

// ContainerValue is a named value whose payload is a list of named child
// values (type code 14). Children are heterogeneous, ordered, and may
// repeat names; the value embeds one container inside another on the wire.
type ContainerValue struct {
	base
	children []Value
}

// NewContainerValue creates a container value with the given children.
func NewContainerValue(name string, children ...Value) *ContainerValue {
	owned := make([]Value, len(children))
	copy(owned, children)
	return &ContainerValue{base: base{name: name, typ: TypeContainer}, children: owned}
}

// AddChild appends a child value.
func (v *ContainerValue) AddChild(child Value) {
	v.children = append(v.children, child)
}

// Child returns the index-th child (0-based) whose name matches, or nil.
func (v *ContainerValue) Child(name string, index int) Value {
	seen := 0
	for _, c := range v.children {
		if c.Name() == name {
			if seen == index {
				return c
			}
			seen++
		}
	}
	return nil
}

// Children returns all children with the given name, insertion order
// preserved.
func (v *ContainerValue) Children(name string) []Value {
	var out []Value
	for _, c := range v.children {
		if c.Name() == name {
			out = append(out, c)
		}
	}
	return out
}

// RemoveChild removes every child with the given name. Returns whether
// anything was removed.
func (v *ContainerValue) RemoveChild(name string) bool {
	kept := v.children[:0]
	removed := false
	for _, c := range v.children {
		if c.Name() == name {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	v.children = kept
	return removed
}

// ClearChildren removes all children.
func (v *ContainerValue) ClearChildren() {
	v.children = nil
}

// ChildCount returns the number of children.
func (v *ContainerValue) ChildCount() int { return len(v.children) }

// AllChildren returns a snapshot copy of the child slice.
func (v *ContainerValue) AllChildren() []Value {
	out := make([]Value, len(v.children))
	copy(out, v.children)
	return out
}

// Size is the child count word plus the sizes of all children.
func (v *ContainerValue) Size() int {
	total := 4
	for _, c := range v.children {
		total += c.Size()
	}
	return total
}

func (v *ContainerValue) String() string {
	return fmt.Sprintf("container(%d)", len(v.children))
}

// Bytes is the canonical binary form: child count (4 bytes,
// little-endian) followed by each child's canonical bytes.
func (v *ContainerValue) Bytes() []byte {
	out := make([]byte, 4, 4+16*len(v.children))
	binary.LittleEndian.PutUint32(out, uint32(len(v.children)))
	for _, c := range v.children {
		out = append(out, c.Bytes()...)
	}
	return out
}

// Clone returns a new container value with deep-cloned children.
func (v *ContainerValue) Clone() Value {
	cloned := make([]Value, len(v.children))
	for i, c := range v.children {
		cloned[i] = c.Clone()
	}
	return &ContainerValue{base: v.base, children: cloned}
}
