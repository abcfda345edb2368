package container

// Value is the capability every variant implements: identity, type tag,
// size, checked conversions, canonical serialized forms, and a polymorphic
// clone producing a new owned handle.
//
// Conversion methods follow the checked contract: widening always
// succeeds, narrowing fails with a range error when the source value
// cannot be represented exactly in the target type, and string/numeric
// conversions are never implicit. String() is total and never fails.
type Value interface {
	// Name returns the (non-unique) key of this value.
	Name() string

	// Type returns the type tag. It never changes after construction.
	Type() Type

	// Size returns the byte size of the canonical representation.
	Size() int

	// Classification predicates.
	IsNull() bool
	IsBool() bool
	IsNumeric() bool
	IsString() bool
	IsBytes() bool
	IsContainer() bool
	IsArray() bool

	// Checked conversions. ToLong/ToULong produce the full 64-bit result;
	// the 32-bit Long/ULong kinds enforce their range at construction.
	ToBool() (bool, error)
	ToShort() (int16, error)
	ToUShort() (uint16, error)
	ToInt() (int32, error)
	ToUInt() (uint32, error)
	ToLong() (int64, error)
	ToULong() (uint64, error)
	ToFloat() (float32, error)
	ToDouble() (float64, error)

	// String returns the canonical text form. Total, never fails.
	String() string

	// Bytes returns the canonical binary form: little-endian for
	// fixed-size kinds, raw bytes for Bytes, UTF-8 for String.
	Bytes() []byte

	// Clone returns a new, independently owned copy of this value.
	Clone() Value
}

// base carries the identity shared by all variants and supplies failing
// defaults for every conversion. Variants embed it and override the
// conversions their kind supports, mirroring the closed trait design of
// the sibling implementations.
type base struct {
	name string
	typ  Type
}

func (b base) Name() string { return b.name }

func (b base) Type() Type { return b.typ }

func (b base) IsNull() bool      { return b.typ == TypeNull }
func (b base) IsBool() bool      { return b.typ == TypeBool }
func (b base) IsNumeric() bool   { return b.typ.IsNumeric() }
func (b base) IsString() bool    { return b.typ == TypeString }
func (b base) IsBytes() bool     { return b.typ == TypeBytes }
func (b base) IsContainer() bool { return b.typ == TypeContainer }
func (b base) IsArray() bool     { return b.typ == TypeArray }

func (b base) ToBool() (bool, error) {
	return false, conversionError(b.typ, "bool")
}

func (b base) ToShort() (int16, error) {
	return 0, conversionError(b.typ, "int16")
}

func (b base) ToUShort() (uint16, error) {
	return 0, conversionError(b.typ, "uint16")
}

func (b base) ToInt() (int32, error) {
	return 0, conversionError(b.typ, "int32")
}

func (b base) ToUInt() (uint32, error) {
	return 0, conversionError(b.typ, "uint32")
}

func (b base) ToLong() (int64, error) {
	return 0, conversionError(b.typ, "int64")
}

func (b base) ToULong() (uint64, error) {
	return 0, conversionError(b.typ, "uint64")
}

func (b base) ToFloat() (float32, error) {
	return 0, conversionError(b.typ, "float32")
}

func (b base) ToDouble() (float64, error) {
	return 0, conversionError(b.typ, "float64")
}
