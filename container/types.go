package container

// Type identifies the kind of a Value. The numeric code is what crosses
// the wire and is shared with the C++, Python, Rust, .NET, and Node
// implementations; it must never be renumbered.
type Type uint8

// Value type codes (stable cross-language contract).
const (
	TypeNull   Type = 0
	TypeBool   Type = 1
	TypeShort  Type = 2
	TypeUShort Type = 3
	TypeInt    Type = 4
	TypeUInt   Type = 5
	// TypeLong and TypeULong are the 32-bit range-checked kinds, kept for
	// parity with platforms whose native long is 32 bits.
	TypeLong   Type = 6
	TypeULong  Type = 7
	TypeLLong  Type = 8
	TypeULLong Type = 9
	TypeFloat  Type = 10
	TypeDouble Type = 11
	TypeBytes  Type = 12
	TypeString Type = 13
	// TypeContainer marks a value whose payload is a nested container.
	TypeContainer Type = 14
	// TypeArray marks an ordered sequence of anonymous values.
	TypeArray Type = 15
)

// TypeFromCode maps a wire type code to a Type. Returns false for codes
// outside the closed 0..15 set.
func TypeFromCode(code uint8) (Type, bool) {
	if code > uint8(TypeArray) {
		return TypeNull, false
	}
	return Type(code), true
}

// Code returns the stable numeric wire code.
func (t Type) Code() uint8 {
	return uint8(t)
}

// String returns the cross-language type name (e.g. "int_value").
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null_value"
	case TypeBool:
		return "bool_value"
	case TypeShort:
		return "short_value"
	case TypeUShort:
		return "ushort_value"
	case TypeInt:
		return "int_value"
	case TypeUInt:
		return "uint_value"
	case TypeLong:
		return "long_value"
	case TypeULong:
		return "ulong_value"
	case TypeLLong:
		return "llong_value"
	case TypeULLong:
		return "ullong_value"
	case TypeFloat:
		return "float_value"
	case TypeDouble:
		return "double_value"
	case TypeBytes:
		return "bytes_value"
	case TypeString:
		return "string_value"
	case TypeContainer:
		return "container_value"
	case TypeArray:
		return "array_value"
	default:
		return "unknown_value"
	}
}

// IsNumeric reports whether the type is an integer or floating point kind.
func (t Type) IsNumeric() bool {
	return t >= TypeShort && t <= TypeDouble
}

// IsInteger reports whether the type is one of the eight integer kinds.
func (t Type) IsInteger() bool {
	return t >= TypeShort && t <= TypeULLong
}

// IsFloat reports whether the type is Float or Double.
func (t Type) IsFloat() bool {
	return t == TypeFloat || t == TypeDouble
}

// FixedSize returns the canonical byte size for fixed-size types.
// Variable-size types (String, Bytes, Container, Array) return false.
func (t Type) FixedSize() (int, bool) {
	switch t {
	case TypeNull:
		return 0, true
	case TypeBool:
		return 1, true
	case TypeShort, TypeUShort:
		return 2, true
	case TypeInt, TypeUInt, TypeLong, TypeULong, TypeFloat:
		return 4, true
	case TypeLLong, TypeULLong, TypeDouble:
		return 8, true
	default:
		return 0, false
	}
}
