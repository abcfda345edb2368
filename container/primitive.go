package container

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/c360/containerkit/errors"
)

// BoolValue is a boolean value (type code 1).
type BoolValue struct {
	base
	value bool
}

// NewBoolValue creates a boolean value.
func NewBoolValue(name string, value bool) *BoolValue {
	return &BoolValue{base: base{name: name, typ: TypeBool}, value: value}
}

// Value returns the boolean payload.
func (v *BoolValue) Value() bool { return v.value }

func (v *BoolValue) Size() int { return 1 }

func (v *BoolValue) ToBool() (bool, error) { return v.value, nil }

func (v *BoolValue) String() string {
	return strconv.FormatBool(v.value)
}

func (v *BoolValue) Bytes() []byte {
	if v.value {
		return []byte{1}
	}
	return []byte{0}
}

func (v *BoolValue) Clone() Value {
	c := *v
	return &c
}

// ShortValue is a 16-bit signed integer value (type code 2).
type ShortValue struct {
	base
	value int16
}

// NewShortValue creates a 16-bit signed integer value.
func NewShortValue(name string, value int16) *ShortValue {
	return &ShortValue{base: base{name: name, typ: TypeShort}, value: value}
}

// Value returns the native payload.
func (v *ShortValue) Value() int16 { return v.value }

func (v *ShortValue) Size() int { return 2 }

func (v *ShortValue) ToShort() (int16, error) { return v.value, nil }

func (v *ShortValue) ToUShort() (uint16, error) {
	n, err := signedToUnsigned(TypeShort, int64(v.value), math.MaxUint16)
	return uint16(n), err
}

func (v *ShortValue) ToInt() (int32, error) { return int32(v.value), nil }

func (v *ShortValue) ToUInt() (uint32, error) {
	n, err := signedToUnsigned(TypeShort, int64(v.value), math.MaxUint32)
	return uint32(n), err
}

func (v *ShortValue) ToLong() (int64, error) { return int64(v.value), nil }

func (v *ShortValue) ToULong() (uint64, error) {
	return signedToUnsigned(TypeShort, int64(v.value), math.MaxUint64)
}

func (v *ShortValue) ToFloat() (float32, error) { return float32(v.value), nil }

func (v *ShortValue) ToDouble() (float64, error) { return float64(v.value), nil }

func (v *ShortValue) String() string { return strconv.FormatInt(int64(v.value), 10) }

func (v *ShortValue) Bytes() []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(v.value))
	return b
}

func (v *ShortValue) Clone() Value {
	c := *v
	return &c
}

// UShortValue is a 16-bit unsigned integer value (type code 3).
type UShortValue struct {
	base
	value uint16
}

// NewUShortValue creates a 16-bit unsigned integer value.
func NewUShortValue(name string, value uint16) *UShortValue {
	return &UShortValue{base: base{name: name, typ: TypeUShort}, value: value}
}

// Value returns the native payload.
func (v *UShortValue) Value() uint16 { return v.value }

func (v *UShortValue) Size() int { return 2 }

func (v *UShortValue) ToShort() (int16, error) {
	n, err := unsignedToSigned(TypeUShort, uint64(v.value), math.MaxInt16)
	return int16(n), err
}

func (v *UShortValue) ToUShort() (uint16, error) { return v.value, nil }

func (v *UShortValue) ToInt() (int32, error) { return int32(v.value), nil }

func (v *UShortValue) ToUInt() (uint32, error) { return uint32(v.value), nil }

func (v *UShortValue) ToLong() (int64, error) { return int64(v.value), nil }

func (v *UShortValue) ToULong() (uint64, error) { return uint64(v.value), nil }

func (v *UShortValue) ToFloat() (float32, error) { return float32(v.value), nil }

func (v *UShortValue) ToDouble() (float64, error) { return float64(v.value), nil }

func (v *UShortValue) String() string { return strconv.FormatUint(uint64(v.value), 10) }

func (v *UShortValue) Bytes() []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v.value)
	return b
}

func (v *UShortValue) Clone() Value {
	c := *v
	return &c
}

// IntValue is a 32-bit signed integer value (type code 4).
type IntValue struct {
	base
	value int32
}

// NewIntValue creates a 32-bit signed integer value.
func NewIntValue(name string, value int32) *IntValue {
	return &IntValue{base: base{name: name, typ: TypeInt}, value: value}
}

// Value returns the native payload.
func (v *IntValue) Value() int32 { return v.value }

func (v *IntValue) Size() int { return 4 }

func (v *IntValue) ToShort() (int16, error) {
	n, err := signedTo(TypeInt, int64(v.value), math.MinInt16, math.MaxInt16)
	return int16(n), err
}

func (v *IntValue) ToUShort() (uint16, error) {
	n, err := signedToUnsigned(TypeInt, int64(v.value), math.MaxUint16)
	return uint16(n), err
}

func (v *IntValue) ToInt() (int32, error) { return v.value, nil }

func (v *IntValue) ToUInt() (uint32, error) {
	n, err := signedToUnsigned(TypeInt, int64(v.value), math.MaxUint32)
	return uint32(n), err
}

func (v *IntValue) ToLong() (int64, error) { return int64(v.value), nil }

func (v *IntValue) ToULong() (uint64, error) {
	return signedToUnsigned(TypeInt, int64(v.value), math.MaxUint64)
}

func (v *IntValue) ToFloat() (float32, error) {
	return signedToFloat32(TypeInt, int64(v.value))
}

func (v *IntValue) ToDouble() (float64, error) { return float64(v.value), nil }

func (v *IntValue) String() string { return strconv.FormatInt(int64(v.value), 10) }

func (v *IntValue) Bytes() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v.value))
	return b
}

func (v *IntValue) Clone() Value {
	c := *v
	return &c
}

// UIntValue is a 32-bit unsigned integer value (type code 5).
type UIntValue struct {
	base
	value uint32
}

// NewUIntValue creates a 32-bit unsigned integer value.
func NewUIntValue(name string, value uint32) *UIntValue {
	return &UIntValue{base: base{name: name, typ: TypeUInt}, value: value}
}

// Value returns the native payload.
func (v *UIntValue) Value() uint32 { return v.value }

func (v *UIntValue) Size() int { return 4 }

func (v *UIntValue) ToShort() (int16, error) {
	n, err := unsignedToSigned(TypeUInt, uint64(v.value), math.MaxInt16)
	return int16(n), err
}

func (v *UIntValue) ToUShort() (uint16, error) {
	n, err := unsignedToUnsigned(TypeUInt, uint64(v.value), math.MaxUint16)
	return uint16(n), err
}

func (v *UIntValue) ToInt() (int32, error) {
	n, err := unsignedToSigned(TypeUInt, uint64(v.value), math.MaxInt32)
	return int32(n), err
}

func (v *UIntValue) ToUInt() (uint32, error) { return v.value, nil }

func (v *UIntValue) ToLong() (int64, error) { return int64(v.value), nil }

func (v *UIntValue) ToULong() (uint64, error) { return uint64(v.value), nil }

func (v *UIntValue) ToFloat() (float32, error) {
	return unsignedToFloat32(TypeUInt, uint64(v.value))
}

func (v *UIntValue) ToDouble() (float64, error) { return float64(v.value), nil }

func (v *UIntValue) String() string { return strconv.FormatUint(uint64(v.value), 10) }

func (v *UIntValue) Bytes() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v.value)
	return b
}

func (v *UIntValue) Clone() Value {
	c := *v
	return &c
}

// LongValue is the 32-bit range-checked signed kind (type code 6). It
// exists for parity with platforms whose native long is 32 bits; the
// constructor rejects values outside [-2^31, 2^31-1].
type LongValue struct {
	base
	value int32
}

// NewLongValue creates a range-checked 32-bit Long value. It fails with a
// range error when value does not fit in 32 signed bits.
func NewLongValue(name string, value int64) (*LongValue, error) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return nil, errors.NewRangeError(
			TypeLong.String(),
			strconv.FormatInt(value, 10),
			strconv.FormatInt(math.MinInt32, 10),
			strconv.FormatInt(math.MaxInt32, 10),
		)
	}
	return &LongValue{base: base{name: name, typ: TypeLong}, value: int32(value)}, nil
}

// Value returns the native payload.
func (v *LongValue) Value() int32 { return v.value }

func (v *LongValue) Size() int { return 4 }

func (v *LongValue) ToShort() (int16, error) {
	n, err := signedTo(TypeLong, int64(v.value), math.MinInt16, math.MaxInt16)
	return int16(n), err
}

func (v *LongValue) ToUShort() (uint16, error) {
	n, err := signedToUnsigned(TypeLong, int64(v.value), math.MaxUint16)
	return uint16(n), err
}

func (v *LongValue) ToInt() (int32, error) { return v.value, nil }

func (v *LongValue) ToUInt() (uint32, error) {
	n, err := signedToUnsigned(TypeLong, int64(v.value), math.MaxUint32)
	return uint32(n), err
}

func (v *LongValue) ToLong() (int64, error) { return int64(v.value), nil }

func (v *LongValue) ToULong() (uint64, error) {
	return signedToUnsigned(TypeLong, int64(v.value), math.MaxUint64)
}

func (v *LongValue) ToFloat() (float32, error) {
	return signedToFloat32(TypeLong, int64(v.value))
}

func (v *LongValue) ToDouble() (float64, error) { return float64(v.value), nil }

func (v *LongValue) String() string { return strconv.FormatInt(int64(v.value), 10) }

func (v *LongValue) Bytes() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v.value))
	return b
}

func (v *LongValue) Clone() Value {
	c := *v
	return &c
}

// ULongValue is the 32-bit range-checked unsigned kind (type code 7).
// The constructor rejects values outside [0, 2^32-1].
type ULongValue struct {
	base
	value uint32
}

// NewULongValue creates a range-checked 32-bit ULong value.
func NewULongValue(name string, value uint64) (*ULongValue, error) {
	if value > math.MaxUint32 {
		return nil, errors.NewRangeError(
			TypeULong.String(),
			strconv.FormatUint(value, 10),
			"0",
			strconv.FormatUint(math.MaxUint32, 10),
		)
	}
	return &ULongValue{base: base{name: name, typ: TypeULong}, value: uint32(value)}, nil
}

// Value returns the native payload.
func (v *ULongValue) Value() uint32 { return v.value }

func (v *ULongValue) Size() int { return 4 }

func (v *ULongValue) ToShort() (int16, error) {
	n, err := unsignedToSigned(TypeULong, uint64(v.value), math.MaxInt16)
	return int16(n), err
}

func (v *ULongValue) ToUShort() (uint16, error) {
	n, err := unsignedToUnsigned(TypeULong, uint64(v.value), math.MaxUint16)
	return uint16(n), err
}

func (v *ULongValue) ToInt() (int32, error) {
	n, err := unsignedToSigned(TypeULong, uint64(v.value), math.MaxInt32)
	return int32(n), err
}

func (v *ULongValue) ToUInt() (uint32, error) { return v.value, nil }

func (v *ULongValue) ToLong() (int64, error) { return int64(v.value), nil }

func (v *ULongValue) ToULong() (uint64, error) { return uint64(v.value), nil }

func (v *ULongValue) ToFloat() (float32, error) {
	return unsignedToFloat32(TypeULong, uint64(v.value))
}

func (v *ULongValue) ToDouble() (float64, error) { return float64(v.value), nil }

func (v *ULongValue) String() string { return strconv.FormatUint(uint64(v.value), 10) }

func (v *ULongValue) Bytes() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v.value)
	return b
}

func (v *ULongValue) Clone() Value {
	c := *v
	return &c
}

// LLongValue is a full-range 64-bit signed integer value (type code 8).
// Construction never fails.
type LLongValue struct {
	base
	value int64
}

// NewLLongValue creates a 64-bit signed integer value.
func NewLLongValue(name string, value int64) *LLongValue {
	return &LLongValue{base: base{name: name, typ: TypeLLong}, value: value}
}

// Value returns the native payload.
func (v *LLongValue) Value() int64 { return v.value }

func (v *LLongValue) Size() int { return 8 }

func (v *LLongValue) ToShort() (int16, error) {
	n, err := signedTo(TypeLLong, v.value, math.MinInt16, math.MaxInt16)
	return int16(n), err
}

func (v *LLongValue) ToUShort() (uint16, error) {
	n, err := signedToUnsigned(TypeLLong, v.value, math.MaxUint16)
	return uint16(n), err
}

func (v *LLongValue) ToInt() (int32, error) {
	n, err := signedTo(TypeLLong, v.value, math.MinInt32, math.MaxInt32)
	return int32(n), err
}

func (v *LLongValue) ToUInt() (uint32, error) {
	n, err := signedToUnsigned(TypeLLong, v.value, math.MaxUint32)
	return uint32(n), err
}

func (v *LLongValue) ToLong() (int64, error) { return v.value, nil }

func (v *LLongValue) ToULong() (uint64, error) {
	return signedToUnsigned(TypeLLong, v.value, math.MaxUint64)
}

func (v *LLongValue) ToFloat() (float32, error) {
	return signedToFloat32(TypeLLong, v.value)
}

func (v *LLongValue) ToDouble() (float64, error) { return float64(v.value), nil }

func (v *LLongValue) String() string { return strconv.FormatInt(v.value, 10) }

func (v *LLongValue) Bytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v.value))
	return b
}

func (v *LLongValue) Clone() Value {
	c := *v
	return &c
}

// ULLongValue is a full-range 64-bit unsigned integer value (type code 9).
// Construction never fails.
type ULLongValue struct {
	base
	value uint64
}

// NewULLongValue creates a 64-bit unsigned integer value.
func NewULLongValue(name string, value uint64) *ULLongValue {
	return &ULLongValue{base: base{name: name, typ: TypeULLong}, value: value}
}

// Value returns the native payload.
func (v *ULLongValue) Value() uint64 { return v.value }

func (v *ULLongValue) Size() int { return 8 }

func (v *ULLongValue) ToShort() (int16, error) {
	n, err := unsignedToSigned(TypeULLong, v.value, math.MaxInt16)
	return int16(n), err
}

func (v *ULLongValue) ToUShort() (uint16, error) {
	n, err := unsignedToUnsigned(TypeULLong, v.value, math.MaxUint16)
	return uint16(n), err
}

func (v *ULLongValue) ToInt() (int32, error) {
	n, err := unsignedToSigned(TypeULLong, v.value, math.MaxInt32)
	return int32(n), err
}

func (v *ULLongValue) ToUInt() (uint32, error) {
	n, err := unsignedToUnsigned(TypeULLong, v.value, math.MaxUint32)
	return uint32(n), err
}

func (v *ULLongValue) ToLong() (int64, error) {
	return unsignedToSigned(TypeULLong, v.value, math.MaxInt64)
}

func (v *ULLongValue) ToULong() (uint64, error) { return v.value, nil }

func (v *ULLongValue) ToFloat() (float32, error) {
	return unsignedToFloat32(TypeULLong, v.value)
}

func (v *ULLongValue) ToDouble() (float64, error) { return float64(v.value), nil }

func (v *ULLongValue) String() string { return strconv.FormatUint(v.value, 10) }

func (v *ULLongValue) Bytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v.value)
	return b
}

func (v *ULLongValue) Clone() Value {
	c := *v
	return &c
}

// FloatValue is a 32-bit IEEE 754 floating point value (type code 10).
type FloatValue struct {
	base
	value float32
}

// NewFloatValue creates a 32-bit float value.
func NewFloatValue(name string, value float32) *FloatValue {
	return &FloatValue{base: base{name: name, typ: TypeFloat}, value: value}
}

// Value returns the native payload.
func (v *FloatValue) Value() float32 { return v.value }

func (v *FloatValue) Size() int { return 4 }

func (v *FloatValue) ToShort() (int16, error) {
	n, err := floatToSigned(TypeFloat, float64(v.value), math.MinInt16, math.MaxInt16)
	return int16(n), err
}

func (v *FloatValue) ToUShort() (uint16, error) {
	n, err := floatToUnsigned(TypeFloat, float64(v.value), math.MaxUint16)
	return uint16(n), err
}

func (v *FloatValue) ToInt() (int32, error) {
	n, err := floatToSigned(TypeFloat, float64(v.value), math.MinInt32, math.MaxInt32)
	return int32(n), err
}

func (v *FloatValue) ToUInt() (uint32, error) {
	n, err := floatToUnsigned(TypeFloat, float64(v.value), math.MaxUint32)
	return uint32(n), err
}

func (v *FloatValue) ToLong() (int64, error) {
	return floatToSigned(TypeFloat, float64(v.value), math.MinInt64, math.MaxInt64)
}

func (v *FloatValue) ToULong() (uint64, error) {
	return floatToUnsigned(TypeFloat, float64(v.value), math.MaxUint64)
}

func (v *FloatValue) ToFloat() (float32, error) { return v.value, nil }

func (v *FloatValue) ToDouble() (float64, error) { return float64(v.value), nil }

func (v *FloatValue) String() string { return formatFloat32(v.value) }

func (v *FloatValue) Bytes() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(v.value))
	return b
}

func (v *FloatValue) Clone() Value {
	c := *v
	return &c
}

// DoubleValue is a 64-bit IEEE 754 floating point value (type code 11).
type DoubleValue struct {
	base
	value float64
}

// NewDoubleValue creates a 64-bit float value.
func NewDoubleValue(name string, value float64) *DoubleValue {
	return &DoubleValue{base: base{name: name, typ: TypeDouble}, value: value}
}

// Value returns the native payload.
func (v *DoubleValue) Value() float64 { return v.value }

func (v *DoubleValue) Size() int { return 8 }

func (v *DoubleValue) ToShort() (int16, error) {
	n, err := floatToSigned(TypeDouble, v.value, math.MinInt16, math.MaxInt16)
	return int16(n), err
}

func (v *DoubleValue) ToUShort() (uint16, error) {
	n, err := floatToUnsigned(TypeDouble, v.value, math.MaxUint16)
	return uint16(n), err
}

func (v *DoubleValue) ToInt() (int32, error) {
	n, err := floatToSigned(TypeDouble, v.value, math.MinInt32, math.MaxInt32)
	return int32(n), err
}

func (v *DoubleValue) ToUInt() (uint32, error) {
	n, err := floatToUnsigned(TypeDouble, v.value, math.MaxUint32)
	return uint32(n), err
}

func (v *DoubleValue) ToLong() (int64, error) {
	return floatToSigned(TypeDouble, v.value, math.MinInt64, math.MaxInt64)
}

func (v *DoubleValue) ToULong() (uint64, error) {
	return floatToUnsigned(TypeDouble, v.value, math.MaxUint64)
}

func (v *DoubleValue) ToFloat() (float32, error) {
	return doubleToFloat(TypeDouble, v.value)
}

func (v *DoubleValue) ToDouble() (float64, error) { return v.value, nil }

func (v *DoubleValue) String() string { return formatFloat64(v.value) }

func (v *DoubleValue) Bytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v.value))
	return b
}

func (v *DoubleValue) Clone() Value {
	c := *v
	return &c
}
