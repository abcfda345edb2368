package container

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/containerkit/errors"
)

func TestBoolValue(t *testing.T) {
	v := NewBoolValue("enabled", true)

	assert.Equal(t, "enabled", v.Name())
	assert.Equal(t, TypeBool, v.Type())
	assert.Equal(t, 1, v.Size())
	assert.True(t, v.IsBool())
	assert.False(t, v.IsNumeric())

	b, err := v.ToBool()
	require.NoError(t, err)
	assert.True(t, b)

	assert.Equal(t, "true", v.String())
	assert.Equal(t, []byte{1}, v.Bytes())

	// Booleans are not part of the numeric conversion family.
	_, err = v.ToInt()
	assert.ErrorIs(t, err, errors.ErrInvalidConversion)
}

func TestWideningConversionsAlwaysSucceed(t *testing.T) {
	v := NewIntValue("n", 42)

	long, err := v.ToLong()
	require.NoError(t, err)
	assert.Equal(t, int64(42), long)

	d, err := v.ToDouble()
	require.NoError(t, err)
	assert.Equal(t, 42.0, d)

	s := NewShortValue("s", -7)
	i, err := s.ToInt()
	require.NoError(t, err)
	assert.Equal(t, int32(-7), i)
}

func TestNarrowingConversionIsChecked(t *testing.T) {
	big := NewIntValue("big", 70_000)
	_, err := big.ToShort()
	assert.ErrorIs(t, err, errors.ErrValueOutOfRange)

	fits := NewIntValue("fits", 1_000)
	n, err := fits.ToShort()
	require.NoError(t, err)
	assert.Equal(t, int16(1_000), n)

	neg := NewIntValue("neg", -1)
	_, err = neg.ToUInt()
	assert.ErrorIs(t, err, errors.ErrValueOutOfRange)
}

func TestFloatToIntegerRequiresExactness(t *testing.T) {
	pi := NewDoubleValue("pi", 3.14159)
	_, err := pi.ToInt()
	assert.ErrorIs(t, err, errors.ErrInvalidConversion)

	whole := NewDoubleValue("whole", 1024.0)
	n, err := whole.ToInt()
	require.NoError(t, err)
	assert.Equal(t, int32(1024), n)

	huge := NewDoubleValue("huge", 1e30)
	_, err = huge.ToLong()
	assert.ErrorIs(t, err, errors.ErrValueOutOfRange)

	_, err = NewDoubleValue("nan", math.NaN()).ToInt()
	assert.ErrorIs(t, err, errors.ErrInvalidConversion)
}

func TestDoubleToFloatChecksLosslessness(t *testing.T) {
	exact := NewDoubleValue("exact", 0.5)
	f, err := exact.ToFloat()
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f)

	lossy := NewDoubleValue("lossy", 0.1) // 0.1 is not float32-exact
	_, err = lossy.ToFloat()
	assert.ErrorIs(t, err, errors.ErrInvalidConversion)
}

func TestLargeIntegerToFloat32Rejected(t *testing.T) {
	v := NewLLongValue("big", (1<<24)+1) // first integer float32 cannot hold
	_, err := v.ToFloat()
	assert.ErrorIs(t, err, errors.ErrInvalidConversion)

	ok := NewLLongValue("ok", 1<<24)
	f, err := ok.ToFloat()
	require.NoError(t, err)
	assert.Equal(t, float32(1<<24), f)
}

func TestLongValueRangeChecking(t *testing.T) {
	// The documented cross-language boundary cases.
	_, err := NewLongValue("over", 2_147_483_648)
	assert.ErrorIs(t, err, errors.ErrValueOutOfRange)

	v, err := NewLongValue("max", 2_147_483_647)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), v.Value())

	_, err = NewLongValue("under", -2_147_483_649)
	assert.ErrorIs(t, err, errors.ErrValueOutOfRange)

	v, err = NewLongValue("min", math.MinInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), v.Value())
}

func TestULongValueRangeChecking(t *testing.T) {
	_, err := NewULongValue("over", 4_294_967_296)
	assert.ErrorIs(t, err, errors.ErrValueOutOfRange)

	v, err := NewULongValue("max", 4_294_967_295)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), v.Value())
}

func TestLLongValueFullRange(t *testing.T) {
	v := NewLLongValue("max", math.MaxInt64)
	assert.Equal(t, int64(math.MaxInt64), v.Value())

	u := NewULLongValue("max", math.MaxUint64)
	assert.Equal(t, uint64(math.MaxUint64), u.Value())

	long, err := v.ToLong()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), long)

	// MaxUint64 does not fit in int64.
	_, err = u.ToLong()
	assert.ErrorIs(t, err, errors.ErrValueOutOfRange)
}

func TestStringValueRefusesNumericConversion(t *testing.T) {
	v := NewStringValue("n", "42")

	_, err := v.ToInt()
	assert.ErrorIs(t, err, errors.ErrInvalidConversion)
	_, err = v.ToDouble()
	assert.ErrorIs(t, err, errors.ErrInvalidConversion)
	_, err = v.ToBool()
	assert.ErrorIs(t, err, errors.ErrInvalidConversion)

	assert.Equal(t, "42", v.String())
	assert.Equal(t, []byte("42"), v.Bytes())
	assert.Equal(t, 2, v.Size())
}

func TestStringValueSanitizesInvalidUTF8(t *testing.T) {
	v := NewStringValue("s", string([]byte{0x66, 0xff, 0x6f}))
	assert.Equal(t, "f�o", v.Value())
}

func TestBytesValueOwnsItsPayload(t *testing.T) {
	src := []byte{1, 2, 3}
	v := NewBytesValue("data", src)
	src[0] = 99

	assert.Equal(t, []byte{1, 2, 3}, v.Bytes())
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, "AQID", v.String()) // base64 text form

	out := v.Value()
	out[0] = 77
	assert.Equal(t, []byte{1, 2, 3}, v.Bytes())
}

func TestNullValue(t *testing.T) {
	v := NewNullValue("nothing")

	assert.True(t, v.IsNull())
	assert.Equal(t, 0, v.Size())
	assert.Equal(t, "", v.String())
	assert.Nil(t, v.Bytes())

	_, err := v.ToInt()
	assert.ErrorIs(t, err, errors.ErrInvalidConversion)
}

func TestNumericBytesAreLittleEndian(t *testing.T) {
	v := NewIntValue("n", 0x01020304)
	b := v.Bytes()
	require.Len(t, b, 4)
	assert.Equal(t, uint32(0x01020304), binary.LittleEndian.Uint32(b))

	d := NewDoubleValue("d", 1.5)
	db := d.Bytes()
	require.Len(t, db, 8)
	assert.Equal(t, math.Float64bits(1.5), binary.LittleEndian.Uint64(db))
}

func TestCloneProducesIndependentValue(t *testing.T) {
	v := NewIntValue("n", 7)
	c := v.Clone()

	assert.Equal(t, v.Name(), c.Name())
	assert.Equal(t, v.Type(), c.Type())

	n, err := c.ToInt()
	require.NoError(t, err)
	assert.Equal(t, int32(7), n)
}

func TestArrayValueOperations(t *testing.T) {
	arr := NewArrayValue("nums",
		NewIntValue("", 1),
		NewIntValue("", 2),
	)
	arr.Push(NewIntValue("", 3))

	assert.Equal(t, TypeArray, arr.Type())
	assert.True(t, arr.IsArray())
	assert.Equal(t, 3, arr.Count())

	// At never panics: out-of-bounds returns nil.
	assert.Nil(t, arr.At(-1))
	assert.Nil(t, arr.At(3))

	second := arr.At(1)
	require.NotNil(t, second)
	n, err := second.ToInt()
	require.NoError(t, err)
	assert.Equal(t, int32(2), n)

	arr.Clear()
	assert.Equal(t, 0, arr.Count())
	assert.True(t, arr.IsEmpty())
}

func TestArrayValueCloneSharesElementHandles(t *testing.T) {
	elem := NewIntValue("", 1)
	arr := NewArrayValue("a", elem)

	clone := arr.Clone().(*ArrayValue)
	require.Equal(t, 1, clone.Count())
	// Sequence handle is new, elements are shared by reference count.
	assert.Same(t, elem, clone.At(0))

	clone.Push(NewIntValue("", 2))
	assert.Equal(t, 1, arr.Count())
	assert.Equal(t, 2, clone.Count())
}

func TestContainerValueChildren(t *testing.T) {
	cv := NewContainerValue("meta",
		NewStringValue("tag", "a"),
		NewStringValue("tag", "b"),
		NewIntValue("weight", 5),
	)

	assert.Equal(t, 3, cv.ChildCount())
	assert.True(t, cv.IsContainer())

	first := cv.Child("tag", 0)
	require.NotNil(t, first)
	assert.Equal(t, "a", first.String())

	second := cv.Child("tag", 1)
	require.NotNil(t, second)
	assert.Equal(t, "b", second.String())

	assert.Nil(t, cv.Child("tag", 2))
	assert.Nil(t, cv.Child("missing", 0))

	tags := cv.Children("tag")
	require.Len(t, tags, 2)
	assert.Equal(t, "a", tags[0].String())
	assert.Equal(t, "b", tags[1].String())

	assert.True(t, cv.RemoveChild("tag"))
	assert.Equal(t, 1, cv.ChildCount())
	assert.False(t, cv.RemoveChild("tag"))
}

func TestContainerValueCloneIsDeep(t *testing.T) {
	cv := NewContainerValue("meta", NewIntValue("n", 1))
	clone := cv.Clone().(*ContainerValue)

	clone.AddChild(NewIntValue("m", 2))
	assert.Equal(t, 1, cv.ChildCount())
	assert.Equal(t, 2, clone.ChildCount())
}
