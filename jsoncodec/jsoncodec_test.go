package jsoncodec

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/errors"
)

func TestMarshalShape(t *testing.T) {
	c := container.New(container.WithMessageType("user_data"), container.WithSource("client", "s1"))
	require.NoError(t, c.AddValue(container.NewIntValue("count", 42)))
	require.NoError(t, c.AddValue(container.NewStringValue("name", "Alice")))

	data, err := Marshal(c)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	header := doc["header"].(map[string]any)
	assert.Equal(t, "user_data", header["message_type"])
	assert.Equal(t, "client", header["source_id"])

	values := doc["values"].([]any)
	require.Len(t, values, 2)
	first := values[0].(map[string]any)
	assert.Equal(t, "count", first["name"])
	assert.Equal(t, "int_value", first["type"])
	assert.Equal(t, float64(42), first["value"])
}

func TestRoundTripTypeExact(t *testing.T) {
	c := container.New()
	lv, err := container.NewLongValue("long", -2_000_000_000)
	require.NoError(t, err)

	values := []container.Value{
		container.NewNullValue("flag"),
		container.NewBoolValue("active", true),
		container.NewShortValue("short", -123),
		container.NewIntValue("int", 42),
		lv,
		container.NewLLongValue("llong", math.MaxInt64),
		container.NewULLongValue("ullong", math.MaxUint64),
		container.NewFloatValue("float", 3.14),
		container.NewDoubleValue("double", 0.1),
		container.NewBytesValue("bytes", []byte{1, 2, 3}),
		container.NewStringValue("text", "hello"),
	}
	for _, v := range values {
		require.NoError(t, c.AddValue(v))
	}

	data, err := Marshal(c)
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, len(values), back.ValueCount())

	for i, v := range back.Values() {
		assert.Equal(t, values[i].Name(), v.Name())
		assert.Equal(t, values[i].Type(), v.Type(), "value %q", v.Name())
		assert.Equal(t, values[i].String(), v.String(), "value %q", v.Name())
	}

	// Exact 64-bit payloads, not float64 approximations.
	v, err := back.GetValue("ullong")
	require.NoError(t, err)
	n, err := v.ToULong()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), n)
}

func TestNestedRoundTrip(t *testing.T) {
	c := container.New()
	require.NoError(t, c.AddValue(container.NewArrayValue("numbers",
		container.NewIntValue("", 1),
		container.NewIntValue("", 2),
	)))
	require.NoError(t, c.AddValue(container.NewContainerValue("position",
		container.NewDoubleValue("lat", 52.52),
	)))

	data, err := Marshal(c)
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)

	v, err := back.GetValue("numbers")
	require.NoError(t, err)
	arr := v.(*container.ArrayValue)
	require.Equal(t, 2, arr.Count())
	n, err := arr.At(1).ToInt()
	require.NoError(t, err)
	assert.Equal(t, int32(2), n)

	v, err = back.GetValue("position")
	require.NoError(t, err)
	cv := v.(*container.ContainerValue)
	lat := cv.Child("lat", 0)
	require.NotNil(t, lat)
	f, err := lat.ToDouble()
	require.NoError(t, err)
	assert.Equal(t, 52.52, f)
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not json", "not json", errors.ErrInvalidDataFormat},
		{"unknown type tag", `{"header":{"message_type":"data_container","version":"1.0.0.0"},"values":[{"name":"x","type":"mystery_value","value":1}]}`, errors.ErrUnknownTypeCode},
		{"bad bool payload", `{"header":{"message_type":"data_container","version":"1.0.0.0"},"values":[{"name":"x","type":"bool_value","value":"yes"}]}`, errors.ErrMalformedField},
		{"int out of range", `{"header":{"message_type":"data_container","version":"1.0.0.0"},"values":[{"name":"x","type":"int_value","value":99999999999}]}`, errors.ErrMalformedField},
		{"bad base64", `{"header":{"message_type":"data_container","version":"1.0.0.0"},"values":[{"name":"x","type":"bytes_value","value":"!!!"}]}`, errors.ErrMalformedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMarshalNil(t *testing.T) {
	_, err := Marshal(nil)
	require.Error(t, err)
}

func TestMarshalRejectsNonFiniteFloats(t *testing.T) {
	tests := []struct {
		name  string
		value container.Value
	}{
		{"double nan", container.NewDoubleValue("bad", math.NaN())},
		{"double inf", container.NewDoubleValue("bad", math.Inf(1))},
		{"float neg inf", container.NewFloatValue("bad", float32(math.Inf(-1)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := container.New()
			require.NoError(t, c.AddValue(tt.value))
			_, err := Marshal(c)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidConversion)
		})
	}
}
