package container

import (
	"math"
	"strconv"

	"github.com/c360/containerkit/errors"
)

// Checked numeric conversion helpers. Narrowing is validated here so that
// every variant shares one range-checking path; silent truncation is a
// cross-language interoperability bug, not a feature.

func conversionError(from Type, to string) error {
	return errors.NewConversionError(from.String(), to, "")
}

func signedRangeError(t Type, v, min, max int64) error {
	return errors.NewRangeError(
		t.String(),
		strconv.FormatInt(v, 10),
		strconv.FormatInt(min, 10),
		strconv.FormatInt(max, 10),
	)
}

func unsignedRangeError(t Type, v, max uint64) error {
	return errors.NewRangeError(
		t.String(),
		strconv.FormatUint(v, 10),
		"0",
		strconv.FormatUint(max, 10),
	)
}

func floatRangeError(t Type, v float64, to string) error {
	return errors.NewRangeError(
		t.String(),
		strconv.FormatFloat(v, 'g', -1, 64),
		to, to,
	)
}

// signedTo narrows a signed source into [min, max].
func signedTo(t Type, v, min, max int64) (int64, error) {
	if v < min || v > max {
		return 0, signedRangeError(t, v, min, max)
	}
	return v, nil
}

// signedToUnsigned converts a signed source into [0, max].
func signedToUnsigned(t Type, v int64, max uint64) (uint64, error) {
	if v < 0 || uint64(v) > max {
		return 0, errors.NewRangeError(
			t.String(),
			strconv.FormatInt(v, 10),
			"0",
			strconv.FormatUint(max, 10),
		)
	}
	return uint64(v), nil
}

// unsignedToSigned narrows an unsigned source into [0, max] for a signed target.
func unsignedToSigned(t Type, v uint64, max int64) (int64, error) {
	if v > uint64(max) {
		return 0, errors.NewRangeError(
			t.String(),
			strconv.FormatUint(v, 10),
			"0",
			strconv.FormatInt(max, 10),
		)
	}
	return int64(v), nil
}

// unsignedToUnsigned narrows an unsigned source into [0, max].
func unsignedToUnsigned(t Type, v, max uint64) (uint64, error) {
	if v > max {
		return 0, unsignedRangeError(t, v, max)
	}
	return v, nil
}

// Safe conversion bounds: float64 comparisons against the extreme int64
// and uint64 limits must use the exactly representable power-of-two edges,
// since float64(math.MaxInt64) rounds up to 2^63.
const (
	maxInt64AsFloat  = float64(1 << 63)   // 2^63, exclusive upper bound
	minInt64AsFloat  = -float64(1 << 63)  // -2^63, inclusive lower bound
	maxUint64AsFloat = float64(1<<63) * 2 // 2^64, exclusive upper bound
)

// floatToSigned requires an exactly integral value within [min, max].
// Fractional loss is a failed conversion, not a rounding opportunity.
func floatToSigned(t Type, v float64, min, max int64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, errors.NewConversionError(t.String(), "integer", strconv.FormatFloat(v, 'g', -1, 64))
	}
	if v < minInt64AsFloat || v >= maxInt64AsFloat {
		return 0, floatRangeError(t, v, "integer")
	}
	n := int64(v)
	if n < min || n > max {
		return 0, floatRangeError(t, v, "integer")
	}
	return n, nil
}

// floatToUnsigned requires an exactly integral value within [0, max].
func floatToUnsigned(t Type, v float64, max uint64) (uint64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return 0, errors.NewConversionError(t.String(), "unsigned integer", strconv.FormatFloat(v, 'g', -1, 64))
	}
	if v < 0 || v >= maxUint64AsFloat {
		return 0, floatRangeError(t, v, "unsigned integer")
	}
	n := uint64(v)
	if n > max {
		return 0, floatRangeError(t, v, "unsigned integer")
	}
	return n, nil
}

// signedToFloat32 converts only when the float32 represents the integer
// exactly; large magnitudes that would round are rejected.
func signedToFloat32(t Type, v int64) (float32, error) {
	d := float64(v)
	f := float32(d)
	if float64(f) != d || d >= maxInt64AsFloat || d < minInt64AsFloat || int64(d) != v {
		return 0, errors.NewConversionError(t.String(), "float32", strconv.FormatInt(v, 10))
	}
	return f, nil
}

// unsignedToFloat32 converts only when the float32 is exact.
func unsignedToFloat32(t Type, v uint64) (float32, error) {
	d := float64(v)
	f := float32(d)
	if float64(f) != d || d >= maxUint64AsFloat || uint64(d) != v {
		return 0, errors.NewConversionError(t.String(), "float32", strconv.FormatUint(v, 10))
	}
	return f, nil
}

// doubleToFloat narrows only when the float32 round-trips exactly.
func doubleToFloat(t Type, v float64) (float32, error) {
	f := float32(v)
	if float64(f) != v && !math.IsNaN(v) {
		return 0, errors.NewConversionError(t.String(), "float32", strconv.FormatFloat(v, 'g', -1, 64))
	}
	return f, nil
}

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
