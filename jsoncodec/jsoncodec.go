package jsoncodec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/errors"
	"github.com/c360/containerkit/wire"
)

type jsonHeader struct {
	TargetID    string `json:"target_id,omitempty"`
	TargetSubID string `json:"target_sub_id,omitempty"`
	SourceID    string `json:"source_id,omitempty"`
	SourceSubID string `json:"source_sub_id,omitempty"`
	MessageType string `json:"message_type"`
	Version     string `json:"version"`
}

// jsonValue is the tagged form of one value. The tag is the type's
// text name, not its numeric code, since JSON consumers read names.
type jsonValue struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type jsonContainer struct {
	Header jsonHeader  `json:"header"`
	Values []jsonValue `json:"values"`
}

// Marshal renders a container as type-tagged JSON
func Marshal(cont *container.Container) ([]byte, error) {
	if cont == nil {
		return nil, errors.WrapInvalid(
			errors.New("nil container"), "jsoncodec", "Marshal", "marshal failed")
	}

	sourceID, sourceSubID, targetID, targetSubID, messageType, version := cont.Header()
	out := jsonContainer{
		Header: jsonHeader{
			TargetID:    targetID,
			TargetSubID: targetSubID,
			SourceID:    sourceID,
			SourceSubID: sourceSubID,
			MessageType: messageType,
			Version:     version,
		},
	}

	values, err := marshalValues(cont.Values(), 1)
	if err != nil {
		return nil, err
	}
	out.Values = values

	data, err := json.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, "jsoncodec", "Marshal", "encoding json")
	}
	return data, nil
}

func marshalValues(values []container.Value, level int) ([]jsonValue, error) {
	out := make([]jsonValue, 0, len(values))
	for _, v := range values {
		jv, err := marshalValue(v, level)
		if err != nil {
			return nil, err
		}
		out = append(out, jv)
	}
	return out, nil
}

func marshalValue(v container.Value, level int) (jsonValue, error) {
	raw, err := marshalPayload(v, level)
	if err != nil {
		return jsonValue{}, err
	}
	return jsonValue{Name: v.Name(), Type: v.Type().String(), Value: raw}, nil
}

func marshalPayload(v container.Value, level int) (json.RawMessage, error) {
	switch v.Type() {
	case container.TypeNull:
		return json.RawMessage("null"), nil

	case container.TypeArray:
		if level > wire.DefaultMaxDepth {
			return nil, depthError("Marshal")
		}
		av := v.(*container.ArrayValue)
		elems, err := marshalValues(av.Elements(), level+1)
		if err != nil {
			return nil, err
		}
		return json.Marshal(elems)

	case container.TypeContainer:
		if level > wire.DefaultMaxDepth {
			return nil, depthError("Marshal")
		}
		cv := v.(*container.ContainerValue)
		children, err := marshalValues(cv.AllChildren(), level+1)
		if err != nil {
			return nil, err
		}
		return json.Marshal(children)

	case container.TypeString, container.TypeBytes:
		// Bytes render as their base64 text form.
		return json.Marshal(v.String())

	case container.TypeBool:
		b, _ := v.ToBool()
		return json.Marshal(b)

	default:
		if v.Type().IsFloat() {
			f, _ := v.ToDouble()
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, errors.WrapInvalid(
					errors.NewConversionError(v.Type().String(), "json number", v.String()),
					"jsoncodec", "Marshal", "non-finite float")
			}
		}
		// Numbers go out as their canonical text so 64-bit values
		// survive consumers that parse JSON numbers as doubles.
		return json.RawMessage(v.String()), nil
	}
}

// Unmarshal rebuilds a container from type-tagged JSON
func Unmarshal(data []byte) (*container.Container, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var in jsonContainer
	if err := dec.Decode(&in); err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %v", errors.ErrInvalidDataFormat, err),
			"jsoncodec", "Unmarshal", "parsing json")
	}

	var opts []container.Option
	if in.Header.TargetID != "" || in.Header.TargetSubID != "" {
		opts = append(opts, container.WithTarget(in.Header.TargetID, in.Header.TargetSubID))
	}
	if in.Header.SourceID != "" || in.Header.SourceSubID != "" {
		opts = append(opts, container.WithSource(in.Header.SourceID, in.Header.SourceSubID))
	}
	if in.Header.MessageType != "" {
		opts = append(opts, container.WithMessageType(in.Header.MessageType))
	}
	if in.Header.Version != "" {
		opts = append(opts, container.WithVersion(in.Header.Version))
	}
	cont := container.New(opts...)

	for _, jv := range in.Values {
		v, err := unmarshalValue(jv, 1)
		if err != nil {
			return nil, err
		}
		if err := cont.AddValue(v); err != nil {
			return nil, errors.Wrap(err, "jsoncodec", "Unmarshal", "rebuilding container")
		}
	}
	return cont, nil
}

func unmarshalValue(jv jsonValue, level int) (container.Value, error) {
	t, ok := typeFromName(jv.Type)
	if !ok {
		return nil, errors.NewFormatErrorKind(errors.ErrUnknownTypeCode,
			fmt.Sprintf("unknown type tag %q", jv.Type), -1)
	}

	malformed := func(err error) error {
		return errors.NewFormatErrorKind(errors.ErrMalformedField,
			fmt.Sprintf("bad %s payload for %q: %v", jv.Type, jv.Name, err), -1)
	}

	switch t {
	case container.TypeNull:
		return container.NewNullValue(jv.Name), nil

	case container.TypeBool:
		var b bool
		if err := json.Unmarshal(jv.Value, &b); err != nil {
			return nil, malformed(err)
		}
		return container.NewBoolValue(jv.Name, b), nil

	case container.TypeString:
		var s string
		if err := json.Unmarshal(jv.Value, &s); err != nil {
			return nil, malformed(err)
		}
		return container.NewStringValue(jv.Name, s), nil

	case container.TypeBytes:
		var s string
		if err := json.Unmarshal(jv.Value, &s); err != nil {
			return nil, malformed(err)
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, malformed(err)
		}
		return container.NewBytesValue(jv.Name, raw), nil

	case container.TypeArray:
		if level > wire.DefaultMaxDepth {
			return nil, depthError("Unmarshal")
		}
		var elems []jsonValue
		if err := json.Unmarshal(jv.Value, &elems); err != nil {
			return nil, malformed(err)
		}
		av := container.NewArrayValue(jv.Name)
		for _, e := range elems {
			ev, err := unmarshalValue(e, level+1)
			if err != nil {
				return nil, err
			}
			av.Push(ev)
		}
		return av, nil

	case container.TypeContainer:
		if level > wire.DefaultMaxDepth {
			return nil, depthError("Unmarshal")
		}
		var children []jsonValue
		if err := json.Unmarshal(jv.Value, &children); err != nil {
			return nil, malformed(err)
		}
		cv := container.NewContainerValue(jv.Name)
		for _, c := range children {
			child, err := unmarshalValue(c, level+1)
			if err != nil {
				return nil, err
			}
			cv.AddChild(child)
		}
		return cv, nil

	default:
		var num json.Number
		if err := json.Unmarshal(jv.Value, &num); err != nil {
			return nil, malformed(err)
		}
		v, err := numberValue(jv.Name, t, num)
		if err != nil {
			return nil, malformed(err)
		}
		return v, nil
	}
}

func numberValue(name string, t container.Type, num json.Number) (container.Value, error) {
	text := num.String()
	switch t {
	case container.TypeShort:
		n, err := parseInt(text, 16)
		if err != nil {
			return nil, err
		}
		return container.NewShortValue(name, int16(n)), nil
	case container.TypeUShort:
		n, err := parseUint(text, 16)
		if err != nil {
			return nil, err
		}
		return container.NewUShortValue(name, uint16(n)), nil
	case container.TypeInt:
		n, err := parseInt(text, 32)
		if err != nil {
			return nil, err
		}
		return container.NewIntValue(name, int32(n)), nil
	case container.TypeUInt:
		n, err := parseUint(text, 32)
		if err != nil {
			return nil, err
		}
		return container.NewUIntValue(name, uint32(n)), nil
	case container.TypeLong:
		n, err := parseInt(text, 64)
		if err != nil {
			return nil, err
		}
		return container.NewLongValue(name, n)
	case container.TypeULong:
		n, err := parseUint(text, 64)
		if err != nil {
			return nil, err
		}
		return container.NewULongValue(name, n)
	case container.TypeLLong:
		n, err := parseInt(text, 64)
		if err != nil {
			return nil, err
		}
		return container.NewLLongValue(name, n), nil
	case container.TypeULLong:
		n, err := parseUint(text, 64)
		if err != nil {
			return nil, err
		}
		return container.NewULLongValue(name, n), nil
	case container.TypeFloat:
		f, err := parseFloat(text, 32)
		if err != nil {
			return nil, err
		}
		return container.NewFloatValue(name, float32(f)), nil
	case container.TypeDouble:
		f, err := parseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return container.NewDoubleValue(name, f), nil
	}
	return nil, fmt.Errorf("type %s is not numeric", t)
}

func parseInt(s string, bits int) (int64, error) {
	return strconv.ParseInt(s, 10, bits)
}

func parseUint(s string, bits int) (uint64, error) {
	return strconv.ParseUint(s, 10, bits)
}

func parseFloat(s string, bits int) (float64, error) {
	return strconv.ParseFloat(s, bits)
}

// typeFromName resolves a type's text name back to its tag
func typeFromName(name string) (container.Type, bool) {
	for code := uint8(0); code <= 15; code++ {
		t, _ := container.TypeFromCode(code)
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

func depthError(op string) error {
	return errors.WrapInvalid(
		fmt.Errorf("nesting depth exceeds maximum %d: %w", wire.DefaultMaxDepth, errors.ErrMaxDepthExceeded),
		"jsoncodec", op, "value tree too deep")
}
