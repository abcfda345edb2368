package wire

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/errors"
)

// decoder is a single-pass recursive descent parser over the wire
// text. All positions are absolute byte offsets into the input so
// errors point at the exact spot parsing failed.
type decoder struct {
	in        string
	pos       int
	maxDepth  int
	maxValues int
}

func (c *Codec) decode(input string) (*container.Container, error) {
	d := &decoder{in: input, maxDepth: c.maxDepth, maxValues: c.maxValues}

	cont, err := d.parseWire(1)
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.in) {
		return nil, errors.NewFormatErrorKind(errors.ErrMalformedField,
			"trailing data after container", d.pos)
	}
	return cont, nil
}

// parseWire parses one full @header=...;@data=...; unit. level is the
// nesting level of any array or container payload found among the
// unit's entries.
func (d *decoder) parseWire(level int) (*container.Container, error) {
	if err := d.expect("@header="); err != nil {
		return nil, err
	}
	cont, err := d.parseHeaderBlock()
	if err != nil {
		return nil, err
	}
	if err := d.expect(";@data="); err != nil {
		return nil, err
	}
	if err := d.parseDataBlock(cont, level); err != nil {
		return nil, err
	}
	if err := d.expect(";"); err != nil {
		return nil, err
	}
	return cont, nil
}

func (d *decoder) parseHeaderBlock() (*container.Container, error) {
	blockStart := d.pos
	if err := d.expect("{{"); err != nil {
		return nil, err
	}

	var fields [7]string
	for {
		if d.pos >= len(d.in) {
			return nil, errors.NewFormatErrorKind(errors.ErrUnterminatedBlock,
				"header block never closed", blockStart)
		}
		if strings.HasPrefix(d.in[d.pos:], "}}") {
			d.pos += 2
			break
		}

		if err := d.expect("["); err != nil {
			return nil, err
		}
		idStart := d.pos
		idText, err := d.readField(',', "header field id")
		if err != nil {
			return nil, err
		}
		id, convErr := strconv.Atoi(idText)
		if convErr != nil || id < 1 || id > 6 {
			return nil, errors.NewFormatErrorKind(errors.ErrMalformedField,
				fmt.Sprintf("invalid header field id %q", idText), idStart)
		}
		value, err := d.readPayload("header field value")
		if err != nil {
			return nil, err
		}
		fields[id] = value
		if err := d.expect(";"); err != nil {
			return nil, err
		}
	}

	var opts []container.Option
	if d.maxValues > 0 {
		opts = append(opts, container.WithMaxValues(d.maxValues))
	}
	if fields[1] != "" || fields[2] != "" {
		opts = append(opts, container.WithTarget(fields[1], fields[2]))
	}
	if fields[3] != "" || fields[4] != "" {
		opts = append(opts, container.WithSource(fields[3], fields[4]))
	}
	if fields[5] != "" {
		opts = append(opts, container.WithMessageType(fields[5]))
	}
	if fields[6] != "" {
		opts = append(opts, container.WithVersion(fields[6]))
	}
	return container.New(opts...), nil
}

func (d *decoder) parseDataBlock(cont *container.Container, level int) error {
	blockStart := d.pos
	if err := d.expect("{{"); err != nil {
		return err
	}
	for {
		if d.pos >= len(d.in) {
			return errors.NewFormatErrorKind(errors.ErrUnterminatedBlock,
				"data block never closed", blockStart)
		}
		if strings.HasPrefix(d.in[d.pos:], "}}") {
			d.pos += 2
			return nil
		}

		v, err := d.parseEntry(level)
		if err != nil {
			return err
		}
		if err := cont.AddValue(v); err != nil {
			return errors.Wrap(err, "wire", "Decode", "rebuilding container")
		}
	}
}

// parseEntry parses [name,code,payload]; and builds the value.
func (d *decoder) parseEntry(level int) (container.Value, error) {
	if err := d.expect("["); err != nil {
		return nil, err
	}
	name, err := d.readField(',', "entry name")
	if err != nil {
		return nil, err
	}
	t, err := d.parseTypeCode()
	if err != nil {
		return nil, err
	}
	v, err := d.parseValuePayload(name, t, level)
	if err != nil {
		return nil, err
	}
	if err := d.expect(";"); err != nil {
		return nil, err
	}
	return v, nil
}

func (d *decoder) parseTypeCode() (container.Type, error) {
	codeStart := d.pos
	codeText, err := d.readField(',', "type code")
	if err != nil {
		return 0, err
	}
	code, convErr := strconv.ParseUint(codeText, 10, 8)
	if convErr != nil {
		return 0, errors.NewFormatErrorKind(errors.ErrMalformedField,
			fmt.Sprintf("type code %q is not a number", codeText), codeStart)
	}
	t, ok := container.TypeFromCode(uint8(code))
	if !ok {
		return 0, errors.NewFormatErrorKind(errors.ErrUnknownTypeCode,
			fmt.Sprintf("type code %d is not defined", code), codeStart)
	}
	return t, nil
}

// parseValuePayload reads the payload and the closing bracket of an
// entry, dispatching on the type.
func (d *decoder) parseValuePayload(name string, t container.Type, level int) (container.Value, error) {
	switch t {
	case container.TypeArray:
		if level > d.maxDepth {
			return nil, d.depthError()
		}
		av, err := d.parseArrayPayload(name, level)
		if err != nil {
			return nil, err
		}
		if err := d.expect("]"); err != nil {
			return nil, err
		}
		return av, nil

	case container.TypeContainer:
		if level > d.maxDepth {
			return nil, d.depthError()
		}
		nested, err := d.parseWire(level + 1)
		if err != nil {
			return nil, err
		}
		if err := d.expect("]"); err != nil {
			return nil, err
		}
		return container.NewContainerValue(name, nested.Values()...), nil

	default:
		payloadStart := d.pos
		payload, err := d.readPayload("entry payload")
		if err != nil {
			return nil, err
		}
		return buildPrimitive(name, t, payload, payloadStart)
	}
}

// parseArrayPayload parses {{[code,payload];...}}. Elements are
// anonymous and rebuilt with empty names.
func (d *decoder) parseArrayPayload(name string, level int) (*container.ArrayValue, error) {
	blockStart := d.pos
	if err := d.expect("{{"); err != nil {
		return nil, err
	}
	av := container.NewArrayValue(name)
	for {
		if d.pos >= len(d.in) {
			return nil, errors.NewFormatErrorKind(errors.ErrUnterminatedBlock,
				"array block never closed", blockStart)
		}
		if strings.HasPrefix(d.in[d.pos:], "}}") {
			d.pos += 2
			return av, nil
		}

		if err := d.expect("["); err != nil {
			return nil, err
		}
		t, err := d.parseTypeCode()
		if err != nil {
			return nil, err
		}
		elem, err := d.parseValuePayload("", t, level+1)
		if err != nil {
			return nil, err
		}
		if err := d.expect(";"); err != nil {
			return nil, err
		}
		av.Push(elem)
	}
}

// buildPrimitive turns a primitive payload's text into a value.
// offset is the payload's position, used for error reporting.
func buildPrimitive(name string, t container.Type, payload string, offset int) (container.Value, error) {
	malformed := func(what string) error {
		return errors.NewFormatErrorKind(errors.ErrMalformedField,
			fmt.Sprintf("%s payload %q is not a valid %s", t, payload, what), offset)
	}

	switch t {
	case container.TypeNull:
		return container.NewNullValue(name), nil

	case container.TypeBool:
		switch payload {
		case "true":
			return container.NewBoolValue(name, true), nil
		case "false":
			return container.NewBoolValue(name, false), nil
		}
		return nil, malformed("boolean")

	case container.TypeShort:
		n, err := strconv.ParseInt(payload, 10, 16)
		if err != nil {
			return nil, malformed("16-bit integer")
		}
		return container.NewShortValue(name, int16(n)), nil

	case container.TypeUShort:
		n, err := strconv.ParseUint(payload, 10, 16)
		if err != nil {
			return nil, malformed("unsigned 16-bit integer")
		}
		return container.NewUShortValue(name, uint16(n)), nil

	case container.TypeInt:
		n, err := strconv.ParseInt(payload, 10, 32)
		if err != nil {
			return nil, malformed("32-bit integer")
		}
		return container.NewIntValue(name, int32(n)), nil

	case container.TypeUInt:
		n, err := strconv.ParseUint(payload, 10, 32)
		if err != nil {
			return nil, malformed("unsigned 32-bit integer")
		}
		return container.NewUIntValue(name, uint32(n)), nil

	case container.TypeLong:
		n, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return nil, malformed("integer")
		}
		v, rangeErr := container.NewLongValue(name, n)
		if rangeErr != nil {
			return nil, errors.Wrap(rangeErr, "wire", "Decode", "rebuilding long value")
		}
		return v, nil

	case container.TypeULong:
		n, err := strconv.ParseUint(payload, 10, 64)
		if err != nil {
			return nil, malformed("unsigned integer")
		}
		v, rangeErr := container.NewULongValue(name, n)
		if rangeErr != nil {
			return nil, errors.Wrap(rangeErr, "wire", "Decode", "rebuilding ulong value")
		}
		return v, nil

	case container.TypeLLong:
		n, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return nil, malformed("64-bit integer")
		}
		return container.NewLLongValue(name, n), nil

	case container.TypeULLong:
		n, err := strconv.ParseUint(payload, 10, 64)
		if err != nil {
			return nil, malformed("unsigned 64-bit integer")
		}
		return container.NewULLongValue(name, n), nil

	case container.TypeFloat:
		f, err := strconv.ParseFloat(payload, 32)
		if err != nil {
			return nil, malformed("32-bit float")
		}
		return container.NewFloatValue(name, float32(f)), nil

	case container.TypeDouble:
		f, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			return nil, malformed("64-bit float")
		}
		return container.NewDoubleValue(name, f), nil

	case container.TypeBytes:
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, malformed("base64 string")
		}
		return container.NewBytesValue(name, raw), nil

	case container.TypeString:
		return container.NewStringValue(name, payload), nil
	}

	return nil, errors.NewFormatErrorKind(errors.ErrUnknownTypeCode,
		fmt.Sprintf("type code %d has no payload form", t.Code()), offset)
}

// expect consumes the exact literal at the current position.
func (d *decoder) expect(lit string) error {
	rest := d.in[d.pos:]
	if !strings.HasPrefix(rest, lit) {
		if len(rest) < len(lit) && strings.HasPrefix(lit, rest) {
			return errors.NewFormatErrorKind(errors.ErrUnterminatedBlock,
				fmt.Sprintf("unexpected end of input, expected %q", lit), d.pos)
		}
		return errors.NewFormatErrorKind(errors.ErrMalformedField,
			fmt.Sprintf("expected %q", lit), d.pos)
	}
	d.pos += len(lit)
	return nil
}

// readField reads up to delim and consumes it. Structural characters
// inside a field mean the input is malformed.
func (d *decoder) readField(delim byte, what string) (string, error) {
	start := d.pos
	for d.pos < len(d.in) {
		ch := d.in[d.pos]
		if ch == delim {
			field := d.in[start:d.pos]
			d.pos++
			return field, nil
		}
		switch ch {
		case '[', ']', '{', '}', ';':
			return "", errors.NewFormatErrorKind(errors.ErrMalformedField,
				fmt.Sprintf("unexpected %q while reading %s", ch, what), d.pos)
		}
		d.pos++
	}
	return "", errors.NewFormatErrorKind(errors.ErrUnterminatedBlock,
		fmt.Sprintf("unexpected end of input while reading %s", what), start)
}

// readPayload reads a primitive payload up to its closing bracket and
// consumes the bracket. Payload text may contain any character except
// the closing bracket itself.
func (d *decoder) readPayload(what string) (string, error) {
	start := d.pos
	for d.pos < len(d.in) {
		if d.in[d.pos] == ']' {
			payload := d.in[start:d.pos]
			d.pos++
			return payload, nil
		}
		d.pos++
	}
	return "", errors.NewFormatErrorKind(errors.ErrUnterminatedBlock,
		fmt.Sprintf("unexpected end of input while reading %s", what), start)
}

func (d *decoder) depthError() error {
	return errors.NewFormatErrorKind(errors.ErrMaxDepthExceeded,
		fmt.Sprintf("nesting depth exceeds maximum %d", d.maxDepth), d.pos)
}
