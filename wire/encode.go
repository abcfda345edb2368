package wire

import (
	"fmt"
	"strings"

	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/errors"
)

func (c *Codec) encode(cont *container.Container) (string, error) {
	if cont == nil {
		return "", errors.WrapInvalid(
			errors.New("nil container"), "wire", "Encode", "encode failed")
	}

	sourceID, sourceSubID, targetID, targetSubID, messageType, version := cont.Header()

	var sb strings.Builder
	writeHeader(&sb, sourceID, sourceSubID, targetID, targetSubID, messageType, version)

	sb.WriteString("@data={{")
	for _, v := range cont.Values() {
		if err := c.writeEntry(&sb, v, 1); err != nil {
			return "", err
		}
	}
	sb.WriteString("}};")

	return sb.String(), nil
}

// writeHeader emits the header block in fixed field-id order. Routing
// fields are carried only for addressed message types; the plain
// data_container type never routes, so ids 1 through 4 are left out.
func writeHeader(sb *strings.Builder, sourceID, sourceSubID, targetID, targetSubID, messageType, version string) {
	sb.WriteString("@header={{")
	if messageType != container.DefaultMessageType {
		if targetID != "" || targetSubID != "" {
			fmt.Fprintf(sb, "[1,%s];[2,%s];", targetID, targetSubID)
		}
		if sourceID != "" || sourceSubID != "" {
			fmt.Fprintf(sb, "[3,%s];[4,%s];", sourceID, sourceSubID)
		}
	}
	fmt.Fprintf(sb, "[5,%s];[6,%s];", messageType, version)
	sb.WriteString("}};")
}

// writeEntry emits one data entry. level is the nesting level any
// array or container payload of this entry sits at; the root
// container's own entries are level 1.
func (c *Codec) writeEntry(sb *strings.Builder, v container.Value, level int) error {
	sb.WriteByte('[')
	sb.WriteString(v.Name())
	sb.WriteByte(',')
	fmt.Fprintf(sb, "%d", v.Type().Code())
	sb.WriteByte(',')
	if err := c.writePayload(sb, v, level); err != nil {
		return err
	}
	sb.WriteString("];")
	return nil
}

func (c *Codec) writePayload(sb *strings.Builder, v container.Value, level int) error {
	switch v.Type() {
	case container.TypeArray:
		if level > c.maxDepth {
			return c.depthError("Encode", level)
		}
		av, ok := v.(*container.ArrayValue)
		if !ok {
			return errors.WrapFatal(
				fmt.Errorf("array-coded value is %T", v), "wire", "Encode", "encode failed")
		}
		return c.writeArrayPayload(sb, av, level)

	case container.TypeContainer:
		if level > c.maxDepth {
			return c.depthError("Encode", level)
		}
		cv, ok := v.(*container.ContainerValue)
		if !ok {
			return errors.WrapFatal(
				fmt.Errorf("container-coded value is %T", v), "wire", "Encode", "encode failed")
		}
		return c.writeContainerPayload(sb, cv, level)

	default:
		// Every primitive's text form is its canonical String.
		sb.WriteString(v.String())
		return nil
	}
}

// writeArrayPayload emits {{[code,payload];...}}; elements are
// anonymous on the wire.
func (c *Codec) writeArrayPayload(sb *strings.Builder, av *container.ArrayValue, level int) error {
	sb.WriteString("{{")
	for _, elem := range av.Elements() {
		sb.WriteByte('[')
		fmt.Fprintf(sb, "%d", elem.Type().Code())
		sb.WriteByte(',')
		if err := c.writePayload(sb, elem, level+1); err != nil {
			return err
		}
		sb.WriteString("];")
	}
	sb.WriteString("}}")
	return nil
}

// writeContainerPayload emits the full wire grammar recursively. A
// nested container value carries no routing of its own, so its header
// is the plain data_container header with the default version.
func (c *Codec) writeContainerPayload(sb *strings.Builder, cv *container.ContainerValue, level int) error {
	writeHeader(sb, "", "", "", "", container.DefaultMessageType, container.DefaultVersion)
	sb.WriteString("@data={{")
	for _, child := range cv.AllChildren() {
		if err := c.writeEntry(sb, child, level+1); err != nil {
			return err
		}
	}
	sb.WriteString("}};")
	return nil
}

func (c *Codec) depthError(op string, level int) error {
	return errors.WrapInvalid(
		fmt.Errorf("nesting level %d exceeds maximum %d: %w", level, c.maxDepth, errors.ErrMaxDepthExceeded),
		"wire", op, "value tree too deep")
}
