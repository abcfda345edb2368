package xmlcodec

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/errors"
	"github.com/c360/containerkit/wire"
)

// Marshal renders a container as XML. There is no Unmarshal: the XML
// form is an export surface for reporting pipelines, and peers that
// need to parse use the wire or JSON forms.
func Marshal(cont *container.Container) (string, error) {
	if cont == nil {
		return "", errors.WrapInvalid(
			errors.New("nil container"), "xmlcodec", "Marshal", "marshal failed")
	}

	sourceID, sourceSubID, targetID, targetSubID, messageType, version := cont.Header()

	var sb strings.Builder
	sb.WriteString("<container>")
	sb.WriteString("<header>")
	writeElem(&sb, "message_type", messageType)
	writeElem(&sb, "version", version)
	if sourceID != "" || sourceSubID != "" {
		writeElem(&sb, "source_id", sourceID)
		writeElem(&sb, "source_sub_id", sourceSubID)
	}
	if targetID != "" || targetSubID != "" {
		writeElem(&sb, "target_id", targetID)
		writeElem(&sb, "target_sub_id", targetSubID)
	}
	sb.WriteString("</header>")

	sb.WriteString("<values>")
	for _, v := range cont.Values() {
		if err := writeValue(&sb, v, 1); err != nil {
			return "", err
		}
	}
	sb.WriteString("</values>")
	sb.WriteString("</container>")

	return sb.String(), nil
}

func writeValue(sb *strings.Builder, v container.Value, level int) error {
	sb.WriteString(`<value`)
	if v.Name() != "" {
		sb.WriteString(` name="` + escape(v.Name()) + `"`)
	}
	sb.WriteString(` type="` + v.Type().String() + `">`)

	switch v.Type() {
	case container.TypeArray:
		if level > wire.DefaultMaxDepth {
			return depthError()
		}
		av := v.(*container.ArrayValue)
		for _, elem := range av.Elements() {
			if err := writeValue(sb, elem, level+1); err != nil {
				return err
			}
		}

	case container.TypeContainer:
		if level > wire.DefaultMaxDepth {
			return depthError()
		}
		cv := v.(*container.ContainerValue)
		for _, child := range cv.AllChildren() {
			if err := writeValue(sb, child, level+1); err != nil {
				return err
			}
		}

	default:
		sb.WriteString(escape(v.String()))
	}

	sb.WriteString("</value>")
	return nil
}

func writeElem(sb *strings.Builder, tag, text string) {
	fmt.Fprintf(sb, "<%s>%s</%s>", tag, escape(text), tag)
}

func escape(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return s
	}
	return sb.String()
}

func depthError() error {
	return errors.WrapInvalid(
		fmt.Errorf("nesting depth exceeds maximum %d: %w", wire.DefaultMaxDepth, errors.ErrMaxDepthExceeded),
		"xmlcodec", "Marshal", "value tree too deep")
}
