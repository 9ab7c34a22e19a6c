package escn

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Renderer renders a Document to a target representation.
type Renderer interface {
	Render(*Document) ([]byte, error)
}

// ESCNRenderer emits the document as escn text, the packaged-scene format
// the resolver's header sniff recognizes.
type ESCNRenderer struct{}

// Render serializes the document: header, external resources, sub-resources,
// then node records in attachment order.
func (ESCNRenderer) Render(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	loadSteps := len(doc.ExternalResources()) + len(doc.SubResources()) + 1
	if loadSteps > 1 {
		fmt.Fprintf(&buf, "[gd_scene load_steps=%d format=2]\n", loadSteps)
	} else {
		buf.WriteString("[gd_scene format=2]\n")
	}

	for i, res := range doc.ExternalResources() {
		fmt.Fprintf(&buf, "\n[ext_resource path=%q type=%q id=%d]\n", res.Path, res.Type, i+1)
	}

	for i, sub := range doc.SubResources() {
		fmt.Fprintf(&buf, "\n[sub_resource type=%q id=%d]\n", sub.Type, i+1)
		writeAttrs(&buf, sub.Attrs(), sub.Get)
	}

	for _, node := range doc.Nodes() {
		buf.WriteByte('\n')
		buf.WriteString("[node name=" + strconv.Quote(node.Name))
		if node.Type != "" {
			buf.WriteString(" type=" + strconv.Quote(node.Type))
		}
		if parent := node.ParentPath(); parent != "" {
			buf.WriteString(" parent=" + strconv.Quote(parent))
		}
		if instance := node.Instance(); instance != "" {
			buf.WriteString(" instance=" + string(instance))
		}
		buf.WriteString("]\n")
		writeAttrs(&buf, node.Attrs(), node.Get)
	}

	return buf.Bytes(), nil
}

func writeAttrs(buf *bytes.Buffer, names []string, get func(string) (any, bool)) {
	for _, name := range names {
		value, ok := get(name)
		if !ok {
			continue
		}
		fmt.Fprintf(buf, "%s = %s\n", name, formatValue(value))
	}
}

// formatValue renders one attribute value as an escn literal.
func formatValue(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case float32:
		return formatFloat(val)
	case float64:
		return formatFloat(float32(val))
	case string:
		return strconv.Quote(val)
	case ResourceToken:
		return string(val)
	case NodePath:
		return fmt.Sprintf("NodePath(%q)", string(val))
	case Color:
		return fmt.Sprintf("Color( %s, %s, %s, 1 )",
			formatFloat(val[0]), formatFloat(val[1]), formatFloat(val[2]))
	case Transform:
		return formatTransform(val)
	case TrackKeys:
		return formatTrackKeys(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatTransform emits the nine basis values row by row, then the origin.
func formatTransform(t Transform) string {
	parts := make([]string, 0, 12)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			parts = append(parts, formatFloat(t[row][col]))
		}
	}
	for row := 0; row < 3; row++ {
		parts = append(parts, formatFloat(t[row][3]))
	}
	return "Transform( " + strings.Join(parts, ", ") + " )"
}

func formatTrackKeys(k TrackKeys) string {
	times := make([]string, 0, len(k.Times))
	for _, t := range k.Times {
		times = append(times, formatFloat(t))
	}
	values := make([]string, 0, len(k.Values))
	for _, v := range k.Values {
		values = append(values, formatValue(v))
	}
	return fmt.Sprintf(`{ "times": PoolRealArray( %s ), "update": 0, "values": [ %s ] }`,
		strings.Join(times, ", "), strings.Join(values, ", "))
}

// formatFloat keeps a trailing .0 on whole values so float attributes stay
// visibly floats in the output.
func formatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && !strings.Contains(s, "NaN") {
		s += ".0"
	}
	return s
}

// DumpFile renders the document as escn text and writes it to path
// atomically.
func (d *Document) DumpFile(path string) error {
	body, err := ESCNRenderer{}.Render(d)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
