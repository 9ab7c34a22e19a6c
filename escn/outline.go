package escn

import (
	"bytes"
	"errors"
	"strings"

	"github.com/chewxy/math32"
	goorg "github.com/niklasfasching/go-org/org"
	"github.com/yuin/goldmark"
	mdast "github.com/yuin/goldmark/ast"
	mdtext "github.com/yuin/goldmark/text"
)

// ErrUnknownOutlineFormat signals an outline format this importer does not
// speak.
var ErrUnknownOutlineFormat = errors.New("unknown outline format")

// OutlineFormat enumerates the text formats the outline importer accepts.
type OutlineFormat string

const (
	OutlineMarkdown OutlineFormat = "markdown"
	OutlineOrg      OutlineFormat = "org"
)

// ParseOutline builds a source entity forest from a heading outline:
// heading depth is hierarchy, and a trailing {camera} / {light point} /
// {light spot} / {light sun} tag selects the entity kind (default:
// placeholder). Kind parameters get source-typical defaults; the importer
// exists to feed the exporter from a shell, not to model a full scene.
func ParseOutline(body string, format OutlineFormat) ([]*Entity, error) {
	switch format {
	case OutlineMarkdown:
		return parseMarkdownOutline(body)
	case OutlineOrg:
		return parseOrgOutline(body)
	default:
		return nil, ErrUnknownOutlineFormat
	}
}

func parseMarkdownOutline(body string) ([]*Entity, error) {
	md := goldmark.New()
	src := []byte(body)
	root := md.Parser().Parse(mdtext.NewReader(src))

	var headings []outlineHeading
	mdast.Walk(root, func(n mdast.Node, entering bool) (mdast.WalkStatus, error) {
		if h, ok := n.(*mdast.Heading); ok && entering {
			if text := extractText(h, src); text != "" {
				headings = append(headings, outlineHeading{level: h.Level, text: text})
			}
		}
		return mdast.WalkContinue, nil
	})
	return entitiesFromHeadings(headings), nil
}

func parseOrgOutline(body string) ([]*Entity, error) {
	o := goorg.New().Parse(strings.NewReader(body), "")
	out, err := o.Write(goorg.NewOrgWriter())
	if err != nil {
		return nil, err
	}
	var headings []outlineHeading
	for _, line := range strings.Split(out, "\n") {
		stars := 0
		for stars < len(line) && line[stars] == '*' {
			stars++
		}
		if stars == 0 || stars >= len(line) || line[stars] != ' ' {
			continue
		}
		text := strings.TrimSpace(line[stars:])
		if text != "" {
			headings = append(headings, outlineHeading{level: stars, text: text})
		}
	}
	return entitiesFromHeadings(headings), nil
}

type outlineHeading struct {
	level int
	text  string
}

// entitiesFromHeadings folds a flat heading list into a forest, attaching
// each heading under the nearest shallower one.
func entitiesFromHeadings(headings []outlineHeading) []*Entity {
	var roots []*Entity
	type frame struct {
		level  int
		entity *Entity
	}
	var stack []frame
	for _, h := range headings {
		e := entityFromHeading(h.text)
		for len(stack) > 0 && stack[len(stack)-1].level >= h.level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, e)
		} else {
			parent := stack[len(stack)-1].entity
			parent.Children = append(parent.Children, e)
		}
		stack = append(stack, frame{level: h.level, entity: e})
	}
	return roots
}

// entityFromHeading splits "Name {kind args}" and fills kind defaults.
func entityFromHeading(text string) *Entity {
	name := text
	tag := ""
	if open := strings.LastIndex(text, "{"); open >= 0 && strings.HasSuffix(text, "}") {
		name = strings.TrimSpace(text[:open])
		tag = strings.TrimSpace(text[open+1 : len(text)-1])
	}
	e := &Entity{Name: name, MatrixLocal: IdentityTransform()}
	fields := strings.Fields(strings.ToLower(tag))
	if len(fields) == 0 {
		return e
	}
	switch fields[0] {
	case "camera":
		e.Camera = defaultCameraData()
	case "light":
		kind := LightPoint
		if len(fields) > 1 {
			kind = LightKind(strings.ToUpper(fields[1]))
		}
		e.Light = defaultLightData(kind)
	}
	return e
}

func defaultCameraData() *CameraData {
	return &CameraData{
		Type:       CameraPerspective,
		ClipStart:  0.1,
		ClipEnd:    100,
		OrthoScale: 7,
		Angle:      50 * math32.Pi / 180,
	}
}

func defaultLightData(kind LightKind) *LightData {
	data := &LightData{
		Kind:           kind,
		Energy:         100,
		Color:          Color{1, 1, 1},
		ShadowColor:    Color{0, 0, 0},
		SpecularFactor: 1,
		CutoffDistance: 40,
		UseShadow:      true,
		CastShadow:     true,
	}
	switch kind {
	case LightSun:
		data.Energy = 1
	case LightSpot:
		data.SpotSize = math32.Pi / 4
		data.SpotBlend = 0.15
	}
	return data
}

func extractText(n mdast.Node, src []byte) string {
	var b bytes.Buffer
	mdast.Walk(n, func(nn mdast.Node, entering bool) (mdast.WalkStatus, error) {
		if !entering {
			return mdast.WalkContinue, nil
		}
		if tn, ok := nn.(*mdast.Text); ok {
			b.Write(tn.Segment.Value(src))
		}
		return mdast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
