package escn

import (
	"errors"
	"testing"
)

const markdownOutline = `# Level

## Cam {camera}

## Key {light spot}

### crate.tscn

## Sun {light sun}
`

func TestParseMarkdownOutline(t *testing.T) {
	roots, err := ParseOutline(markdownOutline, OutlineMarkdown)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(roots) != 1 || roots[0].Name != "Level" {
		t.Fatalf("unexpected roots: %+v", roots)
	}
	level := roots[0]
	if len(level.Children) != 3 {
		t.Fatalf("child count %d, want 3", len(level.Children))
	}
	cam := level.Children[0]
	if cam.Name != "Cam" || cam.Kind() != KindCamera {
		t.Fatalf("bad camera child: %+v", cam)
	}
	key := level.Children[1]
	if key.Kind() != KindLight || key.Light.Kind != LightSpot {
		t.Fatalf("bad spot child: %+v", key)
	}
	if len(key.Children) != 1 || key.Children[0].Name != "crate.tscn" {
		t.Fatalf("nested placeholder missing: %+v", key.Children)
	}
	sun := level.Children[2]
	if sun.Light == nil || sun.Light.Kind != LightSun {
		t.Fatalf("bad sun child: %+v", sun)
	}
}

func TestParseOrgOutline(t *testing.T) {
	body := "* Level\n** Lamp {light point}\n** Anchor\n"
	roots, err := ParseOutline(body, OutlineOrg)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(roots) != 1 || len(roots[0].Children) != 2 {
		t.Fatalf("unexpected shape: %+v", roots)
	}
	lamp := roots[0].Children[0]
	if lamp.Kind() != KindLight || lamp.Light.Kind != LightPoint {
		t.Fatalf("bad lamp: %+v", lamp)
	}
	if roots[0].Children[1].Kind() != KindEmpty {
		t.Fatalf("untagged heading must be a placeholder")
	}
}

func TestParseOutlineUnknownFormat(t *testing.T) {
	_, err := ParseOutline("# x", OutlineFormat("asciidoc"))
	if !errors.Is(err, ErrUnknownOutlineFormat) {
		t.Fatalf("expected ErrUnknownOutlineFormat, got %v", err)
	}
}

func TestOutlineDefaultsExportCleanly(t *testing.T) {
	roots, err := ParseOutline(markdownOutline, OutlineMarkdown)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	doc := NewDocument()
	settings, _ := captureSettings(t.TempDir())
	ExportScene(doc, settings, "Level", roots)
	if len(doc.Nodes()) == 0 {
		t.Fatalf("outline export produced no nodes")
	}
	for _, n := range doc.Nodes() {
		if n.Name == "Key" {
			attenuation, _ := n.Get("spot_angle_attenuation")
			if attenuation.(float32) <= 0 {
				t.Fatalf("spot defaults must convert to a positive attenuation")
			}
		}
	}
}
