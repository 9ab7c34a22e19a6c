package escn

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/chewxy/math32"
)

func testLight(kind LightKind) *LightData {
	return &LightData{
		Kind:           kind,
		Energy:         -250,
		Color:          Color{1, 0.5, 0.25},
		ShadowColor:    Color{0, 0, 0},
		SpecularFactor: 0.75,
		CutoffDistance: 30,
		SpotSize:       math32.Pi / 2,
		SpotBlend:      0,
		UseShadow:      true,
		CastShadow:     true,
	}
}

func TestExportLightNodeOmni(t *testing.T) {
	doc := NewDocument()
	entity := &Entity{Name: "Lamp", Light: testLight(LightPoint)}

	node := ExportLightNode(doc, &ExportSettings{}, entity, nil)
	if node.Type != "OmniLight" {
		t.Fatalf("type %q", node.Type)
	}
	energy, _ := node.Get("light_energy")
	approx(t, energy.(float32), 2.5, 1e-6)
	if v, _ := node.Get("omni_range"); v.(float32) != 30 {
		t.Fatalf("omni_range %v", v)
	}
	if v, _ := node.Get("light_negative"); v.(bool) != true {
		t.Fatalf("negative energy must set light_negative")
	}
	if v, _ := node.Get("shadow_enabled"); v.(bool) != true {
		t.Fatalf("shadow_enabled %v", v)
	}
	if v, _ := node.Get("light_specular"); v.(float32) != 0.75 {
		t.Fatalf("light_specular %v", v)
	}
	if v, _ := node.Get("light_color"); v.(Color) != GammaCorrect(Color{1, 0.5, 0.25}) {
		t.Fatalf("light_color not gamma corrected: %v", v)
	}
}

func TestExportLightNodeSpot(t *testing.T) {
	doc := NewDocument()
	entity := &Entity{Name: "Spot", Light: testLight(LightSpot)}

	node := ExportLightNode(doc, &ExportSettings{}, entity, nil)
	if node.Type != "SpotLight" {
		t.Fatalf("type %q", node.Type)
	}
	angle, _ := node.Get("spot_angle")
	approx(t, angle.(float32), 45, 1e-4)
	attenuation, _ := node.Get("spot_angle_attenuation")
	approx(t, attenuation.(float32), 20, 1e-3)
	if v, _ := node.Get("spot_range"); v.(float32) != 30 {
		t.Fatalf("spot_range %v", v)
	}
	energy, _ := node.Get("light_energy")
	approx(t, energy.(float32), 2.5, 1e-6)
}

func TestExportLightNodeDirectional(t *testing.T) {
	doc := NewDocument()
	light := testLight(LightSun)
	light.Energy = -3.5
	entity := &Entity{Name: "Sun", MatrixLocal: TranslationTransform(0, 10, 0), Light: light}

	node := ExportLightNode(doc, &ExportSettings{}, entity, nil)
	if node.Type != "DirectionalLight" {
		t.Fatalf("type %q", node.Type)
	}
	energy, _ := node.Get("light_energy")
	approx(t, energy.(float32), 3.5, 1e-6)
	if _, ok := node.Get("omni_range"); ok {
		t.Fatalf("directional light must not carry omni attributes")
	}
	v, _ := node.Get("transform")
	if v.(Transform) != FixDirectionalTransform(entity.MatrixLocal) {
		t.Fatalf("light transform not direction-corrected")
	}
}

func TestExportLightNodeShadowRequiresBothFlags(t *testing.T) {
	doc := NewDocument()
	light := testLight(LightPoint)
	light.UseShadow = true
	light.CastShadow = false

	node := ExportLightNode(doc, &ExportSettings{}, &Entity{Name: "L", Light: light}, nil)
	if v, _ := node.Get("shadow_enabled"); v.(bool) != false {
		t.Fatalf("shadow_enabled must need both toggles")
	}
}

func TestExportLightNodeUnknownKind(t *testing.T) {
	var logs bytes.Buffer
	settings := &ExportSettings{Logger: slog.New(slog.NewTextHandler(&logs, nil))}

	doc := NewDocument()
	light := testLight(LightKind("AREA"))
	light.Tracks = []Track{{Attr: "energy", Keys: []Keyframe{{0, float32(1)}}}}

	node := ExportLightNode(doc, settings, &Entity{Name: "Area", Light: light}, nil)
	if node != nil {
		t.Fatalf("unknown kind must produce no node")
	}
	if len(doc.Nodes()) != 0 || len(doc.SubResources()) != 0 {
		t.Fatalf("unknown kind must leave the document untouched")
	}
	if !strings.Contains(logs.String(), "unknown light kind") {
		t.Fatalf("expected warning, got: %s", logs.String())
	}
}
