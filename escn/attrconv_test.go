package escn

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(t *testing.T, got, want, tol float32) {
	t.Helper()
	if math32.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

func TestOmniEnergyScalesAndDropsSign(t *testing.T) {
	got := convertPointEnergy(float32(-250)).(float32)
	approx(t, got, 2.5, 1e-6)
}

func TestDirectionalEnergyKeepsMagnitude(t *testing.T) {
	got := convertSunEnergy(float32(-3.5)).(float32)
	approx(t, got, 3.5, 1e-6)
}

func TestSpotAngleHalvesAndConvertsToDegrees(t *testing.T) {
	got := convertSpotAngle(float32(math32.Pi / 2)).(float32)
	approx(t, got, 45.0, 1e-4)
}

func TestSpotBlendRemapEndpoints(t *testing.T) {
	atZero := convertSpotBlend(float32(0)).(float32)
	approx(t, atZero, 20.0, 1e-3)

	atOne := convertSpotBlend(float32(1)).(float32)
	approx(t, atOne, 0.2/1.01, 1e-4)

	if atOne >= atZero {
		t.Fatalf("blend remap must decrease on [0,1]: f(0)=%v f(1)=%v", atZero, atOne)
	}
}

func TestEnergyConversionIsPure(t *testing.T) {
	first := convertPointEnergy(float32(-250)).(float32)
	second := convertPointEnergy(float32(-250)).(float32)
	if first != second {
		t.Fatalf("conversion not deterministic: %v vs %v", first, second)
	}
}

func TestLightConversionTableConcatenatesKindEntries(t *testing.T) {
	base := len(lightAttrConversions)
	spot := LightConversionTable(LightSpot)
	if len(spot) != base+len(spotAttrConversions) {
		t.Fatalf("spot table length %d, want %d", len(spot), base+len(spotAttrConversions))
	}
	for i := 0; i < base; i++ {
		if spot[i].Target != lightAttrConversions[i].Target {
			t.Fatalf("base entries must come first, got %q at %d", spot[i].Target, i)
		}
	}
	if _, ok := lookupConversion(spot, "spot_blend"); !ok {
		t.Fatalf("spot table missing spot_blend entry")
	}
}

func TestLookupConversionPrefersKindEntries(t *testing.T) {
	entries := []AttrConversion{
		{"energy", "light_energy", identity},
		{"energy", "light_energy", convertPointEnergy},
	}
	entry, ok := lookupConversion(entries, "energy")
	if !ok {
		t.Fatalf("lookup failed")
	}
	if got := entry.Convert(float32(-250)).(float32); got != 2.5 {
		t.Fatalf("expected the later entry to win, got %v", got)
	}
}
