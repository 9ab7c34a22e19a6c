package escn

import "github.com/chewxy/math32"

// AttrConversion maps one source attribute onto a target node attribute
// through a pure value transform. Convert must be deterministic and
// frame-independent: the animation exporter invokes the same transform per
// keyframe, so it may run any number of times for one attribute.
type AttrConversion struct {
	Source  string
	Target  string
	Convert func(any) any
}

func identity(v any) any { return v }

func gammaCorrectValue(v any) any {
	return GammaCorrect(v.(Color))
}

// Energy units differ per light kind: omni and spot lights scale watts down
// by 100, directional lights keep the raw magnitude. Sign is handled by the
// light_negative flag, so all kinds drop it here.
func convertPointEnergy(v any) any {
	return math32.Abs(v.(float32) / 100)
}

func convertSunEnergy(v any) any {
	return math32.Abs(v.(float32))
}

func convertSpotAngle(v any) any {
	return Degrees(v.(float32) / 2)
}

// convertSpotBlend remaps the normalized [0,1] blend factor to an
// attenuation exponent. The epsilon keeps blend=0 finite.
func convertSpotBlend(v any) any {
	return 0.2 / (v.(float32) + 0.01)
}

var cameraAttrConversions = []AttrConversion{
	{"clip_end", "far", identity},
	{"clip_start", "near", identity},
	{"ortho_scale", "size", identity},
}

var lightAttrConversions = []AttrConversion{
	{"specular_factor", "light_specular", identity},
	{"color", "light_color", gammaCorrectValue},
	{"shadow_color", "shadow_color", gammaCorrectValue},
}

var omniAttrConversions = []AttrConversion{
	{"energy", "light_energy", convertPointEnergy},
	{"cutoff_distance", "omni_range", identity},
}

var spotAttrConversions = []AttrConversion{
	{"energy", "light_energy", convertPointEnergy},
	{"spot_size", "spot_angle", convertSpotAngle},
	{"spot_blend", "spot_angle_attenuation", convertSpotBlend},
	{"cutoff_distance", "spot_range", identity},
}

var directionalAttrConversions = []AttrConversion{
	{"energy", "light_energy", convertSunEnergy},
}

// CameraConversionTable returns the conversion entries for camera nodes.
func CameraConversionTable() []AttrConversion {
	return cameraAttrConversions
}

// LightConversionTable returns the effective conversion entries for the
// given light kind: the common base table followed by the kind-specific
// extension, so kind entries shadow base entries on target-name collisions.
func LightConversionTable(kind LightKind) []AttrConversion {
	switch kind {
	case LightPoint:
		return append(append([]AttrConversion(nil), lightAttrConversions...), omniAttrConversions...)
	case LightSpot:
		return append(append([]AttrConversion(nil), lightAttrConversions...), spotAttrConversions...)
	case LightSun:
		return append(append([]AttrConversion(nil), lightAttrConversions...), directionalAttrConversions...)
	}
	return lightAttrConversions
}

// applyConversions runs every entry against the source data block and
// assigns the converted values on the node.
func applyConversions(node *Node, src AttrSource, entries []AttrConversion) {
	for _, entry := range entries {
		node.Set(entry.Target, entry.Convert(src.Attr(entry.Source)))
	}
}

// lookupConversion finds the entry reading the given source attribute.
// Scanned back-to-front so kind-specific entries shadow base entries, the
// same precedence applyConversions ends up with.
func lookupConversion(entries []AttrConversion, source string) (AttrConversion, bool) {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Source == source {
			return entries[i], true
		}
	}
	return AttrConversion{}, false
}
