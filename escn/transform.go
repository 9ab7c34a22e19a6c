package escn

import "github.com/chewxy/math32"

// Transform is a row-major 4x4 affine matrix: the upper-left 3x3 is the
// basis, the last column the origin. The bottom row is assumed (0,0,0,1).
type Transform [4][4]float32

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return Transform{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// TranslationTransform returns a pure translation.
func TranslationTransform(x, y, z float32) Transform {
	t := IdentityTransform()
	t[0][3], t[1][3], t[2][3] = x, y, z
	return t
}

// Mul returns t * o.
func (t Transform) Mul(o Transform) Transform {
	var out Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += t[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// rotY180 flips the local forward axis while keeping up: a 180 degree
// rotation about the local Y axis.
var rotY180 = Transform{
	{-1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, -1, 0},
	{0, 0, 0, 1},
}

// FixDirectionalTransform corrects a local transform for node kinds whose
// forward convention is reversed between the source and target models.
func FixDirectionalTransform(t Transform) Transform {
	return t.Mul(rotY180)
}

// forwardEmitting lists target node types whose semantics depend on a facing
// axis and therefore need the directional correction.
var forwardEmitting = map[string]bool{
	"Camera":           true,
	"OmniLight":        true,
	"SpotLight":        true,
	"DirectionalLight": true,
}

// NormalizeTransform applies the directional correction for forward-emitting
// node types and returns the transform unchanged for everything else.
func NormalizeTransform(t Transform, nodeType string) Transform {
	if forwardEmitting[nodeType] {
		return FixDirectionalTransform(t)
	}
	return t
}

// Color is an RGB triple in the source's linear space.
type Color [3]float32

// GammaCorrect converts a linear color to display space (gamma 2.2).
func GammaCorrect(c Color) Color {
	const exp = 1.0 / 2.2
	return Color{
		math32.Pow(c[0], exp),
		math32.Pow(c[1], exp),
		math32.Pow(c[2], exp),
	}
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}
