package escn

import "fmt"

// EntityKind classifies a source entity for exporter dispatch.
type EntityKind string

const (
	KindEmpty  EntityKind = "EMPTY"
	KindCamera EntityKind = "CAMERA"
	KindLight  EntityKind = "LIGHT"
)

// CameraType enumerates the source camera projection kinds.
type CameraType string

const (
	CameraPerspective  CameraType = "PERSP"
	CameraOrthographic CameraType = "ORTHO"
)

// LightKind enumerates the source light kinds the exporter understands.
// Anything else degrades to "no node" with a warning.
type LightKind string

const (
	LightPoint LightKind = "POINT"
	LightSpot  LightKind = "SPOT"
	LightSun   LightKind = "SUN"
)

// Keyframe is one sampled value on a source property track.
type Keyframe struct {
	Time  float32
	Value any
}

// Track holds the raw keyframes for one animatable source attribute. Values
// are in source units; the attribute conversion tables transform them during
// animation export, the same way they transform the static value.
type Track struct {
	Attr string
	Keys []Keyframe
}

// AttrSource is a kind-specific data block whose named attributes the
// conversion tables read. Attr must cover every source attribute a static
// table references; an unknown name is a programming error in the tables,
// not a runtime condition, and panics.
type AttrSource interface {
	Attr(name string) any
	AnimationTracks() []Track
}

// Entity is one object of the source scene graph. Exactly one of Camera and
// Light is set for those kinds; both nil means a placeholder/empty.
type Entity struct {
	Name        string
	MatrixLocal Transform
	Children    []*Entity

	Camera *CameraData
	Light  *LightData
}

// Kind reports the entity kind used for exporter dispatch.
func (e *Entity) Kind() EntityKind {
	switch {
	case e.Camera != nil:
		return KindCamera
	case e.Light != nil:
		return KindLight
	default:
		return KindEmpty
	}
}

// CameraData carries the source camera parameters.
type CameraData struct {
	Type       CameraType
	ClipStart  float32
	ClipEnd    float32
	OrthoScale float32
	Angle      float32 // full field of view, radians

	Tracks []Track
}

func (c *CameraData) Attr(name string) any {
	switch name {
	case "clip_start":
		return c.ClipStart
	case "clip_end":
		return c.ClipEnd
	case "ortho_scale":
		return c.OrthoScale
	case "angle":
		return c.Angle
	}
	panic(fmt.Sprintf("escn: camera data has no attribute %q", name))
}

func (c *CameraData) AnimationTracks() []Track { return c.Tracks }

// LightData carries the source light parameters. Energy is in source units;
// the per-kind conversion tables own the unit scaling.
type LightData struct {
	Kind           LightKind
	Energy         float32
	Color          Color
	ShadowColor    Color
	SpecularFactor float32
	CutoffDistance float32
	SpotSize       float32 // full spot angle, radians
	SpotBlend      float32 // normalized [0,1]
	UseShadow      bool
	CastShadow     bool // render-engine shadow toggle

	Tracks []Track
}

func (l *LightData) Attr(name string) any {
	switch name {
	case "energy":
		return l.Energy
	case "color":
		return l.Color
	case "shadow_color":
		return l.ShadowColor
	case "specular_factor":
		return l.SpecularFactor
	case "cutoff_distance":
		return l.CutoffDistance
	case "spot_size":
		return l.SpotSize
	case "spot_blend":
		return l.SpotBlend
	}
	panic(fmt.Sprintf("escn: light data has no attribute %q", name))
}

func (l *LightData) AnimationTracks() []Track { return l.Tracks }
