package escn

import "fmt"

// PropertyCategory selects which conversion table the animation exporter
// samples through.
type PropertyCategory string

const (
	PropertyCamera PropertyCategory = "camera"
	PropertyLight  PropertyCategory = "light"
)

// TrackKeys is the serialized keyframe payload of one animation track.
type TrackKeys struct {
	Times  []float32
	Values []any
}

// conversionFor picks the table the category's static export used, so static
// and animated property paths stay consistent.
func conversionFor(category PropertyCategory, source AttrSource) []AttrConversion {
	switch category {
	case PropertyCamera:
		return cameraAttrConversions
	case PropertyLight:
		if light, ok := source.(*LightData); ok {
			return LightConversionTable(light.Kind)
		}
	}
	return nil
}

// ExportAnimationData walks the keyframed attributes of a source data block
// and writes value tracks for every attribute the conversion table covers,
// sampling each keyframe through the same transform the static export used.
// A nil target node is a no-op: an abandoned conversion must not fault here.
// Attributes without a table entry (fov among them) produce no track.
func ExportAnimationData(doc *Document, settings *ExportSettings, node *Node, source AttrSource, category PropertyCategory) {
	if node == nil {
		return
	}
	tracks := source.AnimationTracks()
	if len(tracks) == 0 {
		return
	}
	entries := conversionFor(category, source)

	anim := NewSubResource("Animation")
	// Placeholder so length serializes ahead of the tracks; overwritten below.
	anim.Set("length", float32(0))
	var length float32
	trackIndex := 0
	for _, track := range tracks {
		entry, ok := lookupConversion(entries, track.Attr)
		if !ok {
			continue
		}
		keys := TrackKeys{
			Times:  make([]float32, 0, len(track.Keys)),
			Values: make([]any, 0, len(track.Keys)),
		}
		for _, key := range track.Keys {
			keys.Times = append(keys.Times, key.Time)
			keys.Values = append(keys.Values, entry.Convert(key.Value))
			if key.Time > length {
				length = key.Time
			}
		}
		prefix := fmt.Sprintf("tracks/%d", trackIndex)
		anim.Set(prefix+"/type", "value")
		anim.Set(prefix+"/path", NodePath(node.Name+":"+entry.Target))
		anim.Set(prefix+"/keys", keys)
		trackIndex++
	}
	if trackIndex == 0 {
		return
	}
	anim.Set("length", length)

	animID := doc.AddSubResource(anim)
	playerParent := node.Parent()
	if playerParent == nil {
		playerParent = node
	}
	player := NewNode(node.Name+"Animation", "AnimationPlayer", playerParent)
	player.Set("anims/default", SubResourceToken(animID))
	doc.AddNode(player)
}
