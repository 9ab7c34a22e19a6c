package escn

import "regexp"

// sceneFileRe matches entity names that look like packaged-scene filenames
// (duplicated objects keep the .tscn/.escn part followed by a numeric
// suffix, so the match is a prefix, not the whole name).
var sceneFileRe = regexp.MustCompile(`(.*\.[te]scn)`)

// UseExternalScene resolves a packaged scene by logical name and returns the
// ExtResource token referencing it, registering the resource on first use.
// Repeated calls with one name against one document reuse the registration.
func UseExternalScene(doc *Document, settings *ExportSettings, sceneName string) (ResourceToken, bool) {
	path, declaredType, found := FindScene(settings, sceneName)
	if !found {
		settings.logger().Warn("unable to find scene in project", "scene", sceneName)
		return "", false
	}
	id, ok := doc.GetExternalResource(sceneName)
	if !ok {
		id = doc.AddExternalResource(ExternalResource{Path: path, Type: declaredType}, sceneName)
	}
	return ExtResourceToken(id), true
}

// ExportEmptyNode converts a placeholder (or any unhandled entity) into a
// spatial node. When placeholder export is disabled it returns the parent
// unchanged, so the caller needs no special casing for filtered kinds.
//
// A name carrying a scene-file suffix first tries to instance the matching
// packaged scene; when nothing resolves it falls through to a plain spatial
// node rather than failing.
func ExportEmptyNode(doc *Document, settings *ExportSettings, entity *Entity, parent *Node) *Node {
	if !settings.ExportsType(KindEmpty) {
		return parent
	}

	if m := sceneFileRe.FindStringSubmatch(entity.Name); m != nil {
		if instance, ok := UseExternalScene(doc, settings, m[1]); ok {
			instanceNode := NewInstanceNode(entity.Name, instance, parent)
			instanceNode.Set("transform", entity.MatrixLocal)
			doc.AddNode(instanceNode)

			return instanceNode
		}
	}

	emptyNode := NewNode(entity.Name, "Spatial", parent)
	emptyNode.Set("transform", entity.MatrixLocal)
	doc.AddNode(emptyNode)

	return emptyNode
}
