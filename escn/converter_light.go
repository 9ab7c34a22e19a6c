package escn

// lightKindToNodeType is the closed mapping from source light kinds to
// target node types.
var lightKindToNodeType = map[LightKind]string{
	LightPoint: "OmniLight",
	LightSpot:  "SpotLight",
	LightSun:   "DirectionalLight",
}

// ExportLightNode converts the light kinds it knows about; anything else
// produces no node and a warning. The animation handoff happens either way,
// so the collaborator must accept a nil node as a no-op.
func ExportLightNode(doc *Document, settings *ExportSettings, entity *Entity, parent *Node) *Node {
	light := entity.Light

	var lightNode *Node
	nodeType, known := lightKindToNodeType[light.Kind]
	if known {
		lightNode = NewNode(entity.Name, nodeType, parent)
	} else {
		settings.logger().Warn("unknown light kind, use point, spot or sun",
			"entity", entity.Name, "kind", string(light.Kind))
	}

	if lightNode != nil {
		applyConversions(lightNode, light, LightConversionTable(light.Kind))

		// Properties common to all lights. These stay off the conversion
		// table because they do not animate per-attribute.
		lightNode.Set("transform", NormalizeTransform(entity.MatrixLocal, nodeType))
		lightNode.Set("light_negative", light.Energy < 0)
		lightNode.Set("shadow_enabled", light.UseShadow && light.CastShadow)

		doc.AddNode(lightNode)
	}

	ExportAnimationData(doc, settings, lightNode, light, PropertyLight)

	return lightNode
}
