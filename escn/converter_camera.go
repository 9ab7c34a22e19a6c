package escn

// ExportCameraNode converts a source camera into a Camera node.
func ExportCameraNode(doc *Document, settings *ExportSettings, entity *Entity, parent *Node) *Node {
	camNode := NewNode(entity.Name, "Camera", parent)
	camera := entity.Camera

	applyConversions(camNode, camera, cameraAttrConversions)

	if camera.Type == CameraPerspective {
		camNode.Set("projection", 0)
	} else {
		camNode.Set("projection", 1)
	}

	// fov stays out of the conversion table because it is not wired into
	// the animation-sampling path.
	camNode.Set("fov", Degrees(camera.Angle))

	camNode.Set("transform", NormalizeTransform(entity.MatrixLocal, "Camera"))
	doc.AddNode(camNode)

	ExportAnimationData(doc, settings, camNode, camera, PropertyCamera)

	return camNode
}
