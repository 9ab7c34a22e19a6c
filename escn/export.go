package escn

// ExportScene converts the given entity trees into a document rooted at a
// spatial node named name, using the default exporter registry.
func ExportScene(doc *Document, settings *ExportSettings, name string, roots []*Entity) *Node {
	return DefaultExporterRegistry.ExportScene(doc, settings, name, roots)
}

// ExportScene runs one export pass: a root node is created, then every
// entity is converted depth-first through the registry. An exporter
// returning nil abandons that entity only; its children attach to the
// nearest exported ancestor and sibling entities are unaffected.
func (r *ExporterRegistry) ExportScene(doc *Document, settings *ExportSettings, name string, roots []*Entity) *Node {
	rootNode := NewNode(name, "Spatial", nil)
	rootNode.Set("transform", IdentityTransform())
	doc.AddNode(rootNode)
	for _, entity := range roots {
		r.exportSubtree(doc, settings, entity, rootNode)
	}
	return rootNode
}

func (r *ExporterRegistry) exportSubtree(doc *Document, settings *ExportSettings, entity *Entity, parent *Node) {
	node := r.Export(doc, settings, entity, parent)
	next := node
	if next == nil {
		next = parent
	}
	for _, child := range entity.Children {
		r.exportSubtree(doc, settings, child, next)
	}
}
