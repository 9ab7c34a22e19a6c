package escn

import "fmt"

// ResourceID is a document-scoped resource identifier, stable for the
// document's lifetime.
type ResourceID int

// ResourceToken is a raw escn literal such as ExtResource(1); the writer
// emits it unquoted.
type ResourceToken string

// NodePath is a Godot node-path literal; the writer emits NodePath("...").
type NodePath string

// ExtResourceToken builds the literal used to reference an external resource.
func ExtResourceToken(id ResourceID) ResourceToken {
	return ResourceToken(fmt.Sprintf("ExtResource(%d)", id))
}

// SubResourceToken builds the literal used to reference a sub-resource.
func SubResourceToken(id ResourceID) ResourceToken {
	return ResourceToken(fmt.Sprintf("SubResource(%d)", id))
}

// ExternalResource references content stored in a separate file, linked
// rather than embedded in the exported document.
type ExternalResource struct {
	Path string
	Type string
}

// attrMap is an ordered attribute mapping: keys unique, last write wins,
// insertion order preserved for serialization.
type attrMap struct {
	names  []string
	values map[string]any
}

func (m *attrMap) set(name string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

func (m *attrMap) get(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Node is a target scene node record: name, type, parent linkage, and an
// ordered attribute mapping.
type Node struct {
	Name     string
	Type     string
	parent   *Node
	instance ResourceToken
	attrs    attrMap
}

// NewNode builds a node of the given target type under parent (nil parent
// means scene root).
func NewNode(name, nodeType string, parent *Node) *Node {
	return &Node{Name: name, Type: nodeType, parent: parent}
}

// NewInstanceNode builds a node that instances an external resource instead
// of carrying a native type.
func NewInstanceNode(name string, instance ResourceToken, parent *Node) *Node {
	return &Node{Name: name, instance: instance, parent: parent}
}

// Set assigns a target attribute; later writes overwrite earlier ones.
func (n *Node) Set(attr string, value any) {
	n.attrs.set(attr, value)
}

// Get returns a previously assigned attribute value.
func (n *Node) Get(attr string) (any, bool) {
	return n.attrs.get(attr)
}

// Attrs returns the assigned attribute names in insertion order.
func (n *Node) Attrs() []string {
	return append([]string(nil), n.attrs.names...)
}

// Parent returns the parent node, nil for the scene root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Instance returns the external-resource token for instance nodes, empty
// otherwise.
func (n *Node) Instance() ResourceToken {
	return n.instance
}

// ParentPath renders the parent linkage the way escn node headers expect:
// "" for the root node, "." for children of the root, and a slash-joined
// name chain below that.
func (n *Node) ParentPath() string {
	if n.parent == nil {
		return ""
	}
	var names []string
	for p := n.parent; p != nil && p.parent != nil; p = p.parent {
		names = append([]string{p.Name}, names...)
	}
	if len(names) == 0 {
		return "."
	}
	path := names[0]
	for _, name := range names[1:] {
		path += "/" + name
	}
	return path
}

// SubResource is an embedded typed resource (e.g. an Animation) with ordered
// attributes.
type SubResource struct {
	Type  string
	attrs attrMap
}

// NewSubResource builds an empty sub-resource of the given type.
func NewSubResource(resType string) *SubResource {
	return &SubResource{Type: resType}
}

// Set assigns a sub-resource attribute.
func (s *SubResource) Set(attr string, value any) {
	s.attrs.set(attr, value)
}

// Attrs returns the assigned attribute names in insertion order.
func (s *SubResource) Attrs() []string {
	return append([]string(nil), s.attrs.names...)
}

// Get returns a previously assigned attribute value.
func (s *SubResource) Get(attr string) (any, bool) {
	return s.attrs.get(attr)
}

type extResourceEntry struct {
	name string
	res  ExternalResource
	id   ResourceID
}

type subResourceEntry struct {
	res *SubResource
	id  ResourceID
}

// Document is the in-memory escn file: node records in attachment order plus
// the external and embedded resources they reference. It is built during one
// export pass and serialized by the writer afterwards.
type Document struct {
	nodes []*Node
	ext   []extResourceEntry
	subs  []subResourceEntry
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddNode appends a node record to the document.
func (d *Document) AddNode(n *Node) {
	d.nodes = append(d.nodes, n)
}

// Nodes returns the node records in attachment order.
func (d *Document) Nodes() []*Node {
	return d.nodes
}

// GetExternalResource looks up the resource registered under the logical
// name.
func (d *Document) GetExternalResource(name string) (ResourceID, bool) {
	for _, e := range d.ext {
		if e.name == name {
			return e.id, true
		}
	}
	return 0, false
}

// AddExternalResource registers res under the logical name and returns its
// identifier. Registering a name twice returns the existing identifier; a
// document never holds two registrations for one name.
func (d *Document) AddExternalResource(res ExternalResource, name string) ResourceID {
	if id, ok := d.GetExternalResource(name); ok {
		return id
	}
	id := ResourceID(len(d.ext) + 1)
	d.ext = append(d.ext, extResourceEntry{name: name, res: res, id: id})
	return id
}

// ExternalResources returns the registered external resources in
// registration order.
func (d *Document) ExternalResources() []ExternalResource {
	out := make([]ExternalResource, 0, len(d.ext))
	for _, e := range d.ext {
		out = append(out, e.res)
	}
	return out
}

// AddSubResource embeds a sub-resource and returns its identifier.
func (d *Document) AddSubResource(res *SubResource) ResourceID {
	id := ResourceID(len(d.subs) + 1)
	d.subs = append(d.subs, subResourceEntry{res: res, id: id})
	return id
}

// SubResources returns the embedded sub-resources in registration order.
func (d *Document) SubResources() []*SubResource {
	out := make([]*SubResource, 0, len(d.subs))
	for _, e := range d.subs {
		out = append(out, e.res)
	}
	return out
}
