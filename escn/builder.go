package escn

// Builder provides a fluent API for constructing source entity trees in code
// (tests and demos mostly; real exports receive entities from the host
// scene).
type Builder struct {
	roots []*Entity
	stack []*Entity
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns the assembled entity forest.
func (b *Builder) Build() []*Entity {
	return b.roots
}

func (b *Builder) add(e *Entity) *Entity {
	if len(b.stack) > 0 {
		parent := b.stack[len(b.stack)-1]
		parent.Children = append(parent.Children, e)
	} else {
		b.roots = append(b.roots, e)
	}
	return e
}

// Empty appends a placeholder entity at the current level.
func (b *Builder) Empty(name string, transform Transform) *Builder {
	b.add(&Entity{Name: name, MatrixLocal: transform})
	return b
}

// Camera appends a camera entity at the current level.
func (b *Builder) Camera(name string, transform Transform, data CameraData) *Builder {
	b.add(&Entity{Name: name, MatrixLocal: transform, Camera: &data})
	return b
}

// Light appends a light entity at the current level.
func (b *Builder) Light(name string, transform Transform, data LightData) *Builder {
	b.add(&Entity{Name: name, MatrixLocal: transform, Light: &data})
	return b
}

// Begin appends a placeholder entity and descends into it; subsequent
// entities become its children until the matching End.
func (b *Builder) Begin(name string, transform Transform) *Builder {
	e := b.add(&Entity{Name: name, MatrixLocal: transform})
	b.stack = append(b.stack, e)
	return b
}

// End ascends one level. Extra Ends are ignored.
func (b *Builder) End() *Builder {
	if len(b.stack) > 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	return b
}
