package escn

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Exporter converts one source entity into a target node under parent. It
// returns the new node, the unchanged parent (filtered kinds), or nil
// (abandoned conversions); it never returns an error for data-driven
// reasons.
type Exporter func(doc *Document, settings *ExportSettings, entity *Entity, parent *Node) *Node

// ExporterRegistry is a threadsafe registry mapping entity kinds to
// exporters.
type ExporterRegistry struct {
	mu        sync.RWMutex
	exporters map[EntityKind]Exporter
}

// NewExporterRegistry builds an empty registry.
func NewExporterRegistry() *ExporterRegistry {
	return &ExporterRegistry{exporters: make(map[EntityKind]Exporter)}
}

// ExporterExistsError indicates a duplicate registration attempt.
var ExporterExistsError = errors.New("exporter already registered")

// Register adds an exporter for a kind. Returns ExporterExistsError when the
// kind already has one.
func (r *ExporterRegistry) Register(kind EntityKind, exp Exporter) error {
	if exp == nil {
		return errors.New("exporter is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.exporters[kind]; exists {
		return fmt.Errorf("%w: %s", ExporterExistsError, kind)
	}
	r.exporters[kind] = exp
	return nil
}

// Kinds returns the registered entity kinds, sorted.
func (r *ExporterRegistry) Kinds() []EntityKind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]EntityKind, 0, len(r.exporters))
	for kind := range r.exporters {
		out = append(out, kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Export dispatches one entity to its kind's exporter. Kinds without a
// registration degrade to the placeholder exporter, which turns anything
// into a plain spatial node.
func (r *ExporterRegistry) Export(doc *Document, settings *ExportSettings, entity *Entity, parent *Node) *Node {
	r.mu.RLock()
	exp, ok := r.exporters[entity.Kind()]
	r.mu.RUnlock()
	if !ok {
		exp = ExportEmptyNode
	}
	return exp(doc, settings, entity, parent)
}

// DefaultExporterRegistry is pre-populated with the built-in node
// converters.
var DefaultExporterRegistry = newDefaultExporterRegistry()

func newDefaultExporterRegistry() *ExporterRegistry {
	reg := NewExporterRegistry()
	registerDefaultExporters(reg)
	return reg
}

// registerDefaultExporters wires built-ins onto the provided registry.
func registerDefaultExporters(reg *ExporterRegistry) {
	// ignore duplicate errors to allow idempotent init in tests
	_ = reg.Register(KindEmpty, ExportEmptyNode)
	_ = reg.Register(KindCamera, ExportCameraNode)
	_ = reg.Register(KindLight, ExportLightNode)
}
