package container

import (
	"strconv"
	"sync"
)

// Dependency is one declared dependency of a concrete type: the planner
// turns each entry into a child target. Positional — the resolved values
// are passed to Construct in declaration order.
type Dependency struct {
	ServiceIdentifier string

	// Multi requests every matching binding as an ordered []any
	// instead of exactly one value.
	Multi bool

	// Name is shorthand for a "named" tag on the child target.
	Name string

	// Tags narrows which bindings satisfy the child target.
	Tags map[string]string
}

// target converts the declared dependency into a per-pass Target.
func (d Dependency) target() Target {
	tt := TargetValue
	if d.Multi {
		tt = TargetCollection
	}
	t := newTarget(d.ServiceIdentifier, tt, d.Tags)
	if d.Name != "" {
		if t.Tags == nil {
			t.Tags = make(map[string]string, 1)
		}
		t.Tags[NamedTag] = d.Name
	}
	return t
}

// TypeDef is the construction metadata for one concrete type: how to
// build it and what it needs. Multi dependencies arrive as []any; plain
// ones as the resolved value.
//
//	c.RegisterType("Samurai", container.TypeDef{
//	    Deps: []container.Dependency{{ServiceIdentifier: "Weapon"}},
//	    Construct: func(deps ...any) (any, error) {
//	        return &Samurai{Weapon: deps[0].(Weapon)}, nil
//	    },
//	})
type TypeDef struct {
	Construct func(deps ...any) (any, error)
	Deps      []Dependency
}

// MetadataReader supplies dependency metadata for to-type bindings. The
// core consumes it as an opaque dependenciesOf(type) capability; how the
// metadata is produced (hand-written, generated, reflected) is not its
// concern. TypeRegistry is the default implementation.
type MetadataReader interface {
	// TypeInfo returns the construction metadata for a type id.
	TypeInfo(typeID string) (TypeDef, bool)
}

// TypeRegistry is an in-memory MetadataReader.
type TypeRegistry struct {
	mu   sync.RWMutex
	defs map[string]TypeDef
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{defs: make(map[string]TypeDef)}
}

// Register stores the metadata for a type id, replacing any previous
// definition. A nil Construct panics immediately rather than at first
// resolution.
func (r *TypeRegistry) Register(typeID string, def TypeDef) {
	if def.Construct == nil {
		panic("container: TypeDef for " + strconv.Quote(typeID) + " has nil Construct")
	}
	r.mu.Lock()
	r.defs[typeID] = def
	r.mu.Unlock()
}

// TypeInfo implements MetadataReader.
func (r *TypeRegistry) TypeInfo(typeID string) (TypeDef, bool) {
	r.mu.RLock()
	def, ok := r.defs[typeID]
	r.mu.RUnlock()
	return def, ok
}

// copyInto copies every definition into dst (container merge).
func (r *TypeRegistry) copyInto(dst *TypeRegistry) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, def := range r.defs {
		dst.Register(id, def)
	}
}
