package container

import (
	"fmt"
	"sync"
)

// SelfIdentifier is the identifier the container binds itself under, so
// factories and modules can ask for the container they live in.
const SelfIdentifier = "container"

// Container is the IoC container: it owns one binding registry and
// orchestrates planner and resolver for every Get-style call, optionally
// through an installed middleware chain.
//
// A container may have one parent. Resolution that finds no matching
// binding locally falls back to the parent chain before failing; the
// parent keeps no reference back to its children.
type Container struct {
	mu        sync.RWMutex
	registry  *lookup
	parent    *Container
	options   Options
	types     *TypeRegistry
	snapshots []snapshot

	middlewares []Middleware
	handle      Next // composed chain over planAndResolve

	planner  planner
	resolver resolver
}

// Options configures a container at construction time.
type Options struct {
	// DefaultScope applies to bindings that do not override their
	// scope. Zero value is ScopeTransient.
	DefaultScope Scope

	// Parent is the container consulted when local lookup finds
	// nothing. Optional.
	Parent *Container

	// Metadata is an additional MetadataReader consulted after the
	// container's own TypeRegistry. Optional.
	Metadata MetadataReader
}

// Option mutates Options.
type Option func(*Options)

// WithDefaultScope sets the scope used by bindings that don't choose one.
func WithDefaultScope(s Scope) Option {
	return func(o *Options) { o.DefaultScope = s }
}

// WithParent sets the parent container.
func WithParent(parent *Container) Option {
	return func(o *Options) { o.Parent = parent }
}

// WithMetadataReader installs an external source of type metadata,
// consulted after RegisterType definitions.
func WithMetadataReader(r MetadataReader) Option {
	return func(o *Options) { o.Metadata = r }
}

// snapshot is one saved (registry, middleware) pair. The registry copy
// is cold: restoring never resurrects singleton caches populated after
// the snapshot was taken.
type snapshot struct {
	registry    *lookup
	middlewares []Middleware
}

// New creates an empty container and binds it to itself under
// SelfIdentifier.
func New(opts ...Option) *Container {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	c := &Container{
		registry: newLookup(),
		parent:   options.Parent,
		options:  options,
		types:    NewTypeRegistry(),
	}
	c.handle = c.planAndResolve
	c.Bind(SelfIdentifier).ToConstant(c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind opens a fluent configuration for a new binding. The binding is
// registered immediately with the container's default scope and no
// strategy; the returned builder fills both in.
//
//	// InversifyJS: container.bind<Weapon>("Weapon").to(Katana).inSingletonScope()
//	c.Bind("Weapon").To("Katana").InSingletonScope()
func (c *Container) Bind(id string) *BindingBuilder {
	return c.bindForModule(id, "")
}

// bindForModule creates and registers a binding carrying a module origin
// tag ("" for direct binds).
func (c *Container) bindForModule(id, moduleID string) *BindingBuilder {
	b := newBinding(id, c.options.DefaultScope, moduleID)
	c.mu.Lock()
	c.registry.Add(id, b)
	c.mu.Unlock()
	return &BindingBuilder{binding: b}
}

// RegisterType stores construction metadata for a concrete type, making
// it available to To(...) bindings in this container and its children.
func (c *Container) RegisterType(typeID string, def TypeDef) {
	c.types.Register(typeID, def)
}

// Unbind removes every binding registered under id.
func (c *Container) Unbind(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registry.Remove(id)
}

// UnbindAll removes every binding, including the container's binding to
// itself.
func (c *Container) UnbindAll() {
	c.mu.Lock()
	c.registry = newLookup()
	c.mu.Unlock()
}

// ── Existence probes ──────────────────────────────────────────────────────────

// IsBound reports whether at least one binding exists for id in this
// container or its ancestors.
func (c *Container) IsBound(id string) bool {
	return c.probe(newTarget(id, TargetValue, nil))
}

// IsBoundNamed is IsBound narrowed by the reserved "named" tag.
func (c *Container) IsBoundNamed(id, name string) bool {
	return c.probe(newTarget(id, TargetValue, map[string]string{NamedTag: name}))
}

// IsBoundTagged is IsBound narrowed by one tag. The probe evaluates flat
// tags only: bindings with a custom When predicate may report bound here
// yet fail a real Get (see matcher.go).
func (c *Container) IsBoundTagged(id, key, value string) bool {
	return c.probe(newTarget(id, TargetValue, map[string]string{key: value}))
}

// probe walks the chain looking for any flat-tag match.
func (c *Container) probe(t Target) bool {
	for cur := c; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		bindings := cur.registry.entries[t.ServiceIdentifier]
		for _, b := range bindings {
			if matchesTags(b, t) {
				cur.mu.RUnlock()
				return true
			}
		}
		cur.mu.RUnlock()
	}
	return false
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get resolves the single binding for id. It fails with a NotFoundError
// when nothing matches anywhere in the chain and an AmbiguousMatchError
// when more than one binding matches.
func (c *Container) Get(id string) (any, error) {
	return c.request(NextArgs{ServiceIdentifier: id})
}

// GetNamed resolves the single binding for id constrained by the
// reserved "named" tag.
func (c *Container) GetNamed(id, name string) (any, error) {
	return c.request(NextArgs{ServiceIdentifier: id, Tags: map[string]string{NamedTag: name}})
}

// GetTagged resolves the single binding for id constrained by one tag.
func (c *Container) GetTagged(id, key, value string) (any, error) {
	return c.request(NextArgs{ServiceIdentifier: id, Tags: map[string]string{key: value}})
}

// GetAll resolves every matching binding for id, in registration order.
// The result may be empty when id is registered but no binding matches;
// an id registered nowhere in the chain fails with a NotFoundError.
func (c *Container) GetAll(id string) ([]any, error) {
	return c.requestAll(NextArgs{ServiceIdentifier: id, Multi: true})
}

// GetAllNamed is GetAll constrained by the reserved "named" tag.
func (c *Container) GetAllNamed(id, name string) ([]any, error) {
	return c.requestAll(NextArgs{ServiceIdentifier: id, Multi: true, Tags: map[string]string{NamedTag: name}})
}

// GetAllTagged is GetAll constrained by one tag.
func (c *Container) GetAllTagged(id, key, value string) ([]any, error) {
	return c.requestAll(NextArgs{ServiceIdentifier: id, Multi: true, Tags: map[string]string{key: value}})
}

// request pushes one Get* call through the middleware chain.
func (c *Container) request(args NextArgs) (any, error) {
	c.mu.RLock()
	handle := c.handle
	guarded := len(c.middlewares) > 0
	c.mu.RUnlock()

	v, err := handle(args)
	if err != nil {
		return nil, err
	}
	if guarded && v == nil {
		return nil, InvalidConfigurationError{
			Reason: "middleware returned no value for " + args.ServiceIdentifier,
		}
	}
	return v, nil
}

func (c *Container) requestAll(args NextArgs) ([]any, error) {
	v, err := c.request(args)
	if err != nil {
		return nil, err
	}
	values, ok := v.([]any)
	if !ok {
		return nil, InvalidConfigurationError{
			Reason: fmt.Sprintf("middleware replaced the multi-inject result for %s with %T", args.ServiceIdentifier, v),
		}
	}
	return values, nil
}

// planAndResolve is the terminal function behind the middleware chain.
func (c *Container) planAndResolve(args NextArgs) (any, error) {
	tt := TargetValue
	if args.Multi {
		tt = TargetCollection
	}
	plan, err := c.planner.plan(c, args.Multi, tt, args.ServiceIdentifier, args.Tags, args.AvoidConstraints)
	if err != nil {
		return nil, err
	}
	return c.resolver.resolve(plan, make(requestCache))
}

// matchingBindings returns the constraint-filtered candidates for a
// target from the nearest container in the chain that has any, plus
// whether the identifier is registered anywhere in the chain at all.
func (c *Container) matchingBindings(t Target, avoidConstraints bool) ([]*Binding, bool) {
	registered := false
	for cur := c; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		bindings, ok := cur.registry.entries[t.ServiceIdentifier]
		if ok {
			registered = true
		}
		var matches []*Binding
		for _, b := range bindings {
			if avoidConstraints || matchesTarget(b, t) {
				matches = append(matches, b)
			}
		}
		cur.mu.RUnlock()
		if len(matches) > 0 {
			return matches, true
		}
	}
	return nil, registered
}

// typeInfo finds construction metadata for a type id, consulting the
// local TypeRegistry, then any external reader, then the parent chain.
func (c *Container) typeInfo(typeID string) (TypeDef, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if def, ok := cur.types.TypeInfo(typeID); ok {
			return def, true
		}
		if cur.options.Metadata != nil {
			if def, ok := cur.options.Metadata.TypeInfo(typeID); ok {
				return def, true
			}
		}
	}
	return TypeDef{}, false
}

// ── Middleware ────────────────────────────────────────────────────────────────

// ApplyMiddleware appends middlewares to the chain and recomposes it.
// Composition is right-to-left over plan+resolve: the first middleware
// installed stays outermost.
func (c *Container) ApplyMiddleware(middlewares ...Middleware) {
	c.mu.Lock()
	c.middlewares = append(c.middlewares, middlewares...)
	c.handle = composeMiddleware(c.middlewares, c.planAndResolve)
	c.mu.Unlock()
}

// ── Snapshot / Restore ────────────────────────────────────────────────────────

// Snapshot pushes a saved copy of the registry and middleware chain.
// The copy is deep: binding records are cloned, never aliased, so later
// mutation of the live registry cannot leak into the snapshot.
func (c *Container) Snapshot() {
	c.mu.Lock()
	c.snapshots = append(c.snapshots, snapshot{
		registry:    c.registry.Clone(),
		middlewares: append([]Middleware(nil), c.middlewares...),
	})
	c.mu.Unlock()
}

// Restore pops the most recent snapshot, returning the registry and
// middleware chain to their state at Snapshot time.
func (c *Container) Restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.snapshots) == 0 {
		return ErrEmptySnapshotStack
	}
	last := c.snapshots[len(c.snapshots)-1]
	c.snapshots = c.snapshots[:len(c.snapshots)-1]
	c.registry = last.registry
	c.middlewares = last.middlewares
	c.handle = composeMiddleware(c.middlewares, c.planAndResolve)
	return nil
}

// ── Hierarchy ─────────────────────────────────────────────────────────────────

// CreateChild returns a new container whose parent is this one. The
// child's registry starts empty (apart from its own self binding);
// binding on the child never mutates the parent.
func (c *Container) CreateChild(opts ...Option) *Container {
	return New(append(opts, WithParent(c))...)
}

// Parent returns the parent container, or nil.
func (c *Container) Parent() *Container { return c.parent }

// SetParent replaces the parent container. Pass nil to detach.
func (c *Container) SetParent(parent *Container) {
	c.mu.Lock()
	c.parent = parent
	c.mu.Unlock()
}

// ── Merge ─────────────────────────────────────────────────────────────────────

// Merge builds a new container whose registry is the union of both
// source registries, first container first, re-added as clones. Type
// metadata from both sources is carried over; the sources' bindings to
// themselves are not, since the merged container binds itself.
func Merge(a, b *Container) *Container {
	merged := New()
	for _, src := range []*Container{a, b} {
		src.mu.RLock()
		src.registry.Traverse(func(id string, bindings []*Binding) {
			if id == SelfIdentifier {
				return
			}
			for _, binding := range bindings {
				merged.registry.Add(id, binding.Clone())
			}
		})
		src.mu.RUnlock()
		src.types.copyInto(merged.types)
	}
	return merged
}
