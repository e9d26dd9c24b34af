package container

import "sync"

// Factory builds a concrete value from the container. Factories injected
// by ToFactory bindings and the functions given to ToDynamicValue share
// this shape.
//
//	// InversifyJS: container.bind<Weapon>("Weapon").toDynamicValue(ctx => new Katana())
//	c.Bind("Weapon").ToDynamicValue(func(c *container.Container) (any, error) {
//	    return NewKatana(), nil
//	})
type Factory func(c *Container) (any, error)

// FactoryProvider produces the Factory that a ToFactory binding injects.
// The resolved value of such a binding is the Factory itself, not its
// output — the consumer decides when (and how often) to invoke it.
//
//	// InversifyJS: container.bind<interfaces.Factory<Weapon>>("WeaponFactory").toFactory(...)
type FactoryProvider func(c *Container) Factory

// bindingKind is the construction strategy of a binding.
type bindingKind int

const (
	bindingInvalid bindingKind = iota
	bindingInstance
	bindingDynamic
	bindingFactory
	bindingToType
)

// Binding associates one service identifier with one construction
// strategy, scope, and constraint set. Bindings are created through
// (*Container).Bind and configured through the returned BindingBuilder;
// they are immutable by convention once configuration ends, except for
// the singleton cache slot written by the resolver.
type Binding struct {
	serviceIdentifier string
	scope             Scope
	kind              bindingKind

	// strategy payload — exactly one is set, per kind
	instance any
	dynamic  Factory
	provider FactoryProvider
	typeID   string

	// constraints
	tags map[string]string
	when func(Target) bool

	// origin tag for bulk unload; empty outside module loading
	moduleID string

	// singleton cache, populated lazily on first resolution.
	// Guarded by its own mutex so a first-write race between two
	// concurrent resolutions cannot double-construct (check-then-act).
	cacheMu sync.Mutex
	cache   any
	cached  bool
}

// newBinding creates an unconfigured binding. moduleID is the origin tag
// for module-loaded bindings and empty otherwise — passed explicitly at
// construction rather than patched in afterwards.
func newBinding(id string, defaultScope Scope, moduleID string) *Binding {
	return &Binding{
		serviceIdentifier: id,
		scope:             defaultScope,
		moduleID:          moduleID,
	}
}

// ServiceIdentifier returns the key the binding is registered under.
func (b *Binding) ServiceIdentifier() string { return b.serviceIdentifier }

// Scope returns the binding's lifecycle scope.
func (b *Binding) Scope() Scope { return b.scope }

// ModuleID returns the origin module id, or "" for directly bound records.
func (b *Binding) ModuleID() string { return b.moduleID }

// Tag returns the declared value for a tag key.
func (b *Binding) Tag(key string) (string, bool) {
	v, ok := b.tags[key]
	return v, ok
}

// Clone returns a copy with identical identifier, scope, strategy and
// constraints but a cleared instance cache. Carrying the cache over
// would leak a scope-bound instance into an unrelated registry, which is
// why registry clones (snapshot, merge, child setups) always start cold.
func (b *Binding) Clone() *Binding {
	clone := &Binding{
		serviceIdentifier: b.serviceIdentifier,
		scope:             b.scope,
		kind:              b.kind,
		instance:          b.instance,
		dynamic:           b.dynamic,
		provider:          b.provider,
		typeID:            b.typeID,
		when:              b.when,
		moduleID:          b.moduleID,
	}
	if len(b.tags) > 0 {
		clone.tags = make(map[string]string, len(b.tags))
		for k, v := range b.tags {
			clone.tags[k] = v
		}
	}
	return clone
}

// cachedInstance returns the singleton cache slot, if populated.
func (b *Binding) cachedInstance() (any, bool) {
	b.cacheMu.Lock()
	defer b.cacheMu.Unlock()
	return b.cache, b.cached
}

// storeCache populates the singleton cache slot.
func (b *Binding) storeCache(v any) {
	b.cacheMu.Lock()
	b.cache = v
	b.cached = true
	b.cacheMu.Unlock()
}

// setTag declares a constraint tag on the binding (builder use).
func (b *Binding) setTag(key, value string) {
	if b.tags == nil {
		b.tags = make(map[string]string, 1)
	}
	b.tags[key] = value
}
