package container

// BindingBuilder is the fluent configuration opened by (*Container).Bind.
// It mutates the already-registered binding in place, so configuration
// may stop after any link in the chain.
//
//	c.Bind("Weapon").To("Katana").InSingletonScope().WhenTargetNamed("sharp")
type BindingBuilder struct {
	binding *Binding
}

// ── Construction strategy ─────────────────────────────────────────────────────

// To binds the identifier to a concrete type. The type's constructor and
// dependency list come from registered type metadata (RegisterType or an
// external MetadataReader); planning fails if none exists.
func (bb *BindingBuilder) To(typeID string) *BindingBuilder {
	bb.binding.kind = bindingToType
	bb.binding.typeID = typeID
	return bb
}

// ToConstant binds a pre-built value. Constants are singletons: the same
// value is handed out on every resolution.
func (bb *BindingBuilder) ToConstant(value any) *BindingBuilder {
	bb.binding.kind = bindingInstance
	bb.binding.instance = value
	bb.binding.scope = ScopeSingleton
	return bb
}

// ToDynamicValue binds a function invoked per resolution, subject to the
// binding's scope.
func (bb *BindingBuilder) ToDynamicValue(fn Factory) *BindingBuilder {
	bb.binding.kind = bindingDynamic
	bb.binding.dynamic = fn
	return bb
}

// ToFactory binds a factory: the injected value is the Factory produced
// by provider, and the consumer invokes it whenever it needs an
// instance.
func (bb *BindingBuilder) ToFactory(provider FactoryProvider) *BindingBuilder {
	bb.binding.kind = bindingFactory
	bb.binding.provider = provider
	return bb
}

// ── Scope ─────────────────────────────────────────────────────────────────────

// InSingletonScope caches the first resolved instance for the lifetime
// of the binding.
func (bb *BindingBuilder) InSingletonScope() *BindingBuilder {
	bb.binding.scope = ScopeSingleton
	return bb
}

// InTransientScope builds a fresh instance on every resolution.
func (bb *BindingBuilder) InTransientScope() *BindingBuilder {
	bb.binding.scope = ScopeTransient
	return bb
}

// InRequestScope shares one instance within a single top-level Get* pass.
func (bb *BindingBuilder) InRequestScope() *BindingBuilder {
	bb.binding.scope = ScopeRequest
	return bb
}

// ── Constraints ───────────────────────────────────────────────────────────────

// WhenTargetNamed restricts the binding to targets carrying the reserved
// "named" tag with this value.
func (bb *BindingBuilder) WhenTargetNamed(name string) *BindingBuilder {
	bb.binding.setTag(NamedTag, name)
	return bb
}

// WhenTargetTagged restricts the binding to targets carrying this tag.
func (bb *BindingBuilder) WhenTargetTagged(key, value string) *BindingBuilder {
	bb.binding.setTag(key, value)
	return bb
}

// When restricts the binding with an arbitrary predicate over the
// requesting target. Predicates are evaluated during planning only — the
// IsBound* probes ignore them (see matcher.go).
func (bb *BindingBuilder) When(pred func(Target) bool) *BindingBuilder {
	bb.binding.when = pred
	return bb
}
