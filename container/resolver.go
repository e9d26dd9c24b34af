package container

// resolver materializes a resolution plan depth-first: leaves are built
// before the nodes depending on them, and each parent's construction
// strategy receives its resolved children positionally.
type resolver struct{}

// requestCache holds the instances built so far in one resolution pass.
// Distinct top-level Get* calls get distinct caches, so request-scoped
// bindings are shared within a pass and never across passes.
type requestCache map[*Binding]any

// resolve produces the final value for a plan. Multi-inject nodes yield
// []any in the order the planner selected the bindings (registration
// order filtered by match); single nodes yield the bare value.
func (r resolver) resolve(node *resolutionContext, pass requestCache) (any, error) {
	if node.multi {
		values := make([]any, 0, len(node.bindings))
		for i, b := range node.bindings {
			v, err := r.resolveBinding(node, b, node.children[i], pass)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	}
	return r.resolveBinding(node, node.bindings[0], node.children[0], pass)
}

// resolveBinding applies scope rules for one binding and, on a cache
// miss, invokes its construction strategy. A construction failure
// propagates immediately and caches nothing for the failed node;
// singletons cached earlier in the same pass stay cached.
func (r resolver) resolveBinding(node *resolutionContext, b *Binding, children []*resolutionContext, pass requestCache) (any, error) {
	switch b.scope {
	case ScopeSingleton:
		if v, ok := b.cachedInstance(); ok {
			return v, nil
		}
	case ScopeRequest:
		if v, ok := pass[b]; ok {
			return v, nil
		}
	}

	v, err := r.construct(node, b, children, pass)
	if err != nil {
		return nil, err
	}

	switch b.scope {
	case ScopeSingleton:
		b.storeCache(v)
	case ScopeRequest:
		pass[b] = v
	}
	return v, nil
}

// construct runs the binding's construction strategy.
func (r resolver) construct(node *resolutionContext, b *Binding, children []*resolutionContext, pass requestCache) (any, error) {
	switch b.kind {
	case bindingInstance:
		return b.instance, nil

	case bindingDynamic:
		return b.dynamic(node.container)

	case bindingFactory:
		// The injected value is the factory itself.
		return b.provider(node.container), nil

	case bindingToType:
		def, ok := node.container.typeInfo(b.typeID)
		if !ok {
			// The planner already checked; unbinding mid-pass is the
			// only way here.
			return nil, InvalidConfigurationError{
				Reason: "type metadata for " + b.typeID + " disappeared during resolution",
			}
		}
		deps := make([]any, 0, len(children))
		for _, child := range children {
			v, err := r.resolve(child, pass)
			if err != nil {
				return nil, err
			}
			deps = append(deps, v)
		}
		return def.Construct(deps...)

	default:
		return nil, InvalidConfigurationError{
			Reason: "binding for " + b.serviceIdentifier + " has no construction strategy" +
				" (configure it with To, ToConstant, ToFactory or ToDynamicValue)",
		}
	}
}
