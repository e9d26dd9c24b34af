package container

import "strconv"

// resolutionContext is one node of a resolution plan: the target being
// satisfied, the binding records that matched it, and — for to-type
// bindings — a planned child node per declared dependency. A plan is
// owned by exactly one resolution pass and discarded afterwards.
type resolutionContext struct {
	container *Container
	target    Target
	multi     bool
	bindings  []*Binding

	// children[i] holds the child plans for bindings[i], in the order
	// of that binding's declared dependencies. nil for strategies that
	// never recurse (constants, factories, dynamic values).
	children [][]*resolutionContext
}

// planner builds resolution plans from the registry and the externally
// supplied type metadata. It is stateless; all per-pass state lives on
// the plan and in the recursion path.
type planner struct{}

// plan builds the full plan for one root request.
//
// avoidConstraints bypasses tag filtering entirely; it exists for
// internal existence probing, not for real resolution.
func (p planner) plan(c *Container, multi bool, tt TargetType, id string, tags map[string]string, avoidConstraints bool) (*resolutionContext, error) {
	return p.planTarget(c, newTarget(id, tt, tags), multi, avoidConstraints, nil)
}

// planTarget plans one node. path holds the identifiers currently open
// on the active planning path; it is local to one root plan call, and
// sibling branches never observe each other's entries.
func (p planner) planTarget(c *Container, target Target, multi bool, avoidConstraints bool, path []string) (*resolutionContext, error) {
	for _, open := range path {
		if open == target.ServiceIdentifier {
			cycle := append(append([]string(nil), path...), target.ServiceIdentifier)
			return nil, CircularDependencyError{Path: cycle}
		}
	}

	matches, registered := c.matchingBindings(target, avoidConstraints)
	if !multi {
		switch len(matches) {
		case 1:
		case 0:
			return nil, NotFoundError{ServiceIdentifier: target.ServiceIdentifier}
		default:
			return nil, AmbiguousMatchError{
				ServiceIdentifier: target.ServiceIdentifier,
				Count:             len(matches),
			}
		}
	} else if len(matches) == 0 && !registered {
		return nil, NotFoundError{ServiceIdentifier: target.ServiceIdentifier}
	}

	node := &resolutionContext{
		container: c,
		target:    target,
		multi:     multi,
		bindings:  matches,
		children:  make([][]*resolutionContext, len(matches)),
	}

	path = append(path, target.ServiceIdentifier)
	for i, b := range matches {
		if b.kind != bindingToType {
			continue
		}
		def, ok := c.typeInfo(b.typeID)
		if !ok {
			return nil, InvalidConfigurationError{
				Reason: "no type metadata registered for " + strconv.Quote(b.typeID) +
					" (bound to " + strconv.Quote(b.serviceIdentifier) + ")",
			}
		}
		children := make([]*resolutionContext, 0, len(def.Deps))
		for _, dep := range def.Deps {
			child, err := p.planTarget(c, dep.target(), dep.Multi, false, path)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		node.children[i] = children
	}

	return node, nil
}
