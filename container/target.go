package container

// TargetType distinguishes a request for one value from a request for
// every matching binding.
type TargetType int

const (
	// TargetValue requests exactly one matching binding.
	TargetValue TargetType = iota

	// TargetCollection requests all matching bindings as an ordered list.
	TargetCollection
)

// NamedTag is the reserved tag key used by the *Named registration and
// query surfaces.
//
//	// InversifyJS: container.bind<Weapon>("Weapon").to(Katana).whenTargetNamed("strong")
//	c.Bind("Weapon").To("Katana").WhenTargetNamed("strong")
const NamedTag = "named"

// Target describes one requested dependency: which service identifier is
// wanted, whether one value or a collection, and the tags the request
// carries. Targets are built per resolution and never persisted.
type Target struct {
	ServiceIdentifier string
	Type              TargetType
	Tags              map[string]string
}

// newTarget builds a Target, copying tags so callers can reuse their map.
func newTarget(id string, tt TargetType, tags map[string]string) Target {
	t := Target{ServiceIdentifier: id, Type: tt}
	if len(tags) > 0 {
		t.Tags = make(map[string]string, len(tags))
		for k, v := range tags {
			t.Tags[k] = v
		}
	}
	return t
}

// Name returns the value of the reserved "named" tag, or "" if the
// target is unnamed.
func (t Target) Name() string { return t.Tags[NamedTag] }

// IsNamed reports whether the target carries the reserved "named" tag.
func (t Target) IsNamed() bool {
	_, ok := t.Tags[NamedTag]
	return ok
}

// HasTag reports whether the target carries the given tag key.
func (t Target) HasTag(key string) bool {
	_, ok := t.Tags[key]
	return ok
}
