package container

import "strconv"

// Scope governs how a resolved instance is shared across resolutions.
type Scope int

const (
	// ScopeTransient builds a fresh instance on every resolution.
	// This is the default scope unless overridden at construction.
	ScopeTransient Scope = iota

	// ScopeSingleton builds once per container and reuses the cached
	// instance for the lifetime of the binding.
	ScopeSingleton

	// ScopeRequest builds once per top-level Get*/resolution pass and
	// reuses the instance within that pass only.
	ScopeRequest
)

// String returns the scope name as accepted by ParseScope.
func (s Scope) String() string {
	switch s {
	case ScopeTransient:
		return "transient"
	case ScopeSingleton:
		return "singleton"
	case ScopeRequest:
		return "request"
	default:
		return "unknown(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseScope converts a scope name ("transient", "singleton", "request")
// into a Scope. Unknown names fail with an InvalidConfigurationError.
func ParseScope(name string) (Scope, error) {
	switch name {
	case "transient":
		return ScopeTransient, nil
	case "singleton":
		return ScopeSingleton, nil
	case "request":
		return ScopeRequest, nil
	default:
		return ScopeTransient, InvalidConfigurationError{
			Reason: "unknown scope " + strconv.Quote(name),
		}
	}
}
