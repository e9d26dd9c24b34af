package container

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel categories. Concrete errors below carry context and report
// themselves as one of these via errors.Is.
//
//	if errors.Is(err, container.ErrNotFound) { ... }
var (
	// ErrNotFound is the category for requests that matched no binding
	// anywhere in the container chain, and for Unbind of an absent id.
	ErrNotFound = errors.New("container: not found")

	// ErrAmbiguousMatch is the category for single-result requests that
	// matched more than one binding. Use GetAll for multi-injection.
	ErrAmbiguousMatch = errors.New("container: ambiguous match")

	// ErrCircularDependency is the category for planning paths that
	// re-enter a service identifier already open on the same path.
	ErrCircularDependency = errors.New("container: circular dependency")

	// ErrInvalidConfiguration is the category for malformed container
	// options, missing type metadata, and invalid middleware returns.
	ErrInvalidConfiguration = errors.New("container: invalid configuration")

	// ErrEmptySnapshotStack is returned by Restore when no snapshot has
	// been taken (or all have been consumed).
	ErrEmptySnapshotStack = errors.New("container: restore called with an empty snapshot stack")
)

// NotFoundError reports a service identifier with no matching bindings in
// the container or any of its ancestors.
type NotFoundError struct{ ServiceIdentifier string }

func (e NotFoundError) Error() string {
	return "container: no matching bindings found for " + strconv.Quote(e.ServiceIdentifier)
}

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AmbiguousMatchError reports a single-result request that matched more
// than one binding.
type AmbiguousMatchError struct {
	ServiceIdentifier string
	Count             int
}

func (e AmbiguousMatchError) Error() string {
	return "container: ambiguous match for " + strconv.Quote(e.ServiceIdentifier) +
		" (" + strconv.Itoa(e.Count) + " bindings match; use GetAll for multi-injection)"
}

func (e AmbiguousMatchError) Is(target error) bool { return target == ErrAmbiguousMatch }

// CircularDependencyError reports a dependency cycle found while planning.
// Path holds the identifiers on the offending path, ending with the one
// that closed the cycle.
type CircularDependencyError struct{ Path []string }

func (e CircularDependencyError) Error() string {
	return "container: circular dependency: " + strings.Join(e.Path, " -> ")
}

func (e CircularDependencyError) Is(target error) bool { return target == ErrCircularDependency }

// InvalidConfigurationError reports malformed container configuration:
// unknown scope names, to-type bindings without registered metadata, or a
// middleware link returning nothing.
type InvalidConfigurationError struct{ Reason string }

func (e InvalidConfigurationError) Error() string {
	return "container: invalid configuration: " + e.Reason
}

func (e InvalidConfigurationError) Is(target error) bool { return target == ErrInvalidConfiguration }
