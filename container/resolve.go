package container

import "fmt"

// Resolve is a generic helper that calls Get and type-asserts the result.
//
//	// Instead of: w, err := c.Get("Weapon"); katana := w.(*Katana)
//	// Write:      katana, err := container.Resolve[*Katana](c, "Weapon")
func Resolve[T any](c *Container, id string) (T, error) {
	var zero T
	v, err := c.Get(id)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("container: Resolve[%T]: [%s] resolved to %T", zero, id, v)
	}
	return typed, nil
}

// ResolveNamed is Resolve constrained by the reserved "named" tag.
func ResolveNamed[T any](c *Container, id, name string) (T, error) {
	var zero T
	v, err := c.GetNamed(id, name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("container: ResolveNamed[%T]: [%s] resolved to %T", zero, id, v)
	}
	return typed, nil
}

// ResolveAll calls GetAll and type-asserts every element.
func ResolveAll[T any](c *Container, id string) ([]T, error) {
	values, err := c.GetAll(id)
	if err != nil {
		return nil, err
	}
	typed := make([]T, 0, len(values))
	for i, v := range values {
		tv, ok := v.(T)
		if !ok {
			var zero T
			return nil, fmt.Errorf("container: ResolveAll[%T]: [%s][%d] resolved to %T", zero, id, i, v)
		}
		typed = append(typed, tv)
	}
	return typed, nil
}

// MustResolve is Resolve for composition roots: it panics on failure.
func MustResolve[T any](c *Container, id string) T {
	v, err := Resolve[T](c, id)
	if err != nil {
		panic(err)
	}
	return v
}
