// Package container provides an InversifyJS-style IoC (Inversion of
// Control) container for Go: declared associations between service
// identifiers and construction strategies, from which object graphs are
// built on demand with correct sharing semantics.
//
// # Overview
//
// Every container owns one binding registry. A Get-style call builds a
// resolution plan (which bindings satisfy the request and what each of
// them needs, transitively), then materializes it bottom-up, honoring
// each binding's scope. There is no global state: two containers are
// fully independent unless linked through CreateChild.
//
// # Bindings
//
//	c := container.New()
//
//	// Constant — one pre-built value, always the same
//	// InversifyJS: container.bind<Config>("Config").toConstantValue(cfg)
//	c.Bind("Config").ToConstant(cfg)
//
//	// Dynamic value — invoked per resolution, subject to scope
//	c.Bind("Clock").ToDynamicValue(func(c *container.Container) (any, error) {
//	    return clock.New(), nil
//	}).InSingletonScope()
//
//	// Factory — the injected value is the factory function itself
//	c.Bind("ConnFactory").ToFactory(func(c *container.Container) container.Factory {
//	    return func(c *container.Container) (any, error) { return dial() }
//	})
//
//	// To-type — constructor and dependency list come from type metadata
//	c.RegisterType("Samurai", container.TypeDef{
//	    Deps: []container.Dependency{{ServiceIdentifier: "Weapon"}},
//	    Construct: func(deps ...any) (any, error) {
//	        return &Samurai{Weapon: deps[0].(Weapon)}, nil
//	    },
//	})
//	c.Bind("Warrior").To("Samurai")
//
// # Resolving
//
//	// Untyped
//	w, err := c.Get("Warrior")
//
//	// Generic (preferred — no type assertion required)
//	samurai, err := container.Resolve[*Samurai](c, "Warrior")
//
//	// Multi-inject: every matching binding, in registration order
//	weapons, err := c.GetAll("Weapon")
//
// # Scopes
//
// Transient bindings build a fresh instance per resolution (the default),
// singletons cache the first instance on the binding, and request-scoped
// bindings share one instance within a single top-level Get* pass.
//
// # Named and tagged bindings
//
//	c.Bind("Weapon").To("Katana").WhenTargetNamed("sharp")
//	c.Bind("Weapon").To("Shuriken").WhenTargetTagged("range", "thrown")
//
//	katana, err := c.GetNamed("Weapon", "sharp")
//	thrown, err := c.GetAllTagged("Weapon", "range", "thrown")
//
// # Modules
//
//	weapons := container.NewModule(func(b *container.ModuleBinder) error {
//	    b.Bind("Weapon").To("Katana")
//	    return nil
//	})
//	err := c.Load(weapons)
//	c.Unload(weapons) // removes everything the module bound
//
// # Hierarchy, snapshots, middleware
//
// CreateChild builds a container that falls back to this one when local
// lookup fails. Snapshot/Restore push and pop deep copies of the
// registry, useful around tests. ApplyMiddleware wraps every Get-style
// call with cross-cutting transforms (see the middleware package for
// ready-made ones).
package container
