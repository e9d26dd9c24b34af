package container

import "github.com/google/uuid"

// Module batches registrations under one origin id so they can be
// removed together later.
//
//	weapons := container.NewModule(func(b *container.ModuleBinder) error {
//	    b.Bind("Weapon").To("Katana")
//	    b.Bind("Weapon").To("Shuriken").WhenTargetNamed("throwable")
//	    return nil
//	})
//	_ = c.Load(weapons)
//	...
//	c.Unload(weapons)
type Module interface {
	// ID is the origin tag stamped on every binding the module
	// registers. Stable for the lifetime of the module value.
	ID() string

	// Register binds the module's services through the given binder.
	Register(b *ModuleBinder) error
}

// Bootable is an optional Module extension: Boot runs after every module
// of the same Load call has registered, so it may resolve bindings from
// sibling modules.
type Bootable interface {
	Boot(c *Container) error
}

// funcModule is the Module returned by NewModule.
type funcModule struct {
	id       string
	register func(b *ModuleBinder) error
	boot     func(c *Container) error
}

// NewModule creates a module with a generated origin id.
func NewModule(register func(b *ModuleBinder) error) Module {
	return &funcModule{id: uuid.NewString(), register: register}
}

// NewBootableModule creates a module with a Boot phase.
func NewBootableModule(register func(b *ModuleBinder) error, boot func(c *Container) error) Module {
	return &funcModule{id: uuid.NewString(), register: register, boot: boot}
}

func (m *funcModule) ID() string { return m.id }

func (m *funcModule) Register(b *ModuleBinder) error { return m.register(b) }

func (m *funcModule) Boot(c *Container) error {
	if m.boot == nil {
		return nil
	}
	return m.boot(c)
}

// ModuleBinder is the registration surface handed to Module.Register.
// Bindings created through it carry the module's origin id from
// construction on.
type ModuleBinder struct {
	container *Container
	moduleID  string
}

// Bind opens a fluent configuration for a binding tagged with the
// module's origin id.
func (mb *ModuleBinder) Bind(id string) *BindingBuilder {
	return mb.container.bindForModule(id, mb.moduleID)
}

// RegisterType stores construction metadata on the loading container.
// Type metadata is not origin-tagged: definitions survive Unload, only
// bindings are removed.
func (mb *ModuleBinder) RegisterType(typeID string, def TypeDef) {
	mb.container.RegisterType(typeID, def)
}

// Load registers the given modules in order, then runs the Boot phase of
// every Bootable among them. A registration error aborts the load before
// any Boot runs.
func (c *Container) Load(modules ...Module) error {
	for _, m := range modules {
		binder := &ModuleBinder{container: c, moduleID: m.ID()}
		if err := m.Register(binder); err != nil {
			return err
		}
	}
	for _, m := range modules {
		if bootable, ok := m.(Bootable); ok {
			if err := bootable.Boot(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Unload removes every binding whose origin id belongs to one of the
// given modules. Identifiers whose last binding is removed stay known to
// the registry but resolve as unbound.
func (c *Container) Unload(modules ...Module) {
	ids := make(map[string]bool, len(modules))
	for _, m := range modules {
		ids[m.ID()] = true
	}
	c.mu.Lock()
	c.registry.RemoveByCondition(func(b *Binding) bool {
		return b.moduleID != "" && ids[b.moduleID]
	})
	c.mu.Unlock()
}
