package container

// lookup is the binding registry: an ordered multimap from service
// identifier to binding records. Insertion order is preserved both per
// key (it drives default-match and GetAll enumeration order) and across
// keys (it drives Traverse, used by snapshot and Merge).
//
// lookup itself does no locking — the owning Container serializes access.
type lookup struct {
	keys    []string
	entries map[string][]*Binding
}

func newLookup() *lookup {
	return &lookup{entries: make(map[string][]*Binding)}
}

// Add appends a binding to the list for id, creating the list if absent.
func (l *lookup) Add(id string, b *Binding) {
	if _, ok := l.entries[id]; !ok {
		l.keys = append(l.keys, id)
	}
	l.entries[id] = append(l.entries[id], b)
}

// Get returns the ordered bindings for id.
func (l *lookup) Get(id string) ([]*Binding, error) {
	bindings, ok := l.entries[id]
	if !ok {
		return nil, NotFoundError{ServiceIdentifier: id}
	}
	return bindings, nil
}

// Remove deletes the entire list for id.
func (l *lookup) Remove(id string) error {
	if _, ok := l.entries[id]; !ok {
		return NotFoundError{ServiceIdentifier: id}
	}
	delete(l.entries, id)
	for i, k := range l.keys {
		if k == id {
			l.keys = append(l.keys[:i], l.keys[i+1:]...)
			break
		}
	}
	return nil
}

// RemoveByCondition removes, across all keys, every binding for which
// pred holds. Keys whose list becomes empty are kept (emptied, not
// deleted). Used for module unload, keyed on the origin tag.
func (l *lookup) RemoveByCondition(pred func(*Binding) bool) {
	for _, id := range l.keys {
		kept := l.entries[id][:0]
		for _, b := range l.entries[id] {
			if !pred(b) {
				kept = append(kept, b)
			}
		}
		l.entries[id] = kept
	}
}

// HasKey reports whether id has an entry (possibly an emptied one).
func (l *lookup) HasKey(id string) bool {
	_, ok := l.entries[id]
	return ok
}

// Traverse visits every key in insertion order.
func (l *lookup) Traverse(visit func(id string, bindings []*Binding)) {
	for _, id := range l.keys {
		visit(id, l.entries[id])
	}
}

// Clone deep-copies the registry: every binding record is itself cloned,
// never aliased, and clones carry no singleton cache — a cloned registry
// starts cold.
func (l *lookup) Clone() *lookup {
	clone := newLookup()
	l.Traverse(func(id string, bindings []*Binding) {
		if len(bindings) == 0 {
			// keep emptied keys so clone round-trips the shape
			clone.keys = append(clone.keys, id)
			clone.entries[id] = nil
			return
		}
		for _, b := range bindings {
			clone.Add(id, b.Clone())
		}
	})
	return clone
}
