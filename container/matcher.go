package container

// Constraint matching.
//
// A binding matches a target when every tag the target requests is
// declared with an equal value on the binding, and the binding's custom
// When predicate (if any) accepts the target. A binding with no declared
// constraints matches any target of the correct identifier.
//
// The existence probes (IsBoundNamed / IsBoundTagged) deliberately use
// the flat-tag half of this check only: a custom When predicate written
// against richer context than a flat probe target can express would give
// meaningless answers there. The probe may therefore report a false
// positive relative to a real resolution attempt. That asymmetry is
// documented behavior callers rely on, not something to tighten.

// matchesTags is the flat half: every requested tag is declared and equal.
func matchesTags(b *Binding, t Target) bool {
	for key, want := range t.Tags {
		got, ok := b.tags[key]
		if !ok || got != want {
			return false
		}
	}
	return true
}

// matchesTarget is the full constraint check used by planning.
func matchesTarget(b *Binding, t Target) bool {
	if !matchesTags(b, t) {
		return false
	}
	if b.when != nil && !b.when(t) {
		return false
	}
	return true
}
