package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_NoConstraintsMatchAnyTarget(t *testing.T) {
	t.Parallel()

	b := newTestBinding("weapon")
	assert.True(t, matchesTarget(b, newTarget("weapon", TargetValue, nil)))
	assert.True(t, matchesTarget(b, newTarget("weapon", TargetValue, map[string]string{})))
}

func TestMatcher_RequestedTagMustBeDeclaredAndEqual(t *testing.T) {
	t.Parallel()

	b := newTestBinding("weapon")
	b.setTag("range", "melee")

	assert.True(t, matchesTarget(b, newTarget("weapon", TargetValue, map[string]string{"range": "melee"})))
	assert.False(t, matchesTarget(b, newTarget("weapon", TargetValue, map[string]string{"range": "thrown"})))
	assert.False(t, matchesTarget(b, newTarget("weapon", TargetValue, map[string]string{"material": "steel"})))
}

func TestMatcher_NamedIsAnOrdinaryTag(t *testing.T) {
	t.Parallel()

	b := newTestBinding("weapon")
	b.setTag(NamedTag, "sharp")

	target := newTarget("weapon", TargetValue, map[string]string{NamedTag: "sharp"})
	assert.True(t, matchesTarget(b, target))
	assert.Equal(t, "sharp", target.Name())
	assert.True(t, target.IsNamed())
}

func TestMatcher_UntaggedTargetMatchesTaggedBinding(t *testing.T) {
	t.Parallel()

	// A target that requests nothing accepts any declared tags.
	b := newTestBinding("weapon")
	b.setTag(NamedTag, "sharp")
	assert.True(t, matchesTarget(b, newTarget("weapon", TargetValue, nil)))
}

func TestMatcher_WhenPredicateOnlyAppliesToFullMatch(t *testing.T) {
	t.Parallel()

	b := newTestBinding("weapon")
	b.when = func(target Target) bool { return target.HasTag("battle") }

	probe := newTarget("weapon", TargetValue, nil)

	// The flat probe ignores the predicate; full matching honors it.
	// This is the documented IsBound*/Get asymmetry.
	assert.True(t, matchesTags(b, probe))
	assert.False(t, matchesTarget(b, probe))

	full := newTarget("weapon", TargetValue, map[string]string{"battle": "sekigahara"})
	assert.True(t, matchesTarget(b, full))
}

func TestBinding_CloneDropsCacheAndCopiesTags(t *testing.T) {
	t.Parallel()

	b := newTestBinding("weapon")
	b.scope = ScopeSingleton
	b.setTag(NamedTag, "sharp")
	b.storeCache("instance")

	clone := b.Clone()

	_, cached := clone.cachedInstance()
	assert.False(t, cached)
	assert.Equal(t, ScopeSingleton, clone.Scope())
	assert.Equal(t, "weapon", clone.ServiceIdentifier())

	name, ok := clone.Tag(NamedTag)
	assert.True(t, ok)
	assert.Equal(t, "sharp", name)

	// tag maps are copies, not aliases
	clone.setTag("extra", "x")
	_, onOriginal := b.Tag("extra")
	assert.False(t, onOriginal)
}
