package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-inversify/container"
)

// tracingMiddleware appends label on the way in and out of the chain.
func tracingMiddleware(label string, events *[]string) container.Middleware {
	return func(next container.Next) container.Next {
		return func(args container.NextArgs) (any, error) {
			*events = append(*events, label+"-in")
			v, err := next(args)
			*events = append(*events, label+"-out")
			return v, err
		}
	}
}

func TestApplyMiddleware_ComposedRightToLeft(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Bind("svc").ToConstant("value")

	var events []string
	c.ApplyMiddleware(
		tracingMiddleware("outer", &events),
		tracingMiddleware("inner", &events),
	)

	got, err := c.Get("svc")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.Equal(t, []string{"outer-in", "inner-in", "inner-out", "outer-out"}, events)
}

func TestApplyMiddleware_SeesRequestBundle(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Bind("weapon").ToConstant("katana").WhenTargetNamed("sharp")

	var seen []container.NextArgs
	c.ApplyMiddleware(func(next container.Next) container.Next {
		return func(args container.NextArgs) (any, error) {
			seen = append(seen, args)
			return next(args)
		}
	})

	_, err := c.GetNamed("weapon", "sharp")
	require.NoError(t, err)
	_, err = c.GetAll("weapon")
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "weapon", seen[0].ServiceIdentifier)
	assert.False(t, seen[0].Multi)
	assert.Equal(t, "sharp", seen[0].Tags[container.NamedTag])
	assert.True(t, seen[1].Multi)
}

func TestApplyMiddleware_CanShortCircuit(t *testing.T) {
	t.Parallel()

	c := container.New() // nothing bound
	c.ApplyMiddleware(func(next container.Next) container.Next {
		return func(args container.NextArgs) (any, error) {
			return "intercepted", nil
		}
	})

	got, err := c.Get("anything")
	require.NoError(t, err)
	assert.Equal(t, "intercepted", got)
}

func TestApplyMiddleware_AbsentReturnFails(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Bind("svc").ToConstant("value")
	c.ApplyMiddleware(func(next container.Next) container.Next {
		return func(args container.NextArgs) (any, error) {
			_, _ = next(args)
			return nil, nil // swallowed the result
		}
	})

	_, err := c.Get("svc")
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrInvalidConfiguration)
}

// AvoidConstraints bypasses tag filtering entirely; middleware can use
// it to probe what exists regardless of constraints.
func TestApplyMiddleware_AvoidConstraintsBypassesFiltering(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Bind("svc").ToConstant("guarded").When(func(container.Target) bool { return false })

	c.ApplyMiddleware(func(next container.Next) container.Next {
		return func(args container.NextArgs) (any, error) {
			args.AvoidConstraints = true
			return next(args)
		}
	})

	got, err := c.Get("svc")
	require.NoError(t, err)
	assert.Equal(t, "guarded", got)
}

func TestRestore_RevertsMiddlewareChain(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Bind("svc").ToConstant("value")

	c.Snapshot()
	c.ApplyMiddleware(func(next container.Next) container.Next {
		return func(args container.NextArgs) (any, error) {
			return "hijacked", nil
		}
	})

	got, err := c.Get("svc")
	require.NoError(t, err)
	require.Equal(t, "hijacked", got)

	require.NoError(t, c.Restore())

	got, err = c.Get("svc")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}
