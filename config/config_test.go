package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-inversify/config"
	"github.com/km-arc/go-inversify/container"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONTAINER_DEFAULT_SCOPE", "")
	t.Setenv("CONTAINER_DEBUG", "")

	cfg, err := config.Load("testdata/nonexistent.env")
	require.NoError(t, err)
	assert.Equal(t, container.ScopeTransient, cfg.DefaultScope)
	assert.False(t, cfg.Debug)
}

func TestLoad_ScopeFromEnvironment(t *testing.T) {
	t.Setenv("CONTAINER_DEFAULT_SCOPE", "singleton")
	t.Setenv("CONTAINER_DEBUG", "true")

	cfg, err := config.Load("testdata/nonexistent.env")
	require.NoError(t, err)
	assert.Equal(t, container.ScopeSingleton, cfg.DefaultScope)
	assert.True(t, cfg.Debug)
}

func TestLoad_UnknownScopeFails(t *testing.T) {
	t.Setenv("CONTAINER_DEFAULT_SCOPE", "galactic")

	_, err := config.Load("testdata/nonexistent.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrInvalidConfiguration)
}

func TestOptions_AppliesDefaultScope(t *testing.T) {
	t.Setenv("CONTAINER_DEFAULT_SCOPE", "singleton")

	cfg, err := config.Load("testdata/nonexistent.env")
	require.NoError(t, err)

	c := container.New(cfg.Options()...)
	calls := 0
	c.Bind("svc").ToDynamicValue(func(c *container.Container) (any, error) {
		calls++
		return calls, nil
	})

	first, err := c.Get("svc")
	require.NoError(t, err)
	second, err := c.Get("svc")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestGetHelpers(t *testing.T) {
	t.Setenv("SOME_KEY", "")
	assert.Equal(t, "fallback", config.Get("SOME_KEY", "fallback"))
	t.Setenv("SOME_KEY", "set")
	assert.Equal(t, "set", config.Get("SOME_KEY", "fallback"))

	t.Setenv("SOME_FLAG", "not-a-bool")
	assert.True(t, config.GetBool("SOME_FLAG", true))
	t.Setenv("SOME_FLAG", "false")
	assert.False(t, config.GetBool("SOME_FLAG", true))
}
