package middleware_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/km-arc/go-inversify/container"
	"github.com/km-arc/go-inversify/middleware"
)

func observedContainer(t *testing.T) (*container.Container, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	c := container.New()
	c.ApplyMiddleware(middleware.Logging(zap.New(core)))
	return c, logs
}

func TestLogging_SuccessLogsAtDebug(t *testing.T) {
	t.Parallel()

	c, logs := observedContainer(t)
	c.Bind("weapon").ToConstant("katana").WhenTargetNamed("sharp")

	_, err := c.GetNamed("weapon", "sharp")
	require.NoError(t, err)

	entries := logs.FilterMessage("resolved").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "weapon", fields["service"])
	assert.Equal(t, false, fields["multi"])
	assert.Equal(t, "sharp", fields["named"])
	assert.Contains(t, fields, "took")
}

func TestLogging_FailureLogsAtWarnWithError(t *testing.T) {
	t.Parallel()

	c, logs := observedContainer(t)

	_, err := c.Get("ghost")
	require.Error(t, err)

	entries := logs.FilterMessage("resolution failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap()["error"], "ghost")
}

func TestLogging_PassesResultThrough(t *testing.T) {
	t.Parallel()

	c, _ := observedContainer(t)
	c.Bind("weapon").ToConstant("katana")

	got, err := c.Get("weapon")
	require.NoError(t, err)
	assert.Equal(t, "katana", got)

	all, err := c.GetAll("weapon")
	require.NoError(t, err)
	assert.Equal(t, []any{"katana"}, all)
}
