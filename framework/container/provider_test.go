package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/taller-dashboard/framework/container"
)

// ── stub providers ────────────────────────────────────────────────────────────

type recordingProvider struct {
	container.BaseProvider
	key            string
	registerCalled int
	bootCalled     int
	bootErr        error
}

func (p *recordingProvider) Register(app *container.Container) {
	p.registerCalled++
	app.Instance(p.key, p.key+"-value")
}

func (p *recordingProvider) Boot(app *container.Container) error {
	p.bootCalled++
	return p.bootErr
}

type registerOnly struct{ container.BaseProvider }

func (p *registerOnly) Register(app *container.Container) { app.Instance("plain", 1) }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestRegistry_RegisterThenBoot(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &recordingProvider{key: "svc"}
	require.NoError(t, reg.Register(p))
	assert.Equal(t, 1, p.registerCalled)
	assert.Equal(t, 0, p.bootCalled, "Boot waits for registry.Boot")
	assert.False(t, reg.Booted())

	require.NoError(t, reg.Boot())
	require.NoError(t, reg.Boot())
	assert.Equal(t, 1, p.bootCalled)
	assert.True(t, reg.Booted())
	assert.Equal(t, "svc-value", container.MustResolve[string](c, "svc"))
}

func TestRegistry_DuplicateRegisterIgnored(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())

	p := &recordingProvider{key: "svc"}
	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Register(p))

	assert.Equal(t, 1, p.registerCalled)
	assert.Len(t, reg.Providers(), 1)
}

func TestRegistry_RegisterAfterBootBootsImmediately(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	require.NoError(t, reg.Boot())

	p := &recordingProvider{key: "late"}
	require.NoError(t, reg.Register(p))
	assert.Equal(t, 1, p.bootCalled)
}

func TestRegistry_BootStopsAtFirstError(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())

	failing := &recordingProvider{key: "a", bootErr: errors.New("sin backend")}
	next := &recordingProvider{key: "b"}
	require.NoError(t, reg.Register(failing))
	require.NoError(t, reg.Register(next))

	err := reg.Boot()
	require.Error(t, err)
	assert.ErrorIs(t, err, failing.bootErr)
	assert.Equal(t, 0, next.bootCalled)
}

func TestBaseProvider_BootIsNoop(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	require.NoError(t, reg.Register(&registerOnly{}))
	require.NoError(t, reg.Boot())

	assert.Equal(t, 1, container.MustResolve[int](c, "plain"))
}
