package container_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/taller-dashboard/framework/container"
)

type service struct{ name string }

func TestSingleton_BuiltOnce(t *testing.T) {
	c := container.New()
	var calls atomic.Int32
	c.Singleton("svc", func(*container.Container) (any, error) {
		calls.Add(1)
		return &service{name: "uno"}, nil
	})

	a, err := container.Resolve[*service](c, "svc")
	require.NoError(t, err)
	b, err := container.Resolve[*service](c, "svc")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSingleton_ConcurrentResolveSharesInstance(t *testing.T) {
	c := container.New()
	c.Singleton("svc", func(*container.Container) (any, error) { return &service{}, nil })

	var wg sync.WaitGroup
	got := make([]*service, 16)
	for i := range got {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = container.MustResolve[*service](c, "svc")
		}()
	}
	wg.Wait()

	for _, s := range got {
		assert.Same(t, got[0], s)
	}
}

func TestSingleton_ErrorIsNotCached(t *testing.T) {
	c := container.New()
	fail := true
	c.Singleton("svc", func(*container.Container) (any, error) {
		if fail {
			return nil, errors.New("sin conexión")
		}
		return &service{}, nil
	})

	_, err := c.Make("svc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[svc]")

	fail = false
	_, err = c.Make("svc")
	assert.NoError(t, err)
}

func TestSingleton_ResolvesDependencies(t *testing.T) {
	c := container.New()
	c.Instance("name", "taller")
	c.Singleton("svc", func(c *container.Container) (any, error) {
		name, err := container.Resolve[string](c, "name")
		if err != nil {
			return nil, err
		}
		return &service{name: name}, nil
	})

	assert.Equal(t, "taller", container.MustResolve[*service](c, "svc").name)
}

func TestSingleton_RebindDropsInstance(t *testing.T) {
	c := container.New()
	c.Singleton("svc", func(*container.Container) (any, error) { return &service{name: "a"}, nil })
	assert.Equal(t, "a", container.MustResolve[*service](c, "svc").name)

	c.Singleton("svc", func(*container.Container) (any, error) { return &service{name: "b"}, nil })
	assert.Equal(t, "b", container.MustResolve[*service](c, "svc").name)
}

func TestMake_NotBound(t *testing.T) {
	c := container.New()
	_, err := c.Make("missing")
	assert.ErrorIs(t, err, container.ErrNotBound)
	assert.False(t, c.Bound("missing"))
	assert.Panics(t, func() { container.MustResolve[*service](c, "missing") })
}

func TestResolve_WrongType(t *testing.T) {
	c := container.New()
	c.Instance("svc", "not a service")

	assert.True(t, c.Bound("svc"))
	_, err := container.Resolve[*service](c, "svc")
	assert.Error(t, err)
}
