package container

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotBound is returned when an abstract has no binding.
var ErrNotBound = errors.New("container: no binding")

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory builds a concrete value from the container.
type Factory func(c *Container) (any, error)

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container (mirrors Laravel's Illuminate\Container\Container).
// Every binding is a singleton: the factory runs on first Make and the result
// is cached. A failed factory caches nothing, so the next Make retries.
// Concurrent first resolutions may each run the factory; the first result
// stored is the one every caller gets.
type Container struct {
	mu sync.RWMutex

	// abstract → factory
	bindings map[string]Factory

	// abstract → resolved instance
	instances map[string]any
}

// New creates an empty container.
func New() *Container {
	return &Container{
		bindings:  make(map[string]Factory),
		instances: make(map[string]any),
	}
}

// ── Registration ──────────────────────────────────────────────────────────────

// Singleton registers a factory whose result is cached after first resolution.
// Re-binding drops any cached instance.
//
//	// Laravel: $app->singleton('router', fn($app) => new Router(...))
//	c.Singleton("router", func(c *container.Container) (any, error) {
//	    logger, err := container.Resolve[*slog.Logger](c, "logger")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return routing.New(logger), nil
//	})
func (c *Container) Singleton(abstract string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, abstract)
	c.bindings[abstract] = factory
}

// Instance registers a pre-built value.
//
//	// Laravel: $app->instance('config', $config)
//	c.Instance("config", cfg)
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bindings, abstract)
	c.instances[abstract] = instance
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract from the container.
//
//	// Laravel: $app->make('router')
//	raw, err := c.Make("router")
func (c *Container) Make(abstract string) (any, error) {
	if inst, ok := c.cached(abstract); ok {
		return inst, nil
	}

	c.mu.RLock()
	factory, ok := c.bindings[abstract]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w for [%s]", ErrNotBound, abstract)
	}

	inst, err := factory(c)
	if err != nil {
		return nil, fmt.Errorf("container: resolve [%s]: %w", abstract, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.instances[abstract]; ok {
		return existing, nil
	}
	c.instances[abstract] = inst
	return inst, nil
}

func (c *Container) cached(abstract string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	inst, ok := c.instances[abstract]
	return inst, ok
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound returns true if an abstract has been registered.
//
//	// Laravel: $app->bound('config')
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, hasBinding := c.bindings[abstract]
	_, hasInstance := c.instances[abstract]
	return hasBinding || hasInstance
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve calls Make and type-asserts the result.
//
//	// Instead of: raw, err := c.Make("router"); r := raw.(*routing.Router)
//	// Write:      r, err := container.Resolve[*routing.Router](c, "router")
func Resolve[T any](c *Container, abstract string) (T, error) {
	var zero T
	instance, err := c.Make(abstract)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("container: Resolve[%T]: [%s] resolved to %T", zero, abstract, instance)
	}
	return typed, nil
}

// MustResolve is Resolve that panics on error. Use it once the application
// has booted and every core binding is known to resolve.
func MustResolve[T any](c *Container, abstract string) T {
	typed, err := Resolve[T](c, abstract)
	if err != nil {
		panic(err)
	}
	return typed
}
