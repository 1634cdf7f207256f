// Package container provides a Laravel-style IoC (Inversion of Control)
// container and Service Provider system.
//
// # Overview
//
// The container owns the application's long-lived services: configuration,
// logger, router, schema registry and backend client. Go has no runtime
// constructor reflection, so auto-wiring is replaced by explicit factory
// functions that return an error instead of panicking.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot(), after which every binding may be resolved
//  4. Serve requests
//
// # Bindings
//
//	// Singleton, created on first Make and reused
//	// Laravel: $app->singleton('logger', fn($app) => ...)
//	c.Singleton("logger", func(c *container.Container) (any, error) {
//	    cfg, err := container.Resolve[*config.Config](c, "config")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return newLogger(cfg), nil
//	})
//
//	// Pre-built value
//	// Laravel: $app->instance('config', $config)
//	c.Instance("config", cfg)
//
// # Resolving
//
//	raw, err := c.Make("router")
//	router, err := container.Resolve[*routing.Router](c, "router")
//	router := container.MustResolve[*routing.Router](c, "router") // after Boot
//
// # Service Providers
//
//	type APIServiceProvider struct{ container.BaseProvider }
//
//	func (p *APIServiceProvider) Register(app *container.Container) {
//	    app.Singleton("api", func(c *container.Container) (any, error) {
//	        cfg, err := container.Resolve[*config.Config](c, "config")
//	        if err != nil {
//	            return nil, err
//	        }
//	        return api.New(cfg.API.BaseURL, cfg.API.Timeout)
//	    })
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&APIServiceProvider{})
//	err := registry.Boot()
package container
