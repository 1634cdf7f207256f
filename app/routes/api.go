// Package routes wires the dashboard's HTTP routes.
package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/km-arc/taller-dashboard/app/api"
	"github.com/km-arc/taller-dashboard/app/http/controllers"
	"github.com/km-arc/taller-dashboard/app/providers"
	"github.com/km-arc/taller-dashboard/app/schemas"
	"github.com/km-arc/taller-dashboard/framework/container"
	gohttp "github.com/km-arc/taller-dashboard/framework/http"
	core "github.com/km-arc/taller-dashboard/framework/providers"
	"github.com/km-arc/taller-dashboard/framework/routing"
)

// Register mounts the health check, the schema endpoints and one resource
// controller per entity under /api/v1 on the container's router. The schema
// registry, backend client and logger are resolved from c.
//
//	GET  /health
//	GET  /api/v1/schemas/{entity}
//	POST /api/v1/validate/{entity}?mode=create|update
//	/api/v1/clients, /api/v1/cars, /api/v1/work-orders (resource routes)
func Register(c *container.Container) error {
	r, err := container.Resolve[*routing.Router](c, core.RouterKey)
	if err != nil {
		return fmt.Errorf("routes: %w", err)
	}
	logger, err := container.Resolve[*slog.Logger](c, core.LoggerKey)
	if err != nil {
		return fmt.Errorf("routes: %w", err)
	}
	reg, err := container.Resolve[*schemas.Registry](c, providers.SchemasKey)
	if err != nil {
		return fmt.Errorf("routes: %w", err)
	}
	client, err := container.Resolve[*api.Client](c, providers.APIKey)
	if err != nil {
		return fmt.Errorf("routes: %w", err)
	}

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		gohttp.NewResponse(w).Success(map[string]any{"status": "ok"})
	})

	resources := make(map[schemas.Entity]*api.Resource, len(reg.Entities()))
	for _, e := range reg.Entities() {
		res, err := client.Resource(reg, e)
		if err != nil {
			return fmt.Errorf("routes: %s: %w", e, err)
		}
		resources[e] = res
	}

	sc := controllers.NewSchemaController(reg, logger)

	r.Prefix("/api/v1", func(v1 *routing.Router) {
		v1.Get("/schemas/{entity}", sc.Show)
		v1.Post("/validate/{entity}", sc.Validate)

		for _, e := range reg.Entities() {
			v1.Resource("/"+string(e), controllers.NewResourceController(resources[e], logger))
		}
	})
	return nil
}

// ServiceProvider mounts the routes when the application boots, like
// Laravel's RouteServiceProvider.
type ServiceProvider struct {
	container.BaseProvider
}

func (p *ServiceProvider) Register(_ *container.Container) {}

func (p *ServiceProvider) Boot(app *container.Container) error {
	return Register(app)
}
