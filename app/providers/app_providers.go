// Package providers registers the dashboard's own services into the
// application container.
package providers

import (
	"log/slog"
	"time"

	"github.com/km-arc/taller-dashboard/app/api"
	"github.com/km-arc/taller-dashboard/app/schemas"
	"github.com/km-arc/taller-dashboard/framework/config"
	"github.com/km-arc/taller-dashboard/framework/container"
	core "github.com/km-arc/taller-dashboard/framework/providers"
)

// Container keys of the dashboard bindings.
const (
	SchemasKey = "schemas"
	APIKey     = "api"
)

// SchemaServiceProvider binds the entity schema registry as "schemas"
// (*schemas.Registry). Clock defaults to time.Now.
type SchemaServiceProvider struct {
	container.BaseProvider
	Clock func() time.Time
}

func (p *SchemaServiceProvider) Register(app *container.Container) {
	clock := p.Clock
	if clock == nil {
		clock = time.Now
	}
	app.Singleton(SchemasKey, func(c *container.Container) (any, error) {
		return schemas.New(clock), nil
	})
}

// APIServiceProvider binds the backend client as "api" (*api.Client),
// configured from the API_* settings. Extra options are applied after the
// configured ones.
type APIServiceProvider struct {
	container.BaseProvider
	Options []api.Option
}

func (p *APIServiceProvider) Register(app *container.Container) {
	extra := p.Options
	app.Singleton(APIKey, func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*config.Config](c, core.ConfigKey)
		if err != nil {
			return nil, err
		}
		logger, err := container.Resolve[*slog.Logger](c, core.LoggerKey)
		if err != nil {
			return nil, err
		}

		opts := append([]api.Option{
			api.WithToken(cfg.API.Token),
			api.WithLogger(logger.With(slog.String("component", "api"))),
		}, extra...)
		return api.New(cfg.API.BaseURL, cfg.API.Timeout, opts...)
	})
}

// Boot builds the client eagerly so a bad API_BASE_URL fails startup.
func (p *APIServiceProvider) Boot(app *container.Container) error {
	_, err := container.Resolve[*api.Client](app, APIKey)
	return err
}
