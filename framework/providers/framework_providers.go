// Package providers holds the framework's core service providers.
package providers

import (
	"io"
	"log/slog"
	"os"

	"github.com/km-arc/taller-dashboard/framework/config"
	"github.com/km-arc/taller-dashboard/framework/container"
	"github.com/km-arc/taller-dashboard/framework/routing"
)

// Container keys of the core bindings.
const (
	ConfigKey = "config"
	LoggerKey = "logger"
	RouterKey = "router"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it as "config" (*config.Config). A preloaded Config is bound as-is.
//
// Laravel equivalent:
//
//	// Illuminate\Foundation\Bootstrap\LoadConfiguration
//	$app->singleton('config', fn() => new Repository($items));
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
	Config   *config.Config
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	if p.Config != nil {
		app.Instance(ConfigKey, p.Config)
		return
	}
	envFiles := p.EnvFiles
	app.Singleton(ConfigKey, func(c *container.Container) (any, error) {
		return config.Load(envFiles...)
	})
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider binds the structured logger as "logger" (*slog.Logger),
// writing to Writer (stderr when nil).
//
// Laravel equivalent:
//
//	// Illuminate\Log\LogServiceProvider
//	$app->singleton('log', fn($app) => new LogManager($app));
type LogServiceProvider struct {
	container.BaseProvider
	Writer io.Writer
}

func (p *LogServiceProvider) Register(app *container.Container) {
	w := p.Writer
	if w == nil {
		w = os.Stderr
	}
	app.Singleton(LoggerKey, func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*config.Config](c, ConfigKey)
		if err != nil {
			return nil, err
		}
		return NewLogger(cfg, w), nil
	})
}

// NewLogger builds the structured logger: JSON in production, text elsewhere,
// debug level when APP_DEBUG is on.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.App.Debug {
		opts.Level = slog.LevelDebug
	}

	var h slog.Handler
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With(slog.String("app", cfg.App.Name), slog.String("env", cfg.App.Env))
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider binds the HTTP router as "router" (*routing.Router),
// request-logging through "logger".
//
// Laravel equivalent:
//
//	// Illuminate\Routing\RoutingServiceProvider
//	$app->singleton('router', fn($app) => new Router($app['events'], $app));
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton(RouterKey, func(c *container.Container) (any, error) {
		logger, err := container.Resolve[*slog.Logger](c, LoggerKey)
		if err != nil {
			return nil, err
		}
		return routing.New(logger), nil
	})
}
