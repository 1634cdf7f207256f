package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/km-arc/taller-dashboard/framework/config"
	"github.com/km-arc/taller-dashboard/framework/container"
	gohttp "github.com/km-arc/taller-dashboard/framework/http"
	"github.com/km-arc/taller-dashboard/framework/providers"
	"github.com/km-arc/taller-dashboard/framework/routing"
)

const shutdownTimeout = 10 * time.Second

// Application is the top-level application container. It embeds the IoC
// Container and ProviderRegistry so callers can Singleton, Register and Make
// directly, like $app in Laravel's bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application with the core providers: configuration from
// envFiles, a logger on stderr and the router. Nothing is resolved until Boot.
//
//	application := app.New(".env")
//	application.Register(&MyServiceProvider{})
//	if err := application.Boot(); err != nil { ... }
//	application.Router().Get("/", handler)
//	err = application.Run(ctx)
func New(envFiles ...string) *Application {
	return newApplication(
		&providers.ConfigServiceProvider{EnvFiles: envFiles},
		&providers.LogServiceProvider{Writer: os.Stderr},
	)
}

// NewWithConfig creates the application from an already loaded Config,
// writing logs to w.
func NewWithConfig(cfg *config.Config, w io.Writer) *Application {
	return newApplication(
		&providers.ConfigServiceProvider{Config: cfg},
		&providers.LogServiceProvider{Writer: w},
	)
}

func newApplication(cfg, log container.ServiceProvider) *Application {
	c := container.New()
	a := &Application{
		Container: c,
		Providers: container.NewProviderRegistry(c),
	}
	// Register framework core providers (same order as Laravel)
	for _, p := range []container.ServiceProvider{cfg, log, &providers.RoutingServiceProvider{}} {
		_ = a.Providers.Register(p) // not booted yet; Register cannot fail
	}
	return a
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot resolves the core bindings and runs the Boot phase of every provider.
// Configuration errors surface here.
func (a *Application) Boot() error {
	for _, key := range []string{providers.ConfigKey, providers.LoggerKey, providers.RouterKey} {
		if _, err := a.Make(key); err != nil {
			return err
		}
	}
	return a.Providers.Boot()
}

// Config resolves *config.Config from the container. Call after Boot.
func (a *Application) Config() *config.Config {
	return container.MustResolve[*config.Config](a.Container, providers.ConfigKey)
}

// Logger resolves *slog.Logger from the container. Call after Boot.
func (a *Application) Logger() *slog.Logger {
	return container.MustResolve[*slog.Logger](a.Container, providers.LoggerKey)
}

// Router resolves *routing.Router from the container. Call after Boot.
func (a *Application) Router() *routing.Router {
	return container.MustResolve[*routing.Router](a.Container, providers.RouterKey)
}

// Run boots the application if needed and serves HTTP on APP_PORT until ctx is
// canceled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}
	ln, err := net.Listen("tcp", ":"+a.Config().App.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on an existing listener of a booted application. Canceling ctx
// stops accepting connections; requests already in flight run to completion
// with their own contexts, bounded by the shutdown timeout.
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	logger := a.Logger()
	srv := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Controller is an embeddable base for HTTP controllers.
type Controller struct{}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}

func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}
