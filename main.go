package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/taller-dashboard/app/providers"
	"github.com/km-arc/taller-dashboard/app/routes"
	"github.com/km-arc/taller-dashboard/app/schemas"
	"github.com/km-arc/taller-dashboard/framework/app"
	"github.com/km-arc/taller-dashboard/framework/container"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file to load")
	dumpSchemas := flag.Bool("schemas", false, "print the entity schemas as YAML and exit")
	flag.Parse()

	application := app.New(*envFile)
	for _, p := range []container.ServiceProvider{
		&providers.SchemaServiceProvider{},
		&providers.APIServiceProvider{},
		&routes.ServiceProvider{},
	} {
		if err := application.Register(p); err != nil {
			fatal(err)
		}
	}

	if *dumpSchemas {
		reg, err := container.Resolve[*schemas.Registry](application.Container, providers.SchemasKey)
		if err != nil {
			fatal(err)
		}
		out, err := reg.YAML()
		if err != nil {
			fatal(err)
		}
		os.Stdout.Write(out)
		return
	}

	if err := application.Boot(); err != nil {
		fatal(err)
	}
	logger := application.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Error("server", slog.Any("error", err))
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
