package main

import (
	"context"
	"fmt"
	"itinerary-service/internal/app"
	"itinerary-service/internal/cli"
	"itinerary-service/internal/config"
	"itinerary-service/internal/platform/obs"
	"os"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// Keep stdout clean for --format json; logs go to stderr at warn level
	// unless LOG_LEVEL says otherwise.
	level := cfg.LogLevel
	if os.Getenv("LOG_LEVEL") == "" {
		level = "warn"
	}
	obs.SetupLogging(level, "console")

	ctx := context.Background()
	a, err := app.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	root := cli.NewRootCmd(&cli.App{
		Catalog:             a.Catalog,
		Generator:           a.Generator,
		DefaultTrafficModel: cfg.TrafficModel,
	})
	return root.ExecuteContext(ctx)
}
