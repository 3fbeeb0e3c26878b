package main

import (
	"context"
	"itinerary-service/internal/api"
	"itinerary-service/internal/app"
	"itinerary-service/internal/config"
	"itinerary-service/internal/platform/obs"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// main loads configuration, builds the application and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	obs.SetupLogging(cfg.LogLevel, cfg.LogFormat)

	a, err := app.Build(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build app")
	}
	defer a.Close()

	router := api.NewRouter(a.Generator, a.Catalog, a.Counters, cfg.TrafficModel)

	// Timeouts are tuned for cold-cache generation (external API latency).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Info().Str("addr", srv.Addr).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
