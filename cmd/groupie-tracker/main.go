package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/yair/groupie-tracker/pkg/config"
	"github.com/yair/groupie-tracker/pkg/grid"
	"github.com/yair/groupie-tracker/pkg/integrations"
	"github.com/yair/groupie-tracker/pkg/interfaces"
	"github.com/yair/groupie-tracker/pkg/logger"
	"github.com/yair/groupie-tracker/pkg/search"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Init("development", "info")
		log.Fatal().Err(err).Str("path", configPath).Msg("Failed to load config")
	}

	logger.Init(cfg.Log.Env, cfg.Log.Level)
	logger.Info("Starting Groupie Tracker...", map[string]interface{}{
		"env":  cfg.Log.Env,
		"port": cfg.Server.Port,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize integrations
	client, err := integrations.NewGroupieClient(integrations.GroupieConfig{
		BaseURL:   cfg.Upstream.BaseURL,
		UserAgent: cfg.Upstream.UserAgent,
		Timeout:   cfg.Upstream.UpstreamTimeout(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create upstream client")
	}

	// Initialize services
	engine := search.NewEngine(client, search.Options{
		MaxConcurrentFetches: cfg.Search.MaxConcurrentFetches,
	})
	catalogService := interfaces.NewCatalogService(engine)
	sliderCfg := interfaces.SliderConfig{
		MaxMembers: cfg.Slider.MaxMembers,
		MinGap:     cfg.Slider.MinGap,
	}

	// Initialize HTTP handlers
	router := interfaces.NewRouter(cfg.Server.StaticDir,
		interfaces.NewProxyHandler(client),
		interfaces.NewPageHandler(grid.NewRenderer(client), catalogService, sliderCfg),
		interfaces.NewSearchHandler(catalogService, sliderCfg),
	)

	// Log available routes
	router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, _ := route.GetMethods()
		logger.Debug("route", map[string]interface{}{"methods": methods, "path": path})
		return nil
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Str("upstream", client.BaseURL()).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}

	log.Info().Msg("Server stopped")
}
