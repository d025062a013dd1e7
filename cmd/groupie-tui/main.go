package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/yair/groupie-tracker/pkg/config"
	"github.com/yair/groupie-tracker/pkg/integrations"
	"github.com/yair/groupie-tracker/pkg/logger"
	"github.com/yair/groupie-tracker/pkg/search"
	"github.com/yair/groupie-tracker/pkg/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := tea.LogToFile("groupie-tui.log", "")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger.InitWithWriter("production", cfg.Log.Level, logFile)

	client, err := integrations.NewGroupieClient(integrations.GroupieConfig{
		BaseURL:   cfg.Upstream.BaseURL,
		UserAgent: cfg.Upstream.UserAgent,
		Timeout:   cfg.Upstream.UpstreamTimeout(),
	})
	if err != nil {
		return err
	}

	engine := search.NewEngine(client, search.Options{
		MaxConcurrentFetches: cfg.Search.MaxConcurrentFetches,
	})

	return tui.Run(engine, cfg.Slider.MaxMembers, cfg.Slider.MinGap)
}
