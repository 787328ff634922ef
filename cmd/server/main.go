// Package main implements the entry point for the Menu Intelligence API
// server, which generates menu item descriptions and upsell suggestions
// through an LLM provider with graceful degraded fallbacks.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/menuwise/menu-intelligence-api/internal/config"
	"github.com/menuwise/menu-intelligence-api/internal/generation"
	"github.com/menuwise/menu-intelligence-api/internal/platform/logger"
	"github.com/menuwise/menu-intelligence-api/internal/platform/openai"
	"github.com/menuwise/menu-intelligence-api/internal/service/menu"
)

// application bundles the initialized dependencies for the server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	menuService *menu.Service

	// llmConfigured is surfaced through the health endpoint.
	llmConfigured bool
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_configured", cfg.LLM.APIKey != "")

	// An absent credential is a supported state: the orchestrator answers
	// every request with the deterministic mock result.
	var generator generation.Generator
	if cfg.LLM.APIKey != "" {
		client, err := openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Timeout:     time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
		}, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create provider client: %w", err)
		}
		generator = client
	} else {
		slog.Warn("no provider API key configured, serving mock responses")
	}

	return &application{
		config:        cfg,
		logger:        appLogger,
		menuService:   menu.NewService(generator, appLogger),
		llmConfigured: cfg.LLM.APIKey != "",
	}, nil
}
