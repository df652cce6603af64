package main

import (
	"context"
	"fmt"

	"github.com/jonathan/skillgap/internal/catalog"
	"github.com/jonathan/skillgap/internal/config"
	"github.com/jonathan/skillgap/internal/db"
	"github.com/jonathan/skillgap/internal/gap"
	"github.com/jonathan/skillgap/internal/logging"
	"go.uber.org/zap"
)

// loadConfig reads --config and applies the --log-level override
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		if _, err := logging.ParseLevel(logLevel); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// newAnalyzer loads the role catalog and market table, falling back to the embedded copies
func newAnalyzer(cfg *config.Config) (*gap.Analyzer, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load role catalog: %w", err)
	}
	market, err := catalog.LoadMarketTable(cfg.MarketDataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load market data: %w", err)
	}
	return gap.NewAnalyzer(cat, market), nil
}

// openDB connects to the configured database and makes sure the schema exists
func openDB(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("no database configured: set SKILLGAP_DATABASE_URL or DATABASE_URL")
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
