package main

import (
	"context"
	"fmt"

	"github.com/jonathan/skillgap/internal/cache"
	"github.com/jonathan/skillgap/internal/server"
	"github.com/jonathan/skillgap/internal/server/ratelimit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort int
	serveHost string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the role catalog, gap analysis and saved history over REST. The database and Redis cache are optional.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = serveHost
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	srvCfg := server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.ShutdownTimeout,
		Analyzer:        analyzer,
		Logger:          logger,
		RateLimit:       ratelimit.LoadConfig(),
	}

	ctx := context.Background()

	if cfg.DatabaseURL != "" {
		database, err := openDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()
		srvCfg.Store = database
		logger.Info("persistence enabled")
	} else {
		logger.Warn("no database configured; saving and history endpoints are disabled")
	}

	if cfg.RedisURL != "" {
		analysisCache, err := cache.Connect(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			// The cache is an optimization; serve without it
			logger.Warn("analysis cache unavailable", zap.Error(err))
		} else {
			defer func() { _ = analysisCache.Close() }()
			srvCfg.Cache = analysisCache
			logger.Info("analysis cache enabled", zap.Duration("ttl", cfg.CacheTTL))
		}
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
