package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/skillgap/internal/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze every request file in a directory",
	Long:  "Analyzes each *.json AnalysisRequest in --in-dir concurrently and writes <name>.result.json files to --out-dir. A file that fails does not stop the others; the command fails if any file did.",
	RunE:  runBatch,
}

var (
	batchInputDir    string
	batchOutputDir   string
	batchRole        string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVar(&batchInputDir, "in-dir", "", "Directory of AnalysisRequest JSON files (required)")
	batchCmd.Flags().StringVar(&batchOutputDir, "out-dir", "", "Directory for result files (required)")
	batchCmd.Flags().StringVar(&batchRole, "role", "", "Override every request's roleName")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", pipeline.DefaultConcurrency, "Maximum files analyzed at once")

	if err := batchCmd.MarkFlagRequired("in-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark in-dir flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("out-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark out-dir flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
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

	inputs, err := pipeline.ListRequestFiles(batchInputDir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no .json request files found in %s", batchInputDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting batch", zap.Int("files", len(inputs)), zap.Int("concurrency", batchConcurrency))

	summary, err := pipeline.RunBatch(ctx, analyzer, pipeline.BatchOptions{
		InputPaths:   inputs,
		OutputDir:    batchOutputDir,
		RoleOverride: batchRole,
		Concurrency:  batchConcurrency,
		OnProgress: func(event pipeline.ProgressEvent) {
			if event.Status == pipeline.StatusFailed {
				logger.Warn("analysis failed", zap.String("file", event.File), zap.String("error", event.Message))
				return
			}
			logger.Debug("analysis done", zap.String("file", event.File), zap.String("role", event.Role), zap.Int("score", event.Score))
		},
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Analyzed %d files: %d succeeded, %d failed. Results in %s\n",
		len(summary.Results), summary.Succeeded, summary.Failed, batchOutputDir)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d requests failed", summary.Failed, len(summary.Results))
	}
	return nil
}
