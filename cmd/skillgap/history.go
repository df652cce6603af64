package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skillgap/internal/db"
	"github.com/jonathan/skillgap/internal/observability"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved analyses",
	Long:  "List, show, delete and prune analyses saved in the database. Needs SKILLGAP_DATABASE_URL or DATABASE_URL.",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete saved analyses older than a given age",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

var (
	historyCandidate string
	historyLimit     int
	historyJSON      bool
	historyOlderThan time.Duration
)

func init() {
	historyListCmd.Flags().StringVar(&historyCandidate, "candidate", "", "Only list this candidate's analyses")
	historyListCmd.Flags().IntVar(&historyLimit, "limit", db.DefaultListLimit, fmt.Sprintf("Maximum entries (1-%d)", db.MaxListLimit))
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "Print as JSON")
	historyShowCmd.Flags().BoolVar(&historyJSON, "json", false, "Print as JSON")
	historyPruneCmd.Flags().DurationVar(&historyOlderThan, "older-than", 0, "Minimum age to delete, e.g. 720h (required)")

	if err := historyPruneCmd.MarkFlagRequired("older-than"); err != nil {
		panic(fmt.Sprintf("failed to mark older-than flag as required: %v", err))
	}

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd, historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

// withDB opens the configured database for the duration of fn
func withDB(fn func(ctx context.Context, database *db.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(ctx, database)
}

func parseAnalysisID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid analysis ID %q: %w", arg, err)
	}
	return id, nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	return withDB(func(ctx context.Context, database *db.DB) error {
		summaries, err := database.ListAnalyses(ctx, historyCandidate, historyLimit)
		if err != nil {
			return err
		}
		if historyJSON {
			return writeJSON(cmd, summaries)
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintHistory(summaries)
		return nil
	})
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := parseAnalysisID(args[0])
	if err != nil {
		return err
	}
	return withDB(func(ctx context.Context, database *db.DB) error {
		saved, err := database.GetAnalysis(ctx, id)
		if err != nil {
			return err
		}
		if saved == nil {
			return fmt.Errorf("analysis not found: %s", id)
		}
		if historyJSON {
			return writeJSON(cmd, saved)
		}
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Candidate %s, saved %s\n", saved.CandidateID, saved.CreatedAt.Format(time.RFC3339))
		observability.NewPrinter(out).PrintAnalysis(saved.Result)
		return nil
	})
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	id, err := parseAnalysisID(args[0])
	if err != nil {
		return err
	}
	return withDB(func(ctx context.Context, database *db.DB) error {
		deleted, err := database.DeleteAnalysis(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("analysis not found: %s", id)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted analysis %s\n", id)
		return nil
	})
}

func runHistoryPrune(cmd *cobra.Command, _ []string) error {
	if historyOlderThan <= 0 {
		return fmt.Errorf("--older-than must be positive")
	}
	return withDB(func(ctx context.Context, database *db.DB) error {
		cutoff := time.Now().Add(-historyOlderThan)
		n, err := database.DeleteAnalysesOlderThan(ctx, cutoff)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d analyses saved before %s\n", n, cutoff.Format(time.RFC3339))
		return nil
	})
}
