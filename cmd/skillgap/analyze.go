package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/skillgap/internal/observability"
	"github.com/jonathan/skillgap/internal/pipeline"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one candidate against a role",
	Long:  "Reads an AnalysisRequest JSON file, classifies the candidate's skills against the role's requirements and prints the result. The request is validated against the request schema and the result against the result schema.",
	RunE:  runAnalyze,
}

var (
	analyzeInput     string
	analyzeOutput    string
	analyzeRole      string
	analyzeJSON      bool
	analyzeTop       int
	analyzeBreakdown bool
	analyzeSave      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "in", "i", "", "Path to AnalysisRequest JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Also write the AnalysisResult JSON to this file")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Override the request's roleName")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the result as JSON instead of a summary")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 5, "Entries shown per list in the summary (0 shows all)")
	analyzeCmd.Flags().BoolVar(&analyzeBreakdown, "breakdown", false, "Show how the overall score was computed")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save the result under the request's candidateId (needs a database)")

	if err := analyzeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	req, err := pipeline.LoadRequest(analyzeInput)
	if err != nil {
		return err
	}
	if analyzeRole != "" {
		req.RoleName = analyzeRole
	}
	if analyzeSave && req.CandidateID == "" {
		return fmt.Errorf("--save needs a candidateId in the request")
	}

	result, breakdown := analyzer.AnalyzeWithBreakdown(*req)

	if analyzeOutput != "" {
		if err := pipeline.WriteResult(analyzeOutput, result); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		data, err := pipeline.MarshalResult(result)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(data))
	} else {
		printer := observability.NewPrinter(out).WithLimit(analyzeTop)
		printer.PrintAnalysis(result)
		if analyzeBreakdown {
			printer.PrintScoreBreakdown(breakdown)
		}
	}

	if analyzeSave {
		ctx := context.Background()
		database, err := openDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		saved, err := database.SaveAnalysis(ctx, req.CandidateID, result)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stderr, "Saved analysis %s for %s\n", saved.ID, saved.CandidateID)
	}

	return nil
}
