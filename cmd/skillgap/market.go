package main

import (
	"fmt"

	"github.com/jonathan/skillgap/internal/gap"
	"github.com/jonathan/skillgap/internal/observability"
	"github.com/spf13/cobra"
)

var marketCmd = &cobra.Command{
	Use:   "market [skill]",
	Short: "List skill market demand or show one skill",
	Long: `List the skill market table with demand scores and trends, or show one skill
with its salary impact and learning time estimates.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMarket,
}

var (
	marketCategory string
	marketTrend    string
	marketSort     string
	marketOrder    string
	marketLimit    int
	marketJSON     bool
)

func init() {
	marketCmd.Flags().StringVar(&marketCategory, "category", "", "Only list skills in this category")
	marketCmd.Flags().StringVar(&marketTrend, "trend", "", "Only list skills with this trend (up, stable, down)")
	marketCmd.Flags().StringVar(&marketSort, "sort", gap.SortByDemand, "Sort field (demand, name, category)")
	marketCmd.Flags().StringVar(&marketOrder, "order", gap.OrderDesc, "Sort order (asc, desc)")
	marketCmd.Flags().IntVar(&marketLimit, "limit", 20, "Maximum skills to list (0 for all)")
	marketCmd.Flags().BoolVar(&marketJSON, "json", false, "Print as JSON")
	rootCmd.AddCommand(marketCmd)
}

func runMarket(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())

	if len(args) == 1 {
		skill, ok := analyzer.MarketSkill(args[0])
		if !ok {
			return fmt.Errorf("skill not found: %s", args[0])
		}
		if marketJSON {
			return writeJSON(cmd, skill)
		}
		printer.PrintMarketSkill(skill)
		return nil
	}

	skills, total, err := analyzer.MarketSkills(gap.MarketQuery{
		Category: marketCategory,
		Trend:    marketTrend,
		SortBy:   marketSort,
		Order:    marketOrder,
		Limit:    marketLimit,
	})
	if err != nil {
		return err
	}

	if marketJSON {
		return writeJSON(cmd, skills)
	}
	printer.PrintMarket(skills, total)
	return nil
}
