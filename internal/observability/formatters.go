// Package observability provides formatted text output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/skillgap/internal/db"
	"github.com/jonathan/skillgap/internal/gap"
	"github.com/jonathan/skillgap/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display per bucket
	maxItemsToShow = 5
	// roleNameWidth keeps a roles row inside the box
	roleNameWidth = 26
	// skillNameWidth and categoryWidth keep a market row inside the box
	skillNameWidth = 18
	categoryWidth  = 21
)

// Printer handles formatted text output
type Printer struct {
	out   io.Writer
	limit int
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, limit: maxItemsToShow}
}

// WithLimit sets how many entries each list shows. Zero or less shows everything.
func (p *Printer) WithLimit(n int) *Printer {
	p.limit = n
	return p
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

func (p *Printer) shown(total int) int {
	if p.limit <= 0 || total < p.limit {
		return total
	}
	return p.limit
}

func (p *Printer) writeMore(sb *strings.Builder, total int) {
	if n := total - p.shown(total); n > 0 {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", n))
	}
}

// PrintAnalysis outputs the score summary followed by one box per bucket.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:            %s\n", result.Role))
	sb.WriteString(fmt.Sprintf("Overall score:   %d / 100\n", result.OverallMatchScore))
	sb.WriteString(fmt.Sprintf("Skills matched:  %d of %d required (%d%%)\n", countRequiredMatches(result), result.RequiredCount, result.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Critical gaps:   %d\n", len(result.CriticalGaps)))
	sb.WriteString(fmt.Sprintf("To improve:      %d", len(result.SkillsToImprove)))
	p.printBox("SKILL GAP ANALYSIS", sb.String())

	p.printGaps(result.CriticalGaps)
	p.printImprove(result.SkillsToImprove)
	p.printMatches(result.MatchingSkills)
}

func countRequiredMatches(result *types.AnalysisResult) int {
	n := 0
	for _, m := range result.MatchingSkills {
		if !m.Bonus {
			n++
		}
	}
	return n
}

func (p *Printer) printGaps(gaps []types.ClassifiedSkill) {
	if len(gaps) == 0 {
		return
	}
	var sb strings.Builder
	for i := 0; i < p.shown(len(gaps)); i++ {
		g := gaps[i]
		sb.WriteString(fmt.Sprintf("  • %-22s %-6s demand %3.0f%%\n", g.Name, g.Priority, g.MarketDemand))
		if g.SalaryImpact > 0 {
			sb.WriteString(fmt.Sprintf("    +₹%.1fL potential, ~%dh to learn\n", g.SalaryImpact, g.LearningHours))
		}
	}
	p.writeMore(&sb, len(gaps))
	p.printBox(fmt.Sprintf("CRITICAL GAPS (%d)", len(gaps)), strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printImprove(improve []types.ClassifiedSkill) {
	if len(improve) == 0 {
		return
	}
	var sb strings.Builder
	for i := 0; i < p.shown(len(improve)); i++ {
		s := improve[i]
		sb.WriteString(fmt.Sprintf("  • %-22s %-6s gap %3d%%\n", s.Name, s.Priority, s.Gap))
		sb.WriteString(fmt.Sprintf("    %s → %s\n", s.YourLevel, s.RequiredLevel))
	}
	p.writeMore(&sb, len(improve))
	p.printBox(fmt.Sprintf("SKILLS TO IMPROVE (%d)", len(improve)), strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printMatches(matches []types.ClassifiedSkill) {
	if len(matches) == 0 {
		return
	}
	var sb strings.Builder
	for i := 0; i < p.shown(len(matches)); i++ {
		m := matches[i]
		line := fmt.Sprintf("  • %-22s %3d%%", m.Name, m.MatchPercentage)
		if m.Bonus {
			line += "  (bonus)"
		}
		sb.WriteString(line + "\n")
	}
	p.writeMore(&sb, len(matches))
	p.printBox(fmt.Sprintf("MATCHING SKILLS (%d)", len(matches)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreBreakdown outputs every term that went into the overall score.
func (p *Printer) PrintScoreBreakdown(b gap.ScoreBreakdown) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match percentage:   %d%%\n", b.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Base score:         %d\n", b.BaseScore))
	sb.WriteString(fmt.Sprintf("Experience factor:  %+d\n", b.ExperienceFactor))
	sb.WriteString(fmt.Sprintf("Salary factor:      %+d\n", b.SalaryFactor))
	sb.WriteString(fmt.Sprintf("Overall (30-95):    %d", b.Overall))
	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintRoles outputs each role with its requirement counts.
func (p *Printer) PrintRoles(roles []types.RoleRequirement, defaultRole string) {
	if len(roles) == 0 {
		return
	}
	var sb strings.Builder
	for _, r := range roles {
		marker := " "
		if r.RoleName == defaultRole {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %-*s %2d critical, %2d important\n", marker, roleNameWidth, truncate(r.RoleName, roleNameWidth), len(r.CriticalSkills), len(r.ImportantSkills)))
	}
	sb.WriteString("\n* default role")
	p.printBox(fmt.Sprintf("ROLES (%d)", len(roles)), sb.String())
}

// trendArrows maps market trends to a short marker
var trendArrows = map[string]string{
	"up":     "↑",
	"stable": "→",
	"down":   "↓",
}

// PrintMarket outputs market skills with demand and trend, one row each.
// total is the match count before any limit; extra matches are summarized.
func (p *Printer) PrintMarket(skills []gap.MarketSkill, total int) {
	if len(skills) == 0 {
		p.printBox("SKILL MARKET", "No skills match")
		return
	}
	var sb strings.Builder
	for _, s := range skills {
		sb.WriteString(fmt.Sprintf("%-*s %-*s %3.0f %s %+4.0f%%\n",
			skillNameWidth, truncate(s.Name, skillNameWidth),
			categoryWidth, truncate(s.Category, categoryWidth),
			s.DemandScore, trendArrows[s.Trend], s.TrendPercentage))
	}
	if extra := total - len(skills); extra > 0 {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", extra))
	}
	p.printBox(fmt.Sprintf("SKILL MARKET (%d of %d)", len(skills), total), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMarketSkill outputs one skill's market data and learning estimates.
func (p *Printer) PrintMarketSkill(s gap.MarketSkill) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Category:        %s\n", s.Category))
	sb.WriteString(fmt.Sprintf("Demand:          %.0f/100\n", s.DemandScore))
	sb.WriteString(fmt.Sprintf("Trend:           %s %s (%+.0f%%)\n", trendArrows[s.Trend], s.Trend, s.TrendPercentage))
	sb.WriteString(fmt.Sprintf("Salary impact:   +%.1f lakhs\n", s.SalaryImpact))
	sb.WriteString(fmt.Sprintf("Learning time:   ~%d hours", s.LearningHours))
	p.printBox(strings.ToUpper(s.Name), sb.String())
}

// PrintHistory outputs saved analysis summaries, newest first.
func (p *Printer) PrintHistory(summaries []db.SavedAnalysisSummary) {
	if len(summaries) == 0 {
		p.printBox("SAVED ANALYSES", "No saved analyses")
		return
	}
	var sb strings.Builder
	for i, s := range summaries {
		sb.WriteString(fmt.Sprintf("%s  %-24s %2d\n", s.CreatedAt.Format("2006-01-02 15:04"), s.TargetRole, s.MatchScore))
		sb.WriteString(fmt.Sprintf("    %s\n", s.ID))
		if i < len(summaries)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("SAVED ANALYSES (%d)", len(summaries)), strings.TrimSuffix(sb.String(), "\n"))
}
