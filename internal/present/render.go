package present

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"cerberus/internal/models"
	"cerberus/internal/verdict"
)

// levelColor returns the color used for a risk level heading.
func levelColor(level string) *color.Color {
	switch level {
	case verdict.LevelHigh:
		return color.New(color.FgRed, color.Bold)
	case verdict.LevelMedium:
		return color.New(color.FgYellow, color.Bold)
	case verdict.LevelLow:
		return color.New(color.FgGreen, color.Bold)
	default:
		return color.New(color.FgWhite, color.Bold)
	}
}

// scoreColor applies the same thresholds as issue detection: red above
// 0.7, yellow above 0.3, green otherwise.
func scoreColor(score float64) *color.Color {
	switch {
	case score > 0.7:
		return color.New(color.FgRed)
	case score > verdict.IssueThreshold:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// Render writes the full presentation to w: banner, verdict summary,
// category scores, insights, then history.
func (p *Presentation) Render(w io.Writer, scores models.CategoryScores) {
	heading := levelColor(p.Verdict.Level)
	heading.Fprintf(w, "%s\n", p.Banner.Title)
	fmt.Fprintf(w, "%s\n", p.Banner.Message)
	fmt.Fprintf(w, "Suggested action: %s\n\n", p.Banner.SuggestedAction)

	fmt.Fprintf(w, "Risk level: %s (score %.2f)\n", p.Verdict.Level, p.Verdict.Score)
	fmt.Fprintf(w, "Issues detected: %d\n", p.Verdict.IssueCount)
	fmt.Fprintf(w, "Recommendation: %s\n", p.Verdict.Recommendation)
	if len(p.Actions) > 0 {
		fmt.Fprintf(w, "Actions: %s\n", strings.Join(p.Actions, ", "))
	}
	fmt.Fprintln(w)

	renderScores(w, scores)
	p.renderInsights(w)
	p.renderHistory(w)

	if p.Summary != "" {
		fmt.Fprintf(w, "Summary: %s\n", p.Summary)
	}
	if p.AuditID != "" {
		fmt.Fprintf(w, "Audit ID: %s\n", p.AuditID)
	}
}

func renderScores(w io.Writer, scores models.CategoryScores) {
	if len(scores) == 0 {
		return
	}
	cats := make([]string, 0, len(scores))
	for cat := range scores {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Score"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, cat := range cats {
		table.Append([]string{cat, fmt.Sprintf("%.2f", scores[cat])})
	}
	table.Render()
	fmt.Fprintln(w)
}

func (p *Presentation) renderInsights(w io.Writer) {
	fmt.Fprintln(w, "Content Insights")
	if p.Insights.Placeholder != "" {
		fmt.Fprintf(w, "  %s\n\n", p.Insights.Placeholder)
		return
	}
	for _, group := range p.Insights.Groups {
		fmt.Fprintf(w, "  %s: %s\n", group.Label, strings.Join(group.Entities, ", "))
	}
	fmt.Fprintln(w)
}

func (p *Presentation) renderHistory(w io.Writer) {
	fmt.Fprintln(w, "Historical Context")
	if p.History.Placeholder != "" {
		fmt.Fprintf(w, "  %s\n\n", p.History.Placeholder)
		return
	}
	fmt.Fprintf(w, "  %s\n", p.History.Headline)
	for _, entry := range p.History.Entries {
		pct := scoreColor(entry.RiskScore).Sprintf("%.0f%%", entry.RiskScore*100)
		fmt.Fprintf(w, "  - %s (risk %s, action: %s)\n", entry.Excerpt, pct, entry.Action)
	}
	fmt.Fprintln(w)
}
