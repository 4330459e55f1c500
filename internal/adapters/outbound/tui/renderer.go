package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docsgov/docsgov/internal/domain"
)

// ── Warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	fileStyle  = lipgloss.NewStyle().Foreground(dim)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

func banner(subtitle, verdict string, ok bool) string {
	style := passStyle
	if !ok {
		style = failStyle
	}
	verdictStyled := style.Bold(true).Render(verdict)
	return boxStyle.Render(
		headerStyle.Render("docsgov")+"\n"+dimStyle.Render(subtitle)+"\n\n"+verdictStyled) + "\n\n"
}

// RenderContract formats a contract gate result for terminal output.
func RenderContract(v domain.ContractViolation) string {
	var b strings.Builder

	verdict := "PASS"
	if !v.Satisfied {
		verdict = "BLOCKED"
	}
	b.WriteString(banner("Docs Contract Gate", verdict, v.Satisfied))

	fmt.Fprintf(&b, "  %s %d\n", titleStyle.Render("Interface files changed:"), len(v.InterfaceFilesChanged))
	renderPaths(&b, v.InterfaceFilesChanged)
	fmt.Fprintf(&b, "  %s %d\n", titleStyle.Render("Doc files changed:"), len(v.DocFilesChanged))
	renderPaths(&b, v.DocFilesChanged)

	b.WriteString("\n")
	if v.Satisfied {
		b.WriteString("  " + passStyle.Render("Docs contract check passed.") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render("Blocking: public interface changed but docs were not updated.") + "\n")
	}
	return b.String()
}

// RenderDrift formats a drift report for terminal output.
func RenderDrift(r domain.DriftReport) string {
	var b strings.Builder

	b.WriteString(banner("API/SDK Drift Check", strings.ToUpper(string(r.Status)), r.Status == domain.DriftOK))
	b.WriteString("  " + dimStyle.Render(r.Summary) + "\n\n")

	sections := []struct {
		name  string
		paths []string
	}{
		{"OpenAPI changes", r.OpenAPIChanges},
		{"SDK/client changes", r.SDKChanges},
		{"Reference docs changes", r.ReferenceDocChanges},
	}
	for _, s := range sections {
		fmt.Fprintf(&b, "  %s %d\n", titleStyle.Render(s.name+":"), len(s.paths))
		renderPaths(&b, s.paths)
	}
	return b.String()
}

// RenderSLA formats a KPI/SLA verdict for terminal output.
func RenderSLA(v domain.SLAVerdict) string {
	var b strings.Builder

	b.WriteString(banner("KPI SLA Evaluation", strings.ToUpper(string(v.Status)), v.Status == domain.SLAOK))

	score := v.Current.QualityScore
	scoreStyled := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%d", score))
	fmt.Fprintf(&b, "  %s %s %s\n", titleStyle.Render("Quality score"), coloredBar(score, 20), scoreStyled)
	fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf(
		"%d docs, %d stale (%.1f%%), %d high-priority gaps",
		v.Current.TotalDocs, v.Current.StaleDocs, v.Current.StalePct(), v.Current.HighPriorityGaps)))

	b.WriteString("\n  " + separatorLine + "\n\n")

	if len(v.Breaches) == 0 {
		b.WriteString("  " + passStyle.Render(v.Summary) + "\n")
	} else {
		b.WriteString("  " + failStyle.Render(v.Summary) + "\n")
		for _, breach := range v.Breaches {
			b.WriteString("    " + failStyle.Render("✗") + " " + dimStyle.Render(breach) + "\n")
		}
	}
	for _, note := range v.TrendNotes {
		b.WriteString("    " + dimStyle.Render(note) + "\n")
	}
	return b.String()
}

// RenderGapReport formats the gap backlog summary and top gaps for terminal
// output. The full backlog goes to the report files; the terminal shows what
// a reviewer scans in one screen.
func RenderGapReport(r domain.GapReport, topN int) string {
	var b strings.Builder

	verdict := fmt.Sprintf("%d gaps", r.Summary.TotalGaps)
	b.WriteString(banner("Documentation Gap Analysis", verdict, r.Summary.HighPriority == 0))

	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Sources:"), dimStyle.Render(strings.Join(r.SourcesAnalyzed, ", ")))
	for _, caveat := range r.CollectionFailures {
		b.WriteString("    " + warnStyle.Render("!") + " " + dimStyle.Render(caveat) + "\n")
	}

	fmt.Fprintf(&b, "\n  %s %s  %s  %s\n\n",
		titleStyle.Render("Priorities:"),
		failStyle.Render(fmt.Sprintf("%d high", r.Summary.HighPriority)),
		warnStyle.Render(fmt.Sprintf("%d medium", r.Summary.MediumPriority)),
		dimStyle.Render(fmt.Sprintf("%d low", r.Summary.LowPriority)))

	if len(r.Gaps) == 0 {
		b.WriteString("  " + passStyle.Render("No documentation gaps detected.") + "\n")
		return b.String()
	}

	b.WriteString("  " + separatorLine + "\n\n")
	for i, g := range r.Gaps {
		if i >= topN {
			fmt.Fprintf(&b, "  %s\n", faintStyle.Render(fmt.Sprintf("… and %d more in the report files", len(r.Gaps)-topN)))
			break
		}
		fmt.Fprintf(&b, "  %s %s %s\n",
			priorityTag(g.Priority),
			titleStyle.Render(g.Title),
			dimStyle.Render(fmt.Sprintf("%.0f", g.Score)))
		fmt.Fprintf(&b, "        %s\n", fileStyle.Render(fmt.Sprintf("%s · %s · %s", g.ID, g.Source, g.SuggestedDocType)))
	}
	return b.String()
}

func priorityTag(p domain.GapPriority) string {
	switch p {
	case domain.PriorityHigh:
		return failStyle.Bold(true).Render("high ")
	case domain.PriorityMedium:
		return warnStyle.Bold(true).Render("med  ")
	default:
		return dimStyle.Render("low  ")
	}
}

func renderPaths(b *strings.Builder, paths []string) {
	for _, p := range paths {
		fmt.Fprintf(b, "    %s\n", fileStyle.Render(p))
	}
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}
