// Package report renders governance results into machine-readable and
// human-readable artifacts. Rendering is pure: callers write the returned
// content to its destination.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/docsgov/docsgov/internal/domain"
)

func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data) + "\n", nil
}

// ContractJSON renders a contract gate result.
func ContractJSON(v domain.ContractViolation) (string, error) {
	return renderJSON(v)
}

// DriftJSON renders a drift report.
func DriftJSON(r domain.DriftReport) (string, error) {
	return renderJSON(r)
}

// DriftMarkdown renders a drift report for humans. Field coverage matches
// the JSON form.
func DriftMarkdown(r domain.DriftReport) string {
	var b strings.Builder
	b.WriteString("# API/SDK Drift Report\n\n")
	fmt.Fprintf(&b, "Status: **%s**\n\n", strings.ToUpper(string(r.Status)))
	b.WriteString(r.Summary + "\n\n")
	b.WriteString("## OpenAPI changes\n\n")
	b.WriteString(pathList(r.OpenAPIChanges))
	b.WriteString("\n## SDK/client changes\n\n")
	b.WriteString(pathList(r.SDKChanges))
	b.WriteString("\n## Reference docs changes\n\n")
	b.WriteString(pathList(r.ReferenceDocChanges))
	return b.String()
}

// SLAJSON renders a KPI/SLA verdict.
func SLAJSON(v domain.SLAVerdict) (string, error) {
	return renderJSON(v)
}

// SLAMarkdown renders a KPI/SLA verdict with the thresholds it was judged
// against.
func SLAMarkdown(v domain.SLAVerdict, thresholds domain.SLAThresholds) string {
	var b strings.Builder
	b.WriteString("# KPI SLA Evaluation\n\n")
	fmt.Fprintf(&b, "Status: **%s**\n\n", strings.ToUpper(string(v.Status)))
	b.WriteString(v.Summary + "\n\n")

	b.WriteString("## Thresholds\n\n")
	fmt.Fprintf(&b, "- Minimum quality score: %d\n", thresholds.MinQualityScore)
	fmt.Fprintf(&b, "- Maximum stale percent: %.1f%%\n", thresholds.MaxStalePct)
	fmt.Fprintf(&b, "- Maximum high-priority gaps: %d\n", thresholds.MaxHighPriorityGaps)
	fmt.Fprintf(&b, "- Maximum quality score drop: %d\n\n", thresholds.MaxQualityScoreDrop)

	b.WriteString("## Current metrics\n\n")
	fmt.Fprintf(&b, "- Quality score: %d\n", v.Current.QualityScore)
	fmt.Fprintf(&b, "- Stale docs: %d of %d (%.1f%%)\n", v.Current.StaleDocs, v.Current.TotalDocs, v.Current.StalePct())
	fmt.Fprintf(&b, "- High-priority gaps: %d\n\n", v.Current.HighPriorityGaps)

	b.WriteString("## Breaches\n\n")
	b.WriteString(itemList(v.Breaches))
	b.WriteString("\n## Trend notes\n\n")
	b.WriteString(itemList(v.TrendNotes))
	return b.String()
}

// GapJSON renders a full gap report.
func GapJSON(r domain.GapReport) (string, error) {
	return renderJSON(r)
}

// GapMarkdown renders the gap backlog with its summary. Every JSON field is
// represented, the long tail summarized per gap.
func GapMarkdown(r domain.GapReport) string {
	var b strings.Builder
	b.WriteString("# Documentation Gap Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Sources analyzed: %s\n\n", strings.Join(r.SourcesAnalyzed, ", "))

	if len(r.CollectionFailures) > 0 {
		b.WriteString("## Collection caveats\n\n")
		b.WriteString(itemList(r.CollectionFailures))
		b.WriteString("\n")
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Total gaps: %d\n", r.Summary.TotalGaps)
	fmt.Fprintf(&b, "- High priority: %d\n", r.Summary.HighPriority)
	fmt.Fprintf(&b, "- Medium priority: %d\n", r.Summary.MediumPriority)
	fmt.Fprintf(&b, "- Low priority: %d\n", r.Summary.LowPriority)
	for _, source := range sortedKeys(r.Summary.BySource) {
		fmt.Fprintf(&b, "- From %s: %d\n", source, r.Summary.BySource[source])
	}
	b.WriteString("\n## Gaps\n\n")

	if len(r.Gaps) == 0 {
		b.WriteString("- none\n")
		return b.String()
	}

	b.WriteString("| ID | Title | Source | Doc type | Priority | Score | Freq |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, g := range r.Gaps {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %.1f | %d |\n",
			g.ID, g.Title, g.Source, g.SuggestedDocType, g.Priority, g.Score, g.Frequency)
	}

	b.WriteString("\n## Details\n\n")
	for _, g := range r.Gaps {
		fmt.Fprintf(&b, "### %s (%s)\n\n", g.Title, g.ID)
		fmt.Fprintf(&b, "%s\n\n", g.Description)
		fmt.Fprintf(&b, "- Detected: %s\n", g.DetectedAt.Format("2006-01-02"))
		if len(g.Keywords) > 0 {
			fmt.Fprintf(&b, "- Keywords: %s\n", strings.Join(g.Keywords, ", "))
		}
		if len(g.RelatedFiles) > 0 {
			fmt.Fprintf(&b, "- Related files: %s\n", strings.Join(g.RelatedFiles, ", "))
		}
		if len(g.SampleQueries) > 0 {
			fmt.Fprintf(&b, "- Sample queries: %s\n", strings.Join(g.SampleQueries, "; "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func pathList(paths []string) string {
	if len(paths) == 0 {
		return "- none\n"
	}
	var b strings.Builder
	for _, p := range paths {
		fmt.Fprintf(&b, "- `%s`\n", p)
	}
	return b.String()
}

func itemList(items []string) string {
	if len(items) == 0 {
		return "- none\n"
	}
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
