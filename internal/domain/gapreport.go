package domain

import "time"

// GapSummary breaks the backlog down for the report header.
type GapSummary struct {
	TotalGaps      int            `json:"total_gaps"`
	HighPriority   int            `json:"high_priority"`
	MediumPriority int            `json:"medium_priority"`
	LowPriority    int            `json:"low_priority"`
	BySource       map[string]int `json:"by_source"`
	ByDocType      map[string]int `json:"by_doc_type"`
}

// GapReport is the full output of one governance run. Collection failures
// are caveats, not breaches: a partial report is still written so operators
// have something to act on.
type GapReport struct {
	GeneratedAt        time.Time  `json:"generated_at"`
	SourcesAnalyzed    []string   `json:"sources_analyzed"`
	CollectionFailures []string   `json:"collection_failures,omitempty"`
	Summary            GapSummary `json:"summary"`
	Gaps               []Gap      `json:"gaps"`
}

// NewGapReport assembles a report around an aggregated backlog.
func NewGapReport(generatedAt time.Time, gaps []Gap, sources, failures []string) GapReport {
	summary := GapSummary{
		TotalGaps: len(gaps),
		BySource:  make(map[string]int),
		ByDocType: make(map[string]int),
	}
	for _, g := range gaps {
		switch g.Priority {
		case PriorityHigh:
			summary.HighPriority++
		case PriorityMedium:
			summary.MediumPriority++
		default:
			summary.LowPriority++
		}
		summary.BySource[string(g.Source)]++
		if g.SuggestedDocType != "" {
			summary.ByDocType[g.SuggestedDocType]++
		}
	}

	return GapReport{
		GeneratedAt:        generatedAt,
		SourcesAnalyzed:    sources,
		CollectionFailures: failures,
		Summary:            summary,
		Gaps:               gaps,
	}
}
