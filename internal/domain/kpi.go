package domain

import (
	"fmt"
	"math"
	"time"
)

// DocInventory is the raw docs-tree census a KPI snapshot is built from.
type DocInventory struct {
	TotalDocs           int
	DocsWithFrontmatter int
	StaleDocs           int
}

// KPISnapshot is a point-in-time scorecard of documentation health.
type KPISnapshot struct {
	QualityScore        int       `json:"quality_score"`
	TotalDocs           int       `json:"total_docs"`
	DocsWithFrontmatter int       `json:"docs_with_frontmatter"`
	StaleDocs           int       `json:"stale_docs"`
	OpenGaps            int       `json:"open_gaps"`
	HighPriorityGaps    int       `json:"high_priority_gaps"`
	GeneratedAt         time.Time `json:"generated_at"`
	Notes               string    `json:"notes,omitempty"`
}

// StalePct returns the share of stale documents as a percentage.
func (s KPISnapshot) StalePct() float64 {
	if s.TotalDocs == 0 {
		return 0
	}
	return float64(s.StaleDocs) / float64(s.TotalDocs) * 100
}

// MetadataPct returns the share of documents carrying frontmatter.
func (s KPISnapshot) MetadataPct() float64 {
	if s.TotalDocs == 0 {
		return 0
	}
	return float64(s.DocsWithFrontmatter) / float64(s.TotalDocs) * 100
}

// QualityScore computes the 0-100 docs quality score: full marks minus
// penalties for missing metadata, staleness, and open high-priority gaps.
func QualityScore(metadataPct, stalePct float64, highPriorityGaps int) int {
	score := 100
	score -= int(math.Round((100 - metadataPct) * 0.35))
	score -= int(math.Round(stalePct * 0.30))
	gapPenalty := highPriorityGaps * 3
	if gapPenalty > 25 {
		gapPenalty = 25
	}
	score -= gapPenalty

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// SLAStatus is the KPI/SLA evaluation verdict.
type SLAStatus string

const (
	SLAOK     SLAStatus = "ok"
	SLABreach SLAStatus = "breach"
)

// SLAVerdict is the deterministic outcome of comparing a snapshot against
// policy thresholds and, optionally, a prior snapshot.
type SLAVerdict struct {
	Status     SLAStatus   `json:"status"`
	Summary    string      `json:"summary"`
	Breaches   []string    `json:"breaches"`
	TrendNotes []string    `json:"trend_notes,omitempty"`
	Current    KPISnapshot `json:"current"`
}

// EvaluateSLA runs every threshold check independently and reports all
// firing reasons at once; one run surfaces the complete list of problems.
// Total and side-effect-free: it never fails, whatever the inputs.
func EvaluateSLA(current KPISnapshot, previous *KPISnapshot, thresholds SLAThresholds) SLAVerdict {
	var breaches, trendNotes []string

	if current.QualityScore < thresholds.MinQualityScore {
		breaches = append(breaches, fmt.Sprintf(
			"Quality score breach: %d < %d.", current.QualityScore, thresholds.MinQualityScore))
	}

	if stalePct := current.StalePct(); stalePct > thresholds.MaxStalePct {
		breaches = append(breaches, fmt.Sprintf(
			"Stale docs breach: %.1f%% > %.1f%%.", stalePct, thresholds.MaxStalePct))
	}

	if current.HighPriorityGaps > thresholds.MaxHighPriorityGaps {
		breaches = append(breaches, fmt.Sprintf(
			"High-priority gap breach: %d > %d.", current.HighPriorityGaps, thresholds.MaxHighPriorityGaps))
	}

	if previous != nil {
		drop := previous.QualityScore - current.QualityScore
		if drop > thresholds.MaxQualityScoreDrop {
			breaches = append(breaches, fmt.Sprintf(
				"Quality trend breach: dropped by %d points (max allowed %d).", drop, thresholds.MaxQualityScoreDrop))
		}
		trendNotes = append(trendNotes, fmt.Sprintf(
			"Quality score trend: previous %d, current %d.", previous.QualityScore, current.QualityScore))
	}

	verdict := SLAVerdict{
		Status:     SLAOK,
		Summary:    "KPI SLA check passed.",
		Breaches:   breaches,
		TrendNotes: trendNotes,
		Current:    current,
	}
	if len(breaches) > 0 {
		verdict.Status = SLABreach
		verdict.Summary = "SLA thresholds breached."
	}
	return verdict
}
