package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
)

// GapSource identifies which signal collector produced a gap.
type GapSource string

const (
	SourceCodeChange      GapSource = "code_change"
	SourceSearchAnalytics GapSource = "search_analytics"
	SourceCommunity       GapSource = "community"
	SourceStaleness       GapSource = "staleness"
)

// BaseWeight ranks sources by confidence. Code-derived gaps are structurally
// certain; staleness is lowest since "old" does not always mean "wrong".
func (s GapSource) BaseWeight() float64 {
	switch s {
	case SourceCodeChange:
		return 100
	case SourceSearchAnalytics:
		return 85
	case SourceCommunity:
		return 70
	case SourceStaleness:
		return 40
	default:
		return 10
	}
}

// idPrefix keeps gap IDs greppable by source.
func (s GapSource) idPrefix() string {
	switch s {
	case SourceCodeChange:
		return "CODE"
	case SourceSearchAnalytics:
		return "SRCH"
	case SourceCommunity:
		return "COMM"
	case SourceStaleness:
		return "STAL"
	default:
		return "GAP"
	}
}

// GapPriority is the three-bucket quantization of a gap score.
type GapPriority string

const (
	PriorityHigh   GapPriority = "high"
	PriorityMedium GapPriority = "medium"
	PriorityLow    GapPriority = "low"
)

// Priority banding cutoffs are fixed reporting constants, deliberately not
// policy-pack-configurable. All score inputs feed linearly so a reviewer can
// recompute any score by hand.
const (
	priorityHighCutoff   = 100.0
	priorityMediumCutoff = 60.0

	ageBonusPerMonth  = 1.0
	ageBonusCap       = 12.0
	volumeBonusPerHit = 3.0
	volumeBonusCap    = 30.0
)

// PriorityFor quantizes a score into a priority bucket.
func PriorityFor(score float64) GapPriority {
	switch {
	case score >= priorityHighCutoff:
		return PriorityHigh
	case score >= priorityMediumCutoff:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Gap is one discrete, scored unit of documentation debt.
type Gap struct {
	ID               string      `json:"id"`
	Source           GapSource   `json:"source"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	SuggestedDocType string      `json:"suggested_doc_type"`
	Priority         GapPriority `json:"priority"`
	Score            float64     `json:"score"`
	Frequency        int         `json:"frequency"`
	Keywords         []string    `json:"keywords,omitempty"`
	RelatedFiles     []string    `json:"related_files,omitempty"`
	SampleQueries    []string    `json:"sample_queries,omitempty"`
	DetectedAt       time.Time   `json:"detected_at"`
}

// GapID derives a stable identifier from a source and a collector-chosen key.
func GapID(source GapSource, key string) string {
	sum := sha1.Sum([]byte(string(source) + ":" + key))
	return fmt.Sprintf("%s-%s", source.idPrefix(), hex.EncodeToString(sum[:])[:10])
}

// NormalizeTitle produces the dedup key for a gap title: lowercase, with
// punctuation stripped and whitespace collapsed.
func NormalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func ageBonus(detectedAt, now time.Time) float64 {
	if !detectedAt.Before(now) {
		return 0
	}
	months := now.Sub(detectedAt).Hours() / 24 / 30
	bonus := months * ageBonusPerMonth
	if bonus > ageBonusCap {
		return ageBonusCap
	}
	return bonus
}

func volumeBonus(frequency int) float64 {
	if frequency <= 1 {
		return 0
	}
	bonus := float64(frequency-1) * volumeBonusPerHit
	if bonus > volumeBonusCap {
		return volumeBonusCap
	}
	return bonus
}

// mergedGap accumulates gaps sharing one dedup key.
type mergedGap struct {
	gap     Gap
	sources map[GapSource]struct{}
	volume  float64
}

// Aggregate merges candidate gaps from all collectors into one deduplicated,
// scored, deterministically ordered backlog. Gaps sharing a normalized title
// merge: the result takes the identity of the highest-weighted contributing
// source, the earliest detection time, and a score summing every
// contributing source's base weight. The now argument is the single clock
// input, so identical inputs always produce identical output.
func Aggregate(now time.Time, batches ...[]Gap) []Gap {
	byKey := make(map[string]*mergedGap)

	for _, batch := range batches {
		for _, g := range batch {
			key := NormalizeTitle(g.Title)
			if key == "" {
				key = g.ID
			}

			m, ok := byKey[key]
			if !ok {
				byKey[key] = &mergedGap{
					gap:     g,
					sources: map[GapSource]struct{}{g.Source: {}},
					volume:  volumeBonus(g.Frequency),
				}
				continue
			}

			m.sources[g.Source] = struct{}{}
			m.volume += volumeBonus(g.Frequency)
			m.gap.Frequency += g.Frequency
			m.gap.Keywords = unionSorted(m.gap.Keywords, g.Keywords)
			m.gap.RelatedFiles = unionSorted(m.gap.RelatedFiles, g.RelatedFiles)
			m.gap.SampleQueries = unionSorted(m.gap.SampleQueries, g.SampleQueries)
			if g.DetectedAt.Before(m.gap.DetectedAt) {
				m.gap.DetectedAt = g.DetectedAt
			}
			if g.Source.BaseWeight() > m.gap.Source.BaseWeight() {
				m.gap.ID = g.ID
				m.gap.Source = g.Source
				m.gap.Title = g.Title
				m.gap.Description = g.Description
				m.gap.SuggestedDocType = g.SuggestedDocType
			}
		}
	}

	gaps := make([]Gap, 0, len(byKey))
	for _, m := range byKey {
		var base float64
		for s := range m.sources {
			base += s.BaseWeight()
		}
		volume := m.volume
		if volume > volumeBonusCap {
			volume = volumeBonusCap
		}

		g := m.gap
		g.Score = base + ageBonus(g.DetectedAt, now) + volume
		g.Priority = PriorityFor(g.Score)
		gaps = append(gaps, g)
	}

	// Highest score first; ties go to the oldest gap so long-standing debt
	// surfaces before novel issues of equal score.
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Score != gaps[j].Score {
			return gaps[i].Score > gaps[j].Score
		}
		if !gaps[i].DetectedAt.Equal(gaps[j].DetectedAt) {
			return gaps[i].DetectedAt.Before(gaps[j].DetectedAt)
		}
		return gaps[i].ID < gaps[j].ID
	})

	return gaps
}

func unionSorted(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, s := range a {
		seen[s] = struct{}{}
	}
	for _, s := range b {
		seen[s] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
