package domain

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// SLAThresholds are the numeric service-level thresholds for KPI evaluation.
type SLAThresholds struct {
	MinQualityScore     int     `yaml:"min_quality_score"      json:"min_quality_score"`
	MaxStalePct         float64 `yaml:"max_stale_pct"          json:"max_stale_pct"`
	MaxHighPriorityGaps int     `yaml:"max_high_priority_gaps" json:"max_high_priority_gaps"`
	MaxQualityScoreDrop int     `yaml:"max_quality_score_drop" json:"max_quality_score_drop"`
}

// ContractPatterns parameterize the docs-contract gate.
type ContractPatterns struct {
	InterfacePatterns []string `yaml:"interface_patterns" json:"interface_patterns"`
	DocPatterns       []string `yaml:"doc_patterns"       json:"doc_patterns"`
}

// DriftPatterns parameterize the API/SDK drift detector.
type DriftPatterns struct {
	OpenAPIPatterns      []string `yaml:"openapi_patterns"       json:"openapi_patterns"`
	SDKPatterns          []string `yaml:"sdk_patterns"           json:"sdk_patterns"`
	ReferenceDocPatterns []string `yaml:"reference_doc_patterns" json:"reference_doc_patterns"`
}

// FeedSpec names a community feed to poll for question topics.
type FeedSpec struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url"  json:"url"`
}

// GapSettings tune the gap-signal collectors.
type GapSettings struct {
	StaleAfterDays int        `yaml:"stale_after_days" json:"stale_after_days"`
	MinSearchCount int        `yaml:"min_search_count" json:"min_search_count"`
	MinClusterSize int        `yaml:"min_cluster_size" json:"min_cluster_size"`
	CommunityFeeds []FeedSpec `yaml:"community_feeds"  json:"community_feeds,omitempty"`
}

// PolicyPack is the declarative configuration that parameterizes every
// governance check for one repository/team profile. Immutable once loaded.
type PolicyPack struct {
	Name         string           `yaml:"name"          json:"name,omitempty"`
	DocsContract ContractPatterns `yaml:"docs_contract" json:"docs_contract"`
	Drift        DriftPatterns    `yaml:"drift"         json:"drift"`
	KPISLA       SLAThresholds    `yaml:"kpi_sla"       json:"kpi_sla"`
	Gaps         GapSettings      `yaml:"gaps"          json:"gaps"`
}

// DefaultPolicyPack returns the built-in profile used when no pack file is
// given. Pattern sets mirror the conventional docs-repo layout.
func DefaultPolicyPack() PolicyPack {
	return PolicyPack{
		Name: "default",
		DocsContract: ContractPatterns{
			InterfacePatterns: []string{
				"api/**",
				"**/openapi*.{yaml,yml,json}",
				"**/swagger*.{yaml,yml,json}",
				"**/api-spec*.{yaml,yml,json}",
				"src/**/{routes,controllers,handlers,public,sdk}/**",
				"sdk/**",
				"clients/**",
			},
			DocPatterns: []string{
				"docs/**",
				"templates/**",
				"README*.md",
				"*_GUIDE.md",
			},
		},
		Drift: DriftPatterns{
			OpenAPIPatterns: []string{
				"**/openapi*.{yaml,yml,json}",
				"**/swagger*.{yaml,yml,json}",
				"**/api-spec*.{yaml,yml,json}",
			},
			SDKPatterns: []string{
				"sdk/**",
				"clients/**",
				"**/generated/{sdk,client}/**",
			},
			ReferenceDocPatterns: []string{
				"docs/reference/**",
				"templates/api-reference.md",
				"templates/sdk-reference.md",
				"docs/how-to/**/*api*",
			},
		},
		KPISLA: SLAThresholds{
			MinQualityScore:     80,
			MaxStalePct:         15.0,
			MaxHighPriorityGaps: 8,
			MaxQualityScoreDrop: 5,
		},
		Gaps: DefaultGapSettings(),
	}
}

// DefaultGapSettings returns collector defaults matching the weekly
// governance run profile.
func DefaultGapSettings() GapSettings {
	return GapSettings{
		StaleAfterDays: 180,
		MinSearchCount: 3,
		MinClusterSize: 2,
	}
}

// Validate checks the pack for operator mistakes that would silently disable
// a gate. An empty pattern list or an invalid glob is fatal at load time,
// never at evaluation time.
func (p PolicyPack) Validate() error {
	groups := []struct {
		name     string
		patterns []string
	}{
		{"docs_contract.interface_patterns", p.DocsContract.InterfacePatterns},
		{"docs_contract.doc_patterns", p.DocsContract.DocPatterns},
		{"drift.openapi_patterns", p.Drift.OpenAPIPatterns},
		{"drift.sdk_patterns", p.Drift.SDKPatterns},
		{"drift.reference_doc_patterns", p.Drift.ReferenceDocPatterns},
	}

	for _, g := range groups {
		if len(g.patterns) == 0 {
			return fmt.Errorf("%s must not be empty", g.name)
		}
		for _, pat := range g.patterns {
			if pat == "" {
				return fmt.Errorf("%s contains an empty pattern", g.name)
			}
			if !doublestar.ValidatePattern(pat) {
				return fmt.Errorf("%s contains invalid glob %q", g.name, pat)
			}
		}
	}

	t := p.KPISLA
	if t.MinQualityScore < 0 || t.MinQualityScore > 100 {
		return fmt.Errorf("kpi_sla.min_quality_score = %d (must be between 0 and 100)", t.MinQualityScore)
	}
	if t.MaxStalePct < 0 || t.MaxStalePct > 100 {
		return fmt.Errorf("kpi_sla.max_stale_pct = %.1f (must be between 0 and 100)", t.MaxStalePct)
	}
	if t.MaxHighPriorityGaps < 0 {
		return fmt.Errorf("kpi_sla.max_high_priority_gaps = %d (must be >= 0)", t.MaxHighPriorityGaps)
	}
	if t.MaxQualityScoreDrop < 0 {
		return fmt.Errorf("kpi_sla.max_quality_score_drop = %d (must be >= 0)", t.MaxQualityScoreDrop)
	}

	g := p.Gaps
	if g.StaleAfterDays < 0 {
		return fmt.Errorf("gaps.stale_after_days = %d (must be >= 0)", g.StaleAfterDays)
	}
	if g.MinSearchCount < 0 {
		return fmt.Errorf("gaps.min_search_count = %d (must be >= 0)", g.MinSearchCount)
	}
	if g.MinClusterSize < 0 {
		return fmt.Errorf("gaps.min_cluster_size = %d (must be >= 0)", g.MinClusterSize)
	}
	for i, f := range g.CommunityFeeds {
		if f.URL == "" {
			return fmt.Errorf("gaps.community_feeds[%d].url must not be empty", i)
		}
	}

	return nil
}
