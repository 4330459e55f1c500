// Package policy loads policy packs from YAML files.
package policy

import (
	"fmt"
	"os"

	"github.com/docsgov/docsgov/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLLoader implements domain.PolicyLoader by reading a policy pack file.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// rawPack mirrors the pack file with pointer thresholds so a missing key is
// distinguishable from an explicit zero.
type rawPack struct {
	Name         string                  `yaml:"name"`
	DocsContract domain.ContractPatterns `yaml:"docs_contract"`
	Drift        domain.DriftPatterns    `yaml:"drift"`
	KPISLA       rawThresholds           `yaml:"kpi_sla"`
	Gaps         *domain.GapSettings     `yaml:"gaps"`
}

type rawThresholds struct {
	MinQualityScore     *int     `yaml:"min_quality_score"`
	MaxStalePct         *float64 `yaml:"max_stale_pct"`
	MaxHighPriorityGaps *int     `yaml:"max_high_priority_gaps"`
	MaxQualityScoreDrop *int     `yaml:"max_quality_score_drop"`
}

// Load reads and validates a policy pack. Any problem that would silently
// disable a gate downstream is a *domain.ConfigError here.
func (l *YAMLLoader) Load(path string) (domain.PolicyPack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.PolicyPack{}, &domain.ConfigError{Path: path, Reason: "reading file", Err: err}
	}

	var raw rawPack
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.PolicyPack{}, &domain.ConfigError{Path: path, Reason: "parsing YAML", Err: err}
	}

	thresholds, err := resolveThresholds(raw.KPISLA)
	if err != nil {
		return domain.PolicyPack{}, &domain.ConfigError{Path: path, Reason: err.Error()}
	}

	pack := domain.PolicyPack{
		Name:         raw.Name,
		DocsContract: raw.DocsContract,
		Drift:        raw.Drift,
		KPISLA:       thresholds,
		Gaps:         resolveGaps(raw.Gaps),
	}
	if pack.Name == "" {
		pack.Name = path
	}

	if err := pack.Validate(); err != nil {
		return domain.PolicyPack{}, &domain.ConfigError{Path: path, Reason: "invalid policy pack", Err: err}
	}

	return pack, nil
}

func resolveThresholds(raw rawThresholds) (domain.SLAThresholds, error) {
	missing := func(key string) error {
		return fmt.Errorf("kpi_sla.%s is required", key)
	}

	if raw.MinQualityScore == nil {
		return domain.SLAThresholds{}, missing("min_quality_score")
	}
	if raw.MaxStalePct == nil {
		return domain.SLAThresholds{}, missing("max_stale_pct")
	}
	if raw.MaxHighPriorityGaps == nil {
		return domain.SLAThresholds{}, missing("max_high_priority_gaps")
	}
	if raw.MaxQualityScoreDrop == nil {
		return domain.SLAThresholds{}, missing("max_quality_score_drop")
	}

	return domain.SLAThresholds{
		MinQualityScore:     *raw.MinQualityScore,
		MaxStalePct:         *raw.MaxStalePct,
		MaxHighPriorityGaps: *raw.MaxHighPriorityGaps,
		MaxQualityScoreDrop: *raw.MaxQualityScoreDrop,
	}, nil
}

// resolveGaps merges collector defaults under explicit values; the gaps
// section is optional and only overrides what it names.
func resolveGaps(raw *domain.GapSettings) domain.GapSettings {
	settings := domain.DefaultGapSettings()
	if raw == nil {
		return settings
	}
	if raw.StaleAfterDays > 0 {
		settings.StaleAfterDays = raw.StaleAfterDays
	}
	if raw.MinSearchCount > 0 {
		settings.MinSearchCount = raw.MinSearchCount
	}
	if raw.MinClusterSize > 0 {
		settings.MinClusterSize = raw.MinClusterSize
	}
	if len(raw.CommunityFeeds) > 0 {
		settings.CommunityFeeds = raw.CommunityFeeds
	}
	return settings
}
