package policy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/docsgov/docsgov/internal/adapters/outbound/policy"
	"github.com/docsgov/docsgov/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPack = `
name: payments-team
docs_contract:
  interface_patterns:
    - "api/**"
    - "sdk/**"
  doc_patterns:
    - "docs/**"
drift:
  openapi_patterns:
    - "**/openapi*.{yaml,yml,json}"
  sdk_patterns:
    - "sdk/**"
  reference_doc_patterns:
    - "docs/reference/**"
kpi_sla:
  min_quality_score: 75
  max_stale_pct: 20.0
  max_high_priority_gaps: 10
  max_quality_score_drop: 3
gaps:
  stale_after_days: 90
`

func writePack(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidPack(t *testing.T) {
	pack, err := policy.New().Load(writePack(t, validPack))
	require.NoError(t, err)

	assert.Equal(t, "payments-team", pack.Name)
	assert.Equal(t, []string{"api/**", "sdk/**"}, pack.DocsContract.InterfacePatterns)
	assert.Equal(t, 75, pack.KPISLA.MinQualityScore)
	assert.InDelta(t, 20.0, pack.KPISLA.MaxStalePct, 0.001)

	// Explicit gaps values win; unnamed ones keep defaults.
	assert.Equal(t, 90, pack.Gaps.StaleAfterDays)
	assert.Equal(t, domain.DefaultGapSettings().MinSearchCount, pack.Gaps.MinSearchCount)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := policy.New().Load(filepath.Join(t.TempDir(), "nope.yaml"))

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "reading file")
}

func TestLoad_UnparsableYAML(t *testing.T) {
	_, err := policy.New().Load(writePack(t, "docs_contract: [unclosed"))

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoad_MissingThresholdKey(t *testing.T) {
	pack := `
docs_contract:
  interface_patterns: ["api/**"]
  doc_patterns: ["docs/**"]
drift:
  openapi_patterns: ["**/openapi*.yaml"]
  sdk_patterns: ["sdk/**"]
  reference_doc_patterns: ["docs/reference/**"]
kpi_sla:
  min_quality_score: 80
  max_stale_pct: 15.0
  max_high_priority_gaps: 8
`
	_, err := policy.New().Load(writePack(t, pack))

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "max_quality_score_drop")
}

func TestLoad_EmptyPatternListIsFatal(t *testing.T) {
	pack := `
docs_contract:
  interface_patterns: ["api/**"]
  doc_patterns: []
drift:
  openapi_patterns: ["**/openapi*.yaml"]
  sdk_patterns: ["sdk/**"]
  reference_doc_patterns: ["docs/reference/**"]
kpi_sla:
  min_quality_score: 80
  max_stale_pct: 15.0
  max_high_priority_gaps: 8
  max_quality_score_drop: 5
`
	_, err := policy.New().Load(writePack(t, pack))

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "doc_patterns")
}

func TestLoad_NameDefaultsToPath(t *testing.T) {
	path := writePack(t, `
docs_contract:
  interface_patterns: ["api/**"]
  doc_patterns: ["docs/**"]
drift:
  openapi_patterns: ["**/openapi*.yaml"]
  sdk_patterns: ["sdk/**"]
  reference_doc_patterns: ["docs/reference/**"]
kpi_sla:
  min_quality_score: 80
  max_stale_pct: 15.0
  max_high_priority_gaps: 8
  max_quality_score_drop: 5
`)
	pack, err := policy.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, pack.Name)
}
