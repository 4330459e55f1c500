package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsgov/docsgov/internal/domain"
)

func TestGapsAnalyzeCommand(t *testing.T) {
	repoDir, _, _ := gateRepo(t, map[string]string{
		"api/orders.yaml": "openapi: 3.0.0",
	})
	docsDir := seedDocs(t)
	algolia := filepath.Join(t.TempDir(), "searches.json")
	require.NoError(t, os.WriteFile(algolia, []byte(
		`{"queries":[{"query":"webhook retries","count":7,"nbHits":0}]}`), 0644))
	outputDir := filepath.Join(t.TempDir(), "reports")

	out, err := runCommand(t, "gaps", "analyze",
		"--path", repoDir,
		"--docs-dir", docsDir,
		"--algolia-json", algolia,
		"--output-dir", outputDir)

	require.NoError(t, err)
	assert.Contains(t, out, "Reports written to")

	for _, name := range []string{"gap-report.json", "gap-report.md", "gap-report.csv", "gap-report.xlsx"} {
		_, statErr := os.Stat(filepath.Join(outputDir, name))
		assert.NoError(t, statErr, "%s should be written", name)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "gap-report.json"))
	require.NoError(t, err)

	var report domain.GapReport
	require.NoError(t, json.Unmarshal(data, &report))

	assert.ElementsMatch(t, []string{"code_changes", "staleness", "search_analytics"}, report.SourcesAnalyzed)
	assert.GreaterOrEqual(t, report.Summary.TotalGaps, 3)

	var sources []domain.GapSource
	for _, g := range report.Gaps {
		sources = append(sources, g.Source)
	}
	assert.Contains(t, sources, domain.SourceCodeChange)
	assert.Contains(t, sources, domain.SourceStaleness)
	assert.Contains(t, sources, domain.SourceSearchAnalytics)
}

func TestGapsAnalyzeCommand_NoRepoDegrades(t *testing.T) {
	docsDir := seedDocs(t)
	outputDir := filepath.Join(t.TempDir(), "reports")

	_, err := runCommand(t, "gaps", "analyze",
		"--path", t.TempDir(),
		"--docs-dir", docsDir,
		"--output-dir", outputDir)

	require.NoError(t, err, "an unreadable repo is a caveat, not a failure")

	data, readErr := os.ReadFile(filepath.Join(outputDir, "gap-report.json"))
	require.NoError(t, readErr)

	var report domain.GapReport
	require.NoError(t, json.Unmarshal(data, &report))
	require.Len(t, report.CollectionFailures, 1)
	assert.Contains(t, report.CollectionFailures[0], "code_changes")
}
