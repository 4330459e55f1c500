package collectors_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsgov/docsgov/internal/adapters/outbound/collectors"
	"github.com/docsgov/docsgov/internal/domain"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "search.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSearchAnalytics_ZeroResultQueries(t *testing.T) {
	path := writeExport(t, `{
		"queries": [
			{"query": "webhook retry policy", "count": 12, "nbHits": 0},
			{"query": "install guide", "count": 40, "nbHits": 7},
			{"query": "rare query", "count": 1, "nbHits": 0},
			{"query": "", "count": 9, "nbHits": 0}
		]
	}`)

	gaps, err := collectors.NewSearchAnalytics(path, 3, testNow).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, gaps, 1)

	gap := gaps[0]
	assert.Equal(t, domain.SourceSearchAnalytics, gap.Source)
	assert.Equal(t, "webhook retry policy", gap.Title)
	assert.Equal(t, 12, gap.Frequency)
	assert.Equal(t, []string{"webhook retry policy"}, gap.SampleQueries)
	assert.Contains(t, gap.Description, "12 searches")
}

func TestSearchAnalytics_NoExportConfigured(t *testing.T) {
	gaps, err := collectors.NewSearchAnalytics("", 3, testNow).Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gaps)
}

func TestSearchAnalytics_MissingFileFails(t *testing.T) {
	c := collectors.NewSearchAnalytics(filepath.Join(t.TempDir(), "absent.json"), 3, testNow)
	_, err := c.Collect(context.Background())
	assert.Error(t, err)
}

func TestSearchAnalytics_MalformedJSONFails(t *testing.T) {
	path := writeExport(t, "{oops")
	_, err := collectors.NewSearchAnalytics(path, 3, testNow).Collect(context.Background())
	assert.Error(t, err)
}
