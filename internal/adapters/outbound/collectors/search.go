package collectors

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/docsgov/docsgov/internal/domain"
)

// searchExport mirrors the search-analytics JSON export format.
type searchExport struct {
	Queries []searchQuery `json:"queries"`
}

type searchQuery struct {
	Query string `json:"query"`
	Count int    `json:"count"`
	Hits  int    `json:"nbHits"`
}

// SearchAnalyticsCollector proposes one gap per zero-result query searched
// at least minCount times.
type SearchAnalyticsCollector struct {
	exportPath string
	minCount   int
	now        time.Time
}

func NewSearchAnalytics(exportPath string, minCount int, now time.Time) *SearchAnalyticsCollector {
	return &SearchAnalyticsCollector{exportPath: exportPath, minCount: minCount, now: now}
}

func (c *SearchAnalyticsCollector) Name() string             { return "search_analytics" }
func (c *SearchAnalyticsCollector) Source() domain.GapSource { return domain.SourceSearchAnalytics }

func (c *SearchAnalyticsCollector) Collect(ctx context.Context) ([]domain.Gap, error) {
	if c.exportPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(c.exportPath)
	if err != nil {
		return nil, fmt.Errorf("reading search export: %w", err)
	}

	var export searchExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parsing search export: %w", err)
	}

	var gaps []domain.Gap
	for _, q := range export.Queries {
		if q.Query == "" || q.Hits > 0 || q.Count < c.minCount {
			continue
		}

		gaps = append(gaps, domain.Gap{
			ID:               domain.GapID(domain.SourceSearchAnalytics, q.Query),
			Source:           domain.SourceSearchAnalytics,
			Title:            q.Query,
			Description:      fmt.Sprintf("Zero-result search query, %d searches.", q.Count),
			SuggestedDocType: "how-to",
			Frequency:        q.Count,
			SampleQueries:    []string{q.Query},
			DetectedAt:       c.now,
		})
	}

	return gaps, nil
}
