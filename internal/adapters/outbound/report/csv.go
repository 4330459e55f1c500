package report

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/docsgov/docsgov/internal/domain"
)

// GapCSV renders the gap backlog as CSV, one row per gap.
func GapCSV(r domain.GapReport) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{
		"ID", "Title", "Description", "Source", "Doc Type",
		"Priority", "Score", "Frequency", "Keywords", "Related Files",
		"Sample Queries", "Detected At",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}

	for _, g := range r.Gaps {
		row := []string{
			g.ID,
			g.Title,
			g.Description,
			string(g.Source),
			g.SuggestedDocType,
			string(g.Priority),
			strconv.FormatFloat(g.Score, 'f', 1, 64),
			strconv.Itoa(g.Frequency),
			strings.Join(g.Keywords, ", "),
			strings.Join(g.RelatedFiles, ", "),
			strings.Join(g.SampleQueries, "; "),
			g.DetectedAt.Format("2006-01-02"),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing CSV: %w", err)
	}
	return b.String(), nil
}
