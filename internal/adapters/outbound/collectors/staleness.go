package collectors

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/docsgov/docsgov/internal/adapters/outbound/docmeta"
	"github.com/docsgov/docsgov/internal/domain"
)

// StalenessCollector proposes a gap for every document whose last_reviewed
// date is older than the policy pack's staleness window.
type StalenessCollector struct {
	docsDir        string
	staleAfterDays int
	now            time.Time
}

func NewStaleness(docsDir string, staleAfterDays int, now time.Time) *StalenessCollector {
	return &StalenessCollector{docsDir: docsDir, staleAfterDays: staleAfterDays, now: now}
}

func (c *StalenessCollector) Name() string             { return "staleness" }
func (c *StalenessCollector) Source() domain.GapSource { return domain.SourceStaleness }

func (c *StalenessCollector) Collect(ctx context.Context) ([]domain.Gap, error) {
	var gaps []domain.Gap

	err := filepath.WalkDir(c.docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(c.docsDir, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		fm, ok := docmeta.Read(path)
		if !ok || fm.LastReviewed == "" {
			return nil
		}

		reviewed, err := docmeta.ParseDate(fm.LastReviewed)
		if err != nil {
			return nil // unreadable dates are a frontmatter-lint concern, not staleness
		}

		age := int(c.now.Sub(reviewed).Hours() / 24)
		if age <= c.staleAfterDays {
			return nil
		}

		title := fm.Title
		if title == "" {
			title = humanizePath(rel)
		}
		docType := fm.Type
		if docType == "" {
			docType = "reference"
		}

		gaps = append(gaps, domain.Gap{
			ID:               domain.GapID(domain.SourceStaleness, rel),
			Source:           domain.SourceStaleness,
			Title:            title,
			Description:      fmt.Sprintf("Document %s not reviewed for %d days.", rel, age),
			SuggestedDocType: docType,
			Frequency:        1,
			RelatedFiles:     []string{rel},
			DetectedAt:       reviewed,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", c.docsDir, err)
	}

	return gaps, nil
}
