// Package docscan walks a docs tree and inventories it for the KPI
// snapshot: document counts, frontmatter coverage, and staleness.
package docscan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/docsgov/docsgov/internal/adapters/outbound/docmeta"
	"github.com/docsgov/docsgov/internal/domain"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"vendor":       true,
	"dist":         true,
}

// Scanner implements domain.DocScanner by walking the filesystem.
type Scanner struct {
	staleAfterDays int
	now            time.Time
}

func New(staleAfterDays int, now time.Time) *Scanner {
	return &Scanner{staleAfterDays: staleAfterDays, now: now}
}

// Scan walks docsDir. A document counts as stale when its last_reviewed
// date is older than the staleness window; documents without a reviewed
// date are never stale, only uncounted for metadata coverage when they
// lack frontmatter entirely.
func (s *Scanner) Scan(docsDir string) (domain.DocInventory, error) {
	var inv domain.DocInventory

	err := filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".md") {
			return nil
		}

		inv.TotalDocs++

		fm, ok := docmeta.Read(path)
		if !ok {
			return nil
		}
		inv.DocsWithFrontmatter++

		if fm.LastReviewed == "" {
			return nil
		}
		reviewed, err := docmeta.ParseDate(fm.LastReviewed)
		if err != nil {
			return nil
		}
		if int(s.now.Sub(reviewed).Hours()/24) > s.staleAfterDays {
			inv.StaleDocs++
		}
		return nil
	})
	if err != nil {
		return domain.DocInventory{}, fmt.Errorf("scanning %s: %w", docsDir, err)
	}

	return inv, nil
}
