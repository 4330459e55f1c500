// Package collectors implements the four gap-signal sources behind the
// domain.GapCollector port. Each collector is independent: one failing
// source degrades to an empty contribution, never aborting the run.
package collectors

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/camelcase"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/docsgov/docsgov/internal/domain"
)

// CodeChangeCollector proposes one gap per interface-surface file that
// changed in the recent window without any doc update alongside it.
type CodeChangeCollector struct {
	lister   domain.ChangeLister
	repoPath string
	pack     domain.PolicyPack
	since    time.Duration
	now      time.Time
}

func NewCodeChange(lister domain.ChangeLister, repoPath string, pack domain.PolicyPack, since time.Duration, now time.Time) *CodeChangeCollector {
	return &CodeChangeCollector{lister: lister, repoPath: repoPath, pack: pack, since: since, now: now}
}

func (c *CodeChangeCollector) Name() string             { return "code_changes" }
func (c *CodeChangeCollector) Source() domain.GapSource { return domain.SourceCodeChange }

func (c *CodeChangeCollector) Collect(ctx context.Context) ([]domain.Gap, error) {
	baseRef, err := c.windowBase()
	if err != nil {
		return nil, err
	}
	if baseRef == "" {
		// Single-commit repo or empty window: nothing to diff.
		return nil, nil
	}

	files, err := c.lister.Changes(c.repoPath, baseRef, "HEAD")
	if err != nil {
		return nil, err
	}

	classified := domain.ClassifyFiles(files, c.pack)
	docsChanged := len(domain.PathsIn(classified, domain.GroupDoc)) > 0

	var gaps []domain.Gap
	for _, cf := range classified {
		if !cf.In(domain.GroupInterface) || cf.File.Type == domain.ChangeDeleted {
			continue
		}
		if docsChanged {
			continue
		}

		surface := humanizePath(cf.File.Path)
		gaps = append(gaps, domain.Gap{
			ID:               domain.GapID(domain.SourceCodeChange, cf.File.Path),
			Source:           domain.SourceCodeChange,
			Title:            surface,
			Description:      fmt.Sprintf("Interface surface %s changed without a documentation update.", cf.File.Path),
			SuggestedDocType: docTypeFor(cf),
			Frequency:        1,
			RelatedFiles:     []string{cf.File.Path},
			DetectedAt:       c.now,
		})
	}

	return gaps, nil
}

// windowBase returns the oldest commit inside the analysis window, or the
// root commit when history is shorter than the window.
func (c *CodeChangeCollector) windowBase() (string, error) {
	repo, err := git.PlainOpenWithOptions(c.repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo at %s: %w", c.repoPath, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return "", fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	cutoff := c.now.Add(-c.since)
	var base *object.Commit
	err = iter.ForEach(func(commit *object.Commit) error {
		if commit.Committer.When.Before(cutoff) {
			return storer.ErrStop
		}
		base = commit
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walking log: %w", err)
	}

	if base == nil || base.Hash == head.Hash() {
		// Everything in the window is HEAD itself; diff against its parent
		// when one exists.
		headCommit, err := repo.CommitObject(head.Hash())
		if err != nil {
			return "", fmt.Errorf("reading HEAD commit: %w", err)
		}
		parent, err := headCommit.Parent(0)
		if err != nil {
			return "", nil
		}
		return parent.Hash.String(), nil
	}

	// Diff from the parent of the oldest in-window commit so that commit's
	// own changes are included.
	parent, err := base.Parent(0)
	if err != nil {
		return base.Hash.String(), nil
	}
	return parent.Hash.String(), nil
}

func docTypeFor(cf domain.ClassifiedFile) string {
	if cf.In(domain.GroupOpenAPI) || cf.In(domain.GroupSDK) {
		return "reference"
	}
	return "how-to"
}

// humanizePath turns an interface file path into a readable surface name,
// splitting camel case, snake case, and kebab case identifiers.
func humanizePath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(stem)

	var words []string
	for _, field := range strings.Fields(stem) {
		words = append(words, camelcase.Split(field)...)
	}

	for i, w := range words {
		if w == strings.ToLower(w) {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
