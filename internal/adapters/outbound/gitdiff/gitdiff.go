// Package gitdiff lists changed files between two revisions using go-git.
package gitdiff

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/docsgov/docsgov/internal/domain"
)

// Lister implements domain.ChangeLister using go-git tree diffs with rename
// detection.
type Lister struct{}

func New() *Lister {
	return &Lister{}
}

// Changes returns the file-level diff between baseRef and headRef, sorted by
// path. Unresolvable refs surface as *domain.DiffError.
func (l *Lister) Changes(repoPath, baseRef, headRef string) ([]domain.ChangedFile, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repo at %s: %w", repoPath, err)
	}

	baseTree, err := treeAt(repo, baseRef)
	if err != nil {
		return nil, err
	}
	headTree, err := treeAt(repo, headRef)
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTreeWithOptions(context.Background(), baseTree, headTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("diffing %s..%s: %w", baseRef, headRef, err)
	}

	files := make([]domain.ChangedFile, 0, len(changes))
	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			return nil, fmt.Errorf("reading change action: %w", err)
		}

		switch action {
		case merkletrie.Insert:
			files = append(files, domain.ChangedFile{Path: change.To.Name, Type: domain.ChangeAdded})
		case merkletrie.Delete:
			files = append(files, domain.ChangedFile{Path: change.From.Name, Type: domain.ChangeDeleted})
		case merkletrie.Modify:
			if change.From.Name != change.To.Name {
				files = append(files, domain.ChangedFile{Path: change.To.Name, Type: domain.ChangeRenamed})
			} else {
				files = append(files, domain.ChangedFile{Path: change.To.Name, Type: domain.ChangeModified})
			}
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func treeAt(repo *git.Repository, ref string) (*object.Tree, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, &domain.DiffError{Ref: ref, Err: err}
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, &domain.DiffError{Ref: ref, Err: err}
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("reading tree for %s: %w", ref, err)
	}
	return tree, nil
}
