package domain

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ChangeType classifies how a file changed between two revisions.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeDeleted  ChangeType = "deleted"
	ChangeRenamed  ChangeType = "renamed"
)

// ChangedFile is one file-level entry from a diff between two revisions.
type ChangedFile struct {
	Path string     `json:"path"`
	Type ChangeType `json:"change_type"`
}

// PatternGroup labels a policy-pack pattern list.
type PatternGroup string

const (
	GroupInterface    PatternGroup = "interface"
	GroupDoc          PatternGroup = "doc"
	GroupOpenAPI      PatternGroup = "openapi"
	GroupSDK          PatternGroup = "sdk"
	GroupReferenceDoc PatternGroup = "reference_doc"
)

// ClassifiedFile pairs a changed file with every pattern group it matched.
// A file may match zero, one, or several groups.
type ClassifiedFile struct {
	File   ChangedFile    `json:"file"`
	Groups []PatternGroup `json:"groups,omitempty"`
}

// In reports whether the file matched the given group.
func (c ClassifiedFile) In(group PatternGroup) bool {
	for _, g := range c.Groups {
		if g == group {
			return true
		}
	}
	return false
}

// MatchesAny reports whether path matches at least one glob pattern.
// Matching is case-insensitive: doc trees routinely mix README.md and
// readme.md, and the gate must treat them alike.
func MatchesAny(path string, patterns []string) bool {
	p := strings.ToLower(strings.TrimPrefix(path, "./"))
	for _, pattern := range patterns {
		ok, err := doublestar.Match(strings.ToLower(pattern), p)
		if err == nil && ok {
			return true
		}
	}
	return false
}

// ClassifyFiles evaluates every changed file against every pattern group in
// the pack. Output is sorted by path so identical inputs always produce the
// same classification.
func ClassifyFiles(files []ChangedFile, pack PolicyPack) []ClassifiedFile {
	groups := []struct {
		label    PatternGroup
		patterns []string
	}{
		{GroupInterface, pack.DocsContract.InterfacePatterns},
		{GroupDoc, pack.DocsContract.DocPatterns},
		{GroupOpenAPI, pack.Drift.OpenAPIPatterns},
		{GroupSDK, pack.Drift.SDKPatterns},
		{GroupReferenceDoc, pack.Drift.ReferenceDocPatterns},
	}

	classified := make([]ClassifiedFile, 0, len(files))
	for _, f := range files {
		cf := ClassifiedFile{File: f}
		for _, g := range groups {
			if MatchesAny(f.Path, g.patterns) {
				cf.Groups = append(cf.Groups, g.label)
			}
		}
		classified = append(classified, cf)
	}

	sort.Slice(classified, func(i, j int) bool {
		return classified[i].File.Path < classified[j].File.Path
	})
	return classified
}

// PathsIn returns the sorted paths labeled with the given group.
func PathsIn(classified []ClassifiedFile, group PatternGroup) []string {
	var paths []string
	for _, c := range classified {
		if c.In(group) {
			paths = append(paths, c.File.Path)
		}
	}
	return paths
}
