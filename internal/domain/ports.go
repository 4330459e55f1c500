package domain

import "context"

// PolicyLoader loads a policy pack from a file path.
type PolicyLoader interface {
	Load(path string) (PolicyPack, error)
}

// ChangeLister obtains the file-level diff between two revision pointers.
// Implementations return a *DiffError when a ref cannot be resolved.
type ChangeLister interface {
	Changes(repoPath, baseRef, headRef string) ([]ChangedFile, error)
}

// GapCollector is one independent gap-signal source. Collect may fail; the
// caller degrades a failure to an empty contribution rather than aborting
// the run.
type GapCollector interface {
	Name() string
	Source() GapSource
	Collect(ctx context.Context) ([]Gap, error)
}

// DocScanner inventories a docs tree for snapshot building.
type DocScanner interface {
	Scan(docsDir string) (DocInventory, error)
}

// SnapshotStore loads and persists KPI snapshots as JSON files.
type SnapshotStore interface {
	Load(path string) (KPISnapshot, error)
	Save(path string, snapshot KPISnapshot) error
}
