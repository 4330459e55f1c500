// Package snapshot persists KPI snapshots as JSON files so the SLA
// evaluator can compare a run against the previous one.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docsgov/docsgov/internal/domain"
)

// FileStore implements domain.SnapshotStore using JSON file storage.
type FileStore struct{}

func New() *FileStore {
	return &FileStore{}
}

func (s *FileStore) Load(path string) (domain.KPISnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.KPISnapshot{}, &domain.ConfigError{
			Path:   path,
			Reason: "reading snapshot",
			Err:    err,
		}
	}

	var snap domain.KPISnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.KPISnapshot{}, &domain.ConfigError{
			Path:   path,
			Reason: "parsing snapshot JSON",
			Err:    err,
		}
	}

	return snap, nil
}

func (s *FileStore) Save(path string, snap domain.KPISnapshot) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}
