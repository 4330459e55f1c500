package cli

import (
	"os"
	"path/filepath"

	"github.com/docsgov/docsgov/internal/adapters/outbound/policy"
	"github.com/docsgov/docsgov/internal/domain"
)

// loadPack resolves the effective policy pack: the named file, or the
// built-in defaults when no pack is given.
func loadPack(path string) (domain.PolicyPack, error) {
	if path == "" {
		return domain.DefaultPolicyPack(), nil
	}
	return policy.New().Load(path)
}

// writeOutput writes rendered report content, creating parent directories.
func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0644)
}
