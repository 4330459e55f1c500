package docscan_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsgov/docsgov/internal/adapters/outbound/docscan"
)

var scanNow = time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanner_Scan(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "fresh.md", "---\ntitle: Fresh\nlast_reviewed: \"2026-03-20\"\n---\n\nBody.\n")
	writeDoc(t, dir, "guides/stale.md", "---\ntitle: Stale\nlast_reviewed: \"2024-01-01\"\n---\n\nBody.\n")
	writeDoc(t, dir, "bare.md", "# No frontmatter\n")
	writeDoc(t, dir, "notes.txt", "not a doc\n")

	inv, err := docscan.New(180, scanNow).Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, inv.TotalDocs)
	assert.Equal(t, 2, inv.DocsWithFrontmatter)
	assert.Equal(t, 1, inv.StaleDocs)
}

func TestScanner_SkipsVendoredDirs(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "---\ntitle: Index\n---\n")
	writeDoc(t, dir, "node_modules/pkg/readme.md", "# vendored\n")

	inv, err := docscan.New(180, scanNow).Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, inv.TotalDocs)
}

func TestScanner_MissingDir(t *testing.T) {
	_, err := docscan.New(180, scanNow).Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
