package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsgov/docsgov/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "docsgov-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "docsgov")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/docsgov")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// seedRepo builds a repository with a base commit and one head commit
// containing the given files.
func seedRepo(t *testing.T, headFiles map[string]string) (dir, base, head string) {
	t.Helper()
	dir = t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	write := func(path, content string) {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	commit := func(msg string) string {
		require.NoError(t, wt.AddWithOptions(&git.AddOptions{All: true}))
		hash, err := wt.Commit(msg, &git.CommitOptions{
			Author: &object.Signature{Name: "e2e", Email: "e2e@example.com", When: time.Now()},
		})
		require.NoError(t, err)
		return hash.String()
	}

	write("README.md", "v1")
	base = commit("initial")
	for path, content := range headFiles {
		write(path, content)
	}
	head = commit("changes")
	return dir, base, head
}

// --- Contract gate ---

func TestE2E_ContractBlocked(t *testing.T) {
	dir, base, head := seedRepo(t, map[string]string{
		"api/openapi.yaml": "openapi: 3.0.0",
	})

	out, code := run(t, "contract-check", "--path", dir, "--base", base, "--head", head)
	assert.Equal(t, 1, code, "a blocked contract should exit 1")
	assert.Contains(t, out, "BLOCKED")
}

func TestE2E_ContractPass(t *testing.T) {
	dir, base, head := seedRepo(t, map[string]string{
		"api/openapi.yaml":      "openapi: 3.0.0",
		"docs/reference/api.md": "updated",
	})

	out, code := run(t, "contract-check", "--path", dir, "--base", base, "--head", head)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "PASS")
}

func TestE2E_ContractBadRef(t *testing.T) {
	dir, _, _ := seedRepo(t, map[string]string{"docs/guide.md": "updated"})

	out, code := run(t, "contract-check", "--path", dir, "--base", "no-such-ref")
	assert.Equal(t, 2, code, "an unresolvable revision should exit 2")
	assert.Contains(t, out, "no-such-ref")
}

// --- Drift ---

func TestE2E_DriftDetected(t *testing.T) {
	dir, base, head := seedRepo(t, map[string]string{
		"sdk/client.go": "package sdk",
	})
	jsonPath := filepath.Join(t.TempDir(), "drift.json")

	_, code := run(t, "drift-check", "--path", dir, "--base", base, "--head", head,
		"--json-output", jsonPath)
	assert.Equal(t, 1, code)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)

	var report domain.DriftReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, domain.DriftDetected, report.Status)
	assert.Equal(t, []string{"sdk/client.go"}, report.SDKChanges)
}

// --- KPI SLA ---

func TestE2E_SLABreach(t *testing.T) {
	current := filepath.Join(t.TempDir(), "current.json")
	snap := domain.KPISnapshot{QualityScore: 60, TotalDocs: 10, StaleDocs: 5}
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(current, data, 0644))

	out, code := run(t, "kpi-sla-evaluate", "--current", current)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Quality score breach: 60 < 80.")
	assert.Contains(t, out, "Stale docs breach: 50.0% > 15.0%.")
}

func TestE2E_SnapshotThenEvaluate(t *testing.T) {
	docsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "guide.md"),
		[]byte("---\ntitle: Guide\nlast_reviewed: \"2999-01-01\"\n---\n"), 0644))
	snapPath := filepath.Join(t.TempDir(), "kpi.json")

	_, code := run(t, "kpi", "snapshot", "--docs-dir", docsDir, "--output", snapPath)
	require.Equal(t, 0, code)

	out, code := run(t, "kpi-sla-evaluate", "--current", snapPath)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "KPI SLA check passed.")
}

// --- Gap analysis ---

func TestE2E_GapsAnalyze(t *testing.T) {
	dir, _, _ := seedRepo(t, map[string]string{
		"api/orders.yaml": "openapi: 3.0.0",
	})
	docsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "stale.md"),
		[]byte("---\ntitle: Stale guide\nlast_reviewed: \"2020-01-01\"\n---\n"), 0644))
	outputDir := filepath.Join(t.TempDir(), "reports")

	_, code := run(t, "gaps", "analyze", "--path", dir, "--docs-dir", docsDir,
		"--output-dir", outputDir)
	assert.Equal(t, 0, code)

	data, err := os.ReadFile(filepath.Join(outputDir, "gap-report.json"))
	require.NoError(t, err)

	var report domain.GapReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.GreaterOrEqual(t, report.Summary.TotalGaps, 2)
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "docsgov")
}
