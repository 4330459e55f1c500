package domain_test

import (
	"testing"

	"github.com/docsgov/docsgov/internal/domain"
	"github.com/stretchr/testify/assert"
)

func classify(t *testing.T, paths ...string) []domain.ClassifiedFile {
	t.Helper()
	files := make([]domain.ChangedFile, 0, len(paths))
	for _, p := range paths {
		files = append(files, domain.ChangedFile{Path: p, Type: domain.ChangeModified})
	}
	return domain.ClassifyFiles(files, domain.DefaultPolicyPack())
}

func TestEvaluateContract_NoInterfaceChange_AlwaysSatisfied(t *testing.T) {
	v := domain.EvaluateContract(classify(t, "internal/worker/pool.go", "Makefile"))
	assert.True(t, v.Satisfied)
	assert.Empty(t, v.InterfaceFilesChanged)
}

func TestEvaluateContract_EmptyChangeSet(t *testing.T) {
	v := domain.EvaluateContract(nil)
	assert.True(t, v.Satisfied)
}

func TestEvaluateContract_InterfaceWithoutDocs_Violation(t *testing.T) {
	v := domain.EvaluateContract(classify(t, "api/orders/routes.go"))
	assert.False(t, v.Satisfied)
	assert.Equal(t, []string{"api/orders/routes.go"}, v.InterfaceFilesChanged)
	assert.Empty(t, v.DocFilesChanged)
}

func TestEvaluateContract_InterfaceWithDocs_Satisfied(t *testing.T) {
	v := domain.EvaluateContract(classify(t, "api/openapi.yaml", "docs/reference/orders.md"))
	assert.True(t, v.Satisfied)
	assert.Equal(t, []string{"api/openapi.yaml"}, v.InterfaceFilesChanged)
	assert.Equal(t, []string{"docs/reference/orders.md"}, v.DocFilesChanged)
}

// The gate is file-count based: an unrelated doc change still satisfies it.
func TestEvaluateContract_UnrelatedDocChangeSatisfies(t *testing.T) {
	v := domain.EvaluateContract(classify(t, "sdk/python/client.py", "docs/tutorials/intro.md"))
	assert.True(t, v.Satisfied)
}

func TestExplanation_Violation(t *testing.T) {
	v := domain.EvaluateContract(classify(t, "api/openapi.yaml"))
	out := v.Explanation()
	assert.Contains(t, out, "Blocking")
	assert.Contains(t, out, "api/openapi.yaml")
	assert.Contains(t, out, "docs: none")
}

func TestExplanation_Satisfied(t *testing.T) {
	v := domain.EvaluateContract(classify(t, "docs/guide.md"))
	assert.Contains(t, v.Explanation(), "passed")
}
