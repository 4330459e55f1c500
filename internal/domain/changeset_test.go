package domain_test

import (
	"testing"

	"github.com/docsgov/docsgov/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesAny(t *testing.T) {
	patterns := []string{"api/**", "**/openapi*.{yaml,yml,json}"}

	assert.True(t, domain.MatchesAny("api/orders/routes.go", patterns))
	assert.True(t, domain.MatchesAny("spec/openapi.yaml", patterns))
	assert.True(t, domain.MatchesAny("openapi-v2.json", patterns))
	assert.False(t, domain.MatchesAny("docs/guide.md", patterns))
}

func TestMatchesAny_CaseInsensitive(t *testing.T) {
	assert.True(t, domain.MatchesAny("API/OpenAPI.YAML", []string{"api/**"}))
	assert.True(t, domain.MatchesAny("readme.md", []string{"README*.md"}))
}

func TestClassifyFiles_MultipleGroups(t *testing.T) {
	pack := domain.DefaultPolicyPack()
	files := []domain.ChangedFile{
		{Path: "api/openapi.yaml", Type: domain.ChangeModified},
		{Path: "docs/reference/orders.md", Type: domain.ChangeModified},
		{Path: "cmd/server/main.go", Type: domain.ChangeAdded},
	}

	classified := domain.ClassifyFiles(files, pack)
	require.Len(t, classified, 3)

	// A file can be interface and openapi at once.
	spec := classified[0]
	assert.Equal(t, "api/openapi.yaml", spec.File.Path)
	assert.True(t, spec.In(domain.GroupInterface))
	assert.True(t, spec.In(domain.GroupOpenAPI))

	ref := classified[2]
	assert.Equal(t, "docs/reference/orders.md", ref.File.Path)
	assert.True(t, ref.In(domain.GroupDoc))
	assert.True(t, ref.In(domain.GroupReferenceDoc))

	unlabeled := classified[1]
	assert.Equal(t, "cmd/server/main.go", unlabeled.File.Path)
	assert.Empty(t, unlabeled.Groups)
}

func TestClassifyFiles_SortedByPath(t *testing.T) {
	pack := domain.DefaultPolicyPack()
	files := []domain.ChangedFile{
		{Path: "zzz.md"},
		{Path: "aaa.md"},
		{Path: "mmm.md"},
	}

	classified := domain.ClassifyFiles(files, pack)
	require.Len(t, classified, 3)
	assert.Equal(t, "aaa.md", classified[0].File.Path)
	assert.Equal(t, "mmm.md", classified[1].File.Path)
	assert.Equal(t, "zzz.md", classified[2].File.Path)
}

func TestPathsIn(t *testing.T) {
	pack := domain.DefaultPolicyPack()
	classified := domain.ClassifyFiles([]domain.ChangedFile{
		{Path: "sdk/go/client.go"},
		{Path: "docs/how-to/use-api.md"},
	}, pack)

	assert.Equal(t, []string{"sdk/go/client.go"}, domain.PathsIn(classified, domain.GroupSDK))
	assert.Equal(t, []string{"docs/how-to/use-api.md"}, domain.PathsIn(classified, domain.GroupReferenceDoc))
	assert.Empty(t, domain.PathsIn(classified, domain.GroupOpenAPI))
}
