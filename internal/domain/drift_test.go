package domain_test

import (
	"testing"

	"github.com/docsgov/docsgov/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateDrift_NoAPIChanges(t *testing.T) {
	report := domain.EvaluateDrift(classify(t, "internal/worker/pool.go"))
	assert.Equal(t, domain.DriftOK, report.Status)
	assert.Equal(t, "No API/SDK signature changes detected.", report.Summary)
}

func TestEvaluateDrift_OpenAPIWithoutReferenceDocs(t *testing.T) {
	report := domain.EvaluateDrift(classify(t, "api/openapi.yaml"))
	assert.Equal(t, domain.DriftDetected, report.Status)
	assert.Equal(t, []string{"api/openapi.yaml"}, report.OpenAPIChanges)
	assert.Empty(t, report.ReferenceDocChanges)
}

func TestEvaluateDrift_SDKWithoutReferenceDocs(t *testing.T) {
	report := domain.EvaluateDrift(classify(t, "sdk/go/client.go"))
	assert.Equal(t, domain.DriftDetected, report.Status)
	assert.Equal(t, []string{"sdk/go/client.go"}, report.SDKChanges)
}

func TestEvaluateDrift_ReferenceDocsPresent(t *testing.T) {
	report := domain.EvaluateDrift(classify(t, "api/openapi.yaml", "docs/reference/orders.md"))
	assert.Equal(t, domain.DriftOK, report.Status)
	assert.Equal(t, "API/SDK changes are accompanied by reference docs updates.", report.Summary)
}

// Adding a reference doc can only move the status from drift toward ok.
func TestEvaluateDrift_Monotonic(t *testing.T) {
	without := domain.EvaluateDrift(classify(t, "api/openapi.yaml", "sdk/go/client.go"))
	with := domain.EvaluateDrift(classify(t, "api/openapi.yaml", "sdk/go/client.go", "docs/reference/api.md"))

	assert.Equal(t, domain.DriftDetected, without.Status)
	assert.Equal(t, domain.DriftOK, with.Status)
}
