package domain_test

import (
	"testing"

	"github.com/docsgov/docsgov/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicyPack_IsValid(t *testing.T) {
	pack := domain.DefaultPolicyPack()
	require.NoError(t, pack.Validate())
	assert.Equal(t, "default", pack.Name)
	assert.Equal(t, 80, pack.KPISLA.MinQualityScore)
	assert.InDelta(t, 15.0, pack.KPISLA.MaxStalePct, 0.001)
	assert.Equal(t, 8, pack.KPISLA.MaxHighPriorityGaps)
	assert.Equal(t, 5, pack.KPISLA.MaxQualityScoreDrop)
	assert.Equal(t, 180, pack.Gaps.StaleAfterDays)
}

func TestValidate_EmptyPatternListIsFatal(t *testing.T) {
	pack := domain.DefaultPolicyPack()
	pack.DocsContract.DocPatterns = nil

	err := pack.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doc_patterns")
}

func TestValidate_EmptyPatternString(t *testing.T) {
	pack := domain.DefaultPolicyPack()
	pack.Drift.SDKPatterns = []string{"sdk/**", ""}

	err := pack.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sdk_patterns")
}

func TestValidate_InvalidGlob(t *testing.T) {
	pack := domain.DefaultPolicyPack()
	pack.Drift.OpenAPIPatterns = []string{"api/[unclosed"}

	err := pack.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob")
}

func TestValidate_ThresholdBounds(t *testing.T) {
	pack := domain.DefaultPolicyPack()
	pack.KPISLA.MinQualityScore = 120
	assert.Error(t, pack.Validate())

	pack = domain.DefaultPolicyPack()
	pack.KPISLA.MaxStalePct = -1
	assert.Error(t, pack.Validate())

	pack = domain.DefaultPolicyPack()
	pack.KPISLA.MaxHighPriorityGaps = -3
	assert.Error(t, pack.Validate())
}

func TestValidate_FeedWithoutURL(t *testing.T) {
	pack := domain.DefaultPolicyPack()
	pack.Gaps.CommunityFeeds = []domain.FeedSpec{{Name: "questions"}}

	err := pack.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "community_feeds")
}
