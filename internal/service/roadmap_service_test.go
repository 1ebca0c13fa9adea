package service

import (
	"context"
	"testing"

	"edubridge_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVisualStepsBareArray(t *testing.T) {
	steps := decodeVisualSteps(`[{"title":"A","description":"a"},{"title":"B"}]`)

	require.Len(t, steps, 2)
	assert.Equal(t, "A", steps[0].Title)
	assert.Equal(t, "a", steps[0].Description)
}

func TestDecodeVisualStepsFencedJSON(t *testing.T) {
	content := "Here is your roadmap:\n```json\n[{\"title\":\"A\"}]\n```\nEnjoy!"
	steps := decodeVisualSteps(content)

	require.Len(t, steps, 1)
	assert.Equal(t, "A", steps[0].Title)
}

func TestDecodeVisualStepsStepsWrapper(t *testing.T) {
	steps := decodeVisualSteps(`{"steps":[{"title":"A"}]}`)
	require.Len(t, steps, 1)
	assert.Equal(t, "A", steps[0].Title)
}

func TestDecodeVisualStepsRoadmapWrapper(t *testing.T) {
	steps := decodeVisualSteps(`{"roadmap":[{"title":"A"}]}`)
	require.Len(t, steps, 1)
}

func TestDecodeVisualStepsAnyArrayKey(t *testing.T) {
	steps := decodeVisualSteps(`{"milestones":[{"title":"A"}]}`)
	require.Len(t, steps, 1)
	assert.Equal(t, "A", steps[0].Title)
}

func TestDecodeVisualStepsProseReturnsNil(t *testing.T) {
	assert.Nil(t, decodeVisualSteps("Sure! First learn the basics, then build projects."))
}

func TestIllustrationURLEscapesTopic(t *testing.T) {
	url := IllustrationURL("Machine Learning")

	assert.Equal(t,
		"https://image.pollinations.ai/prompt/learning+roadmap+illustration+for+Machine+Learning?width=1024&height=1024&nologo=true",
		url)
}

func TestGenerationSequenceGuard(t *testing.T) {
	rdb := newTestRedis(t)
	svc := &RoadmapService{rdb: rdb}
	ctx := context.Background()
	userID := uint(3)

	first := svc.beginGeneration(ctx, userID)
	assert.Equal(t, int64(1), first)

	// No newer request yet: the first generation is still current.
	require.NoError(t, svc.checkCurrent(ctx, userID, first))

	second := svc.beginGeneration(ctx, userID)
	assert.Equal(t, int64(2), second)

	// The second request overtook the first.
	assert.ErrorIs(t, svc.checkCurrent(ctx, userID, first), util.ErrStaleGeneration)
	require.NoError(t, svc.checkCurrent(ctx, userID, second))
}

func TestLatestRoadmapRoundTrip(t *testing.T) {
	rdb := newTestRedis(t)
	svc := &RoadmapService{rdb: rdb}
	ctx := context.Background()
	userID := uint(4)

	_, err := svc.Latest(ctx, userID)
	assert.ErrorIs(t, err, util.ErrNoRoadmap)

	stored := &RoadmapResult{
		Roadmap: "Phase 1: Research",
		Steps:   []ParsedStep{{Step: "Phase 1", Description: "Research", Duration: "2-4 weeks"}},
	}
	svc.cacheLatest(ctx, userID, stored)

	got, err := svc.Latest(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestSequenceGuardDegradesWhenRedisDown(t *testing.T) {
	rdb := newTestRedis(t)
	svc := &RoadmapService{rdb: rdb}
	ctx := context.Background()

	// A zero sequence means the counter could not be bumped; the guard
	// must not block generation in that case.
	require.NoError(t, svc.checkCurrent(ctx, uint(3), 0))
}
