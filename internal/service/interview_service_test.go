package service

import (
	"context"
	"testing"

	"edubridge_backend/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAnswerMonotonicity(t *testing.T) {
	keywords := []string{"alpha", "beta", "gamma", "delta"}

	cases := []struct {
		answer string
		want   int
	}{
		{"nothing relevant", 20},
		{"alpha", 40},
		{"alpha and beta", 60},
		{"alpha beta gamma", 80},
		{"alpha beta gamma delta", 100},
	}
	for _, tc := range cases {
		_, score := ScoreAnswer(tc.answer, keywords, nil)
		assert.Equal(t, tc.want, score, "answer %q", tc.answer)
	}
}

func TestScoreAnswerCaseInsensitiveContainment(t *testing.T) {
	_, score := ScoreAnswer("I used PYTHON daily", []string{"Python"}, nil)
	assert.Equal(t, 40, score)
}

func TestScoreAnswerExpertBonusUncapped(t *testing.T) {
	keywords := []string{"python", "pandas", "numpy", "statistics"}
	skills := []model.Skill{{Name: "Python", Level: model.SkillExpert}}

	feedback, score := ScoreAnswer("python pandas numpy statistics", keywords, skills)

	// 4 matches cap the base at 100; the expert bonus lands on top without
	// re-capping.
	assert.Equal(t, 110, score)
	assert.Contains(t, feedback, "Great! I noticed you mentioned skills in python.")
	assert.Contains(t, feedback, `"Expert" level in Python`)
}

func TestScoreAnswerBeginnerSkillNoBonus(t *testing.T) {
	keywords := []string{"python"}
	skills := []model.Skill{{Name: "Python", Level: model.SkillBeginner}}

	_, score := ScoreAnswer("python", keywords, skills)
	assert.Equal(t, 40, score)
}

func TestScoreAnswerSuggestsFirstTwoKeywords(t *testing.T) {
	keywords := []string{"react", "hooks", "state"}

	feedback, _ := ScoreAnswer("I like react", keywords, nil)
	assert.Contains(t, feedback, "Consider mentioning more about react and hooks in your answer.")
}

func TestScoreAnswerPositiveReinforcementAtThreeMatches(t *testing.T) {
	keywords := []string{"react", "hooks", "state", "props"}

	feedback, _ := ScoreAnswer("react hooks state", keywords, nil)
	assert.Contains(t, feedback, "Your answer covers many important aspects!")
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCompletionIdempotentAndMarketReadyOnce(t *testing.T) {
	rdb := newTestRedis(t)
	svc := &InterviewService{rdb: rdb}
	ctx := context.Background()
	userID := uint(7)

	// Five distinct questions, the third submitted twice.
	for _, qid := range []uint{1, 2, 3, 3, 4} {
		require.NoError(t, rdb.SAdd(ctx, completedKey(userID), qid).Err())
	}
	count, err := rdb.SCard(ctx, completedKey(userID)).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(4), count, "duplicate submission must not grow the set")

	require.NoError(t, rdb.SAdd(ctx, completedKey(userID), uint(5)).Err())

	fired, err := rdb.SetNX(ctx, marketReadyKey(userID), 1, 0).Result()
	require.NoError(t, err)
	assert.True(t, fired, "milestone fires when the fifth question lands")

	fired, err = rdb.SetNX(ctx, marketReadyKey(userID), 1, 0).Result()
	require.NoError(t, err)
	assert.False(t, fired, "milestone must not fire twice")

	progress, err := svc.Progress(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 5, progress.CompletedCount)
	assert.True(t, progress.MarketReady)
}

func TestResetClearsCompletionState(t *testing.T) {
	rdb := newTestRedis(t)
	svc := &InterviewService{rdb: rdb}
	ctx := context.Background()
	userID := uint(9)

	require.NoError(t, rdb.SAdd(ctx, completedKey(userID), 1, 2, 3, 4, 5).Err())
	require.NoError(t, rdb.Set(ctx, marketReadyKey(userID), 1, 0).Err())

	require.NoError(t, svc.Reset(ctx, userID))

	progress, err := svc.Progress(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, progress.CompletedCount)
	assert.False(t, progress.MarketReady)
}
