package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loan-decision/domain"
	"loan-decision/mocks"
	"loan-decision/repository"
)

func newTestScorer(bureau CreditBureau, cache repository.CacheRepository) *CachedCreditScorer {
	scorer := NewCachedCreditScorer(bureau, cache)
	scorer.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return scorer
}

func TestCachedCreditScorer_FetchesAndCaches(t *testing.T) {
	bureau := &mocks.CreditBureau{}
	bureau.On("FetchScore", "Sarah", sarahAddress).Return(640, nil).Once()
	cache := repository.NewMemoryCache()
	scorer := newTestScorer(bureau, cache)

	require.NoError(t, scorer.CalculateScore("Sarah", sarahAddress))
	assert.Equal(t, domain.NewScoreResult(640), scorer.ScoreResult())

	cached, ok := cache.Get(ScoreCacheKey("Sarah", sarahAddress))
	require.True(t, ok)
	assert.Equal(t, "640", cached)

	require.NoError(t, scorer.CalculateScore("Sarah", sarahAddress))
	assert.Equal(t, 640, scorer.ScoreResult().ScoreValue.Score)
	assert.Equal(t, 2, scorer.Count())
	bureau.AssertExpectations(t)
}

func TestCachedCreditScorer_BureauFailure(t *testing.T) {
	bureau := &mocks.CreditBureau{}
	bureau.On("FetchScore", mock.Anything, mock.Anything).Return(0, errors.New("bureau unavailable"))
	scorer := newTestScorer(bureau, repository.NewMemoryCache())

	err := scorer.CalculateScore("Sarah", sarahAddress)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCreditScoring))
	assert.Equal(t, domain.ScoreResult{}, scorer.ScoreResult())
	assert.Equal(t, 1, scorer.Count())
}

func TestCachedCreditScorer_CacheWriteFailureIsNotFatal(t *testing.T) {
	key := ScoreCacheKey("Sarah", sarahAddress)
	bureau := &mocks.CreditBureau{}
	bureau.On("FetchScore", "Sarah", sarahAddress).Return(512, nil)
	cache := &mocks.CacheRepository{}
	cache.On("Get", key).Return("", false)
	cache.On("Set", key, "512").Return(errors.New("redis down"))
	scorer := newTestScorer(bureau, cache)

	require.NoError(t, scorer.CalculateScore("Sarah", sarahAddress))
	assert.Equal(t, 512, scorer.ScoreResult().ScoreValue.Score)
	cache.AssertExpectations(t)
}

func TestCachedCreditScorer_IgnoresUnreadableCacheEntry(t *testing.T) {
	cache := repository.NewMemoryCache()
	require.NoError(t, cache.Set(ScoreCacheKey("Sarah", sarahAddress), "not-a-number"))
	bureau := &mocks.CreditBureau{}
	bureau.On("FetchScore", "Sarah", sarahAddress).Return(410, nil)
	scorer := newTestScorer(bureau, cache)

	require.NoError(t, scorer.CalculateScore("Sarah", sarahAddress))
	assert.Equal(t, 410, scorer.ScoreResult().ScoreValue.Score)
	bureau.AssertNumberOfCalls(t, "FetchScore", 1)
}

func TestScoreCacheKey_NormalizesApplicant(t *testing.T) {
	assert.Equal(t,
		ScoreCacheKey("Sarah", sarahAddress),
		ScoreCacheKey("  sarah ", "133 PLURALSIGHT DRIVE, DRAPER, UTAH"))
	assert.NotEqual(t, ScoreCacheKey("Sarah", sarahAddress), ScoreCacheKey("Sam", sarahAddress))
}

func TestHashCreditBureau(t *testing.T) {
	bureau := HashCreditBureau{}

	first, err := bureau.FetchScore("Sarah", sarahAddress)
	require.NoError(t, err)
	second, err := bureau.FetchScore("Sarah", sarahAddress)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 0)
	assert.LessOrEqual(t, first, MaxBureauScore)

	_, err = bureau.FetchScore(" ", sarahAddress)
	assert.True(t, errors.Is(err, ErrUnknownApplicant))
}
