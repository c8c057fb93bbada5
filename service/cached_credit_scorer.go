package service

import (
	"log/slog"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"

	"loan-decision/domain"
	"loan-decision/repository"
)

// CreditBureau is the external source of credit scores.
type CreditBureau interface {
	FetchScore(applicantName string, applicantAddress string) (int, error)
}

// CachedCreditScorer is the production CreditScorer. Scores fetched from the
// bureau are kept in the cache so repeated applications from the same
// applicant do not hit the bureau again.
type CachedCreditScorer struct {
	mu sync.Mutex

	bureau CreditBureau
	cache  repository.CacheRepository
	logger *slog.Logger

	result domain.ScoreResult
	count  int
}

func NewCachedCreditScorer(bureau CreditBureau, cache repository.CacheRepository) *CachedCreditScorer {
	return &CachedCreditScorer{
		bureau: bureau,
		cache:  cache,
		logger: slog.Default(),
	}
}

func (s *CachedCreditScorer) SetLogger(logger *slog.Logger) { s.logger = logger }

func (s *CachedCreditScorer) CalculateScore(applicantName string, applicantAddress string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	s.result = domain.ScoreResult{}

	key := ScoreCacheKey(applicantName, applicantAddress)
	if cached, ok := s.cache.Get(key); ok {
		score, err := strconv.Atoi(cached)
		if err == nil {
			s.result = domain.NewScoreResult(score)
			return nil
		}
		s.logger.Warn("ignoring unreadable cached score", "key", key, "error", err.Error())
	}

	score, err := s.bureau.FetchScore(applicantName, applicantAddress)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "fetching score from credit bureau"), ErrCreditScoring)
	}
	s.result = domain.NewScoreResult(score)

	// Not critical: the score is still usable for this calculation.
	if err := s.cache.Set(key, strconv.Itoa(score)); err != nil {
		s.logger.Warn("failed to cache credit score", "key", key, "error", err.Error())
	}
	return nil
}

func (s *CachedCreditScorer) ScoreResult() domain.ScoreResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

func (s *CachedCreditScorer) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// ScoreCacheKey is the cache key under which an applicant's score is stored.
func ScoreCacheKey(applicantName string, applicantAddress string) string {
	return "score:" + strconv.FormatUint(xxhash.Sum64String(applicantKey(applicantName, applicantAddress)), 16)
}
