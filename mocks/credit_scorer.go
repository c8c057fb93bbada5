package mocks

import (
	"github.com/stretchr/testify/mock"

	"loan-decision/domain"
)

// CreditScorer counts its own consultations like a real scorer does, so tests
// can observe Count without setting it up.
type CreditScorer struct {
	mock.Mock
	count int
}

func (m *CreditScorer) CalculateScore(applicantName string, applicantAddress string) error {
	m.count++
	args := m.Called(applicantName, applicantAddress)
	return args.Error(0)
}

func (m *CreditScorer) ScoreResult() domain.ScoreResult {
	args := m.Called()
	return args.Get(0).(domain.ScoreResult)
}

func (m *CreditScorer) Count() int {
	return m.count
}

type CreditBureau struct {
	mock.Mock
}

func (m *CreditBureau) FetchScore(applicantName string, applicantAddress string) (int, error) {
	args := m.Called(applicantName, applicantAddress)
	return args.Int(0), args.Error(1)
}
