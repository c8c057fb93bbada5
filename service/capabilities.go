package service

import (
	"github.com/cockroachdb/errors"

	"loan-decision/domain"
)

var (
	// ErrIdentityVerification marks failures coming out of the identity
	// capability. They propagate out of Process.
	ErrIdentityVerification = errors.New("identity verification failed")

	// ErrCreditScoring marks failures coming out of the credit capability.
	// Process absorbs them into a declined outcome.
	ErrCreditScoring = errors.New("credit scoring failed")
)

// IdentityVerifier validates the identity of an applicant.
type IdentityVerifier interface {
	Initialize() error
	Validate(applicantName string, applicantAge int, applicantAddress string) (bool, error)
}

// CreditScorer computes a credit score. The result of the last successful
// CalculateScore is available through ScoreResult, and Count reports how many
// times the scorer has been consulted.
type CreditScorer interface {
	CalculateScore(applicantName string, applicantAddress string) error
	ScoreResult() domain.ScoreResult
	Count() int
}
