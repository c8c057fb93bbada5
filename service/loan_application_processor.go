package service

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"loan-decision/domain"
)

// LoanApplicationProcessor decides loan applications by combining an identity
// check with a credit score. It holds no per-application state and does no
// locking of its own.
type LoanApplicationProcessor struct {
	identityVerifier IdentityVerifier
	creditScorer     CreditScorer
	policy           DecisionPolicy
	logger           *slog.Logger
}

func NewLoanApplicationProcessor(
	identityVerifier IdentityVerifier,
	creditScorer CreditScorer,
) *LoanApplicationProcessor {
	return &LoanApplicationProcessor{
		identityVerifier: identityVerifier,
		creditScorer:     creditScorer,
		policy:           DefaultDecisionPolicy(),
		logger:           slog.Default(),
	}
}

func (p *LoanApplicationProcessor) SetPolicy(policy DecisionPolicy) { p.policy = policy }
func (p *LoanApplicationProcessor) SetLogger(logger *slog.Logger)   { p.logger = logger }

func (p *LoanApplicationProcessor) Policy() DecisionPolicy { return p.policy }

// Process recomputes the outcome of the application from scratch.
//
// A salary under the policy minimum declines the application without touching
// either capability. Credit scoring failures decline the application and are
// not returned. Identity verifier failures are returned to the caller and leave
// the outcome untouched.
func (p *LoanApplicationProcessor) Process(application *domain.LoanApplication) error {
	logger := p.logger.With("application_id", application.ID())

	if !p.policy.salaryQualifies(application.ApplicantSalary()) {
		logger.Info("loan application declined: salary below minimum",
			"salary", application.ApplicantSalary().String(),
			"minimum_salary", p.policy.MinimumSalary.String())
		application.SetOutcome(domain.OutcomeDeclined)
		return nil
	}

	if err := p.identityVerifier.Initialize(); err != nil {
		return errors.Wrap(errors.Mark(err, ErrIdentityVerification), "initializing identity verifier")
	}

	isValidIdentity, err := p.identityVerifier.Validate(
		application.ApplicantName(),
		application.ApplicantAge(),
		application.ApplicantAddress(),
	)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, ErrIdentityVerification),
			"validating identity of application %d", application.ID())
	}

	if err := p.creditScorer.CalculateScore(
		application.ApplicantName(),
		application.ApplicantAddress(),
	); err != nil {
		logger.Warn("loan application declined: credit scoring failed",
			"error", errors.Mark(err, ErrCreditScoring).Error())
		application.SetOutcome(domain.OutcomeDeclined)
		return nil
	}

	score := p.creditScorer.ScoreResult().ScoreValue.Score

	outcome := domain.OutcomeDeclined
	if isValidIdentity && p.policy.scoreQualifies(score) {
		outcome = domain.OutcomeAccepted
	}
	application.SetOutcome(outcome)

	logger.Info("loan application processed",
		"outcome", outcome.String(),
		"valid_identity", isValidIdentity,
		"score", score,
		"strict_score", p.policy.StrictScore)

	return nil
}
