package service

import "github.com/shopspring/decimal"

// DecisionPolicy holds the thresholds the processor decides against.
type DecisionPolicy struct {
	MinimumSalary   decimal.Decimal
	AcceptanceScore int
	// StrictScore requires the score to exceed AcceptanceScore instead of
	// merely reaching it.
	StrictScore bool
}

func DefaultDecisionPolicy() DecisionPolicy {
	return DecisionPolicy{
		MinimumSalary:   decimal.NewFromInt(MinimumSalary),
		AcceptanceScore: AcceptanceScore,
	}
}

func (p DecisionPolicy) salaryQualifies(salary decimal.Decimal) bool {
	return !salary.LessThan(p.MinimumSalary)
}

func (p DecisionPolicy) scoreQualifies(score int) bool {
	if p.StrictScore {
		return score > p.AcceptanceScore
	}
	return score >= p.AcceptanceScore
}
