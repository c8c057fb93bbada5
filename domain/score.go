package domain

// ScoreValue is the numeric part of a credit score result.
type ScoreValue struct {
	Score int
}

// ScoreResult is what a credit scorer produces after a calculation.
type ScoreResult struct {
	ScoreValue ScoreValue
}

func NewScoreResult(score int) ScoreResult {
	return ScoreResult{ScoreValue: ScoreValue{Score: score}}
}
