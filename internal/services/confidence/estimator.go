// Package confidence scores prediction reliability on a 0-100 scale from
// history stability signals. The score is a bounded heuristic, not a
// statistical probability of correctness.
package confidence

import (
	"math"

	"github.com/arunsingh-creator/CodeBloom/internal/services/features"
)

const (
	baseScore = 70.0
	minScore  = 10.0
	maxScore  = 99.0

	// Histories shorter than this cap the achievable score.
	minStableHistory = 6
	shortHistoryCap  = 75.0

	// Enhanced mode: penalty per day of disagreement between the
	// short-window and full-history re-prediction, beyond a one-day
	// tolerance.
	agreementTolerance = 1.0
	agreementPenalty   = 5.0
	maxAgreementLoss   = 15.0
)

// Estimator derives confidence scores from cycle-length history.
type Estimator struct{}

func New() *Estimator { return &Estimator{} }

// Score implements the basic policy: higher historical variance lowers
// confidence, longer history raises it, and short histories cap the
// maximum. The result is always within [0,100].
func (e *Estimator) Score(lengths []int) float64 {
	score := baseScore

	std := features.StdDev(lengths)
	switch {
	case std < 2.0:
		score += 15
	case std < 4.0:
		score += 5
	case std > 6.0:
		score -= 10
	}

	switch {
	case len(lengths) > 10:
		score += 10
	case len(lengths) > minStableHistory:
		score += 5
	}

	if len(lengths) < minStableHistory && score > shortHistoryCap {
		score = shortHistoryCap
	}

	return clamp(score)
}

// ScoreWithAgreement implements the enhanced policy: the basic score minus
// a penalty for disagreement between a re-prediction on the most recent
// sub-window and the full-history prediction, both in days.
func (e *Estimator) ScoreWithAgreement(lengths []int, fullDays, shortWindowDays float64) float64 {
	score := e.Score(lengths)

	gap := math.Abs(fullDays - shortWindowDays)
	if gap > agreementTolerance {
		loss := (gap - agreementTolerance) * agreementPenalty
		if loss > maxAgreementLoss {
			loss = maxAgreementLoss
		}
		score -= loss
	}

	return clamp(score)
}

// Level buckets a score into low, medium or high.
func Level(score float64) string {
	switch {
	case score >= 80:
		return "high"
	case score >= 60:
		return "medium"
	default:
		return "low"
	}
}

// DataQuality grades the history by record count.
func DataQuality(records int) string {
	if records >= minStableHistory {
		return "good"
	}
	return "fair"
}

func clamp(score float64) float64 {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
