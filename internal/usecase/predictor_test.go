package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/arunsingh-creator/CodeBloom/internal/domain/models"
	"github.com/arunsingh-creator/CodeBloom/internal/services/confidence"
	"github.com/arunsingh-creator/CodeBloom/pkg/logger"
	"github.com/arunsingh-creator/CodeBloom/pkg/metrics"
	"github.com/arunsingh-creator/CodeBloom/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	recorderOnce sync.Once
	testRecorder *metrics.Recorder
)

// sharedRecorder avoids duplicate Prometheus registration across tests.
func sharedRecorder() *metrics.Recorder {
	recorderOnce.Do(func() {
		testRecorder = metrics.New()
	})
	return testRecorder
}

func newTestPredictor(t *testing.T) *CyclePredictor {
	t.Helper()

	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	p, err := NewCyclePredictor(PredictorConfig{}, log, sharedRecorder())
	require.NoError(t, err)
	return p
}

func enhancedHistory(lengths []int) models.CycleHistory {
	cramps := 2
	stress := 3
	h := make(models.CycleHistory, len(lengths))
	for i, l := range lengths {
		h[i] = models.CycleRecord{
			CycleLength: l,
			Symptoms:    &models.SymptomScores{Cramps: &cramps},
			Flow:        "medium",
			Lifestyle:   &models.LifestyleScores{StressLevel: &stress},
		}
	}
	return h
}

func TestPredictBasic(t *testing.T) {
	p := newTestPredictor(t)

	res, err := p.Predict(context.Background(), []int{28, 30, 27, 29, 28}, "2025-01-15", "")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.PredictedCycleLength, 21)
	assert.LessOrEqual(t, res.PredictedCycleLength, 45)
	assert.Equal(t, "native", res.FrameworkUsed)

	assert.InDelta(t, 28.4, res.Statistics.AverageCycleLength, 1e-9)
	assert.Equal(t, 27, res.Statistics.MinCycle)
	assert.Equal(t, 30, res.Statistics.MaxCycle)
	assert.Equal(t, 5, res.Statistics.TotalCyclesAnalyzed)

	// projected date is the last period date plus the predicted length
	last, err := util.ParseCivilDate("2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, util.AddDays(last, res.PredictedCycleLength), res.PredictedNextPeriod)

	// interval is symmetric around the prediction
	unc := res.PredictedCycleLength - res.Interval.MinDays
	assert.Equal(t, res.PredictedCycleLength+unc, res.Interval.MaxDays)
	assert.Equal(t, res.PredictedCycleLength, res.Interval.PredictedDays)
}

func TestPredictIsDeterministic(t *testing.T) {
	p := newTestPredictor(t)

	lengths := []int{26, 31, 28, 29, 27, 30}
	a, err := p.Predict(context.Background(), lengths, "2025-03-01", "native")
	require.NoError(t, err)
	b, err := p.Predict(context.Background(), lengths, "2025-03-01", "native")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPredictStaysNearRecentHistory(t *testing.T) {
	p := newTestPredictor(t)

	res, err := p.Predict(context.Background(), []int{28, 28, 28, 28, 28, 28}, "2025-01-01", "")
	require.NoError(t, err)

	// the head adjusts the last observed length by a bounded residual
	assert.InDelta(t, 28, float64(res.PredictedCycleLength), 8)
}

func TestPredictValidation(t *testing.T) {
	p := newTestPredictor(t)
	ctx := context.Background()

	_, err := p.Predict(ctx, nil, "2025-01-15", "")
	assert.ErrorIs(t, err, ErrEmptyHistory)

	_, err = p.Predict(ctx, []int{28, 29, 30}, "2025-01-15", "")
	assert.ErrorIs(t, err, ErrHistoryTooShort)

	long := make([]int, 501)
	for i := range long {
		long[i] = 28
	}
	_, err = p.Predict(ctx, long, "2025-01-15", "")
	assert.ErrorIs(t, err, ErrHistoryTooLong)

	_, err = p.Predict(ctx, []int{28, 29, 30, 28}, "15/01/2025", "")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyHistory))
}

func TestPredictEnhanced(t *testing.T) {
	p := newTestPredictor(t)

	h := enhancedHistory([]int{28, 29, 28, 30, 28, 29, 28, 30})
	res, err := p.PredictEnhanced(context.Background(), h, "2025-01-15", "pytorch")
	require.NoError(t, err)

	assert.Equal(t, "pytorch", res.FrameworkUsed)
	assert.GreaterOrEqual(t, res.ConfidenceScore, 10.0)
	assert.LessOrEqual(t, res.ConfidenceScore, 99.0)
	assert.Equal(t, confidence.Level(res.ConfidenceScore), res.ConfidenceLevel)
	assert.Equal(t, "good", res.DataQuality)
	assert.NotEmpty(t, res.Insights)

	assert.Len(t, res.FeatureImportance, 11)
	sum := 0.0
	for _, w := range res.FeatureImportance {
		assert.GreaterOrEqual(t, w, 0.0)
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestEnhancedConfidenceFavorsStableHistory(t *testing.T) {
	p := newTestPredictor(t)
	ctx := context.Background()

	stable, err := p.PredictEnhanced(ctx,
		enhancedHistory([]int{28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}), "2025-01-15", "")
	require.NoError(t, err)

	variable, err := p.PredictEnhanced(ctx,
		enhancedHistory([]int{22, 38, 25, 41, 23, 39, 24, 40, 22, 41, 25, 38}), "2025-01-15", "")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, stable.ConfidenceScore, variable.ConfidenceScore)
}

func TestPredictEnhancedShortHistoryQuality(t *testing.T) {
	p := newTestPredictor(t)

	res, err := p.PredictEnhanced(context.Background(),
		enhancedHistory([]int{28, 29, 30, 28}), "2025-01-15", "")
	require.NoError(t, err)

	assert.Equal(t, "fair", res.DataQuality)
	assert.LessOrEqual(t, res.ConfidenceScore, 75.0)
}
