package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/arunsingh-creator/CodeBloom/internal/domain/models"
	"github.com/arunsingh-creator/CodeBloom/internal/ml"
	"github.com/arunsingh-creator/CodeBloom/internal/services/confidence"
	"github.com/arunsingh-creator/CodeBloom/internal/services/features"
	"github.com/arunsingh-creator/CodeBloom/internal/services/importance"
	"github.com/arunsingh-creator/CodeBloom/internal/services/insights"
	"github.com/arunsingh-creator/CodeBloom/pkg/logger"
	"github.com/arunsingh-creator/CodeBloom/pkg/metrics"
	"github.com/arunsingh-creator/CodeBloom/pkg/util"
)

// Plausible output bounds in days. Model output outside this range is
// clamped and the clamp is surfaced as an insight.
const (
	minPlausibleLength = 21
	maxPlausibleLength = 45
)

// Agreement re-prediction uses the most recent half of the history, but
// never fewer records than this.
const minAgreementWindow = 3

var (
	// ErrEmptyHistory indicates a request with no cycle records at all.
	ErrEmptyHistory = errors.New("cycle history is empty")
	// ErrHistoryTooShort indicates fewer records than the configured minimum.
	ErrHistoryTooShort = errors.New("cycle history is too short")
	// ErrHistoryTooLong indicates more records than the configured maximum.
	ErrHistoryTooLong = errors.New("cycle history exceeds the maximum length")
	// ErrModelUnavailable indicates the inference models failed to build.
	ErrModelUnavailable = errors.New("prediction model is unavailable")
)

// PredictorConfig carries the tunables of the prediction pipeline.
type PredictorConfig struct {
	MinHistory int
	MaxHistory int
	HiddenSize int
	WeightSeed int64
}

func (c *PredictorConfig) setDefaults() {
	if c.MinHistory == 0 {
		c.MinHistory = 4
	}
	if c.MaxHistory == 0 {
		c.MaxHistory = 500
	}
	if c.HiddenSize == 0 {
		c.HiddenSize = ml.DefaultHiddenSize
	}
	if c.WeightSeed == 0 {
		c.WeightSeed = ml.DefaultWeightSeed
	}
}

// CyclePredictor orchestrates the prediction pipeline: feature extraction,
// sequence model inference, confidence estimation, insight generation,
// feature importance and date projection. It holds one read-only model per
// feature schema and is safe for concurrent use.
type CyclePredictor struct {
	cfg       PredictorConfig
	log       *logger.Logger
	metrics   *metrics.Recorder
	estimator *confidence.Estimator
	ranker    *importance.Ranker

	basic    *ml.Model
	enhanced *ml.Model
}

// NewCyclePredictor builds the models from the configured seed. Both
// schema modes share the seed so results stay reproducible across
// restarts.
func NewCyclePredictor(cfg PredictorConfig, log *logger.Logger, rec *metrics.Recorder) (*CyclePredictor, error) {
	cfg.setDefaults()

	basic, err := ml.NewModel(features.Width(models.ModeBasic), cfg.HiddenSize, cfg.WeightSeed)
	if err != nil {
		return nil, fmt.Errorf("build basic model: %w", err)
	}
	enhanced, err := ml.NewModel(features.Width(models.ModeEnhanced), cfg.HiddenSize, cfg.WeightSeed)
	if err != nil {
		return nil, fmt.Errorf("build enhanced model: %w", err)
	}

	return &CyclePredictor{
		cfg:       cfg,
		log:       log,
		metrics:   rec,
		estimator: confidence.New(),
		ranker:    importance.New(),
		basic:     basic,
		enhanced:  enhanced,
	}, nil
}

// ModelReady reports whether the inference models are loaded.
func (p *CyclePredictor) ModelReady() bool {
	return p.basic != nil && p.enhanced != nil
}

// Predict runs the basic pipeline over cycle lengths only.
func (p *CyclePredictor) Predict(ctx context.Context, lengths []int, lastPeriod string, framework string) (*models.PredictionResult, error) {
	if err := p.checkHistory(len(lengths)); err != nil {
		return nil, err
	}
	lastDate, err := util.ParseCivilDate(lastPeriod)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	history := models.LengthHistory(lengths)

	days, _, err := p.infer(ctx, history, models.ModeBasic)
	if err != nil {
		return nil, err
	}

	res := p.assemble(history, days, lastDate, framework)

	p.metrics.RecordPrediction(string(models.ModeBasic), res.PredictedCycleLength, 0)
	p.metrics.RecordInferenceLatency(string(models.ModeBasic), time.Since(start).Seconds())
	p.log.Info("prediction served",
		logger.String("mode", string(models.ModeBasic)),
		logger.Int("records", len(lengths)),
		logger.Int("predicted_days", res.PredictedCycleLength),
	)

	return res, nil
}

// PredictEnhanced runs the full pipeline over multi-feature records,
// adding confidence, insights and feature importance to the result.
func (p *CyclePredictor) PredictEnhanced(ctx context.Context, history models.CycleHistory, lastPeriod string, framework string) (*models.PredictionResult, error) {
	if err := p.checkHistory(len(history)); err != nil {
		return nil, err
	}
	lastDate, err := util.ParseCivilDate(lastPeriod)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	days, seq, err := p.infer(ctx, history, models.ModeEnhanced)
	if err != nil {
		return nil, err
	}

	res := p.assemble(history, days, lastDate, framework)
	clamped := res.PredictedCycleLength != roundDays(days)

	lengths := history.Lengths()
	score := math.Round(p.scoreEnhanced(lengths, days, seq)*10) / 10
	res.ConfidenceScore = score
	res.ConfidenceLevel = confidence.Level(score)
	res.DataQuality = confidence.DataQuality(len(history))

	summary := insights.Summarize(history)
	summary.PredictedLength = res.PredictedCycleLength
	summary.Confidence = score
	summary.Clamped = clamped
	res.Insights = insights.Generate(summary)

	neutrals := make([]float64, features.Width(models.ModeEnhanced))
	for i := range neutrals {
		neutrals[i] = features.Neutral
	}
	ranked, err := p.ranker.Rank(p.enhanced, seq, features.Names(models.ModeEnhanced), neutrals)
	if err != nil {
		return nil, fmt.Errorf("feature importance: %w", err)
	}
	res.FeatureImportance = ranked

	p.metrics.RecordPrediction(string(models.ModeEnhanced), res.PredictedCycleLength, score)
	p.metrics.RecordInferenceLatency(string(models.ModeEnhanced), time.Since(start).Seconds())
	p.log.Info("prediction served",
		logger.String("mode", string(models.ModeEnhanced)),
		logger.Int("records", len(history)),
		logger.Int("predicted_days", res.PredictedCycleLength),
		logger.Float64("confidence", score),
	)

	return res, nil
}

// infer extracts features and runs the mode's model, returning the raw
// predicted length in days along with the feature sequence.
func (p *CyclePredictor) infer(ctx context.Context, history models.CycleHistory, mode models.SchemaMode) (float64, [][]float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	if !p.ModelReady() {
		return 0, nil, ErrModelUnavailable
	}

	seq, err := features.ExtractSequence(history, mode)
	if err != nil {
		return 0, nil, err
	}

	model := p.basic
	if mode == models.ModeEnhanced {
		model = p.enhanced
	}
	norm, _, err := model.Forward(seq)
	if err != nil {
		return 0, nil, err
	}

	return features.DenormalizeLength(norm), seq, nil
}

// scoreEnhanced computes the enhanced confidence score, including the
// agreement check between the full history and its most recent half.
func (p *CyclePredictor) scoreEnhanced(lengths []int, fullDays float64, seq [][]float64) float64 {
	window := len(seq) / 2
	if window < minAgreementWindow {
		return p.estimator.Score(lengths)
	}

	norm, _, err := p.enhanced.Forward(seq[len(seq)-window:])
	if err != nil {
		return p.estimator.Score(lengths)
	}
	return p.estimator.ScoreWithAgreement(lengths, fullDays, features.DenormalizeLength(norm))
}

// assemble builds the shared part of a prediction result: clamped length,
// projected date, uncertainty interval and history statistics.
func (p *CyclePredictor) assemble(history models.CycleHistory, rawDays float64, lastDate time.Time, framework string) *models.PredictionResult {
	predicted := roundDays(rawDays)
	if predicted < minPlausibleLength {
		predicted = minPlausibleLength
	}
	if predicted > maxPlausibleLength {
		predicted = maxPlausibleLength
	}

	lengths := history.Lengths()
	std := features.StdDev(lengths)
	lo, hi := features.MinMax(lengths)

	nextPeriod := util.AddDays(lastDate, predicted)
	unc := int(std)

	if framework == "" {
		framework = "native"
	}

	return &models.PredictionResult{
		PredictedCycleLength: predicted,
		PredictedNextPeriod:  nextPeriod,
		Interval: models.ConfidenceInterval{
			PredictedDays: predicted,
			MinDays:       predicted - unc,
			MaxDays:       predicted + unc,
			EarliestDate:  util.FormatCivilDate(util.AddDays(nextPeriod, -unc)),
			LatestDate:    util.FormatCivilDate(util.AddDays(nextPeriod, unc)),
		},
		Statistics: models.HistoryStatistics{
			AverageCycleLength:  features.Mean(lengths),
			StdDeviation:        std,
			MinCycle:            lo,
			MaxCycle:            hi,
			TotalCyclesAnalyzed: len(lengths),
		},
		UncertaintyDays: std,
		FrameworkUsed:   framework,
	}
}

func (p *CyclePredictor) checkHistory(n int) error {
	switch {
	case n == 0:
		return ErrEmptyHistory
	case n < p.cfg.MinHistory:
		return fmt.Errorf("%w: need at least %d records, got %d", ErrHistoryTooShort, p.cfg.MinHistory, n)
	case n > p.cfg.MaxHistory:
		return fmt.Errorf("%w: at most %d records, got %d", ErrHistoryTooLong, p.cfg.MaxHistory, n)
	}
	return nil
}

func roundDays(days float64) int {
	return int(math.Round(days))
}
