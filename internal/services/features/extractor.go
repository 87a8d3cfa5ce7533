// Package features converts raw cycle records into the fixed-width numeric
// vectors consumed by the sequence model.
package features

import (
	"errors"
	"fmt"

	"github.com/arunsingh-creator/CodeBloom/internal/domain/models"
)

// Normalization bounds for cycle length in days. Fixed bounds keep the
// feature mapping schema-stable across requests, unlike per-request
// min/max scaling.
const (
	MinCycleLength = 15
	MaxCycleLength = 60
)

// Neutral is the midpoint default for missing optional scores. Missing
// data must not read as "no symptoms", so absent fields never map to zero.
const Neutral = 0.5

var (
	// ErrNonPositiveLength indicates a cycle length of zero or less.
	ErrNonPositiveLength = errors.New("cycle_length must be positive")
	// ErrUnknownFlow indicates a flow category outside light|medium|heavy.
	ErrUnknownFlow = errors.New("flow_intensity must be one of: light, medium, heavy")
)

// Feature names per schema mode, in vector order. Element 0 is always the
// normalized cycle length; the model anchors its prediction on it.
var (
	basicNames = []string{"cycle_length"}

	enhancedNames = []string{
		"cycle_length",
		"cramps",
		"mood_changes",
		"energy_level",
		"bloating",
		"headaches",
		"flow_intensity",
		"stress_level",
		"exercise_intensity",
		"sleep_quality",
		"weight_change",
	}
)

// Names returns the ordered feature names for a schema mode.
func Names(mode models.SchemaMode) []string {
	if mode == models.ModeEnhanced {
		return enhancedNames
	}
	return basicNames
}

// Width returns the fixed feature vector width for a schema mode.
func Width(mode models.SchemaMode) int {
	return len(Names(mode))
}

// NormalizeLength maps a cycle length in days onto [0,1].
func NormalizeLength(days float64) float64 {
	n := (days - MinCycleLength) / float64(MaxCycleLength-MinCycleLength)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// DenormalizeLength maps a normalized value back to days.
func DenormalizeLength(norm float64) float64 {
	return norm*float64(MaxCycleLength-MinCycleLength) + MinCycleLength
}

// Extract converts one cycle record into a feature vector for the given
// schema mode.
func Extract(rec models.CycleRecord, mode models.SchemaMode) ([]float64, error) {
	if rec.CycleLength <= 0 {
		return nil, ErrNonPositiveLength
	}

	if mode != models.ModeEnhanced {
		return []float64{NormalizeLength(float64(rec.CycleLength))}, nil
	}

	flow := Neutral
	if rec.Flow != "" {
		f, ok := models.ParseFlowIntensity(rec.Flow)
		if !ok {
			return nil, fmt.Errorf("%w: got %q", ErrUnknownFlow, rec.Flow)
		}
		flow = f.Ordinal()
	}

	vec := make([]float64, 0, len(enhancedNames))
	vec = append(vec, NormalizeLength(float64(rec.CycleLength)))

	var s models.SymptomScores
	if rec.Symptoms != nil {
		s = *rec.Symptoms
	}
	vec = append(vec,
		severity(s.Cramps),
		severity(s.MoodChanges),
		severity(s.EnergyLevel),
		severity(s.Bloating),
		severity(s.Headaches),
		flow,
	)

	var l models.LifestyleScores
	if rec.Lifestyle != nil {
		l = *rec.Lifestyle
	}
	vec = append(vec,
		severity(l.StressLevel),
		severity(l.ExerciseIntensity),
		severity(l.SleepQuality),
		weightChange(l.WeightChange),
	)

	return vec, nil
}

// ExtractSequence converts a chronological history into an ordered feature
// sequence. All vectors share the mode's fixed width.
func ExtractSequence(h models.CycleHistory, mode models.SchemaMode) ([][]float64, error) {
	seq := make([][]float64, 0, len(h))
	for i, rec := range h {
		vec, err := Extract(rec, mode)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		seq = append(seq, vec)
	}
	return seq, nil
}

// severity scales a 0-5 score to [0,1], defaulting to the neutral midpoint.
func severity(p *int) float64 {
	if p == nil {
		return Neutral
	}
	return float64(*p) / 5.0
}

// weightChange scales a -2..2 score to [0,1]; the midpoint encodes "stable".
func weightChange(p *int) float64 {
	if p == nil {
		return Neutral
	}
	return (float64(*p) + 2) / 4.0
}
