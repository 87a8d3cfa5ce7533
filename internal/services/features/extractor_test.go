package features

import (
	"errors"
	"math"
	"testing"

	"github.com/arunsingh-creator/CodeBloom/internal/domain/models"
)

func intp(v int) *int { return &v }

func TestExtractBasic(t *testing.T) {
	vec, err := Extract(models.CycleRecord{CycleLength: 28}, models.ModeBasic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 1 {
		t.Fatalf("unexpected width %d", len(vec))
	}
	want := (28.0 - MinCycleLength) / float64(MaxCycleLength-MinCycleLength)
	if math.Abs(vec[0]-want) > 1e-12 {
		t.Fatalf("unexpected normalized length %v", vec[0])
	}
}

func TestExtractEnhancedFullRecord(t *testing.T) {
	rec := models.CycleRecord{
		CycleLength: 30,
		Symptoms: &models.SymptomScores{
			Cramps:      intp(3),
			MoodChanges: intp(2),
			EnergyLevel: intp(4),
			Bloating:    intp(0),
			Headaches:   intp(5),
		},
		Flow: "HEAVY",
		Lifestyle: &models.LifestyleScores{
			StressLevel:       intp(2),
			ExerciseIntensity: intp(4),
			SleepQuality:      intp(5),
			WeightChange:      intp(-2),
		},
	}

	vec, err := Extract(rec, models.ModeEnhanced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != Width(models.ModeEnhanced) {
		t.Fatalf("unexpected width %d", len(vec))
	}

	// flow "HEAVY" parses case-insensitively to ordinal 1.0
	if vec[6] != 1.0 {
		t.Fatalf("unexpected flow encoding %v", vec[6])
	}
	// cramps 3/5
	if math.Abs(vec[1]-0.6) > 1e-12 {
		t.Fatalf("unexpected cramps encoding %v", vec[1])
	}
	// weight change -2 scales to 0
	if vec[10] != 0 {
		t.Fatalf("unexpected weight change encoding %v", vec[10])
	}
}

func TestExtractMissingFieldsDefaultToNeutral(t *testing.T) {
	vec, err := Extract(models.CycleRecord{CycleLength: 28}, models.ModeEnhanced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Every slot past cycle_length is missing and must read neutral,
	// never zero.
	for i := 1; i < len(vec); i++ {
		if vec[i] != Neutral {
			t.Fatalf("slot %d: got %v, want neutral", i, vec[i])
		}
	}
}

func TestExtractRejectsNonPositiveLength(t *testing.T) {
	for _, l := range []int{0, -5} {
		if _, err := Extract(models.CycleRecord{CycleLength: l}, models.ModeBasic); !errors.Is(err, ErrNonPositiveLength) {
			t.Fatalf("length %d: expected ErrNonPositiveLength, got %v", l, err)
		}
	}
}

func TestExtractRejectsUnknownFlow(t *testing.T) {
	rec := models.CycleRecord{CycleLength: 28, Flow: "unknown"}
	if _, err := Extract(rec, models.ModeEnhanced); !errors.Is(err, ErrUnknownFlow) {
		t.Fatalf("expected ErrUnknownFlow, got %v", err)
	}
}

func TestExtractSequenceFixedWidth(t *testing.T) {
	h := models.CycleHistory{
		{CycleLength: 28, Flow: "light"},
		{CycleLength: 30, Symptoms: &models.SymptomScores{Cramps: intp(1)}},
		{CycleLength: 27},
	}

	seq, err := ExtractSequence(h, models.ModeEnhanced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, vec := range seq {
		if len(vec) != Width(models.ModeEnhanced) {
			t.Fatalf("record %d: width %d", i, len(vec))
		}
	}
}

func TestNormalizeDenormalizeRoundTrip(t *testing.T) {
	for _, days := range []float64{15, 21, 28, 45, 60} {
		got := DenormalizeLength(NormalizeLength(days))
		if math.Abs(got-days) > 1e-9 {
			t.Fatalf("round trip for %v gave %v", days, got)
		}
	}
}

func TestStats(t *testing.T) {
	xs := []int{28, 30, 27, 29, 28}
	if math.Abs(Mean(xs)-28.4) > 1e-9 {
		t.Fatalf("unexpected mean %v", Mean(xs))
	}
	lo, hi := MinMax(xs)
	if lo != 27 || hi != 30 {
		t.Fatalf("unexpected min/max %d %d", lo, hi)
	}
	if StdDev([]int{5}) != 0 {
		t.Fatalf("single-element std must be 0")
	}
	flat := StdDev([]int{28, 28, 28, 28})
	if flat != 0 {
		t.Fatalf("flat std must be 0, got %v", flat)
	}
}
