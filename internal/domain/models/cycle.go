package models

import (
	"strings"
	"time"
)

// FlowIntensity is a coarse ordinal category of menstrual flow volume.
type FlowIntensity string

const (
	FlowLight  FlowIntensity = "light"
	FlowMedium FlowIntensity = "medium"
	FlowHeavy  FlowIntensity = "heavy"
)

// ParseFlowIntensity parses a flow category case-insensitively.
func ParseFlowIntensity(s string) (FlowIntensity, bool) {
	switch FlowIntensity(strings.ToLower(s)) {
	case FlowLight:
		return FlowLight, true
	case FlowMedium:
		return FlowMedium, true
	case FlowHeavy:
		return FlowHeavy, true
	}
	return "", false
}

// Ordinal encodes flow volume on a [0,1] scale. Flow is ordered, so an
// ordinal encoding is used instead of one-hot.
func (f FlowIntensity) Ordinal() float64 {
	switch f {
	case FlowLight:
		return 0
	case FlowMedium:
		return 0.5
	case FlowHeavy:
		return 1
	}
	return 0.5
}

// SymptomScores holds per-cycle symptom severities on a 0-5 scale.
// Nil pointers mean the symptom was not tracked for that cycle.
type SymptomScores struct {
	Cramps      *int
	MoodChanges *int
	EnergyLevel *int
	Bloating    *int
	Headaches   *int
}

// LifestyleScores holds per-cycle lifestyle factors. Scores are on a 0-5
// scale except WeightChange, which is -2..2 (0 = stable).
type LifestyleScores struct {
	StressLevel       *int
	ExerciseIntensity *int
	SleepQuality      *int
	WeightChange      *int
}

// CycleRecord is one tracked menstrual cycle. Immutable once built; owned
// by a single prediction request.
type CycleRecord struct {
	CycleLength int       // days between this period start and the next
	Date        time.Time // this cycle's period start date
	Symptoms    *SymptomScores
	Flow        string // raw flow category; validated at feature extraction
	Lifestyle   *LifestyleScores
}

// CycleHistory is a chronological, ordered sequence of cycle records.
// Order is significant: recency matters to the sequence encoder.
type CycleHistory []CycleRecord

// Lengths returns the cycle lengths in chronological order.
func (h CycleHistory) Lengths() []int {
	out := make([]int, len(h))
	for i, r := range h {
		out[i] = r.CycleLength
	}
	return out
}

// LengthHistory builds a degenerate history carrying only cycle lengths,
// used by the basic prediction path.
func LengthHistory(lengths []int) CycleHistory {
	h := make(CycleHistory, len(lengths))
	for i, l := range lengths {
		h[i] = CycleRecord{CycleLength: l}
	}
	return h
}
