// Package insights turns feature patterns into human-readable advisory
// strings via a static, ordered rule table. Every matching rule fires, in
// table order, and duplicates are removed. Messages are advisory only:
// no rule may state a diagnosis or prescribe treatment.
package insights

import (
	"fmt"

	"github.com/arunsingh-creator/CodeBloom/internal/domain/models"
	"github.com/arunsingh-creator/CodeBloom/internal/services/features"
)

// Summary is the evaluated view of one prediction the rule predicates see.
type Summary struct {
	AvgLength float64
	StdDev    float64
	Records   int

	// Recent feature averages on the extractor's [0,1] scale; the Has*
	// flags report whether the factor was tracked at all.
	AvgStress  float64
	HasStress  bool
	AvgSleep   float64
	HasSleep   bool
	AvgCramps  float64
	HasCramps  bool
	SymptomLog int // records with any symptom data

	PredictedLength int
	Confidence      float64
	Clamped         bool
}

type rule struct {
	when    func(Summary) bool
	message func(Summary) string
}

func static(msg string) func(Summary) string {
	return func(Summary) string { return msg }
}

// ruleTable is evaluated top to bottom; order is the priority order of the
// resulting insight list.
var ruleTable = []rule{
	{
		when: func(s Summary) bool { return s.Clamped },
		message: static("The model estimate fell outside the typical 21-45 day range and was adjusted to the nearest plausible value; treat this prediction with extra caution."),
	},
	{
		when:    func(s Summary) bool { return s.AvgLength > 0 && s.AvgLength < 26 },
		message: static("Your cycle is shorter than average."),
	},
	{
		when:    func(s Summary) bool { return s.AvgLength > 32 },
		message: static("Your cycle is longer than average."),
	},
	{
		when:    func(s Summary) bool { return s.AvgLength >= 26 && s.AvgLength <= 32 },
		message: static("Your cycle length is within the normal range."),
	},
	{
		when:    func(s Summary) bool { return s.StdDev > 5 },
		message: static("Your cycle length varies significantly. Consistent tracking helps the model follow the variation."),
	},
	{
		when:    func(s Summary) bool { return s.StdDev <= 5 },
		message: static("Your cycle is quite regular."),
	},
	{
		when:    func(s Summary) bool { return s.HasStress && s.AvgStress > 0.6 },
		message: static("Your recent stress levels are elevated. Stress can influence cycle timing; relaxation techniques and regular rest may help."),
	},
	{
		when:    func(s Summary) bool { return s.HasSleep && s.AvgSleep < 0.4 },
		message: static("Your recent sleep quality has been low. Sleep affects hormonal balance; a steadier sleep routine may help."),
	},
	{
		when:    func(s Summary) bool { return s.HasCramps && s.AvgCramps > 0.6 },
		message: static("You have been reporting strong cramps. If the discomfort persists, consider discussing it with a healthcare provider."),
	},
	{
		when: func(s Summary) bool { return s.SymptomLog > 0 },
		message: func(s Summary) string {
			return fmt.Sprintf("You have tracked symptoms for %d cycles.", s.SymptomLog)
		},
	},
	{
		when:    func(s Summary) bool { return s.Confidence > 0 && s.Confidence < 50 },
		message: static("Prediction confidence is low; logging more cycles will improve accuracy."),
	},
}

// Generate evaluates the rule table against the summary. All matching
// rules fire; the result keeps table order with duplicates removed.
func Generate(s Summary) []string {
	out := make([]string, 0, 4)
	seen := make(map[string]struct{})

	for _, r := range ruleTable {
		if !r.when(s) {
			continue
		}
		msg := r.message(s)
		if _, dup := seen[msg]; dup {
			continue
		}
		seen[msg] = struct{}{}
		out = append(out, msg)
	}

	return out
}

// recentWindow bounds how many trailing records feed the recent averages.
const recentWindow = 6

// Summarize computes the history-derived part of a Summary. Predicted
// length, confidence and the clamp flag are filled in by the caller.
func Summarize(h models.CycleHistory) Summary {
	lengths := h.Lengths()
	s := Summary{
		AvgLength: features.Mean(lengths),
		StdDev:    features.StdDev(lengths),
		Records:   len(h),
	}

	start := len(h) - recentWindow
	if start < 0 {
		start = 0
	}

	var stressSum, sleepSum, crampSum float64
	var stressN, sleepN, crampN int
	for _, rec := range h[start:] {
		if rec.Lifestyle != nil {
			if rec.Lifestyle.StressLevel != nil {
				stressSum += float64(*rec.Lifestyle.StressLevel) / 5.0
				stressN++
			}
			if rec.Lifestyle.SleepQuality != nil {
				sleepSum += float64(*rec.Lifestyle.SleepQuality) / 5.0
				sleepN++
			}
		}
		if rec.Symptoms != nil && rec.Symptoms.Cramps != nil {
			crampSum += float64(*rec.Symptoms.Cramps) / 5.0
			crampN++
		}
	}
	if stressN > 0 {
		s.AvgStress = stressSum / float64(stressN)
		s.HasStress = true
	}
	if sleepN > 0 {
		s.AvgSleep = sleepSum / float64(sleepN)
		s.HasSleep = true
	}
	if crampN > 0 {
		s.AvgCramps = crampSum / float64(crampN)
		s.HasCramps = true
	}

	for _, rec := range h {
		if rec.Symptoms != nil {
			s.SymptomLog++
		}
	}

	return s
}
