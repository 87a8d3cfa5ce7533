package insights

import (
	"strings"
	"testing"

	"github.com/arunsingh-creator/CodeBloom/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestGenerateFiresAllMatchingRulesInOrder(t *testing.T) {
	s := Summary{
		AvgLength: 24, // shorter than average
		StdDev:    6,  // varies significantly
		Records:   8,
		HasStress: true,
		AvgStress: 0.8, // elevated stress
	}

	got := Generate(s)

	assert.Equal(t, []string{
		"Your cycle is shorter than average.",
		"Your cycle length varies significantly. Consistent tracking helps the model follow the variation.",
		"Your recent stress levels are elevated. Stress can influence cycle timing; relaxation techniques and regular rest may help.",
	}, got)
}

func TestGenerateRegularMidRangeCycle(t *testing.T) {
	got := Generate(Summary{AvgLength: 28.4, StdDev: 1.1, Records: 5})

	assert.Contains(t, got, "Your cycle length is within the normal range.")
	assert.Contains(t, got, "Your cycle is quite regular.")
	assert.NotContains(t, got, "Your cycle is shorter than average.")
}

func TestGenerateClampNoteFirst(t *testing.T) {
	got := Generate(Summary{AvgLength: 28, StdDev: 1, Clamped: true})

	assert.NotEmpty(t, got)
	assert.Contains(t, got[0], "adjusted to the nearest plausible value")
}

func TestGenerateDeterministicAndDeduplicated(t *testing.T) {
	s := Summary{AvgLength: 28, StdDev: 2, Records: 6, SymptomLog: 3}

	first := Generate(s)
	second := Generate(s)
	assert.Equal(t, first, second)

	seen := map[string]int{}
	for _, msg := range first {
		seen[msg]++
	}
	for msg, n := range seen {
		assert.Equal(t, 1, n, "duplicate insight: %s", msg)
	}
}

func TestNoDiagnosticLanguage(t *testing.T) {
	// Advisory only: templates must never state a diagnosis or
	// prescription.
	banned := []string{"you have pcos", "diagnos", "prescri", "you must take"}

	all := Generate(Summary{
		AvgLength:  24,
		StdDev:     7,
		Records:    3,
		HasStress:  true,
		AvgStress:  1,
		HasSleep:   true,
		AvgSleep:   0,
		HasCramps:  true,
		AvgCramps:  1,
		SymptomLog: 3,
		Confidence: 20,
		Clamped:    true,
	})

	for _, msg := range all {
		lower := strings.ToLower(msg)
		for _, b := range banned {
			assert.NotContains(t, lower, b)
		}
	}
}

func TestSummarize(t *testing.T) {
	h := models.CycleHistory{
		{CycleLength: 28, Symptoms: &models.SymptomScores{Cramps: intp(4)}},
		{CycleLength: 30, Lifestyle: &models.LifestyleScores{StressLevel: intp(5), SleepQuality: intp(1)}},
		{CycleLength: 29},
	}

	s := Summarize(h)

	assert.Equal(t, 3, s.Records)
	assert.InDelta(t, 29.0, s.AvgLength, 1e-9)
	assert.True(t, s.HasStress)
	assert.InDelta(t, 1.0, s.AvgStress, 1e-9)
	assert.True(t, s.HasSleep)
	assert.InDelta(t, 0.2, s.AvgSleep, 1e-9)
	assert.True(t, s.HasCramps)
	assert.InDelta(t, 0.8, s.AvgCramps, 1e-9)
	assert.Equal(t, 1, s.SymptomLog)
}

func TestSummarizeUntrackedFactors(t *testing.T) {
	s := Summarize(models.CycleHistory{{CycleLength: 28}, {CycleLength: 30}})

	assert.False(t, s.HasStress)
	assert.False(t, s.HasSleep)
	assert.False(t, s.HasCramps)
	assert.Zero(t, s.SymptomLog)
}
