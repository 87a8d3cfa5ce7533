// Package importance scores each input feature's contribution to one
// prediction with perturbation sensitivity analysis: hold a feature at
// its neutral default across the whole sequence, re-run the model, and
// read the magnitude of the change. The approach is model-agnostic and
// needs no access to gradients.
package importance

import (
	"fmt"
	"math"
	"sort"
)

// Predictor is the minimal model surface the ranker needs.
type Predictor interface {
	Forward(seq [][]float64) (float64, []float64, error)
}

// Entry is one feature's normalized importance.
type Entry struct {
	Feature string  `json:"feature"`
	Weight  float64 `json:"weight"`
}

// Ranker runs the sensitivity analysis.
type Ranker struct{}

func New() *Ranker { return &Ranker{} }

// Rank perturbs each feature to its neutral value and measures the shift
// in the prediction. Weights are non-negative and sum to 1; when every
// perturbation leaves the prediction unchanged the weights degenerate to
// uniform.
func (r *Ranker) Rank(model Predictor, seq [][]float64, names []string, neutrals []float64) (map[string]float64, error) {
	if len(names) != len(neutrals) {
		return nil, fmt.Errorf("names and neutrals length mismatch: %d vs %d", len(names), len(neutrals))
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("empty feature sequence")
	}

	baseline, _, err := model.Forward(seq)
	if err != nil {
		return nil, fmt.Errorf("baseline forward: %w", err)
	}

	raw := make([]float64, len(names))
	total := 0.0
	for i := range names {
		perturbed := cloneWith(seq, i, neutrals[i])
		pred, _, err := model.Forward(perturbed)
		if err != nil {
			return nil, fmt.Errorf("perturb %s: %w", names[i], err)
		}
		raw[i] = math.Abs(pred - baseline)
		total += raw[i]
	}

	weights := make(map[string]float64, len(names))
	if total == 0 {
		uniform := 1.0 / float64(len(names))
		for _, name := range names {
			weights[name] = uniform
		}
		return weights, nil
	}
	for i, name := range names {
		weights[name] = raw[i] / total
	}
	return weights, nil
}

// Ranked sorts importance weights descending, ties broken by name for a
// stable order.
func Ranked(weights map[string]float64) []Entry {
	out := make([]Entry, 0, len(weights))
	for name, w := range weights {
		out = append(out, Entry{Feature: name, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Feature < out[j].Feature
	})
	return out
}

// cloneWith copies seq with feature idx pinned to value at every step.
func cloneWith(seq [][]float64, idx int, value float64) [][]float64 {
	out := make([][]float64, len(seq))
	for t, vec := range seq {
		row := make([]float64, len(vec))
		copy(row, vec)
		row[idx] = value
		out[t] = row
	}
	return out
}
