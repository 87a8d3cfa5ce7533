// Package ml implements inference for the cycle sequence model: a GRU
// encoder folds the ordered per-cycle feature vectors into a latent
// summary, and a dense head turns that summary into a bounded adjustment
// of the autoregressive anchor (the most recent normalized cycle length).
//
// Weights are generated once from a fixed seed, are never mutated after
// construction, and are shared read-only by all requests. Inference is
// fully deterministic: identical input sequences produce identical output.
package ml

import (
	"errors"
	"math/rand"
)

// DefaultHiddenSize is the encoder hidden dimension when none is configured.
const DefaultHiddenSize = 32

// DefaultWeightSeed seeds deterministic weight generation.
const DefaultWeightSeed = 20240115

// residualScale bounds how far the head may move the prediction away from
// the anchor, in normalized units.
const residualScale = 0.15

var (
	// ErrBadDimensions indicates an invalid model configuration.
	ErrBadDimensions = errors.New("model dimensions must be positive")
	// ErrEmptySequence indicates Forward was called with no feature vectors.
	ErrEmptySequence = errors.New("feature sequence is empty")
	// ErrDimensionMismatch indicates a feature vector of the wrong width.
	ErrDimensionMismatch = errors.New("feature vector width does not match model input size")
)

// Model couples the sequence encoder with the predictor head for one
// feature schema (one fixed input width).
type Model struct {
	inputSize int
	enc       *GRU
	head      *Dense
}

// NewModel constructs a model with deterministically seeded weights.
func NewModel(inputSize, hiddenSize int, seed int64) (*Model, error) {
	if inputSize <= 0 || hiddenSize <= 0 {
		return nil, ErrBadDimensions
	}

	rng := rand.New(rand.NewSource(seed))
	return &Model{
		inputSize: inputSize,
		enc:       newGRU(rng, inputSize, hiddenSize),
		head:      newDense(rng, hiddenSize, 16),
	}, nil
}

// InputSize returns the fixed feature vector width the model accepts.
func (m *Model) InputSize() int { return m.inputSize }

// Forward runs the full inference pass over a chronological feature
// sequence. By convention, element 0 of each feature vector is the
// normalized cycle length; the last step's value anchors the prediction.
// It returns the predicted next normalized cycle length in [0,1] and the
// latent summary vector for downstream use.
func (m *Model) Forward(seq [][]float64) (float64, []float64, error) {
	if len(seq) == 0 {
		return 0, nil, ErrEmptySequence
	}
	for _, x := range seq {
		if len(x) != m.inputSize {
			return 0, nil, ErrDimensionMismatch
		}
	}

	latent := m.enc.Encode(seq)
	anchor := seq[len(seq)-1][0]
	norm := clamp01(anchor + residualScale*m.head.Residual(latent))
	return norm, latent, nil
}
