package ml

import "math/rand"

// GRU is a single-layer gated recurrent unit used as the sequence encoder.
// Weights are fixed after construction; Encode allocates its own hidden
// state, so one GRU instance is safe for concurrent use.
type GRU struct {
	InputSize  int
	HiddenSize int

	// Update gate, reset gate and candidate weights.
	Wz, Uz [][]float64
	bz     []float64
	Wr, Ur [][]float64
	br     []float64
	Wh, Uh [][]float64
	bh     []float64
}

func newGRU(rng *rand.Rand, inputSize, hiddenSize int) *GRU {
	scale := xavierScale(inputSize, hiddenSize)

	g := &GRU{InputSize: inputSize, HiddenSize: hiddenSize}
	g.Wz = newMatrix(rng, hiddenSize, inputSize, scale)
	g.Uz = newMatrix(rng, hiddenSize, hiddenSize, scale)
	g.bz = make([]float64, hiddenSize)
	g.Wr = newMatrix(rng, hiddenSize, inputSize, scale)
	g.Ur = newMatrix(rng, hiddenSize, hiddenSize, scale)
	g.br = make([]float64, hiddenSize)
	g.Wh = newMatrix(rng, hiddenSize, inputSize, scale)
	g.Uh = newMatrix(rng, hiddenSize, hiddenSize, scale)
	g.bh = make([]float64, hiddenSize)
	return g
}

// Encode folds the ordered feature sequence into a single latent vector.
// The recurrence is explicit: each step's hidden state depends on the
// previous hidden state and the current feature vector. Histories shorter
// than any nominal window simply run fewer steps; there is no padding, so
// no padding can leak into the final state.
func (g *GRU) Encode(seq [][]float64) []float64 {
	h := make([]float64, g.HiddenSize)

	for _, x := range seq {
		z := sigmoidVec(addVec(addVec(matVec(g.Wz, x), matVec(g.Uz, h)), g.bz))
		r := sigmoidVec(addVec(addVec(matVec(g.Wr, x), matVec(g.Ur, h)), g.br))
		hBar := tanhVec(addVec(addVec(matVec(g.Wh, x), matVec(g.Uh, hadamard(r, h))), g.bh))

		next := make([]float64, g.HiddenSize)
		for j := range next {
			next[j] = (1-z[j])*h[j] + z[j]*hBar[j]
		}
		h = next
	}

	return h
}
