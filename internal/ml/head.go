package ml

import (
	"math"
	"math/rand"
)

// Dense is the predictor head: latent vector -> bounded residual scalar.
type Dense struct {
	HiddenSize int
	W1         [][]float64
	b1         []float64
	w2         []float64
	b2         float64
}

func newDense(rng *rand.Rand, latentSize, hiddenSize int) *Dense {
	scale := xavierScale(latentSize, hiddenSize)

	d := &Dense{HiddenSize: hiddenSize}
	d.W1 = newMatrix(rng, hiddenSize, latentSize, scale)
	d.b1 = make([]float64, hiddenSize)
	d.w2 = make([]float64, hiddenSize)
	for i := range d.w2 {
		d.w2[i] = (rng.Float64()*2 - 1) * scale
	}
	return d
}

// Residual maps the latent vector to a value in (-1, 1).
func (d *Dense) Residual(latent []float64) float64 {
	hidden := addVec(matVec(d.W1, latent), d.b1)
	for i, v := range hidden {
		if v < 0 {
			hidden[i] = 0 // ReLU
		}
	}

	out := d.b2
	for i, v := range hidden {
		out += d.w2[i] * v
	}
	return math.Tanh(out)
}

func xavierScale(fanIn, fanOut int) float64 {
	return math.Sqrt(2.0 / float64(fanIn+fanOut))
}
