package ml

import (
	"math"
	"math/rand"
)

// newMatrix builds a rows x cols matrix with entries drawn uniformly from
// [-scale, scale) using the provided source, or zeros when scale == 0.
func newMatrix(rng *rand.Rand, rows, cols int, scale float64) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		if scale == 0 {
			continue
		}
		for j := range m[i] {
			m[i][j] = (rng.Float64()*2 - 1) * scale
		}
	}
	return m
}

func matVec(m [][]float64, v []float64) []float64 {
	res := make([]float64, len(m))
	for i := range m {
		sum := 0.0
		for j := range m[i] {
			sum += m[i][j] * v[j]
		}
		res[i] = sum
	}
	return res
}

func addVec(a, b []float64) []float64 {
	res := make([]float64, len(a))
	for i := range a {
		res[i] = a[i] + b[i]
	}
	return res
}

func hadamard(a, b []float64) []float64 {
	res := make([]float64, len(a))
	for i := range a {
		res[i] = a[i] * b[i]
	}
	return res
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func sigmoidVec(v []float64) []float64 {
	res := make([]float64, len(v))
	for i := range v {
		res[i] = sigmoid(v[i])
	}
	return res
}

func tanhVec(v []float64) []float64 {
	res := make([]float64, len(v))
	for i := range v {
		res[i] = math.Tanh(v[i])
	}
	return res
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
