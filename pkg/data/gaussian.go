package data

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian draws feature columns from a normal distribution with its own
// seeded source, so repeated runs with the same seed reproduce the dataset.
type Gaussian struct {
	dist distuv.Normal
}

func NewGaussian(mu, sigma float64, seed uint64) *Gaussian {
	return &Gaussian{dist: distuv.Normal{
		Mu:    mu,
		Sigma: sigma,
		Src:   rand.NewSource(seed),
	}}
}

// Sample returns n independent draws.
func (g *Gaussian) Sample(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.dist.Rand()
	}
	return out
}

// Constant returns a column of n copies of v, e.g. a class label column.
func Constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
