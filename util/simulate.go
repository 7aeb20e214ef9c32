package util

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomWalk simulates n steps of a driftless random walk with the given
// innovation volatility. A fixed seed gives a reproducible path.
func RandomWalk(n int, sigma float64, seed uint64) []float64 {
	d := distuv.Normal{Mu: 0.0, Sigma: sigma, Src: rand.NewSource(seed)}
	out := make([]float64, n)
	for i := 1; i < n; i++ {
		out[i] = out[i-1] + d.Rand()
	}
	return out
}

// CointegratedPair simulates a cointegrated pair: x is a random walk with
// unit-volatility innovations and y = c + gamma*x + eta with eta a
// stationary AR(1) perturbation (coefficient phi, |phi| < 1). The
// innovations of x and eta are correlated with coefficient rho.
func CointegratedPair(n int, c, gamma, phi, rho float64, seed uint64) (y, x []float64) {
	cov := mat.NewSymDense(2, []float64{1.0, rho, rho, 1.0})
	d, ok := distmv.NewNormal([]float64{0.0, 0.0}, cov, rand.NewSource(seed))
	if !ok {
		panic("invalid innovation covariance")
	}

	x = make([]float64, n)
	y = make([]float64, n)
	eta := 0.0
	z := make([]float64, 2)
	for i := 0; i < n; i++ {
		z = d.Rand(z)
		if i > 0 {
			x[i] = x[i-1] + z[0]
		}
		eta = phi*eta + math.Sqrt(1.0-phi*phi)*z[1]
		y[i] = c + gamma*x[i] + eta
	}
	return y, x
}
