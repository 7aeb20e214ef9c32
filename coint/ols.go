package coint

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// olsFit holds a least-squares fit on a general design matrix.
type olsFit struct {
	coef   []float64
	stderr []float64
	resid  []float64
}

// fitOLS regresses y on the given columns. Degenerate designs (collinear or
// rank-deficient columns) fail with the solver's error, propagated as is.
func fitOLS(y []float64, cols ...[]float64) (*olsFit, error) {
	n := len(y)
	k := len(cols)
	if n <= k {
		return nil, errors.New("not enough observations for regression")
	}

	X := mat.NewDense(n, k, nil)
	for j, col := range cols {
		X.SetCol(j, col)
	}
	b := mat.NewVecDense(n, y)

	var qr mat.QR
	qr.Factorize(X)
	beta := mat.NewVecDense(k, nil)
	if err := qr.SolveVecTo(beta, false, b); err != nil {
		return nil, err
	}

	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(X, beta)
	resid := make([]float64, n)
	rss := 0.0
	for i := range resid {
		resid[i] = y[i] - fitted.AtVec(i)
		rss += resid[i] * resid[i]
	}
	sigma2 := rss / float64(n-k)

	var xtx, inv mat.Dense
	xtx.Mul(X.T(), X)
	if err := inv.Inverse(&xtx); err != nil {
		return nil, err
	}

	coef := make([]float64, k)
	stderr := make([]float64, k)
	for j := 0; j < k; j++ {
		coef[j] = beta.AtVec(j)
		stderr[j] = math.Sqrt(sigma2 * inv.At(j, j))
	}
	return &olsFit{coef: coef, stderr: stderr, resid: resid}, nil
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0
	}
	return out
}
