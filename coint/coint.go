package coint

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Relationship is the estimated long-run and short-run structure between a
// pair of series. C and Gamma come from the long-run regression
// y_t = c + gamma*x_t + z_t, Alpha from the short-run error-correction
// regression dy_t = alpha*z_(t-1) + eps_t, and Z is the full-length
// residual series of the long-run regression.
type Relationship struct {
	C     float64   `json:"c"`
	Gamma float64   `json:"gamma"`
	Alpha float64   `json:"alpha"`
	Z     []float64 `json:"z"`
}

// EstimateLongRunShortRunRelationships fits the two Engle-Granger
// regressions for the pair (y, x). The long-run regression includes an
// intercept; the short-run regression of the first differences of y on the
// lagged residuals runs through the origin. The first observation is
// dropped from the short-run fit since it has no lag.
func EstimateLongRunShortRunRelationships(y, x Series) (*Relationship, error) {
	if err := checkAligned(y, x); err != nil {
		return nil, err
	}
	n := len(y.Values)
	if n < 3 {
		return nil, fmt.Errorf("%w: need at least 3 observations, got %d", ErrInvalidInput, n)
	}

	c, gamma := stat.LinearRegression(x.Values, y.Values, nil, false)
	z := make([]float64, n)
	for i := range z {
		z[i] = y.Values[i] - c - gamma*x.Values[i]
	}

	dy := make([]float64, n-1)
	zlag := make([]float64, n-1)
	for t := 1; t < n; t++ {
		dy[t-1] = y.Values[t] - y.Values[t-1]
		zlag[t-1] = z[t-1]
	}
	_, alpha := stat.LinearRegression(zlag, dy, nil, true)

	return &Relationship{C: c, Gamma: gamma, Alpha: alpha, Z: z}, nil
}

// EngleGrangerTwoStepCointegrationTest estimates the long-run relationship
// between y and x and runs an augmented Dickey-Fuller test, with a fixed
// lag order of 1, on its residuals. Rejecting the unit-root null on the
// residuals means the pair shares a stable long-run relationship.
//
// The p-value comes from the MacKinnon surface for a directly observed
// series. Because the residuals are themselves estimated, the true
// distribution of the statistic differs (Engle & Yoo 1987, MacKinnon 1990
// give adjusted critical values); the unadjusted p-value is an
// approximation suited to exploratory work, not production-grade
// inference. The finite-sample critical values on the result let callers
// judge the margin themselves.
func EngleGrangerTwoStepCointegrationTest(y, x Series) (*TestResult, error) {
	rel, err := EstimateLongRunShortRunRelationships(y, x)
	if err != nil {
		return nil, err
	}
	return adfTest(rel.Z, 1)
}
