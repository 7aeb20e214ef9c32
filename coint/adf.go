package coint

import "fmt"

// TestResult is the outcome of a unit-root test. A more negative Statistic
// and a smaller PValue indicate stronger evidence against the unit-root
// null. CriticalValues holds the finite-sample 1%, 5% and 10% thresholds
// for the regression actually run.
type TestResult struct {
	Statistic      float64            `json:"statistic"`
	PValue         float64            `json:"p_value"`
	CriticalValues map[string]float64 `json:"critical_values"`
	Lag            int                `json:"lag"`
	NObs           int                `json:"nobs"`
}

// adfTest runs an augmented Dickey-Fuller regression with a constant and a
// fixed number of lagged difference terms (no automatic lag selection):
//
//	dz_t = a + b*z_(t-1) + c_1*dz_(t-1) + ... + c_k*dz_(t-k) + e_t
//
// and returns the t-statistic on b together with its MacKinnon p-value.
func adfTest(z []float64, lag int) (*TestResult, error) {
	n := len(z)
	nobs := n - 1 - lag
	if nobs < lag+4 {
		return nil, fmt.Errorf("%w: %d observations is too short for an ADF test with lag %d", ErrInvalidInput, n, lag)
	}

	dz := make([]float64, n-1)
	for i := range dz {
		dz[i] = z[i+1] - z[i]
	}

	cols := make([][]float64, 0, lag+2)
	cols = append(cols, z[lag:n-1])
	for j := 1; j <= lag; j++ {
		cols = append(cols, dz[lag-j:n-1-j])
	}
	cols = append(cols, ones(nobs))

	fit, err := fitOLS(dz[lag:], cols...)
	if err != nil {
		return nil, err
	}

	stat := fit.coef[0] / fit.stderr[0]
	return &TestResult{
		Statistic:      stat,
		PValue:         mackinnonP(stat),
		CriticalValues: mackinnonCrit(nobs),
		Lag:            lag,
		NObs:           nobs,
	}, nil
}
