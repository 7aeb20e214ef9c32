package coint

import "gonum.org/v1/gonum/stat/distuv"

var stdNormal = distuv.Normal{Mu: 0.0, Sigma: 1.0}

// MacKinnon (1994) approximate asymptotic p-value surface for the
// Dickey-Fuller tau statistic, constant-only regression, single series.
// Outside [tauMin, tauMax] the p-value saturates at 0 or 1.
const (
	tauStar = -1.61
	tauMin  = -18.83
	tauMax  = 2.74
)

var (
	tauSmallP = []float64{2.1659, 1.4412, 0.038269}
	tauLargeP = []float64{1.7339, 0.93202, -0.12745, -0.010368}
)

func mackinnonP(stat float64) float64 {
	switch {
	case stat > tauMax:
		return 1.0
	case stat < tauMin:
		return 0.0
	}
	coef := tauLargeP
	if stat <= tauStar {
		coef = tauSmallP
	}
	return stdNormal.CDF(polyval(coef, stat))
}

// MacKinnon (2010) finite-sample critical value surface, constant-only
// regression, single series: c(n) = b0 + b1/n + b2/n^2 + b3/n^3.
var critSurface = map[string][4]float64{
	"1%":  {-3.43035, -6.5393, -16.786, -79.433},
	"5%":  {-2.86154, -2.8903, -4.234, -40.040},
	"10%": {-2.56677, -1.5384, -2.809, 0.0},
}

func mackinnonCrit(nobs int) map[string]float64 {
	n := float64(nobs)
	out := make(map[string]float64, len(critSurface))
	for level, b := range critSurface {
		out[level] = b[0] + b[1]/n + b[2]/(n*n) + b[3]/(n*n*n)
	}
	return out
}

// polyval evaluates a polynomial with coefficients in increasing order.
func polyval(coef []float64, x float64) float64 {
	out := 0.0
	for i := len(coef) - 1; i >= 0; i-- {
		out = out*x + coef[i]
	}
	return out
}
