package bs

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// ImpliedVol recovers the volatility that reproduces an observed option
// price. The price must lie inside the no-arbitrage bounds for the given
// contract, otherwise no volatility can match it.
func ImpliedVol(price, S, K, T, r float64, put bool) (float64, error) {
	value := CallValue
	lower := math.Max(S-K*math.Exp(-r*T), 0.0)
	upper := S
	if put {
		value = PutValue
		lower = math.Max(K*math.Exp(-r*T)-S, 0.0)
		upper = K * math.Exp(-r*T)
	}
	if price <= lower || price >= upper {
		return math.NaN(), errors.New("price is outside no-arbitrage bounds")
	}

	// Optimize over log-vol so the solver stays in sigma > 0
	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			v := value(S, K, T, r, math.Exp(p[0]))
			return (v - price) * (v - price)
		},
	}
	res, err := optimize.Minimize(problem, []float64{math.Log(0.25)}, nil, &optimize.NelderMead{})
	if err != nil {
		return math.NaN(), err
	}
	return math.Exp(res.X[0]), nil
}
