// Package bs prices vanilla European options under the Black-Scholes model.
//
// All pricing functions are pure and take the same five arguments: the
// current underlying price S, the strike K, the time to expiry T in years,
// the continuously compounded risk-free rate r and the annualised
// volatility sigma. Callers must supply S > 0, K > 0, T > 0 and sigma > 0;
// the functions do not validate inputs and degenerate arguments propagate
// as NaN or Inf in the usual floating-point way.
package bs

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Standard normal, shared by every pricing function. distuv.Normal with a
// nil Src is a pure evaluator, so this is safe for concurrent use.
var stdNormal = distuv.Normal{Mu: 0.0, Sigma: 1.0}

func d1(S, K, T, r, sigma float64) float64 {
	return (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
}

func d2(S, K, T, r, sigma float64) float64 {
	return d1(S, K, T, r, sigma) - sigma*math.Sqrt(T)
}

// CallValue returns the fair present value of a call option paying
// max(S-K, 0) at expiry.
func CallValue(S, K, T, r, sigma float64) float64 {
	return S*stdNormal.CDF(d1(S, K, T, r, sigma)) - K*math.Exp(-r*T)*stdNormal.CDF(d2(S, K, T, r, sigma))
}

// PutValue returns the fair present value of a put option paying
// max(K-S, 0) at expiry.
func PutValue(S, K, T, r, sigma float64) float64 {
	return K*math.Exp(-r*T)*stdNormal.CDF(-d2(S, K, T, r, sigma)) - S*stdNormal.CDF(-d1(S, K, T, r, sigma))
}

// CallDelta returns the sensitivity of the call value to a unit change in
// the underlying price.
func CallDelta(S, K, T, r, sigma float64) float64 {
	return stdNormal.CDF(d1(S, K, T, r, sigma))
}

// PutDelta returns the sensitivity of the put value to a unit change in the
// underlying price. By put-call parity it equals CallDelta - 1.
func PutDelta(S, K, T, r, sigma float64) float64 {
	return CallDelta(S, K, T, r, sigma) - 1.0
}

// CallVega returns the sensitivity of the call value to a unit change in
// volatility.
func CallVega(S, K, T, r, sigma float64) float64 {
	return S * stdNormal.Prob(d1(S, K, T, r, sigma)) * math.Sqrt(T)
}

// PutVega returns the sensitivity of the put value to a unit change in
// volatility. Vega is the same for calls and puts.
func PutVega(S, K, T, r, sigma float64) float64 {
	return CallVega(S, K, T, r, sigma)
}
