package coint

import (
	"math"
	"testing"

	"github.com/banachtech/quantarb/util"
	"github.com/stretchr/testify/require"
)

func TestEstimateExactLine(t *testing.T) {
	n := 100
	x := Series{Values: make([]float64, n)}
	y := Series{Values: make([]float64, n)}
	for i := 0; i < n; i++ {
		x.Values[i] = float64(i)
		y.Values[i] = 2.0 + 3.0*float64(i)
	}

	rel, err := EstimateLongRunShortRunRelationships(y, x)
	require.NoError(t, err)
	require.InDelta(t, 2.0, rel.C, 1e-8)
	require.InDelta(t, 3.0, rel.Gamma, 1e-8)
	require.Len(t, rel.Z, n)
	for _, z := range rel.Z {
		require.InDelta(t, 0.0, z, 1e-8)
	}
}

func TestEstimateRecoversRelationship(t *testing.T) {
	// y = 2 + 3x + noise over a long sample
	yv, xv := util.CointegratedPair(2000, 2.0, 3.0, 0.0, 0.0, 42)
	rel, err := EstimateLongRunShortRunRelationships(Series{Values: yv}, Series{Values: xv})
	require.NoError(t, err)
	require.InDelta(t, 2.0, rel.C, 0.5)
	require.InDelta(t, 3.0, rel.Gamma, 0.05)
	// deviations must be corrected, not amplified
	require.Less(t, rel.Alpha, 0.0)
}

func TestInvalidInput(t *testing.T) {
	good := Series{Dates: []string{"2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}, Values: []float64{1, 2, 3, 4}}

	type testCases struct {
		name string
		y, x Series
	}

	for _, test := range []testCases{
		{
			name: "LENGTH_MISMATCH",
			y:    good,
			x:    Series{Values: []float64{1, 2, 3}},
		},
		{
			name: "DATE_MISMATCH",
			y:    good,
			x:    Series{Dates: []string{"2024-01-02", "2024-01-03", "2024-01-04", "2024-01-08"}, Values: []float64{1, 2, 3, 4}},
		},
		{
			name: "PARTIAL_INDEX",
			y:    good,
			x:    Series{Dates: []string{"2024-01-02"}, Values: []float64{1, 2, 3, 4}},
		},
		{
			name: "NAN_VALUE",
			y:    good,
			x:    Series{Dates: good.Dates, Values: []float64{1, math.NaN(), 3, 4}},
		},
		{
			name: "INF_VALUE",
			y:    Series{Dates: good.Dates, Values: []float64{1, 2, math.Inf(1), 4}},
			x:    good,
		},
		{
			name: "TOO_SHORT",
			y:    Series{Values: []float64{1, 2}},
			x:    Series{Values: []float64{2, 1}},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := EstimateLongRunShortRunRelationships(test.y, test.x)
			require.ErrorIs(t, err, ErrInvalidInput)
			_, err = EngleGrangerTwoStepCointegrationTest(test.y, test.x)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestEngleGrangerShortSeries(t *testing.T) {
	// long enough for the regressions but not for the ADF step
	y := Series{Values: []float64{1, 2, 1, 3}}
	x := Series{Values: []float64{2, 1, 3, 1}}
	_, err := EngleGrangerTwoStepCointegrationTest(y, x)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEngleGrangerIndependentWalks(t *testing.T) {
	// No true cointegration: across repeated simulations the p-value
	// should not be systematically small.
	sims := 40
	sum := 0.0
	for i := 0; i < sims; i++ {
		y := Series{Values: util.RandomWalk(250, 1.0, uint64(1000+2*i))}
		x := Series{Values: util.RandomWalk(250, 1.0, uint64(1001+2*i))}
		res, err := EngleGrangerTwoStepCointegrationTest(y, x)
		require.NoError(t, err)
		sum += res.PValue
	}
	require.Greater(t, sum/float64(sims), 0.10)
}

func TestEngleGrangerDetectsCointegration(t *testing.T) {
	yv, xv := util.CointegratedPair(500, 2.0, 3.0, 0.5, 0.3, 7)
	res, err := EngleGrangerTwoStepCointegrationTest(Series{Values: yv}, Series{Values: xv})
	require.NoError(t, err)
	require.Less(t, res.Statistic, -3.5)
	require.Less(t, res.PValue, 0.05)
	require.Equal(t, 1, res.Lag)
	require.Equal(t, len(yv)-2, res.NObs)
	require.Len(t, res.CriticalValues, 3)
	require.Less(t, res.CriticalValues["1%"], res.CriticalValues["5%"])
	require.Less(t, res.CriticalValues["5%"], res.CriticalValues["10%"])
}

func TestIdempotence(t *testing.T) {
	yv, xv := util.CointegratedPair(300, 1.0, 2.0, 0.4, 0.0, 11)
	y, x := Series{Values: yv}, Series{Values: xv}

	r1, err := EngleGrangerTwoStepCointegrationTest(y, x)
	require.NoError(t, err)
	r2, err := EngleGrangerTwoStepCointegrationTest(y, x)
	require.NoError(t, err)
	require.Equal(t, r1, r2)

	e1, err := EstimateLongRunShortRunRelationships(y, x)
	require.NoError(t, err)
	e2, err := EstimateLongRunShortRunRelationships(y, x)
	require.NoError(t, err)
	require.Equal(t, e1, e2)
}

func TestMacKinnonSurface(t *testing.T) {
	// the asymptotic 5% and 1% thresholds must map back to their levels
	require.InDelta(t, 0.05, mackinnonP(-2.86), 0.01)
	require.InDelta(t, 0.01, mackinnonP(-3.43), 0.005)

	// the two fitted branches agree where they meet
	require.InDelta(t, mackinnonP(tauStar), mackinnonP(tauStar+1e-6), 0.005)

	// monotone in the statistic, saturating at the tails
	require.Less(t, mackinnonP(-4.0), mackinnonP(-2.0))
	require.Less(t, mackinnonP(-2.0), mackinnonP(0.0))
	require.Equal(t, 1.0, mackinnonP(3.0))
	require.Equal(t, 0.0, mackinnonP(-20.0))
}

func TestADFStationarySeries(t *testing.T) {
	// white noise is as stationary as it gets
	z := make([]float64, 300)
	walk := util.RandomWalk(301, 1.0, 99)
	for i := range z {
		z[i] = walk[i+1] - walk[i]
	}
	res, err := adfTest(z, 1)
	require.NoError(t, err)
	require.Less(t, res.Statistic, -5.0)
	require.Less(t, res.PValue, 0.01)
}
