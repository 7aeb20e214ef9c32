// Package scan runs the Engle-Granger test across a universe of price
// series and ranks the pairs by strength of evidence for cointegration.
package scan

import (
	"errors"
	"sort"

	"github.com/banachtech/quantarb/coint"
	"github.com/montanaflynn/stats"
)

// Pair is the scan outcome for one ordered ticker pair (Y regressed on X).
// SpreadMean, SpreadStd and ZScore summarise the residual spread; the
// z-score is the latest residual in spread standard deviations, the usual
// entry signal for a pairs trade.
type Pair struct {
	Y            string              `json:"y"`
	X            string              `json:"x"`
	Relationship *coint.Relationship `json:"relationship"`
	Test         *coint.TestResult   `json:"test"`
	SpreadMean   float64             `json:"spread_mean"`
	SpreadStd    float64             `json:"spread_std"`
	ZScore       float64             `json:"z_score"`
}

type scanResult struct {
	pair Pair
	err  error
}

// Scan tests every unordered ticker pair in the universe concurrently and
// returns the results sorted by ascending p-value. Pairs whose series fail
// the input preconditions (for example different listing histories) are
// skipped; any other failure aborts the scan.
func Scan(universe map[string]coint.Series) ([]Pair, error) {
	tickers := make([]string, 0, len(universe))
	for k := range universe {
		tickers = append(tickers, k)
	}
	sort.Strings(tickers)

	n := len(tickers) * (len(tickers) - 1) / 2
	if n == 0 {
		return nil, errors.New("universe must contain at least two tickers")
	}

	ch := make(chan scanResult, n)
	defer close(ch)

	for i := 0; i < len(tickers); i++ {
		for j := i + 1; j < len(tickers); j++ {
			go func(a, b string) {
				ch <- testPair(a, b, universe[a], universe[b])
			}(tickers[i], tickers[j])
		}
	}

	var out []Pair
	for l := 0; l < n; l++ {
		res := <-ch
		if res.err != nil {
			if errors.Is(res.err, coint.ErrInvalidInput) {
				continue
			}
			return nil, res.err
		}
		out = append(out, res.pair)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Test.PValue != out[j].Test.PValue {
			return out[i].Test.PValue < out[j].Test.PValue
		}
		return out[i].Y+out[i].X < out[j].Y+out[j].X
	})
	return out, nil
}

func testPair(a, b string, y, x coint.Series) scanResult {
	rel, err := coint.EstimateLongRunShortRunRelationships(y, x)
	if err != nil {
		return scanResult{err: err}
	}
	test, err := coint.EngleGrangerTwoStepCointegrationTest(y, x)
	if err != nil {
		return scanResult{err: err}
	}

	mean, err := stats.Mean(rel.Z)
	if err != nil {
		return scanResult{err: err}
	}
	std, err := stats.StandardDeviation(rel.Z)
	if err != nil {
		return scanResult{err: err}
	}
	zscore := 0.0
	if std > 0 {
		zscore = (rel.Z[len(rel.Z)-1] - mean) / std
	}

	return scanResult{pair: Pair{
		Y:            a,
		X:            b,
		Relationship: rel,
		Test:         test,
		SpreadMean:   mean,
		SpreadStd:    std,
		ZScore:       zscore,
	}}
}
