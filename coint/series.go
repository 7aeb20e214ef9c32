// Package coint tests pairs of time series for cointegration using the
// Engle-Granger two-step procedure.
package coint

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks precondition failures on the input series: length
// or date-index mismatch, non-finite values, or too few observations.
var ErrInvalidInput = errors.New("invalid input series")

// Series is an ordered sequence of observations. Dates are optional; when
// present they act as the series index and must line up one-to-one between
// the two series of a pair. A nil Dates slice means a purely positional
// index.
type Series struct {
	Dates  []string  `json:"dates,omitempty"`
	Values []float64 `json:"values"`
}

// checkAligned verifies the pair preconditions before any fitting runs.
func checkAligned(y, x Series) error {
	if len(y.Values) != len(x.Values) {
		return fmt.Errorf("%w: length mismatch %d vs %d", ErrInvalidInput, len(y.Values), len(x.Values))
	}
	if y.Dates != nil || x.Dates != nil {
		if len(y.Dates) != len(y.Values) || len(x.Dates) != len(x.Values) {
			return fmt.Errorf("%w: date index does not cover all observations", ErrInvalidInput)
		}
		for i := range y.Dates {
			if y.Dates[i] != x.Dates[i] {
				return fmt.Errorf("%w: date index mismatch at position %d (%s vs %s)", ErrInvalidInput, i, y.Dates[i], x.Dates[i])
			}
		}
	}
	for i := range y.Values {
		if !isFinite(y.Values[i]) || !isFinite(x.Values[i]) {
			return fmt.Errorf("%w: non-finite value at position %d", ErrInvalidInput, i)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
