// Package sizing estimates hidden-layer widths for tabular neural networks.
//
// The heuristic divides the number of training samples by a scaled sum of the
// input and output layer widths:
//
//	hidden = samples / (alpha * (inputs + outputs))
//
// The result is a real number. Converting it to an integer width is left to the
// caller, see Rounding.
package sizing

import (
	"errors"
	"fmt"
)

// DefaultAlpha is the scaling factor used when the caller has no preference.
const DefaultAlpha = 5.0

// ErrInvalidDenominator is returned when alpha * (inputs + outputs) is zero.
var ErrInvalidDenominator = errors.New("sizing: invalid denominator")

// Shape reports the three counts the estimate is derived from.
type Shape interface {
	InputCount() int  // number of input feature columns
	OutputCount() int // number of distinct target categories
	SampleCount() int // number of rows in the training split
}

// Counts is a Shape built from plain numbers.
type Counts struct {
	Inputs  int
	Outputs int
	Samples int
}

func (c Counts) InputCount() int  { return c.Inputs }
func (c Counts) OutputCount() int { return c.Outputs }
func (c Counts) SampleCount() int { return c.Samples }

// Estimate returns samples / (alpha * (inputs + outputs)).
func Estimate(inputs, outputs, samples int, alpha float64) (float64, error) {
	denom := alpha * float64(inputs+outputs)
	if denom == 0 {
		return 0, fmt.Errorf("%w: alpha=%g inputs=%d outputs=%d", ErrInvalidDenominator, alpha, inputs, outputs)
	}
	return float64(samples) / denom, nil
}

// EstimateDefault is Estimate with DefaultAlpha.
func EstimateDefault(inputs, outputs, samples int) (float64, error) {
	return Estimate(inputs, outputs, samples, DefaultAlpha)
}

// EstimateShape reads the counts from s and calls Estimate.
func EstimateShape(s Shape, alpha float64) (float64, error) {
	return Estimate(s.InputCount(), s.OutputCount(), s.SampleCount(), alpha)
}
