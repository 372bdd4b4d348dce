package sizing

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Point is one estimate of a sweep.
type Point struct {
	Alpha  float64
	Hidden float64
}

// AlphaRange returns n evenly spaced alphas from `from` to `to` inclusive.
func AlphaRange(from, to float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("alpha range needs at least 1 step, got %d", n)
	}
	if n == 1 {
		return []float64{from}, nil
	}
	return floats.Span(make([]float64, n), from, to), nil
}

// Sweep estimates the hidden width of s for every alpha, in order.
func Sweep(s Shape, alphas []float64) ([]Point, error) {
	points := make([]Point, 0, len(alphas))
	for _, alpha := range alphas {
		hidden, err := EstimateShape(s, alpha)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{Alpha: alpha, Hidden: hidden})
	}
	return points, nil
}
