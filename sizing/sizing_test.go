package sizing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	got, err := Estimate(10, 2, 600, 5)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, 1e-12)
}

func TestEstimateDefaultAlpha(t *testing.T) {
	got, err := EstimateDefault(3, 1, 100)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, 1e-12)
}

func TestEstimateMatchesFormula(t *testing.T) {
	for i := 0; i < 6; i++ {
		for o := 0; o < 6; o++ {
			if i+o == 0 {
				continue
			}
			for _, s := range []int{0, 1, 17, 1000, 123456} {
				for _, alpha := range []float64{0.5, 1, 2, 5, 10} {
					got, err := Estimate(i, o, s, alpha)
					require.NoError(t, err)
					assert.InDelta(t, float64(s)/(alpha*float64(i+o)), got, 1e-9)
				}
			}
		}
	}
}

func TestEstimateZeroSamples(t *testing.T) {
	got, err := Estimate(4, 3, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestEstimateInvalidDenominator(t *testing.T) {
	for _, alpha := range []float64{0.1, 1, 5, 100} {
		_, err := Estimate(0, 0, 500, alpha)
		assert.True(t, errors.Is(err, ErrInvalidDenominator), "alpha=%g", alpha)
	}

	_, err := Estimate(3, 2, 500, 0)
	assert.ErrorIs(t, err, ErrInvalidDenominator)
}

func TestEstimateMonotonicInSamples(t *testing.T) {
	prev := -1.0
	for s := 0; s <= 5000; s += 250 {
		got, err := Estimate(7, 3, s, 5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestEstimateMonotonicInAlpha(t *testing.T) {
	prev, err := Estimate(7, 3, 5000, 0.25)
	require.NoError(t, err)
	for alpha := 0.5; alpha <= 20; alpha += 0.5 {
		got, err := Estimate(7, 3, 5000, alpha)
		require.NoError(t, err)
		assert.LessOrEqual(t, got, prev)
		prev = got
	}
}

func TestEstimateShape(t *testing.T) {
	got, err := EstimateShape(Counts{Inputs: 10, Outputs: 2, Samples: 600}, DefaultAlpha)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, 1e-12)

	_, err = EstimateShape(Counts{Samples: 600}, DefaultAlpha)
	assert.ErrorIs(t, err, ErrInvalidDenominator)
}
