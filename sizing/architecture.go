package sizing

import (
	"fmt"
	"strconv"
	"strings"
)

// bytesPerNumber is the size of a float32 activation.
const bytesPerNumber = 4

// Architecture is a full sequence of fully connected layer widths, input first.
type Architecture struct {
	Layers []int
}

// NewArchitecture returns the three-layer architecture inputs-hidden-outputs.
func NewArchitecture(inputs, hidden, outputs int) *Architecture {
	return &Architecture{
		Layers: []int{inputs, hidden, outputs},
	}
}

// ParseArchitecture parses layer widths separated by spaces or commas, e.g. "12 10 2".
func ParseArchitecture(archStr string) (*Architecture, error) {
	archParts := strings.FieldsFunc(archStr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '-'
	})
	if len(archParts) < 2 {
		return nil, fmt.Errorf("architecture must have at least 2 layers (input and output)")
	}
	arch := make([]int, len(archParts))
	for i, s := range archParts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("parsing layer %d: %w", i, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("layer %d must be positive, got %d", i, n)
		}
		arch[i] = n
	}
	return &Architecture{Layers: arch}, nil
}

// Params counts weights and biases of the fully connected stack.
func (a *Architecture) Params() int {
	total := 0
	for i := 0; i < len(a.Layers)-1; i++ {
		total += a.Layers[i]*a.Layers[i+1] + a.Layers[i+1]
	}
	return total
}

// ActivationMemoryMB estimates the memory needed to hold every layer's outputs
// for numSamples rows at float32 precision.
func (a *Architecture) ActivationMemoryMB(numSamples int) float64 {
	var totalMemory int64
	for _, size := range a.Layers {
		totalMemory += int64(numSamples) * int64(size) * bytesPerNumber
	}
	return float64(totalMemory) / (1024 * 1024)
}

func (a *Architecture) String() string {
	parts := make([]string, len(a.Layers))
	for i, n := range a.Layers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}
