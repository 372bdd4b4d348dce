package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"layersize/sizing"
)

// Version of the recommendation file format.
const Version = "1.0"

// Recommendation is a serializable hidden-layer estimate for one dataset.
type Recommendation struct {
	Version    string    `json:"version"`
	Dataset    string    `json:"dataset,omitempty"`
	Target     string    `json:"target,omitempty"`
	Inputs     int       `json:"inputs"`
	Outputs    int       `json:"outputs"`
	Samples    int       `json:"samples"`
	Alpha      float64   `json:"alpha"`
	Hidden     float64   `json:"hidden"`
	Rounding   string    `json:"rounding"`
	Rounded    float64   `json:"rounded"`
	Layers     []int     `json:"layers,omitempty"`
	Params     int       `json:"params,omitempty"`
	ActivMemMB float64   `json:"activation_memory_mb,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// New estimates the hidden width of s and fills a Recommendation. Layers and
// Params are only set when the rounded width is at least one unit.
func New(dataset string, s sizing.Shape, alpha float64, rounding sizing.Rounding) (*Recommendation, error) {
	hidden, err := sizing.EstimateShape(s, alpha)
	if err != nil {
		return nil, err
	}

	rec := &Recommendation{
		Version:   Version,
		Dataset:   dataset,
		Inputs:    s.InputCount(),
		Outputs:   s.OutputCount(),
		Samples:   s.SampleCount(),
		Alpha:     alpha,
		Hidden:    hidden,
		Rounding:  string(rounding),
		Rounded:   rounding.Apply(hidden),
		CreatedAt: time.Now().UTC(),
	}
	if width := int(rec.Rounded); rounding != sizing.RoundNone && width >= 1 {
		arch := sizing.NewArchitecture(rec.Inputs, width, rec.Outputs)
		rec.Layers = arch.Layers
		rec.Params = arch.Params()
		rec.ActivMemMB = arch.ActivationMemoryMB(rec.Samples)
	}
	return rec, nil
}

// FileName is the models-directory file name for a dataset's recommendation.
func FileName(dataset string) string {
	if dataset == "" {
		dataset = "layersize"
	}
	return dataset + ".layersize.json"
}

// Save saves a recommendation to a JSON file
func Save(filepath string, rec *Recommendation) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}
	return os.WriteFile(filepath, data, 0644)
}

// Load loads a recommendation from a JSON file
func Load(filepath string) (*Recommendation, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read recommendation file: %w", err)
	}
	var rec Recommendation
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendation: %w", err)
	}
	return &rec, nil
}

// Print writes a human-readable summary of rec.
func Print(w io.Writer, rec *Recommendation) {
	if rec.Dataset != "" {
		fmt.Fprintf(w, "Dataset:      %s\n", rec.Dataset)
	}
	if rec.Target != "" {
		fmt.Fprintf(w, "Target:       %s\n", rec.Target)
	}
	fmt.Fprintf(w, "Inputs:       %d\n", rec.Inputs)
	fmt.Fprintf(w, "Outputs:      %d\n", rec.Outputs)
	fmt.Fprintf(w, "Samples:      %d\n", rec.Samples)
	fmt.Fprintf(w, "Alpha:        %g\n", rec.Alpha)
	fmt.Fprintf(w, "Hidden size:  %g\n", rec.Hidden)
	if rec.Rounding != "" && rec.Rounding != string(sizing.RoundNone) {
		fmt.Fprintf(w, "Rounded (%s): %g\n", rec.Rounding, rec.Rounded)
	}
	if len(rec.Layers) > 0 {
		PrintArchitecture(w, &sizing.Architecture{Layers: rec.Layers}, rec.Samples)
	}
}

// PrintArchitecture writes the layer list of arch with its parameter count and
// the activation memory for numSamples rows.
func PrintArchitecture(w io.Writer, arch *sizing.Architecture, numSamples int) {
	fmt.Fprintf(w, "Architecture: %s (%d params, %.2f MB activations)\n", arch.String(), arch.Params(), arch.ActivationMemoryMB(numSamples))
}
