package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"layersize/sizing"
)

const (
	DefaultValidFraction = 0.2
	DefaultSeed          = 42
)

// Paths locates project data. It is passed to whatever needs it.
type Paths struct {
	Root        string `yaml:"root"`
	RawData     string `yaml:"raw"`
	InterimData string `yaml:"interim"`
	Models      string `yaml:"models"`
}

// NewPaths lays out the standard directories under root.
func NewPaths(root string) Paths {
	return Paths{
		Root:        root,
		RawData:     filepath.Join(root, "data", "raw"),
		InterimData: filepath.Join(root, "data", "interim"),
		Models:      filepath.Join(root, "models"),
	}
}

// DefaultPaths uses the parent of the working directory as root, matching a
// notebooks/ directory that sits next to data/ and models/.
func DefaultPaths() (Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Paths{}, fmt.Errorf("resolving working directory: %w", err)
	}
	return NewPaths(filepath.Dir(wd)), nil
}

// Raw resolves name against the raw data directory unless it is absolute.
func (p Paths) Raw(name string) string {
	return resolve(p.RawData, name)
}

// Interim resolves name against the interim data directory unless it is absolute.
func (p Paths) Interim(name string) string {
	return resolve(p.InterimData, name)
}

// Model resolves name against the models directory unless it is absolute.
func (p Paths) Model(name string) string {
	return resolve(p.Models, name)
}

// EnsureDirs creates the directories this tool writes to.
func (p Paths) EnsureDirs() error {
	for _, dir := range []string{p.InterimData, p.Models} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// fill derives empty directories from Root and anchors relative ones to it.
func (p *Paths) fill() {
	std := NewPaths(p.Root)
	if p.RawData == "" {
		p.RawData = std.RawData
	}
	if p.InterimData == "" {
		p.InterimData = std.InterimData
	}
	if p.Models == "" {
		p.Models = std.Models
	}
	p.RawData = resolve(p.Root, p.RawData)
	p.InterimData = resolve(p.Root, p.InterimData)
	p.Models = resolve(p.Root, p.Models)
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Config holds estimation configuration
type Config struct {
	Paths         Paths    `yaml:"paths"`
	Alpha         float64  `yaml:"alpha"`
	Target        string   `yaml:"target"`
	Exclude       []string `yaml:"exclude"`
	ValidFraction float64  `yaml:"valid_fraction"`
	Seed          uint64   `yaml:"seed"`
	Rounding      string   `yaml:"rounding"`
}

// Default returns a config rooted at DefaultPaths.
func Default() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return &Config{
		Paths:         paths,
		Alpha:         sizing.DefaultAlpha,
		ValidFraction: DefaultValidFraction,
		Seed:          DefaultSeed,
		Rounding:      string(sizing.RoundNone),
	}, nil
}

// Load reads a YAML config. Fields the file leaves out keep their defaults.
// paths.root is relative to the file's directory and defaults to it.
func Load(path string) (*Config, error) {
	return LoadWithRoot(path, "")
}

// LoadWithRoot is Load with paths.root replaced by root when root is not
// empty. Directories the file sets stay as given; relative ones are anchored
// to the new root.
func LoadWithRoot(path, root string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	cfg.Paths = Paths{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if root != "" {
		cfg.Paths.Root = absOrSelf(root)
	} else {
		cfg.Paths.Root = resolve(filepath.Dir(absOrSelf(path)), cfg.Paths.Root)
	}
	cfg.Paths.fill()

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func absOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// ValidateConfig validates estimation configuration
func ValidateConfig(config *Config) error {
	if config.Alpha <= 0 {
		return fmt.Errorf("alpha must be positive")
	}

	if config.ValidFraction < 0 || config.ValidFraction >= 1 {
		return fmt.Errorf("valid fraction must be in [0, 1)")
	}

	if _, err := sizing.ParseRounding(config.Rounding); err != nil {
		return err
	}

	if config.Paths.Root == "" {
		return fmt.Errorf("paths.root must be set")
	}

	return nil
}
