package main

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"layersize/config"
	"layersize/sizing"
)

type rootOptions struct {
	verbose    bool
	root       string
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "layersize",
		Short: "Recommend hidden-layer sizes for tabular networks",
		Long: `layersize estimates a hidden-layer width from the size of a training set:

  hidden = samples / (alpha * (inputs + outputs))`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), opts.verbose))
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&opts.root, "root", "", "Project root (default: parent of the working directory); directories set in --config are kept")
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML config file")

	cmd.AddCommand(
		newEstimateCmd(opts),
		newDatasetCmd(opts),
		newSweepCmd(opts),
	)
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

// loadConfig reads --config when given, otherwise the defaults. --root
// replaces the root of either; directories set in the config file are kept.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configFile != "" {
		cfg, err = config.LoadWithRoot(o.configFile, o.root)
	} else {
		cfg, err = config.Default()
		if err == nil && o.root != "" {
			cfg.Paths = config.NewPaths(o.root)
		}
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("config loaded", "root", cfg.Paths.Root, "alpha", cfg.Alpha, "rounding", cfg.Rounding)
	return cfg, nil
}

// estimateFlags are shared by commands that take the three counts directly.
type estimateFlags struct {
	inputs   int
	outputs  int
	samples  int
	alpha    float64
	rounding string
}

func (f *estimateFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&f.inputs, "inputs", "i", 0, "Number of input feature columns")
	flags.IntVarP(&f.outputs, "outputs", "o", 0, "Number of distinct output categories")
	flags.IntVarP(&f.samples, "samples", "s", 0, "Number of training samples")
	flags.Float64VarP(&f.alpha, "alpha", "a", sizing.DefaultAlpha, "Scaling factor")
	flags.StringVarP(&f.rounding, "rounding", "r", string(sizing.RoundNone), "Rounding policy: none, floor, round, ceil, pow2")
}

// applyConfig takes alpha and rounding from cfg unless set on the command line.
func (f *estimateFlags) applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("alpha") {
		f.alpha = cfg.Alpha
	}
	if !cmd.Flags().Changed("rounding") {
		f.rounding = cfg.Rounding
	}
}

func (f *estimateFlags) counts() sizing.Counts {
	return sizing.Counts{Inputs: f.inputs, Outputs: f.outputs, Samples: f.samples}
}
