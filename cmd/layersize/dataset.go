package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"layersize/config"
	"layersize/report"
	"layersize/sizing"
	"layersize/tabular"
)

type datasetFlags struct {
	target   string
	exclude  []string
	alpha    float64
	rounding string
	valid    float64
	seed     uint64
	save     bool
	describe bool
}

func newDatasetCmd(root *rootOptions) *cobra.Command {
	f := &datasetFlags{}
	cmd := &cobra.Command{
		Use:   "dataset <file.csv>",
		Short: "Estimate a hidden-layer size from a CSV training table",
		Long: `Reads a CSV file with a header row, holds out a validation split and
estimates the hidden-layer size from the training rows. Relative paths are
resolved against the raw data directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			f.applyConfig(cmd, cfg)
			if err := config.ValidateConfig(cfg); err != nil {
				return err
			}
			return runDataset(cmd, cfg, f, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.target, "target", "t", "", "Target column")
	flags.StringSliceVarP(&f.exclude, "exclude", "x", nil, "Columns left out of the features")
	flags.Float64VarP(&f.alpha, "alpha", "a", sizing.DefaultAlpha, "Scaling factor")
	flags.StringVarP(&f.rounding, "rounding", "r", string(sizing.RoundNone), "Rounding policy: none, floor, round, ceil, pow2")
	flags.Float64Var(&f.valid, "valid", config.DefaultValidFraction, "Fraction of rows held out for validation")
	flags.Uint64Var(&f.seed, "seed", config.DefaultSeed, "Split seed")
	flags.BoolVar(&f.save, "save", false, "Write the recommendation to the models directory")
	flags.BoolVar(&f.describe, "describe", false, "Write a column summary to the interim directory")
	return cmd
}

// applyConfig merges command-line flags into cfg; flags set explicitly win.
func (f *datasetFlags) applyConfig(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("target") || cfg.Target == "" {
		cfg.Target = f.target
	}
	if changed("exclude") {
		cfg.Exclude = f.exclude
	}
	if changed("alpha") {
		cfg.Alpha = f.alpha
	}
	if changed("rounding") {
		cfg.Rounding = f.rounding
	}
	if changed("valid") {
		cfg.ValidFraction = f.valid
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
}

func runDataset(cmd *cobra.Command, cfg *config.Config, f *datasetFlags, file string) error {
	rounding, err := sizing.ParseRounding(cfg.Rounding)
	if err != nil {
		return err
	}

	path := cfg.Paths.Raw(file)
	slog.Debug("loading dataset", "path", path, "target", cfg.Target)
	table, err := tabular.Load(path, tabular.Options{Target: cfg.Target, Exclude: cfg.Exclude})
	if err != nil {
		return err
	}

	train, valid, err := table.Split(cfg.ValidFraction, cfg.Seed)
	if err != nil {
		return err
	}
	slog.Debug("split dataset", "train", train.SampleCount(), "valid", valid.SampleCount())

	rec, err := report.New(table.Name, train, cfg.Alpha, rounding)
	if err != nil {
		return fmt.Errorf("%s: %w", table.Name, err)
	}
	rec.Target = cfg.Target
	report.Print(cmd.OutOrStdout(), rec)

	if !f.save && !f.describe {
		return nil
	}
	if err := cfg.Paths.EnsureDirs(); err != nil {
		return err
	}

	if f.save {
		out := cfg.Paths.Model(report.FileName(table.Name))
		if err := report.Save(out, rec); err != nil {
			return err
		}
		slog.Info("saved recommendation", "path", out)
	}

	if f.describe {
		out := cfg.Paths.Interim(table.Name + ".summary.csv")
		if err := writeSummary(out, train); err != nil {
			return err
		}
		slog.Info("saved column summary", "path", out)
	}
	return nil
}

func writeSummary(path string, table *tabular.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary: %w", err)
	}
	if err := tabular.WriteSummary(file, table.Describe()); err != nil {
		file.Close()
		return fmt.Errorf("write summary: %w", err)
	}
	return file.Close()
}
