package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"layersize/report"
	"layersize/sizing"
)

func newEstimateCmd(root *rootOptions) *cobra.Command {
	f := &estimateFlags{}
	var archStr string
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a hidden-layer size from raw counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			f.applyConfig(cmd, cfg)

			rounding, err := sizing.ParseRounding(f.rounding)
			if err != nil {
				return err
			}
			rec, err := report.New("", f.counts(), f.alpha, rounding)
			if err != nil {
				return err
			}
			report.Print(cmd.OutOrStdout(), rec)

			if archStr == "" {
				return nil
			}
			arch, err := sizing.ParseArchitecture(archStr)
			if err != nil {
				return fmt.Errorf("--arch: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nCandidate:")
			report.PrintArchitecture(cmd.OutOrStdout(), arch, f.samples)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&archStr, "arch", "", `Layer widths to compare, e.g. "12 16 2" or "12,16,2"`)
	return cmd
}
