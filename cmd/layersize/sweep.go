package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"layersize/sizing"
)

func newSweepCmd(root *rootOptions) *cobra.Command {
	f := &estimateFlags{}
	var (
		from  float64
		to    float64
		steps int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate hidden-layer sizes over a range of alphas",
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
			alphas, err := sizing.AlphaRange(from, to, steps)
			if err != nil {
				return err
			}
			points, err := sizing.Sweep(f.counts(), alphas)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ALPHA\tHIDDEN\tROUNDED")
			for _, p := range points {
				fmt.Fprintf(w, "%g\t%g\t%g\n", p.Alpha, p.Hidden, rounding.Apply(p.Hidden))
			}
			return w.Flush()
		},
	}
	f.register(cmd)
	cmd.Flags().Float64Var(&from, "from", 2, "Smallest alpha")
	cmd.Flags().Float64Var(&to, "to", 10, "Largest alpha")
	cmd.Flags().IntVar(&steps, "steps", 9, "Number of alphas")
	return cmd
}
