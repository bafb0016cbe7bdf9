package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/utl/svector"
	"github.com/hupe1980/utl/timing"
)

// =============================================================================
// BENCHMARK COMMAND
// =============================================================================

func newBenchCmd() *cobra.Command {
	var (
		calls    int
		capacity int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time fill/drain cycles of both storage strategies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := svector.Make[uint64](capacity)
			if err != nil {
				return err
			}
			raw, err := svector.MakeRaw[uint64](capacity)
			if err != nil {
				return err
			}

			results := []timing.Result{
				timing.Measure("value", calls, func() { cycle(value) }),
				timing.Measure("raw", calls, func() { cycle(raw) }),
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STRATEGY\tCALLS\tTOTAL\tAVG")
			for _, r := range results {
				logger.LogMeasure(cmd.Context(), r)
				fmt.Fprintf(tw, "%s\t%d\t%v\t%v\n", r.Name, r.Calls, r.Total, r.Avg())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&calls, "calls", "n", 10000, "Number of fill/drain cycles")
	cmd.Flags().IntVarP(&capacity, "cap", "c", 256, "Vector capacity")
	return cmd
}

// cycle fills v to capacity and drains it by erasing the front element.
func cycle[S svector.Storage[uint64]](v *svector.Vector[uint64, S]) {
	for i := uint64(0); !v.Full(); i++ {
		v.Push(i)
	}
	for !v.Empty() {
		v.EraseAt(0)
	}
}
