package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/utl/svector"
)

// =============================================================================
// FIXED-CAPACITY VECTOR COMMANDS
// =============================================================================

type vectorFlags struct {
	capacity int
	raw      bool
}

func (f *vectorFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.capacity, "cap", "c", 5, "Vector capacity")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "Use raw aligned storage instead of value storage")
}

func (f *vectorFlags) strategy() string {
	if f.raw {
		return "raw"
	}
	return "value"
}

// vector is the strategy-independent surface the commands need.
type vector interface {
	Len() int
	TryPush(x int64) bool
	Ref(i int) *int64
	Erase(p *int64)
	Slice() []int64
}

func (f *vectorFlags) newVector() (vector, error) {
	if f.raw {
		v, err := svector.MakeRaw[int64](f.capacity)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	v, err := svector.Make[int64](f.capacity)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func parseValues(args []string) ([]int64, error) {
	values := make([]int64, 0, len(args))
	for _, a := range args {
		x, err := strconv.ParseInt(a, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		values = append(values, x)
	}
	return values, nil
}

// fill pushes values in order, logging every dropped push.
func fill(cmd *cobra.Command, f *vectorFlags, args []string) (vector, error) {
	values, err := parseValues(args)
	if err != nil {
		return nil, err
	}

	v, err := f.newVector()
	if err != nil {
		return nil, err
	}

	l := logger.WithCapacity(f.capacity).WithStrategy(f.strategy())
	for _, x := range values {
		ok := v.TryPush(x)
		l.LogPush(cmd.Context(), x, ok, v.Len())
	}
	return v, nil
}

func newDemoCmd() *cobra.Command {
	f := &vectorFlags{}
	cmd := &cobra.Command{
		Use:   "demo [values...]",
		Short: "Push values into a fixed-capacity vector and print it",
		Long: `Push values in order into a vector of fixed capacity.
Values beyond the capacity are dropped. Without arguments pushes 1..6.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"1", "2", "3", "4", "5", "6"}
			}
			v, err := fill(cmd, f, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Slice())
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newEraseCmd() *cobra.Command {
	f := &vectorFlags{}
	var at int
	cmd := &cobra.Command{
		Use:   "erase --at INDEX values...",
		Short: "Swap-remove one element and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := fill(cmd, f, args)
			if err != nil {
				return err
			}
			if at < 0 || at >= v.Len() {
				return fmt.Errorf("index %d out of range [0:%d]", at, v.Len())
			}
			v.Erase(v.Ref(at))
			logger.LogErase(cmd.Context(), at, v.Len())
			fmt.Fprintln(cmd.OutOrStdout(), v.Slice())
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&at, "at", 0, "Index of the element to erase")
	return cmd
}
