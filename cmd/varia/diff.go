package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/katalvlaran/varia/chebyshev"
	"github.com/spf13/cobra"
)

var (
	diffPoints int
	diffOrder  int
	diffXMin   float64
	diffXMax   float64
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "differentiate sin on a chebyshev grid",
		RunE:  runDiff,
	}
	cmd.Flags().IntVar(&diffPoints, "points", 32, "grid points")
	cmd.Flags().IntVar(&diffOrder, "order", 1, "derivative order")
	cmd.Flags().Float64Var(&diffXMin, "xmin", 0, "domain start")
	cmd.Flags().Float64Var(&diffXMax, "xmax", 2*math.Pi, "domain end")

	return cmd
}

func runDiff(*cobra.Command, []string) error {
	x, err := chebyshev.Grid(diffXMin, diffXMax, diffPoints)
	if err != nil {
		return err
	}

	f := make([]float64, len(x))
	want := make([]float64, len(x))
	// The k-th derivative of sin advances the phase by k*pi/2.
	shift := float64(diffOrder) * math.Pi / 2
	for i, xi := range x {
		f[i] = math.Sin(xi)
		want[i] = math.Sin(xi + shift)
	}

	got, err := chebyshev.Derivative(f, x, diffOrder)
	if err != nil {
		return err
	}

	maxErr := 0.0
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > maxErr {
			maxErr = d
		}
	}
	slog.Debug("differentiated", "points", diffPoints, "order", diffOrder)

	fmt.Printf("order-%d derivative of sin on [%g, %g], %d points\n",
		diffOrder, diffXMin, diffXMax, diffPoints)
	fmt.Printf("max error vs analytic: %.3e\n\n", maxErr)

	fmt.Println(asciigraph.PlotMany([][]float64{got, want},
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("computed vs analytic"),
	))

	return nil
}
