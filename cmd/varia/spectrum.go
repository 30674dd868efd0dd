package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/katalvlaran/varia/chebyshev"
	"github.com/katalvlaran/varia/quantum"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	specPoints    int
	specHBar      float64
	specCount     int
	specXMin      float64
	specXMax      float64
	specPotential string
	specPlot      int
	specPreset    string
	specConfig    string
	specSave      string
)

// Snapshot is the yaml result written by --save.
type Snapshot struct {
	Potential string    `yaml:"potential"`
	HBar      float64   `yaml:"hbar"`
	Points    int       `yaml:"points"`
	Domain    []float64 `yaml:"domain,flow"`
	Energies  []float64 `yaml:"energies,flow"`
}

func newSpectrumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "solve bound states of a 1-d potential",
		RunE:  runSpectrum,
	}
	cmd.Flags().IntVar(&specPoints, "points", DefaultPoints, "grid points")
	cmd.Flags().Float64Var(&specHBar, "hbar", quantum.DefaultHBar, "reduced planck constant")
	cmd.Flags().IntVar(&specCount, "count", DefaultCount, "states to keep")
	cmd.Flags().Float64Var(&specXMin, "xmin", -4, "left wall")
	cmd.Flags().Float64Var(&specXMax, "xmax", 4, "right wall")
	cmd.Flags().StringVar(&specPotential, "potential", "harmonic", "well|harmonic|doublewell")
	cmd.Flags().IntVar(&specPlot, "plot", DefaultPlot, "densities to draw (0 disables)")
	cmd.Flags().StringVar(&specPreset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&specConfig, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&specSave, "save", "", "write result snapshot (yaml)")

	return cmd
}

func runSpectrum(cmd *cobra.Command, _ []string) error {
	cfg := DefaultConfig()

	if specPreset != "" {
		p := getPreset(specPreset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %s)",
				specPreset, strings.Join(listPresets(), ", "))
		}
		cfg = p
	}
	if specConfig != "" {
		loaded, err := LoadConfig(specConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// Explicit flags override preset and config file.
	f := cmd.Flags()
	if f.Changed("points") {
		cfg.Points = specPoints
	}
	if f.Changed("hbar") {
		cfg.HBar = specHBar
	}
	if f.Changed("count") {
		cfg.Count = specCount
	}
	if f.Changed("xmin") {
		cfg.XMin = specXMin
	}
	if f.Changed("xmax") {
		cfg.XMax = specXMax
	}
	if f.Changed("potential") {
		cfg.Potential = specPotential
	}
	if f.Changed("plot") {
		cfg.Plot = specPlot
	}

	slog.Debug("assembling problem",
		"potential", cfg.Potential, "points", cfg.Points,
		"xmin", cfg.XMin, "xmax", cfg.XMax)

	x, err := chebyshev.Grid(cfg.XMin, cfg.XMax, cfg.Points)
	if err != nil {
		return err
	}
	V, err := potentialOn(cfg.Potential, x)
	if err != nil {
		return err
	}

	spec, err := quantum.States(V, x,
		quantum.WithHBar(cfg.HBar), quantum.WithCount(cfg.Count))
	if err != nil {
		return err
	}
	slog.Info("solved", "potential", cfg.Potential, "states", spec.Count())

	fmt.Printf("%s potential on [%g, %g], %d points, hbar=%g\n\n",
		cfg.Potential, cfg.XMin, cfg.XMax, cfg.Points, cfg.HBar)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tENERGY")
	for i, e := range spec.Energies {
		fmt.Fprintf(w, "%d\t%.6f\n", i+1, e)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for k := 0; k < cfg.Plot && k < spec.Count(); k++ {
		density := make([]float64, len(x))
		for i, p := range spec.Waves[k] {
			density[i] = p * p
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(density,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("|psi_%d|^2, E=%.4f", k+1, spec.Energies[k])),
		))
	}

	if specSave != "" {
		snap := &Snapshot{
			Potential: cfg.Potential,
			HBar:      cfg.HBar,
			Points:    cfg.Points,
			Domain:    []float64{cfg.XMin, cfg.XMax},
			Energies:  spec.Energies,
		}
		data, err := yaml.Marshal(snap)
		if err != nil {
			return err
		}
		if err := os.WriteFile(specSave, data, 0644); err != nil {
			return err
		}
		slog.Info("snapshot written", "path", specSave)
	}

	return nil
}

// potentialOn samples the named potential on the grid. The flat well
// relies on the solver's own walls.
func potentialOn(name string, x []float64) ([]float64, error) {
	V := make([]float64, len(x))
	switch name {
	case "well":
	case "harmonic":
		for i, xi := range x {
			V[i] = xi * xi
		}
	case "doublewell":
		for i, xi := range x {
			s := xi*xi - 1
			V[i] = s * s
		}
	default:
		return nil, fmt.Errorf("unknown potential: %s (well, harmonic, doublewell)", name)
	}

	return V, nil
}
