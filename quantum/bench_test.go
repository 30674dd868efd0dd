package quantum_test

import (
	"testing"

	"github.com/katalvlaran/varia/chebyshev"
	"github.com/katalvlaran/varia/quantum"
)

// benchmarkStates solves the harmonic well on an n-point grid.
func benchmarkStates(b *testing.B, n int) {
	x, err := chebyshev.Grid(-4, 4, n)
	if err != nil {
		b.Fatalf("Grid failed: %v", err)
	}
	V := make([]float64, n)
	for i, xi := range x {
		V[i] = xi * xi
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = quantum.States(V, x, quantum.WithCount(5)); err != nil {
			b.Fatalf("States failed: %v", err)
		}
	}
}

// BenchmarkStates_32 benchmarks a 32-node solve.
func BenchmarkStates_32(b *testing.B) { benchmarkStates(b, 32) }

// BenchmarkStates_64 benchmarks a 64-node solve.
func BenchmarkStates_64(b *testing.B) { benchmarkStates(b, 64) }
