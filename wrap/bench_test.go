package wrap_test

import (
	"testing"

	"github.com/katalvlaran/varia/wrap"
)

// benchmarkDepth measures call overhead through a stack of pass-through
// layers.
func benchmarkDepth(b *testing.B, depth int) {
	pass := wrap.Decorator[func(int) int](func(next func(int) int) func(int) int {
		return func(n int) int { return next(n) }
	})
	ds := make([]wrap.Decorator[func(int) int], depth)
	for i := range ds {
		ds[i] = pass
	}
	f := wrap.Chain(func(n int) int { return n + 1 }, ds...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if f(i) != i+1 {
			b.Fatal("wrong result")
		}
	}
}

func BenchmarkChain_Depth1(b *testing.B) { benchmarkDepth(b, 1) }
func BenchmarkChain_Depth8(b *testing.B) { benchmarkDepth(b, 8) }
