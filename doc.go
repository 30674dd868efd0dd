// Package varia is a personal toolbox of numeric and function-shaping
// helpers: spectral calculus on Chebyshev grids on one side, runtime
// function plumbing on the other.
//
// 🚀 What is varia?
//
//	Two small families under one roof:
//		• Numerics: Chebyshev grids & differentiation matrices, a bound-state
//		  eigensolver, linear/log interpolation, trapezoidal integration in
//		  any rank, and a complex-frame transform helper
//		• Function tools: decorator chains, runtime type guards, call-site
//		  multiple dispatch, and retry with backoff
//
// ✨ Why varia?
//
//   - Small, explicit APIs: one operation per function, errors spelled out
//   - Sentinel errors everywhere: errors.Is tells you exactly what failed
//   - gonum under the numerics: dense matrices, eigensolvers, quadrature
//   - Reflection kept at the edges: guard and dispatch wrap it once, the
//     rest of your code stays typed
//
// Under the hood, everything is organized per concern:
//
//	chebyshev/ - grids, differentiation matrices, spectral derivatives
//	quantum/   - 1-D bound states: energies and normalised waves
//	interp/    - linear, transformed and log-log interpolation
//	quad/      - trapezoidal integration over 1-D and N-D samples
//	coords/    - run a callback inside a shifted, rotated complex frame
//	wrap/      - decorator chains and composition
//	guard/     - argument type checks before a call goes through
//	dispatch/  - pick an implementation by runtime argument types
//	retry/     - bounded re-attempts with growing delays
//	cmd/varia/ - demo CLI: spectra and spectral derivatives in the terminal
//
// Quick taste:
//
//	x, _ := chebyshev.Grid(-4, 4, 64)       // 64 clustered nodes
//	V := make([]float64, len(x))
//	for i, xi := range x {
//		V[i] = xi * xi                  // harmonic well
//	}
//	spec, _ := quantum.States(V, x)         // E_n ≈ h(2n+1)
//
// Dive into the per-package docs for the full contracts, examples and
// benchmarks.
//
//	go get github.com/katalvlaran/varia
package varia
