// Package wrap stacks behaviour around functions without touching
// their bodies.
//
// 🚀 What is wrap?
//
//	A Decorator[F] takes a function of shape F and returns an enhanced
//	function of the same shape. Chain applies a stack of them to one
//	function; Compose fuses a stack into a single reusable decorator.
//
// ✨ Conventions:
//   - parametrized decorators are factories: a plain function takes the
//     parameters and returns the Decorator, so `retried(3)` and
//     `tagged("audit")` read like configuration
//   - Chain applies in declaration order: the first decorator listed is
//     the outermost layer; its before-logic runs first and its
//     after-logic runs last
//   - nil decorators are skipped, so optional layers can stay nil
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varia/wrap"
//
//	type fetch = func(string) (string, error)
//
//	hardened := wrap.Chain(rawFetch,
//	        timed(metrics),   // outermost: times everything below
//	        retried(3),
//	        validated(),
//	)
//
// The same stack, fused once and reused:
//
//	harden := wrap.Compose[fetch](timed(metrics), retried(3), validated())
//	a, b := harden(fetchUsers), harden(fetchOrders)
package wrap
