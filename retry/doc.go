// Package retry repeats a failing operation with a growing delay until
// it succeeds, gives up, or its context ends.
//
// 🚀 What is retry?
//
//	Do wraps any func() error; DoValue wraps funcs that also produce a
//	value. An operation that succeeds runs exactly once. One that keeps
//	failing runs max-retries+1 times in total, with a wait between
//	attempts that multiplies by the backoff factor each round.
//
// ✨ Behaviour:
//   - success returns immediately; no wait is paid after the last call
//   - exhaustion returns an error wrapping both ErrExhausted and the
//     final cause, so errors.Is works against either
//   - WithRetryIf marks errors as non-retryable; those return unwrapped
//     after a single attempt
//   - WithContext bounds the whole loop: cancellation interrupts a wait
//     and is reported together with the last cause
//   - WithOnRetry observes every re-attempt, for logs or counters
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varia/retry"
//
//	cfg, err := retry.DoValue(loadRemoteConfig,
//	        retry.WithMaxRetries(5),
//	        retry.WithDelay(200*time.Millisecond),
//	        retry.WithBackoff(2),
//	        retry.WithMaxDelay(3*time.Second),
//	        retry.WithContext(ctx),
//	)
//
// Defaults: 3 retries, 100ms initial delay, factor 2, no delay cap.
package retry
