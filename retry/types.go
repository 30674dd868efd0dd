package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNilFunc - the operation to retry is nil.
	ErrNilFunc = errors.New("retry: nil function")
	// ErrExhausted - every allowed attempt failed; wraps the final cause.
	ErrExhausted = errors.New("retry: attempts exhausted")
	// ErrOptionViolation - an option received an unusable value.
	ErrOptionViolation = errors.New("retry: option violation")
)

const (
	// DefaultMaxRetries allows four calls in total before giving up.
	DefaultMaxRetries = 3
	// DefaultDelay is the wait before the first re-attempt.
	DefaultDelay = 100 * time.Millisecond
	// DefaultBackoff doubles the wait after every failed attempt.
	DefaultBackoff = 2.0
)

// Options carries the retry policy. Zero values are never used
// directly; DefaultOptions fills the baseline and With* options adjust
// it. Violations are recorded and surfaced by Do before the first call.
type Options struct {
	ctx        context.Context
	maxRetries int
	delay      time.Duration
	backoff    float64
	maxDelay   time.Duration // 0 means uncapped
	retryIf    func(error) bool
	onRetry    func(attempt int, err error)
	err        error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline policy: 3 retries, 100ms initial
// delay, doubling, no cap, background context.
func DefaultOptions() Options {
	return Options{
		ctx:        context.Background(),
		maxRetries: DefaultMaxRetries,
		delay:      DefaultDelay,
		backoff:    DefaultBackoff,
	}
}

// WithContext bounds the retry loop by ctx: a finished context stops
// waiting and fails the whole Do.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.recordViolation("nil context")

			return
		}
		o.ctx = ctx
	}
}

// WithMaxRetries sets how many re-attempts follow the first call; the
// worst case runs n+1 calls. Zero disables retrying.
func WithMaxRetries(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.recordViolation("negative max retries")

			return
		}
		o.maxRetries = n
	}
}

// WithDelay sets the wait before the first re-attempt. Zero retries
// immediately.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.recordViolation("negative delay")

			return
		}
		o.delay = d
	}
}

// WithBackoff sets the factor applied to the delay after each failed
// attempt. One keeps the delay constant.
func WithBackoff(factor float64) Option {
	return func(o *Options) {
		if factor < 1 || math.IsInf(factor, 1) || math.IsNaN(factor) {
			o.recordViolation("backoff factor below 1 or not finite")

			return
		}
		o.backoff = factor
	}
}

// WithMaxDelay caps the grown delay. Zero removes the cap.
func WithMaxDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.recordViolation("negative max delay")

			return
		}
		o.maxDelay = d
	}
}

// WithRetryIf limits retrying to errors the predicate accepts; any
// other error returns unwrapped after its single attempt.
func WithRetryIf(pred func(error) bool) Option {
	return func(o *Options) {
		if pred == nil {
			o.recordViolation("nil retry predicate")

			return
		}
		o.retryIf = pred
	}
}

// WithOnRetry observes every re-attempt before its wait: attempt counts
// from 1 and err is the failure that triggered it.
func WithOnRetry(hook func(attempt int, err error)) Option {
	return func(o *Options) {
		if hook == nil {
			o.recordViolation("nil retry hook")

			return
		}
		o.onRetry = hook
	}
}

// recordViolation keeps the first option problem for Do to report.
func (o *Options) recordViolation(msg string) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, msg)
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
