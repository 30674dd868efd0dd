package retry

import (
	"context"
	"fmt"
	"time"
)

// Do runs fn until it returns nil, the attempts run out, or the context
// ends. A success returns immediately. Exhaustion returns an error
// wrapping ErrExhausted and the final cause; a non-retryable error is
// returned exactly as fn produced it.
func Do(fn func() error, opts ...Option) error {
	if fn == nil {
		return ErrNilFunc
	}
	o := gatherOptions(opts...)
	if o.err != nil {
		return o.err
	}
	if err := o.ctx.Err(); err != nil {
		// Dead on arrival: fn never runs.
		return err
	}

	var last error
	delay := o.delay
	for attempt := 0; attempt <= o.maxRetries; attempt++ {
		if attempt > 0 {
			if o.onRetry != nil {
				o.onRetry(attempt, last)
			}
			if err := wait(o.ctx, delay); err != nil {
				return fmt.Errorf("%w (last error: %w)", err, last)
			}
			delay = nextDelay(delay, o.backoff, o.maxDelay)
		}
		if last = fn(); last == nil {
			return nil
		}
		if o.retryIf != nil && !o.retryIf(last) {
			return last
		}
	}

	return fmt.Errorf("%w: %d attempts: %w", ErrExhausted, o.maxRetries+1, last)
}

// DoValue is Do for operations that produce a value. On failure the
// zero value comes back alongside the error.
func DoValue[T any](fn func() (T, error), opts ...Option) (T, error) {
	var zero T
	if fn == nil {
		return zero, ErrNilFunc
	}

	var out T
	err := Do(func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		out = v

		return nil
	}, opts...)
	if err != nil {
		return zero, err
	}

	return out, nil
}

// wait blocks for d or until ctx ends, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// nextDelay grows d by factor, capped by limit when a cap is set.
func nextDelay(d time.Duration, factor float64, limit time.Duration) time.Duration {
	grown := time.Duration(float64(d) * factor)
	if limit > 0 && grown > limit {
		return limit
	}

	return grown
}
