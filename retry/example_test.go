package retry_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/varia/retry"
)

//////////////////////////////////////////////////////////////
// ExampleDo - absorb two transient glitches and stop at the
// first success.
//
// Scenario:
//  1. The operation fails twice, then settles.
//  2. Do reports success and three calls in total.
//////////////////////////////////////////////////////////////

func ExampleDo() {
	attempts := 0
	err := retry.Do(func() error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("glitch %d", attempts)
		}

		return nil
	}, retry.WithDelay(0))

	fmt.Println(err, attempts)

	// Output:
	// <nil> 3
}

//////////////////////////////////////////////////////////////
// ExampleDoValue - give up on a service that never answers.
//
// Scenario:
//  1. Two calls in total (one retry), both failing.
//  2. The zero value comes back with an exhaustion error that
//     still carries the cause.
//////////////////////////////////////////////////////////////

func ExampleDoValue() {
	offline := errors.New("offline")
	v, err := retry.DoValue(func() (string, error) {
		return "", offline
	}, retry.WithMaxRetries(1), retry.WithDelay(0))

	fmt.Printf("value=%q exhausted=%v cause=%v\n",
		v, errors.Is(err, retry.ErrExhausted), errors.Is(err, offline))

	// Output:
	// value="" exhausted=true cause=true
}
