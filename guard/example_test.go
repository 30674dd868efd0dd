package guard_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/varia/guard"
)

//////////////////////////////////////////////////////////////
// ExampleGuarded_Call - wrap a helper and let the guard catch
// a bad argument before the helper ever runs.
//
// Scenario:
//  1. Wrap strings.Repeat; constraints come from its signature.
//  2. Call it correctly, then with a string where an int belongs.
//////////////////////////////////////////////////////////////

func ExampleGuarded_Call() {
	g, _ := guard.New(strings.Repeat)

	out, _ := g.Call("na", 4)
	fmt.Println(out[0].(string) + " batman")

	_, err := g.Call("na", "4")
	fmt.Println(errors.Is(err, guard.ErrTypeMismatch))

	// Output:
	// nananana batman
	// true
}

//////////////////////////////////////////////////////////////
// ExampleCheckValue - validate a single value against a set of
// acceptable types.
//
// Scenario:
//  1. A float64 passes its own type.
//  2. A string fails a numeric-only constraint.
//////////////////////////////////////////////////////////////

func ExampleCheckValue() {
	err := guard.CheckValue(3.14, "ratio", guard.T[float64]())
	fmt.Println(err == nil)

	err = guard.CheckValue("fast", "ratio", guard.T[float64](), guard.T[int]())
	fmt.Println(errors.Is(err, guard.ErrTypeMismatch))

	// Output:
	// true
	// true
}
