// Package coords runs a function inside a temporary coordinate frame:
// complex points are shifted and rotated in place, and restored when the
// function returns - normally, with an error, or through a panic.
//
// 🚀 Why a scoped frame?
//
//	Geometry is often easiest in a frame where the interesting feature
//	sits at the origin with zero rotation. InFrame moves the caller's
//	points into that frame, runs the body, and guarantees the points come
//	back, so call sites never pair transform/restore by hand.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/varia/coords"
//
//	err := coords.InFrame(pts, origin, angle, func(local []complex128) error {
//	  // local[i] == (pts[i] - origin) · e^{-iθ}; mutations here are
//	  // carried back through the inverse transform
//	  return nil
//	})
//
// The restore path multiplies by e^{iθ} and shifts back, so each point
// survives the round trip up to a unit of floating-point rounding.
package coords
