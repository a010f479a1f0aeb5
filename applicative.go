// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

// Applicative operations for optional values.
//
// Minimal definition: Pure and Apply. Lift2 and Lift3 are derived
// operations that spell out the curried Apply chain for the common
// arities.

// Pure lifts a value into the container as Some(x).
// Pure(x) is equivalent to Some(x); it exists as the applicative unit so
// that law statements such as Apply(Pure(id), o) ≡ o read as written.
func Pure[T any](x T) Option[T] {
	return Some(x)
}

// Apply applies an optional function to an optional value.
// When both sides are Some, the result is Some(f(x)). Absence on either
// side absorbs: the result is None and the inner function is never
// invoked.
//
// Curried functions thread through repeated Apply calls:
//
//	Apply(Apply(Pure(add), Some(1)), Some(2)) == Some(3)
//
// Once any argument in such a chain is None the chain result is None and
// stays None for every subsequent Apply, regardless of argument order.
func Apply[A, B any](f Option[func(A) B], v Option[A]) Option[B] {
	if !f.isSome || !v.isSome {
		return None[B]()
	}
	return Some(f.value(v.value))
}

// Lift2 applies a binary function across two optional values.
// Lift2(f, a, b) is equivalent to Apply(Map(a, curry(f)), b).
func Lift2[A, B, C any](f func(A, B) C, a Option[A], b Option[B]) Option[C] {
	return Apply(Map(a, func(x A) func(B) C {
		return func(y B) C { return f(x, y) }
	}), b)
}

// Lift3 applies a ternary function across three optional values.
func Lift3[A, B, C, D any](f func(A, B, C) D, a Option[A], b Option[B], c Option[C]) Option[D] {
	return Apply(Lift2(func(x A, y B) func(C) D {
		return func(z C) D { return f(x, y, z) }
	}, a, b), c)
}
