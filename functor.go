// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

// Functor operations for optional values.
//
// Minimal definition: Map. Replace is a derived operation kept to avoid
// an intermediate closure at call sites that discard the input.

// Map applies a pure function to the inner value, preserving the variant.
// Some(x) maps to Some(f(x)); None maps to None without invoking f.
//
// Map satisfies the functor laws:
//
//	Map(o, id) ≡ o
//	Map(o, compose(f, g)) ≡ Map(Map(o, g), f)
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.isSome {
		return None[B]()
	}
	return Some(f(o.value))
}

// Replace maps the inner value to a constant, preserving the variant.
// Replace(o, b) is equivalent to Map(o, func(A) B { return b }) without
// the closure capture.
func Replace[A, B any](o Option[A], b B) Option[B] {
	if !o.isSome {
		return None[B]()
	}
	return Some(b)
}
