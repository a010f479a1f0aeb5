// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

// Monad operations for optional values.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Then, Join, and Filter are derived operations kept as optimizations to
// avoid intermediate closure allocations.

// Bind sequences a computation that itself produces an optional value.
// Some(x) binds to f(x) directly, with no rewrapping — f is responsible
// for producing the container. None binds to None without invoking f.
//
// Chains compose left to right; once any step yields None, every
// subsequent Bind short-circuits to None without invoking further
// functions, for any chain length.
func Bind[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.isSome {
		return None[B]()
	}
	return f(o.value)
}

// Then sequences two optional values, discarding the first inner value.
// The result is b when a is Some, and None when a is None.
//
// Allocation note: Then avoids the closure capture of a constant function
// that would occur with Bind(a, func(_ A) { return b }).
func Then[A, B any](a Option[A], b Option[B]) Option[B] {
	if !a.isSome {
		return None[B]()
	}
	return b
}

// Join flattens a nested optional value.
// Join(Some(Some(x))) is Some(x); Join(Some(None)) and Join(None) are None.
// Join(o) is equivalent to Bind(o, id).
func Join[T any](o Option[Option[T]]) Option[T] {
	if !o.isSome {
		return None[T]()
	}
	return o.value
}

// Filter keeps a present value only when pred holds for it.
// None filters to None without invoking pred.
func Filter[T any](o Option[T], pred func(T) bool) Option[T] {
	if !o.isSome || pred(o.value) {
		return o
	}
	return None[T]()
}
