// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

// Collection traversals derived from the applicative operations.

// Sequence collects a slice of optional values into an optional slice.
// All Some yields Some of the inner values in order; any None absorbs the
// whole result. Sequence(nil) is Some(nil).
func Sequence[T any](os []Option[T]) Option[[]T] {
	var out []T
	if len(os) > 0 {
		out = make([]T, 0, len(os))
	}
	for _, o := range os {
		if !o.isSome {
			return None[[]T]()
		}
		out = append(out, o.value)
	}
	return Some(out)
}

// Traverse maps f over xs and sequences the results without building the
// intermediate slice. f is not invoked for elements after the first None.
func Traverse[A, B any](xs []A, f func(A) Option[B]) Option[[]B] {
	var out []B
	if len(xs) > 0 {
		out = make([]B, 0, len(xs))
	}
	for _, x := range xs {
		o := f(x)
		if !o.isSome {
			return None[[]B]()
		}
		out = append(out, o.value)
	}
	return Some(out)
}
