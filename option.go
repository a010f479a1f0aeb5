// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import "errors"

// ErrNoValue reports an attempt to read the inner value of a None.
// It is the only error kind the package defines; match it with errors.Is.
var ErrNoValue = errors.New("option: no value present")

// Option represents a value that is either Some (present) or None (absent).
//
// The zero value is None. Option[T] is comparable when T is, and two
// Option values of the same instantiation compare equal iff they are both
// None or both Some holding equal inner values.
type Option[T any] struct {
	value  T
	isSome bool
}

// Some creates a present value holding x.
func Some[T any](x T) Option[T] {
	return Option[T]{value: x, isSome: true}
}

// None creates an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.isSome
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Get returns the inner value, or ErrNoValue if this is a None.
func (o Option[T]) Get() (T, error) {
	if o.isSome {
		return o.value, nil
	}
	var zero T
	return zero, ErrNoValue
}

// MustGet returns the inner value.
// Panics with ErrNoValue if this is a None.
func (o Option[T]) MustGet() T {
	if !o.isSome {
		panic(ErrNoValue)
	}
	return o.value
}

// GetOr returns the inner value, or fallback if this is a None.
func (o Option[T]) GetOr(fallback T) T {
	if o.isSome {
		return o.value
	}
	return fallback
}

// GetOrElse returns the inner value, or the result of calling fallback.
// fallback is not invoked when a value is present.
func (o Option[T]) GetOrElse(fallback func() T) T {
	if o.isSome {
		return o.value
	}
	return fallback()
}

// Match pattern matches on the Option, calling onSome or onNone.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.isSome {
		return onSome(o.value)
	}
	return onNone()
}

// Equal compares two Options with a caller-supplied comparator for the
// inner type. Two Nones are equal; a Some never equals a None.
// For comparable inner types the == operator is equivalent.
func Equal[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.isSome != b.isSome {
		return false
	}
	if !a.isSome {
		return true
	}
	return eq(a.value, b.value)
}
