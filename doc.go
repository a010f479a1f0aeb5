// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package option provides an optional-value container and its algebraic
// operations in Go.
//
// The core type [Option] represents a value that may or may not be present,
// with exactly two variants: Some (value present) and None (value absent).
// The variant is fixed at construction and the three capability families
// — Functor, Applicative, and Monad — dispatch on it.
//
// # Design Philosophy
//
// option provides:
//   - One container type modeled deeply, not a zoo of container types
//   - Law-governed operations: the functor, applicative, and monad laws
//     hold and are exercised by the test suite
//   - Short-circuit absorption: once a chain sees None, no further
//     caller-supplied function is invoked
//
// # Core Operations
//
// Minimal definitions per capability:
//
//   - Functor: [Map]
//   - Applicative: [Pure] and [Apply]
//   - Monad: [Bind]
//
// Derived operations ([Replace], [Then], [Join], [Filter], [Lift2], [Lift3],
// [Sequence], [Traverse]) are kept as conveniences expressible through the
// minimal set.
//
// # Access Semantics
//
// Reading the inner value of a None is the only failing operation in the
// package. [Option.Get] surfaces [ErrNoValue]; [Option.MustGet] panics with
// the same sentinel. Map, Apply, and Bind are total and never fail — absence
// propagates instead of erroring.
//
// All operations are pure value computations. Nothing blocks, retries, or
// shares mutable state; concurrent use is safe as long as caller-supplied
// functions are reentrant.
package option
