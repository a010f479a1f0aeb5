// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/option"
)

func TestBindSome(t *testing.T) {
	got := option.Bind(option.Some(10), func(x int) option.Option[int] {
		return option.Some(x * 2)
	})
	assert.Equal(t, option.Some(20), got)
}

func TestBindChangesType(t *testing.T) {
	got := option.Bind(option.Some(42), func(x int) option.Option[string] {
		return option.Some(strconv.Itoa(x))
	})
	assert.Equal(t, option.Some("42"), got)
}

func TestBindNoneShortCircuits(t *testing.T) {
	got := option.Bind(option.None[int](), func(x int) option.Option[int] {
		t.Fatal("f invoked for None")
		return option.None[int]()
	})
	assert.Equal(t, option.None[int](), got)
}

// Bind(Pure(a), f) ≡ f(a)
func TestMonadLeftIdentityLaw(t *testing.T) {
	f := func(x int) option.Option[int] { return option.Some(x * 3) }
	a := 4
	assert.Equal(t, f(a), option.Bind(option.Pure(a), f))
}

// Bind(m, Pure) ≡ m
func TestMonadRightIdentityLaw(t *testing.T) {
	m := option.Some(8)
	assert.Equal(t, m, option.Bind(m, option.Pure[int]))

	n := option.None[int]()
	assert.Equal(t, n, option.Bind(n, option.Pure[int]))
}

// Bind(Bind(m, f), g) ≡ Bind(m, func(x) { return Bind(f(x), g) })
func TestMonadAssociativityLaw(t *testing.T) {
	f := func(x int) option.Option[int] { return option.Some(x + 1) }
	g := func(x int) option.Option[int] {
		if x%2 == 0 {
			return option.Some(x * 10)
		}
		return option.None[int]()
	}

	for _, m := range []option.Option[int]{option.Some(3), option.Some(4), option.None[int]()} {
		left := option.Bind(option.Bind(m, f), g)
		right := option.Bind(m, func(x int) option.Option[int] {
			return option.Bind(f(x), g)
		})
		assert.Equal(t, left, right)
	}
}

// step counts down, failing at zero; a chain of binds short-circuits at
// the first None and never invokes step again.
func TestBindChainShortCircuit(t *testing.T) {
	step := func(x int) option.Option[int] {
		if x > 0 {
			return option.Some(x - 1)
		}
		return option.None[int]()
	}

	assert.Equal(t, option.Some(1), option.Bind(option.Some(2), step))

	got := option.Bind(option.Bind(option.Some(3), step), step)
	assert.Equal(t, option.Some(1), got)

	got = option.Bind(option.Bind(option.Bind(option.Some(1), step), step), step)
	assert.Equal(t, option.None[int](), got)
}

func TestBindChainStopsInvoking(t *testing.T) {
	calls := 0
	step := func(x int) option.Option[int] {
		calls++
		if x > 0 {
			return option.Some(x - 1)
		}
		return option.None[int]()
	}

	m := option.Some(1)
	for range 5 {
		m = option.Bind(m, step)
	}

	assert.Equal(t, option.None[int](), m)
	assert.Equal(t, 2, calls, "steps after the first None must not run")
}

func TestThen(t *testing.T) {
	assert.Equal(t, option.Some("b"), option.Then(option.Some(1), option.Some("b")))
	assert.Equal(t, option.None[string](), option.Then(option.None[int](), option.Some("b")))
	assert.Equal(t, option.None[string](), option.Then(option.Some(1), option.None[string]()))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, option.Some(5), option.Join(option.Some(option.Some(5))))
	assert.Equal(t, option.None[int](), option.Join(option.Some(option.None[int]())))
	assert.Equal(t, option.None[int](), option.Join(option.None[option.Option[int]]()))
}

func TestFilter(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }

	assert.Equal(t, option.Some(4), option.Filter(option.Some(4), even))
	assert.Equal(t, option.None[int](), option.Filter(option.Some(3), even))
}

func TestFilterNoneShortCircuits(t *testing.T) {
	got := option.Filter(option.None[int](), func(x int) bool {
		t.Fatal("pred invoked for None")
		return false
	})
	assert.Equal(t, option.None[int](), got)
}
