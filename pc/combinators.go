// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package pc

import (
	"github.com/samber/lo"
)

// Map replaces the value of a successful parse with f(value). The
// remainder is unchanged and failures pass through.
func Map[T any, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input Input) Result[U] {
		r := p(input)
		if !r.present {
			return Failure[U]()
		}
		return Success(f(r.value), r.remainder)
	}
}

// Filter fails when p fails or when p succeeds with a value rejected by
// keep. In both cases nothing is consumed.
func Filter[T any](p Parser[T], keep func(T) bool) Parser[T] {
	return func(input Input) Result[T] {
		r := p(input)
		if !r.present || !keep(r.value) {
			return Failure[T]()
		}
		return r
	}
}

// Complete succeeds only when p consumes its entire input.
func Complete[T any](p Parser[T]) Parser[T] {
	return func(input Input) Result[T] {
		r := p(input)
		if !r.present || len(r.remainder) != 0 {
			return Failure[T]()
		}
		return r
	}
}

// Consuming fails when p succeeds without consuming any input. Wrapping
// the child of Many0 or Many1 with Consuming guarantees termination: a
// repeated empty match ends the loop instead of spinning forever.
func Consuming[T any](p Parser[T]) Parser[T] {
	return func(input Input) Result[T] {
		r := p(input)
		if !r.present || len(r.remainder) >= len(input) {
			return Failure[T]()
		}
		return r
	}
}

// Pair runs lhs and then rhs on the remainder of lhs.
func Pair[L any, R any](lhs Parser[L], rhs Parser[R]) Parser[lo.Tuple2[L, R]] {
	return func(input Input) Result[lo.Tuple2[L, R]] {
		l := lhs(input)
		if !l.present {
			return Failure[lo.Tuple2[L, R]]()
		}
		r := rhs(l.remainder)
		if !r.present {
			return Failure[lo.Tuple2[L, R]]()
		}
		return Success(lo.T2(l.value, r.value), r.remainder)
	}
}

// SeparatedPair is Pair with sep required between the two sides. The value
// of sep is discarded.
func SeparatedPair[L any, S any, R any](lhs Parser[L], sep Parser[S], rhs Parser[R]) Parser[lo.Tuple2[L, R]] {
	return func(input Input) Result[lo.Tuple2[L, R]] {
		l := lhs(input)
		if !l.present {
			return Failure[lo.Tuple2[L, R]]()
		}
		s := sep(l.remainder)
		if !s.present {
			return Failure[lo.Tuple2[L, R]]()
		}
		r := rhs(s.remainder)
		if !r.present {
			return Failure[lo.Tuple2[L, R]]()
		}
		return Success(lo.T2(l.value, r.value), r.remainder)
	}
}

// Single is the one element tuple produced by Tuple1.
type Single[A any] struct {
	A A
}

// Tuple1 wraps the value of p in a one element tuple.
func Tuple1[A any](p1 Parser[A]) Parser[Single[A]] {
	return Map(p1, func(a A) Single[A] {
		return Single[A]{A: a}
	})
}

// Tuple2 runs each parser in order against the previous remainder.
func Tuple2[A any, B any](p1 Parser[A], p2 Parser[B]) Parser[lo.Tuple2[A, B]] {
	return Pair(p1, p2)
}

// Tuple3 is the three element form of Tuple2.
func Tuple3[A any, B any, C any](p1 Parser[A], p2 Parser[B], p3 Parser[C]) Parser[lo.Tuple3[A, B, C]] {
	return Map(Pair(p1, Tuple2(p2, p3)), func(v lo.Tuple2[A, lo.Tuple2[B, C]]) lo.Tuple3[A, B, C] {
		return lo.T3(v.A, v.B.A, v.B.B)
	})
}

// Tuple4 is the four element form of Tuple2.
func Tuple4[A any, B any, C any, D any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D]) Parser[lo.Tuple4[A, B, C, D]] {
	return Map(Pair(p1, Tuple3(p2, p3, p4)), func(v lo.Tuple2[A, lo.Tuple3[B, C, D]]) lo.Tuple4[A, B, C, D] {
		return lo.T4(v.A, v.B.A, v.B.B, v.B.C)
	})
}

// Tuple5 is the five element form of Tuple2.
func Tuple5[A any, B any, C any, D any, E any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D], p5 Parser[E]) Parser[lo.Tuple5[A, B, C, D, E]] {
	return Map(Pair(p1, Tuple4(p2, p3, p4, p5)), func(v lo.Tuple2[A, lo.Tuple4[B, C, D, E]]) lo.Tuple5[A, B, C, D, E] {
		return lo.T5(v.A, v.B.A, v.B.B, v.B.C, v.B.D)
	})
}

// Tuple6 is the six element form of Tuple2.
func Tuple6[A any, B any, C any, D any, E any, F any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D], p5 Parser[E], p6 Parser[F]) Parser[lo.Tuple6[A, B, C, D, E, F]] {
	return Map(Pair(p1, Tuple5(p2, p3, p4, p5, p6)), func(v lo.Tuple2[A, lo.Tuple5[B, C, D, E, F]]) lo.Tuple6[A, B, C, D, E, F] {
		return lo.T6(v.A, v.B.A, v.B.B, v.B.C, v.B.D, v.B.E)
	})
}

// Choice returns the result of the first alternative that succeeds. Later
// alternatives are not attempted, even if they would consume more input.
// Alternatives with different natural value types must be mapped into a
// common type first, typically a sealed interface with one implementation
// per branch.
func Choice[T any](alternatives ...Parser[T]) Parser[T] {
	ps := append([]Parser[T](nil), alternatives...)
	return func(input Input) Result[T] {
		for _, p := range ps {
			if r := p(input); r.present {
				return r
			}
		}
		return Failure[T]()
	}
}
