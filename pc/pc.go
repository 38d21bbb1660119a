// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package pc

// Input is the text a parser runs against. Narrowing an input with a
// slice expression shares the backing memory, so remainders are never
// copies.
type Input = string

// Result is the outcome of running a parser. A present result carries a
// value and the remainder of the input. An absent result carries nothing.
type Result[T any] struct {
	present   bool
	value     T
	remainder Input
}

// Success returns a present result.
func Success[T any](value T, remainder Input) Result[T] {
	return Result[T]{
		present:   true,
		value:     value,
		remainder: remainder,
	}
}

// Failure returns an absent result.
func Failure[T any]() Result[T] {
	return Result[T]{}
}

func (self Result[T]) IsSuccess() bool {
	return self.present
}

func (self Result[T]) Value() T {
	return self.value
}

func (self Result[T]) Remainder() Input {
	return self.remainder
}

// Get returns the value, remainder, and presence of the result in one call.
func (self Result[T]) Get() (T, Input, bool) {
	return self.value, self.remainder, self.present
}

// Parser is any function from an input to a Result. Parsers hold no
// mutable state so calling one twice with the same input gives the same
// result.
type Parser[T any] func(input Input) Result[T]

// Parse runs the parser. It makes every Parser satisfy Interface.
func (p Parser[T]) Parse(input Input) Result[T] {
	return p(input)
}

// Interface is the dynamically dispatched form of a parser. Use it for
// grammars assembled at runtime, for example from a table of named rules,
// where each rule is stored behind a common type.
type Interface[T any] interface {
	Parse(input Input) Result[T]
}

// Dynamic adapts any Interface implementation into a Parser so that it
// can be used with the combinators in this package.
func Dynamic[T any](v Interface[T]) Parser[T] {
	if p, ok := v.(Parser[T]); ok {
		return p
	}
	return func(input Input) Result[T] {
		return v.Parse(input)
	}
}

// Lazy defers construction of a parser until it is first invoked. This is
// required for recursive grammars where a rule refers to itself:
//
//	var expr Parser[int]
//	expr = Choice(number, Lazy(func() Parser[int] { return parens(expr) }))
//
// The constructor may be called more than once and must always return an
// equivalent parser.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return func(input Input) Result[T] {
		return build()(input)
	}
}

// Consumed reports how many units a parser consumed given the input it was
// called with and the remainder it returned. The remainder must be a
// suffix of original.
func Consumed(original Input, remainder Input) int {
	return len(original) - len(remainder)
}
