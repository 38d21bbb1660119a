// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package pc

import (
	"strings"
)

const lineFeed = '\n'

// Character consumes a single unit. It fails only on empty input.
func Character() Parser[byte] {
	return func(input Input) Result[byte] {
		if len(input) == 0 {
			return Failure[byte]()
		}
		return Success(input[0], input[1:])
	}
}

// Tag matches the literal at the start of the input and consumes exactly
// len(literal) units. The empty literal always matches.
func Tag(literal string) Parser[string] {
	return func(input Input) Result[string] {
		if !strings.HasPrefix(input, literal) {
			return Failure[string]()
		}
		return Success(literal, input[len(literal):])
	}
}

// TagByte is the single unit form of Tag.
func TagByte(c byte) Parser[byte] {
	return func(input Input) Result[byte] {
		if len(input) == 0 || input[0] != c {
			return Failure[byte]()
		}
		return Success(c, input[1:])
	}
}

// Unit always succeeds with value and consumes nothing.
func Unit[T any](value T) Parser[T] {
	return func(input Input) Result[T] {
		return Success(value, input)
	}
}

// Newline consumes a single line feed.
func Newline() Parser[byte] {
	return Filter(Character(), func(c byte) bool {
		return c == lineFeed
	})
}

// Line returns everything up to the first line feed and drops the line
// feed itself. Without a line feed the whole input is the line. Line fails
// only on empty input.
func Line() Parser[string] {
	return func(input Input) Result[string] {
		if len(input) == 0 {
			return Failure[string]()
		}
		idx := strings.IndexByte(input, lineFeed)
		if idx < 0 {
			return Success(input, input[len(input):])
		}
		return Success(input[:idx], input[idx+1:])
	}
}

// FirstCharMatch scans forward for the first unit satisfying f. The
// remainder is everything after the match, so any units skipped before
// the match are discarded.
func FirstCharMatch(f func(c byte) bool) Parser[byte] {
	return func(input Input) Result[byte] {
		for x := 0; x < len(input); x = x + 1 {
			if f(input[x]) {
				return Success(input[x], input[x+1:])
			}
		}
		return Failure[byte]()
	}
}

// LastCharMatch scans backward for the last unit satisfying f. Unlike
// every other parser the remainder is a prefix of the input: everything
// before the match. Units after the match are discarded.
func LastCharMatch(f func(c byte) bool) Parser[byte] {
	return func(input Input) Result[byte] {
		for x := len(input) - 1; x >= 0; x = x - 1 {
			if f(input[x]) {
				return Success(input[x], input[:x])
			}
		}
		return Failure[byte]()
	}
}

// Fail never succeeds.
func Fail[T any]() Parser[T] {
	return func(Input) Result[T] {
		return Failure[T]()
	}
}
