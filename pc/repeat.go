// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package pc

import (
	"strings"
)

const whitespace = " \t\n"

// ManyN applies p exactly count times in sequence. The resulting slice
// always has length count. If any application fails the whole parse fails.
// A count of zero always succeeds with an empty slice and consumes nothing.
func ManyN[T any](count int, p Parser[T]) Parser[[]T] {
	if count < 0 {
		count = 0
	}
	return func(input Input) Result[[]T] {
		values := make([]T, count)
		rest := input
		for x := range values {
			r := p(rest)
			if !r.present {
				return Failure[[]T]()
			}
			values[x] = r.value
			rest = r.remainder
		}
		return Success(values, rest)
	}
}

// Many0 applies p until it fails and collects every value. It never fails.
// The attempt that fails consumes nothing.
//
// If p can succeed without consuming input then Many0 never returns. Wrap
// such parsers with Consuming.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(input Input) Result[[]T] {
		values := []T{}
		rest := input
		for {
			r := p(rest)
			if !r.present {
				break
			}
			values = append(values, r.value)
			rest = r.remainder
		}
		return Success(values, rest)
	}
}

// Many0ToMany1 fails when q produces an empty slice, regardless of how much
// q consumed. Otherwise the result of q is returned unchanged.
func Many0ToMany1[T any](q Parser[[]T]) Parser[[]T] {
	return func(input Input) Result[[]T] {
		r := q(input)
		if r.present && len(r.value) == 0 {
			return Failure[[]T]()
		}
		return r
	}
}

// Many1 is Many0 that requires at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Many0ToMany1(Many0(p))
}

// ManySeparatedBy0 parses element (separator element)*. It never fails.
// A separator is committed only when the element after it also succeeds,
// so a trailing separator is left in the remainder.
func ManySeparatedBy0[T any, S any](element Parser[T], separator Parser[S]) Parser[[]T] {
	return func(input Input) Result[[]T] {
		first := element(input)
		if !first.present {
			return Success([]T{}, input)
		}
		values := []T{first.value}
		committed := first.remainder
		for {
			s := separator(committed)
			if !s.present {
				break
			}
			r := element(s.remainder)
			if !r.present {
				break
			}
			values = append(values, r.value)
			committed = r.remainder
		}
		return Success(values, committed)
	}
}

// ManySeparatedBy1 is ManySeparatedBy0 that requires at least one element.
func ManySeparatedBy1[T any, S any](element Parser[T], separator Parser[S]) Parser[[]T] {
	return Many0ToMany1(ManySeparatedBy0(element, separator))
}

// ManySplitBy0 splits the whole input on the literal separator and then
// requires p to consume each segment completely. Any segment that does not
// parse fully fails the whole parse. On success the remainder is always
// empty. Empty input is a single empty segment.
//
// The separator is never escaped, so it can not appear inside the text
// matched for any one segment.
func ManySplitBy0[T any](p Parser[T], separator string) Parser[[]T] {
	whole := Complete(p)
	return func(input Input) Result[[]T] {
		segments := split(input, separator)
		values := make([]T, 0, len(segments))
		for _, segment := range segments {
			r := whole(segment)
			if !r.present {
				return Failure[[]T]()
			}
			values = append(values, r.value)
		}
		return Success(values, input[len(input):])
	}
}

// ManySplitBy1 is ManySplitBy0 that requires at least one segment value.
func ManySplitBy1[T any](p Parser[T], separator string) Parser[[]T] {
	return Many0ToMany1(ManySplitBy0(p, separator))
}

// split cuts input into the segments between each occurrence of sep. An
// empty separator yields one segment per unit.
func split(input Input, sep string) []Input {
	if len(input) == 0 {
		return []Input{input}
	}
	if len(sep) == 0 {
		segments := make([]Input, len(input))
		for x := range segments {
			segments[x] = input[x : x+1]
		}
		return segments
	}
	segments := make([]Input, 0, strings.Count(input, sep)+1)
	rest := input
	for {
		idx := strings.Index(rest, sep)
		if idx < 0 {
			return append(segments, rest)
		}
		segments = append(segments, rest[:idx])
		rest = rest[idx+len(sep):]
	}
}

// Trim strips leading and trailing spaces, tabs, and line feeds once and
// runs p on what is left. The result of p is returned as is. Trailing
// whitespace removed before running p is not restored into the remainder.
func Trim[T any](p Parser[T]) Parser[T] {
	return func(input Input) Result[T] {
		return p(strings.Trim(input, whitespace))
	}
}
