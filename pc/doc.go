// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package pc is a parser combinator library over byte strings.
//
// A Parser consumes a prefix of its input and either succeeds with a value
// and the unconsumed remainder or fails without any payload. Grammars are
// built by composing the primitives in this package (Character, Tag, Line,
// ...) with the combinators (Map, Filter, Pair, Choice, Many0, ...):
//
//	word := Map(Many1(Filter(Character(), isLetter)), func(bs []byte) string {
//		return string(bs)
//	})
//	words := ManySeparatedBy0(word, Tag(","))
//	res := words("a,bc,d")
//	// res.Value() == []string{"a", "bc", "d"}, res.Remainder() == ""
//
// # Consumption
//
// A failed parse never consumes input. Combinators that fail discard all
// partial progress made by their children. The only exceptions are the
// best-effort repetition combinators (Many0, ManySeparatedBy0), which return
// the longest prefix matched so far instead of failing.
//
// # Termination
//
// Many0 and Many1 loop until their child fails. A child that succeeds
// without consuming input, such as Unit or Tag(""), never fails and so the
// loop never ends. Callers must not repeat such parsers, or must wrap them
// with Consuming.
//
// # Units
//
// Input is scanned as raw bytes. No UTF-8 decoding is performed.
package pc
