// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package kvconf is a line oriented configuration format built from the
// combinators in package pc:
//
//	# comment
//	name = example
//	[server.http]
//	listen = ":8080"
//	banner = "hello\x21"
//
// Every line must parse completely or the whole document is rejected.
package kvconf

import (
	"strings"

	"github.com/samber/lo"

	"gopkg.microglot.org/parsec.go/pc"
)

func isKeyByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-'
}

func isHexByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBlankByte(c byte) bool {
	return c == ' ' || c == '\t'
}

func bytesToString(bs []byte) string {
	return string(bs)
}

func unhex(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

func spaces() pc.Parser[[]byte] {
	return pc.Many0(pc.Filter(pc.Character(), isBlankByte))
}

// keyPath parses one or more identifiers joined by dots. A dangling dot is
// left unconsumed.
func keyPath() pc.Parser[[]string] {
	ident := pc.Map(pc.Many1(pc.Filter(pc.Character(), isKeyByte)), bytesToString)
	return pc.ManySeparatedBy1(ident, pc.TagByte('.'))
}

// escape parses the part of a quoted value that follows a backslash.
func escape() pc.Parser[byte] {
	hex := pc.Map(pc.Pair(pc.TagByte('x'), pc.ManyN(2, pc.Filter(pc.Character(), isHexByte))), func(v lo.Tuple2[byte, []byte]) byte {
		return unhex(v.B[0])<<4 | unhex(v.B[1])
	})
	simple := pc.Choice(
		pc.Map(pc.TagByte('n'), func(byte) byte { return '\n' }),
		pc.Map(pc.TagByte('t'), func(byte) byte { return '\t' }),
		pc.TagByte('"'),
		pc.TagByte('\\'),
	)
	return pc.Map(pc.Pair(pc.TagByte('\\'), pc.Choice(hex, simple)), func(v lo.Tuple2[byte, byte]) byte {
		return v.B
	})
}

func quoted() pc.Parser[string] {
	plain := pc.Filter(pc.Character(), func(c byte) bool {
		return c != '"' && c != '\\'
	})
	body := pc.Many0(pc.Choice(escape(), plain))
	return pc.Map(pc.Tuple3(pc.TagByte('"'), body, pc.TagByte('"')), func(v lo.Tuple3[byte, []byte, byte]) string {
		return string(v.B)
	})
}

func value() pc.Parser[string] {
	bare := pc.Map(pc.Many0(pc.Character()), bytesToString)
	return pc.Choice(quoted(), bare)
}

func blank() pc.Parser[Line] {
	return pc.Complete(pc.Unit[Line](Blank{}))
}

func comment() pc.Parser[Line] {
	marker := pc.Choice(pc.TagByte('#'), pc.TagByte(';'))
	rest := pc.Map(pc.Many0(pc.Character()), bytesToString)
	return pc.Map(pc.SeparatedPair(marker, spaces(), rest), func(v lo.Tuple2[byte, string]) Line {
		return Comment{Text: v.B}
	})
}

func header() pc.Parser[Line] {
	return pc.Map(pc.Tuple5(pc.TagByte('['), spaces(), keyPath(), spaces(), pc.TagByte(']')), func(v lo.Tuple5[byte, []byte, []string, []byte, byte]) Line {
		return Header{Path: v.C}
	})
}

func entry() pc.Parser[Line] {
	equals := pc.Tuple3(spaces(), pc.TagByte('='), spaces())
	return pc.Map(pc.SeparatedPair(keyPath(), equals, value()), func(v lo.Tuple2[[]string, string]) Line {
		return Entry{Path: v.A, Value: v.B}
	})
}

// LineParser parses a single line with surrounding whitespace ignored. It
// does not require the line to be consumed completely.
func LineParser() pc.Parser[Line] {
	return pc.Trim(pc.Choice(blank(), comment(), header(), entry()))
}

// DocumentParser splits its input on sep and parses every segment as a
// line.
func DocumentParser(sep string) pc.Parser[[]Line] {
	return pc.ManySplitBy0(LineParser(), sep)
}

var (
	lfDocument   = DocumentParser("\n")
	crlfDocument = DocumentParser("\r\n")
)

// Separator picks the line separator used by text.
func Separator(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// ParseLines parses every line of text. It reports false if any line is
// malformed.
func ParseLines(text string) ([]Line, bool) {
	p := lfDocument
	if Separator(text) == "\r\n" {
		p = crlfDocument
	}
	lines, _, ok := p(text).Get()
	return lines, ok
}

// FirstInvalid returns the byte offset and one based line number of the
// first line in text that does not parse completely. It reports false if
// every line parses.
func FirstInvalid(text string) (int, int, bool) {
	sep := Separator(text)
	raw := pc.ManySplitBy0(pc.Map(pc.Many0(pc.Character()), bytesToString), sep)
	segments := raw(text).Value()
	line := pc.Complete(LineParser())
	offset := 0
	for x, segment := range segments {
		if !line(segment).IsSuccess() {
			return offset + leadingWhitespace(segment), x + 1, true
		}
		offset = offset + len(segment) + len(sep)
	}
	return 0, 0, false
}

func leadingWhitespace(segment string) int {
	return len(segment) - len(strings.TrimLeft(segment, " \t\n"))
}
