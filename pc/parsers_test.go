// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package pc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharacter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Result[byte]
	}{
		{name: "empty input", input: "", expected: Failure[byte]()},
		{name: "one character input", input: "a", expected: Success[byte]('a', "")},
		{name: "two character input", input: "ab", expected: Success[byte]('a', "b")},
		{name: "many character input", input: "hello", expected: Success[byte]('h', "ello")},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, Character()(testCase.input))
		})
	}
}

func TestNewline(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Result[byte]
	}{
		{name: "empty input", input: "", expected: Failure[byte]()},
		{name: "one character, no match", input: "a", expected: Failure[byte]()},
		{name: "one character, match", input: "\n", expected: Success[byte]('\n', "")},
		{name: "two characters, no match", input: "a\n", expected: Failure[byte]()},
		{name: "two characters, match", input: "\na", expected: Success[byte]('\n', "a")},
		{name: "two newlines", input: "\n\n", expected: Success[byte]('\n', "\n")},
		{name: "carriage return is not a newline", input: "\r\n", expected: Failure[byte]()},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, Newline()(testCase.input))
		})
	}
}

func TestLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Result[string]
	}{
		{name: "empty input", input: "", expected: Failure[string]()},
		{name: "one character", input: "a", expected: Success("a", "")},
		{name: "only a newline", input: "\n", expected: Success("", "")},
		{name: "no newline", input: "hello", expected: Success("hello", "")},
		{name: "ending in newline", input: "hello\n", expected: Success("hello", "")},
		{name: "newline in middle", input: "hello\nworld", expected: Success("hello", "world")},
		{name: "starting with newline", input: "\nhello", expected: Success("", "hello")},
		{name: "only first line feed dropped", input: "a\n\nb", expected: Success("a", "\nb")},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, Line()(testCase.input))
		})
	}
}

func TestTag(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		tag      string
		input    string
		expected Result[string]
	}{
		{name: "empty input", tag: "hello", input: "", expected: Failure[string]()},
		{name: "empty input, empty tag", tag: "", input: "", expected: Success("", "")},
		{name: "non matching input", tag: "hello", input: "world", expected: Failure[string]()},
		{name: "matching in middle", tag: "hello", input: "worldhelloworld", expected: Failure[string]()},
		{name: "matching at end", tag: "hello", input: "worldhello", expected: Failure[string]()},
		{name: "non empty input, empty tag", tag: "", input: "hello", expected: Success("", "hello")},
		{name: "exact match", tag: "hello", input: "hello", expected: Success("hello", "")},
		{name: "extra after", tag: "hello", input: "hello world", expected: Success("hello", " world")},
		{name: "matching twice", tag: "hello", input: "hellohello", expected: Success("hello", "hello")},
		{name: "input shorter than tag", tag: "hello", input: "hell", expected: Failure[string]()},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			result := Tag(testCase.tag)(testCase.input)
			require.Equal(t, testCase.expected, result)
			if result.IsSuccess() {
				require.Equal(t, len(testCase.tag), Consumed(testCase.input, result.Remainder()))
			}
		})
	}
}

func TestTagByte(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		tag      byte
		input    string
		expected Result[byte]
	}{
		{name: "empty input", tag: 'h', input: "", expected: Failure[byte]()},
		{name: "non matching input", tag: 'w', input: "hello", expected: Failure[byte]()},
		{name: "matching in middle", tag: 'e', input: "hello", expected: Failure[byte]()},
		{name: "matching at end", tag: 'o', input: "helohello", expected: Failure[byte]()},
		{name: "exact match", tag: 'h', input: "h", expected: Success[byte]('h', "")},
		{name: "extra after", tag: 'h', input: "hello", expected: Success[byte]('h', "ello")},
		{name: "matching twice", tag: 'h', input: "hh", expected: Success[byte]('h', "h")},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, TagByte(testCase.tag)(testCase.input))
		})
	}
}

func TestUnit(t *testing.T) {
	t.Parallel()

	require.Equal(t, Success(20, ""), Unit(20)(""))
	require.Equal(t, Success(20, "hello"), Unit(20)("hello"))
	require.Equal(t, Success("value", ""), Unit("value")(""))
	require.Equal(t, Success("value", "hello"), Unit("value")("hello"))
}

func TestFirstCharMatch(t *testing.T) {
	t.Parallel()

	isA := func(c byte) bool { return c == 'a' }
	testCases := []struct {
		name     string
		input    string
		expected Result[byte]
	}{
		{name: "empty input", input: "", expected: Failure[byte]()},
		{name: "no match", input: "hello", expected: Failure[byte]()},
		{name: "match first character", input: "ahello", expected: Success[byte]('a', "hello")},
		{name: "match middle character", input: "helloaworld", expected: Success[byte]('a', "world")},
		{name: "match last character", input: "helloa", expected: Success[byte]('a', "")},
		{name: "contiguous matches", input: "helloaaworld", expected: Success[byte]('a', "aworld")},
		{name: "non contiguous matches", input: "helloaworldaparser", expected: Success[byte]('a', "worldaparser")},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, FirstCharMatch(isA)(testCase.input))
		})
	}
}

func TestLastCharMatch(t *testing.T) {
	t.Parallel()

	isA := func(c byte) bool { return c == 'a' }
	testCases := []struct {
		name     string
		input    string
		expected Result[byte]
	}{
		{name: "empty input", input: "", expected: Failure[byte]()},
		{name: "no match", input: "hello", expected: Failure[byte]()},
		{name: "match first character", input: "ahello", expected: Success[byte]('a', "")},
		{name: "match middle character", input: "helloaworld", expected: Success[byte]('a', "hello")},
		{name: "match last character", input: "helloa", expected: Success[byte]('a', "hello")},
		{name: "contiguous matches", input: "helloaaworld", expected: Success[byte]('a', "helloa")},
		{name: "non contiguous matches", input: "helloaworldaparser", expected: Success[byte]('a', "helloaworldap")},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, LastCharMatch(isA)(testCase.input))
		})
	}
}

func TestFail(t *testing.T) {
	t.Parallel()

	require.False(t, Fail[int]()("").IsSuccess())
	require.False(t, Fail[int]()("hello world").IsSuccess())
	require.False(t, Fail[string]()("hello world").IsSuccess())
}
