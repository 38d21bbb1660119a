// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package kvconf

// Line is one parsed line of a document. The set of implementations is
// closed: Blank, Comment, Header, and Entry.
type Line interface {
	line()
}

// Blank is an empty or whitespace only line.
type Blank struct{}

// Comment is a line starting with '#' or ';'. Text excludes the marker and
// the whitespace that follows it.
type Comment struct {
	Text string
}

// Header opens a section, as in "[server.http]".
type Header struct {
	Path []string
}

// Entry is a "key = value" line. Path holds the dot separated segments of
// the key.
type Entry struct {
	Path  []string
	Value string
}

func (Blank) line()   {}
func (Comment) line() {}
func (Header) line()  {}
func (Entry) line()   {}

// Document is the grouped form of a parsed file. Entries that appear
// before any header belong to a section with an empty name.
type Document struct {
	URI      string    `json:"uri"`
	Sections []Section `json:"sections"`
}

type Section struct {
	Name    string     `json:"name"`
	Entries []Property `json:"entries"`
}

type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Line  int    `json:"line"`
}

// Duplicate records a key that appears more than once in a section. The
// last occurrence wins. Line numbers are one based.
type Duplicate struct {
	Section string
	Key     string
	Line    int
	First   int
}
