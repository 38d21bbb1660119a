// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"strings"
)

// LocationAt converts a byte offset into text into a Location. Offsets past
// the end of text are clamped to the end.
func LocationAt(uri string, text string, offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	column := offset + 1
	if idx := strings.LastIndexByte(before, '\n'); idx >= 0 {
		column = offset - idx
	}
	return Location{
		URI:    uri,
		Line:   int32(line),
		Column: int32(column),
		Offset: int64(offset),
	}
}
