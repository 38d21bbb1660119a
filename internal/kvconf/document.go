// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package kvconf

import (
	"strings"

	"github.com/samber/lo"
)

// Build groups parsed lines into sections. Blank lines and comments are
// dropped. A header naming an existing section reopens it.
func Build(uri string, lines []Line) (*Document, []Duplicate) {
	doc := &Document{URI: uri}
	index := map[string]int{}
	seen := map[string]map[string]int{}
	current := ""
	var duplicates []Duplicate

	sectionFor := func(name string) *Section {
		if x, ok := index[name]; ok {
			return &doc.Sections[x]
		}
		index[name] = len(doc.Sections)
		seen[name] = map[string]int{}
		doc.Sections = append(doc.Sections, Section{Name: name})
		return &doc.Sections[len(doc.Sections)-1]
	}

	for x, l := range lines {
		lineNumber := x + 1
		switch v := l.(type) {
		case Header:
			current = strings.Join(v.Path, ".")
			_ = sectionFor(current)
		case Entry:
			section := sectionFor(current)
			key := strings.Join(v.Path, ".")
			if first, ok := seen[current][key]; ok {
				duplicates = append(duplicates, Duplicate{
					Section: current,
					Key:     key,
					Line:    lineNumber,
					First:   first,
				})
				_, at, _ := lo.FindIndexOf(section.Entries, func(p Property) bool {
					return p.Key == key
				})
				section.Entries[at] = Property{Key: key, Value: v.Value, Line: lineNumber}
				continue
			}
			seen[current][key] = lineNumber
			section.Entries = append(section.Entries, Property{Key: key, Value: v.Value, Line: lineNumber})
		}
	}
	return doc, duplicates
}

// Lookup returns the value of key in the named section.
func (d *Document) Lookup(section string, key string) (string, bool) {
	s, ok := lo.Find(d.Sections, func(s Section) bool {
		return s.Name == section
	})
	if !ok {
		return "", false
	}
	p, ok := lo.Find(s.Entries, func(p Property) bool {
		return p.Key == key
	})
	return p.Value, ok
}
